// Package toast delivers transient, non-blocking notices to the user.
// A failed toggle shows one of these and nothing more: the control stays
// usable and nothing propagates to a global error surface.
package toast

// Level represents the notice severity.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Notifier is the sink notices are emitted into. The presentation layer
// provides one that renders inline; tests provide one that records.
type Notifier interface {
	Notify(level Level, message string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(level Level, message string)

func (f NotifierFunc) Notify(level Level, message string) {
	f(level, message)
}

// Success shows a success notice.
//
//	toast.Success(n, "Changes saved!")
func Success(n Notifier, message string) {
	if n != nil {
		n.Notify(LevelSuccess, message)
	}
}

// Error shows an error notice.
//
//	toast.Error(n, "Failed to save bookmark")
func Error(n Notifier, message string) {
	if n != nil {
		n.Notify(LevelError, message)
	}
}

// Warning shows a warning notice.
func Warning(n Notifier, message string) {
	if n != nil {
		n.Notify(LevelWarning, message)
	}
}

// Info shows an info notice.
func Info(n Notifier, message string) {
	if n != nil {
		n.Notify(LevelInfo, message)
	}
}
