package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryAPI     Category = "api"
	CategoryCLI     Category = "cli"
	CategoryRuntime Category = "runtime"
)

// SolvrError is a structured error with a stable code, a fix suggestion
// and a documentation link.
type SolvrError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (config, api, cli, runtime).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *SolvrError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *SolvrError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *SolvrError) WithSuggestion(s string) *SolvrError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *SolvrError) WithDetail(d string) *SolvrError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *SolvrError) Wrap(err error) *SolvrError {
	e.Wrapped = err
	return e
}

// New creates a SolvrError from a registered error code.
func New(code string) *SolvrError {
	template, ok := registry[code]
	if !ok {
		return &SolvrError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &SolvrError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new SolvrError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *SolvrError {
	return &SolvrError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a SolvrError.
func FromError(err error, code string) *SolvrError {
	if err == nil {
		return nil
	}
	if se, ok := err.(*SolvrError); ok {
		return se
	}
	return New(code).Wrap(err)
}
