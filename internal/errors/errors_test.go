package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewFromRegisteredCode(t *testing.T) {
	err := New("E101")

	if err.Code != "E101" {
		t.Errorf("Code = %q, want E101", err.Code)
	}
	if err.Category != CategoryConfig {
		t.Errorf("Category = %q, want config", err.Category)
	}
	if err.Message == "" {
		t.Error("registered code has no message")
	}
	if err.DocURL == "" {
		t.Error("registered code has no doc URL")
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")
	if err.Code != "E999" {
		t.Errorf("Code = %q, want E999", err.Code)
	}
	if err.Message != "Unknown error" {
		t.Errorf("Message = %q, want Unknown error", err.Message)
	}
}

func TestErrorString(t *testing.T) {
	err := New("E102")
	if got := err.Error(); got != "E102: Invalid configuration file" {
		t.Errorf("Error() = %q", got)
	}

	uncoded := Newf(CategoryCLI, "bad argument %q", "x")
	if got := uncoded.Error(); got != `bad argument "x"` {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrapSupportsErrorsIs(t *testing.T) {
	sentinel := stderrors.New("underlying")
	err := New("E102").Wrap(sentinel)

	if !stderrors.Is(err, sentinel) {
		t.Error("errors.Is does not find the wrapped error")
	}

	var se *SolvrError
	if !stderrors.As(fmt.Errorf("outer: %w", err), &se) {
		t.Error("errors.As does not find the SolvrError through wrapping")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E301") != nil {
		t.Error("FromError(nil) != nil")
	}

	se := New("E301")
	if FromError(se, "E102") != se {
		t.Error("FromError re-wraps an existing SolvrError")
	}

	wrapped := FromError(stderrors.New("boom"), "E301")
	if wrapped.Code != "E301" || wrapped.Wrapped == nil {
		t.Errorf("FromError = %+v, want code E301 with wrapped error", wrapped)
	}
}

func TestFormatContainsAllSections(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E101").
		WithDetail("No solvr-ui.json found in /tmp/project").
		WithSuggestion("Run 'solvr-ui init' to create one")

	out := err.Format()
	for _, want := range []string{
		"ERROR E101",
		"Configuration file not found",
		"/tmp/project",
		"Hint: Run 'solvr-ui init'",
		"https://docs.solvr.dev/errors/E101",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E110").Wrap(stderrors.New("SOLVR_API_KEY empty"))
	got := err.FormatCompact()
	if got != "E110: Missing API key: SOLVR_API_KEY empty" {
		t.Errorf("FormatCompact() = %q", got)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 10)
	for _, line := range lines {
		if len(line) > 10 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if strings.Join(lines, " ") != "one two three four five" {
		t.Errorf("wrapped text lost words: %v", lines)
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("E101"); !ok {
		t.Error("Lookup(E101) not found")
	}
	if _, ok := Lookup("E999"); ok {
		t.Error("Lookup(E999) found an unregistered code")
	}
}
