// Package errors provides coded, user-facing errors for solvr-ui.
//
// Every error has a stable code (e.g. "E101") that maps to a registered
// template: a short message, a detailed explanation and a documentation
// URL. Call sites enrich the template with context:
//
//	err := errors.New("E101").
//	    WithDetail("No solvr-ui.json found in /home/dev/project").
//	    WithSuggestion("Run 'solvr-ui init' to create one")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E101: Configuration file not found
//	//
//	//   No solvr-ui.json found in /home/dev/project
//	//
//	//   Hint: Run 'solvr-ui init' to create one
//	//
//	//   Learn more: https://docs.solvr.dev/errors/E101
//
// Format renders the error for terminal display with ANSI colors;
// FormatCompact renders a single line for logs.
package errors
