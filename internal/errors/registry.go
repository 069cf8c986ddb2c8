package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Configuration Errors (E100-E199)
	// ============================================

	"E101": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "solvr-ui looks for solvr-ui.json in the working directory.",
		DocURL:   "https://docs.solvr.dev/errors/E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "solvr-ui.json could not be read or parsed.",
		DocURL:   "https://docs.solvr.dev/errors/E102",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration field has a value outside its allowed range.",
		DocURL:   "https://docs.solvr.dev/errors/E103",
	},
	"E110": {
		Category: CategoryConfig,
		Message:  "Missing API key",
		Detail:   "No API key is configured and the key environment variable is empty.",
		DocURL:   "https://docs.solvr.dev/errors/E110",
	},

	// ============================================
	// CLI Errors (E200-E299)
	// ============================================

	"E201": {
		Category: CategoryCLI,
		Message:  "Invalid command argument",
		DocURL:   "https://docs.solvr.dev/errors/E201",
	},

	// ============================================
	// API Errors (E300-E399)
	// ============================================

	"E301": {
		Category: CategoryAPI,
		Message:  "API request failed",
		Detail:   "The Solvr platform API returned an error or was unreachable.",
		DocURL:   "https://docs.solvr.dev/errors/E301",
	},
	"E302": {
		Category: CategoryAPI,
		Message:  "Not authorized",
		Detail:   "The API rejected the configured credentials.",
		DocURL:   "https://docs.solvr.dev/errors/E302",
	},
}

// Lookup returns the template for a code, if registered.
func Lookup(code string) (ErrorTemplate, bool) {
	template, ok := registry[code]
	return template, ok
}
