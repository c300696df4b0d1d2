package errors

// Template defines a registered error type.
type Template struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// Render errors (E100-E199)

	"E100": {
		Category: CategoryRender,
		Message:  "Write to output failed",
		Detail:   "The rendered HTML could not be written to the output sink. Output written before the failure is kept.",
	},
	"E101": {
		Category: CategoryRender,
		Message:  "Nothing to render",
		Detail:   "A nil node was passed to the renderer.",
	},

	// CLI errors (E200-E299)

	"E200": {
		Category: CategoryCLI,
		Message:  "Unknown escape mode",
		Detail:   "The escape mode names the function applied to text leaves.",
	},
	"E201": {
		Category: CategoryCLI,
		Message:  "Invalid attribute flag",
		Detail:   "Attributes are given as name=value.",
	},
	"E202": {
		Category: CategoryCLI,
		Message:  "Empty tag name",
		Detail:   "An element needs a non-empty tag name.",
	},
	"E203": {
		Category: CategoryCLI,
		Message:  "Invalid log level",
		Detail:   "The log level must be one of debug, info, warn or error.",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
