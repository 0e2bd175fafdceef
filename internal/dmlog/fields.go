// Package dmlog provides a structured logging wrapper around charmbracelet/log.
package dmlog

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	FieldError        = "error"
	FieldDepth        = "depth"
	FieldMaxDepth     = "max_depth"
	FieldDirective    = "directive"
	FieldConsumer     = "consumer"
	FieldOffset       = "offset"
	FieldLanguageHint = "language_hint"
)
