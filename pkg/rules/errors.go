package rules

import "fmt"

// ParseError reports a meaningful resource line that matches none of the
// grammars expected for its resource kind, or a line whose fields are
// malformed (bad boolean, bad regex...). The offending line is carried
// verbatim for diagnostics.
type ParseError struct {
	// Filename of the resource, empty when parsing an in-memory string.
	Filename string
	// Line number within the resource, 1-based.
	Line int
	// Content is the offending line, trimmed of surrounding whitespace
	// as ForEach delivers it.
	Content string
	// Reason describes what was expected.
	Reason string
}

func (e *ParseError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s:%d: %s: %q", e.Filename, e.Line, e.Reason, e.Content)
	}
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Content)
}
