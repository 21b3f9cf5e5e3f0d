package diag

import (
	"yamlguard/internal/source"
)

// Note attaches a secondary span/message to a Diagnostic, for context that
// doesn't belong in the primary message (e.g. "first defined here").
type Note struct {
	Span source.Span
	Msg  string
}

// Edit is one byte-range replacement. Edits never cross file boundaries and
// are always expressed against the original, unmodified source buffer.
type Edit struct {
	Span        source.Span
	Replacement []byte
}

// Fix is an ordered list of Edits that, applied together, resolve the
// diagnostic they accompany. Edits within a Fix must be non-overlapping and
// listed in ascending byte order; the fix applier enforces this.
type Fix struct {
	Title string
	Edits []Edit
}

// Diagnostic is one finding: a rule violation or a lexer/parser failure.
type Diagnostic struct {
	Severity Severity
	RuleID   RuleID
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}
