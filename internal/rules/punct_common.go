package rules

import (
	"strings"

	"yamlguard/internal/diag"
	"yamlguard/internal/source"
)

// gap measures the raw bytes between two byte offsets in the original
// source and reports how many are spaces/tabs, or ok=false if a newline
// sits in between (the punctuation rules only judge same-line spacing; a
// line break before/after punctuation is a different rule's concern).
func gap(content []byte, start, end uint32) (spaces int, ok bool) {
	for i := start; i < end; i++ {
		switch content[i] {
		case ' ', '\t':
			spaces++
		case '\n', '\r':
			return 0, false
		}
	}
	return spaces, true
}

// checkSpacing compares spaces seen in [start,end) against a min/max pair
// (-1 means unbounded) and, on violation, builds a Diagnostic whose fix
// rewrites the gap to the nearest satisfying width.
func checkSpacing(rule diag.RuleID, content []byte, fileID source.FileID, start, end uint32, min, max int, what string) *diag.Diagnostic {
	spaces, ok := gap(content, start, end)
	if !ok {
		return nil
	}
	var msg string
	var target int
	switch {
	case min >= 0 && spaces < min:
		msg = "too few spaces " + what
		target = min
	case max >= 0 && spaces > max:
		msg = "too many spaces " + what
		target = max
	default:
		return nil
	}
	sp := source.Span{File: fileID, Start: start, End: end}
	d := diag.NewError(rule, sp, msg).
		WithFix("fix spacing "+what, diag.Edit{Span: sp, Replacement: []byte(strings.Repeat(" ", target))})
	return &d
}
