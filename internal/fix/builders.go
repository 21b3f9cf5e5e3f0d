package fix

import (
	"yamlguard/internal/diag"
	"yamlguard/internal/source"
)

// InsertText builds a fix that inserts text at a zero-width span
// (span.Start == span.End).
func InsertText(title string, at source.Span, text string) diag.Fix {
	return diag.Fix{
		Title: title,
		Edits: []diag.Edit{{Span: at, Replacement: []byte(text)}},
	}
}

// DeleteSpan builds a fix that removes the text covered by span.
func DeleteSpan(title string, span source.Span) diag.Fix {
	return diag.Fix{
		Title: title,
		Edits: []diag.Edit{{Span: span, Replacement: nil}},
	}
}

// ReplaceSpan builds a fix that replaces the text covered by span with newText.
func ReplaceSpan(title string, span source.Span, newText string) diag.Fix {
	return diag.Fix{
		Title: title,
		Edits: []diag.Edit{{Span: span, Replacement: []byte(newText)}},
	}
}

// WrapWith builds a fix that surrounds span with prefix/suffix insertions.
func WrapWith(title string, span source.Span, prefix, suffix string) diag.Fix {
	return diag.Fix{
		Title: title,
		Edits: []diag.Edit{
			{Span: source.Span{File: span.File, Start: span.Start, End: span.Start}, Replacement: []byte(prefix)},
			{Span: source.Span{File: span.File, Start: span.End, End: span.End}, Replacement: []byte(suffix)},
		},
	}
}
