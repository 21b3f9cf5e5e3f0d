package rules

import (
	"runtime"

	"yamlguard/internal/diag"
	"yamlguard/internal/token"
)

// NewLinesRule requires every line terminator in the file to match a single
// configured kind. A file that mixes terminators reports once, at the
// first line whose terminator diverges from the target.
type NewLinesRule struct{}

func (*NewLinesRule) ID() diag.RuleID                { return diag.RuleNewLines }
func (*NewLinesRule) DefaultEnabled() bool           { return true }
func (*NewLinesRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*NewLinesRule) DefaultOptions() Options        { return Options{"type": "unix"} }
func (*NewLinesRule) Scope() Scope                   { return ScopePerLine }
func (*NewLinesRule) Fixable() bool                  { return true }

func (r *NewLinesRule) Check(in *Input, opts Options) []diag.Diagnostic {
	opts = opts.Merged(r.DefaultOptions())
	target := targetLineEnd(opts.String("type", "unix"))
	targetBytes := lineEndBytes(target)

	all := in.Lines.Lines()
	var edits []diag.Edit
	var first diag.Diagnostic
	found := false

	for idx, ln := range all {
		if ln.LineEnd == token.NoLineEnd {
			continue // end-of-file with no terminator: new-line-at-end-of-file's concern
		}
		if ln.LineEnd == target {
			continue
		}
		termStart := ln.ByteRange.End
		var termEnd uint32
		if idx+1 < len(all) {
			termEnd = all[idx+1].ByteRange.Start
		} else {
			termEnd = termStart + u32(lineEndLen(ln.LineEnd))
		}
		sp := in.Span(termStart, termEnd)
		edits = append(edits, diag.Edit{Span: sp, Replacement: targetBytes})
		if !found {
			first = diag.NewError(diag.RuleNewLines, sp, "line ending does not match the configured style")
			found = true
		}
	}
	if !found {
		return nil
	}
	return []diag.Diagnostic{first.WithFix("normalize line endings", edits...)}
}

func targetLineEnd(kind string) token.LineEndStyle {
	switch kind {
	case "dos":
		return token.CRLF
	case "platform":
		if runtime.GOOS == "windows" {
			return token.CRLF
		}
		return token.LF
	default:
		return token.LF
	}
}

func lineEndBytes(s token.LineEndStyle) []byte {
	if s == token.CRLF {
		return []byte("\r\n")
	}
	return []byte("\n")
}

func lineEndLen(s token.LineEndStyle) int {
	if s == token.CRLF {
		return 2
	}
	return 1
}
