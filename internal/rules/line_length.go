package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"yamlguard/internal/diag"
)

// LineLengthRule caps the Unicode scalar count of each physical line.
type LineLengthRule struct{}

func (*LineLengthRule) ID() diag.RuleID                { return diag.RuleLineLength }
func (*LineLengthRule) DefaultEnabled() bool           { return true }
func (*LineLengthRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*LineLengthRule) DefaultOptions() Options {
	return Options{"max": 80, "allow-non-breakable-words": true, "allow-non-breakable-inline-mappings": false}
}
func (*LineLengthRule) Scope() Scope  { return ScopePerLine }
func (*LineLengthRule) Fixable() bool { return false }

func (r *LineLengthRule) Check(in *Input, opts Options) []diag.Diagnostic {
	opts = opts.Merged(r.DefaultOptions())
	max := opts.Int("max", 80)
	allowWord := opts.Bool("allow-non-breakable-words", true)
	allowInlineMap := opts.Bool("allow-non-breakable-inline-mappings", false)

	var out []diag.Diagnostic
	for _, ln := range in.Lines.Lines() {
		n := utf8.RuneCount(ln.Raw)
		if n <= max {
			continue
		}
		if isNonBreakableException(ln.Raw, allowWord, allowInlineMap) {
			continue
		}
		sp := in.Span(ln.ByteRange.Start, ln.ByteRange.End)
		out = append(out, diag.NewError(diag.RuleLineLength, sp,
			fmt.Sprintf("line too long (%d > %d characters)", n, max)))
	}
	return out
}

func isNonBreakableException(raw []byte, allowWord, allowInlineMap bool) bool {
	trimmed := strings.TrimLeft(string(raw), " \t")
	fields := strings.Fields(trimmed)
	if allowWord && len(fields) <= 1 {
		return true
	}
	if allowInlineMap && len(fields) == 2 && strings.HasSuffix(fields[0], ":") {
		return true
	}
	return false
}
