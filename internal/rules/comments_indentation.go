package rules

import (
	"strings"

	"yamlguard/internal/diag"
)

// CommentsIndentationRule requires a standalone comment line to line up
// with either the content line before it or the content line after it.
type CommentsIndentationRule struct{}

func (*CommentsIndentationRule) ID() diag.RuleID                { return diag.RuleCommentsIndentation }
func (*CommentsIndentationRule) DefaultEnabled() bool           { return true }
func (*CommentsIndentationRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*CommentsIndentationRule) DefaultOptions() Options        { return nil }
func (*CommentsIndentationRule) Scope() Scope                   { return ScopePerLine }
func (*CommentsIndentationRule) Fixable() bool                  { return false }

func (*CommentsIndentationRule) Check(in *Input, _ Options) []diag.Diagnostic {
	all := in.Lines.Lines()
	var out []diag.Diagnostic

	prevContentIndent := -1
	for i, ln := range all {
		if !isStandaloneComment(ln.Raw) {
			if !ln.IsEmpty() {
				prevContentIndent = ln.IndentWidth
			}
			continue
		}
		nextContentIndent := -1
		for j := i + 1; j < len(all); j++ {
			if all[j].IsEmpty() || isStandaloneComment(all[j].Raw) {
				continue
			}
			nextContentIndent = all[j].IndentWidth
			break
		}
		if ln.IndentWidth == prevContentIndent || ln.IndentWidth == nextContentIndent {
			continue
		}
		sp := in.Span(ln.ByteRange.Start, ln.ByteRange.End)
		out = append(out, diag.NewError(diag.RuleCommentsIndentation, sp, "comment not indented like content"))
	}
	return out
}

func isStandaloneComment(raw []byte) bool {
	trimmed := strings.TrimLeft(string(raw), " \t")
	return strings.HasPrefix(trimmed, "#")
}
