package rules

import "yamlguard/internal/diag"

// TrailingSpacesRule reports any run of spaces or tabs immediately before
// a line terminator.
type TrailingSpacesRule struct{}

func (*TrailingSpacesRule) ID() diag.RuleID             { return diag.RuleTrailingSpaces }
func (*TrailingSpacesRule) DefaultEnabled() bool        { return true }
func (*TrailingSpacesRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*TrailingSpacesRule) DefaultOptions() Options     { return nil }
func (*TrailingSpacesRule) Scope() Scope                { return ScopePerLine }
func (*TrailingSpacesRule) Fixable() bool                { return true }

func (*TrailingSpacesRule) Check(in *Input, _ Options) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, ln := range in.Lines.Lines() {
		if !ln.HasTrailingWhitespace() {
			continue
		}
		sp := in.Span(ln.TrailingWSRange.Start, ln.TrailingWSRange.End)
		d := diag.NewError(diag.RuleTrailingSpaces, sp, "trailing spaces").
			WithFix("remove trailing spaces", diag.Edit{Span: sp, Replacement: nil})
		out = append(out, d)
	}
	return out
}
