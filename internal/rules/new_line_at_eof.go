package rules

import "yamlguard/internal/diag"

// NewLineAtEndOfFileRule requires the file's last byte to be a line
// terminator.
type NewLineAtEndOfFileRule struct{}

func (*NewLineAtEndOfFileRule) ID() diag.RuleID                { return diag.RuleNewLineAtEndOfFile }
func (*NewLineAtEndOfFileRule) DefaultEnabled() bool           { return true }
func (*NewLineAtEndOfFileRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*NewLineAtEndOfFileRule) DefaultOptions() Options        { return nil }
func (*NewLineAtEndOfFileRule) Scope() Scope                   { return ScopePerLine }
func (*NewLineAtEndOfFileRule) Fixable() bool                  { return true }

func (*NewLineAtEndOfFileRule) Check(in *Input, _ Options) []diag.Diagnostic {
	if len(in.Content) > 0 && in.Content[len(in.Content)-1] == '\n' {
		return nil
	}
	n := u32(len(in.Content))
	sp := in.Span(n, n)
	d := diag.NewError(diag.RuleNewLineAtEndOfFile, sp, "no new line character at the end of file").
		WithFix("insert trailing newline", diag.Edit{Span: sp, Replacement: []byte("\n")})
	return []diag.Diagnostic{d}
}
