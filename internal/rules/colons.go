package rules

import (
	"yamlguard/internal/diag"
	"yamlguard/internal/token"
)

// ColonsRule checks the whitespace immediately before and after a
// mapping's ':'.
type ColonsRule struct{}

func (*ColonsRule) ID() diag.RuleID                { return diag.RuleColons }
func (*ColonsRule) DefaultEnabled() bool           { return true }
func (*ColonsRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*ColonsRule) DefaultOptions() Options {
	return Options{"max-spaces-before": 0, "max-spaces-after": 1}
}
func (*ColonsRule) Scope() Scope  { return ScopePerToken }
func (*ColonsRule) Fixable() bool { return true }

func (r *ColonsRule) Check(in *Input, opts Options) []diag.Diagnostic {
	opts = opts.Merged(r.DefaultOptions())
	maxBefore := opts.Int("max-spaces-before", 0)
	maxAfter := opts.Int("max-spaces-after", 1)

	var out []diag.Diagnostic
	for i, tok := range in.Tokens {
		if tok.Kind != token.Value {
			continue
		}
		if i > 0 {
			prev := in.Tokens[i-1]
			if d := checkSpacing(diag.RuleColons, in.Content, in.FileID, prev.Span.End, tok.Span.Start, -1, maxBefore, "before colon"); d != nil {
				out = append(out, *d)
			}
		}
		if i+1 < len(in.Tokens) {
			next := in.Tokens[i+1]
			if d := checkSpacing(diag.RuleColons, in.Content, in.FileID, tok.Span.End, next.Span.Start, -1, maxAfter, "after colon"); d != nil {
				out = append(out, *d)
			}
		}
	}
	return out
}
