package rules

import (
	"yamlguard/internal/diag"
	"yamlguard/internal/token"
)

// CommasRule checks the whitespace immediately before and after a flow
// collection's ','.
type CommasRule struct{}

func (*CommasRule) ID() diag.RuleID                { return diag.RuleCommas }
func (*CommasRule) DefaultEnabled() bool           { return true }
func (*CommasRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*CommasRule) DefaultOptions() Options {
	return Options{"max-spaces-before": 0, "min-spaces-after": 1, "max-spaces-after": 1}
}
func (*CommasRule) Scope() Scope  { return ScopePerToken }
func (*CommasRule) Fixable() bool { return true }

func (r *CommasRule) Check(in *Input, opts Options) []diag.Diagnostic {
	opts = opts.Merged(r.DefaultOptions())
	maxBefore := opts.Int("max-spaces-before", 0)
	minAfter := opts.Int("min-spaces-after", 1)
	maxAfter := opts.Int("max-spaces-after", 1)

	var out []diag.Diagnostic
	for i, tok := range in.Tokens {
		if tok.Kind != token.FlowEntry {
			continue
		}
		if i > 0 {
			prev := in.Tokens[i-1]
			if d := checkSpacing(diag.RuleCommas, in.Content, in.FileID, prev.Span.End, tok.Span.Start, -1, maxBefore, "before comma"); d != nil {
				out = append(out, *d)
			}
		}
		if i+1 < len(in.Tokens) {
			next := in.Tokens[i+1]
			if next.Kind == token.FlowSequenceEnd || next.Kind == token.FlowMappingEnd {
				continue // trailing comma before a closing bracket has no "after" gap to measure
			}
			if d := checkSpacing(diag.RuleCommas, in.Content, in.FileID, tok.Span.End, next.Span.Start, minAfter, maxAfter, "after comma"); d != nil {
				out = append(out, *d)
			}
		}
	}
	return out
}
