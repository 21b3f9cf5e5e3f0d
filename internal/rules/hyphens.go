package rules

import (
	"yamlguard/internal/diag"
	"yamlguard/internal/token"
)

// HyphensRule checks the whitespace after a block sequence's '-'.
type HyphensRule struct{}

func (*HyphensRule) ID() diag.RuleID                { return diag.RuleHyphens }
func (*HyphensRule) DefaultEnabled() bool           { return true }
func (*HyphensRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*HyphensRule) DefaultOptions() Options        { return Options{"max-spaces-after": 1} }
func (*HyphensRule) Scope() Scope                   { return ScopePerToken }
func (*HyphensRule) Fixable() bool                  { return true }

func (r *HyphensRule) Check(in *Input, opts Options) []diag.Diagnostic {
	opts = opts.Merged(r.DefaultOptions())
	maxAfter := opts.Int("max-spaces-after", 1)

	var out []diag.Diagnostic
	for i, tok := range in.Tokens {
		if tok.Kind != token.BlockEntry {
			continue
		}
		if i+1 >= len(in.Tokens) {
			continue
		}
		next := in.Tokens[i+1]
		if next.Kind == token.Newline {
			continue // "-" with nothing else on the line: no after-gap to measure
		}
		if d := checkSpacing(diag.RuleHyphens, in.Content, in.FileID, tok.Span.End, next.Span.Start, -1, maxAfter, "after hyphen"); d != nil {
			out = append(out, *d)
		}
	}
	return out
}
