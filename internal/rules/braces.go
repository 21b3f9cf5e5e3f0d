package rules

import (
	"yamlguard/internal/diag"
	"yamlguard/internal/token"
)

// BracesRule checks spacing just inside '{'/'}' and can forbid flow
// mappings outright.
type BracesRule struct{}

func (*BracesRule) ID() diag.RuleID                { return diag.RuleBraces }
func (*BracesRule) DefaultEnabled() bool           { return true }
func (*BracesRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*BracesRule) DefaultOptions() Options {
	return Options{
		"min-spaces-inside":       0,
		"max-spaces-inside":       0,
		"min-spaces-inside-empty": -1,
		"max-spaces-inside-empty": -1,
		"forbid":                  false,
	}
}
func (*BracesRule) Scope() Scope  { return ScopePerToken }
func (*BracesRule) Fixable() bool { return true }

func (r *BracesRule) Check(in *Input, opts Options) []diag.Diagnostic {
	opts = opts.Merged(r.DefaultOptions())
	return checkFlowBounds(diag.RuleBraces, in, token.FlowMappingStart, token.FlowMappingEnd, opts)
}
