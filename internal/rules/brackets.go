package rules

import (
	"yamlguard/internal/diag"
	"yamlguard/internal/token"
)

// BracketsRule checks spacing just inside '['/']' and can forbid flow
// sequences outright.
type BracketsRule struct{}

func (*BracketsRule) ID() diag.RuleID                { return diag.RuleBrackets }
func (*BracketsRule) DefaultEnabled() bool           { return true }
func (*BracketsRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*BracketsRule) DefaultOptions() Options {
	return Options{
		"min-spaces-inside":       0,
		"max-spaces-inside":       0,
		"min-spaces-inside-empty": -1,
		"max-spaces-inside-empty": -1,
		"forbid":                  false,
	}
}
func (*BracketsRule) Scope() Scope  { return ScopePerToken }
func (*BracketsRule) Fixable() bool { return true }

func (r *BracketsRule) Check(in *Input, opts Options) []diag.Diagnostic {
	opts = opts.Merged(r.DefaultOptions())
	return checkFlowBounds(diag.RuleBrackets, in, token.FlowSequenceStart, token.FlowSequenceEnd, opts)
}
