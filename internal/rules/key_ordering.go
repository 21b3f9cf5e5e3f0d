package rules

import (
	"fmt"

	"yamlguard/internal/astyaml"
	"yamlguard/internal/diag"
)

// KeyOrderingRule requires keys within a mapping to be non-decreasing in
// Unicode codepoint order.
type KeyOrderingRule struct{}

func (*KeyOrderingRule) ID() diag.RuleID                { return diag.RuleKeyOrdering }
func (*KeyOrderingRule) DefaultEnabled() bool           { return false }
func (*KeyOrderingRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*KeyOrderingRule) DefaultOptions() Options        { return nil }
func (*KeyOrderingRule) Scope() Scope                   { return ScopePerNode }
func (*KeyOrderingRule) Fixable() bool                  { return false }

func (*KeyOrderingRule) Check(in *Input, _ Options) []diag.Diagnostic {
	var out []diag.Diagnostic
	walkMappings(in.Tree, func(m *astyaml.Mapping) {
		var prev string
		havePrev := false
		for _, entry := range m.Entries {
			key, ok := entry.Key.(*astyaml.Scalar)
			if !ok {
				continue
			}
			canon := canonicalValue(key)
			if havePrev && canon < prev {
				out = append(out, diag.NewError(diag.RuleKeyOrdering, key.Span(),
					fmt.Sprintf("key %q is not in alphabetical order after %q", canon, prev)))
			}
			prev, havePrev = canon, true
		}
	})
	return out
}
