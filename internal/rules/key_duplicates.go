package rules

import (
	"fmt"

	"yamlguard/internal/astyaml"
	"yamlguard/internal/diag"
)

// KeyDuplicatesRule forbids two entries of the same mapping from sharing a
// canonical key. Two list items, even with identical internal keys, are
// independent mappings and don't collide.
type KeyDuplicatesRule struct{}

func (*KeyDuplicatesRule) ID() diag.RuleID                { return diag.RuleKeyDuplicates }
func (*KeyDuplicatesRule) DefaultEnabled() bool           { return true }
func (*KeyDuplicatesRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*KeyDuplicatesRule) DefaultOptions() Options        { return nil }
func (*KeyDuplicatesRule) Scope() Scope                   { return ScopePerNode }
func (*KeyDuplicatesRule) Fixable() bool                  { return false }

func (*KeyDuplicatesRule) Check(in *Input, _ Options) []diag.Diagnostic {
	var out []diag.Diagnostic
	walkMappings(in.Tree, func(m *astyaml.Mapping) {
		seen := map[string]astyaml.Node{}
		for _, entry := range m.Entries {
			key, ok := entry.Key.(*astyaml.Scalar)
			if !ok {
				continue
			}
			canon := canonicalValue(key)
			if first, dup := seen[canon]; dup {
				out = append(out, diag.NewError(diag.RuleKeyDuplicates, key.Span(),
					fmt.Sprintf("duplication of key %q in mapping", canon)).
					WithNote(first.Span(), "first defined here"))
				continue
			}
			seen[canon] = key
		}
	})
	return out
}
