package rules

import (
	"fmt"
	"sort"
	"strings"

	"yamlguard/internal/astyaml"
	"yamlguard/internal/diag"
	"yamlguard/internal/token"
)

var truthyVocabulary = map[string]bool{
	"y": true, "Y": true, "yes": true, "Yes": true, "YES": true,
	"n": true, "N": true, "no": true, "No": true, "NO": true,
	"true": true, "True": true, "TRUE": true,
	"false": true, "False": true, "FALSE": true,
	"on": true, "On": true, "ON": true,
	"off": true, "Off": true, "OFF": true,
}

// TruthyRule flags plain scalars that use YAML 1.1's truthy vocabulary
// instead of one of the configured allowed spellings.
type TruthyRule struct{}

func (*TruthyRule) ID() diag.RuleID                { return diag.RuleTruthy }
func (*TruthyRule) DefaultEnabled() bool           { return true }
func (*TruthyRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*TruthyRule) DefaultOptions() Options {
	return Options{"allowed-values": []string{"true", "false"}, "check-keys": true}
}
func (*TruthyRule) Scope() Scope  { return ScopePerNode }
func (*TruthyRule) Fixable() bool { return false }

func (r *TruthyRule) Check(in *Input, opts Options) []diag.Diagnostic {
	opts = opts.Merged(r.DefaultOptions())
	allowedValues := opts.StringSlice("allowed-values", []string{"true", "false"})
	allowed := map[string]bool{}
	for _, v := range allowedValues {
		allowed[v] = true
	}
	checkKeys := opts.Bool("check-keys", true)
	message := fmt.Sprintf("truthy value should be one of %s", formatAllowedValues(allowedValues))

	var out []diag.Diagnostic
	walkScalarsWithRole(in.Tree, func(s *astyaml.Scalar, isKey bool) {
		if s.Style != token.Plain {
			return
		}
		if isKey && !checkKeys {
			return
		}
		if !truthyVocabulary[s.Value] || allowed[s.Value] {
			return
		}
		out = append(out, diag.NewError(diag.RuleTruthy, s.Span(), message))
	})
	return out
}

// formatAllowedValues renders an allowed-values list the way spec.md §8's
// boundary scenario documents it: sorted, comma-separated, e.g.
// "[false, true]" rather than Go's default space-separated %v form.
func formatAllowedValues(values []string) string {
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	return "[" + strings.Join(sorted, ", ") + "]"
}
