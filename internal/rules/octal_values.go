package rules

import (
	"regexp"

	"yamlguard/internal/astyaml"
	"yamlguard/internal/diag"
	"yamlguard/internal/token"
)

var (
	implicitOctalRe = regexp.MustCompile(`^0[0-7]+$`)
	explicitOctalRe = regexp.MustCompile(`^0o[0-7]+$`)
)

// OctalValuesRule flags plain scalars written as implicit or explicit
// octal literals.
type OctalValuesRule struct{}

func (*OctalValuesRule) ID() diag.RuleID                { return diag.RuleOctalValues }
func (*OctalValuesRule) DefaultEnabled() bool           { return true }
func (*OctalValuesRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*OctalValuesRule) DefaultOptions() Options {
	return Options{"forbid-implicit-octal": true, "forbid-explicit-octal": false}
}
func (*OctalValuesRule) Scope() Scope  { return ScopePerNode }
func (*OctalValuesRule) Fixable() bool { return false }

func (r *OctalValuesRule) Check(in *Input, opts Options) []diag.Diagnostic {
	opts = opts.Merged(r.DefaultOptions())
	forbidImplicit := opts.Bool("forbid-implicit-octal", true)
	forbidExplicit := opts.Bool("forbid-explicit-octal", false)

	var out []diag.Diagnostic
	walkScalars(in.Tree, func(s *astyaml.Scalar) {
		if s.Style != token.Plain {
			return
		}
		if forbidImplicit && implicitOctalRe.MatchString(s.Value) {
			out = append(out, diag.NewError(diag.RuleOctalValues, s.Span(), "value is not an explicit octal (use 0o prefix)"))
		}
		if forbidExplicit && explicitOctalRe.MatchString(s.Value) {
			out = append(out, diag.NewError(diag.RuleOctalValues, s.Span(), "forbidden explicit octal value"))
		}
	})
	return out
}
