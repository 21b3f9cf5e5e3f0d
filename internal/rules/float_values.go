package rules

import (
	"regexp"

	"yamlguard/internal/astyaml"
	"yamlguard/internal/diag"
	"yamlguard/internal/token"
)

var (
	nanRe        = regexp.MustCompile(`^\.(nan|NaN|NAN)$`)
	infRe        = regexp.MustCompile(`^[+-]?\.(inf|Inf|INF)$`)
	scientificRe = regexp.MustCompile(`^[+-]?(\.[0-9]+|[0-9]+(\.[0-9]*)?)[eE][+-]?[0-9]+$`)
	bareDecimalRe = regexp.MustCompile(`^[+-]?\.[0-9]+$`)
)

// FloatValuesRule gates four independent checks on plain scalars that
// parse as floats: NaN/Inf spellings, scientific notation, and a decimal
// point with no leading numeral.
type FloatValuesRule struct{}

func (*FloatValuesRule) ID() diag.RuleID                { return diag.RuleFloatValues }
func (*FloatValuesRule) DefaultEnabled() bool           { return false }
func (*FloatValuesRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*FloatValuesRule) DefaultOptions() Options {
	return Options{
		"forbid-nan":                    false,
		"forbid-inf":                    false,
		"forbid-scientific-notation":    false,
		"require-numeral-before-decimal": false,
	}
}
func (*FloatValuesRule) Scope() Scope  { return ScopePerNode }
func (*FloatValuesRule) Fixable() bool { return false }

func (r *FloatValuesRule) Check(in *Input, opts Options) []diag.Diagnostic {
	opts = opts.Merged(r.DefaultOptions())
	forbidNaN := opts.Bool("forbid-nan", false)
	forbidInf := opts.Bool("forbid-inf", false)
	forbidScientific := opts.Bool("forbid-scientific-notation", false)
	requireNumeral := opts.Bool("require-numeral-before-decimal", false)

	var out []diag.Diagnostic
	walkScalars(in.Tree, func(s *astyaml.Scalar) {
		if s.Style != token.Plain {
			return
		}
		switch {
		case forbidNaN && nanRe.MatchString(s.Value):
			out = append(out, diag.NewError(diag.RuleFloatValues, s.Span(), "forbidden NaN value"))
		case forbidInf && infRe.MatchString(s.Value):
			out = append(out, diag.NewError(diag.RuleFloatValues, s.Span(), "forbidden infinite value"))
		case forbidScientific && scientificRe.MatchString(s.Value):
			out = append(out, diag.NewError(diag.RuleFloatValues, s.Span(), "forbidden scientific notation"))
		case requireNumeral && bareDecimalRe.MatchString(s.Value):
			out = append(out, diag.NewError(diag.RuleFloatValues, s.Span(), "float value requires a numeral before the decimal point"))
		}
	})
	return out
}
