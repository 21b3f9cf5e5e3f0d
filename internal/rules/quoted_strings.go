package rules

import (
	"regexp"
	"strings"

	"yamlguard/internal/astyaml"
	"yamlguard/internal/diag"
	"yamlguard/internal/token"
)

// QuotedStringsRule controls whether plain scalars must, must not, or only
// conditionally carry quotes, and which quote character is acceptable.
type QuotedStringsRule struct{}

func (*QuotedStringsRule) ID() diag.RuleID                { return diag.RuleQuotedStrings }
func (*QuotedStringsRule) DefaultEnabled() bool           { return false }
func (*QuotedStringsRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*QuotedStringsRule) DefaultOptions() Options {
	return Options{
		"required":            true,
		"quote-type":          "any",
		"extra-required":      []string{},
		"extra-allowed":       []string{},
		"allow-quoted-quotes": false,
		"check-keys":          false,
	}
}
func (*QuotedStringsRule) Scope() Scope  { return ScopePerNode }
func (*QuotedStringsRule) Fixable() bool { return false }

func (r *QuotedStringsRule) Check(in *Input, opts Options) []diag.Diagnostic {
	opts = opts.Merged(r.DefaultOptions())
	quoteType := opts.String("quote-type", "any")
	extraRequired := compileRegexList(opts.StringSlice("extra-required", nil))
	extraAllowed := compileRegexList(opts.StringSlice("extra-allowed", nil))
	allowQuotedQuotes := opts.Bool("allow-quoted-quotes", false)
	checkKeys := opts.Bool("check-keys", false)
	required := opts["required"]

	var out []diag.Diagnostic
	walkScalarsWithRole(in.Tree, func(s *astyaml.Scalar, isKey bool) {
		if isKey && !checkKeys {
			return
		}
		if s.Style == token.Literal || s.Style == token.Folded {
			return
		}

		quoted := s.Style == token.SingleQuoted || s.Style == token.DoubleQuoted
		canon := canonicalValue(s)
		forcedRequired := matchesAny(extraRequired, canon)
		forcedAllowed := matchesAny(extraAllowed, canon)

		switch v := required.(type) {
		case bool:
			if v {
				if !quoted && !forcedAllowed {
					out = append(out, diag.NewError(diag.RuleQuotedStrings, s.Span(), "string value is not quoted"))
				}
			} else {
				if quoted && !forcedRequired && !forcedAllowed {
					out = append(out, diag.NewError(diag.RuleQuotedStrings, s.Span(), "string value is redundantly quoted"))
				}
			}
		case string:
			if v == "only-when-needed" {
				needsQuote := forcedRequired || scalarNeedsQuoting(canon)
				switch {
				case quoted && !needsQuote && !forcedAllowed:
					out = append(out, diag.NewError(diag.RuleQuotedStrings, s.Span(), "string value is redundantly quoted"))
				case !quoted && needsQuote:
					out = append(out, diag.NewError(diag.RuleQuotedStrings, s.Span(), "string value is not quoted"))
				}
			}
		}

		if quoted {
			if d := checkQuoteType(s, quoteType, canon, allowQuotedQuotes); d != nil {
				out = append(out, *d)
			}
		}
	})
	return out
}

func checkQuoteType(s *astyaml.Scalar, quoteType, canon string, allowQuotedQuotes bool) *diag.Diagnostic {
	switch quoteType {
	case "single":
		if s.Style == token.DoubleQuoted && !(allowQuotedQuotes && strings.Contains(canon, "'")) {
			d := diag.NewError(diag.RuleQuotedStrings, s.Span(), "string value uses double quotation marks instead of single")
			return &d
		}
	case "double":
		if s.Style == token.SingleQuoted && !(allowQuotedQuotes && strings.Contains(canon, "\"")) {
			d := diag.NewError(diag.RuleQuotedStrings, s.Span(), "string value uses single quotation marks instead of double")
			return &d
		}
	}
	return nil
}

// scalarNeedsQuoting reports whether value, written without quotes, would
// parse as something other than the plain string it represents: YAML 1.1
// truthy/null spellings, numeric-looking text, or text containing a
// character that plain scalar syntax treats specially.
func scalarNeedsQuoting(value string) bool {
	if value == "" {
		return true
	}
	if truthyVocabulary[value] {
		return true
	}
	switch value {
	case "~", "null", "Null", "NULL":
		return true
	}
	if looksNumeric(value) {
		return true
	}
	if strings.TrimSpace(value) != value {
		return true
	}
	for _, c := range specialPlainChars {
		if strings.ContainsRune(value, c) {
			return true
		}
	}
	return false
}

var specialPlainChars = []rune{':', '#', '{', '}', '[', ']', ',', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`'}

var numericRe = regexp.MustCompile(`^[+-]?(0x[0-9a-fA-F]+|0o[0-7]+|[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?|\.[0-9]+|\.(inf|Inf|INF)|\.(nan|NaN|NAN))$`)

func looksNumeric(value string) bool {
	return numericRe.MatchString(strings.TrimPrefix(value, "+"))
}

func compileRegexList(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		if re, err := regexp.Compile(p); err == nil {
			out = append(out, re)
		}
	}
	return out
}

func matchesAny(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
