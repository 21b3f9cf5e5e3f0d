package rules

import (
	"fmt"
	"strings"

	"yamlguard/internal/diag"
	"yamlguard/internal/token"
)

// AnchorsRule runs three independent checks over the anchor/alias name
// table built from the raw token stream: undeclared aliases, duplicated
// anchor names, and anchors that are declared but never referenced.
type AnchorsRule struct{}

func (*AnchorsRule) ID() diag.RuleID                { return diag.RuleAnchors }
func (*AnchorsRule) DefaultEnabled() bool           { return true }
func (*AnchorsRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*AnchorsRule) DefaultOptions() Options {
	return Options{
		"forbid-undeclared-aliases": true,
		"forbid-duplicated-anchors": false,
		"forbid-unused-anchors":     false,
	}
}
func (*AnchorsRule) Scope() Scope  { return ScopePerToken }
func (*AnchorsRule) Fixable() bool { return false }

type anchorDecl struct {
	first     token.Token
	uses      int
	declCount int
}

func (r *AnchorsRule) Check(in *Input, opts Options) []diag.Diagnostic {
	opts = opts.Merged(r.DefaultOptions())
	forbidUndeclared := opts.Bool("forbid-undeclared-aliases", true)
	forbidDuplicated := opts.Bool("forbid-duplicated-anchors", false)
	forbidUnused := opts.Bool("forbid-unused-anchors", false)

	declared := map[string]*anchorDecl{}
	var order []string
	var out []diag.Diagnostic

	for _, tok := range in.Tokens {
		switch tok.Kind {
		case token.Anchor:
			name := strings.TrimPrefix(tok.Text, "&")
			if d, ok := declared[name]; ok {
				d.declCount++
				if forbidDuplicated {
					out = append(out, diag.NewError(diag.RuleAnchors, tok.Span,
						fmt.Sprintf("found duplicated anchor %q", name)).
						WithNote(d.first.Span, "first declared here"))
				}
				continue
			}
			declared[name] = &anchorDecl{first: tok, declCount: 1}
			order = append(order, name)
		case token.Alias:
			name := strings.TrimPrefix(tok.Text, "*")
			d, ok := declared[name]
			if !ok {
				if forbidUndeclared {
					out = append(out, diag.NewError(diag.RuleAnchors, tok.Span,
						fmt.Sprintf("found undeclared alias %q", name)))
				}
				continue
			}
			d.uses++
		}
	}

	if forbidUnused {
		for _, name := range order {
			d := declared[name]
			if d.uses == 0 {
				out = append(out, diag.NewError(diag.RuleAnchors, d.first.Span,
					fmt.Sprintf("found unused anchor %q", name)))
			}
		}
	}
	return out
}
