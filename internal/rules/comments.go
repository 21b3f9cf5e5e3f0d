package rules

import (
	"strings"

	"yamlguard/internal/diag"
	"yamlguard/internal/token"
)

// CommentsRule checks spacing around '#'-introduced comments: how far an
// inline comment sits from the content before it, and whether the comment
// body itself starts with a space.
type CommentsRule struct{}

func (*CommentsRule) ID() diag.RuleID                { return diag.RuleComments }
func (*CommentsRule) DefaultEnabled() bool           { return true }
func (*CommentsRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*CommentsRule) DefaultOptions() Options {
	return Options{"min-spaces-from-content": 2, "require-starting-space": true}
}
func (*CommentsRule) Scope() Scope  { return ScopePerToken }
func (*CommentsRule) Fixable() bool { return true }

func (r *CommentsRule) Check(in *Input, opts Options) []diag.Diagnostic {
	opts = opts.Merged(r.DefaultOptions())
	minSpaces := opts.Int("min-spaces-from-content", 2)
	requireStartSpace := opts.Bool("require-starting-space", true)

	var out []diag.Diagnostic
	for _, tok := range in.Tokens {
		if tok.Kind != token.Comment {
			continue
		}
		ln, ok := lineForOffset(in.Lines, tok.Span.Start)
		if !ok {
			continue
		}
		offsetInLine := int(tok.Span.Start - ln.ByteRange.Start)
		before := ln.Raw[:offsetInLine]
		if trimmed := strings.TrimRight(string(before), " \t"); trimmed != "" {
			spaces := len(before) - len(trimmed)
			if spaces < minSpaces {
				sp := in.Span(ln.ByteRange.Start+u32(len(trimmed)), tok.Span.Start)
				need := minSpaces - spaces
				out = append(out, diag.NewError(diag.RuleComments, sp,
					"too few spaces before comment").
					WithFix("add spaces before comment", diag.Edit{
						Span:        in.Span(tok.Span.Start, tok.Span.Start),
						Replacement: []byte(strings.Repeat(" ", need)),
					}))
			}
		}

		if requireStartSpace && !validCommentStart(tok.Text) {
			insertAt := tok.Span.Start + 1
			out = append(out, diag.NewError(diag.RuleComments, in.Span(insertAt, insertAt),
				"missing starting space in comment").
				WithFix("insert starting space", diag.Edit{
					Span:        in.Span(insertAt, insertAt),
					Replacement: []byte(" "),
				}))
		}
	}
	return out
}

// validCommentStart reports whether a comment's text (including its
// leading '#') satisfies require-starting-space, exempting shebangs and
// the "##" successive-comment idiom.
func validCommentStart(text string) bool {
	rest := strings.TrimPrefix(text, "#")
	if rest == "" {
		return true
	}
	if strings.HasPrefix(rest, "!") || strings.HasPrefix(rest, "#") {
		return true
	}
	return rest[0] == ' '
}
