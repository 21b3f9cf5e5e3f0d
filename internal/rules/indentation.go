package rules

import (
	"fmt"

	"yamlguard/internal/diag"
	"yamlguard/internal/rulectx"
	"yamlguard/internal/token"
)

// IndentationRule requires each block collection to sit exactly `spaces`
// columns beyond its parent. Sequences nested directly under a mapping key
// follow the `indent-sequences` option instead of the flat `spaces` rule.
type IndentationRule struct{}

func (*IndentationRule) ID() diag.RuleID                { return diag.RuleIndentation }
func (*IndentationRule) DefaultEnabled() bool           { return true }
func (*IndentationRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*IndentationRule) DefaultOptions() Options {
	return Options{
		"spaces":                   2,
		"indent-sequences":         true,
		"check-multi-line-strings": false,
	}
}
func (*IndentationRule) Scope() Scope  { return ScopePerToken }
func (*IndentationRule) Fixable() bool { return false }

func (r *IndentationRule) Check(in *Input, opts Options) []diag.Diagnostic {
	opts = opts.Merged(r.DefaultOptions())
	spaces := opts.Int("spaces", 2)
	indentSeq := opts["indent-sequences"]
	checkMultiLine := opts.Bool("check-multi-line-strings", false)

	// The indent stack itself is the context tracker's job (rulectx), not
	// this rule's: advancing cur alongside the token loop keeps the parent
	// frame available without this rule re-deriving it on its own.
	cur := rulectx.New(in.FS)
	var consistentIndented *bool // resolved choice for indent-sequences: "consistent"

	var out []diag.Diagnostic
	for _, tok := range in.Tokens {
		switch tok.Kind {
		case token.BlockMappingStart:
			parent, hasParent := cur.Top()
			col := r.columnOf(in, tok)
			if hasParent {
				if d := r.checkDelta(in, tok, spaces, col-parent.Col); d != nil {
					out = append(out, *d)
				}
			}
		case token.BlockSequenceStart:
			parent, hasParent := cur.Top()
			col := r.columnOf(in, tok)
			if hasParent {
				delta := col - parent.Col
				if parent.Kind == token.BlockSequenceStart {
					// a sequence nested directly inside another sequence item
					// always indents by `spaces`; there is no key to flush with.
					if d := r.checkDelta(in, tok, spaces, delta); d != nil {
						out = append(out, *d)
					}
				} else {
					out = append(out, r.checkSequenceUnderMapping(in, tok, indentSeq, spaces, delta, &consistentIndented)...)
				}
			}
		case token.Scalar:
			if checkMultiLine && (tok.ScalarStyle() == token.Literal || tok.ScalarStyle() == token.Folded) {
				if d := r.checkMultiLineScalar(in, tok, spaces); d != nil {
					out = append(out, *d)
				}
			}
		}
		cur.Advance(tok)
	}
	return out
}

func (r *IndentationRule) columnOf(in *Input, tok token.Token) int {
	start, _ := in.FS.Resolve(tok.Span)
	return int(start.Col) - 1
}

func (r *IndentationRule) checkDelta(in *Input, tok token.Token, spaces, delta int) *diag.Diagnostic {
	if delta == spaces {
		return nil
	}
	d := diag.NewError(diag.RuleIndentation, tok.Span,
		fmt.Sprintf("wrong indentation: expected %d, found %d", spaces, delta))
	return &d
}

// checkSequenceUnderMapping resolves the indent-sequences option (including
// its "consistent" tie-break, decided by the first such sequence seen in
// the file) and reports a delta that doesn't match the resolved choice.
func (r *IndentationRule) checkSequenceUnderMapping(in *Input, tok token.Token, indentSeq any, spaces, delta int, consistent **bool) []diag.Diagnostic {
	switch v := indentSeq.(type) {
	case bool:
		want := 0
		if v {
			want = spaces
		}
		if d := r.checkDelta(in, tok, want, delta); d != nil {
			return []diag.Diagnostic{*d}
		}
		return nil
	case string:
		switch v {
		case "whatever":
			return nil
		case "consistent":
			indented := delta != 0
			if *consistent == nil {
				*consistent = &indented
				return nil
			}
			want := 0
			if **consistent {
				want = spaces
			}
			if d := r.checkDelta(in, tok, want, delta); d != nil {
				return []diag.Diagnostic{*d}
			}
			return nil
		}
	}
	return nil
}

// checkMultiLineScalar verifies a literal/folded block scalar's content
// lines sit at least `spaces` columns past the scalar's own starting
// column, so a poorly indented block body doesn't silently merge with
// the structure around it.
func (r *IndentationRule) checkMultiLineScalar(in *Input, tok token.Token, spaces int) *diag.Diagnostic {
	start, _ := in.FS.Resolve(tok.Span)
	baseCol := int(start.Col) - 1
	want := baseCol + spaces

	for _, ln := range in.Lines.Lines() {
		if ln.ByteRange.Start < tok.Span.Start || ln.ByteRange.Start >= tok.Span.End {
			continue
		}
		if ln.ByteRange.Start == tok.Span.Start {
			continue // the indicator line itself ("key: |"), not body content
		}
		if ln.IsEmpty() {
			continue
		}
		if ln.IndentWidth < want {
			d := diag.NewError(diag.RuleIndentation, ln.Span(in.FileID),
				fmt.Sprintf("wrong indentation in multi-line scalar: expected at least %d, found %d", want, ln.IndentWidth))
			return &d
		}
	}
	return nil
}
