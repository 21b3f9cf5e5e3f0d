package rules

import (
	"yamlguard/internal/diag"
	"yamlguard/internal/token"
)

// emptyValueFrame tracks which kind of collection a token position sits
// directly inside, for the narrow purpose of deciding whether a missing
// value there is subject to forbid-in-block-mappings, -flow-mappings, or
// -block-sequences.
type emptyValueFrame uint8

const (
	evFrameBlockMap emptyValueFrame = iota
	evFrameBlockSeq
	evFrameFlowMap
	evFrameFlowSeq
)

// EmptyValuesRule forbids a mapping key or sequence item from having no
// value at all, or a value that is the plain scalar null/~/empty string.
type EmptyValuesRule struct{}

func (*EmptyValuesRule) ID() diag.RuleID                { return diag.RuleEmptyValues }
func (*EmptyValuesRule) DefaultEnabled() bool           { return false }
func (*EmptyValuesRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*EmptyValuesRule) DefaultOptions() Options {
	return Options{
		"forbid-in-block-mappings":  true,
		"forbid-in-flow-mappings":   false,
		"forbid-in-block-sequences": true,
	}
}
func (*EmptyValuesRule) Scope() Scope  { return ScopePerToken }
func (*EmptyValuesRule) Fixable() bool { return false }

func (r *EmptyValuesRule) Check(in *Input, opts Options) []diag.Diagnostic {
	opts = opts.Merged(r.DefaultOptions())
	forbidBlockMap := opts.Bool("forbid-in-block-mappings", true)
	forbidFlowMap := opts.Bool("forbid-in-flow-mappings", false)
	forbidBlockSeq := opts.Bool("forbid-in-block-sequences", true)

	var stack []emptyValueFrame
	top := func() (emptyValueFrame, bool) {
		if len(stack) == 0 {
			return 0, false
		}
		return stack[len(stack)-1], true
	}

	toks := in.Tokens
	var out []diag.Diagnostic
	for i, tok := range toks {
		switch tok.Kind {
		case token.BlockMappingStart:
			stack = append(stack, evFrameBlockMap)
		case token.BlockSequenceStart:
			stack = append(stack, evFrameBlockSeq)
		case token.FlowMappingStart:
			stack = append(stack, evFrameFlowMap)
		case token.FlowSequenceStart:
			stack = append(stack, evFrameFlowSeq)
		case token.BlockEnd, token.FlowMappingEnd, token.FlowSequenceEnd:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case token.Value:
			f, ok := top()
			forbid := ok && ((f == evFrameBlockMap && forbidBlockMap) || (f == evFrameFlowMap && forbidFlowMap))
			if forbid && isEmptyValueAfter(toks, i+1) {
				out = append(out, diag.NewError(diag.RuleEmptyValues, tok.Span, "empty value in mapping"))
			}
		case token.BlockEntry:
			f, ok := top()
			if ok && f == evFrameBlockSeq && forbidBlockSeq && isEmptyValueAfter(toks, i+1) {
				out = append(out, diag.NewError(diag.RuleEmptyValues, tok.Span, "empty value in block sequence"))
			}
		}
	}
	return out
}

// isEmptyValueAfter reports whether, skipping trivia, the position at idx
// has nothing but an implicit null: end of the containing collection, the
// next key/entry, or a plain null/~/empty scalar.
func isEmptyValueAfter(toks []token.Token, idx int) bool {
	for idx < len(toks) {
		t := toks[idx]
		switch t.Kind {
		case token.Comment, token.Newline:
			idx++
			continue
		case token.Scalar:
			if t.ScalarStyle() != token.Plain {
				return false
			}
			switch t.Text {
			case "", "~", "null", "Null", "NULL":
				return true
			default:
				return false
			}
		case token.BlockEnd, token.FlowMappingEnd, token.FlowSequenceEnd, token.FlowEntry,
			token.Key, token.BlockEntry, token.DocumentStart, token.DocumentEnd, token.StreamEnd, token.Invalid:
			return true
		default:
			return false
		}
	}
	return true
}
