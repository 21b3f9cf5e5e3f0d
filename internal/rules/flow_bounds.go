package rules

import (
	"yamlguard/internal/diag"
	"yamlguard/internal/token"
)

// checkFlowBounds implements the shared contract of braces and brackets:
// spacing just inside the opening/closing punctuation (with a separate
// bound for the empty-collection case), plus an optional outright ban on
// the flow collection kind itself.
func checkFlowBounds(rule diag.RuleID, in *Input, startKind, endKind token.Kind, opts Options) []diag.Diagnostic {
	minInside := opts.Int("min-spaces-inside", 0)
	maxInside := opts.Int("max-spaces-inside", 0)
	minEmpty := opts.Int("min-spaces-inside-empty", -1)
	maxEmpty := opts.Int("max-spaces-inside-empty", -1)
	forbid := opts["forbid"]

	pairs := matchFlowPairs(in.Tokens, startKind, endKind)

	var out []diag.Diagnostic
	for startIdx, endIdx := range pairs {
		startTok := in.Tokens[startIdx]
		endTok := in.Tokens[endIdx]
		empty := endIdx == startIdx+1

		switch v := forbid.(type) {
		case bool:
			if v {
				out = append(out, diag.NewError(rule, startTok.Span, "flow collection is forbidden"))
				continue
			}
		case string:
			if v == "non-empty" && !empty {
				out = append(out, diag.NewError(rule, startTok.Span, "non-empty flow collection is forbidden"))
				continue
			}
		}

		min, max := minInside, maxInside
		if empty {
			if minEmpty >= 0 {
				min = minEmpty
			}
			if maxEmpty >= 0 {
				max = maxEmpty
			}
		}

		if empty {
			if d := checkSpacing(rule, in.Content, in.FileID, startTok.Span.End, endTok.Span.Start, min, max, "inside empty collection"); d != nil {
				out = append(out, *d)
			}
			continue
		}

		if startIdx+1 < len(in.Tokens) {
			next := in.Tokens[startIdx+1]
			if d := checkSpacing(rule, in.Content, in.FileID, startTok.Span.End, next.Span.Start, min, max, "inside opening"); d != nil {
				out = append(out, *d)
			}
		}
		if endIdx-1 >= 0 {
			prev := in.Tokens[endIdx-1]
			if d := checkSpacing(rule, in.Content, in.FileID, prev.Span.End, endTok.Span.Start, min, max, "inside closing"); d != nil {
				out = append(out, *d)
			}
		}
	}
	return out
}
