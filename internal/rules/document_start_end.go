package rules

import (
	"yamlguard/internal/diag"
	"yamlguard/internal/token"
)

// DocumentStartRule requires (or forbids) a "---" marker before each
// document's first content token.
type DocumentStartRule struct{}

func (*DocumentStartRule) ID() diag.RuleID                { return diag.RuleDocumentStart }
func (*DocumentStartRule) DefaultEnabled() bool           { return true }
func (*DocumentStartRule) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (*DocumentStartRule) DefaultOptions() Options        { return Options{"present": true} }
func (*DocumentStartRule) Scope() Scope                   { return ScopeWholeDocument }
func (*DocumentStartRule) Fixable() bool                  { return true }

func (r *DocumentStartRule) Check(in *Input, opts Options) []diag.Diagnostic {
	opts = opts.Merged(r.DefaultOptions())
	present := opts.Bool("present", true)
	if in.Tree == nil {
		return nil
	}

	markers := map[uint32]token.Token{}
	for _, tok := range in.Tokens {
		if tok.Kind == token.DocumentStart {
			markers[tok.Span.Start] = tok
		}
	}

	var out []diag.Diagnostic
	for _, doc := range in.Tree.Documents {
		marker, explicit := markers[doc.Span.Start]
		switch {
		case present && !explicit:
			sp := in.Span(doc.Span.Start, doc.Span.Start)
			out = append(out, diag.NewError(diag.RuleDocumentStart, sp, `missing document start "---"`).
				WithFix("insert document start marker", diag.Edit{Span: sp, Replacement: []byte("---\n")}))
		case !present && explicit:
			end := nextLineEnd(in.Tokens, marker.Span.End)
			sp := in.Span(marker.Span.Start, end)
			out = append(out, diag.NewError(diag.RuleDocumentStart, marker.Span, `found forbidden document start "---"`).
				WithFix("remove document start marker", diag.Edit{Span: sp, Replacement: nil}))
		}
	}
	return out
}

// DocumentEndRule requires (or forbids) a "..." marker after each
// document's last content token.
type DocumentEndRule struct{}

func (*DocumentEndRule) ID() diag.RuleID                { return diag.RuleDocumentEnd }
func (*DocumentEndRule) DefaultEnabled() bool           { return false }
func (*DocumentEndRule) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (*DocumentEndRule) DefaultOptions() Options        { return Options{"present": true} }
func (*DocumentEndRule) Scope() Scope                   { return ScopeWholeDocument }
func (*DocumentEndRule) Fixable() bool                  { return true }

func (r *DocumentEndRule) Check(in *Input, opts Options) []diag.Diagnostic {
	opts = opts.Merged(r.DefaultOptions())
	present := opts.Bool("present", true)
	if in.Tree == nil {
		return nil
	}

	markers := map[uint32]token.Token{}
	for _, tok := range in.Tokens {
		if tok.Kind == token.DocumentEnd {
			markers[tok.Span.End] = tok
		}
	}

	var out []diag.Diagnostic
	for _, doc := range in.Tree.Documents {
		marker, explicit := markers[doc.Span.End]
		switch {
		case present && !explicit:
			sp := in.Span(doc.Span.End, doc.Span.End)
			out = append(out, diag.NewError(diag.RuleDocumentEnd, sp, `missing document end "..."`).
				WithFix("insert document end marker", diag.Edit{Span: sp, Replacement: []byte("...\n")}))
		case !present && explicit:
			end := nextLineEnd(in.Tokens, marker.Span.End)
			sp := in.Span(marker.Span.Start, end)
			out = append(out, diag.NewError(diag.RuleDocumentEnd, marker.Span, `found forbidden document end "..."`).
				WithFix("remove document end marker", diag.Edit{Span: sp, Replacement: nil}))
		}
	}
	return out
}
