package rules

import (
	"fmt"

	"yamlguard/internal/diag"
	"yamlguard/internal/lines"
)

// EmptyLinesRule caps how many consecutive empty lines may appear in the
// body of the file, at its head, and at its tail.
type EmptyLinesRule struct{}

func (*EmptyLinesRule) ID() diag.RuleID                { return diag.RuleEmptyLines }
func (*EmptyLinesRule) DefaultEnabled() bool           { return true }
func (*EmptyLinesRule) DefaultSeverity() diag.Severity { return diag.SevError }
func (*EmptyLinesRule) DefaultOptions() Options {
	return Options{"max": 2, "max-start": 0, "max-end": 0}
}
func (*EmptyLinesRule) Scope() Scope  { return ScopePerLine }
func (*EmptyLinesRule) Fixable() bool { return true }

func (r *EmptyLinesRule) Check(in *Input, opts Options) []diag.Diagnostic {
	opts = opts.Merged(r.DefaultOptions())
	max := opts.Int("max", 2)
	maxStart := opts.Int("max-start", 0)
	maxEnd := opts.Int("max-end", 0)

	all := in.Lines.Lines()
	var out []diag.Diagnostic

	// lastContent is the index (exclusive upper bound) of the last
	// non-empty line; a run ending at or after it is the trailing run.
	lastContent := -1
	for idx, ln := range all {
		if !ln.IsEmpty() {
			lastContent = idx
		}
	}

	i := 0
	seenContent := false
	for i < len(all) {
		if !all[i].IsEmpty() {
			seenContent = true
			i++
			continue
		}
		runStart := i
		for i < len(all) && all[i].IsEmpty() {
			i++
		}
		runEnd := i // exclusive
		isHead := !seenContent
		isTail := runStart > lastContent

		allowed, label := max, "empty lines"
		switch {
		case isTail:
			allowed, label = maxEnd, "empty lines at the end of the file"
		case isHead:
			allowed, label = maxStart, "empty lines at the beginning of the file"
		}

		for idx := runStart + allowed; idx < runEnd; idx++ {
			ln := all[idx]
			sp := in.Span(ln.ByteRange.Start, lineSpanEnd(all, idx))
			d := diag.NewError(diag.RuleEmptyLines, in.Span(ln.ByteRange.Start, ln.ByteRange.End),
				fmt.Sprintf("too many %s (%d > %d)", label, runEnd-runStart, allowed)).
				WithFix("remove surplus empty line", diag.Edit{Span: sp, Replacement: nil})
			out = append(out, d)
		}
	}
	return out
}

// lineSpanEnd extends a line's span through its own terminator so deleting
// it also removes the newline, not just the (empty) content before it.
func lineSpanEnd(all []lines.Line, idx int) uint32 {
	if idx+1 < len(all) {
		return all[idx+1].ByteRange.Start
	}
	return all[idx].ByteRange.End
}
