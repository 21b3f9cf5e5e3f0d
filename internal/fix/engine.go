// Package fix applies the edits attached to fixable diagnostics to one
// in-memory buffer.
package fix

import (
	"errors"
	"fmt"
	"sort"

	"yamlguard/internal/diag"
)

// ErrNoFixes is returned when no diagnostic carried an applicable fix.
var ErrNoFixes = errors.New("no applicable fixes found")

// SkippedEdit records an edit that was dropped because it overlapped one
// already accepted earlier in sort order.
type SkippedEdit struct {
	RuleID diag.RuleID
	Reason string
}

// Result summarizes one Apply pass.
type Result struct {
	Fixed   []byte
	Applied int
	Skipped []SkippedEdit
}

type taggedEdit struct {
	diag.Edit
	rule diag.RuleID
}

// Apply flattens every fixable diagnostic's first Fix into one edit list,
// sorted ascending by (byte_range.start, rule_id), rejects edits that
// overlap one already accepted, and splices the survivors into content in
// descending byte order so earlier offsets stay valid as later ones are
// applied.
func Apply(content []byte, diagnostics []diag.Diagnostic) (*Result, error) {
	edits := gatherEdits(diagnostics)
	if len(edits) == 0 {
		return &Result{Fixed: content}, ErrNoFixes
	}

	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].Span.Start != edits[j].Span.Start {
			return edits[i].Span.Start < edits[j].Span.Start
		}
		return edits[i].rule < edits[j].rule
	})

	accepted := make([]taggedEdit, 0, len(edits))
	skipped := make([]SkippedEdit, 0)
	var lastEnd uint32
	for i, e := range edits {
		if len(accepted) > 0 && e.Span.Start < lastEnd {
			skipped = append(skipped, SkippedEdit{
				RuleID: e.rule,
				Reason: fmt.Sprintf("edit at byte %d overlaps a previously accepted edit ending at %d", e.Span.Start, lastEnd),
			})
			continue
		}
		accepted = append(accepted, e)
		lastEnd = e.Span.End
		_ = i
	}

	if len(accepted) == 0 {
		return &Result{Fixed: content, Skipped: skipped}, ErrNoFixes
	}

	fixed := append([]byte(nil), content...)
	for i := len(accepted) - 1; i >= 0; i-- {
		e := accepted[i]
		if int(e.Span.End) > len(fixed) || e.Span.Start > e.Span.End {
			skipped = append(skipped, SkippedEdit{RuleID: e.rule, Reason: "edit span out of range"})
			continue
		}
		suffix := append([]byte(nil), fixed[e.Span.End:]...)
		fixed = append(append(fixed[:e.Span.Start], e.Replacement...), suffix...)
	}

	return &Result{Fixed: fixed, Applied: len(accepted), Skipped: skipped}, nil
}

func gatherEdits(diagnostics []diag.Diagnostic) []taggedEdit {
	edits := make([]taggedEdit, 0)
	for _, d := range diagnostics {
		if len(d.Fixes) == 0 {
			continue
		}
		// A rule's own overlapping edits within one fix are a rule bug;
		// the applier only resolves conflicts *between* diagnostics.
		for _, e := range d.Fixes[0].Edits {
			edits = append(edits, taggedEdit{Edit: e, rule: d.RuleID})
		}
	}
	return edits
}

// MaxConvergencePasses bounds the fix/re-lint loop: a rule whose fix
// doesn't silence the diagnostic it fixes would otherwise lint forever.
const MaxConvergencePasses = 10

// ConvergeResult is the outcome of Converge.
type ConvergeResult struct {
	Fixed     []byte
	Passes    int
	Converged bool
	// Remaining holds the diagnostics from the final lint pass.
	Remaining []diag.Diagnostic
}

// Converge repeatedly lints content and applies fixable diagnostics until a
// pass produces no new fix, or MaxConvergencePasses is reached without
// settling. relint is supplied by the caller (internal/lintcore) so this
// package never depends on the scanner/parser/rule stack.
func Converge(content []byte, relint func([]byte) ([]diag.Diagnostic, error)) (*ConvergeResult, error) {
	current := content
	var diags []diag.Diagnostic
	for pass := 1; pass <= MaxConvergencePasses; pass++ {
		var err error
		diags, err = relint(current)
		if err != nil {
			return nil, fmt.Errorf("fix: relint pass %d: %w", pass, err)
		}

		result, err := Apply(current, diags)
		if errors.Is(err, ErrNoFixes) {
			return &ConvergeResult{Fixed: current, Passes: pass, Converged: true, Remaining: diags}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("fix: apply pass %d: %w", pass, err)
		}
		current = result.Fixed
	}
	return &ConvergeResult{Fixed: current, Passes: MaxConvergencePasses, Converged: false, Remaining: diags}, nil
}
