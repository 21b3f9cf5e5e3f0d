package fix

import (
	"errors"
	"testing"

	"yamlguard/internal/diag"
	"yamlguard/internal/source"
)

func TestApplyRewritesBuffer(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.yaml", []byte("key:   value\n"))
	content := fs.Get(fileID).Content

	span := source.Span{File: fileID, Start: 4, End: 7}
	diags := []diag.Diagnostic{
		diag.NewError(diag.RuleColons, span, "too many spaces after colon").
			WithFix("collapse spaces", diag.Edit{Span: span, Replacement: []byte(" ")}),
	}

	result, err := Apply(content, diags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Applied != 1 {
		t.Fatalf("expected 1 applied edit, got %d", result.Applied)
	}
	if string(result.Fixed) != "key: value\n" {
		t.Fatalf("unexpected fixed buffer: %q", result.Fixed)
	}
}

func TestApplyNoFixesReturnsErrNoFixes(t *testing.T) {
	content := []byte("key: value\n")
	_, err := Apply(content, nil)
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("expected ErrNoFixes, got %v", err)
	}
}

func TestApplyRejectsOverlappingEdits(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.yaml", []byte("abcdef\n"))
	content := fs.Get(fileID).Content

	spanA := source.Span{File: fileID, Start: 1, End: 4}
	spanB := source.Span{File: fileID, Start: 2, End: 5}
	diags := []diag.Diagnostic{
		diag.NewError(diag.RuleColons, spanA, "first").
			WithFix("first fix", diag.Edit{Span: spanA, Replacement: []byte("X")}),
		diag.NewError(diag.RuleCommas, spanB, "second").
			WithFix("second fix", diag.Edit{Span: spanB, Replacement: []byte("Y")}),
	}

	result, err := Apply(content, diags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Applied != 1 {
		t.Fatalf("expected exactly 1 accepted edit, got %d", result.Applied)
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("expected 1 skipped edit, got %d", len(result.Skipped))
	}
	if string(result.Fixed) != "aXef\n" {
		t.Fatalf("unexpected fixed buffer: %q", result.Fixed)
	}
}

func TestConvergeStopsWhenRelintFindsNoFixableDiagnostics(t *testing.T) {
	content := []byte("key: value\n")
	calls := 0
	relint := func(b []byte) ([]diag.Diagnostic, error) {
		calls++
		return nil, nil
	}

	result, err := Converge(content, relint)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Converged {
		t.Fatalf("expected convergence on the first pass")
	}
	if calls != 1 {
		t.Fatalf("expected exactly 1 relint call, got %d", calls)
	}
}

func TestConvergeAppliesAcrossPasses(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.yaml", []byte("a:  b\n"))

	pass := 0
	relint := func(b []byte) ([]diag.Diagnostic, error) {
		pass++
		idx := indexOf(b, "  ")
		if idx < 0 {
			return nil, nil
		}
		span := source.Span{File: fileID, Start: uint32(idx), End: uint32(idx + 2)}
		return []diag.Diagnostic{
			diag.NewError(diag.RuleColons, span, "too many spaces").
				WithFix("collapse", diag.Edit{Span: span, Replacement: []byte(" ")}),
		}, nil
	}

	result, err := Converge(fs.Get(fileID).Content, relint)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Converged {
		t.Fatalf("expected eventual convergence")
	}
	if string(result.Fixed) != "a: b\n" {
		t.Fatalf("unexpected final buffer: %q", result.Fixed)
	}
	if pass != 2 {
		t.Fatalf("expected 2 relint passes, got %d", pass)
	}
}

func TestConvergeStopsUnconvergedAfterMaxPasses(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.yaml", []byte("ab\n"))

	// A relint that always finds the same fixable diagnostic never lets
	// Apply return ErrNoFixes, so Converge must give up after
	// MaxConvergencePasses rather than loop forever.
	relint := func(b []byte) ([]diag.Diagnostic, error) {
		span := source.Span{File: fileID, Start: 0, End: 1}
		return []diag.Diagnostic{
			diag.NewError(diag.RuleColons, span, "never settles").
				WithFix("no-op replace", diag.Edit{Span: span, Replacement: b[0:1]}),
		}, nil
	}

	result, err := Converge(fs.Get(fileID).Content, relint)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Converged {
		t.Fatalf("expected the loop to give up without converging")
	}
	if result.Passes != MaxConvergencePasses {
		t.Fatalf("expected exactly %d passes, got %d", MaxConvergencePasses, result.Passes)
	}
	if len(result.Remaining) == 0 {
		t.Fatalf("expected the last relint pass's diagnostics to survive as Remaining")
	}
}

func indexOf(b []byte, sub string) int {
	for i := 0; i+len(sub) <= len(b); i++ {
		if string(b[i:i+len(sub)]) == sub {
			return i
		}
	}
	return -1
}
