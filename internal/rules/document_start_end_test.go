package rules

import "testing"

func TestDocumentStartRequiredByDefault(t *testing.T) {
	src := "a: 1\n"
	r := &DocumentStartRule{}
	diags := r.Check(inputFor(t, src), r.DefaultOptions())
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic for missing '---', got %d: %v", len(diags), diags)
	}
}

func TestDocumentStartSatisfiedByMarker(t *testing.T) {
	src := "---\na: 1\n"
	r := &DocumentStartRule{}
	diags := r.Check(inputFor(t, src), r.DefaultOptions())
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
}

func TestDocumentStartForbiddenFlagsMarker(t *testing.T) {
	src := "---\na: 1\n"
	opts := Options{"present": false}
	r := &DocumentStartRule{}
	diags := r.Check(inputFor(t, src), opts)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic for forbidden '---', got %d: %v", len(diags), diags)
	}
}

func TestDocumentEndDisabledByDefaultStillChecksWhenInvoked(t *testing.T) {
	src := "a: 1\n"
	r := &DocumentEndRule{}
	diags := r.Check(inputFor(t, src), r.DefaultOptions())
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic for missing '...', got %d: %v", len(diags), diags)
	}
}
