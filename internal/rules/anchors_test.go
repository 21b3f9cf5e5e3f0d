package rules

import "testing"

func TestAnchorsAllowsDeclaredAlias(t *testing.T) {
	src := "a: &x 1\nb: *x\n"
	r := &AnchorsRule{}
	diags := r.Check(inputFor(t, src), r.DefaultOptions())
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
}

func TestAnchorsFlagsUndeclaredAlias(t *testing.T) {
	src := "a: *missing\n"
	r := &AnchorsRule{}
	diags := r.Check(inputFor(t, src), r.DefaultOptions())
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
}

func TestAnchorsFlagsDuplicatedAnchorWhenForbidden(t *testing.T) {
	src := "a: &x 1\nb: &x 2\n"
	opts := Options{"forbid-undeclared-aliases": true, "forbid-duplicated-anchors": true, "forbid-unused-anchors": false}
	r := &AnchorsRule{}
	diags := r.Check(inputFor(t, src), opts)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
}

func TestAnchorsFlagsUnusedAnchorWhenForbidden(t *testing.T) {
	src := "a: &x 1\n"
	opts := Options{"forbid-undeclared-aliases": true, "forbid-duplicated-anchors": false, "forbid-unused-anchors": true}
	r := &AnchorsRule{}
	diags := r.Check(inputFor(t, src), opts)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
}
