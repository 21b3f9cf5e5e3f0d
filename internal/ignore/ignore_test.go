package ignore

import "testing"

func TestMatchBasenamePattern(t *testing.T) {
	m := Compile([]string{"*.generated.yaml"})
	if !m.Match("pkg/foo.generated.yaml", false) {
		t.Fatalf("expected nested file to match an unanchored basename glob")
	}
	if m.Match("pkg/foo.yaml", false) {
		t.Fatalf("did not expect a non-matching file to be excluded")
	}
}

func TestMatchAnchoredPattern(t *testing.T) {
	m := Compile([]string{"/build/*.yaml"})
	if !m.Match("build/out.yaml", false) {
		t.Fatalf("expected anchored pattern to match at the root")
	}
	if m.Match("pkg/build/out.yaml", false) {
		t.Fatalf("anchored pattern should not match a nested build directory")
	}
}

func TestMatchDirOnlyPattern(t *testing.T) {
	m := Compile([]string{"vendor/"})
	if !m.Match("vendor", true) {
		t.Fatalf("expected directory-only pattern to match a directory")
	}
	if m.Match("vendor", false) {
		t.Fatalf("directory-only pattern should not match a plain file")
	}
}

func TestNegationReincludesPath(t *testing.T) {
	m := Compile([]string{"*.yaml", "!keep.yaml"})
	if m.Match("keep.yaml", false) {
		t.Fatalf("expected negated pattern to re-include keep.yaml")
	}
	if !m.Match("drop.yaml", false) {
		t.Fatalf("expected drop.yaml to remain excluded")
	}
}

func TestCommentsAndBlankLinesIgnored(t *testing.T) {
	m := Compile([]string{"# a comment", "", "*.yaml"})
	if len(m.patterns) != 1 {
		t.Fatalf("expected comments and blank lines to be skipped, got %d patterns", len(m.patterns))
	}
}

func TestNilMatcherMatchesNothing(t *testing.T) {
	var m *Matcher
	if m.Match("anything.yaml", false) {
		t.Fatalf("a nil matcher should never exclude anything")
	}
}
