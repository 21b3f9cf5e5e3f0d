package directive

import (
	"testing"

	"yamlguard/internal/lexer"
	"yamlguard/internal/source"
)

func scopeFor(t *testing.T, src string) *Scope {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.yaml", []byte(src))
	toks, err := lexer.Scan(fileID, []byte(src))
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	return Build(Parse(fs, fileID, toks))
}

func TestDisableEnableAllRules(t *testing.T) {
	src := "a: 1\n# yamllint disable\nb: 2\n# yamllint enable\nc: 3\n"
	s := scopeFor(t, src)

	if s.Suppressed("colons", 1) {
		t.Errorf("line 1 should not be suppressed")
	}
	if !s.Suppressed("colons", 3) {
		t.Errorf("line 3 should be suppressed (inside disable block)")
	}
	if s.Suppressed("colons", 5) {
		t.Errorf("line 5 should not be suppressed (after enable)")
	}
}

func TestDisableSpecificRule(t *testing.T) {
	src := "a: 1\n# yamllint disable rule:colons\nb: 2\n"
	s := scopeFor(t, src)

	if !s.Suppressed("colons", 3) {
		t.Errorf("colons should be suppressed on line 3")
	}
	if s.Suppressed("commas", 3) {
		t.Errorf("commas should not be suppressed on line 3")
	}
}

func TestDisableLineOnlyAffectsThatLine(t *testing.T) {
	src := "a: 1  # yamllint disable-line rule:trailing-spaces\nb: 2\n"
	s := scopeFor(t, src)

	if !s.Suppressed("trailing-spaces", 1) {
		t.Errorf("line 1 should be suppressed")
	}
	if s.Suppressed("trailing-spaces", 2) {
		t.Errorf("line 2 should not be suppressed")
	}
}

func TestDisableFileIsPermanent(t *testing.T) {
	src := "# yamllint disable-file\na: 1\n# yamllint enable\nb: 2\n"
	s := scopeFor(t, src)

	if !s.Suppressed("colons", 4) {
		t.Errorf("disable-file should suppress everything, even after an enable")
	}
}

func TestEnableCarvesExceptionOutOfDisableAll(t *testing.T) {
	src := "# yamllint disable\n# yamllint enable rule:colons\na: 1\n"
	s := scopeFor(t, src)

	if s.Suppressed("colons", 3) {
		t.Errorf("colons should be carved out of the disable-all block")
	}
	if !s.Suppressed("commas", 3) {
		t.Errorf("commas should still be suppressed")
	}
}
