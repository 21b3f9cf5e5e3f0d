package diag

import (
	"testing"

	"yamlguard/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	userFile := fs.Add("/workspace/testdata/golden/sample.yaml", []byte("a\nb\n"), 0)
	otherFile := fs.Add("/workspace/testdata/golden/other.yaml", []byte("x\n"), 0)

	diags := []*Diagnostic{
		{
			Severity: SevError,
			RuleID:   RuleColons,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: userFile, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: otherFile, Start: 0, End: 0}, Msg: "unrelated note"},
				{Span: source.Span{File: userFile, Start: 2, End: 3}, Msg: "note line"},
			},
		},
		{
			Severity: SevWarning,
			RuleID:   RuleTrailingSpaces,
			Message:  "another",
			Primary:  source.Span{File: userFile, Start: 2, End: 3},
		},
	}

	expected := "note colons testdata/golden/other.yaml:1:1 unrelated note\n" +
		"error colons testdata/golden/sample.yaml:1:1 first line second\n" +
		"note colons testdata/golden/sample.yaml:2:1 note line\n" +
		"warning trailing-spaces testdata/golden/sample.yaml:2:1 another"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}
