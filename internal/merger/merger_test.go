package merger

import (
	"testing"

	"yamlguard/internal/config"
	"yamlguard/internal/diag"
	"yamlguard/internal/directive"
	"yamlguard/internal/ignore"
	"yamlguard/internal/rules"
	"yamlguard/internal/source"
)

func testConfig(catalog *rules.Catalog) *config.Config {
	cfg, err := config.Load("", catalog)
	if err != nil {
		panic(err)
	}
	return cfg
}

func TestMergeDropsDisabledRuleDiagnostics(t *testing.T) {
	catalog := rules.NewCatalog()
	cfg := testConfig(catalog)
	s := cfg.Rules[diag.RuleColons]
	s.Enabled = false
	cfg.Rules[diag.RuleColons] = s

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.yaml", []byte("a: 1\n"))
	span := source.Span{File: fileID, Start: 1, End: 2}
	byRule := map[diag.RuleID][]diag.Diagnostic{
		diag.RuleColons: {diag.NewError(diag.RuleColons, span, "should be dropped")},
	}

	bag := Merge(fs, cfg, nil, byRule)
	if bag.Len() != 0 {
		t.Fatalf("expected 0 diagnostics, got %d", bag.Len())
	}
}

func TestMergeAppliesConfiguredSeverity(t *testing.T) {
	catalog := rules.NewCatalog()
	cfg := testConfig(catalog)
	s := cfg.Rules[diag.RuleColons]
	s.Level = diag.SevWarning
	cfg.Rules[diag.RuleColons] = s

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.yaml", []byte("a: 1\n"))
	span := source.Span{File: fileID, Start: 1, End: 2}
	byRule := map[diag.RuleID][]diag.Diagnostic{
		diag.RuleColons: {diag.NewError(diag.RuleColons, span, "demoted")},
	}

	bag := Merge(fs, cfg, nil, byRule)
	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", bag.Len())
	}
	if bag.Items()[0].Severity != diag.SevWarning {
		t.Fatalf("expected severity to be overridden to warning, got %v", bag.Items()[0].Severity)
	}
}

func TestMergeSuppressesDirectiveScopedLines(t *testing.T) {
	catalog := rules.NewCatalog()
	cfg := testConfig(catalog)

	fs := source.NewFileSet()
	src := "a: 1\n# yamllint disable rule:colons\nb: 2\n"
	fileID := fs.AddVirtual("test.yaml", []byte(src))

	line3Start := uint32(len("a: 1\n# yamllint disable rule:colons\n"))
	line1 := source.Span{File: fileID, Start: 0, End: 1}
	line3 := source.Span{File: fileID, Start: line3Start, End: line3Start + 1}

	scope := directive.Build([]directive.Directive{
		{Kind: directive.Disable, Rules: []string{"colons"}, Line: 2},
	})

	byRule := map[diag.RuleID][]diag.Diagnostic{
		diag.RuleColons: {
			diag.NewError(diag.RuleColons, line1, "on line 1, not suppressed"),
			diag.NewError(diag.RuleColons, line3, "on line 3, suppressed"),
		},
	}

	bag := Merge(fs, cfg, scope, byRule)
	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic to survive suppression, got %d", bag.Len())
	}
}

func TestMergeDropsDiagnosticsForRuleIgnoredFile(t *testing.T) {
	catalog := rules.NewCatalog()
	cfg := testConfig(catalog)
	s := cfg.Rules[diag.RuleColons]
	s.Ignore = []string{"ignored/*.yaml"}
	s.Matcher = ignore.Compile(s.Ignore)
	cfg.Rules[diag.RuleColons] = s

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("ignored/test.yaml", []byte("a: 1\n"))
	span := source.Span{File: fileID, Start: 1, End: 2}
	byRule := map[diag.RuleID][]diag.Diagnostic{
		diag.RuleColons: {diag.NewError(diag.RuleColons, span, "should be ignored for this path")},
	}

	bag := Merge(fs, cfg, nil, byRule)
	if bag.Len() != 0 {
		t.Fatalf("expected 0 diagnostics for a file matched by the rule's ignore patterns, got %d", bag.Len())
	}
}

func TestMergeKeepsDiagnosticsForNonIgnoredFile(t *testing.T) {
	catalog := rules.NewCatalog()
	cfg := testConfig(catalog)
	s := cfg.Rules[diag.RuleColons]
	s.Ignore = []string{"ignored/*.yaml"}
	s.Matcher = ignore.Compile(s.Ignore)
	cfg.Rules[diag.RuleColons] = s

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("kept/test.yaml", []byte("a: 1\n"))
	span := source.Span{File: fileID, Start: 1, End: 2}
	byRule := map[diag.RuleID][]diag.Diagnostic{
		diag.RuleColons: {diag.NewError(diag.RuleColons, span, "not ignored for this path")},
	}

	bag := Merge(fs, cfg, nil, byRule)
	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic for a file not matched by the rule's ignore patterns, got %d", bag.Len())
	}
}

func TestMergeDedupesIdenticalDiagnostics(t *testing.T) {
	catalog := rules.NewCatalog()
	cfg := testConfig(catalog)

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.yaml", []byte("a: 1\n"))
	span := source.Span{File: fileID, Start: 1, End: 2}
	d := diag.NewError(diag.RuleColons, span, "duplicate")
	byRule := map[diag.RuleID][]diag.Diagnostic{
		diag.RuleColons: {d, d},
	}

	bag := Merge(fs, cfg, nil, byRule)
	if bag.Len() != 1 {
		t.Fatalf("expected dedup to collapse to 1 diagnostic, got %d", bag.Len())
	}
}
