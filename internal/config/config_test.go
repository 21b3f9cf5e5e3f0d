package config

import (
	"testing"

	"yamlguard/internal/diag"
	"yamlguard/internal/rules"
)

func TestLoadEmptyPathUsesBuiltinDefaults(t *testing.T) {
	catalog := rules.NewCatalog()
	cfg, err := Load("", catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Rules) != len(catalog.All()) {
		t.Fatalf("expected every catalog rule to have default settings")
	}
	if !cfg.Rules[diag.RuleColons].Enabled {
		t.Fatalf("expected colons to be enabled by default")
	}
}

func TestLoadBytesDisableShorthand(t *testing.T) {
	catalog := rules.NewCatalog()
	cfg, err := LoadBytes([]byte("rules:\n  colons: disable\n"), catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Rules[diag.RuleColons].Enabled {
		t.Fatalf("expected colons to be disabled")
	}
}

func TestLoadBytesUnknownRuleFails(t *testing.T) {
	catalog := rules.NewCatalog()
	_, err := LoadBytes([]byte("rules:\n  not-a-real-rule: enable\n"), catalog)
	if err == nil {
		t.Fatalf("expected an error for an unknown rule id")
	}
}

func TestLoadBytesRejectsUnknownOption(t *testing.T) {
	catalog := rules.NewCatalog()
	_, err := LoadBytes([]byte("rules:\n  colons:\n    bogus-option: 1\n"), catalog)
	if err == nil {
		t.Fatalf("expected an error for an unknown option")
	}
}

func TestLoadBytesLevelOverride(t *testing.T) {
	catalog := rules.NewCatalog()
	cfg, err := LoadBytes([]byte("rules:\n  colons:\n    level: warning\n"), catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Rules[diag.RuleColons].Level != diag.SevWarning {
		t.Fatalf("expected level to be overridden to warning, got %v", cfg.Rules[diag.RuleColons].Level)
	}
}

func TestLoadBytesRelaxedDisablesLineLength(t *testing.T) {
	catalog := rules.NewCatalog()
	cfg, err := LoadBytes([]byte("extends: relaxed\n"), catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Rules[diag.RuleLineLength].Enabled {
		t.Fatalf("expected relaxed profile to disable line-length")
	}
}
