// Package config resolves a yamlguard configuration document into the
// effective per-rule settings the engine runs with: built-in defaults,
// layered under an "extends" base, layered under the user's own overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"yamlguard/internal/diag"
	"yamlguard/internal/ignore"
	"yamlguard/internal/rules"
)

// Level names a rule's configured severity in the YAML document.
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

// RuleSettings is one rule's effective settings: either disabled, or
// enabled at some level with its own resolved option map.
type RuleSettings struct {
	Enabled bool
	Level   diag.Severity
	Options rules.Options
	// Ignore holds gitwildmatch patterns exempting matching files from
	// this rule only (spec.md §6, per-rule "ignore"). Matcher is the
	// compiled form the merger actually consults; it is rebuilt whenever
	// Ignore changes so the merger never compiles patterns per-diagnostic.
	Ignore  []string
	Matcher *ignore.Matcher
}

// Config is the fully resolved, immutable configuration the engine runs
// with. It is read-only after Load or LoadBytes returns and may be shared across
// any number of concurrent workers (spec.md §5).
type Config struct {
	Rules     map[diag.RuleID]RuleSettings
	Ignore    []string
	YAMLFiles []string
}

// document is the raw shape of a yamlguard/yamllint config YAML document.
type document struct {
	Extends    string         `yaml:"extends"`
	Rules      map[string]any `yaml:"rules"`
	Ignore     string         `yaml:"ignore"`
	IgnoreFrom string         `yaml:"ignore-from-file"`
	YAMLFiles  []string       `yaml:"yaml-files"`
}

var defaultYAMLFiles = []string{"*.yaml", "*.yml", ".yamllint"}

// Load reads and resolves a config document from path, or returns the
// built-in "default" base if path is empty.
func Load(path string, catalog *rules.Catalog) (*Config, error) {
	if path == "" {
		return resolveDocument(nil, catalog)
	}
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator-supplied
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return LoadBytes(data, catalog)
}

// LoadBytes resolves a config document already in memory, as Load does for
// a path on disk. Useful for embedded profiles and tests.
func LoadBytes(data []byte, catalog *rules.Catalog) (*Config, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	return resolveDocument(&doc, catalog)
}

func resolveDocument(doc *document, catalog *rules.Catalog) (*Config, error) {
	cfg := &Config{
		Rules:     builtinDefaults(catalog),
		YAMLFiles: append([]string(nil), defaultYAMLFiles...),
	}
	if doc == nil {
		return cfg, nil
	}

	switch doc.Extends {
	case "", "default":
		// built-in defaults already loaded
	case "relaxed":
		applyRelaxed(cfg)
	default:
		base, err := Load(doc.Extends, catalog)
		if err != nil {
			return nil, fmt.Errorf("config: extends %q: %w", doc.Extends, err)
		}
		cfg.Rules = base.Rules
		cfg.Ignore = base.Ignore
		cfg.YAMLFiles = base.YAMLFiles
	}

	if err := applyUserRules(cfg, doc.Rules, catalog); err != nil {
		return nil, err
	}

	if doc.IgnoreFrom != "" {
		data, err := os.ReadFile(doc.IgnoreFrom) // #nosec G304 -- path is operator-supplied
		if err != nil {
			return nil, fmt.Errorf("config: ignore-from-file %s: %w", doc.IgnoreFrom, err)
		}
		cfg.Ignore = splitPatterns(string(data))
	} else if doc.Ignore != "" {
		cfg.Ignore = splitPatterns(doc.Ignore)
	}

	if len(doc.YAMLFiles) > 0 {
		cfg.YAMLFiles = doc.YAMLFiles
	}

	return cfg, nil
}

func builtinDefaults(catalog *rules.Catalog) map[diag.RuleID]RuleSettings {
	out := make(map[diag.RuleID]RuleSettings, len(catalog.All()))
	for _, r := range catalog.All() {
		out[r.ID()] = RuleSettings{
			Enabled: r.DefaultEnabled(),
			Level:   r.DefaultSeverity(),
			Options: r.DefaultOptions(),
		}
	}
	return out
}

// applyRelaxed loosens a handful of defaults the "relaxed" base is
// documented to soften, matching yamllint's own relaxed profile: line
// length and document markers stop being reported at all.
func applyRelaxed(cfg *Config) {
	if s, ok := cfg.Rules[diag.RuleLineLength]; ok {
		s.Enabled = false
		cfg.Rules[diag.RuleLineLength] = s
	}
	if s, ok := cfg.Rules[diag.RuleDocumentStart]; ok {
		s.Enabled = false
		cfg.Rules[diag.RuleDocumentStart] = s
	}
}

// applyUserRules layers the document's "rules" overrides on top of cfg,
// failing on unknown rule ids, unknown levels, and unknown option names.
// Option values are taken as decoded: their type and range are not
// checked here.
func applyUserRules(cfg *Config, raw map[string]any, catalog *rules.Catalog) error {
	for id, v := range raw {
		ruleID := diag.RuleID(id)
		rule, ok := catalog.Lookup(ruleID)
		if !ok {
			return fmt.Errorf("config: unknown rule %q", id)
		}

		switch val := v.(type) {
		case string:
			switch val {
			case "disable":
				cfg.Rules[ruleID] = RuleSettings{Enabled: false, Options: rule.DefaultOptions()}
			case "enable":
				s := cfg.Rules[ruleID]
				s.Enabled = true
				if s.Options == nil {
					s.Options = rule.DefaultOptions()
				}
				cfg.Rules[ruleID] = s
			default:
				return fmt.Errorf("config: rule %q: invalid shorthand %q", id, val)
			}
		case bool:
			s := cfg.Rules[ruleID]
			s.Enabled = val
			if s.Options == nil {
				s.Options = rule.DefaultOptions()
			}
			cfg.Rules[ruleID] = s
		case map[string]any:
			settings, err := decodeRuleSettings(ruleID, val, rule, cfg.Rules[ruleID])
			if err != nil {
				return err
			}
			cfg.Rules[ruleID] = settings
		default:
			return fmt.Errorf("config: rule %q: unsupported settings shape", id)
		}
	}
	return nil
}

func decodeRuleSettings(id diag.RuleID, raw map[string]any, rule rules.Rule, base RuleSettings) (RuleSettings, error) {
	out := base
	out.Enabled = true
	if out.Level == diag.SevInfo {
		out.Level = rule.DefaultSeverity()
	}
	if out.Options == nil {
		out.Options = rules.Options{}
	}
	merged := make(rules.Options, len(rule.DefaultOptions())+len(out.Options))
	for k, v := range rule.DefaultOptions() {
		merged[k] = v
	}
	for k, v := range out.Options {
		merged[k] = v
	}

	for k, v := range raw {
		switch k {
		case "level":
			lvl, ok := v.(string)
			if !ok {
				return out, fmt.Errorf("config: rule %q: level must be a string", id)
			}
			switch Level(lvl) {
			case LevelError:
				out.Level = diag.SevError
			case LevelWarning:
				out.Level = diag.SevWarning
			default:
				return out, fmt.Errorf("config: rule %q: unknown level %q", id, lvl)
			}
		case "ignore":
			switch vv := v.(type) {
			case string:
				out.Ignore = splitPatterns(vv)
			case []any:
				for _, item := range vv {
					if s, ok := item.(string); ok {
						out.Ignore = append(out.Ignore, s)
					}
				}
			default:
				return out, fmt.Errorf("config: rule %q: ignore must be a string or list", id)
			}
			out.Matcher = ignore.Compile(out.Ignore)
		default:
			if _, known := rule.DefaultOptions()[k]; !known {
				return out, fmt.Errorf("config: rule %q: unknown option %q", id, k)
			}
			merged[k] = v
		}
	}

	out.Options = merged
	return out, nil
}
