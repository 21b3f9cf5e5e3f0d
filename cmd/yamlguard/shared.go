package main

import (
	"crypto/sha256"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"yamlguard/internal/config"
	"yamlguard/internal/diag"
	"yamlguard/internal/ignore"
	"yamlguard/internal/rules"
	"yamlguard/internal/walk"
	"yamlguard/internal/workspace"
)

// session bundles the resolved, immutable inputs every file in one run
// shares: config, rule catalog, and ignore matcher (spec.md §5 — the only
// thing safe to fan out across workers is state that never changes).
type session struct {
	cfg        *config.Config
	catalog    *rules.Catalog
	matcher    *ignore.Matcher
	configHash [32]byte
}

func newSession(cmd *cobra.Command) (*session, error) {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	profileName, _ := flags.GetString("profile")

	if profileName != "" {
		manifestPath, err := workspace.Find(".")
		if err != nil {
			return nil, fmt.Errorf("yamlguard: %w", err)
		}
		manifest, err := workspace.Load(manifestPath)
		if err != nil {
			return nil, err
		}
		profile, err := manifest.Resolve(profileName)
		if err != nil {
			return nil, err
		}
		if configPath == "" {
			configPath = profile.Config
		}
	}

	catalog := rules.NewCatalog()
	cfg, err := config.Load(configPath, catalog)
	if err != nil {
		return nil, err
	}

	lines, err := walk.ReadIgnoreFile(".yamlguardignore")
	if err != nil {
		return nil, fmt.Errorf("yamlguard: %w", err)
	}
	matcher := ignore.Compile(append(append([]string(nil), cfg.Ignore...), lines...))

	return &session{cfg: cfg, catalog: catalog, matcher: matcher, configHash: hashConfig(cfg)}, nil
}

// hashConfig derives a stable digest of the resolved rule settings, so the
// disk cache (internal/cache) can tell a config change apart from an
// unchanged file and refuse a stale hit rather than replay it.
func hashConfig(cfg *config.Config) [32]byte {
	ids := make([]string, 0, len(cfg.Rules))
	for id := range cfg.Rules {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)

	h := sha256.New()
	for _, id := range ids {
		s := cfg.Rules[diag.RuleID(id)]
		fmt.Fprintf(h, "%s|%t|%d|%v|%v\n", id, s.Enabled, s.Level, s.Options, s.Ignore)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// targets expands args into concrete file paths: a bare "-" means stdin, a
// directory is walked with the config's yaml-files globs and ignore
// patterns, anything else is taken as a literal file path.
func (s *session) targets(args []string) ([]string, bool, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	if len(args) == 1 && args[0] == "-" {
		return nil, true, nil
	}

	var out []string
	for _, a := range args {
		info, err := os.Stat(a)
		if err != nil {
			return nil, false, fmt.Errorf("yamlguard: %w", err)
		}
		if !info.IsDir() {
			out = append(out, a)
			continue
		}
		found, err := walk.Files(a, s.cfg.YAMLFiles, s.matcher)
		if err != nil {
			return nil, false, fmt.Errorf("yamlguard: %w", err)
		}
		out = append(out, found...)
	}
	return out, false, nil
}
