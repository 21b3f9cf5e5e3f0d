// Package workspace parses the optional "yamlguard.toml" manifest that
// lets a monorepo declare multiple named lint profiles, each targeting a
// different directory, config file, and yaml-files glob set (SPEC_FULL.md
// §6; a supplemental feature not in spec.md and not excluded by its
// Non-goals).
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrNoManifest is returned by Find when no yamlguard.toml exists between
// startDir and the filesystem root.
var ErrNoManifest = errors.New("no yamlguard.toml found")

// Profile is one named lint target within a workspace.
type Profile struct {
	Root      string   `toml:"root"`
	Config    string   `toml:"config"`
	YAMLFiles []string `toml:"yaml-files"`
}

// Manifest is the decoded shape of a yamlguard.toml workspace file.
type Manifest struct {
	Path     string
	Dir      string
	Profiles map[string]Profile `toml:"profiles"`
}

// Find walks upward from startDir looking for yamlguard.toml.
func Find(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("workspace: resolve start dir: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "yamlguard.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("workspace: stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoManifest
		}
		dir = parent
	}
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("workspace: parse %s: %w", path, err)
	}
	m.Path = path
	m.Dir = filepath.Dir(path)
	return &m, nil
}

// Resolve returns the named profile with its Root made absolute relative
// to the manifest's own directory.
func (m *Manifest) Resolve(name string) (Profile, error) {
	p, ok := m.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("workspace: no profile %q in %s", name, m.Path)
	}
	if p.Root == "" {
		p.Root = "."
	}
	if !filepath.IsAbs(p.Root) {
		p.Root = filepath.Join(m.Dir, p.Root)
	}
	if p.Config != "" && !filepath.IsAbs(p.Config) {
		p.Config = filepath.Join(m.Dir, p.Config)
	}
	return p, nil
}
