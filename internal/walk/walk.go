// Package walk discovers lintable files under a directory, honoring the
// config's ignore patterns and yaml-files globs (spec.md §6; out of scope
// for the core per spec.md §1, but a real CLI collaborator).
package walk

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"yamlguard/internal/ignore"
)

// Files returns every path under root that matches one of globs and is
// not excluded by matcher, sorted for deterministic dispatch order.
func Files(root string, globs []string, matcher *ignore.Matcher) ([]string, error) {
	var out []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			if rel == ".git" || matcher.Match(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if matcher.Match(rel, false) {
			return nil
		}
		if matchesAny(d.Name(), globs) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(out)
	return out, nil
}

func matchesAny(name string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := filepath.Match(g, name); ok {
			return true
		}
	}
	return false
}

// ReadIgnoreFile loads a gitignore-style pattern file, tolerating its
// absence (no ignore file is not an error).
func ReadIgnoreFile(path string) ([]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator-supplied
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return strings.Split(string(data), "\n"), nil
}
