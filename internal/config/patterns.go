package config

import (
	"strings"
)

// splitPatterns turns a multi-line gitwildmatch pattern block into its
// individual, non-empty, non-comment lines.
func splitPatterns(block string) []string {
	var out []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
