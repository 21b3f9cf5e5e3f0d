package main

import (
	"os"

	"golang.org/x/term"
)

func termIsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// resolveColor interprets the --color flag against the given file's
// terminal-ness: "auto" only colorizes when f is a real terminal.
func resolveColor(mode string, f *os.File) bool {
	switch mode {
	case "on", "always":
		return true
	case "off", "never":
		return false
	default:
		return termIsTerminal(f)
	}
}
