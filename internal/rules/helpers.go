package rules

import (
	"fmt"
	"sort"

	"fortio.org/safecast"

	"yamlguard/internal/lines"
	"yamlguard/internal/token"
)

// u32 narrows a byte count/offset to uint32, the width every span and
// range in this package is expressed in.
func u32(v int) uint32 {
	n, err := safecast.Conv[uint32](v)
	if err != nil {
		panic(fmt.Errorf("rules: byte offset overflow: %w", err))
	}
	return n
}

// lineForOffset returns the physical line containing byte offset, or the
// last line if offset sits exactly at end-of-file.
func lineForOffset(m *lines.Model, offset uint32) (lines.Line, bool) {
	all := m.Lines()
	idx := sort.Search(len(all), func(i int) bool { return all[i].ByteRange.End >= offset })
	if idx == len(all) {
		if len(all) == 0 {
			return lines.Line{}, false
		}
		idx = len(all) - 1
	}
	return all[idx], true
}

// nextLineEnd finds the end of the first Newline token at or after byte
// offset from, so a fix can delete a marker together with its terminator
// rather than leaving a blank line behind.
func nextLineEnd(toks []token.Token, from uint32) uint32 {
	for _, t := range toks {
		if t.Kind == token.Newline && t.Span.Start >= from {
			return t.Span.End
		}
	}
	return from
}
