// Package lines exposes the physical-line view of a source file that
// per-line rules (trailing-spaces, empty-lines, new-lines, line-length,
// comments-indentation) read instead of re-splitting raw bytes themselves.
package lines

import (
	"fmt"

	"fortio.org/safecast"

	"yamlguard/internal/source"
	"yamlguard/internal/token"
)

// ByteRange is a half-open [Start, End) byte range within a file.
type ByteRange struct {
	Start uint32
	End   uint32
}

// Len returns the number of bytes covered by the range.
func (r ByteRange) Len() uint32 { return r.End - r.Start }

// Line captures one physical line of source: its raw content (without the
// line terminator), the extent of any trailing whitespace run, the width
// of its leading indentation, and which terminator follows it.
type Line struct {
	Index            uint32 // 1-based
	ByteRange        ByteRange
	Raw              []byte
	IndentWidth      int
	TrailingWSRange  ByteRange // empty range if no trailing whitespace
	LineEnd          token.LineEndStyle
}

// Model is the ordered set of physical lines partitioning a file's content.
type Model struct {
	lines []Line
}

// Build splits file content into its constituent physical Lines.
//
// Invariant: concatenating each Line's Raw plus its line-end bytes
// reproduces the source exactly. Build never mutates or normalizes
// content; CRLF and bare CR-less lines are both preserved.
func Build(content []byte) *Model {
	m := &Model{}
	var idx uint32 = 1
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] != '\n' {
			continue
		}
		end := i
		endStyle := token.LF
		if end > start && content[end-1] == '\r' {
			end--
			endStyle = token.CRLF
		}
		m.lines = append(m.lines, makeLine(idx, content, start, end, endStyle))
		idx++
		start = i + 1
	}
	if start < len(content) {
		m.lines = append(m.lines, makeLine(idx, content, start, len(content), token.NoLineEnd))
	} else if len(content) == 0 {
		m.lines = append(m.lines, makeLine(idx, content, 0, 0, token.NoLineEnd))
	}
	return m
}

func makeLine(idx uint32, content []byte, start, end int, lineEnd token.LineEndStyle) Line {
	raw := content[start:end]

	indent := 0
	for indent < len(raw) && (raw[indent] == ' ' || raw[indent] == '\t') {
		indent++
	}

	wsStart := len(raw)
	for wsStart > 0 && (raw[wsStart-1] == ' ' || raw[wsStart-1] == '\t') {
		wsStart--
	}
	// A line consisting entirely of whitespace is an empty line, not
	// "trailing whitespace" on content; trailing-spaces only fires when
	// some non-whitespace content precedes the run.
	if wsStart == 0 {
		wsStart = len(raw)
	}

	lineStart, err := safecast.Conv[uint32](start)
	if err != nil {
		panic(fmt.Errorf("lines: line start overflow: %w", err))
	}
	lineEndOff, err := safecast.Conv[uint32](end)
	if err != nil {
		panic(fmt.Errorf("lines: line end overflow: %w", err))
	}
	wsStartOff, err := safecast.Conv[uint32](start + wsStart)
	if err != nil {
		panic(fmt.Errorf("lines: trailing whitespace start overflow: %w", err))
	}

	return Line{
		Index:       idx,
		ByteRange:   ByteRange{Start: lineStart, End: lineEndOff},
		Raw:         raw,
		IndentWidth: indent,
		TrailingWSRange: ByteRange{
			Start: wsStartOff,
			End:   lineEndOff,
		},
		LineEnd: lineEnd,
	}
}

// Lines returns the ordered physical lines.
func (m *Model) Lines() []Line { return m.lines }

// Len returns the number of physical lines.
func (m *Model) Len() int { return len(m.lines) }

// At returns the line with the given 1-based index, or the zero Line and
// false if out of range.
func (m *Model) At(index uint32) (Line, bool) {
	if index == 0 || int(index) > len(m.lines) {
		return Line{}, false
	}
	return m.lines[index-1], true
}

// HasTrailingWhitespace reports whether the line has a non-empty trailing
// run of spaces/tabs before its line terminator.
func (l Line) HasTrailingWhitespace() bool {
	return l.TrailingWSRange.Len() > 0
}

// IsEmpty reports whether the line is empty or consists only of whitespace.
func (l Line) IsEmpty() bool {
	for _, b := range l.Raw {
		if b != ' ' && b != '\t' {
			return false
		}
	}
	return true
}

// Span converts the line's byte range into a source.Span for the given file.
func (l Line) Span(file source.FileID) source.Span {
	return source.Span{File: file, Start: l.ByteRange.Start, End: l.ByteRange.End}
}
