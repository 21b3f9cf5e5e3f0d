// Package lexer turns a UTF-8 YAML byte buffer into a flat token.Token
// stream, tracking block indentation and flow nesting as it goes. Unlike
// a pure YAML 1.2 scanner it keeps comments and newlines as first-class
// tokens, because the rule catalog needs to reason about them directly.
package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"yamlguard/internal/source"
	"yamlguard/internal/token"
)

// Error reports an irrecoverable lexical failure. Scan still returns every
// token produced before the failure, so rules keep running best-effort.
type Error struct {
	Span    source.Span
	Message string
}

func (e *Error) Error() string { return e.Message }

type blockCtx struct {
	col  int
	kind token.Kind // BlockMappingStart or BlockSequenceStart
}

type flowCtx struct {
	kind token.Kind // FlowMappingStart or FlowSequenceStart
}

type lexer struct {
	cur    *cursor
	file   source.FileID
	tokens []token.Token

	indentStack []blockCtx
	flowStack   []flowCtx

	atLineStart    bool
	expectingValue bool

	err *Error
}

// Scan lexes content belonging to fileID into a token stream.
func Scan(fileID source.FileID, content []byte) ([]token.Token, *Error) {
	lx := &lexer{
		cur:         newCursor(content),
		file:        fileID,
		tokens:      make([]token.Token, 0, len(content)/4+8),
		atLineStart: true,
	}
	lx.emit(token.StreamStart, 0, 0, "", 0)
	lx.run()
	lx.closeAllBlocks()
	lx.emit(token.StreamEnd, lx.cur.pos, lx.cur.pos, "", 0)
	return lx.tokens, lx.err
}

func (lx *lexer) fail(start, end int, format string, args ...any) {
	if lx.err != nil {
		return
	}
	lx.err = &Error{
		Span:    lx.span(start, end),
		Message: fmt.Sprintf(format, args...),
	}
}

func (lx *lexer) span(start, end int) source.Span {
	return source.Span{File: lx.file, Start: u32(start), End: u32(end)}
}

func u32(v int) uint32 {
	n, err := safecast.Conv[uint32](v)
	if err != nil {
		panic(fmt.Errorf("lexer: byte offset overflow: %w", err))
	}
	return n
}

func (lx *lexer) emit(kind token.Kind, start, end int, text string, style uint8) {
	lx.tokens = append(lx.tokens, token.Token{
		Kind:  kind,
		Span:  lx.span(start, end),
		Text:  text,
		Style: style,
	})
}

func (lx *lexer) inFlow() bool { return len(lx.flowStack) > 0 }

func (lx *lexer) currentFlowKind() token.Kind {
	if len(lx.flowStack) == 0 {
		return token.Invalid
	}
	return lx.flowStack[len(lx.flowStack)-1].kind
}

// run drives the scanner until EOF, stopping early only on a fatal error.
func (lx *lexer) run() {
	for !lx.cur.eof() && lx.err == nil {
		if lx.atLineStart && !lx.inFlow() {
			switch lx.handleLineStart() {
			case lineHandledAgain:
				continue
			case lineHandledContent:
				lx.atLineStart = false
			}
		}
		if lx.cur.eof() {
			break
		}
		before := lx.cur.pos
		lx.scanOne()
		if lx.cur.pos == before {
			lx.fail(before, before, "lexer stalled at offset %d", before)
			lx.cur.bump()
		}
	}
}

type lineOutcome uint8

const (
	lineHandledAgain   lineOutcome = iota // blank/comment/doc-marker line fully consumed; loop again
	lineHandledContent                    // indentation resolved; fall through to generic scanning
)

// handleLineStart measures the current line's indentation, updates the
// block-indent stack (popping/pushing BlockEnd/Block*Start tokens), and
// recognizes document markers and whole-line comments/blanks.
func (lx *lexer) handleLineStart() lineOutcome {
	lineStart := lx.cur.pos
	col := 0
	for isSpaceOrTab(lx.cur.peek()) {
		lx.cur.bump()
		col++
	}

	// A file whose content ends exactly at the previous line's terminator
	// has no further line to represent; don't synthesize a phantom one.
	if lx.cur.eof() && lineStart == len(lx.cur.buf) {
		return lineHandledAgain
	}

	// Blank line: doesn't affect block structure.
	if lx.cur.eof() || lx.cur.peek() == '\n' || lx.cur.peek() == '\r' {
		lx.scanNewlineOrEOF()
		return lineHandledAgain
	}

	// Document markers, only recognized flush at column 0.
	if col == 0 && (lx.cur.startsWith("---") && isBoundaryAfter(lx.cur, 3)) {
		lx.closeAllBlocks()
		lx.expectingValue = false
		start := lx.cur.pos
		lx.cur.bumpN(3)
		lx.emit(token.DocumentStart, start, lx.cur.pos, "---", 0)
		return lineHandledContentOrAgain(lx)
	}
	if col == 0 && (lx.cur.startsWith("...") && isBoundaryAfter(lx.cur, 3)) {
		lx.closeAllBlocks()
		lx.expectingValue = false
		start := lx.cur.pos
		lx.cur.bumpN(3)
		lx.emit(token.DocumentEnd, start, lx.cur.pos, "...", 0)
		return lineHandledContentOrAgain(lx)
	}

	// Whole-line comment: doesn't affect block structure either.
	if lx.cur.peek() == '#' {
		lx.scanComment()
		lx.scanNewlineOrEOF()
		return lineHandledAgain
	}

	lx.popBlocksBelow(col)
	lx.scanLineContent(col, true)
	return lineHandledAgain
}

// lineHandledContentOrAgain lets a document marker with trailing content
// fall through to generic scanning on the same physical line.
func lineHandledContentOrAgain(lx *lexer) lineOutcome {
	lx.skipSpacesOnLine()
	if lx.cur.eof() || lx.cur.peek() == '\n' || lx.cur.peek() == '\r' {
		lx.scanNewlineOrEOF()
		return lineHandledAgain
	}
	if lx.cur.peek() == '#' {
		lx.scanComment()
		lx.scanNewlineOrEOF()
		return lineHandledAgain
	}
	lx.scanEntryContent(0)
	lx.finishLineAfterEntry()
	return lineHandledAgain
}

func (lx *lexer) skipSpacesOnLine() {
	for isSpaceOrTab(lx.cur.peek()) {
		lx.cur.bump()
	}
}

// isBoundaryAfter reports whether the byte `offset` positions ahead of cur
// is whitespace, EOF, or a newline - i.e. the preceding text is a complete
// token, not a prefix of a longer plain scalar (e.g. "----" is not "---").
func isBoundaryAfter(c *cursor, offset int) bool {
	b := c.peekAt(offset)
	return b == 0 || b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// scanLineContent processes the real content of a line once indentation
// has been measured: either a block-sequence dash chain or a mapping/bare
// scalar entry.
func (lx *lexer) scanLineContent(col int, flushAllowed bool) {
	if lx.cur.peek() == '-' && isBoundaryAfter(lx.cur, 1) {
		lx.scanDashChain(col, flushAllowed)
		return
	}
	lx.scanEntryContent(col)
	lx.finishLineAfterEntry()
}

// scanDashChain consumes one or more nested "- " prefixes (e.g. "- - x")
// updating the block-sequence stack for each nesting level, then scans
// whatever entry follows the final dash.
func (lx *lexer) scanDashChain(col int, flushAllowed bool) {
	lx.ensureSequenceContext(col, flushAllowed)
	start := lx.cur.pos
	lx.cur.bump() // '-'
	lx.emit(token.BlockEntry, start, lx.cur.pos, "-", 0)

	lx.skipSpacesOnLine()
	col = colAt(lx)

	if lx.cur.eof() || lx.cur.peek() == '\n' || lx.cur.peek() == '\r' {
		lx.scanNewlineOrEOF()
		return
	}
	if lx.cur.peek() == '#' {
		lx.scanComment()
		lx.scanNewlineOrEOF()
		return
	}
	if lx.cur.peek() == '-' && isBoundaryAfter(lx.cur, 1) {
		lx.scanDashChain(col, false)
		return
	}
	lx.scanEntryContent(col)
	lx.finishLineAfterEntry()
}

// colAt approximates the current column from the lexer's position within
// the current physical line. Indentation content is ASCII, so counting
// bytes since the previous newline is exact.
func colAt(lx *lexer) int {
	i := lx.cur.pos - 1
	n := 0
	for i >= 0 && lx.cur.buf[i] != '\n' {
		n++
		i--
	}
	return n
}

// finishLineAfterEntry scans any trailing comment and the line's newline
// once an entry (key, value, or bare scalar) has been fully consumed.
func (lx *lexer) finishLineAfterEntry() {
	lx.skipSpacesOnLine()
	if lx.cur.eof() || lx.cur.peek() == '\n' || lx.cur.peek() == '\r' {
		lx.scanNewlineOrEOF()
		return
	}
	if lx.cur.peek() == '#' {
		lx.scanComment()
		lx.scanNewlineOrEOF()
	}
	// Anything else left on the line is left for the generic dispatcher
	// (e.g. a flow collection value was already consumed in full by
	// scanEntryContent; stray bytes here indicate malformed input).
}

func (lx *lexer) popBlocksBelow(col int) {
	for len(lx.indentStack) > 0 && col < lx.indentStack[len(lx.indentStack)-1].col {
		lx.popBlock()
	}
}

func (lx *lexer) closeAllBlocks() {
	for len(lx.indentStack) > 0 {
		lx.popBlock()
	}
}

func (lx *lexer) pushBlock(kind token.Kind, col int) {
	lx.indentStack = append(lx.indentStack, blockCtx{col: col, kind: kind})
	lx.emit(kind, lx.cur.pos, lx.cur.pos, "", 0)
}

func (lx *lexer) popBlock() {
	lx.indentStack = lx.indentStack[:len(lx.indentStack)-1]
	lx.emit(token.BlockEnd, lx.cur.pos, lx.cur.pos, "", 0)
}

func (lx *lexer) top() (blockCtx, bool) {
	if len(lx.indentStack) == 0 {
		return blockCtx{}, false
	}
	return lx.indentStack[len(lx.indentStack)-1], true
}

// insertBefore splices tok into the token stream at idx, shifting everything
// from idx onward one slot later, and returns the index the token that used
// to be at idx now occupies.
func (lx *lexer) insertBefore(idx int, tok token.Token) int {
	lx.tokens = append(lx.tokens[:idx], append([]token.Token{tok}, lx.tokens[idx:]...)...)
	return idx + 1
}

func (lx *lexer) ensureSequenceContext(col int, flushAllowed bool) {
	wasExpectingValue := lx.expectingValue
	t, ok := lx.top()
	switch {
	case !ok || t.col < col:
		lx.pushBlock(token.BlockSequenceStart, col)
	case t.col == col && t.kind == token.BlockSequenceStart:
		// continuing the same sequence
	case flushAllowed && wasExpectingValue && t.col == col && t.kind == token.BlockMappingStart:
		lx.pushBlock(token.BlockSequenceStart, col)
	default:
		// degenerate nesting; best effort, don't touch the stack.
	}
	lx.expectingValue = false
}

func (lx *lexer) scanNewlineOrEOF() {
	start := lx.cur.pos
	if lx.cur.eof() {
		lx.emit(token.Newline, start, start, "", uint8(token.NoLineEnd))
		return
	}
	if lx.cur.peek() == '\r' && lx.cur.peekAt(1) == '\n' {
		lx.cur.bumpN(2)
		lx.emit(token.Newline, start, lx.cur.pos, "\r\n", uint8(token.CRLF))
	} else {
		lx.cur.bump()
		lx.emit(token.Newline, start, lx.cur.pos, "\n", uint8(token.LF))
	}
	lx.atLineStart = true
}
