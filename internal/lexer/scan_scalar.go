package lexer

import "yamlguard/internal/token"

// keyMode tells scanValueUnit/afterScalar whether a scanned scalar may turn
// out to be a mapping key (detected by a trailing ": " per YAML's plain
// scalar grammar, which forbids that sequence inside a scalar value).
type keyMode uint8

const (
	keyModeNone        keyMode = iota // a value position; never a key
	keyModeBlock                      // block entry-start; push/continue a mapping at col if a key is found
	keyModeFlowMapping                // entry-start inside a "{...}"; no column bookkeeping needed
)

// scanEntryContent scans one block-context entry (a mapping key, or a bare
// scalar/sequence/flow value) starting at the current position. col is the
// column this entry started at, used only if it turns out to introduce a
// mapping.
func (lx *lexer) scanEntryContent(col int) {
	lx.scanValueUnit(col, keyModeBlock)
}

// scanValueUnit consumes exactly one value: a scalar, an anchor/tag chain
// followed by a value, an alias, or a flow collection. mode controls
// whether a trailing ": " turns the scanned scalar into a mapping key.
func (lx *lexer) scanValueUnit(col int, mode keyMode) {
	if lx.cur.eof() {
		return
	}
	switch lx.cur.peek() {
	case '\n', '\r', '#':
		return
	case '&':
		lx.scanAnchor()
		lx.skipSpacesOnLine()
		lx.scanValueUnit(col, mode)
	case '!':
		lx.scanTag()
		lx.skipSpacesOnLine()
		lx.scanValueUnit(col, mode)
	case '*':
		lx.scanAlias()
	case '[':
		lx.scanFlowCollection(token.FlowSequenceStart, token.FlowSequenceEnd, ']')
	case '{':
		lx.scanFlowCollection(token.FlowMappingStart, token.FlowMappingEnd, '}')
	case '|':
		lx.scanBlockScalar(token.Literal, col)
	case '>':
		lx.scanBlockScalar(token.Folded, col)
	case '\'':
		lx.scanQuotedScalar(token.SingleQuoted, col, mode)
	case '"':
		lx.scanQuotedScalar(token.DoubleQuoted, col, mode)
	default:
		lx.scanPlainScalar(col, mode)
	}
}

// isBoundaryColon reports whether the cursor sits on a ':' that terminates
// a plain scalar: one followed by whitespace, a line end, EOF, or (inside a
// flow collection) a flow terminator.
func isBoundaryColon(c *cursor, inFlow bool) bool {
	if c.peek() != ':' {
		return false
	}
	b := c.peekAt(1)
	switch b {
	case 0, ' ', '\t', '\n', '\r':
		return true
	}
	if inFlow && (b == ',' || b == '}' || b == ']') {
		return true
	}
	return false
}

func trimTrailingBlank(s string) string {
	end := len(s)
	for end > 0 && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return s[:end]
}

// scanPlainScalar scans an unquoted scalar, stopping at a boundary colon, a
// whitespace-preceded '#', a flow terminator, or end of line - the same
// stop set real YAML plain scalars use to stay unambiguous.
func (lx *lexer) scanPlainScalar(col int, mode keyMode) {
	inFlow := lx.inFlow()
	start := lx.cur.pos
	for !lx.cur.eof() {
		c := lx.cur.peek()
		if c == '\n' || c == '\r' {
			break
		}
		if c == ':' && isBoundaryColon(lx.cur, inFlow) {
			break
		}
		if c == '#' && lx.cur.pos > start && isSpaceOrTab(lx.cur.peekAt(-1)) {
			break
		}
		if inFlow && (c == ',' || c == ']' || c == '}') {
			break
		}
		lx.cur.bump()
	}
	text := trimTrailingBlank(string(lx.cur.buf[start:lx.cur.pos]))
	idx := len(lx.tokens)
	lx.emit(token.Scalar, start, lx.cur.pos, text, uint8(token.Plain))
	lx.afterScalar(idx, col, mode)
}

// scanQuotedScalar scans a single- or double-quoted scalar. Quoted scalars
// may span multiple physical lines; the folding of their interior newlines
// into spaces is left to consumers, the token carries the raw source text
// including its delimiting quotes.
func (lx *lexer) scanQuotedScalar(style token.ScalarStyle, col int, mode keyMode) {
	start := lx.cur.pos
	quote := lx.cur.bump()
	for {
		if lx.cur.eof() {
			lx.fail(start, lx.cur.pos, "unterminated quoted scalar")
			break
		}
		c := lx.cur.peek()
		if style == token.SingleQuoted && c == '\'' {
			if lx.cur.peekAt(1) == '\'' {
				lx.cur.bumpN(2)
				continue
			}
			lx.cur.bump()
			break
		}
		if style == token.DoubleQuoted {
			if c == '\\' {
				lx.cur.bump()
				if !lx.cur.eof() {
					lx.cur.bump()
				}
				continue
			}
			if c == '"' {
				lx.cur.bump()
				break
			}
		}
		lx.cur.bump()
	}
	_ = quote
	idx := len(lx.tokens)
	lx.emit(token.Scalar, start, lx.cur.pos, string(lx.cur.buf[start:lx.cur.pos]), uint8(style))
	lx.afterScalar(idx, col, mode)
}

// scanBlockScalar scans a literal ('|') or folded ('>') block scalar as a
// single token spanning every line that belongs to it, chomping/indentation
// indicators included. A content line belongs to the block as long as it is
// indented past the entry's own column (baseCol); the first line that isn't
// (and isn't blank) ends the block. It ends atLineStart positioned at the
// first line that does not belong to the block.
func (lx *lexer) scanBlockScalar(style token.ScalarStyle, baseCol int) {
	start := lx.cur.pos
	lx.cur.bump() // '|' or '>'
	for c := lx.cur.peek(); c == '+' || c == '-' || isDigit(c); c = lx.cur.peek() {
		lx.cur.bump()
	}
	for !lx.cur.eof() && lx.cur.peek() != '\n' && lx.cur.peek() != '\r' {
		lx.cur.bump()
	}
	if lx.cur.eof() {
		lx.emit(token.Scalar, start, lx.cur.pos, string(lx.cur.buf[start:lx.cur.pos]), uint8(style))
		lx.atLineStart = true
		return
	}
	if lx.cur.peek() == '\r' && lx.cur.peekAt(1) == '\n' {
		lx.cur.bumpN(2)
	} else {
		lx.cur.bump()
	}
	for {
		lineStart := lx.cur.pos
		indent := 0
		for isSpaceOrTab(lx.cur.peek()) {
			lx.cur.bump()
			indent++
		}
		blank := lx.cur.eof() || lx.cur.peek() == '\n' || lx.cur.peek() == '\r'
		if !blank && indent <= baseCol {
			lx.cur.pos = lineStart
			break
		}
		for !lx.cur.eof() && lx.cur.peek() != '\n' && lx.cur.peek() != '\r' {
			lx.cur.bump()
		}
		if lx.cur.eof() {
			break
		}
		if lx.cur.peek() == '\r' && lx.cur.peekAt(1) == '\n' {
			lx.cur.bumpN(2)
		} else {
			lx.cur.bump()
		}
	}
	lx.emit(token.Scalar, start, lx.cur.pos, string(lx.cur.buf[start:lx.cur.pos]), uint8(style))
	lx.atLineStart = true
}

func (lx *lexer) scanAnchor() {
	start := lx.cur.pos
	lx.cur.bump() // '&'
	for isIdentByte(lx.cur.peek()) {
		lx.cur.bump()
	}
	lx.emit(token.Anchor, start, lx.cur.pos, string(lx.cur.buf[start:lx.cur.pos]), 0)
}

func (lx *lexer) scanAlias() {
	start := lx.cur.pos
	lx.cur.bump() // '*'
	for isIdentByte(lx.cur.peek()) {
		lx.cur.bump()
	}
	lx.emit(token.Alias, start, lx.cur.pos, string(lx.cur.buf[start:lx.cur.pos]), 0)
}

func (lx *lexer) scanTag() {
	start := lx.cur.pos
	lx.cur.bump() // '!'
	if lx.cur.peek() == '!' {
		lx.cur.bump()
	}
	for isIdentByte(lx.cur.peek()) || lx.cur.peek() == ':' || lx.cur.peek() == '/' || lx.cur.peek() == '.' {
		lx.cur.bump()
	}
	lx.emit(token.Tag, start, lx.cur.pos, string(lx.cur.buf[start:lx.cur.pos]), 0)
}

func (lx *lexer) scanComment() {
	start := lx.cur.pos
	for !lx.cur.eof() && lx.cur.peek() != '\n' && lx.cur.peek() != '\r' {
		lx.cur.bump()
	}
	lx.emit(token.Comment, start, lx.cur.pos, string(lx.cur.buf[start:lx.cur.pos]), 0)
}

// afterScalar inspects the position right after a just-scanned scalar: if a
// boundary colon follows and mode allows it, the scalar becomes a key -
// a zero-width Key token is spliced in before it, the colon becomes a
// Value token, and whatever follows on the line (if anything) is scanned
// as the entry's value.
func (lx *lexer) afterScalar(scalarIdx int, col int, mode keyMode) {
	if mode == keyModeNone {
		return
	}
	inFlowMapping := lx.inFlow() && lx.currentFlowKind() == token.FlowMappingStart
	if !isBoundaryColon(lx.cur, inFlowMapping || mode == keyModeBlock) {
		return
	}

	scalarStart := lx.tokens[scalarIdx].Span.Start
	zeroSpan := lx.span(int(scalarStart), int(scalarStart))

	if mode == keyModeBlock {
		lx.expectingValue = false
		t, ok := lx.top()
		if !ok || t.col < col {
			lx.indentStack = append(lx.indentStack, blockCtx{col: col, kind: token.BlockMappingStart})
			scalarIdx = lx.insertBefore(scalarIdx, token.Token{Kind: token.BlockMappingStart, Span: zeroSpan})
		}
		// t.col == col && t.kind == BlockMappingStart: continuing, nothing to insert.
		// any other mismatch: degenerate nesting, best effort, leave the stack alone.
	}

	keyTok := token.Token{Kind: token.Key, Span: zeroSpan}
	lx.insertBefore(scalarIdx, keyTok)

	colonStart := lx.cur.pos
	lx.cur.bump() // ':'
	lx.emit(token.Value, colonStart, lx.cur.pos, ":", 0)

	if mode == keyModeBlock {
		lx.skipSpacesOnLine()
		if lx.cur.eof() || lx.cur.peek() == '\n' || lx.cur.peek() == '\r' || lx.cur.peek() == '#' {
			lx.expectingValue = true
			return
		}
		lx.scanValueUnit(col, keyModeNone)
		return
	}

	lx.skipFlowTrivia()
	if lx.cur.eof() {
		return
	}
	if lx.cur.peek() == ',' || lx.cur.peek() == '}' {
		return
	}
	lx.scanValueUnit(col, keyModeNone)
}

// skipFlowTrivia skips whitespace, newlines, and comments between flow
// collection tokens - flow context allows all three anywhere entries do.
func (lx *lexer) skipFlowTrivia() {
	for {
		switch {
		case isSpaceOrTab(lx.cur.peek()):
			lx.cur.bump()
		case lx.cur.peek() == '\n' || lx.cur.peek() == '\r':
			lx.scanNewlineOrEOF()
		case lx.cur.peek() == '#':
			lx.scanComment()
		default:
			return
		}
	}
}

// scanFlowCollection scans a "[...]" or "{...}" collection in full,
// including every nested entry, returning only once its closing bracket
// has been consumed.
func (lx *lexer) scanFlowCollection(startKind, endKind token.Kind, closeByte byte) {
	start := lx.cur.pos
	lx.cur.bump()
	lx.emit(startKind, start, lx.cur.pos, "", 0)
	lx.flowStack = append(lx.flowStack, flowCtx{kind: startKind})

	for {
		lx.skipFlowTrivia()
		if lx.cur.eof() {
			lx.fail(lx.cur.pos, lx.cur.pos, "unterminated flow collection")
			return
		}
		if lx.cur.peek() == closeByte {
			s := lx.cur.pos
			lx.cur.bump()
			lx.emit(endKind, s, lx.cur.pos, "", 0)
			lx.flowStack = lx.flowStack[:len(lx.flowStack)-1]
			return
		}
		if lx.cur.peek() == ',' {
			s := lx.cur.pos
			lx.cur.bump()
			lx.emit(token.FlowEntry, s, lx.cur.pos, ",", 0)
			continue
		}
		mode := keyModeNone
		if startKind == token.FlowMappingStart {
			mode = keyModeFlowMapping
		}
		before := lx.cur.pos
		lx.scanValueUnit(0, mode)
		if lx.cur.pos == before {
			lx.fail(before, before, "unexpected character in flow collection")
			lx.cur.bump()
		}
	}
}
