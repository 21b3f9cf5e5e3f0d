package lexer

// scanOne is the main loop's per-step dispatcher: run calls it once per
// iteration, after any line-start handling, and it scans spaces, a line
// end, a comment, or one value unit (flow collections included, through
// scanValueUnit). It always consumes at least one byte or one token so the
// driver loop can't stall.
func (lx *lexer) scanOne() {
	switch {
	case isSpaceOrTab(lx.cur.peek()):
		lx.skipSpacesOnLine()
	case lx.cur.peek() == '\n' || lx.cur.peek() == '\r':
		lx.scanNewlineOrEOF()
	case lx.cur.peek() == '#':
		lx.scanComment()
	default:
		lx.scanValueUnit(0, keyModeNone)
	}
}
