// Package rulectx maintains the per-token structural state several rules
// would otherwise each re-derive on their own pass over the token stream:
// the current mapping-key path, in-flow nesting depth, the anchor table,
// and the current block-indent stack.
//
// A Cursor is advanced by its owner one token at a time, in stream order,
// and is never shared as global mutable state: each rule that wants it
// builds its own Cursor and advances it across its own loop, so one rule's
// position in the stream can never leak into another's.
package rulectx

import (
	"strings"

	"yamlguard/internal/source"
	"yamlguard/internal/token"
)

type indentFrame struct {
	kind token.Kind // BlockMappingStart or BlockSequenceStart
	flow bool
	col  int
}

// Cursor accumulates context as tokens are folded into it via Advance.
type Cursor struct {
	fs      *source.FileSet
	indents []indentFrame
	path    []string
	flow    int
	anchors map[string]source.Span

	awaitingKey bool
}

// New returns an empty Cursor positioned before the first token. fs is
// used only to resolve a collection-start token's column.
func New(fs *source.FileSet) *Cursor {
	return &Cursor{fs: fs, anchors: make(map[string]source.Span)}
}

// Advance folds one token into the cursor's state. Callers must advance
// with every token in the stream, in order, for the derived state to stay
// consistent.
func (c *Cursor) Advance(tok token.Token) {
	switch tok.Kind {
	case token.BlockMappingStart:
		c.indents = append(c.indents, indentFrame{kind: token.BlockMappingStart, col: c.columnOf(tok)})
		c.awaitingKey = true
	case token.FlowMappingStart:
		c.indents = append(c.indents, indentFrame{kind: token.BlockMappingStart, flow: true, col: c.columnOf(tok)})
		c.flow++
		c.awaitingKey = true
	case token.BlockSequenceStart:
		c.indents = append(c.indents, indentFrame{kind: token.BlockSequenceStart, col: c.columnOf(tok)})
	case token.FlowSequenceStart:
		c.indents = append(c.indents, indentFrame{kind: token.BlockSequenceStart, flow: true, col: c.columnOf(tok)})
		c.flow++
	case token.BlockEnd:
		c.pop()
	case token.FlowMappingEnd, token.FlowSequenceEnd:
		if n := len(c.indents); n > 0 && c.indents[n-1].flow && c.flow > 0 {
			c.flow--
		}
		c.pop()
	case token.Key:
		c.awaitingKey = true
	case token.Value:
		c.awaitingKey = false
	case token.Scalar:
		if c.awaitingKey && c.inMapping() {
			c.path = append(c.path, tok.Text)
		}
	case token.Anchor:
		c.anchors[strings.TrimPrefix(tok.Text, "&")] = tok.Span
	}
}

func (c *Cursor) columnOf(tok token.Token) int {
	if c.fs == nil {
		return 0
	}
	start, _ := c.fs.Resolve(tok.Span)
	return int(start.Col) - 1
}

// IndentFrame is a read-only view of one level of the current indent
// stack: which kind of block collection it is, and the column it starts
// at.
type IndentFrame struct {
	Kind token.Kind
	Col  int
}

// Top returns the innermost indent frame, if any.
func (c *Cursor) Top() (IndentFrame, bool) {
	if len(c.indents) == 0 {
		return IndentFrame{}, false
	}
	f := c.indents[len(c.indents)-1]
	return IndentFrame{Kind: f.kind, Col: f.col}, true
}

// Path returns the current mapping-key path, outermost first, as a
// read-only snapshot safe to keep past the next Advance call.
func (c *Cursor) Path() []string {
	return append([]string(nil), c.path...)
}

// FlowDepth returns how many flow collections the cursor is currently
// nested inside.
func (c *Cursor) FlowDepth() int {
	return c.flow
}

// Anchor looks up where name (without its leading '&') was most recently
// declared, as of the cursor's current position in the stream.
func (c *Cursor) Anchor(name string) (source.Span, bool) {
	sp, ok := c.anchors[name]
	return sp, ok
}

func (c *Cursor) inMapping() bool {
	top, ok := c.Top()
	return ok && top.Kind == token.BlockMappingStart
}

func (c *Cursor) pop() {
	if len(c.indents) == 0 {
		return
	}
	top := c.indents[len(c.indents)-1]
	c.indents = c.indents[:len(c.indents)-1]
	if top.kind == token.BlockMappingStart && len(c.path) > 0 {
		c.path = c.path[:len(c.path)-1]
	}
}
