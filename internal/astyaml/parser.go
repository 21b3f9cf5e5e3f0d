package astyaml

import (
	"yamlguard/internal/diag"
	"yamlguard/internal/source"
	"yamlguard/internal/token"
)

type parser struct {
	toks  []token.Token
	pos   int
	file  source.FileID
	diags []diag.Diagnostic
}

// Parse builds a Stream of Documents from a lexer token stream. Malformed
// input never aborts the parse: it emits a parse-error diagnostic at the
// offending token and resynchronizes at the next BlockEnd/DocumentStart/
// StreamEnd, so the rule catalog still sees everything that did parse.
func Parse(fileID source.FileID, toks []token.Token) (*Stream, []diag.Diagnostic) {
	p := &parser{toks: toks, file: fileID}
	stream := &Stream{}

	p.skipKind(token.StreamStart)
	for {
		p.skipTrivia()
		switch p.cur().Kind {
		case token.StreamEnd, token.Invalid:
			return stream, p.diags
		case token.DocumentStart:
			start := p.cur().Span
			p.pos++
			doc := p.parseDocument(start)
			stream.Documents = append(stream.Documents, doc)
		default:
			start := p.cur().Span
			doc := p.parseDocument(start)
			stream.Documents = append(stream.Documents, doc)
		}
	}
}

func (p *parser) parseDocument(start source.Span) Document {
	p.skipTrivia()
	doc := Document{Span: start}
	switch p.cur().Kind {
	case token.DocumentEnd, token.DocumentStart, token.StreamEnd:
		// empty document
	default:
		doc.Root = p.parseValue()
	}
	p.skipTrivia()
	if p.cur().Kind == token.DocumentEnd {
		doc.Span = doc.Span.Cover(p.cur().Span)
		p.pos++
	}
	return doc
}

func (p *parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.Invalid}
	}
	return p.toks[p.pos]
}

func (p *parser) skipTrivia() {
	for {
		switch p.cur().Kind {
		case token.Comment, token.Newline:
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) skipKind(k token.Kind) {
	if p.cur().Kind == k {
		p.pos++
	}
}

func (p *parser) fail(span source.Span, msg string) {
	p.diags = append(p.diags, diag.NewError(diag.RuleParseError, span, msg))
}

// parseValue consumes one node starting at the current token: a scalar, an
// alias, a block/flow mapping or sequence, or an anchor/tag prefix wrapping
// any of those. Returns nil if the current position has no value to parse
// (e.g. a mapping key with no inline value).
func (p *parser) parseValue() Node {
	p.skipTrivia()
	tok := p.cur()
	switch tok.Kind {
	case token.BlockMappingStart:
		return p.parseMapping(false)
	case token.BlockSequenceStart:
		return p.parseSequence(false)
	case token.FlowMappingStart:
		return p.parseMapping(true)
	case token.FlowSequenceStart:
		return p.parseSequence(true)
	case token.Anchor:
		anchor := tok.Text
		p.pos++
		n := p.parseValue()
		if n != nil {
			setAnchor(n, anchor)
		}
		return n
	case token.Tag:
		tag := tok.Text
		p.pos++
		n := p.parseValue()
		if n != nil {
			setTag(n, tag)
		}
		return n
	case token.Alias:
		p.pos++
		return newAlias(tok.Span, tok.Text)
	case token.Scalar:
		p.pos++
		return newScalar(tok.Span, tok.ScalarStyle(), tok.Text)
	default:
		return nil
	}
}

func (p *parser) parseMapping(flow bool) *Mapping {
	startTok := p.cur()
	p.pos++
	m := &Mapping{base: base{span: startTok.Span}, Flow: flow}

	endKind := token.BlockEnd
	if flow {
		endKind = token.FlowMappingEnd
	}

	for {
		p.skipTrivia()
		tok := p.cur()
		switch tok.Kind {
		case endKind:
			m.span = m.span.Cover(tok.Span)
			p.pos++
			return m
		case token.StreamEnd, token.Invalid, token.DocumentStart, token.DocumentEnd:
			p.fail(tok.Span, "unterminated mapping")
			return m
		case token.FlowEntry:
			p.pos++
			continue
		case token.Key:
			p.pos++
		default:
			p.fail(tok.Span, "expected a mapping key")
			p.pos++
			continue
		}

		key := p.parseValue()
		p.skipTrivia()
		if p.cur().Kind == token.Value {
			p.pos++
		}
		p.skipTrivia()
		var value Node
		switch p.cur().Kind {
		case token.Key, endKind, token.FlowEntry, token.StreamEnd, token.DocumentStart, token.DocumentEnd:
			// no inline value
		default:
			value = p.parseValue()
		}
		m.Entries = append(m.Entries, MapEntry{Key: key, Value: value})
	}
}

func (p *parser) parseSequence(flow bool) *Sequence {
	startTok := p.cur()
	p.pos++
	s := &Sequence{base: base{span: startTok.Span}, Flow: flow}

	endKind := token.BlockEnd
	entryKind := token.BlockEntry
	if flow {
		endKind = token.FlowSequenceEnd
		entryKind = token.FlowEntry
	}

	if flow {
		for {
			p.skipTrivia()
			tok := p.cur()
			switch tok.Kind {
			case endKind:
				s.span = s.span.Cover(tok.Span)
				p.pos++
				return s
			case token.FlowEntry:
				p.pos++
				continue
			case token.StreamEnd, token.Invalid, token.DocumentStart, token.DocumentEnd:
				p.fail(tok.Span, "unterminated sequence")
				return s
			default:
				s.Items = append(s.Items, p.parseValue())
			}
		}
	}

	for {
		p.skipTrivia()
		tok := p.cur()
		switch tok.Kind {
		case endKind:
			s.span = s.span.Cover(tok.Span)
			p.pos++
			return s
		case entryKind:
			p.pos++
			p.skipTrivia()
			switch p.cur().Kind {
			case entryKind, endKind, token.StreamEnd, token.DocumentStart, token.DocumentEnd:
				s.Items = append(s.Items, nil)
			default:
				s.Items = append(s.Items, p.parseValue())
			}
		case token.StreamEnd, token.Invalid, token.DocumentStart, token.DocumentEnd:
			p.fail(tok.Span, "unterminated sequence")
			return s
		default:
			p.fail(tok.Span, "expected a sequence entry")
			p.pos++
		}
	}
}
