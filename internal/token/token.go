package token

import "yamlguard/internal/source"

// Token represents a single lexical token with its source span and raw text.
//
// Positions are derived lazily from Span via source.FileSet.Resolve: a
// token never carries its own line/column, only a byte-range Span plus a
// Style that disambiguates Scalar and Newline tokens.
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  string
	Style uint8 // ScalarStyle for Scalar, LineEndStyle for Newline, unused otherwise
}

// ScalarStyle returns the token's scalar quoting/block style.
// Only meaningful when Kind == Scalar.
func (t Token) ScalarStyle() ScalarStyle { return ScalarStyle(t.Style) }

// LineEndStyle returns the token's line terminator kind.
// Only meaningful when Kind == Newline.
func (t Token) LineEndStyle() LineEndStyle { return LineEndStyle(t.Style) }

// IsCollectionStart reports whether the token opens a block or flow collection.
func (t Token) IsCollectionStart() bool {
	switch t.Kind {
	case BlockMappingStart, BlockSequenceStart, FlowMappingStart, FlowSequenceStart:
		return true
	default:
		return false
	}
}

// IsCollectionEnd reports whether the token closes a block or flow collection.
func (t Token) IsCollectionEnd() bool {
	switch t.Kind {
	case BlockEnd, FlowMappingEnd, FlowSequenceEnd:
		return true
	default:
		return false
	}
}
