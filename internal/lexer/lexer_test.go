package lexer

import (
	"testing"

	"yamlguard/internal/source"
	"yamlguard/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, toks []token.Token, want []token.Kind) {
	t.Helper()
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count mismatch\n got: %v\nwant: %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v want %v\n full got: %v\nfull want: %v", i, got[i], want[i], got, want)
		}
	}
}

func TestScanSimpleMapping(t *testing.T) {
	toks, err := Scan(source.FileID(1), []byte("a: 1\nb: 2\n"))
	if err != nil {
		t.Fatalf("unexpected fatal: %v", err)
	}
	assertKinds(t, toks, []token.Kind{
		token.StreamStart,
		token.BlockMappingStart,
		token.Key, token.Scalar, token.Value, token.Scalar, token.Newline,
		token.Key, token.Scalar, token.Value, token.Scalar, token.Newline,
		token.BlockEnd,
		token.StreamEnd,
	})
}

func TestScanSequence(t *testing.T) {
	toks, err := Scan(source.FileID(1), []byte("- a\n- b\n"))
	if err != nil {
		t.Fatalf("unexpected fatal: %v", err)
	}
	assertKinds(t, toks, []token.Kind{
		token.StreamStart,
		token.BlockSequenceStart,
		token.BlockEntry, token.Scalar, token.Newline,
		token.BlockEntry, token.Scalar, token.Newline,
		token.BlockEnd,
		token.StreamEnd,
	})
}

func TestScanFlushSequence(t *testing.T) {
	toks, err := Scan(source.FileID(1), []byte("key:\n- a\n- b\n"))
	if err != nil {
		t.Fatalf("unexpected fatal: %v", err)
	}
	assertKinds(t, toks, []token.Kind{
		token.StreamStart,
		token.BlockMappingStart,
		token.Key, token.Scalar, token.Value, token.Newline,
		token.BlockSequenceStart,
		token.BlockEntry, token.Scalar, token.Newline,
		token.BlockEntry, token.Scalar, token.Newline,
		token.BlockEnd,
		token.BlockEnd,
		token.StreamEnd,
	})
}

func TestScanNestedMapping(t *testing.T) {
	src := "a:\n  b: 1\n  c: 2\nd: 3\n"
	toks, err := Scan(source.FileID(1), []byte(src))
	if err != nil {
		t.Fatalf("unexpected fatal: %v", err)
	}
	assertKinds(t, toks, []token.Kind{
		token.StreamStart,
		token.BlockMappingStart,
		token.Key, token.Scalar, token.Value, token.Newline,
		token.BlockMappingStart,
		token.Key, token.Scalar, token.Value, token.Scalar, token.Newline,
		token.Key, token.Scalar, token.Value, token.Scalar, token.Newline,
		token.BlockEnd,
		token.Key, token.Scalar, token.Value, token.Scalar, token.Newline,
		token.BlockEnd,
		token.StreamEnd,
	})
}

func TestScanDashWithInlineMapping(t *testing.T) {
	toks, err := Scan(source.FileID(1), []byte("- name: a\n  age: 1\n"))
	if err != nil {
		t.Fatalf("unexpected fatal: %v", err)
	}
	assertKinds(t, toks, []token.Kind{
		token.StreamStart,
		token.BlockSequenceStart,
		token.BlockEntry,
		token.BlockMappingStart,
		token.Key, token.Scalar, token.Value, token.Scalar, token.Newline,
		token.Key, token.Scalar, token.Value, token.Scalar, token.Newline,
		token.BlockEnd,
		token.BlockEnd,
		token.StreamEnd,
	})
}

func TestScanFlowMapping(t *testing.T) {
	toks, err := Scan(source.FileID(1), []byte("a: {b: 1, c: 2}\n"))
	if err != nil {
		t.Fatalf("unexpected fatal: %v", err)
	}
	assertKinds(t, toks, []token.Kind{
		token.StreamStart,
		token.BlockMappingStart,
		token.Key, token.Scalar, token.Value,
		token.FlowMappingStart,
		token.Key, token.Scalar, token.Value, token.Scalar,
		token.FlowEntry,
		token.Key, token.Scalar, token.Value, token.Scalar,
		token.FlowMappingEnd,
		token.Newline,
		token.BlockEnd,
		token.StreamEnd,
	})
}

func TestScanFlowSequence(t *testing.T) {
	toks, err := Scan(source.FileID(1), []byte("a: [1, 2, 3]\n"))
	if err != nil {
		t.Fatalf("unexpected fatal: %v", err)
	}
	assertKinds(t, toks, []token.Kind{
		token.StreamStart,
		token.BlockMappingStart,
		token.Key, token.Scalar, token.Value,
		token.FlowSequenceStart,
		token.Scalar, token.FlowEntry, token.Scalar, token.FlowEntry, token.Scalar,
		token.FlowSequenceEnd,
		token.Newline,
		token.BlockEnd,
		token.StreamEnd,
	})
}

func TestScanCommentsAndBlankLines(t *testing.T) {
	src := "# header\n\na: 1 # trailing\n"
	toks, err := Scan(source.FileID(1), []byte(src))
	if err != nil {
		t.Fatalf("unexpected fatal: %v", err)
	}
	assertKinds(t, toks, []token.Kind{
		token.StreamStart,
		token.Comment, token.Newline,
		token.Newline,
		token.BlockMappingStart,
		token.Key, token.Scalar, token.Value, token.Scalar, token.Comment, token.Newline,
		token.BlockEnd,
		token.StreamEnd,
	})
}

func TestScanQuotedKeyAndValue(t *testing.T) {
	toks, err := Scan(source.FileID(1), []byte("\"a: b\": 'x'\n"))
	if err != nil {
		t.Fatalf("unexpected fatal: %v", err)
	}
	assertKinds(t, toks, []token.Kind{
		token.StreamStart,
		token.BlockMappingStart,
		token.Key, token.Scalar, token.Value, token.Scalar, token.Newline,
		token.BlockEnd,
		token.StreamEnd,
	})
	if toks[3].Text != `"a: b"` {
		t.Fatalf("unexpected key text: %q", toks[3].Text)
	}
}

func TestScanBlockLiteralScalar(t *testing.T) {
	src := "a: |\n  line1\n  line2\nb: 1\n"
	toks, err := Scan(source.FileID(1), []byte(src))
	if err != nil {
		t.Fatalf("unexpected fatal: %v", err)
	}
	assertKinds(t, toks, []token.Kind{
		token.StreamStart,
		token.BlockMappingStart,
		token.Key, token.Scalar, token.Value, token.Scalar,
		token.Key, token.Scalar, token.Value, token.Scalar, token.Newline,
		token.BlockEnd,
		token.StreamEnd,
	})
	blockTok := toks[5]
	if blockTok.ScalarStyle() != token.Literal {
		t.Fatalf("expected literal style, got %v", blockTok.ScalarStyle())
	}
}

func TestScanAnchorAndAlias(t *testing.T) {
	src := "a: &x 1\nb: *x\n"
	toks, err := Scan(source.FileID(1), []byte(src))
	if err != nil {
		t.Fatalf("unexpected fatal: %v", err)
	}
	assertKinds(t, toks, []token.Kind{
		token.StreamStart,
		token.BlockMappingStart,
		token.Key, token.Scalar, token.Value, token.Anchor, token.Scalar, token.Newline,
		token.Key, token.Scalar, token.Value, token.Alias, token.Newline,
		token.BlockEnd,
		token.StreamEnd,
	})
}

func TestScanDocumentMarkers(t *testing.T) {
	src := "---\na: 1\n...\n"
	toks, err := Scan(source.FileID(1), []byte(src))
	if err != nil {
		t.Fatalf("unexpected fatal: %v", err)
	}
	assertKinds(t, toks, []token.Kind{
		token.StreamStart,
		token.DocumentStart, token.Newline,
		token.BlockMappingStart,
		token.Key, token.Scalar, token.Value, token.Scalar, token.Newline,
		token.BlockEnd,
		token.DocumentEnd, token.Newline,
		token.StreamEnd,
	})
}

func TestScanCoversSourceExactly(t *testing.T) {
	src := "a: 1\nb:\n  - x\n  - y\n"
	toks, err := Scan(source.FileID(1), []byte(src))
	if err != nil {
		t.Fatalf("unexpected fatal: %v", err)
	}
	for i := 1; i < len(toks); i++ {
		prev, cur := toks[i-1], toks[i]
		if cur.Span.Start < prev.Span.End {
			t.Fatalf("token %d starts before token %d ends: %+v vs %+v", i, i-1, cur, prev)
		}
	}
	if toks[0].Span.Start != 0 {
		t.Fatalf("stream start should be at offset 0")
	}
}

func TestScanCRLFPreserved(t *testing.T) {
	toks, err := Scan(source.FileID(1), []byte("a: 1\r\nb: 2\r\n"))
	if err != nil {
		t.Fatalf("unexpected fatal: %v", err)
	}
	var newlineStyles []token.LineEndStyle
	for _, tok := range toks {
		if tok.Kind == token.Newline {
			newlineStyles = append(newlineStyles, tok.LineEndStyle())
		}
	}
	for i, style := range newlineStyles {
		if style != token.CRLF {
			t.Fatalf("newline %d: expected CRLF, got %v", i, style)
		}
	}
}
