package astyaml

import (
	"testing"

	"yamlguard/internal/lexer"
	"yamlguard/internal/source"
)

func parseSrc(t *testing.T, src string) *Stream {
	t.Helper()
	toks, err := lexer.Scan(source.FileID(1), []byte(src))
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	stream, diags := Parse(source.FileID(1), toks)
	if len(diags) != 0 {
		t.Fatalf("unexpected parse diagnostics: %v", diags)
	}
	return stream
}

func TestParseSimpleMapping(t *testing.T) {
	stream := parseSrc(t, "a: 1\nb: 2\n")
	if len(stream.Documents) != 1 {
		t.Fatalf("expected 1 document, got %d", len(stream.Documents))
	}
	m, ok := stream.Documents[0].Root.(*Mapping)
	if !ok {
		t.Fatalf("expected root to be a Mapping, got %T", stream.Documents[0].Root)
	}
	if len(m.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(m.Entries))
	}
	key0 := m.Entries[0].Key.(*Scalar)
	if key0.Value != "a" {
		t.Errorf("expected first key 'a', got %q", key0.Value)
	}
	val1 := m.Entries[1].Value.(*Scalar)
	if val1.Value != "2" {
		t.Errorf("expected second value '2', got %q", val1.Value)
	}
}

func TestParseFlushSequence(t *testing.T) {
	stream := parseSrc(t, "key:\n- a\n- b\n")
	m := stream.Documents[0].Root.(*Mapping)
	seq := m.Entries[0].Value.(*Sequence)
	if len(seq.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(seq.Items))
	}
	if seq.Items[0].(*Scalar).Value != "a" {
		t.Errorf("expected first item 'a'")
	}
}

func TestParseAnchorAndAlias(t *testing.T) {
	stream := parseSrc(t, "a: &x 1\nb: *x\n")
	m := stream.Documents[0].Root.(*Mapping)
	v0 := m.Entries[0].Value.(*Scalar)
	if v0.Anchor() != "&x" {
		t.Errorf("expected anchor '&x', got %q", v0.Anchor())
	}
	v1 := m.Entries[1].Value.(*Alias)
	if v1.Name != "*x" {
		t.Errorf("expected alias name '*x', got %q", v1.Name)
	}
}

func TestParseFlowCollections(t *testing.T) {
	stream := parseSrc(t, "a: {b: 1, c: [2, 3]}\n")
	m := stream.Documents[0].Root.(*Mapping)
	inner := m.Entries[0].Value.(*Mapping)
	if !inner.Flow || len(inner.Entries) != 2 {
		t.Fatalf("expected flow mapping with 2 entries, got %+v", inner)
	}
	seq := inner.Entries[1].Value.(*Sequence)
	if !seq.Flow || len(seq.Items) != 2 {
		t.Fatalf("expected flow sequence with 2 items, got %+v", seq)
	}
}

func TestParseMultiDocumentStream(t *testing.T) {
	stream := parseSrc(t, "---\na: 1\n---\nb: 2\n...\n")
	if len(stream.Documents) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(stream.Documents))
	}
}
