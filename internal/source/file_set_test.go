package source

import "testing"

func TestFileSetAddAssignsSequentialIDs(t *testing.T) {
	fs := NewFileSet()
	a := fs.Add("a.yaml", []byte("a: 1\n"), 0)
	b := fs.Add("b.yaml", []byte("b: 2\n"), 0)
	if a != 0 || b != 1 {
		t.Fatalf("expected sequential IDs 0,1; got %d,%d", a, b)
	}
}

func TestFileSetAddVirtualStripsBOM(t *testing.T) {
	fs := NewFileSet()
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a: 1\n")...)
	id := fs.AddVirtual("stdin", content)
	f := fs.Get(id)
	if f.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
	if string(f.Content) != "a: 1\n" {
		t.Errorf("expected BOM stripped, got %q", f.Content)
	}
}

func TestFileSetPreservesCRLF(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.yaml", []byte("a: 1\r\nb: 2\r\n"))
	f := fs.Get(id)
	if string(f.Content) != "a: 1\r\nb: 2\r\n" {
		t.Errorf("CRLF must be preserved verbatim for round-trip, got %q", f.Content)
	}
}

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.yaml", []byte("abc\ndef\n"))
	start, end := fs.Resolve(Span{File: id, Start: 4, End: 5})
	if start != (LineCol{Line: 2, Col: 1}) {
		t.Errorf("got start %+v", start)
	}
	if end != (LineCol{Line: 2, Col: 2}) {
		t.Errorf("got end %+v", end)
	}
}

func TestFileGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.yaml", []byte("one\ntwo\nthree"))
	f := fs.Get(id)
	if got := f.GetLine(1); got != "one" {
		t.Errorf("line 1 = %q", got)
	}
	if got := f.GetLine(2); got != "two" {
		t.Errorf("line 2 = %q", got)
	}
	if got := f.GetLine(3); got != "three" {
		t.Errorf("line 3 = %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("line 4 = %q, want empty", got)
	}
}

func TestFileSetGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.Add("dir/a.yaml", []byte("x: 1\n"), 0)
	f, ok := fs.GetByPath("dir/a.yaml")
	if !ok || f.Path != "dir/a.yaml" {
		t.Fatalf("GetByPath failed: %+v %v", f, ok)
	}
	if _, ok := fs.GetByPath("missing.yaml"); ok {
		t.Error("expected missing.yaml to be absent")
	}
}
