package rules

import (
	"testing"

	"yamlguard/internal/astyaml"
	"yamlguard/internal/lexer"
	"yamlguard/internal/lines"
	"yamlguard/internal/source"
)

func inputFor(t *testing.T, src string) *Input {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.yaml", []byte(src))
	content := fs.Get(fileID).Content
	toks, lexErr := lexer.Scan(fileID, content)
	if lexErr != nil {
		t.Fatalf("unexpected lex error: %v", lexErr)
	}
	tree, _ := astyaml.Parse(fileID, toks)
	return &Input{
		FileID:  fileID,
		FS:      fs,
		Content: content,
		Lines:   lines.Build(content),
		Tokens:  toks,
		Tree:    tree,
	}
}
