// Package directive parses yamllint-style "# yamllint disable/enable" comments
// and turns them into a per-line suppression scope the merger consults before
// keeping a diagnostic.
package directive

import (
	"strings"

	"yamlguard/internal/source"
	"yamlguard/internal/token"
)

// Kind is the directive verb.
type Kind uint8

const (
	Disable Kind = iota
	Enable
	DisableLine
	DisableFile
)

// Directive is one parsed "# yamllint ..." comment.
type Directive struct {
	Kind  Kind
	Rules []string // empty means "every rule"
	Span  source.Span
	Line  uint32
}

const prefix = "yamllint"

// Parse scans toks for Comment tokens spelling a yamllint directive and
// resolves each to its 1-based line via fs. Non-directive comments are
// ignored; a malformed directive verb is ignored too (best-effort, matching
// the lenient style of a comment-driven mini-language).
func Parse(fs *source.FileSet, fileID source.FileID, toks []token.Token) []Directive {
	var out []Directive
	for _, tok := range toks {
		if tok.Kind != token.Comment {
			continue
		}
		kind, rules, ok := parseComment(tok.Text)
		if !ok {
			continue
		}
		start, _ := fs.Resolve(tok.Span)
		out = append(out, Directive{Kind: kind, Rules: rules, Span: tok.Span, Line: start.Line})
	}
	return out
}

func parseComment(text string) (Kind, []string, bool) {
	body := strings.TrimSpace(strings.TrimPrefix(text, "#"))
	body = strings.TrimSpace(strings.TrimPrefix(body, "#")) // "##" successive-comment form
	fields := strings.Fields(body)
	if len(fields) < 2 || fields[0] != prefix {
		return 0, nil, false
	}

	var kind Kind
	switch fields[1] {
	case "disable":
		kind = Disable
	case "enable":
		kind = Enable
	case "disable-line":
		kind = DisableLine
	case "disable-file":
		kind = DisableFile
	default:
		return 0, nil, false
	}

	var rules []string
	for _, f := range fields[2:] {
		if r, ok := strings.CutPrefix(f, "rule:"); ok {
			rules = append(rules, r)
		}
	}
	return kind, rules, true
}
