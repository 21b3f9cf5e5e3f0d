// Package rules implements the catalog of independent YAML style checkers:
// each Rule consumes some subset of the token stream, the line model, and
// the parsed document tree, and emits zero or more diagnostics. Rules never
// read each other's output; the merger is what combines and filters them.
package rules

import (
	"yamlguard/internal/astyaml"
	"yamlguard/internal/diag"
	"yamlguard/internal/lines"
	"yamlguard/internal/source"
	"yamlguard/internal/token"
)

// Scope documents which inputs a rule actually needs. It is informational
// only: every rule receives the full Input regardless of its declared
// scope, since building the scanner/parser/line-model outputs once per file
// and sharing them is cheaper than specializing dispatch per rule.
type Scope uint8

const (
	ScopePerLine Scope = iota
	ScopePerToken
	ScopePerNode
	ScopeWholeDocument
)

// Input bundles every representation of one source file a rule might need.
type Input struct {
	FileID source.FileID
	FS     *source.FileSet
	Content []byte
	Lines   *lines.Model
	Tokens  []token.Token
	Tree    *astyaml.Stream
}

// Span builds a source.Span against this input's file.
func (in *Input) Span(start, end uint32) source.Span {
	return source.Span{File: in.FileID, Start: start, End: end}
}

// Rule is the contract every checker in the catalog implements.
type Rule interface {
	ID() diag.RuleID
	DefaultEnabled() bool
	DefaultSeverity() diag.Severity
	DefaultOptions() Options
	Scope() Scope
	Fixable() bool
	Check(in *Input, opts Options) []diag.Diagnostic
}
