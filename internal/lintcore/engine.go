// Package lintcore wires the scanner, line model, parser, rule catalog,
// merger, and fix applier into the single public contract spec.md names:
// (source bytes, effective config) -> (diagnostics, optional fixed bytes).
package lintcore

import (
	"fmt"

	"fortio.org/safecast"

	"yamlguard/internal/astyaml"
	"yamlguard/internal/config"
	"yamlguard/internal/diag"
	"yamlguard/internal/directive"
	"yamlguard/internal/fix"
	"yamlguard/internal/lexer"
	"yamlguard/internal/lines"
	"yamlguard/internal/merger"
	"yamlguard/internal/rules"
	"yamlguard/internal/source"
)

// Engine lints one file at a time against a fixed, immutable Config. An
// Engine holds no per-file state between calls — spec.md §5's "allocate
// per-file, discard on completion" lifecycle lives entirely inside Lint.
type Engine struct {
	cfg     *config.Config
	catalog *rules.Catalog
}

// New builds an Engine over cfg. cfg is never mutated and may be shared
// by any number of concurrent Engines (spec.md §5).
func New(cfg *config.Config, catalog *rules.Catalog) *Engine {
	if catalog == nil {
		catalog = rules.NewCatalog()
	}
	return &Engine{cfg: cfg, catalog: catalog}
}

// Result is the outcome of linting one file.
type Result struct {
	Bag *diag.Bag
	// Fatal is set when the scanner could not produce a usable token
	// stream at all; rules still ran best-effort on what it emitted.
	Fatal bool
}

// Lint runs the full forward pipeline over content and returns the
// merged, sorted, deduplicated diagnostic stream for fileID.
func (e *Engine) Lint(fs *source.FileSet, fileID source.FileID) (*Result, error) {
	f := fs.Get(fileID)
	content := f.Content

	toks, lexErr := lexer.Scan(fileID, content)
	lineModel := lines.Build(content)
	tree, parseDiags := astyaml.Parse(fileID, toks)

	byRule := make(map[diag.RuleID][]diag.Diagnostic)
	if lexErr != nil {
		byRule[diag.RuleParseError] = []diag.Diagnostic{
			diag.NewError(diag.RuleParseError, lexErr.Span, lexErr.Message),
		}
	}
	if len(parseDiags) > 0 {
		byRule[diag.RuleParseError] = append(byRule[diag.RuleParseError], parseDiags...)
	}

	in := &rules.Input{
		FileID:  fileID,
		FS:      fs,
		Content: content,
		Lines:   lineModel,
		Tokens:  toks,
		Tree:    tree,
	}

	for _, r := range e.catalog.All() {
		settings, known := e.cfg.Rules[r.ID()]
		if known && !settings.Enabled {
			continue
		}
		opts := r.DefaultOptions()
		if known {
			opts = settings.Options
		}
		found := r.Check(in, opts)
		if len(found) > 0 {
			byRule[r.ID()] = append(byRule[r.ID()], found...)
		}
	}

	directives := directive.Parse(fs, fileID, toks)
	scope := directive.Build(directives)

	bag := merger.Merge(fs, e.cfg, scope, byRule)
	return &Result{Bag: bag, Fatal: lexErr != nil}, nil
}

// Fix runs Lint, applies the fixable diagnostics it finds, and re-lints
// in a bounded loop until the result converges (spec.md §4.6). It returns
// the ConvergeResult plus the FileID of the final (fixed) content added to
// fs, so result.Remaining's spans resolve correctly against fs.
func (e *Engine) Fix(fs *source.FileSet, fileID source.FileID) (*fix.ConvergeResult, source.FileID, error) {
	f := fs.Get(fileID)
	var lastID source.FileID
	relint := func(content []byte) ([]diag.Diagnostic, error) {
		lastID = fs.Add(f.Path, content, f.Flags)
		res, err := e.Lint(fs, lastID)
		if err != nil {
			return nil, err
		}
		return res.Bag.Items(), nil
	}

	result, err := fix.Converge(f.Content, relint)
	if err != nil {
		return nil, 0, fmt.Errorf("lintcore: fix %s: %w", f.Path, err)
	}
	if !result.Converged {
		result.Remaining = append([]diag.Diagnostic{fixConvergenceDiagnostic(lastID, result)}, result.Remaining...)
	}
	return result, lastID, nil
}

// fixConvergenceDiagnostic is the fatal diagnostic spec.md §4.6/§7 require
// when the fix/re-lint loop exhausts fix.MaxConvergencePasses without
// settling: the last successful rewrite is kept, but the caller must still
// be told the file is not fully fixed.
func fixConvergenceDiagnostic(fileID source.FileID, result *fix.ConvergeResult) diag.Diagnostic {
	end, err := safecast.Conv[uint32](len(result.Fixed))
	if err != nil {
		panic(fmt.Errorf("lintcore: fixed content length overflow: %w", err))
	}
	span := source.Span{File: fileID, Start: 0, End: end}
	return diag.NewError(diag.RuleFixConvergence, span,
		fmt.Sprintf("fix did not converge after %d passes", result.Passes))
}
