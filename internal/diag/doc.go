// Package diag defines the diagnostic model shared by the scanner, parser,
// rule catalog, and merger.
//
// # Purpose
//
//   - Provide a deterministic, serialisable record of every finding a lint
//     pass produces.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//   - Model fix suggestions as structured byte-range edits that the fix
//     applier can apply without re-parsing the source.
//
// # Scope
//
// Package diag performs no formatting, I/O, or CLI integration. Rendering
// lives in internal/diagfmt; applying fixes lives in internal/fix.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error).
//   - RuleID – the string identifier of the rule that produced it (or
//     parse-error / fix-did-not-converge for non-rule diagnostics).
//   - Message – human-oriented text.
//   - Primary span – the canonical source.Span the diagnostic points at.
//   - Notes – optional secondary spans/messages for extra context.
//   - Fixes – optional Fix records describing how to resolve the finding.
//
// # Fix suggestions
//
// A Fix is an ordered, non-overlapping list of Edits, each a byte-range
// replacement against the original source buffer. Fixes are data-only;
// internal/fix is the only package that applies them.
//
// # Emitting diagnostics
//
// Rules use a diag.Reporter to decouple emission from storage: construct a
// ReportBuilder via NewReportBuilder (or ReportError/ReportWarning/ReportInfo)
// and chain WithNote/WithFix before calling Emit. diag.BagReporter adapts a
// Reporter onto a *Bag, which supports sorting and deduplication.
package diag
