package diagfmt

import (
	"encoding/json"
	"io"

	"yamlguard/internal/diag"
	"yamlguard/internal/source"
)

// LocationJSON is a diagnostic's position, in both byte-offset and
// human-readable line/column form.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line"`
	StartCol  uint32 `json:"start_col"`
	EndLine   uint32 `json:"end_line"`
	EndCol    uint32 `json:"end_col"`
}

// NoteJSON is one secondary location attached to a diagnostic.
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// FixEditJSON is one byte-range replacement within a FixJSON.
type FixEditJSON struct {
	Location LocationJSON `json:"location"`
	NewText  string       `json:"new_text"`
}

// FixJSON is one proposed fix, as a named bundle of edits.
type FixJSON struct {
	Title string        `json:"title"`
	Edits []FixEditJSON `json:"edits"`
}

// DiagnosticJSON is the wire shape of one diag.Diagnostic.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	RuleID   string       `json:"rule_id"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
	Fixes    []FixJSON    `json:"fixes,omitempty"`
}

// DiagnosticsOutput is the root JSON object emitted by JSON.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(span source.Span, fs *source.FileSet, pathMode PathMode) LocationJSON {
	f := fs.Get(span.File)

	var path string
	switch pathMode {
	case PathModeAbsolute:
		path = f.FormatPath("absolute", "")
	case PathModeRelative:
		path = f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		path = f.FormatPath("basename", "")
	default:
		path = f.FormatPath("auto", "")
	}

	startPos, endPos := fs.Resolve(span)
	return LocationJSON{
		File:      path,
		StartByte: span.Start,
		EndByte:   span.End,
		StartLine: startPos.Line,
		StartCol:  startPos.Col,
		EndLine:   endPos.Line,
		EndCol:    endPos.Col,
	}
}

// BuildDiagnosticsOutput converts bag into the JSON-ready structure, without
// serializing it, so callers that want to post-process can reuse it.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	diagnostics := make([]DiagnosticJSON, 0, len(items))

	for _, d := range items {
		diagJSON := DiagnosticJSON{
			Severity: d.Severity.String(),
			RuleID:   string(d.RuleID),
			Message:  d.Message,
			Location: makeLocation(d.Primary, fs, opts.PathMode),
		}

		if opts.IncludeNotes && len(d.Notes) > 0 {
			diagJSON.Notes = make([]NoteJSON, len(d.Notes))
			for j, note := range d.Notes {
				diagJSON.Notes[j] = NoteJSON{
					Message:  note.Msg,
					Location: makeLocation(note.Span, fs, opts.PathMode),
				}
			}
		}

		if opts.IncludeFixes && len(d.Fixes) > 0 {
			diagJSON.Fixes = make([]FixJSON, len(d.Fixes))
			for j, fix := range d.Fixes {
				edits := make([]FixEditJSON, len(fix.Edits))
				for k, edit := range fix.Edits {
					edits[k] = FixEditJSON{
						Location: makeLocation(edit.Span, fs, opts.PathMode),
						NewText:  string(edit.Replacement),
					}
				}
				diagJSON.Fixes[j] = FixJSON{Title: fix.Title, Edits: edits}
			}
		}

		diagnostics = append(diagnostics, diagJSON)
	}

	return DiagnosticsOutput{Diagnostics: diagnostics, Count: len(diagnostics)}
}

// JSON writes bag's diagnostics to w as a single indented JSON document,
// for editor and CI integration.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	output := BuildDiagnosticsOutput(bag, fs, opts)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
