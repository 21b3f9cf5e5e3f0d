package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"yamlguard/internal/diag"
	"yamlguard/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	ruleColor    = color.New(color.FgHiBlack)
	pathColor    = color.New(color.FgHiWhite, color.Bold)
)

// Pretty renders bag's diagnostics in the parsable form §6 specifies:
// "file:line:col: [level] message (rule_id)", one per line. Callers should
// have already called bag.Sort() for a deterministic report order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnosticLine(w, d, fs, opts)
	}
}

func writeDiagnosticLine(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	path, line, col := locate(d.Primary, fs, opts.PathMode)
	level := levelLabel(d.Severity)

	if !opts.Color {
		fmt.Fprintf(w, "%s:%d:%d: [%s] %s (%s)\n", path, line, col, level, d.Message, d.RuleID)
		return
	}

	sevColor := severityColor(d.Severity)
	fmt.Fprintf(w, "%s:%d:%d: [%s] %s (%s)\n",
		pathColor.Sprint(path), line, col,
		sevColor.Sprint(level), d.Message, ruleColor.Sprint(string(d.RuleID)))
}

func locate(span source.Span, fs *source.FileSet, mode PathMode) (path string, line, col uint32) {
	f := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	switch mode {
	case PathModeAbsolute:
		path = f.FormatPath("absolute", "")
	case PathModeRelative:
		path = f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		path = f.FormatPath("basename", "")
	default:
		path = f.FormatPath("auto", "")
	}
	return path, start.Line, start.Col
}

func levelLabel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}
