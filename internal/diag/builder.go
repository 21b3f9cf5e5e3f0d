package diag

import "yamlguard/internal/source"

func New(sev Severity, rule RuleID, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		RuleID:   rule,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(rule RuleID, primary source.Span, msg string) Diagnostic {
	return New(SevError, rule, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

func (d Diagnostic) WithFix(title string, edits ...Edit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}
