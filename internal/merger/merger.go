// Package merger combines the independent per-rule diagnostic streams into
// the engine's single ordered output: filtering by config enablement,
// suppressing by in-source directive comments, deduplicating, and sorting
// (spec.md §4.5).
package merger

import (
	"yamlguard/internal/config"
	"yamlguard/internal/diag"
	"yamlguard/internal/directive"
	"yamlguard/internal/source"
)

// Merge filters in order: (a) rule enabled in cfg, (b) file not excluded
// by the rule's own ignore patterns, (c) not suppressed by an active
// directive; it then dedupes identical (line, column, rule_id, message)
// tuples. The result is sorted.
//
// byRule groups every diagnostic the rule runner collected by the rule
// that produced it, so disabled rules can be dropped even if their Check
// already ran (spec.md requires the merger, not the runner, to own the
// enable/disable decision).
// maxDiagnosticsPerFile bounds one file's Bag; a single file pathologically
// full of violations still terminates in bounded memory.
const maxDiagnosticsPerFile = 10000

func Merge(fs *source.FileSet, cfg *config.Config, scope *directive.Scope, byRule map[diag.RuleID][]diag.Diagnostic) *diag.Bag {
	bag := diag.NewBag(maxDiagnosticsPerFile)
	for ruleID, diags := range byRule {
		settings, known := cfg.Rules[ruleID]
		if known && !settings.Enabled {
			continue
		}
		for _, d := range diags {
			if known {
				d.Severity = settings.Level
			}
			if known && settings.Matcher != nil && settings.Matcher.Match(fs.Get(d.Primary.File).Path, false) {
				continue
			}
			if isSuppressed(fs, scope, d) {
				continue
			}
			bag.Add(d)
		}
	}
	bag.Dedup()
	bag.Sort()
	return bag
}

// isSuppressed reports whether d's primary position falls on a line an
// active "# yamllint disable[-line]" directive covers for d's rule.
// Diagnostics synthesized outside the rule catalog (parse-error,
// fix-did-not-converge) are never suppressible: they have no config
// entry for a directive to name.
func isSuppressed(fs *source.FileSet, scope *directive.Scope, d diag.Diagnostic) bool {
	if scope == nil {
		return false
	}
	if d.RuleID == diag.RuleParseError || d.RuleID == diag.RuleFixConvergence {
		return false
	}
	start, _ := fs.Resolve(d.Primary)
	return scope.Suppressed(string(d.RuleID), start.Line)
}
