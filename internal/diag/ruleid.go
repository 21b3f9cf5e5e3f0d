package diag

// RuleID names the rule that produced a Diagnostic. Unlike a numeric error
// code, the string itself is the stable identifier users write in config
// files and directive comments (# yamllint disable-line rule:<rule-id>).
type RuleID string

const (
	NoRuleID RuleID = ""

	RuleIndentation           RuleID = "indentation"
	RuleLineLength             RuleID = "line-length"
	RuleTrailingSpaces         RuleID = "trailing-spaces"
	RuleEmptyLines             RuleID = "empty-lines"
	RuleNewLines               RuleID = "new-lines"
	RuleNewLineAtEndOfFile     RuleID = "new-line-at-end-of-file"
	RuleColons                 RuleID = "colons"
	RuleCommas                 RuleID = "commas"
	RuleHyphens                RuleID = "hyphens"
	RuleBraces                 RuleID = "braces"
	RuleBrackets               RuleID = "brackets"
	RuleComments               RuleID = "comments"
	RuleCommentsIndentation    RuleID = "comments-indentation"
	RuleKeyDuplicates          RuleID = "key-duplicates"
	RuleKeyOrdering            RuleID = "key-ordering"
	RuleTruthy                 RuleID = "truthy"
	RuleOctalValues            RuleID = "octal-values"
	RuleFloatValues            RuleID = "float-values"
	RuleQuotedStrings          RuleID = "quoted-strings"
	RuleEmptyValues            RuleID = "empty-values"
	RuleAnchors                RuleID = "anchors"
	RuleDocumentStart          RuleID = "document-start"
	RuleDocumentEnd            RuleID = "document-end"

	// RuleParseError marks a diagnostic synthesized from a lexer/parser
	// failure rather than a rule in the catalog; it has no config entry.
	RuleParseError RuleID = "parse-error"

	// RuleFixConvergence marks the fatal diagnostic emitted when the fix
	// applier's bounded re-lint loop fails to reach a fixed point.
	RuleFixConvergence RuleID = "fix-did-not-converge"
)

func (r RuleID) String() string { return string(r) }
