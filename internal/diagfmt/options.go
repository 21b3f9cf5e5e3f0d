// Package diagfmt renders a diag.Bag into the two textual forms §6 of the
// spec names as the external contract (parsable, colored) plus a JSON form
// for editor/CI integration, which the core doesn't require but a complete
// linter repository has.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures the parsable/colored renderer.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
}

// JSONOpts configures the JSON renderer.
type JSONOpts struct {
	PathMode     PathMode
	IncludeNotes bool
	IncludeFixes bool
}
