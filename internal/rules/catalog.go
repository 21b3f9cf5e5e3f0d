package rules

import (
	"sort"

	"yamlguard/internal/diag"
)

// Catalog is the registry of every rule the engine knows about, keyed by ID.
type Catalog struct {
	byID map[diag.RuleID]Rule
}

// NewCatalog builds a Catalog containing every rule in the default set.
func NewCatalog() *Catalog {
	c := &Catalog{byID: make(map[diag.RuleID]Rule)}
	for _, r := range defaultRules() {
		c.Register(r)
	}
	return c
}

// Register adds or replaces a rule in the catalog.
func (c *Catalog) Register(r Rule) {
	c.byID[r.ID()] = r
}

// Lookup returns the rule with the given ID, if registered.
func (c *Catalog) Lookup(id diag.RuleID) (Rule, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// All returns every registered rule, sorted by ID for deterministic iteration.
func (c *Catalog) All() []Rule {
	out := make([]Rule, 0, len(c.byID))
	for _, r := range c.byID {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func defaultRules() []Rule {
	return []Rule{
		&IndentationRule{},
		&LineLengthRule{},
		&TrailingSpacesRule{},
		&EmptyLinesRule{},
		&NewLinesRule{},
		&NewLineAtEndOfFileRule{},
		&ColonsRule{},
		&CommasRule{},
		&HyphensRule{},
		&BracesRule{},
		&BracketsRule{},
		&CommentsRule{},
		&CommentsIndentationRule{},
		&KeyDuplicatesRule{},
		&KeyOrderingRule{},
		&TruthyRule{},
		&OctalValuesRule{},
		&FloatValuesRule{},
		&QuotedStringsRule{},
		&EmptyValuesRule{},
		&AnchorsRule{},
		&DocumentStartRule{},
		&DocumentEndRule{},
	}
}
