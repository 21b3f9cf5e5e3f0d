package directive

import "sort"

// state is a point-in-time suppression snapshot. allDisabled plus marked
// doubles as "every rule but the ones in marked" when allDisabled is true,
// or "just the rules in marked" when it's false - flipping the set's
// meaning lets enable/disable toggle cleanly without two separate maps.
type state struct {
	allDisabled bool
	marked      map[string]bool
	// permanentAll/permanentRules come from disable-file: once set, later
	// enable directives can never undo them for the rest of the file.
	permanentAll   bool
	permanentRules map[string]bool
}

func newState() state {
	return state{marked: map[string]bool{}, permanentRules: map[string]bool{}}
}

func (st state) clone() state {
	marked := make(map[string]bool, len(st.marked))
	for k, v := range st.marked {
		marked[k] = v
	}
	permanent := make(map[string]bool, len(st.permanentRules))
	for k, v := range st.permanentRules {
		permanent[k] = v
	}
	return state{
		allDisabled:    st.allDisabled,
		marked:         marked,
		permanentAll:   st.permanentAll,
		permanentRules: permanent,
	}
}

func (st *state) apply(d Directive) {
	switch d.Kind {
	case Disable:
		if len(d.Rules) == 0 {
			st.allDisabled = true
			st.marked = map[string]bool{}
			return
		}
		for _, r := range d.Rules {
			if st.allDisabled {
				delete(st.marked, r) // r was a carved-out exception; re-disable it
			} else {
				st.marked[r] = true
			}
		}
	case Enable:
		if len(d.Rules) == 0 {
			st.allDisabled = false
			st.marked = map[string]bool{}
			return
		}
		for _, r := range d.Rules {
			if st.allDisabled {
				st.marked[r] = true // carve out an exception
			} else {
				delete(st.marked, r)
			}
		}
	case DisableFile:
		if len(d.Rules) == 0 {
			st.permanentAll = true
			return
		}
		for _, r := range d.Rules {
			st.permanentRules[r] = true
		}
	}
}

func (st state) suppressed(rule string) bool {
	if st.permanentAll || st.permanentRules[rule] {
		return true
	}
	if st.allDisabled {
		return !st.marked[rule]
	}
	return st.marked[rule]
}

type snapshot struct {
	line uint32
	st   state
}

// lineOverride is the state disable-line narrows suppression to for exactly
// one physical line, on top of whatever the running state already suppresses.
type lineOverride struct {
	allRules bool
	rules    map[string]bool
}

func (o lineOverride) suppressed(rule string) bool {
	if o.allRules {
		return true
	}
	return o.rules[rule]
}

// Scope answers, for a given rule and 1-based line, whether a diagnostic
// there should be dropped because of a yamllint directive comment.
type Scope struct {
	snapshots     []snapshot
	lineOverrides map[uint32]lineOverride
}

// Build turns a file's parsed Directives, in source order, into a queryable Scope.
func Build(directives []Directive) *Scope {
	s := &Scope{lineOverrides: map[uint32]lineOverride{}}

	cur := newState()
	s.snapshots = append(s.snapshots, snapshot{line: 0, st: cur.clone()})

	for _, d := range directives {
		if d.Kind == DisableLine {
			ov := s.lineOverrides[d.Line]
			if len(d.Rules) == 0 {
				ov.allRules = true
			} else {
				if ov.rules == nil {
					ov.rules = map[string]bool{}
				}
				for _, r := range d.Rules {
					ov.rules[r] = true
				}
			}
			s.lineOverrides[d.Line] = ov
			continue
		}
		cur.apply(d)
		s.snapshots = append(s.snapshots, snapshot{line: d.Line, st: cur.clone()})
	}
	return s
}

// Suppressed reports whether a diagnostic from rule at line should be dropped.
func (s *Scope) Suppressed(rule string, line uint32) bool {
	if ov, ok := s.lineOverrides[line]; ok && ov.suppressed(rule) {
		return true
	}
	return s.stateAt(line).suppressed(rule)
}

func (s *Scope) stateAt(line uint32) state {
	// The last snapshot at or before line is the state in effect there;
	// a directive takes effect starting on its own line, yamllint-style.
	idx := sort.Search(len(s.snapshots), func(i int) bool {
		return s.snapshots[i].line > line
	})
	if idx == 0 {
		return s.snapshots[0].st
	}
	return s.snapshots[idx-1].st
}
