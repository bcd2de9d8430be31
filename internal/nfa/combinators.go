package nfa

import "github.com/roach88/automat/internal/fsm"

// Concatenate returns the automaton matching a's language followed by
// other's. Other's states are renumbered past a's; a's final state is
// unflagged and wired to other's old start by an epsilon edge; then the
// single-final and single-start invariants are restored. Neither operand
// is mutated.
func (a *NFA) Concatenate(other *NFA) *NFA {
	r := a.clone()
	selfFinals := r.finalIndices()
	offset := r.merge(other)
	for _, f := range selfFinals {
		r.states[f].Final = false
		r.addEdge(f, offset, fsm.Epsilon)
	}
	r.fragment = a.fragment + other.fragment
	r.appendFinal()
	r.insertStart([]int{0})
	return r
}

// ConcatenateFragment is the fragment-string convenience form of
// Concatenate: the suffix automaton is built with FromRegex first.
func (a *NFA) ConcatenateFragment(fragment string) (*NFA, error) {
	other, err := FromRegex(fragment)
	if err != nil {
		return nil, err
	}
	return a.Concatenate(other), nil
}

// Union returns the automaton matching either operand's language. The
// operands are merged as two disjoint components; the restored start
// epsilon-branches to both former starts, and both former finals feed
// the restored final. Neither operand is mutated. The label is
// a-label|other-label.
func (a *NFA) Union(other *NFA) *NFA {
	r := a.clone()
	offset := r.merge(other)
	r.fragment = a.fragment + "|" + other.fragment
	r.appendFinal()
	r.insertStart([]int{0, offset})
	return r
}

// UnionFragment is the fragment-string convenience form of Union.
func (a *NFA) UnionFragment(fragment string) (*NFA, error) {
	other, err := FromRegex(fragment)
	if err != nil {
		return nil, err
	}
	return a.Union(other), nil
}

// KleeneClosure returns the automaton matching zero or more repetitions
// of a's language. A structural copy of the operand gets the repeat
// wiring (epsilon both ways between its start and final), the invariants
// are restored, and the normalized start receives an epsilon bypass to
// the normalized final so the empty sequence stays accepted after
// renumbering. The operand is not mutated. The label is a-label*.
func (a *NFA) KleeneClosure() *NFA {
	r := a.clone()
	for _, f := range r.finalIndices() {
		r.addEdge(0, f, fsm.Epsilon) // zero occurrences
		r.addEdge(f, 0, fsm.Epsilon) // repeat
	}
	r.fragment = a.fragment + "*"
	r.appendFinal()
	r.insertStart([]int{0})
	r.addEdge(0, len(r.states)-1, fsm.Epsilon)
	return r
}
