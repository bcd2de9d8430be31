package nfa

import (
	"fmt"

	"github.com/roach88/automat/internal/fsm"
)

// NFA is a nondeterministic automaton under construction or simulation.
//
// Representation is arena-style: a flat state vector plus an
// index-addressed adjacency table, so composition is offset renumbering
// and list concatenation rather than graph rewriting. The value carries
// its regex fragment as a provenance label for debugging and rendering;
// the label plays no role in matching.
type NFA struct {
	states   []fsm.State
	rows     []map[fsm.Symbol][]int
	edges    map[fsm.Transition]struct{}
	fragment string
}

// FromChar builds the atom automaton for a single literal symbol: a
// non-final start, a final end, and one edge between them. The rune 'ε'
// is reserved for epsilon transitions and must not be used as a literal.
func FromChar(c rune) *NFA {
	a := &NFA{
		edges:    make(map[fsm.Transition]struct{}),
		fragment: string(c),
	}
	a.addState(false)
	a.addState(true)
	a.addEdge(0, 1, fsm.Symbol(c))
	return a
}

// FromRegex builds an automaton matching the fragment as a literal
// symbol sequence. Each character is an atom; the atoms are chained with
// Concatenate. No operator interpretation happens — '|' and '*' inside a
// fragment are ordinary literals.
//
// An empty fragment is a precondition violation and returns a BuildError
// with code EMPTY_FRAGMENT.
func FromRegex(fragment string) (*NFA, error) {
	if fragment == "" {
		return nil, newEmptyFragmentError()
	}
	runes := []rune(fragment)
	if len(runes) == 1 {
		return FromChar(runes[0]), nil
	}
	return FromChar(runes[0]).ConcatenateFragment(string(runes[1:]))
}

// Fragment returns the automaton's provenance label.
func (a *NFA) Fragment() string {
	return a.fragment
}

// Start returns the start state, always state 0.
func (a *NFA) Start() fsm.State {
	return a.states[0]
}

// States returns a copy of the automaton's state vector.
func (a *NFA) States() []fsm.State {
	out := make([]fsm.State, len(a.states))
	copy(out, a.states)
	return out
}

// FinalState returns the unique final state. The second return is false
// only for a malformed automaton; every public operation restores the
// single-final invariant.
func (a *NFA) FinalState() (fsm.State, bool) {
	for _, s := range a.states {
		if s.Final {
			return s, true
		}
	}
	return fsm.State{}, false
}

// Transitions returns every edge in canonical order.
func (a *NFA) Transitions() []fsm.Transition {
	ts := make([]fsm.Transition, 0, len(a.edges))
	for t := range a.edges {
		ts = append(ts, t)
	}
	fsm.SortTransitions(ts)
	return ts
}

// addState appends a fresh state and returns its index.
func (a *NFA) addState(final bool) int {
	idx := len(a.states)
	a.states = append(a.states, fsm.NewState(idx, final, false))
	a.rows = append(a.rows, nil)
	return idx
}

// addEdge registers from --symbol--> to. Adding an existing exact triple
// is a no-op; the Transition value is the composite dedup key.
// Referencing a state that was never created is a contract violation and
// panics with a BuildError rather than corrupting the arena.
func (a *NFA) addEdge(from, to int, symbol fsm.Symbol) {
	if from < 0 || from >= len(a.states) || to < 0 || to >= len(a.states) {
		panic(&BuildError{
			Code:     ErrCodeUnknownState,
			Message:  fmt.Sprintf("edge %d->%d references a state outside the automaton (%d states)", from, to, len(a.states)),
			Fragment: a.fragment,
		})
	}
	t := fsm.Transition{From: from, To: to, Symbol: symbol}
	if _, dup := a.edges[t]; dup {
		return
	}
	a.edges[t] = struct{}{}
	if a.rows[from] == nil {
		a.rows[from] = make(map[fsm.Symbol][]int)
	}
	a.rows[from][symbol] = append(a.rows[from][symbol], to)
}

// finalIndices returns the indices of the currently final states.
func (a *NFA) finalIndices() []int {
	var finals []int
	for i, s := range a.states {
		if s.Final {
			finals = append(finals, i)
		}
	}
	return finals
}

// clone deep-copies the automaton so combinators never mutate their
// operands.
func (a *NFA) clone() *NFA {
	c := &NFA{
		states:   make([]fsm.State, len(a.states)),
		rows:     make([]map[fsm.Symbol][]int, len(a.rows)),
		edges:    make(map[fsm.Transition]struct{}, len(a.edges)),
		fragment: a.fragment,
	}
	copy(c.states, a.states)
	for i, row := range a.rows {
		if row == nil {
			continue
		}
		c.rows[i] = make(map[fsm.Symbol][]int, len(row))
		for symbol, targets := range row {
			c.rows[i][symbol] = append([]int(nil), targets...)
		}
	}
	for t := range a.edges {
		c.edges[t] = struct{}{}
	}
	return c
}

// merge appends other's states and edges onto a, renumbered past a's own
// index range, and returns the offset (other's old start is now state
// offset). The two components share no states and no edges; any wiring
// between them is the caller's job.
func (a *NFA) merge(other *NFA) int {
	offset := len(a.states)
	for _, s := range other.states {
		a.states = append(a.states, fsm.NewState(offset+s.Index, s.Final, false))
		a.rows = append(a.rows, nil)
	}
	for _, t := range other.Transitions() {
		a.addEdge(t.From+offset, t.To+offset, t.Symbol)
	}
	return offset
}

// appendFinal restores the single-final invariant: one fresh final state
// is appended, every currently-final state loses its flag and gains an
// epsilon edge into the new final. Returns the new final's index.
func (a *NFA) appendFinal() int {
	finals := a.finalIndices()
	idx := a.addState(true)
	for _, f := range finals {
		a.states[f].Final = false
		a.addEdge(f, idx, fsm.Epsilon)
	}
	return idx
}

// insertStart restores the single-start invariant: every state shifts up
// by one index, a fresh non-final state becomes state 0, and an epsilon
// edge runs from it to each of the given former start states (indices as
// they were before the shift).
func (a *NFA) insertStart(starts []int) {
	oldTransitions := a.Transitions()
	oldStates := a.states

	a.states = make([]fsm.State, 0, len(oldStates)+1)
	a.rows = make([]map[fsm.Symbol][]int, 0, len(oldStates)+1)
	a.edges = make(map[fsm.Transition]struct{}, len(oldTransitions)+len(starts))
	a.addState(false)
	for _, s := range oldStates {
		a.states = append(a.states, fsm.NewState(s.Index+1, s.Final, false))
		a.rows = append(a.rows, nil)
	}

	for _, t := range oldTransitions {
		a.addEdge(t.From+1, t.To+1, t.Symbol)
	}
	for _, s := range starts {
		a.addEdge(0, s+1, fsm.Epsilon)
	}
}
