package dfa

import (
	"github.com/roach88/automat/internal/fsm"
)

// Automaton is a deterministic automaton: at most one successor per
// (state, symbol) pair.
//
// The transition table is index-addressed and grows lazily as edges are
// added; looking up a state beyond the allocated span yields "no
// transition" rather than an error. Finality and error-ness travel on the
// stored successor states, baked in at construction; there is no separate
// final-state set.
//
// An Automaton is safe for concurrent Consume calls once construction has
// finished. AddTransition must not race with readers.
type Automaton struct {
	rows  []map[fsm.Symbol]fsm.State
	start fsm.State
}

// New returns an empty automaton. The start state is always state 0,
// non-final and non-error.
func New() *Automaton {
	return &Automaton{
		start: fsm.NewState(0, false, false),
	}
}

// Start returns the automaton's start state.
func (a *Automaton) Start() fsm.State {
	return a.start
}

// AddTransition registers the edge from --symbol--> to. The last write
// for a given (from, symbol) pair wins; an overwrite is table construction
// by the caller, not a conflict.
func (a *Automaton) AddTransition(from, to fsm.State, symbol fsm.Symbol) {
	for from.Index >= len(a.rows) {
		a.rows = append(a.rows, nil)
	}
	if a.rows[from.Index] == nil {
		a.rows[from.Index] = make(map[fsm.Symbol]fsm.State)
	}
	a.rows[from.Index][symbol] = to
}

// Consume walks the automaton over sequence, one symbol per transition.
// A missing transition rejects immediately without reading the remaining
// input. The fully consumed sequence is accepted iff the walk ends on a
// final, non-error state.
func (a *Automaton) Consume(sequence string) bool {
	current := a.start
	for _, r := range sequence {
		next, ok := a.lookup(current, fsm.Symbol(r))
		if !ok {
			return false
		}
		current = next
	}
	return current.Final && !current.Err
}

// Transitions returns every registered edge in canonical order.
func (a *Automaton) Transitions() []fsm.Transition {
	var ts []fsm.Transition
	for from, row := range a.rows {
		for symbol, to := range row {
			ts = append(ts, fsm.Transition{From: from, To: to.Index, Symbol: symbol})
		}
	}
	fsm.SortTransitions(ts)
	return ts
}

func (a *Automaton) lookup(s fsm.State, symbol fsm.Symbol) (fsm.State, bool) {
	if s.Index >= len(a.rows) || a.rows[s.Index] == nil {
		return fsm.State{}, false
	}
	to, ok := a.rows[s.Index][symbol]
	return to, ok
}
