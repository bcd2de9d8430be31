package fsm

import "fmt"

// State is an immutable state descriptor.
//
// Identity is the Index: two State values refer to the same state of an
// automaton iff their indices are equal. Indices are dense and unique
// within a single automaton; builders renumber on every composition so
// merged sub-automata never collide.
type State struct {
	// Index is the dense, non-negative state number.
	Index int

	// Final marks an accepting state.
	Final bool

	// Err marks an explicit error (sink) state. Only meaningful for
	// deterministic automata; nondeterministic builders never set it.
	Err bool
}

// NewState constructs a state descriptor.
func NewState(index int, final, err bool) State {
	return State{Index: index, Final: final, Err: err}
}

// Name returns the canonical state name, "s" followed by the index.
func (s State) Name() string {
	return fmt.Sprintf("s%d", s.Index)
}
