// Package automat builds and executes finite automata.
//
// Two representations are provided. Deterministic automata walk a
// caller-supplied transition table over an input sequence
// (NewDeterministic, AddTransition, Consume). Nondeterministic automata
// are compiled from regex fragments with Thompson-style combinators
// (FromChar, FromRegex, Concatenate, Union, KleeneClosure) and decide
// acceptance by subset simulation (Accepts).
//
// Fragments are literal symbol sequences; there is no operator grammar.
// Composition happens only through the explicit combinator calls, each of
// which returns a fresh automaton with exactly one start state (index 0)
// and exactly one final state.
//
// Both representations are immutable once built and safe for concurrent
// Consume/Accepts calls.
package automat

import (
	"github.com/roach88/automat/internal/dfa"
	"github.com/roach88/automat/internal/fsm"
	"github.com/roach88/automat/internal/nfa"
)

// Core vocabulary, shared by both representations.
type (
	// State is an immutable state descriptor; identity is the index.
	State = fsm.State

	// Symbol is a single-rune input symbol or the Epsilon marker.
	Symbol = fsm.Symbol

	// Transition is an ordered (from, to, symbol) triple with a
	// canonical "(s0->s1,a)" rendering.
	Transition = fsm.Transition

	// NFA is a nondeterministic automaton built by the combinators.
	NFA = nfa.NFA

	// Deterministic is a table-driven deterministic automaton.
	Deterministic = dfa.Automaton

	// BuildError reports a construction contract violation.
	BuildError = nfa.BuildError
)

// Epsilon is the reserved free-transition marker.
const Epsilon = fsm.Epsilon

// NewState constructs a state descriptor for deterministic table
// construction.
func NewState(index int, final, err bool) State {
	return fsm.NewState(index, final, err)
}

// NewDeterministic returns an empty deterministic automaton whose start
// is state 0.
func NewDeterministic() *Deterministic {
	return dfa.New()
}

// DeterministicFromDefinition compiles a YAML machine definition into a
// deterministic automaton. See the internal/dfa Definition documentation
// for the format.
func DeterministicFromDefinition(data []byte) (*Deterministic, error) {
	return dfa.FromDefinition(data)
}

// FromChar builds the atom automaton for one literal symbol.
func FromChar(c rune) *NFA {
	return nfa.FromChar(c)
}

// FromRegex builds the automaton matching a fragment as a literal symbol
// sequence. An empty fragment returns a BuildError.
func FromRegex(fragment string) (*NFA, error) {
	return nfa.FromRegex(fragment)
}

// IsEmptyFragmentError reports whether err is the empty-fragment
// BuildError.
func IsEmptyFragmentError(err error) bool {
	return nfa.IsEmptyFragmentError(err)
}
