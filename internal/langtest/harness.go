package langtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/automat/internal/nfa"
)

// Run compiles the scenario and asserts its full acceptance table, plus
// the structural invariants every built automaton must satisfy.
func Run(t *testing.T, s *Scenario) *nfa.NFA {
	t.Helper()

	a, err := s.Compile()
	require.NoError(t, err, "scenario %q must compile", s.Name)

	assertInvariants(t, a)

	for _, seq := range s.Accept {
		assert.True(t, a.Accepts(seq), "scenario %q: %q must be accepted", s.Name, seq)
	}
	for _, seq := range s.Reject {
		assert.False(t, a.Accepts(seq), "scenario %q: %q must be rejected", s.Name, seq)
	}
	return a
}

// assertInvariants checks the single-start/single-final contract and
// that every edge stays inside the automaton's own index range.
func assertInvariants(t *testing.T, a *nfa.NFA) {
	t.Helper()

	states := a.States()
	finals := 0
	for i, s := range states {
		assert.Equal(t, i, s.Index, "state indices must be dense")
		if s.Final {
			finals++
		}
	}
	assert.Equal(t, 1, finals, "exactly one final state")
	assert.Equal(t, 0, a.Start().Index, "start is state 0")

	for _, tr := range a.Transitions() {
		assert.Less(t, tr.From, len(states), "edge source inside the automaton")
		assert.Less(t, tr.To, len(states), "edge target inside the automaton")
	}
}
