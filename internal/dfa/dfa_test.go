package dfa

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/automat/internal/fsm"
)

// makeABAutomaton builds the two-edge machine 0 --a--> 1 --b--> 2 with
// state 2 final.
func makeABAutomaton() *Automaton {
	start := fsm.NewState(0, false, false)
	first := fsm.NewState(1, false, false)
	second := fsm.NewState(2, true, false)

	a := New()
	a.AddTransition(start, first, 'a')
	a.AddTransition(first, second, 'b')
	return a
}

func TestConsume(t *testing.T) {
	a := makeABAutomaton()

	testCases := []struct {
		name     string
		sequence string
		want     bool
	}{
		{"exact match", "ab", true},
		{"trailing input", "abc", false},
		{"leading input", "cab", false},
		{"prefix only", "a", false},
		{"empty sequence", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, a.Consume(tc.sequence))
		})
	}
}

func TestConsumeShortCircuitsOnMissingTransition(t *testing.T) {
	a := makeABAutomaton()

	// 'x' has no transition from the start state; the rest of the input
	// is irrelevant, including symbols that would otherwise match.
	assert.False(t, a.Consume("xab"))
}

func TestConsumeErrorStateRejects(t *testing.T) {
	start := fsm.NewState(0, false, false)
	sink := fsm.NewState(1, true, true)

	a := New()
	a.AddTransition(start, sink, 'a')

	// The walk ends on a state that is final but flagged as an error.
	assert.False(t, a.Consume("a"))
}

func TestAddTransitionLastWriteWins(t *testing.T) {
	start := fsm.NewState(0, false, false)
	reject := fsm.NewState(1, false, false)
	accept := fsm.NewState(2, true, false)

	a := New()
	a.AddTransition(start, reject, 'a')
	a.AddTransition(start, accept, 'a')

	assert.True(t, a.Consume("a"))
	assert.Equal(t, []fsm.Transition{{From: 0, To: 2, Symbol: 'a'}}, a.Transitions())
}

func TestLookupBeyondAllocatedSpan(t *testing.T) {
	a := makeABAutomaton()

	// State 7 was never allocated; the lookup yields "no transition",
	// not a fault.
	_, ok := a.lookup(fsm.NewState(7, false, false), 'a')
	assert.False(t, ok)
}

func TestTransitionsCanonicalOrder(t *testing.T) {
	a := New()
	s0 := fsm.NewState(0, false, false)
	s1 := fsm.NewState(1, false, false)
	s2 := fsm.NewState(2, true, false)
	a.AddTransition(s1, s2, 'b')
	a.AddTransition(s0, s2, 'c')
	a.AddTransition(s0, s1, 'a')

	want := []fsm.Transition{
		{From: 0, To: 1, Symbol: 'a'},
		{From: 0, To: 2, Symbol: 'c'},
		{From: 1, To: 2, Symbol: 'b'},
	}
	assert.Equal(t, want, a.Transitions())
}

func TestConcurrentConsume(t *testing.T) {
	// A fully built automaton is read-only; concurrent Consume calls
	// must agree with the single-threaded answers.
	a := makeABAutomaton()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.True(t, a.Consume("ab"))
				assert.False(t, a.Consume("abc"))
			}
		}()
	}
	wg.Wait()
}
