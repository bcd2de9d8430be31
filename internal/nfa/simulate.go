package nfa

import "github.com/roach88/automat/internal/fsm"

// stateSet is a set of state indices reached during simulation.
type stateSet map[int]struct{}

// Accepts reports whether the automaton accepts the sequence: starting
// from the epsilon closure of {start}, one move-then-close step per input
// symbol, accepting iff the surviving set contains the final state with
// the whole input consumed. Partial matches are rejected. The call always
// returns a boolean and never panics for a well-formed automaton;
// out-of-alphabet symbols simply empty the set.
//
// Accepts performs no writes and is safe to call concurrently on a fully
// built automaton.
func (a *NFA) Accepts(sequence string) bool {
	current := a.epsilonClosure(stateSet{0: {}})
	for _, r := range sequence {
		current = a.step(current, fsm.Symbol(r))
		if len(current) == 0 {
			return false
		}
	}
	for idx := range current {
		if a.states[idx].Final {
			return true
		}
	}
	return false
}

// epsilonClosure computes the transitive closure of seed over epsilon
// edges with a worklist. The closure set doubles as the visited set, so
// epsilon cycles are absorbed rather than looped.
func (a *NFA) epsilonClosure(seed stateSet) stateSet {
	closure := make(stateSet, len(seed))
	stack := make([]int, 0, len(seed))
	for s := range seed {
		closure[s] = struct{}{}
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, to := range a.lookup(s, fsm.Epsilon) {
			if _, seen := closure[to]; !seen {
				closure[to] = struct{}{}
				stack = append(stack, to)
			}
		}
	}
	return closure
}

// step takes one simulation step: the union of symbol-successors over the
// current set, then its epsilon closure. Epsilon is never matched against
// real input; stepping on it yields the empty set.
func (a *NFA) step(states stateSet, symbol fsm.Symbol) stateSet {
	if symbol.IsEpsilon() {
		return stateSet{}
	}
	moved := make(stateSet)
	for s := range states {
		for _, to := range a.lookup(s, symbol) {
			moved[to] = struct{}{}
		}
	}
	if len(moved) == 0 {
		return moved
	}
	return a.epsilonClosure(moved)
}

// lookup returns the successor indices for (state, symbol). A state with
// no row allocated yields no transitions.
func (a *NFA) lookup(state int, symbol fsm.Symbol) []int {
	if state < 0 || state >= len(a.rows) || a.rows[state] == nil {
		return nil
	}
	return a.rows[state][symbol]
}
