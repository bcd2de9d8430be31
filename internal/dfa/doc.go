// Package dfa implements the deterministic automaton executor: a
// transition table walked symbol by symbol over an input sequence.
//
// The automaton is built by the caller from an already-known table
// (AddTransition per edge, or FromDefinition for a YAML-declared table)
// and then queried with Consume. There is no construction algebra here;
// compiling a nondeterministic automaton down to a table is the job of an
// external compiler and out of scope.
//
// # Acceptance
//
// Consume starts at state 0, follows one transition per input symbol, and
// rejects immediately when no transition exists. A fully consumed input is
// accepted iff the walk ends on a final, non-error state. Matches are
// exact and fully consuming: there is no prefix or substring semantics.
package dfa
