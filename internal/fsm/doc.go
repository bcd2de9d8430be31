// Package fsm defines the shared data model for finite automata:
// states, symbols, and transitions.
//
// The package holds pure value types only. Deterministic execution lives
// in internal/dfa; nondeterministic construction and simulation live in
// internal/nfa. Both build on the same State/Symbol/Transition vocabulary
// so transitions from either representation render identically.
//
// # Canonical Rendering
//
// A transition renders as "(s{from}->s{to},{symbol})", e.g. "(s0->s1,a)".
// Epsilon transitions render with the literal marker: "(s1->s2,ε)".
// The rendering is canonical: it is stable across runs and is used as the
// line format for golden snapshots. Set membership, however, uses the
// Transition value itself as a composite key, not the rendered string.
package fsm
