// Package nfa implements nondeterministic-automaton construction and
// simulation.
//
// Automata are built from regex fragments with Thompson-style
// combinators: FromChar/FromRegex construct atoms, Concatenate, Union and
// KleeneClosure compose them. Fragments are sequences of literal symbols;
// no operator grammar is interpreted here — '|' and '*' acquire meaning
// only through the explicit combinator calls. The builder is a
// composition API, not a parser.
//
// # Structural Invariants
//
// Every automaton returned by a public operation satisfies:
//
//  1. Exactly one state is final.
//  2. State 0 is the unique start state.
//  3. State indices are dense and unique; composition renumbers one
//     operand so merged sub-automata never collide.
//  4. Every transition endpoint is a state of the automaton.
//
// Combinators are copy-and-merge: operands are never mutated, so a
// sub-automaton may be composed again later with a diverging history.
//
// # Simulation
//
// Accepts runs the subset simulation: the epsilon closure of {start},
// folded through move-then-close steps per input symbol, accepting iff
// the resulting set contains the final state with the input fully
// consumed. Epsilon cycles are absorbed by the closure's visited set.
package nfa
