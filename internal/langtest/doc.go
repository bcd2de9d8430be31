// Package langtest provides scenario-driven conformance testing for the
// automaton builder.
//
// A scenario declares a chain of combinator operations, the sequences
// the resulting automaton must accept, and the sequences it must reject.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: union-ab-cd
//	description: "ab|cd accepts either branch and nothing else"
//	build:
//	  - {op: regex, fragment: ab}
//	  - {op: union, fragment: cd}
//	accept: [ab, cd]
//	reject: ["", a, c, abcd]
//
// The first build step must be "regex"; later steps apply "concat",
// "union" (each with a fragment) or "star" to the accumulated automaton.
//
// # Deterministic Snapshots
//
// RunWithGolden renders the built automaton — fragment label, state
// count, final state, and the canonically ordered transition list — and
// compares it against testdata/golden/{name}.golden. Construction is
// fully deterministic, so the snapshot is stable across runs.
//
// To regenerate golden files, run:
//
//	go test ./internal/langtest -update
package langtest
