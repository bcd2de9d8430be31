package langtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/automat/internal/nfa"
)

// Snapshot renders an automaton into the canonical text form compared
// against golden files: fragment label, state count, final state, and
// the transition list in canonical order, one per line.
func Snapshot(name string, a *nfa.NFA) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", name)
	fmt.Fprintf(&b, "fragment: %s\n", a.Fragment())
	fmt.Fprintf(&b, "states: %d\n", len(a.States()))
	if final, ok := a.FinalState(); ok {
		fmt.Fprintf(&b, "final: %s\n", final.Name())
	}
	b.WriteString("transitions:\n")
	for _, tr := range a.Transitions() {
		fmt.Fprintf(&b, "  %s\n", tr)
	}
	return []byte(b.String())
}

// RunWithGolden runs the scenario's acceptance table and compares the
// built automaton's snapshot against testdata/golden/{name}.golden.
func RunWithGolden(t *testing.T, s *Scenario) {
	t.Helper()

	a := Run(t, s)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, Snapshot(s.Name, a))
}
