package fsm

// Symbol is a single-rune input symbol, or the distinguished Epsilon
// marker. Epsilon is only meaningful in nondeterministic automata: it is
// traversed for free and never matched against real input.
type Symbol rune

// Epsilon is the reserved free-transition marker. The rune 'ε' cannot be
// used as a literal input symbol.
const Epsilon Symbol = 'ε'

// IsEpsilon reports whether the symbol is the epsilon marker.
func (s Symbol) IsEpsilon() bool {
	return s == Epsilon
}

// String renders the symbol as it appears in canonical transition
// renderings.
func (s Symbol) String() string {
	return string(rune(s))
}
