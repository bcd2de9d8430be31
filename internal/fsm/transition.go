package fsm

import (
	"fmt"
	"sort"
)

// Transition is an ordered (from, to, symbol) triple. From and To are
// state indices. The value is comparable and serves as the composite key
// for duplicate-edge detection.
type Transition struct {
	From   int
	To     int
	Symbol Symbol
}

// String returns the canonical rendering "(s{from}->s{to},{symbol})".
func (t Transition) String() string {
	return fmt.Sprintf("(s%d->s%d,%s)", t.From, t.To, t.Symbol)
}

// Less orders transitions canonically by (From, To, Symbol). Sorting with
// Less makes transition listings deterministic for introspection and
// golden comparison.
func (t Transition) Less(o Transition) bool {
	if t.From != o.From {
		return t.From < o.From
	}
	if t.To != o.To {
		return t.To < o.To
	}
	return t.Symbol < o.Symbol
}

// SortTransitions sorts a transition slice into canonical order in place.
func SortTransitions(ts []Transition) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].Less(ts[j]) })
}
