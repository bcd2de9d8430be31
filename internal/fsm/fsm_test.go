package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateName(t *testing.T) {
	assert.Equal(t, "s0", NewState(0, false, false).Name())
	assert.Equal(t, "s12", NewState(12, true, false).Name())
}

func TestStateIdentityIsIndex(t *testing.T) {
	// Flags do not participate in identity; only the index does.
	a := NewState(3, false, false)
	b := NewState(3, true, false)
	assert.Equal(t, a.Index, b.Index)
	assert.NotEqual(t, a, b, "full value equality still sees the flags")
}

func TestSymbolRendering(t *testing.T) {
	assert.Equal(t, "a", Symbol('a').String())
	assert.Equal(t, "ε", Epsilon.String())
	assert.True(t, Epsilon.IsEpsilon())
	assert.False(t, Symbol('e').IsEpsilon())
}

func TestTransitionString(t *testing.T) {
	testCases := []struct {
		name string
		tr   Transition
		want string
	}{
		{"literal", Transition{From: 0, To: 1, Symbol: 'a'}, "(s0->s1,a)"},
		{"epsilon", Transition{From: 1, To: 2, Symbol: Epsilon}, "(s1->s2,ε)"},
		{"multi-digit", Transition{From: 10, To: 3, Symbol: 'z'}, "(s10->s3,z)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.tr.String())
		})
	}
}

func TestTransitionAsCompositeKey(t *testing.T) {
	// Adding the same triple twice must collapse to one entry.
	set := map[Transition]struct{}{}
	set[Transition{From: 0, To: 1, Symbol: 'a'}] = struct{}{}
	set[Transition{From: 0, To: 1, Symbol: 'a'}] = struct{}{}
	set[Transition{From: 0, To: 1, Symbol: Epsilon}] = struct{}{}
	assert.Len(t, set, 2)
}

func TestSortTransitions(t *testing.T) {
	ts := []Transition{
		{From: 1, To: 2, Symbol: Epsilon},
		{From: 0, To: 2, Symbol: 'b'},
		{From: 1, To: 2, Symbol: 'a'},
		{From: 0, To: 1, Symbol: 'a'},
	}
	SortTransitions(ts)

	want := []Transition{
		{From: 0, To: 1, Symbol: 'a'},
		{From: 0, To: 2, Symbol: 'b'},
		{From: 1, To: 2, Symbol: 'a'},
		{From: 1, To: 2, Symbol: Epsilon},
	}
	assert.Equal(t, want, ts)
}
