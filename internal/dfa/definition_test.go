package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/automat/internal/fsm"
)

func TestFromDefinition(t *testing.T) {
	def := []byte(`
states:
  - {index: 2, final: true}
transitions:
  - {from: 0, to: 1, symbol: a}
  - {from: 1, to: 2, symbol: b}
`)
	a, err := FromDefinition(def)
	require.NoError(t, err)

	assert.True(t, a.Consume("ab"))
	assert.False(t, a.Consume("a"))
	assert.False(t, a.Consume("abc"))

	want := []fsm.Transition{
		{From: 0, To: 1, Symbol: 'a'},
		{From: 1, To: 2, Symbol: 'b'},
	}
	assert.Equal(t, want, a.Transitions())
}

func TestFromDefinitionErrorState(t *testing.T) {
	def := []byte(`
states:
  - {index: 1, final: true, error: true}
transitions:
  - {from: 0, to: 1, symbol: a}
`)
	a, err := FromDefinition(def)
	require.NoError(t, err)

	// Final but flagged as error: never accepted.
	assert.False(t, a.Consume("a"))
}

func TestFromDefinitionValidation(t *testing.T) {
	testCases := []struct {
		name string
		def  string
		code DefinitionErrorCode
	}{
		{
			"no transitions",
			`states: [{index: 0, final: true}]`,
			ErrCodeEmptyDefinition,
		},
		{
			"multi-rune symbol",
			`transitions: [{from: 0, to: 1, symbol: ab}]`,
			ErrCodeInvalidSymbol,
		},
		{
			"empty symbol",
			`transitions: [{from: 0, to: 1, symbol: ""}]`,
			ErrCodeInvalidSymbol,
		},
		{
			"epsilon symbol",
			`transitions: [{from: 0, to: 1, symbol: ε}]`,
			ErrCodeInvalidSymbol,
		},
		{
			"negative transition endpoint",
			`transitions: [{from: -1, to: 0, symbol: a}]`,
			ErrCodeInvalidState,
		},
		{
			"negative state index",
			"states: [{index: -2}]\ntransitions: [{from: 0, to: 1, symbol: a}]",
			ErrCodeInvalidState,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromDefinition([]byte(tc.def))
			require.Error(t, err)
			require.True(t, IsDefinitionError(err))

			var de *DefinitionError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tc.code, de.Code)
		})
	}
}

func TestFromDefinitionMalformedYAML(t *testing.T) {
	_, err := FromDefinition([]byte("transitions: ["))
	require.Error(t, err)
	assert.False(t, IsDefinitionError(err), "decode failures are not validation errors")
}
