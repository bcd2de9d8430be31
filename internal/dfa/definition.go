package dfa

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/roach88/automat/internal/fsm"
)

// Definition is a caller-supplied, table-driven machine specification.
//
// It is the declarative form of a sequence of AddTransition calls, for
// callers that already possess the table (for example as the output of an
// external NFA-to-DFA compiler):
//
//	states:
//	  - {index: 2, final: true}
//	  - {index: 3, error: true}
//	transitions:
//	  - {from: 0, to: 1, symbol: a}
//	  - {from: 1, to: 2, symbol: b}
//
// States that appear only as transition endpoints default to non-final,
// non-error and need no entry under states. State 0 is always the start
// and is always non-final, non-error.
type Definition struct {
	States      []StateDef      `yaml:"states"`
	Transitions []TransitionDef `yaml:"transitions"`
}

// StateDef flags one state of a Definition.
type StateDef struct {
	Index int  `yaml:"index"`
	Final bool `yaml:"final,omitempty"`
	Error bool `yaml:"error,omitempty"`
}

// TransitionDef declares one edge of a Definition.
type TransitionDef struct {
	From   int    `yaml:"from"`
	To     int    `yaml:"to"`
	Symbol string `yaml:"symbol"`
}

// DefinitionErrorCode categorizes definition validation failures.
type DefinitionErrorCode string

const (
	// ErrCodeInvalidSymbol indicates a transition symbol that is not
	// exactly one rune, or is the reserved epsilon marker.
	ErrCodeInvalidSymbol DefinitionErrorCode = "INVALID_SYMBOL"

	// ErrCodeInvalidState indicates a negative state index.
	ErrCodeInvalidState DefinitionErrorCode = "INVALID_STATE"

	// ErrCodeEmptyDefinition indicates a definition with no transitions.
	ErrCodeEmptyDefinition DefinitionErrorCode = "EMPTY_DEFINITION"
)

// DefinitionError reports why a Definition could not be compiled into an
// Automaton.
type DefinitionError struct {
	// Code identifies the error category.
	Code DefinitionErrorCode

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsDefinitionError reports whether err is (or wraps) a DefinitionError.
func IsDefinitionError(err error) bool {
	var de *DefinitionError
	return errors.As(err, &de)
}

// FromDefinition decodes a YAML machine definition and compiles it into
// an Automaton. The definition must declare at least one transition, all
// state indices must be non-negative, and every symbol must be exactly
// one non-epsilon rune.
func FromDefinition(data []byte) (*Automaton, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode machine definition: %w", err)
	}
	return def.Compile()
}

// Compile validates the definition and builds the Automaton.
func (d *Definition) Compile() (*Automaton, error) {
	if len(d.Transitions) == 0 {
		return nil, &DefinitionError{
			Code:    ErrCodeEmptyDefinition,
			Message: "definition declares no transitions",
		}
	}

	flags := make(map[int]StateDef, len(d.States))
	for _, sd := range d.States {
		if sd.Index < 0 {
			return nil, &DefinitionError{
				Code:    ErrCodeInvalidState,
				Message: fmt.Sprintf("state index %d is negative", sd.Index),
			}
		}
		flags[sd.Index] = sd
	}

	a := New()
	for _, td := range d.Transitions {
		if td.From < 0 || td.To < 0 {
			return nil, &DefinitionError{
				Code:    ErrCodeInvalidState,
				Message: fmt.Sprintf("transition %d->%d references a negative state index", td.From, td.To),
			}
		}
		symbol, err := parseSymbol(td.Symbol)
		if err != nil {
			return nil, err
		}
		a.AddTransition(stateFor(td.From, flags), stateFor(td.To, flags), symbol)
	}
	return a, nil
}

// parseSymbol decodes a definition symbol: exactly one rune, never the
// epsilon marker (a deterministic table has no free transitions).
func parseSymbol(s string) (fsm.Symbol, error) {
	r, size := utf8.DecodeRuneInString(s)
	if s == "" || r == utf8.RuneError || size != len(s) {
		return 0, &DefinitionError{
			Code:    ErrCodeInvalidSymbol,
			Message: fmt.Sprintf("symbol %q is not a single rune", s),
		}
	}
	if fsm.Symbol(r).IsEpsilon() {
		return 0, &DefinitionError{
			Code:    ErrCodeInvalidSymbol,
			Message: "epsilon is reserved and cannot appear in a deterministic table",
		}
	}
	return fsm.Symbol(r), nil
}

func stateFor(index int, flags map[int]StateDef) fsm.State {
	sd, ok := flags[index]
	if !ok {
		return fsm.NewState(index, false, false)
	}
	return fsm.NewState(index, sd.Final, sd.Error)
}
