package langtest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/automat/internal/nfa"
)

// Build step operations.
const (
	OpRegex  = "regex"
	OpConcat = "concat"
	OpUnion  = "union"
	OpStar   = "star"
)

// Scenario defines one conformance scenario: a combinator chain plus the
// acceptance table the result must satisfy.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Build lists the combinator operations, applied in order. The
	// first step must be OpRegex.
	Build []BuildStep `yaml:"build"`

	// Accept lists sequences the built automaton must accept.
	Accept []string `yaml:"accept"`

	// Reject lists sequences the built automaton must reject.
	Reject []string `yaml:"reject"`
}

// BuildStep is a single combinator application.
type BuildStep struct {
	// Op is one of OpRegex, OpConcat, OpUnion, OpStar.
	Op string `yaml:"op"`

	// Fragment is the regex fragment for regex/concat/union steps.
	// Star takes no fragment.
	Fragment string `yaml:"fragment,omitempty"`
}

// LoadScenario reads and decodes a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s has no name", path)
	}
	return &s, nil
}

// Compile applies the scenario's build steps and returns the resulting
// automaton.
func (s *Scenario) Compile() (*nfa.NFA, error) {
	if len(s.Build) == 0 {
		return nil, fmt.Errorf("scenario %q has no build steps", s.Name)
	}
	if s.Build[0].Op != OpRegex {
		return nil, fmt.Errorf("scenario %q: first build step must be %q, got %q", s.Name, OpRegex, s.Build[0].Op)
	}

	a, err := nfa.FromRegex(s.Build[0].Fragment)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: step 1: %w", s.Name, err)
	}

	for i, step := range s.Build[1:] {
		switch step.Op {
		case OpConcat:
			a, err = a.ConcatenateFragment(step.Fragment)
		case OpUnion:
			a, err = a.UnionFragment(step.Fragment)
		case OpStar:
			a = a.KleeneClosure()
		case OpRegex:
			err = fmt.Errorf("%q is only valid as the first step", OpRegex)
		default:
			err = fmt.Errorf("unknown op %q", step.Op)
		}
		if err != nil {
			return nil, fmt.Errorf("scenario %q: step %d: %w", s.Name, i+2, err)
		}
	}
	return a, nil
}
