package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/longrun/internal/runs"
)

// Scenario defines a conformance test scenario.
// A scenario feeds one input through runs.Longest with one predicate and
// states the run it expects back.
type Scenario struct {
	// Name uniquely identifies this scenario. Golden files are named after it.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Predicate is a named predicate reference (see runs.ParsePredicate).
	Predicate string `yaml:"predicate"`

	// Input is the sequence to scan. Required; use [] for the empty input.
	Input []int `yaml:"input"`

	// Expect is the run the scan must return. Required; use [] for "no run".
	Expect []int `yaml:"expect"`

	// Checks are optional point tests of the predicate.
	Checks []Check `yaml:"checks,omitempty"`

	// SessionToken is an optional fixed token recorded in the snapshot.
	// If empty, defaults to "test-session-default".
	SessionToken string `yaml:"session_token,omitempty"`
}

// Check asserts the predicate's answer for a single value.
type Check struct {
	Value int  `yaml:"value"`
	Holds bool `yaml:"holds"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
// yaml.v3 leaves a missing sequence nil and decodes [] to an empty slice,
// which is how a missing input/expect is told apart from an empty one.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Predicate == "" {
		return fmt.Errorf("predicate is required")
	}

	if _, err := runs.ParsePredicate(s.Predicate); err != nil {
		return fmt.Errorf("predicate: %w", err)
	}

	if s.Input == nil {
		return fmt.Errorf("input is required (use [] for an empty input)")
	}

	if s.Expect == nil {
		return fmt.Errorf("expect is required (use [] when no run is expected)")
	}

	return nil
}
