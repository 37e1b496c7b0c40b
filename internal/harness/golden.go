package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/longrun/internal/canonical"
	"github.com/roach88/longrun/internal/testutil"
)

// TraceSnapshot captures the trace of a scenario execution.
// It is serialized with canonical JSON for deterministic comparison.
type TraceSnapshot struct {
	ScenarioName string       `json:"scenario_name"`
	SessionToken string       `json:"session_token"`
	Trace        []TraceEvent `json:"trace"`
}

// NewTraceSnapshot builds the snapshot for a scenario and its result.
func NewTraceSnapshot(scenario *Scenario, result *Result) TraceSnapshot {
	return TraceSnapshot{
		ScenarioName: scenario.Name,
		SessionToken: testutil.NewFixedTokenGenerator(scenario.SessionToken).Generate(),
		Trace:        result.Trace,
	}
}

// Canonical implements canonical.Canonicaler.
func (s TraceSnapshot) Canonical() any {
	trace := make([]any, len(s.Trace))
	for i, event := range s.Trace {
		trace[i] = event
	}
	return map[string]any{
		"scenario_name": s.ScenarioName,
		"session_token": s.SessionToken,
		"trace":         trace,
	}
}

// Bytes returns the canonical JSON encoding of the snapshot.
func (s TraceSnapshot) Bytes() ([]byte, error) {
	return canonical.Marshal(s)
}

// RunWithGolden executes a scenario and compares the trace against a golden file.
// The golden file is stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the trace doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	return AssertGolden(t, scenario, result)
}

// AssertGolden compares an existing result's trace against a golden file.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) error {
	t.Helper()

	data, err := NewTraceSnapshot(scenario, result).Bytes()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return nil
}
