package harness

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"

	"github.com/roach88/longrun/internal/runs"
	"github.com/roach88/longrun/internal/testutil"
)

// Harness executes scenarios with a deterministic sequencer and session token.
type Harness struct {
	seq      *testutil.Sequencer
	tokenGen *testutil.FixedTokenGenerator
	logger   *zap.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger used for execution diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// Run executes a scenario with a silent logger and returns the result.
func Run(scenario *Scenario) (*Result, error) {
	return RunWithOptions(scenario)
}

// RunWithOptions executes a scenario and returns the result.
//
// Execution flow:
// 1. Resolve the named predicate
// 2. Evaluate the point checks
// 3. Record every maximal run of the input in the trace
// 4. Run runs.Longest and record the chosen run
// 5. Compare with expect and verify the structural properties
//
// An error is returned only when the scenario cannot be executed at all;
// mismatches are reported through Result.Errors.
func RunWithOptions(scenario *Scenario, opts ...Option) (*Result, error) {
	h := &Harness{
		seq:      testutil.NewSequencer(),
		tokenGen: testutil.NewFixedTokenGenerator(scenario.SessionToken),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}

	pred, err := runs.ParsePredicate(scenario.Predicate)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve predicate: %w", err)
	}

	logger := h.logger.With(
		zap.String("scenario", scenario.Name),
		zap.String("session", h.tokenGen.Generate()),
	)

	result := NewResult()
	h.executeChecks(scenario, pred, result)

	for _, span := range runs.Maximal(scenario.Input, pred) {
		result.AddRunTrace(span, h.seq.Next())
	}

	result.Output = runs.Longest(scenario.Input, pred)
	result.Span = runs.LongestSpan(scenario.Input, pred)
	result.AddResultTrace(result.Span, result.Output, h.seq.Next())

	logger.Debug("scan finished",
		zap.Int("input_len", len(scenario.Input)),
		zap.Int("runs", len(result.Trace)-1),
		zap.Int("start", result.Span.Start),
		zap.Int("length", result.Span.Len),
	)

	if diff := cmp.Diff(scenario.Expect, result.Output, cmpopts.EquateEmpty()); diff != "" {
		result.AddError(fmt.Sprintf("output mismatch (-expect +got):\n%s", diff))
	}

	for _, msg := range CheckProperties(scenario.Input, pred, result.Output) {
		result.AddError(msg)
	}
	for _, msg := range CheckSpan(scenario.Input, pred, result.Span, result.Output) {
		result.AddError(msg)
	}

	if !result.Pass {
		logger.Debug("scenario failed", zap.Strings("errors", result.Errors))
	}

	return result, nil
}

// executeChecks evaluates the scenario's point checks against pred.
func (h *Harness) executeChecks(scenario *Scenario, pred runs.Predicate, result *Result) {
	for i, check := range scenario.Checks {
		if got := pred(check.Value); got != check.Holds {
			result.AddError(fmt.Sprintf("checks[%d]: %s(%d) = %t, expected %t",
				i, scenario.Predicate, check.Value, got, check.Holds))
		}
	}
}
