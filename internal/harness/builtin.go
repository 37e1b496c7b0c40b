package harness

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"go.uber.org/zap"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the embedded self-test scenarios, ordered by file name.
func Builtin() ([]*Scenario, error) {
	names, err := fs.Glob(builtinFS, "builtin/*.yaml")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	scenarios := make([]*Scenario, 0, len(names))
	for _, name := range names {
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		s, err := ParseScenario(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(name), err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// ScenarioOutcome is the pass/fail record of one scenario in a suite.
type ScenarioOutcome struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Errors []string `json:"errors,omitempty"`
}

// Summary aggregates the outcomes of a suite run.
type Summary struct {
	Scenarios []ScenarioOutcome `json:"scenarios"`
	Passed    int               `json:"passed"`
	Failed    int               `json:"failed"`
	Total     int               `json:"total"`
}

// Add records an outcome.
func (s *Summary) Add(o ScenarioOutcome) {
	s.Scenarios = append(s.Scenarios, o)
	s.Total++
	if o.Pass {
		s.Passed++
	} else {
		s.Failed++
	}
}

// OK reports whether every scenario passed.
func (s *Summary) OK() bool {
	return s.Failed == 0
}

// RunSuite executes scenarios in order and summarizes the outcomes.
func RunSuite(scenarios []*Scenario, logger *zap.Logger) *Summary {
	summary := &Summary{Scenarios: []ScenarioOutcome{}}
	for _, s := range scenarios {
		result, err := RunWithOptions(s, WithLogger(logger))
		if err != nil {
			summary.Add(ScenarioOutcome{
				Name:   s.Name,
				Errors: []string{fmt.Sprintf("execution failed: %v", err)},
			})
			continue
		}
		summary.Add(ScenarioOutcome{
			Name:   s.Name,
			Pass:   result.Pass,
			Errors: result.Errors,
		})
	}
	return summary
}

// RunBuiltin loads and runs the embedded self-test suite.
func RunBuiltin(logger *zap.Logger) (*Summary, error) {
	scenarios, err := Builtin()
	if err != nil {
		return nil, fmt.Errorf("loading built-in scenarios: %w", err)
	}
	return RunSuite(scenarios, logger), nil
}
