package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/longrun/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Update bool   // regenerate golden files
	Filter string // scenario filter (glob pattern)
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <scenarios-dir>",
		Short: "Run scenario files",
		Long: `Run YAML scenario files through the longest-run finder.

Each scenario's output is compared with its expect list and checked for the
structural properties of a longest run. When a golden file exists at
<scenarios-dir>/golden/<file>.golden, the trace must match it byte for byte.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, etc.)

Examples:
  longrun test ./scenarios
  longrun test ./scenarios --filter "prime-*"
  longrun test ./scenarios --update
  longrun test ./scenarios --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern")

	return cmd
}

func runTests(opts *TestOptions, scenariosDir string, cmd *cobra.Command) error {
	if _, err := os.Stat(scenariosDir); os.IsNotExist(err) {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return formatter.Fail(ExitCommandError, ErrCodeNotFound,
			fmt.Sprintf("scenarios directory not found: %s", scenariosDir), nil)
	}

	scenarioFiles, err := findScenarioFiles(scenariosDir, opts.Filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to find scenarios", err)
	}

	summary := &harness.Summary{Scenarios: []harness.ScenarioOutcome{}}
	if len(scenarioFiles) == 0 {
		if opts.Format == "json" {
			return outputSummaryJSON(cmd.OutOrStdout(), summary)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No scenarios found.")
		return nil
	}

	for _, scenarioFile := range scenarioFiles {
		summary.Add(runScenario(opts, scenarioFile))
	}

	opts.Logger.Debug("scenarios finished",
		zap.Int("passed", summary.Passed),
		zap.Int("failed", summary.Failed),
	)

	return outputSummary(opts.RootOptions, cmd, summary)
}

// findScenarioFiles finds all YAML scenario files in a directory.
// The golden/ subdirectory is skipped.
func findScenarioFiles(dir string, filter string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != dir && info.Name() == "golden" {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})

	return files, err
}

// runScenario loads, executes and golden-checks a single scenario file.
func runScenario(opts *TestOptions, scenarioFile string) harness.ScenarioOutcome {
	scenario, err := harness.LoadScenario(scenarioFile)
	if err != nil {
		return harness.ScenarioOutcome{
			Name:   filepath.Base(scenarioFile),
			Errors: []string{fmt.Sprintf("failed to load scenario: %v", err)},
		}
	}

	result, err := harness.RunWithOptions(scenario, harness.WithLogger(opts.Logger))
	if err != nil {
		return harness.ScenarioOutcome{
			Name:   scenario.Name,
			Errors: []string{fmt.Sprintf("execution failed: %v", err)},
		}
	}

	outcome := harness.ScenarioOutcome{
		Name:   scenario.Name,
		Pass:   result.Pass,
		Errors: result.Errors,
	}

	snapshot, err := harness.NewTraceSnapshot(scenario, result).Bytes()
	if err != nil {
		outcome.Pass = false
		outcome.Errors = append(outcome.Errors, fmt.Sprintf("failed to marshal trace: %v", err))
		return outcome
	}

	goldenPath := goldenFilePath(scenarioFile)

	if opts.Update {
		if err := writeGoldenFile(goldenPath, snapshot); err != nil {
			outcome.Pass = false
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("failed to update golden file: %v", err))
		}
		return outcome
	}

	golden, err := os.ReadFile(goldenPath)
	if os.IsNotExist(err) {
		// No golden file - assertion-based validation only
		return outcome
	}
	if err != nil {
		outcome.Pass = false
		outcome.Errors = append(outcome.Errors, fmt.Sprintf("failed to read golden file: %v", err))
		return outcome
	}

	if !bytes.Equal(golden, snapshot) {
		outcome.Pass = false
		outcome.Errors = append(outcome.Errors, "trace does not match golden file (run with --update to regenerate)")
	}
	return outcome
}

// goldenFilePath returns the path to the golden file for a scenario.
func goldenFilePath(scenarioFile string) string {
	dir := filepath.Dir(scenarioFile)
	base := filepath.Base(scenarioFile)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, "golden", name+".golden")
}

// writeGoldenFile writes the snapshot, creating the golden directory if needed.
func writeGoldenFile(goldenPath string, snapshot []byte) error {
	if err := os.MkdirAll(filepath.Dir(goldenPath), 0755); err != nil {
		return fmt.Errorf("failed to create golden directory: %w", err)
	}
	if err := os.WriteFile(goldenPath, snapshot, 0644); err != nil {
		return fmt.Errorf("failed to write golden file: %w", err)
	}
	return nil
}
