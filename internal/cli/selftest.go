package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/longrun/internal/harness"
)

// NewSelfTestCommand creates the selftest command.
func NewSelfTestCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in scenarios",
		Long: `Run the scenarios embedded in the binary: the reference examples for
divisibility, prime digits and tie-breaking between equal runs.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := harness.RunBuiltin(rootOpts.Logger)
			if err != nil {
				return WrapExitError(ExitFailure, "self-test could not run", err)
			}
			return outputSummary(rootOpts, cmd, summary)
		},
	}

	return cmd
}

// outputSummary prints a suite summary in the configured format and
// converts failures into exit code 1.
func outputSummary(opts *RootOptions, cmd *cobra.Command, summary *harness.Summary) error {
	if opts.Format == "json" {
		return outputSummaryJSON(cmd.OutOrStdout(), summary)
	}

	w := cmd.OutOrStdout()
	writeSummaryText(w, summary)

	if !summary.OK() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", summary.Failed))
	}
	fmt.Fprintln(w, "✓ All scenarios passed")
	return nil
}

// writeSummaryText prints one line per scenario followed by the totals.
func writeSummaryText(w io.Writer, summary *harness.Summary) {
	for _, o := range summary.Scenarios {
		if o.Pass {
			fmt.Fprintf(w, "✓ %s\n", o.Name)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", o.Name)
		for _, e := range o.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Test Summary: %d passed, %d failed, %d total\n", summary.Passed, summary.Failed, summary.Total)
}

// outputSummaryJSON outputs the suite summary as JSON.
func outputSummaryJSON(w io.Writer, summary *harness.Summary) error {
	status := "ok"
	if !summary.OK() {
		status = "error"
	}

	response := CLIResponse{
		Status: status,
		Data:   summary,
	}

	if !summary.OK() {
		response.Error = &CLIError{
			Code:    ErrCodeTestFailed,
			Message: fmt.Sprintf("%d scenario(s) failed", summary.Failed),
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return err
	}

	if !summary.OK() {
		// Test failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", summary.Failed))
	}
	return nil
}
