package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/longrun/internal/harness"
	"github.com/roach88/longrun/internal/menu"
)

// runMenu runs the self-test suite (unless disabled) and then the
// interactive loop on the command's input and output streams.
func runMenu(opts *RootOptions, cmd *cobra.Command) error {
	token := opts.TokenGen.Generate()
	logger := opts.Logger.With(zap.String("session", token))
	out := cmd.OutOrStdout()

	if opts.Config.SelfTest {
		summary, err := harness.RunBuiltin(logger)
		if err != nil {
			return WrapExitError(ExitFailure, "self-test could not run", err)
		}
		if !summary.OK() {
			writeSummaryText(out, summary)
			return NewExitError(ExitFailure, fmt.Sprintf("self-test failed: %d scenario(s) failed", summary.Failed))
		}
		fmt.Fprintf(out, "\n[TEST] All %d self-test scenarios passed.\n", summary.Total)
		logger.Info("self-test passed", zap.Int("scenarios", summary.Total))
	}

	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received signal, stopping menu", zap.String("signal", sig.String()))
			cancel()
		case <-ctx.Done():
		}
	}()

	m := menu.New(cmd.InOrStdin(), out,
		menu.WithLogger(opts.Logger),
		menu.WithPrompt(opts.Config.Prompt),
		menu.WithSession(token),
	)
	if err := m.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return WrapExitError(ExitFailure, "menu stopped", err)
	}
	return nil
}
