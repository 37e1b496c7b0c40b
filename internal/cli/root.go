package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/longrun/internal/config"
	"github.com/roach88/longrun/internal/session"
)

// RootOptions holds global flags and the state shared by all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string

	// Config is resolved in PersistentPreRunE: file values overridden by
	// explicitly set flags.
	Config *config.Config

	// Logger is built in PersistentPreRunE unless already set (tests).
	Logger *zap.Logger

	// TokenGen issues session tokens. Defaults to session.UUIDv7Generator.
	TokenGen session.TokenGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{})
}

// NewRootCommandWithOptions creates the root command around opts, so callers
// can inject a logger or token generator.
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "longrun",
		Short: "longrun - longest runs in integer lists",
		Long: `Load a list of integers and find the longest contiguous run of elements
satisfying a predicate: divisibility by a number, evenness, or having only
prime decimal digits.

Run without arguments to start the interactive menu.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return resolveOptions(opts, cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(opts, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a CUE config file")

	// Add subcommands
	cmd.AddCommand(NewFindCommand(opts))
	cmd.AddCommand(NewSelfTestCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// resolveOptions loads the config file, applies flag overrides and builds
// the logger.
func resolveOptions(opts *RootOptions, cmd *cobra.Command) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return f.Fail(ExitCommandError, ErrCodeConfig, "failed to load config", err)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = opts.Format
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.Verbose
	}
	opts.Format = cfg.Format
	opts.Verbose = cfg.Verbose

	if !isValidFormat(opts.Format) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
	}
	opts.Config = cfg

	if opts.Logger == nil {
		opts.Logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
	}
	if opts.TokenGen == nil {
		opts.TokenGen = session.UUIDv7Generator{}
	}

	opts.Logger.Debug("options resolved",
		zap.String("config", opts.ConfigPath),
		zap.String("format", opts.Format),
		zap.Bool("selftest", cfg.SelfTest),
	)
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
