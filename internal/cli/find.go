package cli

import (
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/longrun/internal/menu"
	"github.com/roach88/longrun/internal/runs"
)

// FindOptions holds flags for the find command.
type FindOptions struct {
	*RootOptions
	Where string // named predicate; config default_predicate when empty
}

// FindResult is the JSON payload of the find command.
type FindResult struct {
	Input     []int  `json:"input"`
	Predicate string `json:"predicate"`
	Start     int    `json:"start"`
	Length    int    `json:"length"`
	Run       []int  `json:"run"`
}

// NewFindCommand creates the find command.
func NewFindCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FindOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "find [--where predicate] [-- integers...]",
		Short: "Print the longest run of a list",
		Long: `Print the longest contiguous run of integers satisfying a predicate.

The integers are taken from the arguments, or read from standard input
(whitespace-separated) when no arguments are given. Put "--" before the
list when it starts with a negative number.

Predicates:
  divisible:<d>   divisible by the nonzero integer d
  even            divisible by 2
  prime-digits    every decimal digit is 2, 3, 5 or 7

Examples:
  longrun find --where divisible:10 10 20 5 10 20 30
  echo "3 5 7 11 573" | longrun find --where prime-digits
  longrun find --format json -- -2 -4 1 6`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Where, "where", "w", "", "predicate (divisible:<d>|even|prime-digits)")

	return cmd
}

func runFind(opts *FindOptions, args []string, cmd *cobra.Command) error {
	token := opts.TokenGen.Generate()
	logger := opts.Logger.With(zap.String("session", token))
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		TraceID: token,
	}

	where := opts.Where
	if where == "" {
		where = opts.Config.DefaultPredicate
	}
	pred, err := runs.ParsePredicate(where)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeBadPredicate, "invalid predicate", err)
	}

	var source string
	if len(args) > 0 {
		source = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeBadInput, "failed to read input", err)
		}
		source = string(data)
	}

	input, err := menu.ParseList(source)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeBadInput, "invalid list", err)
	}

	span := runs.LongestSpan(input, pred)
	result := FindResult{
		Input:     input,
		Predicate: where,
		Start:     span.Start,
		Length:    span.Len,
		Run:       slices.Clone(input[span.Start:span.End()]),
	}

	logger.Debug("find",
		zap.String("predicate", where),
		zap.Int("input_len", len(input)),
		zap.Int("start", span.Start),
		zap.Int("length", span.Len),
	)

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(menu.FormatList(result.Run))
}
