package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/roach88/longrun/internal/testutil"
)

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	opts := &RootOptions{
		Logger:   zap.NewNop(),
		TokenGen: testutil.NewFixedTokenGenerator("test-session-cli"),
	}
	return executeWith(t, opts, strings.NewReader(stdin), args...)
}

func executeWith(t *testing.T, opts *RootOptions, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommandWithOptions(opts)
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetIn(stdin)
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
