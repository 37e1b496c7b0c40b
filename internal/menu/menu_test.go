package menu

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/roach88/longrun/internal/testutil"
)

func run(t *testing.T, lines ...string) (string, *Menu) {
	t.Helper()
	out := &bytes.Buffer{}
	m := New(testutil.Input(lines...), out)
	require.NoError(t, m.Run(context.Background()))
	return out.String(), m
}

func TestMenu_GoldenTranscript(t *testing.T) {
	out, _ := run(t,
		"1", "10 20 5 6 7 10 20 30 1 2 3 30",
		"2",
		"3", "10",
		"4",
		"5",
		"9",
		"x",
		"0",
	)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "transcript", []byte(out))
}

func TestMenu_ReadAndDisplay(t *testing.T) {
	out, m := run(t, "1", "3 5 7", "2", "0")
	assert.Contains(t, out, "[3, 5, 7]\n")
	assert.Equal(t, []int{3, 5, 7}, m.List())
}

func TestMenu_StartsEmpty(t *testing.T) {
	out, m := run(t, "2", "4", "0")
	assert.Contains(t, out, "[]\n\nAvailable")
	assert.Contains(t, out, "Longest run: []\n")
	assert.Empty(t, m.List())
}

func TestMenu_InvalidListKeepsPrevious(t *testing.T) {
	out, m := run(t, "1", "2 4", "1", "2 four", "0")
	assert.Contains(t, out, `Invalid list: "four" is not an integer. Please try again.`)
	assert.Equal(t, []int{2, 4}, m.List())
}

func TestMenu_Divisor(t *testing.T) {
	out, _ := run(t, "1", "10 20 5 6 7 10 20 30 1 2 3 30", "3", "10", "0")
	assert.Contains(t, out, "Longest run: [10, 20, 30]\n")

	out, _ = run(t, "3", "zero", "3", "0", "0")
	assert.Contains(t, out, `Invalid divisor: "zero" is not an integer. Please try again.`)
	assert.Contains(t, out, "Invalid divisor: divisor must be nonzero. Please try again.")
}

func TestMenu_PrimeDigits(t *testing.T) {
	out, _ := run(t, "1", "10 20 5 75 10 20 333 5 77 30 1 2 3 30 3 5 7 3 573", "5", "0")
	assert.Contains(t, out, "Longest run: [3, 5, 7, 3, 573]\n")
}

func TestMenu_InvalidCommands(t *testing.T) {
	out, _ := run(t, "42", "", "abc", "0")
	assert.Equal(t, 3, strings.Count(out, "Invalid command. Please try again."))
}

func TestMenu_EOFExits(t *testing.T) {
	out, _ := run(t, "1", "1 2")
	assert.True(t, strings.HasSuffix(out, DefaultPrompt+"\n"))

	// EOF while a command waits for its argument.
	_, m := run(t, "1")
	assert.Empty(t, m.List())
}

func TestMenu_LongListLine(t *testing.T) {
	// 80 KB on one line, beyond the default bufio.Scanner token size.
	long := strings.Repeat("2 ", 40000)

	out, m := run(t, "1", long, "4", "2", "0")
	assert.NotContains(t, out, "Invalid list")
	assert.Len(t, m.List(), 40000)
	assert.True(t, strings.HasSuffix(out, "0. EXIT\n"+DefaultPrompt))
}

func TestMenu_CRLFLines(t *testing.T) {
	out, m := run(t, "1\r", "3 5\r", "2\r", "0\r")
	assert.Contains(t, out, "[3, 5]\n")
	assert.Equal(t, []int{3, 5}, m.List())
}

func TestMenu_ReadError(t *testing.T) {
	in := io.MultiReader(strings.NewReader("1\n"), errReader{})
	err := New(in, &bytes.Buffer{}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("tty gone")
}

func TestMenu_Options(t *testing.T) {
	out := &bytes.Buffer{}
	m := New(testutil.Input("2", "0"), out, WithPrompt("> "), WithList([]int{1, 2}))
	require.NoError(t, m.Run(context.Background()))
	assert.Contains(t, out.String(), "> [1, 2]\n")
}

func TestMenu_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := New(testutil.Input("2"), &bytes.Buffer{})
	err := m.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMenu_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := New(pr, io.Discard)
	errc := make(chan error, 1)
	go func() { errc <- m.Run(ctx) }()

	// Let Run block at the command prompt.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestMenu_CancelWhileWaitingForArgument(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := New(pr, io.Discard)
	errc := make(chan error, 1)
	go func() { errc <- m.Run(ctx) }()

	// Write blocks until the reader goroutine has taken the command;
	// the menu then waits for the divisor.
	_, err := io.WriteString(pw, "3\n")
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestMenu_WriteError(t *testing.T) {
	m := New(testutil.Input("2", "0"), failingWriter{})
	err := m.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestMenu_LogsWithSession(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	m := New(testutil.Input("1", "2 4 1", "4", "0"), &bytes.Buffer{},
		WithLogger(zap.New(core)),
		WithSession(testutil.NewFixedTokenGenerator("test-session-menu").Generate()),
	)
	require.NoError(t, m.Run(context.Background()))

	entries := logs.FilterMessage("longest run").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "test-session-menu", fields["session"])
	assert.Equal(t, "even", fields["predicate"])
}
