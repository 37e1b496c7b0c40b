// Package menu implements the interactive command loop.
//
// The loop shows the available commands, reads a command number and runs it
// against the current list. Malformed input is reported and the loop asks
// again; only a failing output stream, a read error or a cancelled context
// stops it with an error. End of input is treated as the exit command.
//
// Lines are read on a separate goroutine so that cancellation is noticed
// while the loop waits at a prompt. Line length is unbounded.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/roach88/longrun/internal/runs"
)

// Command numbers.
const (
	CmdExit        = 0
	CmdReadList    = 1
	CmdDisplayList = 2
	CmdDivisible   = 3
	CmdEven        = 4
	CmdPrimeDigits = 5
)

// DefaultPrompt is printed before each command is read.
const DefaultPrompt = "Please enter a command: "

// errExit ends the loop without error.
var errExit = errors.New("exit")

type command struct {
	number int
	label  string
	run    func(m *Menu, ctx context.Context) error
}

var commands = []command{
	{CmdReadList, "Read list", (*Menu).readList},
	{CmdDisplayList, "Display list", (*Menu).displayList},
	{CmdDivisible, "Longest run of numbers divisible by a given number", (*Menu).longestDivisible},
	{CmdEven, "Longest run of even numbers", (*Menu).longestEven},
	{CmdPrimeDigits, "Longest run of numbers whose digits are all prime", (*Menu).longestPrimeDigits},
}

// Menu is one interactive session.
type Menu struct {
	in      *bufio.Reader
	lines   chan line
	out     *printer
	logger  *zap.Logger
	prompt  string
	session string
	list    []int
}

// Option configures a Menu.
type Option func(*Menu)

// WithLogger sets the logger. Defaults to zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(m *Menu) { m.logger = logger }
}

// WithPrompt overrides DefaultPrompt.
func WithPrompt(prompt string) Option {
	return func(m *Menu) { m.prompt = prompt }
}

// WithSession tags log entries with a session token.
func WithSession(token string) Option {
	return func(m *Menu) { m.session = token }
}

// WithList sets the initial list. The menu keeps its own copy.
func WithList(list []int) Option {
	return func(m *Menu) { m.list = append([]int{}, list...) }
}

// New creates a session reading from in and writing to out.
// The list starts empty.
func New(in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		in:     bufio.NewReader(in),
		out:    &printer{w: out},
		logger: zap.NewNop(),
		prompt: DefaultPrompt,
		list:   []int{},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(zap.String("session", m.session))
	return m
}

// List returns a copy of the current list.
func (m *Menu) List() []int {
	return append([]int{}, m.list...)
}

// Run reads and processes commands until the exit command, end of input,
// a read or write error, or cancellation of ctx. Run must not be called
// more than once.
func (m *Menu) Run(ctx context.Context) error {
	m.logger.Debug("menu started")

	done := make(chan struct{})
	defer close(done)
	m.lines = make(chan line)
	go readLines(m.in, m.lines, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.showMenu()
		text, err := m.readLine(ctx, m.prompt)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		err = m.dispatch(ctx, text)
		if errors.Is(err, errExit) {
			break
		}
		if err != nil {
			return err
		}
		if m.out.err != nil {
			return fmt.Errorf("writing output: %w", m.out.err)
		}
	}

	m.logger.Debug("menu stopped", zap.Ints("list", m.list))
	if m.out.err != nil {
		return fmt.Errorf("writing output: %w", m.out.err)
	}
	return nil
}

// dispatch parses a command number and runs the matching command.
func (m *Menu) dispatch(ctx context.Context, text string) error {
	number, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		m.logger.Debug("invalid command", zap.String("input", text))
		m.out.println("Invalid command. Please try again.")
		return nil
	}

	if number == CmdExit {
		return errExit
	}

	for _, c := range commands {
		if c.number == number {
			m.logger.Debug("command", zap.Int("number", number), zap.String("label", c.label))
			return c.run(m, ctx)
		}
	}

	m.logger.Debug("unknown command", zap.Int("number", number))
	m.out.println("Invalid command. Please try again.")
	return nil
}

func (m *Menu) showMenu() {
	m.out.println()
	m.out.println("Available commands:")
	m.out.println("--------------------")
	for _, c := range commands {
		m.out.printf("%d. %s\n", c.number, c.label)
	}
	m.out.println("--------------------")
	m.out.printf("%d. EXIT\n", CmdExit)
}

// line is one input line without its terminator, or the error that ended
// the input.
type line struct {
	text string
	err  error
}

// readLines sends every line of r on lines, then the error that ended r.
// It stops early once done is closed.
func readLines(r *bufio.Reader, lines chan<- line, done <-chan struct{}) {
	for {
		text, err := r.ReadString('\n')
		if text != "" {
			select {
			case lines <- line{text: strings.TrimRight(text, "\r\n")}:
			case <-done:
				return
			}
		}
		if err != nil {
			select {
			case lines <- line{err: err}:
			case <-done:
			}
			return
		}
	}
}

// readLine prints prompt and waits for the next line. It returns io.EOF at
// end of input and ctx.Err() if ctx is cancelled first.
func (m *Menu) readLine(ctx context.Context, prompt string) (string, error) {
	m.out.printf("%s", prompt)
	select {
	case <-ctx.Done():
		m.out.println()
		return "", ctx.Err()
	case l := <-m.lines:
		if l.err != nil {
			m.out.println()
			return "", l.err
		}
		return l.text, nil
	}
}

// readArg reads the argument of a command. End of input ends the session.
func (m *Menu) readArg(ctx context.Context, prompt string) (string, error) {
	text, err := m.readLine(ctx, prompt)
	if errors.Is(err, io.EOF) {
		return "", errExit
	}
	return text, err
}

func (m *Menu) readList(ctx context.Context) error {
	text, err := m.readArg(ctx, "Input the elements of the list (integers) separated by spaces: ")
	if err != nil {
		return err
	}

	list, err := ParseList(text)
	if err != nil {
		m.logger.Debug("invalid list", zap.Error(err))
		m.out.printf("Invalid list: %v. Please try again.\n", err)
		return nil
	}

	m.list = list
	m.logger.Debug("list replaced", zap.Int("len", len(list)))
	return nil
}

func (m *Menu) displayList(context.Context) error {
	m.out.println(FormatList(m.list))
	return nil
}

func (m *Menu) longestDivisible(ctx context.Context) error {
	text, err := m.readArg(ctx, "Divisor: ")
	if err != nil {
		return err
	}

	divisor, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		m.out.printf("Invalid divisor: %q is not an integer. Please try again.\n", strings.TrimSpace(text))
		return nil
	}
	if divisor == 0 {
		m.out.printf("Invalid divisor: %v. Please try again.\n", runs.ErrZeroDivisor)
		return nil
	}

	m.showLongest(fmt.Sprintf("divisible:%d", divisor), runs.DivisibleBy(divisor))
	return nil
}

func (m *Menu) longestEven(context.Context) error {
	m.showLongest(runs.NameEven, runs.Even)
	return nil
}

func (m *Menu) longestPrimeDigits(context.Context) error {
	m.showLongest(runs.NamePrimeDigits, runs.HasAllDigitsPrime)
	return nil
}

func (m *Menu) showLongest(name string, pred runs.Predicate) {
	result := runs.Longest(m.list, pred)
	m.logger.Debug("longest run",
		zap.String("predicate", name),
		zap.Ints("run", result),
	)
	m.out.printf("Longest run: %s\n", FormatList(result))
}

// printer keeps the first write error so output calls can stay unchecked.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}
