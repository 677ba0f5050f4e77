// Package prompt drives the menu as a line-oriented question/answer loop.
// It is used for pipes and dumb terminals, or when the TUI is turned off.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mmcdole/flicks/internal/menu"
)

// Loop reads one answer per line and writes plain text results
type Loop struct {
	runner *menu.Runner
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

// New creates a prompt loop over in and out
func New(runner *menu.Runner, in io.Reader, out io.Writer, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		runner: runner,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Run shows the menu until the user exits or input ends.
// End of input is a normal exit; other read errors are returned.
func (l *Loop) Run() error {
	for {
		l.showMenu()

		choice, err := l.ask("Choose an option")
		if err != nil {
			return l.finish(err)
		}

		opt, ok := menu.Lookup(choice)
		if !ok {
			l.print(menu.InvalidOption())
			continue
		}

		answers := make([]string, 0, len(opt.Prompts))
		for _, p := range opt.Prompts {
			answer, err := l.ask("Enter " + p)
			if err != nil {
				return l.finish(err)
			}
			answers = append(answers, answer)
		}

		outcome := l.runner.Execute(opt, answers)
		l.print(outcome)
		if outcome.Exit {
			return nil
		}
	}
}

func (l *Loop) showMenu() {
	fmt.Fprintln(l.out)
	fmt.Fprintln(l.out, menu.Title)
	for _, line := range menu.Lines() {
		fmt.Fprintln(l.out, line)
	}
}

// ask writes a prompt and returns the next line without its line ending.
// A final line without a newline is still returned.
func (l *Loop) ask(label string) (string, error) {
	fmt.Fprintf(l.out, "%s: ", label)
	line, err := l.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (l *Loop) print(o menu.Outcome) {
	if o.Heading != "" {
		fmt.Fprintln(l.out)
	}
	fmt.Fprint(l.out, o.String())
}

func (l *Loop) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(l.out)
		l.logger.Info("input closed")
		return nil
	}
	return fmt.Errorf("failed to read input: %w", err)
}
