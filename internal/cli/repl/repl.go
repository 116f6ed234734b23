// Package repl provides the interactive shell mode for bh.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bullhorn-tools/bh-cli/internal/telemetry/logger"
)

// Runner executes one parsed command line. The args slice never
// includes the program name.
type Runner func(args []string) error

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	input     io.Reader
	output    io.Writer
	run       Runner
	completer *Completer
	history   *History
}

// New creates a new REPL dispatching lines to run.
func New(run Runner) *REPL {
	return &REPL{
		input:     os.Stdin,
		output:    os.Stdout,
		run:       run,
		completer: NewCompleter(),
		history:   NewHistory(),
	}
}

// Run starts the REPL loop. History is loaded on entry and saved on
// exit; a corrupt or missing history file is not fatal.
func (r *REPL) Run() error {
	_ = r.history.Load()
	defer func() {
		if err := r.history.Save(); err != nil {
			logger.Warn("could not save shell history", "cause", err.Error())
		}
	}()

	reader := bufio.NewReader(r.input)

	for {
		fmt.Fprint(r.output, "bh> ")

		line, err := reader.ReadString('\n')
		if err == io.EOF {
			fmt.Fprintln(r.output)
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.history.Add(line)

		if line == "exit" || line == "quit" {
			return nil
		}

		args, err := SplitLine(line)
		if err != nil {
			fmt.Fprintf(r.output, "Error: %v\n", err)
			continue
		}

		if err := r.run(args); err != nil {
			fmt.Fprintf(r.output, "Error: %v\n", err)
		}
	}
}

// SplitLine splits a command line into arguments. Double quotes group
// words and are stripped; there is no escape syntax.
func SplitLine(line string) ([]string, error) {
	var args []string
	var current strings.Builder
	inQuotes := false
	hasToken := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
			hasToken = true
		case ch == ' ' || ch == '\t':
			if inQuotes {
				current.WriteRune(ch)
				break
			}
			if hasToken {
				args = append(args, current.String())
				current.Reset()
				hasToken = false
			}
		default:
			current.WriteRune(ch)
			hasToken = true
		}
	}

	if inQuotes {
		return nil, fmt.Errorf("unterminated quote in %q", line)
	}
	if hasToken {
		args = append(args, current.String())
	}

	return args, nil
}
