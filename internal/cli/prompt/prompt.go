// Package prompt provides interactive terminal input for the Bullhorn CLI.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads interactive answers from in and writes prompts to out.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

// New creates a Prompter. Pass os.Stdin/os.Stderr for interactive use.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

// Input asks for a line of input. An empty answer yields defaultValue.
func (p *Prompter) Input(label, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, defaultValue)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// Password asks for a secret. The answer is masked when reading from a
// terminal. An empty answer yields defaultValue; the default itself is
// never echoed.
func (p *Prompter) Password(label, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(p.out, "%s [*****]: ", label)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		data, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		if len(data) == 0 {
			return defaultValue, nil
		}
		return string(data), nil
	}

	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// Confirm asks a yes/no question, defaulting to no.
func (p *Prompter) Confirm(label string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", label)

	answer, err := p.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
