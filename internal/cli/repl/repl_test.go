package repl

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// newTestREPL builds a REPL with buffered input and output and a
// throwaway history file.
func newTestREPL(t *testing.T, input string, run Runner) (*REPL, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &REPL{
		input:     strings.NewReader(input),
		output:    out,
		run:       run,
		completer: NewCompleter(),
		history:   &History{maxSize: 10, file: filepath.Join(t.TempDir(), "history")},
	}, out
}

// TestREPLDispatch tests that entered lines reach the runner as args.
func TestREPLDispatch(t *testing.T) {
	var got [][]string
	r, _ := newTestREPL(t, "auth status\nget Candidate 123\nexit\n",
		func(args []string) error {
			got = append(got, args)
			return nil
		})

	if err := r.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := [][]string{
		{"auth", "status"},
		{"get", "Candidate", "123"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dispatched %v, want %v", got, want)
	}
}

// TestREPLExitOnEOF tests that end of input terminates the loop.
func TestREPLExitOnEOF(t *testing.T) {
	r, _ := newTestREPL(t, "auth status\n", func(args []string) error { return nil })

	if err := r.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

// TestREPLSkipsEmptyLines tests that blank input runs nothing.
func TestREPLSkipsEmptyLines(t *testing.T) {
	calls := 0
	r, _ := newTestREPL(t, "\n   \nquit\n", func(args []string) error {
		calls++
		return nil
	})

	if err := r.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if calls != 0 {
		t.Errorf("runner called %d times, want 0", calls)
	}
}

// TestREPLReportsErrors tests that a failing command keeps the loop alive.
func TestREPLReportsErrors(t *testing.T) {
	r, out := newTestREPL(t, "get Candidate\nexit\n", func(args []string) error {
		return fmt.Errorf("record not found")
	})

	if err := r.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "Error: record not found") {
		t.Errorf("output = %q, want reported error", out.String())
	}
}

// TestREPLPersistsHistory tests that entered lines survive the loop.
func TestREPLPersistsHistory(t *testing.T) {
	r, _ := newTestREPL(t, "auth status\nentities\nexit\n",
		func(args []string) error { return nil })

	if err := r.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(r.history.file)
	if err != nil {
		t.Fatalf("read history file: %v", err)
	}
	for _, want := range []string{"auth status", "entities", "exit"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("history file missing %q, got %q", want, data)
		}
	}
}

// TestSplitLine tests the quote-aware argument splitting.
func TestSplitLine(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"get Candidate 123", []string{"get", "Candidate", "123"}},
		{`search Candidate --query "name:John Smith"`, []string{"search", "Candidate", "--query", "name:John Smith"}},
		{`create Candidate firstName=Jane comments="called back"`, []string{"create", "Candidate", "firstName=Jane", "comments=called back"}},
		{"  spaced   out  ", []string{"spaced", "out"}},
		{`""`, []string{""}},
	}

	for _, tt := range tests {
		got, err := SplitLine(tt.line)
		if err != nil {
			t.Errorf("SplitLine(%q) error = %v", tt.line, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

// TestSplitLineUnterminatedQuote tests the unbalanced quote error.
func TestSplitLineUnterminatedQuote(t *testing.T) {
	if _, err := SplitLine(`search Candidate --query "broken`); err == nil {
		t.Error("expected error for unterminated quote")
	}
}
