// Package output provides output formatting for the Bullhorn CLI.
package output

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Spinner displays a progress animation with an updatable message.
type Spinner struct {
	w       io.Writer
	mu      sync.Mutex
	message string
	frames  []string
	done    chan struct{}
	stopped bool
	enabled bool
}

// NewSpinner creates a new spinner. A disabled spinner (non-terminal
// output) prints nothing until Success/Fail/Warn.
func NewSpinner(w io.Writer, message string, enabled bool) *Spinner {
	return &Spinner{
		w:       w,
		message: message,
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		done:    make(chan struct{}),
		enabled: enabled,
	}
}

// Start starts the spinner animation.
func (s *Spinner) Start() {
	if !s.enabled {
		return
	}
	go func() {
		i := 0
		for {
			select {
			case <-s.done:
				return
			default:
				s.mu.Lock()
				if s.stopped {
					s.mu.Unlock()
					return
				}
				fmt.Fprintf(s.w, "\r\033[K%s %s", s.frames[i%len(s.frames)], s.message)
				s.mu.Unlock()
				i++
				time.Sleep(100 * time.Millisecond)
			}
		}
	}()
}

// SetMessage updates the spinner message.
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// Success stops the spinner with a success message.
func (s *Spinner) Success(message string) {
	s.finish("✓", message)
}

// Fail stops the spinner with a failure message.
func (s *Spinner) Fail(message string) {
	s.finish("✗", message)
}

// Warn stops the spinner with a warning message.
func (s *Spinner) Warn(message string) {
	s.finish("!", message)
}

func (s *Spinner) finish(mark, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	close(s.done)
	if s.enabled {
		fmt.Fprint(s.w, "\r\033[K")
	}
	fmt.Fprintf(s.w, "%s %s\n", mark, message)
}
