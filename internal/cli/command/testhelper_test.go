package command

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/bullhorn-tools/bh-cli/internal/cli/config"
	"github.com/bullhorn-tools/bh-cli/internal/core/domain"
)

// mockServer is a test HTTP server with path-prefix handlers.
type mockServer struct {
	*httptest.Server
	handlers map[string]http.HandlerFunc
	requests atomic.Int64
}

// newMockServer creates a new mock server.
func newMockServer(t *testing.T) *mockServer {
	t.Helper()
	m := &mockServer{
		handlers: make(map[string]http.HandlerFunc),
	}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.requests.Add(1)
		for pattern, handler := range m.handlers {
			if strings.HasPrefix(r.URL.Path, pattern) {
				handler(w, r)
				return
			}
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(m.Close)
	return m
}

// handle registers a handler for a path pattern.
func (m *mockServer) handle(pattern string, handler http.HandlerFunc) {
	m.handlers[pattern] = handler
}

// jsonResponse writes a JSON response.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeSessionFile stores an active session pointing at the mock server
// and returns the session file path.
func writeSessionFile(t *testing.T, server *mockServer) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.yaml")
	store := config.NewFileStore(path)
	err := store.Save(&domain.Session{
		BhRestToken:  "tok-1",
		RestURL:      server.URL,
		RefreshToken: "refresh-1",
		TokenURL:     server.URL + "/oauth/token",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	})
	if err != nil {
		t.Fatalf("save session: %v", err)
	}
	return path
}

// emptySessionFile returns a path with no stored session.
func emptySessionFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.yaml")
}

// runApp runs the full CLI with the given arguments and captures stdout.
func runApp(t *testing.T, sessionPath string, args ...string) (string, error) {
	t.Helper()
	app := App()

	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = io.Discard

	full := append([]string{"bh", "--config", sessionPath}, args...)
	err := app.Run(full)
	return out.String(), err
}

// withStdin swaps the interactive input source for the duration of a test.
func withStdin(t *testing.T, input string) {
	t.Helper()
	old := stdin
	stdin = strings.NewReader(input)
	t.Cleanup(func() { stdin = old })
}
