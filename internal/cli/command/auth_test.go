package command

import (
	"net/http"
	"strings"
	"testing"

	"github.com/bullhorn-tools/bh-cli/internal/cli/config"
)

// loginStub wires the four handshake endpoints onto a mock server.
func loginStub(server *mockServer) {
	server.handle("/loginInfo", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]string{
			"oauthUrl": server.URL + "/oauth",
			"restUrl":  server.URL + "/rest-services/abc123",
		})
	})
	server.handle("/oauth/authorize", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "http://bogus.example/?code=auth-code-1")
		w.WriteHeader(http.StatusFound)
	})
	server.handle("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]string{
			"access_token":  "access-1",
			"refresh_token": "refresh-1",
		})
	})
	server.handle("/rest-services/abc123/login", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]string{
			"BhRestToken": "rest-token-1",
			"restUrl":     server.URL + "/rest-services/abc123/v2.0/",
		})
	})
}

// TestAuthLogin tests the full interactive login against stub endpoints.
func TestAuthLogin(t *testing.T) {
	server := newMockServer(t)
	loginStub(server)

	sessionPath := emptySessionFile(t)
	withStdin(t, "jane.doe\nhunter2\nclient-id-1\nclient-secret-1\n")

	out, err := runApp(t, sessionPath,
		"--discovery-url", server.URL+"/loginInfo", "auth", "login")
	if err != nil {
		t.Fatalf("auth login error = %v", err)
	}

	if !strings.Contains(out, "Your API session is now active.") {
		t.Errorf("output missing confirmation, got %q", out)
	}
	if !strings.Contains(out, server.URL+"/rest-services/abc123/v2.0/") {
		t.Errorf("output missing REST URL, got %q", out)
	}

	session, err := config.NewFileStore(sessionPath).Load()
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if session.BhRestToken != "rest-token-1" {
		t.Errorf("BhRestToken = %q, want rest-token-1", session.BhRestToken)
	}
	if session.RefreshToken != "refresh-1" {
		t.Errorf("RefreshToken = %q, want refresh-1", session.RefreshToken)
	}
	if session.ClientID != "client-id-1" || session.ClientSecret != "client-secret-1" {
		t.Errorf("credentials not persisted: %q %q", session.ClientID, session.ClientSecret)
	}
}

// TestAuthLoginBadPassword tests that a rejected authorization leaves no session.
func TestAuthLoginBadPassword(t *testing.T) {
	server := newMockServer(t)
	loginStub(server)
	server.handle("/oauth/authorize", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusUnauthorized, map[string]string{
			"error_description": "Invalid username or password",
		})
	})

	sessionPath := emptySessionFile(t)
	withStdin(t, "jane.doe\nwrong\nclient-id-1\nclient-secret-1\n")

	_, err := runApp(t, sessionPath,
		"--discovery-url", server.URL+"/loginInfo", "auth", "login")
	if err == nil {
		t.Fatal("expected login to fail")
	}

	session, loadErr := config.NewFileStore(sessionPath).Load()
	if loadErr != nil {
		t.Fatalf("load session: %v", loadErr)
	}
	if session.Active() {
		t.Error("failed login must not persist a session")
	}
}

// TestAuthStatusLoggedIn tests the status report with an active session.
func TestAuthStatusLoggedIn(t *testing.T) {
	server := newMockServer(t)
	sessionPath := writeSessionFile(t, server)

	out, err := runApp(t, sessionPath, "auth", "status")
	if err != nil {
		t.Fatalf("auth status error = %v", err)
	}

	if !strings.Contains(out, "You are logged in.") {
		t.Errorf("output = %q, want logged-in message", out)
	}
	if !strings.Contains(out, server.URL) {
		t.Errorf("output missing REST URL, got %q", out)
	}
	if got := server.requests.Load(); got != 0 {
		t.Errorf("status made %d requests, want 0", got)
	}
}

// TestAuthStatusLoggedOut tests the status report without a session.
func TestAuthStatusLoggedOut(t *testing.T) {
	out, err := runApp(t, emptySessionFile(t), "auth", "status")
	if err != nil {
		t.Fatalf("auth status error = %v", err)
	}

	if !strings.Contains(out, "You are not logged in.") {
		t.Errorf("output = %q, want logged-out message", out)
	}
	if !strings.Contains(out, "bh auth login") {
		t.Errorf("output missing login hint, got %q", out)
	}
}

// TestAuthLogout tests that logout removes the stored session.
func TestAuthLogout(t *testing.T) {
	server := newMockServer(t)
	sessionPath := writeSessionFile(t, server)

	out, err := runApp(t, sessionPath, "auth", "logout")
	if err != nil {
		t.Fatalf("auth logout error = %v", err)
	}

	if !strings.Contains(out, "Successfully logged out.") {
		t.Errorf("output = %q, want logout confirmation", out)
	}
	if got := server.requests.Load(); got != 0 {
		t.Errorf("logout made %d requests, want 0", got)
	}

	session, err := config.NewFileStore(sessionPath).Load()
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if session.Active() {
		t.Error("session still active after logout")
	}
}

// TestAuthLogoutIdempotent tests logout with nothing stored.
func TestAuthLogoutIdempotent(t *testing.T) {
	if _, err := runApp(t, emptySessionFile(t), "auth", "logout"); err != nil {
		t.Fatalf("auth logout error = %v", err)
	}
}
