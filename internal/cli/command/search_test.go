package command

import (
	"net/http"
	"strings"
	"testing"

	"github.com/bullhorn-tools/bh-cli/internal/cli/connection"
)

// TestSearchEntities tests the Lucene search request and table output.
func TestSearchEntities(t *testing.T) {
	server := newMockServer(t)

	var gotQuery map[string]string
	server.handle("/search/Candidate", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"query":  q.Get("query"),
			"fields": q.Get("fields"),
			"count":  q.Get("count"),
			"start":  q.Get("start"),
			"sort":   q.Get("sort"),
		}
		jsonResponse(w, http.StatusOK, map[string]any{
			"data": []any{
				map[string]any{"id": 1, "name": "Jane Doe"},
				map[string]any{"id": 2, "name": "John Smith"},
			},
		})
	})

	out, err := runApp(t, writeSessionFile(t, server),
		"search", "Candidate", "--query", "isDeleted:0 AND name:J*")
	if err != nil {
		t.Fatalf("search error = %v", err)
	}

	want := map[string]string{
		"query":  "isDeleted:0 AND name:J*",
		"fields": "id,name",
		"count":  "15",
		"start":  "0",
		"sort":   "",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query param %s = %q, want %q", k, gotQuery[k], v)
		}
	}

	if !strings.Contains(out, "Jane Doe") || !strings.Contains(out, "John Smith") {
		t.Errorf("output missing records, got %q", out)
	}
}

// TestSearchEntitiesPagination tests the count, start, and sort overrides.
func TestSearchEntitiesPagination(t *testing.T) {
	server := newMockServer(t)

	var gotCount, gotStart, gotSort string
	server.handle("/search/JobOrder", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotCount, gotStart, gotSort = q.Get("count"), q.Get("start"), q.Get("sort")
		jsonResponse(w, http.StatusOK, map[string]any{
			"data": []any{map[string]any{"id": 7}},
		})
	})

	_, err := runApp(t, writeSessionFile(t, server),
		"search", "JobOrder", "-q", "isOpen:1",
		"--count", "50", "--start", "100", "--sort", "-dateAdded")
	if err != nil {
		t.Fatalf("search error = %v", err)
	}

	if gotCount != "50" || gotStart != "100" || gotSort != "-dateAdded" {
		t.Errorf("pagination params = %q %q %q, want 50 100 -dateAdded",
			gotCount, gotStart, gotSort)
	}
}

// TestSearchEntitiesNoResults tests that zero hits is not an error.
func TestSearchEntitiesNoResults(t *testing.T) {
	server := newMockServer(t)
	server.handle("/search/Candidate", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]any{"data": []any{}})
	})

	out, err := runApp(t, writeSessionFile(t, server),
		"search", "Candidate", "-q", "name:Nobody")
	if err != nil {
		t.Fatalf("search error = %v", err)
	}
	if out != "" {
		t.Errorf("expected no record output, got %q", out)
	}
}

// TestSearchEntitiesBadQuery tests that a 400 surfaces as an API error.
func TestSearchEntitiesBadQuery(t *testing.T) {
	server := newMockServer(t)
	server.handle("/search/Candidate", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusBadRequest, map[string]string{
			"errorMessage": "Unable to parse query",
		})
	})

	_, err := runApp(t, writeSessionFile(t, server),
		"search", "Candidate", "-q", "totally (broken")
	if !connection.IsStatus(err, http.StatusBadRequest) {
		t.Errorf("error = %v, want status 400 API error", err)
	}
}

// TestSearchEntitiesMissingQuery tests that --query is required.
func TestSearchEntitiesMissingQuery(t *testing.T) {
	server := newMockServer(t)

	_, err := runApp(t, writeSessionFile(t, server), "search", "Candidate")
	if err == nil {
		t.Fatal("expected required-flag error")
	}
	if got := server.requests.Load(); got != 0 {
		t.Errorf("made %d requests, want 0", got)
	}
}
