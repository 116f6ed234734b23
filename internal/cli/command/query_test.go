package command

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/bullhorn-tools/bh-cli/internal/cli/connection"
)

// queryBody decodes the wrapped params object a query command sends.
func queryBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body struct {
		Params map[string]any `json:"params"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		t.Errorf("decode query body: %v", err)
	}
	return body.Params
}

// TestQueryEntities tests the WHERE-clause query request.
func TestQueryEntities(t *testing.T) {
	server := newMockServer(t)

	var gotMethod string
	var gotParams map[string]any
	server.handle("/query/Placement", func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotParams = queryBody(t, r)
		jsonResponse(w, http.StatusOK, map[string]any{
			"data": []any{map[string]any{"id": 10, "status": "Approved"}},
		})
	})

	out, err := runApp(t, writeSessionFile(t, server),
		"query", "Placement", "--where", "status='Approved'")
	if err != nil {
		t.Fatalf("query error = %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotParams["where"] != "status='Approved'" {
		t.Errorf("where = %v, want status='Approved'", gotParams["where"])
	}
	if gotParams["fields"] != "id" {
		t.Errorf("fields = %v, want id", gotParams["fields"])
	}
	if gotParams["count"] != float64(15) || gotParams["start"] != float64(0) {
		t.Errorf("pagination = %v/%v, want 15/0", gotParams["count"], gotParams["start"])
	}
	if _, present := gotParams["orderBy"]; present {
		t.Error("orderBy must be omitted when not requested")
	}

	if !strings.Contains(out, "Approved") {
		t.Errorf("output missing records, got %q", out)
	}
}

// TestQueryEntitiesOrderBy tests that --orderBy reaches the request body.
func TestQueryEntitiesOrderBy(t *testing.T) {
	server := newMockServer(t)

	var gotParams map[string]any
	server.handle("/query/Placement", func(w http.ResponseWriter, r *http.Request) {
		gotParams = queryBody(t, r)
		jsonResponse(w, http.StatusOK, map[string]any{
			"data": []any{map[string]any{"id": 10}},
		})
	})

	_, err := runApp(t, writeSessionFile(t, server),
		"query", "Placement", "-w", "id > 100", "--orderBy", "dateAdded DESC")
	if err != nil {
		t.Fatalf("query error = %v", err)
	}

	if gotParams["orderBy"] != "dateAdded DESC" {
		t.Errorf("orderBy = %v, want dateAdded DESC", gotParams["orderBy"])
	}
}

// TestQueryEntitiesNoResults tests that an empty result set is not an error.
func TestQueryEntitiesNoResults(t *testing.T) {
	server := newMockServer(t)
	server.handle("/query/Placement", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]any{"data": []any{}})
	})

	out, err := runApp(t, writeSessionFile(t, server),
		"query", "Placement", "-w", "id < 0")
	if err != nil {
		t.Fatalf("query error = %v", err)
	}
	if out != "" {
		t.Errorf("expected no record output, got %q", out)
	}
}

// TestQueryEntitiesBadWhere tests that a 400 surfaces as an API error.
func TestQueryEntitiesBadWhere(t *testing.T) {
	server := newMockServer(t)
	server.handle("/query/Placement", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusBadRequest, map[string]string{
			"errorMessage": "Invalid where clause",
		})
	})

	_, err := runApp(t, writeSessionFile(t, server),
		"query", "Placement", "-w", "nonsense ===")
	if !connection.IsStatus(err, http.StatusBadRequest) {
		t.Errorf("error = %v, want status 400 API error", err)
	}
}
