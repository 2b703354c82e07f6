package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := newServer(log.New(io.Discard))
	ts := httptest.NewServer(srv.routes())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decoding %s: %v", url, err)
	}
	return resp.StatusCode
}

func TestServeHealth(t *testing.T) {
	ts := newTestServer(t)

	var body map[string]string
	status := getJSON(t, ts.URL+"/healthz", &body)

	if status != http.StatusOK {
		t.Errorf("status = %d, want %d", status, http.StatusOK)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want %q", body["status"], "ok")
	}
}

func TestServeCount(t *testing.T) {
	ts := newTestServer(t)

	var body countResponse
	status := getJSON(t, ts.URL+"/api/v1/count?grid=3&min=4", &body)

	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	if body.Count != 389112 {
		t.Errorf("Count = %d, want 389112", body.Count)
	}
	if body.Grid != 3 || body.MinLength != 4 {
		t.Errorf("params = (%d, %d), want (3, 4)", body.Grid, body.MinLength)
	}
	if body.ID == "" {
		t.Error("ID should be set")
	}
	if body.Cached {
		t.Error("first query should not be cached")
	}
}

func TestServeCountDefaults(t *testing.T) {
	ts := newTestServer(t)

	var body countResponse
	status := getJSON(t, ts.URL+"/api/v1/count", &body)

	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	// Defaults are the classic lock screen parameters.
	if body.Grid != 3 || body.MinLength != 4 {
		t.Errorf("defaults = (%d, %d), want (3, 4)", body.Grid, body.MinLength)
	}
	if body.Count != 389112 {
		t.Errorf("Count = %d, want 389112", body.Count)
	}
}

func TestServeCountCached(t *testing.T) {
	ts := newTestServer(t)

	var first, second countResponse
	getJSON(t, ts.URL+"/api/v1/count?grid=3&min=4", &first)
	getJSON(t, ts.URL+"/api/v1/count?grid=3&min=4", &second)

	if !second.Cached {
		t.Error("second identical query should be served from cache")
	}
	if second.Count != first.Count {
		t.Errorf("cached Count = %d, want %d", second.Count, first.Count)
	}
	if second.ID == first.ID {
		t.Error("each response should get a fresh ID")
	}
}

func TestServeCountInvalidInput(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name  string
		query string
		code  string
	}{
		{"non-numeric grid", "?grid=abc", "INVALID_INPUT"},
		{"non-numeric min", "?min=xyz", "INVALID_INPUT"},
		{"grid too large", "?grid=99", "INVALID_GRID"},
		{"negative grid", "?grid=-1", "INVALID_GRID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body errorResponse
			status := getJSON(t, ts.URL+"/api/v1/count"+tt.query, &body)

			if status != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", status, http.StatusBadRequest)
			}
			if string(body.Error.Code) != tt.code {
				t.Errorf("code = %q, want %q", body.Error.Code, tt.code)
			}
			if body.Error.Message == "" {
				t.Error("error message should not be empty")
			}
		})
	}
}

func TestServeTable(t *testing.T) {
	ts := newTestServer(t)

	var body tableResponse
	status := getJSON(t, ts.URL+"/api/v1/table?grid=3&min=1", &body)

	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	if len(body.Counts) != 9 {
		t.Fatalf("len(Counts) = %d, want 9", len(body.Counts))
	}
	if body.Counts[0] != 9 {
		t.Errorf("Counts[0] = %d, want 9 (single-point patterns)", body.Counts[0])
	}
	if body.Total != 389497 {
		t.Errorf("Total = %d, want 389497", body.Total)
	}
}

func TestServeTableMinLength(t *testing.T) {
	ts := newTestServer(t)

	var body tableResponse
	status := getJSON(t, ts.URL+"/api/v1/table?grid=3&min=4", &body)

	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	if len(body.Counts) != 6 {
		t.Fatalf("len(Counts) = %d, want 6 (lengths 4 through 9)", len(body.Counts))
	}
	if body.Total != 389112 {
		t.Errorf("Total = %d, want 389112", body.Total)
	}
}

func TestServeUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/nope")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}
