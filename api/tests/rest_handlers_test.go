package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"time-tracker/api/adapters/rest"
	"time-tracker/api/adapters/rest/handlers"
	"time-tracker/api/core"
)

func newTestServer(t *testing.T) (*fakeDB, *httptest.Server) {
	t.Helper()

	db := newFakeDB()
	svc := core.NewService(db, core.WithClock(fixedClock), core.WithLocation(time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mux := http.NewServeMux()
	handlers.Register(mux, logger, core.Deps{Entries: svc, Now: fixedClock}, time.Second)

	srv := httptest.NewServer(rest.Wrap(mux, logger, "*"))
	t.Cleanup(srv.Close)
	return db, srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, r)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	out := map[string]any{}
	if len(bytes.TrimSpace(raw)) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("invalid json body %q: %v", raw, err)
		}
	}
	return resp, out
}

func listEntries(t *testing.T, srv *httptest.Server, path string) []core.Entry {
	t.Helper()

	resp, err := srv.Client().Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d", path, resp.StatusCode)
	}
	var items []core.Entry
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	return items
}

func TestRESTCreateEntry_Success(t *testing.T) {
	t.Parallel()

	db, srv := newTestServer(t)

	resp, body := doJSON(t, srv, http.MethodPost, "/api/entries",
		`{"category":"Study","minutes":60,"description":"Math revision"}`)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%v)", resp.StatusCode, body)
	}
	if body["success"] != true {
		t.Fatalf("expected success true, got %v", body)
	}
	entry, ok := body["entry"].(map[string]any)
	if !ok {
		t.Fatalf("expected entry object, got %v", body)
	}
	if entry["category"] != "Study" || entry["minutes"] != float64(60) {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["timestamp"] != "2026-10-17T15:30:00Z" {
		t.Fatalf("expected clock timestamp, got %v", entry["timestamp"])
	}
	if db.count() != 1 {
		t.Fatalf("expected 1 stored entry, got %d", db.count())
	}
}

func TestRESTCreateEntry_AcceptsStringMinutesAndTimestamp(t *testing.T) {
	t.Parallel()

	_, srv := newTestServer(t)

	resp, body := doJSON(t, srv, http.MethodPost, "/api/add",
		`{"category":"Code","minutes":"45","timestamp":"2026-10-12T08:15"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%v)", resp.StatusCode, body)
	}

	items := listEntries(t, srv, "/api/entries")
	if len(items) != 1 || items[0].Minutes != 45 {
		t.Fatalf("unexpected entries %+v", items)
	}
	if want := time.Date(2026, 10, 12, 8, 15, 0, 0, time.UTC); !items[0].Timestamp.Equal(want) {
		t.Fatalf("expected timestamp %v, got %v", want, items[0].Timestamp)
	}
}

func TestRESTCreateEntry_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"malformed json", `{"category":`, "invalid json"},
		{"missing category", `{"minutes":10}`, "category"},
		{"blank category", `{"category":"  ","minutes":10}`, "category"},
		{"missing minutes", `{"category":"Code"}`, "minutes"},
		{"text minutes", `{"category":"Code","minutes":"abc"}`, "minutes"},
		{"fractional minutes", `{"category":"Code","minutes":1.5}`, "minutes"},
		{"long description", `{"category":"Code","minutes":1,"description":"` + strings.Repeat("x", 129) + `"}`, "description"},
		{"bad timestamp", `{"category":"Code","minutes":1,"timestamp":"yesterday"}`, "timestamp"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			db, srv := newTestServer(t)
			resp, body := doJSON(t, srv, http.MethodPost, "/api/entries", tc.body)

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d (%v)", resp.StatusCode, body)
			}
			msg, _ := body["error"].(string)
			if !strings.Contains(msg, tc.wantErr) {
				t.Fatalf("expected error mentioning %q, got %q", tc.wantErr, msg)
			}
			if db.count() != 0 {
				t.Fatalf("expected nothing stored, got %d", db.count())
			}
		})
	}
}

func TestRESTListAndSearch(t *testing.T) {
	t.Parallel()

	_, srv := newTestServer(t)

	for _, body := range []string{
		`{"category":"Study","minutes":60,"description":"Math","timestamp":"2026-10-15T10:00:00Z"}`,
		`{"category":"Relax","minutes":30,"description":"Student cafe","timestamp":"2026-10-16T10:00:00Z"}`,
		`{"category":"Code","minutes":90,"timestamp":"2026-10-17T10:00:00Z"}`,
	} {
		if resp, out := doJSON(t, srv, http.MethodPost, "/api/entries", body); resp.StatusCode != http.StatusCreated {
			t.Fatalf("failed to prepare entry: %d %v", resp.StatusCode, out)
		}
	}

	all := listEntries(t, srv, "/api/entries")
	if len(all) != 3 || all[0].Category != "Code" || all[2].Category != "Study" {
		t.Fatalf("expected newest first, got %+v", all)
	}

	for _, path := range []string{"/api/entries?search=stu", "/api/entries_filter?q=STU"} {
		items := listEntries(t, srv, path)
		if len(items) != 2 || items[0].Category != "Relax" || items[1].Category != "Study" {
			t.Fatalf("%s: unexpected matches %+v", path, items)
		}
	}

	if items := listEntries(t, srv, "/api/entries?search=%20%20"); len(items) != 3 {
		t.Fatalf("expected blank search to list all, got %d", len(items))
	}

	resp, err := srv.Client().Get(srv.URL + "/api/entries?search=nothing")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if strings.TrimSpace(string(raw)) != "[]" {
		t.Fatalf("expected empty json array, got %q", raw)
	}
}

func TestRESTUpdateEntry(t *testing.T) {
	t.Parallel()

	_, srv := newTestServer(t)

	_, created := doJSON(t, srv, http.MethodPost, "/api/entries",
		`{"category":"Study","minutes":60,"description":"Math","timestamp":"2026-10-15T10:00:00Z"}`)
	entry := created["entry"].(map[string]any)
	id := int64(entry["id"].(float64))

	for _, path := range []string{"/api/entries/", "/api/update/"} {
		resp, body := doJSON(t, srv, http.MethodPut, path+itoa(id), `{"category":"Code","minutes":15,"description":""}`)
		if resp.StatusCode != http.StatusOK || body["success"] != true {
			t.Fatalf("%s: expected success, got %d %v", path, resp.StatusCode, body)
		}
	}

	resp, body := doJSON(t, srv, http.MethodGet, "/api/entries/"+itoa(id), "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["category"] != "Code" || body["minutes"] != float64(15) || body["description"] != "" {
		t.Fatalf("unexpected entry after update %v", body)
	}
	if body["timestamp"] != "2026-10-15T10:00:00Z" {
		t.Fatalf("expected timestamp unchanged, got %v", body["timestamp"])
	}
}

func TestRESTUpdateEntry_Errors(t *testing.T) {
	t.Parallel()

	_, srv := newTestServer(t)

	resp, body := doJSON(t, srv, http.MethodPut, "/api/entries/42", `{"category":"Code","minutes":1}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (%v)", resp.StatusCode, body)
	}

	resp, _ = doJSON(t, srv, http.MethodPut, "/api/entries/abc", `{"category":"Code","minutes":1}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, srv, http.MethodGet, "/api/entries/7", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for get, got %d", resp.StatusCode)
	}
}

func TestRESTDeleteAll(t *testing.T) {
	t.Parallel()

	db, srv := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/api/entries", `{"category":"Study","minutes":60}`)
	doJSON(t, srv, http.MethodPost, "/api/entries", `{"category":"Code","minutes":30}`)

	resp, body := doJSON(t, srv, http.MethodPost, "/api/entries:delete-all", "")
	if resp.StatusCode != http.StatusOK || body["success"] != true || body["deleted"] != float64(2) {
		t.Fatalf("unexpected delete response %d %v", resp.StatusCode, body)
	}
	if db.count() != 0 {
		t.Fatalf("expected empty store, got %d", db.count())
	}

	_, body = doJSON(t, srv, http.MethodPost, "/api/delete_all", "")
	if body["deleted"] != float64(0) {
		t.Fatalf("expected 0 deleted, got %v", body)
	}
}

func TestRESTStats(t *testing.T) {
	t.Parallel()

	_, srv := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/api/entries", `{"category":"Code","minutes":30,"timestamp":"2026-10-12T09:00:00Z"}`)
	doJSON(t, srv, http.MethodPost, "/api/entries", `{"category":"Code","minutes":45}`)
	doJSON(t, srv, http.MethodPost, "/api/entries", `{"category":"Study","minutes":60,"timestamp":"2026-10-02T09:00:00Z"}`)

	resp, err := srv.Client().Get(srv.URL + "/api/stats")
	if err != nil {
		t.Fatalf("GET /api/stats failed: %v", err)
	}
	defer resp.Body.Close()

	var st core.Stats
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		t.Fatalf("failed to decode stats: %v", err)
	}
	if st.Week["Code"] != 75 || len(st.Week) != 1 {
		t.Fatalf("unexpected week %v", st.Week)
	}
	if st.Month["Code"] != 75 || st.Month["Study"] != 60 {
		t.Fatalf("unexpected month %v", st.Month)
	}
	if !st.WeekStart.Equal(time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected week start %v", st.WeekStart)
	}
}

func TestRESTHealth(t *testing.T) {
	t.Parallel()

	db, srv := newTestServer(t)

	resp, body := doJSON(t, srv, http.MethodGet, "/api/health", "")
	if resp.StatusCode != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("expected healthy, got %d %v", resp.StatusCode, body)
	}
	if body["time"] != "2026-10-17T15:30:00.000Z" {
		t.Fatalf("unexpected time %v", body["time"])
	}

	db.setPingErr(errors.New("connection refused"))
	resp, body = doJSON(t, srv, http.MethodGet, "/api/health", "")
	if resp.StatusCode != http.StatusServiceUnavailable || body["status"] != "down" {
		t.Fatalf("expected down, got %d %v", resp.StatusCode, body)
	}
}

func TestRESTMiddleware_RequestIDAndCORS(t *testing.T) {
	t.Parallel()

	_, srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/entries", nil)
	req.Header.Set(rest.RequestIDHeader, "req-1")
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("OPTIONS failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", resp.StatusCode)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("expected CORS header, got %q", resp.Header.Get("Access-Control-Allow-Origin"))
	}
	if resp.Header.Get(rest.RequestIDHeader) != "req-1" {
		t.Fatalf("expected request id echoed, got %q", resp.Header.Get(rest.RequestIDHeader))
	}

	resp, _ = doJSON(t, srv, http.MethodGet, "/api/health", "")
	if resp.Header.Get(rest.RequestIDHeader) == "" {
		t.Fatalf("expected generated request id")
	}
}

func TestRESTHandlerTimeoutIsApplied(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handlers.NewListEntriesHandler(logger, deadlineEntries{}, time.Millisecond)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/entries", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

// deadlineEntries waits for the request context and reports it as unavailable storage.
type deadlineEntries struct {
	core.Entries
}

func (deadlineEntries) ListEntries(ctx context.Context, _ core.ListEntriesFilter) ([]core.Entry, error) {
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("no deadline")
	}
	<-ctx.Done()
	return nil, core.ErrUnavailable
}

func itoa(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
