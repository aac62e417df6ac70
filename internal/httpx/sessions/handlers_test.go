package sessions

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"

	"visitlog/ent"
	"visitlog/internal/httpx/kit/testutil"
	"visitlog/internal/resolver"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newSessionsApp(client *ent.Client) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Get("/scanned_visitors", ListSessionsHandler(client))
		app.Put("/scanned_visitors/:id", CorrectSessionHandler(client))
		app.Delete("/scanned_visitors/:id", DeleteSessionHandler(client))
		app.Get("/search/visits", SearchVisitsHandler(nil))
	})
}

// seedVisit opens a session through the resolver and returns its id.
func seedVisit(t *testing.T, client *ent.Client, visitor, pdl, cell string) string {
	t.Helper()
	ctx := context.Background()
	r := resolver.New(client)
	res, err := r.Commit(ctx, resolver.CommitInput{Triple: resolver.NewTriple(visitor, pdl, cell)})
	if err != nil {
		t.Fatalf("seed visit: %v", err)
	}
	return res.SessionID.String()
}

func do(t *testing.T, app *fiber.App, method, path string, body map[string]any) (int, map[string]any) {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var env map[string]any
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return res.StatusCode, env
}

func TestList_FiltersOpenAndCell(t *testing.T) {
	client := newTestClient(t)
	app := newSessionsApp(client)

	seedVisit(t, client, "Maria Santos", "Juan Cruz", "A-1")
	seedVisit(t, client, "Pedro Reyes", "Juan Cruz", "B-2")
	closedID := seedVisit(t, client, "Ana Lim", "Jose Ramos", "A-1")
	// second commit on the same triple closes the session
	r := resolver.New(client)
	if _, err := r.Commit(context.Background(), resolver.CommitInput{Triple: resolver.NewTriple("Ana Lim", "Jose Ramos", "A-1")}); err != nil {
		t.Fatalf("close: %v", err)
	}

	status, env := do(t, app, http.MethodGet, "/scanned_visitors?open=true", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	items := env["data"].([]any)
	if len(items) != 2 {
		t.Fatalf("open sessions = %d, want 2", len(items))
	}
	for _, it := range items {
		if it.(map[string]any)["id"].(string) == closedID {
			t.Fatalf("closed session %s listed as open", closedID)
		}
	}

	status, env = do(t, app, http.MethodGet, "/scanned_visitors?cell=A-1", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if n := len(env["data"].([]any)); n != 2 {
		t.Fatalf("cell A-1 sessions = %d, want 2", n)
	}
}

func TestList_NameFilterIsCaseInsensitive(t *testing.T) {
	client := newTestClient(t)
	app := newSessionsApp(client)
	seedVisit(t, client, "Maria Santos", "Juan Cruz", "A-1")

	status, env := do(t, app, http.MethodGet, "/scanned_visitors?name=MARIA", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if n := len(env["data"].([]any)); n != 1 {
		t.Fatalf("matches = %d, want 1", n)
	}
}

func TestList_CursorPagination(t *testing.T) {
	client := newTestClient(t)
	app := newSessionsApp(client)
	for i := 0; i < 5; i++ {
		seedVisit(t, client, fmt.Sprintf("Visitor %d", i), "Juan Cruz", "A-1")
	}

	seen := map[string]bool{}
	cursor := ""
	for page := 0; page < 3; page++ {
		path := "/scanned_visitors?limit=2"
		if cursor != "" {
			path += "&cursor=" + cursor
		} else if page > 0 {
			break
		}
		status, env := do(t, app, http.MethodGet, path, nil)
		if status != http.StatusOK {
			t.Fatalf("page %d status = %d, want 200: %v", page, status, env)
		}
		items := env["data"].([]any)
		for _, it := range items {
			id := it.(map[string]any)["id"].(string)
			if seen[id] {
				t.Fatalf("session %s returned twice", id)
			}
			seen[id] = true
		}
		meta := env["meta"].(map[string]any)
		cursor, _ = meta["next_cursor_enc"].(string)
	}
	if len(seen) < 5 {
		t.Fatalf("paged through %d sessions, want 5", len(seen))
	}
}

func TestList_SnapshotPinsWindow(t *testing.T) {
	client := newTestClient(t)
	app := newSessionsApp(client)
	r := resolver.New(client)
	ctx := context.Background()

	for i, dt := range []string{"2026-03-14T10:00:00Z", "2026-03-14T11:00:00Z", "2026-03-14T12:00:00Z"} {
		if _, err := r.Commit(ctx, resolver.CommitInput{
			Triple:     resolver.NewTriple(fmt.Sprintf("Visitor %d", i), "Juan Cruz", "A-1"),
			DeviceTime: dt,
		}); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	status, env := do(t, app, http.MethodGet, "/scanned_visitors?snapshot=2026-03-14T11:30:00Z", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200: %v", status, env)
	}
	if n := len(env["data"].([]any)); n != 2 {
		t.Fatalf("rows = %d, want the 2 scanned before the snapshot", n)
	}
	meta := env["meta"].(map[string]any)
	if meta["mode"] != "snapshot" {
		t.Fatalf("mode = %v, want snapshot", meta["mode"])
	}
	if s, _ := meta["snapshot"].(string); s == "" {
		t.Fatalf("meta must echo the snapshot bound")
	}

	// a scan after the bound never enters the pinned window
	if _, err := r.Commit(ctx, resolver.CommitInput{
		Triple:     resolver.NewTriple("Visitor 9", "Juan Cruz", "A-1"),
		DeviceTime: "2026-03-14T13:00:00Z",
	}); err != nil {
		t.Fatalf("late scan: %v", err)
	}
	_, env = do(t, app, http.MethodGet, "/scanned_visitors?snapshot=2026-03-14T11:30:00Z", nil)
	if n := len(env["data"].([]any)); n != 2 {
		t.Fatalf("rows = %d after a later scan, want 2", n)
	}

	status, _ = do(t, app, http.MethodGet, "/scanned_visitors?snapshot=yesterday", nil)
	if status != http.StatusBadRequest {
		t.Fatalf("malformed snapshot status = %d, want 400", status)
	}
}

func TestList_InvalidDateRejected(t *testing.T) {
	client := newTestClient(t)
	app := newSessionsApp(client)

	status, env := do(t, app, http.MethodGet, "/scanned_visitors?date=14-03-2026", nil)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if env["code"] != "E_INVALID_PARAM" {
		t.Fatalf("code = %v", env["code"])
	}
}

func TestCorrect_RewritesBothStamps(t *testing.T) {
	client := newTestClient(t)
	app := newSessionsApp(client)
	id := seedVisit(t, client, "Maria Santos", "Juan Cruz", "A-1")

	status, env := do(t, app, http.MethodPut, "/scanned_visitors/"+id, map[string]any{
		"time_in":  "2026-03-14T09:00:00Z",
		"time_out": "2026-03-14T10:30:00Z",
	})
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200: %v", status, env)
	}
	d := env["data"].(map[string]any)
	if d["time_out"] == nil {
		t.Fatalf("time_out not set: %v", d)
	}
}

func TestCorrect_TimeOutBeforeTimeInRejected(t *testing.T) {
	client := newTestClient(t)
	app := newSessionsApp(client)
	id := seedVisit(t, client, "Maria Santos", "Juan Cruz", "A-1")

	status, env := do(t, app, http.MethodPut, "/scanned_visitors/"+id, map[string]any{
		"time_in":  "2026-03-14T10:00:00Z",
		"time_out": "2026-03-14T09:00:00Z",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %v", status, env)
	}
}

func TestCorrect_UnknownSessionIs404(t *testing.T) {
	client := newTestClient(t)
	app := newSessionsApp(client)

	status, env := do(t, app, http.MethodPut, "/scanned_visitors/6f1c0a9e-0000-4000-8000-000000000000", map[string]any{
		"time_in":  "2026-03-14T09:00:00Z",
		"time_out": "2026-03-14T10:00:00Z",
	})
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %v", status, env)
	}
}

func TestDelete_RemovesSession(t *testing.T) {
	client := newTestClient(t)
	app := newSessionsApp(client)
	id := seedVisit(t, client, "Maria Santos", "Juan Cruz", "A-1")

	status, _ := do(t, app, http.MethodDelete, "/scanned_visitors/"+id, nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	status, _ = do(t, app, http.MethodDelete, "/scanned_visitors/"+id, nil)
	if status != http.StatusNotFound {
		t.Fatalf("repeat delete status = %d, want 404", status)
	}
}

func TestSearch_NilClientReturnsEmpty(t *testing.T) {
	client := newTestClient(t)
	app := newSessionsApp(client)

	status, env := do(t, app, http.MethodGet, "/search/visits?q=maria", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	d := env["data"].(map[string]any)
	if _, ok := d["hits"]; !ok {
		t.Fatalf("expected hits key: %v", d)
	}
}
