package visitors

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"

	"visitlog/ent"
	"visitlog/internal/httpx/kit/testutil"
	"visitlog/internal/visitid"
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

func newVisitorsApp(client *ent.Client) *fiber.App {
	reg := visitid.NewRegistrar(client)
	return testutil.NewApp(func(app *fiber.App) {
		app.Post("/visitors", RegisterVisitorHandler(reg))
		app.Get("/visitors", ListVisitorsHandler(client))
		app.Get("/visitors/:visitor_id", GetVisitorHandler(client))
	})
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

func TestRegister_IssuesVisID(t *testing.T) {
	client := newTestClient(t)
	app := newVisitorsApp(client)

	status, env := do(t, app, http.MethodPost, "/visitors", map[string]any{
		"full_name":           "Maria Santos",
		"relationship":        "spouse",
		"age":                 34,
		"address":             "Quezon City",
		"valid_id":            "DL-123456",
		"contact_number":      "09171234567",
		"date_of_application": "2026-03-14",
		"conjugal_verified":   true,
	})
	if status != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %v", status, env)
	}
	d := env["data"].(map[string]any)
	vid, _ := d["visitor_id"].(string)
	if !strings.HasPrefix(vid, "VIS-") || len(vid) != len("VIS-26-000000") {
		t.Fatalf("visitor_id = %q", vid)
	}
}

func TestRegister_FullNameRequired(t *testing.T) {
	client := newTestClient(t)
	app := newVisitorsApp(client)

	status, env := do(t, app, http.MethodPost, "/visitors", map[string]any{"full_name": "  "})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %v", status, env)
	}
}

func TestRegister_InvalidApplicationDateRejected(t *testing.T) {
	client := newTestClient(t)
	app := newVisitorsApp(client)

	status, _ := do(t, app, http.MethodPost, "/visitors", map[string]any{
		"full_name":           "Maria Santos",
		"date_of_application": "March 14",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestGet_ByVisIDAndListSearch(t *testing.T) {
	client := newTestClient(t)
	app := newVisitorsApp(client)

	_, env := do(t, app, http.MethodPost, "/visitors", map[string]any{"full_name": "Maria Santos"})
	vid := env["data"].(map[string]any)["visitor_id"].(string)

	status, env := do(t, app, http.MethodGet, "/visitors/"+vid, nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200: %v", status, env)
	}
	if got := env["data"].(map[string]any)["full_name"]; got != "Maria Santos" {
		t.Fatalf("full_name = %v", got)
	}

	status, _ = do(t, app, http.MethodGet, "/visitors/VIS-00-000000", nil)
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}

	status, env = do(t, app, http.MethodGet, "/visitors?q=maria", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if n := len(env["data"].([]any)); n != 1 {
		t.Fatalf("matches = %d, want 1", n)
	}
}
