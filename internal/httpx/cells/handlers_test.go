package cells

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

func newCellsApp(client *ent.Client) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Post("/cells", CreateCellHandler(client))
		app.Get("/cells", ListCellsHandler(client))
		app.Get("/cells/active", ListActiveCellsHandler(client))
		app.Put("/cells/:id", UpdateCellHandler(client))
		app.Delete("/cells/:id", DeleteCellHandler(client))
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

func TestCreate_LowercasesCodeAndRejectsDuplicate(t *testing.T) {
	client := newTestClient(t)
	app := newCellsApp(client)

	status, env := do(t, app, http.MethodPost, "/cells", map[string]any{"code": "  A-1 ", "capacity": 20})
	if status != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %v", status, env)
	}
	if got := env["data"].(map[string]any)["code"]; got != "a-1" {
		t.Fatalf("code = %v, want a-1", got)
	}

	status, env = do(t, app, http.MethodPost, "/cells", map[string]any{"code": "a-1"})
	if status != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %v", status, env)
	}
	if env["code"] != "E_DUPLICATE" {
		t.Fatalf("code = %v", env["code"])
	}
}

func TestActive_OnlyListsActiveCells(t *testing.T) {
	client := newTestClient(t)
	app := newCellsApp(client)

	do(t, app, http.MethodPost, "/cells", map[string]any{"code": "a-1"})
	_, env := do(t, app, http.MethodPost, "/cells", map[string]any{"code": "b-2"})
	id := env["data"].(map[string]any)["id"].(string)

	status, _ := do(t, app, http.MethodPut, "/cells/"+id, map[string]any{"active": false})
	if status != http.StatusOK {
		t.Fatalf("deactivate status = %d, want 200", status)
	}

	status, env = do(t, app, http.MethodGet, "/cells/active", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	codes := env["data"].(map[string]any)["cells"].([]any)
	if len(codes) != 1 || codes[0] != "a-1" {
		t.Fatalf("active cells = %v, want [a-1]", codes)
	}
}

func TestDelete_UnknownCellIs404(t *testing.T) {
	client := newTestClient(t)
	app := newCellsApp(client)

	status, _ := do(t, app, http.MethodDelete, "/cells/6f1c0a9e-0000-4000-8000-000000000000", nil)
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
}
