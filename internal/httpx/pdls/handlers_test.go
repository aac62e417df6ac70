package pdls

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

func newPdlsApp(client *ent.Client) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Post("/pdls", CreatePdlHandler(client))
		app.Get("/pdls", ListPdlsHandler(client))
		app.Put("/pdls/:id", UpdatePdlHandler(client))
		app.Delete("/pdls/:id", DeletePdlHandler(client))
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

func TestCreate_ThenFilterByCell(t *testing.T) {
	client := newTestClient(t)
	app := newPdlsApp(client)

	status, env := do(t, app, http.MethodPost, "/pdls", map[string]any{
		"name":           "Juan Cruz",
		"cell":           "A-1",
		"crime":          "theft",
		"date_committed": "2025-11-02",
	})
	if status != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %v", status, env)
	}
	if got := env["data"].(map[string]any)["cell"]; got != "a-1" {
		t.Fatalf("cell = %v, want a-1", got)
	}
	do(t, app, http.MethodPost, "/pdls", map[string]any{"name": "Jose Ramos", "cell": "b-2"})

	status, env = do(t, app, http.MethodGet, "/pdls?cell=A-1", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if n := len(env["data"].([]any)); n != 1 {
		t.Fatalf("matches = %d, want 1", n)
	}
}

func TestCreate_DuplicateNameRejected(t *testing.T) {
	client := newTestClient(t)
	app := newPdlsApp(client)

	do(t, app, http.MethodPost, "/pdls", map[string]any{"name": "Juan Cruz", "cell": "a-1"})
	status, env := do(t, app, http.MethodPost, "/pdls", map[string]any{"name": "Juan Cruz", "cell": "b-2"})
	if status != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %v", status, env)
	}
}

func TestUpdate_MovesPdlToAnotherCell(t *testing.T) {
	client := newTestClient(t)
	app := newPdlsApp(client)

	_, env := do(t, app, http.MethodPost, "/pdls", map[string]any{"name": "Juan Cruz", "cell": "a-1"})
	id := env["data"].(map[string]any)["id"].(string)

	status, env := do(t, app, http.MethodPut, "/pdls/"+id, map[string]any{"cell": "C-3"})
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200: %v", status, env)
	}
	if got := env["data"].(map[string]any)["cell"]; got != "c-3" {
		t.Fatalf("cell = %v, want c-3", got)
	}
}
