package admin

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
	"visitlog/internal/schedule"
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

func newAdminApp(client *ent.Client, gate *schedule.Gate) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Post("/admin/staff", CreateStaffHandler(client))
		app.Get("/admin/staff", ListStaffHandler(client))
		app.Delete("/admin/staff/:id", DeleteStaffHandler(client))
		app.Get("/admin/schedule", ScheduleHandler(gate))
		app.Post("/admin/schedule/reload", ReloadScheduleHandler(client, gate))
		app.Delete("/admin/schedule", ClearScheduleHandler(gate))
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

func TestCreateStaff_DuplicateAndShortPassword(t *testing.T) {
	client := newTestClient(t)
	app := newAdminApp(client, schedule.New())

	status, env := do(t, app, http.MethodPost, "/admin/staff", map[string]any{
		"username": "guard02", "password": "Secretp@ssw0rd", "role": "admin",
	})
	if status != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %v", status, env)
	}
	if got := env["data"].(map[string]any)["role"]; got != "admin" {
		t.Fatalf("role = %v, want admin", got)
	}

	status, _ = do(t, app, http.MethodPost, "/admin/staff", map[string]any{
		"username": "guard02", "password": "Secretp@ssw0rd",
	})
	if status != http.StatusConflict {
		t.Fatalf("duplicate status = %d, want 409", status)
	}

	status, _ = do(t, app, http.MethodPost, "/admin/staff", map[string]any{
		"username": "guard03", "password": "short",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("short password status = %d, want 400", status)
	}
}

func TestSchedule_ReloadFromActiveCells(t *testing.T) {
	client := newTestClient(t)
	gate := schedule.New()
	app := newAdminApp(client, gate)

	ctx := context.Background()
	client.Cell.Create().SetCode("a-1").SaveX(ctx)
	client.Cell.Create().SetCode("b-2").SaveX(ctx)
	client.Cell.Create().SetCode("c-3").SetActive(false).SaveX(ctx)

	status, env := do(t, app, http.MethodPost, "/admin/schedule/reload", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200: %v", status, env)
	}
	cells := env["data"].(map[string]any)["cells"].([]any)
	if len(cells) != 2 {
		t.Fatalf("scheduled cells = %v, want 2", cells)
	}
	if !gate.IsScheduled("A-1") || gate.IsScheduled("c-3") {
		t.Fatalf("gate state wrong: %v", gate.Snapshot())
	}

	status, _ = do(t, app, http.MethodDelete, "/admin/schedule", nil)
	if status != http.StatusOK {
		t.Fatalf("clear status = %d, want 200", status)
	}
	if gate.Len() != 0 {
		t.Fatalf("gate not cleared: %v", gate.Snapshot())
	}
}
