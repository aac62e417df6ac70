package tests

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
	"visitlog/internal/config"
	"visitlog/internal/debounce"
	httpx "visitlog/internal/httpx"
	"visitlog/internal/httpx/auth"
	"visitlog/internal/httpx/kit"
)

func e2eConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Algo = "HS256"
	cfg.JWT.HSSecret = "e2e-secret"
	cfg.JWT.Issuer = "visitlog-test"
	cfg.JWT.Audience = "visitlog"
	cfg.JWT.AccessMin = 15
	cfg.JWT.RefreshDays = 7
	cfg.Scan.DebounceMs = 0
	cfg.Scan.RateLimit = 1000
	cfg.Scan.RateWindowSec = 60
	return cfg
}

func newE2EClient(t *testing.T) *ent.Client {
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

func request(t *testing.T, app *fiber.App, method, path, token string, body map[string]any) (int, map[string]any) {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, path, err)
	}
	var env map[string]any
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode %s %s: %v", method, path, err)
	}
	return res.StatusCode, env
}

// Full flow: admin logs in, opens cell a-1 for visits, a visitor scans in,
// scans out, and the closed session shows up in the log.
func TestE2E_ScanDayFlow(t *testing.T) {
	cfg := e2eConfig()
	client := newE2EClient(t)

	hash, err := auth.HashPassword("Secretp@ssw0rd")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	client.StaffUser.Create().SetUsername("warden01").SetPasswordHash(hash).SetRole("admin").SaveX(context.Background())

	app := fiber.New(fiber.Config{ErrorHandler: kit.ErrorHandler()})
	httpx.RegisterCommonMiddlewares(app)
	httpx.Register(app, cfg, client, &httpx.Providers{Guard: debounce.New(time.Nanosecond)})

	status, env := request(t, app, http.MethodGet, "/health", "", nil)
	if status != http.StatusOK || env["code"] != "OK" {
		t.Fatalf("health = %d %v", status, env)
	}

	status, env = request(t, app, http.MethodPost, "/auth/login", "", map[string]any{
		"username": "warden01", "password": "Secretp@ssw0rd",
	})
	if status != http.StatusOK {
		t.Fatalf("login = %d %v", status, env)
	}
	token := env["data"].(map[string]any)["access_token"].(string)

	// schedule is empty, scans must be rejected
	payload := "[Visitor: Maria Santos][PDL: Juan Cruz][Cell: A-1]"
	status, env = request(t, app, http.MethodPost, "/scanned_visitors", "", map[string]any{"payload": payload})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("unscheduled scan = %d %v", status, env)
	}

	status, _ = request(t, app, http.MethodPost, "/cells", token, map[string]any{"code": "a-1"})
	if status != http.StatusCreated {
		t.Fatalf("create cell = %d", status)
	}
	status, env = request(t, app, http.MethodPost, "/admin/schedule/reload", token, nil)
	if status != http.StatusOK {
		t.Fatalf("reload schedule = %d %v", status, env)
	}

	status, env = request(t, app, http.MethodPost, "/scanned_visitors", "", map[string]any{"payload": payload})
	if status != http.StatusOK {
		t.Fatalf("time-in scan = %d %v", status, env)
	}
	if got := env["data"].(map[string]any)["action"]; got != "time_in" {
		t.Fatalf("first scan action = %v", got)
	}

	status, env = request(t, app, http.MethodPost, "/scanned_visitors", "", map[string]any{"payload": payload})
	if status != http.StatusOK {
		t.Fatalf("time-out scan = %d %v", status, env)
	}
	if got := env["data"].(map[string]any)["action"]; got != "time_out" {
		t.Fatalf("second scan action = %v", got)
	}

	status, env = request(t, app, http.MethodGet, "/scanned_visitors?open=true", "", nil)
	if status != http.StatusOK {
		t.Fatalf("list = %d %v", status, env)
	}
	if n := len(env["data"].([]any)); n != 0 {
		t.Fatalf("open sessions after time-out = %d, want 0", n)
	}
}

// Destructive routes are admin-only.
func TestE2E_RoleEnforcement(t *testing.T) {
	cfg := e2eConfig()
	client := newE2EClient(t)

	hash, err := auth.HashPassword("Secretp@ssw0rd")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	client.StaffUser.Create().SetUsername("guard01").SetPasswordHash(hash).SaveX(context.Background())

	app := fiber.New(fiber.Config{ErrorHandler: kit.ErrorHandler()})
	httpx.RegisterCommonMiddlewares(app)
	httpx.Register(app, cfg, client, nil)

	status, env := request(t, app, http.MethodPost, "/auth/login", "", map[string]any{
		"username": "guard01", "password": "Secretp@ssw0rd",
	})
	if status != http.StatusOK {
		t.Fatalf("login = %d %v", status, env)
	}
	token := env["data"].(map[string]any)["access_token"].(string)

	// staff token may create pdls
	status, _ = request(t, app, http.MethodPost, "/pdls", token, map[string]any{"name": "Juan Cruz", "cell": "a-1"})
	if status != http.StatusCreated {
		t.Fatalf("staff create pdl = %d", status)
	}

	// but not reach the admin surface
	status, _ = request(t, app, http.MethodGet, "/admin/schedule", token, nil)
	if status != http.StatusForbidden {
		t.Fatalf("staff on admin route = %d, want 403", status)
	}

	// and anonymous writes are rejected outright
	status, _ = request(t, app, http.MethodPost, "/pdls", "", map[string]any{"name": "Jose Ramos", "cell": "b-2"})
	if status != http.StatusUnauthorized {
		t.Fatalf("anonymous create pdl = %d, want 401", status)
	}
}
