package scans

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
	"visitlog/ent/visitsession"
	"visitlog/internal/debounce"
	"visitlog/internal/httpx/kit/testutil"
	"visitlog/internal/resolver"
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

func newScanApp(t *testing.T, client *ent.Client, gate *schedule.Gate, guard *debounce.Guard) *fiber.App {
	t.Helper()
	deps := &Deps{Resolver: resolver.New(client), Gate: gate, Guard: guard}
	return testutil.NewApp(func(app *fiber.App) {
		app.Post("/scanned_visitors", ScanHandler(deps))
	})
}

func postScan(t *testing.T, app *fiber.App, body map[string]any) (int, map[string]any) {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/scanned_visitors", bytes.NewReader(b))
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

func data(t *testing.T, env map[string]any) map[string]any {
	t.Helper()
	d, ok := env["data"].(map[string]any)
	if !ok {
		t.Fatalf("no data in envelope: %v", env)
	}
	return d
}

func TestScan_TimeInThenPreflightThenTimeOut(t *testing.T) {
	client := newTestClient(t)
	gate := schedule.New()
	gate.Replace([]string{"a1"})
	app := newScanApp(t, client, gate, debounce.New(time.Nanosecond))

	payload := "[Visitor: Jane Cruz][PDL: John Santos][Cell: A1][Relationship: Mother][Contact: 09171234567]"

	status, env := postScan(t, app, map[string]any{"payload": payload})
	if status != http.StatusOK {
		t.Fatalf("status=%d env=%v", status, env)
	}
	if got := data(t, env)["action"]; got != "time_in" {
		t.Fatalf("action=%v, want time_in", got)
	}

	// preflight immediately after classifies as time-out and mutates nothing
	status, env = postScan(t, app, map[string]any{"payload": payload, "only_check": true})
	if status != http.StatusOK || data(t, env)["action"] != "time_out" {
		t.Fatalf("preflight status=%d env=%v", status, env)
	}
	if n, _ := client.VisitSession.Query().Count(context.Background()); n != 1 {
		t.Fatalf("preflight created rows, count=%d", n)
	}

	// second scan closes
	status, env = postScan(t, app, map[string]any{"payload": payload})
	if status != http.StatusOK || data(t, env)["action"] != "time_out" {
		t.Fatalf("close status=%d env=%v", status, env)
	}

	// third opens a fresh session
	status, env = postScan(t, app, map[string]any{"payload": payload})
	if status != http.StatusOK || data(t, env)["action"] != "time_in" {
		t.Fatalf("reopen status=%d env=%v", status, env)
	}
}

func TestScan_StructuredFieldsWithoutPayload(t *testing.T) {
	client := newTestClient(t)
	gate := schedule.New()
	gate.Replace([]string{"a1"})
	app := newScanApp(t, client, gate, debounce.New(time.Nanosecond))

	status, env := postScan(t, app, map[string]any{
		"visitor_name": "Ana Lim",
		"pdl_name":     "Pedro Reyes",
		"cell":         "A1",
		"purpose":      "conjugal",
	})
	if status != http.StatusOK || data(t, env)["action"] != "time_in" {
		t.Fatalf("status=%d env=%v", status, env)
	}
	row, err := client.VisitSession.Query().Only(context.Background())
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if row.Purpose != visitsession.PurposeConjugal {
		t.Fatalf("purpose=%s", row.Purpose)
	}
	if row.PdlName != "pedro reyes" || row.Cell != "a1" {
		t.Fatalf("normalization missing: %+v", row)
	}
}

func TestScan_UnscheduledCellRejected(t *testing.T) {
	client := newTestClient(t)
	gate := schedule.New()
	gate.Replace([]string{"a1"})
	app := newScanApp(t, client, gate, debounce.New(time.Nanosecond))

	status, env := postScan(t, app, map[string]any{
		"payload": "[Visitor: J][PDL: X][Cell: B9]",
	})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d env=%v", status, env)
	}
	if env["code"] != "E_CELL_NOT_SCHEDULED" {
		t.Fatalf("code=%v", env["code"])
	}
	if n, _ := client.VisitSession.Query().Count(context.Background()); n != 0 {
		t.Fatalf("unscheduled scan created rows, count=%d", n)
	}
}

func TestScan_InvalidPayloadRejected(t *testing.T) {
	client := newTestClient(t)
	gate := schedule.New()
	gate.Replace([]string{"a1"})
	app := newScanApp(t, client, gate, debounce.New(time.Nanosecond))

	status, env := postScan(t, app, map[string]any{"payload": "[Visitor: J][Cell: A1]"})
	if status != http.StatusBadRequest || env["code"] != "E_INVALID_QR" {
		t.Fatalf("status=%d env=%v", status, env)
	}

	status, env = postScan(t, app, map[string]any{"visitor_name": "J", "cell": "A1"})
	if status != http.StatusBadRequest {
		t.Fatalf("missing pdl_name: status=%d env=%v", status, env)
	}
}

func TestScan_InvalidPurposeRejected(t *testing.T) {
	client := newTestClient(t)
	gate := schedule.New()
	gate.Replace([]string{"a1"})
	app := newScanApp(t, client, gate, debounce.New(time.Nanosecond))

	status, _ := postScan(t, app, map[string]any{
		"visitor_name": "J", "pdl_name": "X", "cell": "A1", "purpose": "party",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("status=%d", status)
	}
}

func TestScan_DebounceSuppressesRepeat(t *testing.T) {
	client := newTestClient(t)
	gate := schedule.New()
	gate.Replace([]string{"a1"})
	app := newScanApp(t, client, gate, debounce.New(debounce.DefaultWindow))

	body := map[string]any{"payload": "[Visitor: Jane][PDL: John][Cell: A1]"}

	status, env := postScan(t, app, body)
	if status != http.StatusOK || data(t, env)["action"] != "time_in" {
		t.Fatalf("first scan: status=%d env=%v", status, env)
	}
	status, env = postScan(t, app, body)
	if status != http.StatusOK || data(t, env)["suppressed"] != true {
		t.Fatalf("repeat should be suppressed: status=%d env=%v", status, env)
	}
	if n, _ := client.VisitSession.Query().Count(context.Background()); n != 1 {
		t.Fatalf("suppressed scan reached the resolver, count=%d", n)
	}
}

func TestScan_BadDeviceTimeFallsBack(t *testing.T) {
	client := newTestClient(t)
	gate := schedule.New()
	gate.Replace([]string{"a1"})
	app := newScanApp(t, client, gate, debounce.New(time.Nanosecond))

	status, env := postScan(t, app, map[string]any{
		"payload":     "[Visitor: Jane][PDL: John][Cell: A1]",
		"device_time": "not-a-date",
	})
	if status != http.StatusOK || data(t, env)["action"] != "time_in" {
		t.Fatalf("status=%d env=%v", status, env)
	}
}
