package auth

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
	"visitlog/internal/httpx/kit/testutil"
	"visitlog/internal/httpx/mw"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Algo = "HS256"
	cfg.JWT.HSSecret = "test-secret"
	cfg.JWT.Issuer = "visitlog-test"
	cfg.JWT.Audience = "visitlog"
	cfg.JWT.AccessMin = 15
	cfg.JWT.RefreshDays = 7
	return cfg
}

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

func seedStaff(t *testing.T, client *ent.Client, username, password string, role string) {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	create := client.StaffUser.Create().SetUsername(username).SetPasswordHash(hash)
	if role == "admin" {
		create = create.SetRole("admin")
	}
	if _, err := create.Save(context.Background()); err != nil {
		t.Fatalf("seed staff: %v", err)
	}
}

func newAuthApp(cfg *config.Config, client *ent.Client) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Use(mw.JWTMiddlewareDynamic(TokenParser(cfg)))
		app.Post("/auth/login", LoginHandler(cfg, client))
		app.Post("/auth/refresh", RefreshHandler(cfg, client))
		app.Post("/auth/logout", LogoutHandler())
		app.Get("/auth/me", MeHandler(client))
	})
}

func TestLogin_IssuesTokens(t *testing.T) {
	cfg := testConfig()
	client := newTestClient(t)
	seedStaff(t, client, "warden01", "Secretp@ssw0rd", "admin")
	app := newAuthApp(cfg, client)

	b, _ := json.Marshal(LoginRequest{Username: "warden01", Password: "Secretp@ssw0rd", StationID: "gate-1"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
	var env struct {
		Data TokenResponse `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.AccessToken == "" || env.Data.Role != "admin" {
		t.Fatalf("token response = %+v", env.Data)
	}

	claims, err := ParseAndValidate(cfg, env.Data.AccessToken)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if claims.Kind != "staff" || claims.StationID != "gate-1" {
		t.Fatalf("claims = %+v", claims)
	}

	var refreshCookie string
	for _, ck := range res.Cookies() {
		if ck.Name == "refresh_token" {
			refreshCookie = ck.Value
		}
	}
	if refreshCookie == "" {
		t.Fatal("refresh cookie not set")
	}

	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+env.Data.AccessToken)
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("me request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("me status = %d, want 200", res.StatusCode)
	}
}

func TestLogin_WrongPasswordRejected(t *testing.T) {
	cfg := testConfig()
	client := newTestClient(t)
	seedStaff(t, client, "warden01", "Secretp@ssw0rd", "staff")
	app := newAuthApp(cfg, client)

	for _, body := range []LoginRequest{
		{Username: "warden01", Password: "wrong"},
		{Username: "ghost", Password: "Secretp@ssw0rd"},
	} {
		b, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if res.StatusCode != http.StatusUnauthorized {
			t.Fatalf("status = %d for %q, want 401", res.StatusCode, body.Username)
		}
	}
}

func TestRefresh_RotatesAccessToken(t *testing.T) {
	cfg := testConfig()
	client := newTestClient(t)
	seedStaff(t, client, "warden01", "Secretp@ssw0rd", "staff")
	app := newAuthApp(cfg, client)

	b, _ := json.Marshal(LoginRequest{Username: "warden01", Password: "Secretp@ssw0rd"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	var refresh *http.Cookie
	for _, ck := range res.Cookies() {
		if ck.Name == "refresh_token" {
			refresh = ck
		}
	}
	if refresh == nil {
		t.Fatal("refresh cookie not set")
	}

	req = httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(refresh)
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("refresh status = %d, want 200", res.StatusCode)
	}
	var env struct {
		Data TokenResponse `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.AccessToken == "" {
		t.Fatal("no access token after refresh")
	}
}

func TestRefresh_MissingCookieRejected(t *testing.T) {
	cfg := testConfig()
	client := newTestClient(t)
	app := newAuthApp(cfg, client)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", res.StatusCode)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Secretp@ssw0rd")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword("Secretp@ssw0rd", hash) {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword("other", hash) {
		t.Fatal("wrong password accepted")
	}
}
