// Package auth implements staff authentication: password login, refresh
// token rotation and logout. Access tokens are short-lived JWTs; the refresh
// token travels in an HttpOnly cookie.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"visitlog/ent"
	"visitlog/ent/staffuser"
	"visitlog/internal/config"
	"visitlog/internal/httpx/kit"
	"visitlog/internal/httpx/mw"
)

// LoginHandler authenticates a staff account with username and password.
//
//	@Summary      Staff login
//	@Description  Verifies credentials, issues an access token and sets the refresh cookie
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body   auth.LoginRequest  true  "credentials"
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /auth/login [post]
func LoginHandler(cfg *config.Config, client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		username := strings.TrimSpace(req.Username)
		if username == "" || req.Password == "" {
			return kit.BadRequest("username and password required", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		u, err := client.StaffUser.Query().Where(staffuser.UsernameEQ(username)).Only(ctx)
		if ent.IsNotFound(err) || (err == nil && !VerifyPassword(req.Password, u.PasswordHash)) {
			return fiber.ErrUnauthorized
		}
		if err != nil {
			return kit.InternalError("query staff failed", err.Error())
		}

		_ = client.StaffUser.UpdateOne(u).SetLastLoginAt(time.Now().UTC()).Exec(ctx)

		sub := "staff:" + u.ID.String()
		roles := []string{string(u.Role)}
		access, _, err := SignAccess(cfg, sub, "staff", roles, req.StationID)
		if err != nil {
			return kit.InternalError("sign access failed", err.Error())
		}
		refresh, _, err := SignRefresh(cfg, sub, "staff", req.StationID)
		if err != nil {
			return kit.InternalError("sign refresh failed", err.Error())
		}
		SetRefreshCookie(c, refresh, cfg.JWT.RefreshDays)
		return kit.OK(c, TokenResponse{AccessToken: access, TokenType: "Bearer", ExpiresIn: cfg.JWT.AccessMin * 60, Role: string(u.Role)})
	}
}

// RefreshHandler rotates the refresh token and issues a new access token.
//
//	@Summary      Refresh tokens
//	@Description  Reads the refresh cookie, rotates it and returns a fresh access token
//	@Tags         auth
//	@Produce      json
//	@Success      200  {object}  auth.TokenResponse
//	@Failure      401  {object}  map[string]interface{}
//	@Router       /auth/refresh [post]
func RefreshHandler(cfg *config.Config, client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies("refresh_token")
		if raw == "" {
			return fiber.ErrUnauthorized
		}
		claims, err := ParseAndValidate(cfg, raw)
		if err != nil || claims.Kind != "staff" {
			return fiber.ErrUnauthorized
		}
		id, ok := strings.CutPrefix(claims.Subject, "staff:")
		if !ok {
			return fiber.ErrUnauthorized
		}
		uid, err := uuid.Parse(id)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		u, err := client.StaffUser.Get(ctx, uid)
		if err != nil {
			// the account may have been removed since the token was issued
			return fiber.ErrUnauthorized
		}

		roles := []string{string(u.Role)}
		access, _, err := SignAccess(cfg, claims.Subject, "staff", roles, claims.StationID)
		if err != nil {
			return kit.InternalError("sign access failed", err.Error())
		}
		refresh, _, err := SignRefresh(cfg, claims.Subject, "staff", claims.StationID)
		if err != nil {
			return kit.InternalError("sign refresh failed", err.Error())
		}
		SetRefreshCookie(c, refresh, cfg.JWT.RefreshDays)
		return kit.OK(c, TokenResponse{AccessToken: access, TokenType: "Bearer", ExpiresIn: cfg.JWT.AccessMin * 60, Role: string(u.Role)})
	}
}

// LogoutHandler clears the refresh cookie.
//
//	@Summary      Logout
//	@Tags         auth
//	@Produce      json
//	@Success      200  {object}  map[string]interface{}
//	@Router       /auth/logout [post]
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ClearRefreshCookie(c)
		return kit.OK(c, fiber.Map{"logged_out": true})
	}
}

// MeHandler returns the authenticated staff account.
//
//	@Summary      Current staff account
//	@Tags         auth
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]interface{}
//	@Failure      401  {object}  map[string]interface{}
//	@Router       /auth/me [get]
func MeHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, _ := c.Locals("auth").(*mw.AuthContext)
		if ac == nil || ac.Kind != "staff" {
			return fiber.ErrUnauthorized
		}
		id, ok := strings.CutPrefix(ac.Subject, "staff:")
		if !ok {
			return fiber.ErrUnauthorized
		}
		uid, err := uuid.Parse(id)
		if err != nil {
			return fiber.ErrUnauthorized
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		u, err := client.StaffUser.Get(ctx, uid)
		if ent.IsNotFound(err) {
			return kit.NotFound("staff account not found")
		}
		if err != nil {
			return kit.InternalError("query staff failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"id": u.ID, "username": u.Username, "role": u.Role})
	}
}

// TokenParser adapts ParseAndValidate for the auth middleware.
func TokenParser(cfg *config.Config) mw.TokenParser {
	return func(token string) (string, string, []string, string, error) {
		claims, err := ParseAndValidate(cfg, token)
		if err != nil {
			return "", "", nil, "", err
		}
		return claims.Subject, claims.Kind, claims.Roles, claims.StationID, nil
	}
}
