// Package admin provides the protected management surface: staff accounts
// and the visiting-day schedule.
package admin

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"visitlog/ent"
	"visitlog/ent/staffuser"
	"visitlog/internal/httpx/auth"
	"visitlog/internal/httpx/cells"
	"visitlog/internal/httpx/kit"
	"visitlog/internal/schedule"
)

// CreateStaffRequest is the request body for creating a staff account
// swagger:model CreateStaffRequest
type CreateStaffRequest struct {
	Username string `json:"username" example:"guard02"`
	Password string `json:"password" example:"Secretp@ssw0rd"`
	Role     string `json:"role" example:"staff"`
}

// CreateStaffHandler creates a staff account.
//
//	@Summary      Create staff account
//	@Tags         admin
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  admin.CreateStaffRequest  true  "account"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      409   {object}  map[string]interface{}
//	@Router       /admin/staff [post]
func CreateStaffHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CreateStaffRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		username := strings.TrimSpace(req.Username)
		if username == "" || len(req.Password) < 8 {
			return kit.BadRequest("username and password (min 8 chars) required", nil)
		}
		role := staffuser.RoleStaff
		if req.Role == "admin" {
			role = staffuser.RoleAdmin
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return kit.InternalError("hash password failed", err.Error())
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		created, err := client.StaffUser.Create().
			SetUsername(username).
			SetPasswordHash(hash).
			SetRole(role).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return kit.Conflict("E_DUPLICATE", "username already taken", username)
			}
			return kit.InternalError("create staff failed", err.Error())
		}
		return kit.Created(c, fiber.Map{"id": created.ID, "username": created.Username, "role": created.Role})
	}
}

// ListStaffHandler lists staff accounts.
//
//	@Summary      List staff accounts
//	@Tags         admin
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]interface{}
//	@Router       /admin/staff [get]
func ListStaffHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		items, err := client.StaffUser.Query().Order(ent.Asc(staffuser.FieldUsername)).All(ctx)
		if err != nil {
			return kit.InternalError("query staff failed", err.Error())
		}
		out := make([]fiber.Map, 0, len(items))
		for _, u := range items {
			out = append(out, fiber.Map{"id": u.ID, "username": u.Username, "role": u.Role, "created_at": u.CreatedAt})
		}
		return kit.OK(c, out)
	}
}

// DeleteStaffHandler deletes a staff account.
//
//	@Summary      Delete staff account
//	@Tags         admin
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id  path  string  true  "staff UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /admin/staff/{id} [delete]
func DeleteStaffHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid staff id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		if err := client.StaffUser.DeleteOneID(id).Exec(ctx); err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("staff account not found")
			}
			return kit.InternalError("delete staff failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"deleted": id})
	}
}

// ScheduleHandler returns the cells currently admitted by the gate.
//
//	@Summary      Show today's schedule
//	@Tags         admin
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]interface{}
//	@Router       /admin/schedule [get]
func ScheduleHandler(gate *schedule.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return kit.OK(c, fiber.Map{"cells": gate.Snapshot()})
	}
}

// ReloadScheduleHandler replaces the gate with the active cells from the
// database.
//
//	@Summary      Reload schedule from active cells
//	@Tags         admin
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]interface{}
//	@Router       /admin/schedule/reload [post]
func ReloadScheduleHandler(client *ent.Client, gate *schedule.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		codes, err := cells.ActiveCodes(ctx, client)
		if err != nil {
			return kit.InternalError("query active cells failed", err.Error())
		}
		gate.Replace(codes)
		return kit.OK(c, fiber.Map{"cells": gate.Snapshot()})
	}
}

// ClearScheduleHandler empties the gate, closing visits for the day.
//
//	@Summary      Clear schedule
//	@Tags         admin
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]interface{}
//	@Router       /admin/schedule [delete]
func ClearScheduleHandler(gate *schedule.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		gate.Clear()
		return kit.OK(c, fiber.Map{"cells": []string{}})
	}
}
