// Package cells provides HTTP handlers for cell records. Active cells feed
// the visiting-day schedule gate.
package cells

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"visitlog/ent"
	"visitlog/ent/cell"
	"visitlog/internal/httpx/kit"
)

// UpsertCellRequest is the request body for creating or updating a cell
// swagger:model UpsertCellRequest
type UpsertCellRequest struct {
	Code     string `json:"code"`
	Capacity *int   `json:"capacity"`
	Active   *bool  `json:"active"`
}

// ActiveCodes returns the lower-cased codes of all active cells.
func ActiveCodes(ctx context.Context, client *ent.Client) ([]string, error) {
	return client.Cell.Query().
		Where(cell.ActiveEQ(true)).
		Order(ent.Asc(cell.FieldCode)).
		Select(cell.FieldCode).
		Strings(ctx)
}

// CreateCellHandler creates a cell.
//
//	@Summary      Create cell
//	@Tags         cells
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  cells.UpsertCellRequest  true  "cell record"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      409   {object}  map[string]interface{}
//	@Router       /cells [post]
func CreateCellHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req UpsertCellRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		code := strings.ToLower(strings.TrimSpace(req.Code))
		if code == "" {
			return kit.BadRequest("code required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		create := client.Cell.Create().SetCode(code)
		if req.Capacity != nil {
			create = create.SetCapacity(*req.Capacity)
		}
		if req.Active != nil {
			create = create.SetActive(*req.Active)
		}
		created, err := create.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return kit.Conflict("E_DUPLICATE", "cell already exists", code)
			}
			return kit.InternalError("create cell failed", err.Error())
		}
		return kit.Created(c, created)
	}
}

// ListCellsHandler lists all cells.
//
//	@Summary      List cells
//	@Tags         cells
//	@Produce      json
//	@Success      200  {object}  map[string]interface{}
//	@Router       /cells [get]
func ListCellsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		items, err := client.Cell.Query().Order(ent.Asc(cell.FieldCode)).All(ctx)
		if err != nil {
			return kit.InternalError("query cells failed", err.Error())
		}
		return kit.OK(c, items)
	}
}

// ListActiveCellsHandler lists the cells currently open for visits.
//
//	@Summary      List active cells
//	@Tags         cells
//	@Produce      json
//	@Success      200  {object}  map[string]interface{}
//	@Router       /cells/active [get]
func ListActiveCellsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		codes, err := ActiveCodes(ctx, client)
		if err != nil {
			return kit.InternalError("query active cells failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"cells": codes})
	}
}

// UpdateCellHandler updates a cell's capacity or active flag.
//
//	@Summary      Update cell
//	@Tags         cells
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string                   true  "cell UUID"
//	@Param        body  body  cells.UpsertCellRequest  true  "fields to update"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /cells/{id} [put]
func UpdateCellHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid cell id", c.Params("id"))
		}
		var req UpsertCellRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		upd := client.Cell.UpdateOneID(id)
		if code := strings.ToLower(strings.TrimSpace(req.Code)); code != "" {
			upd = upd.SetCode(code)
		}
		if req.Capacity != nil {
			upd = upd.SetCapacity(*req.Capacity)
		}
		if req.Active != nil {
			upd = upd.SetActive(*req.Active)
		}
		updated, err := upd.Save(ctx)
		if ent.IsNotFound(err) {
			return kit.NotFound("cell not found")
		}
		if err != nil {
			return kit.InternalError("update cell failed", err.Error())
		}
		return kit.OK(c, updated)
	}
}

// DeleteCellHandler deletes a cell.
//
//	@Summary      Delete cell
//	@Tags         cells
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id  path  string  true  "cell UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /cells/{id} [delete]
func DeleteCellHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid cell id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		if err := client.Cell.DeleteOneID(id).Exec(ctx); err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("cell not found")
			}
			return kit.InternalError("delete cell failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"deleted": id})
	}
}
