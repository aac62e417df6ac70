// Package pdls provides HTTP handlers for PDL (person deprived of liberty)
// records.
package pdls

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"visitlog/ent"
	"visitlog/ent/pdl"
	"visitlog/internal/httpx/kit"
)

// UpsertPdlRequest is the request body for creating or updating a PDL
// swagger:model UpsertPdlRequest
type UpsertPdlRequest struct {
	Name          string `json:"name"`
	Cell          string `json:"cell"`
	Crime         string `json:"crime"`
	DateCommitted string `json:"date_committed" example:"2025-11-02"`
}

// CreatePdlHandler creates a PDL record.
//
//	@Summary      Create PDL
//	@Tags         pdls
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  pdls.UpsertPdlRequest  true  "PDL record"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      409   {object}  map[string]interface{}
//	@Router       /pdls [post]
func CreatePdlHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req UpsertPdlRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		name := strings.TrimSpace(req.Name)
		cell := strings.ToLower(strings.TrimSpace(req.Cell))
		if name == "" || cell == "" {
			return kit.BadRequest("name and cell required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		create := client.Pdl.Create().SetName(name).SetCell(cell).SetCrime(req.Crime)
		if req.DateCommitted != "" {
			d, err := time.Parse("2006-01-02", req.DateCommitted)
			if err != nil {
				return kit.BadRequest("invalid date_committed, want YYYY-MM-DD", req.DateCommitted)
			}
			create = create.SetDateCommitted(d)
		}
		created, err := create.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return kit.Conflict("E_DUPLICATE", "pdl already exists", name)
			}
			return kit.InternalError("create pdl failed", err.Error())
		}
		return kit.Created(c, created)
	}
}

// ListPdlsHandler lists PDL records.
//
//	@Summary      List PDLs
//	@Tags         pdls
//	@Produce      json
//	@Param        q       query  string  false  "name contains"
//	@Param        cell    query  string  false  "exact cell"
//	@Param        limit   query  int     false  "page size"  default(20)
//	@Param        offset  query  int     false  "offset"     default(0)
//	@Success      200  {object}  map[string]interface{}
//	@Router       /pdls [get]
func ListPdlsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		q := client.Pdl.Query().Order(ent.Asc(pdl.FieldName))
		if needle := strings.TrimSpace(c.Query("q")); needle != "" {
			q = q.Where(pdl.NameContainsFold(needle))
		}
		if cell := strings.ToLower(strings.TrimSpace(c.Query("cell"))); cell != "" {
			q = q.Where(pdl.CellEQ(cell))
		}
		items, err := q.Limit(pg.Limit).Offset(pg.Offset).All(ctx)
		if err != nil {
			return kit.InternalError("query pdls failed", err.Error())
		}
		meta := kit.PageMeta{Limit: pg.Limit, Offset: pg.Offset, Count: len(items), NextOffset: lo.ToPtr(pg.Offset + len(items)), HasMore: len(items) == pg.Limit, Mode: "offset"}
		return kit.List(c, items, meta)
	}
}

// UpdatePdlHandler updates a PDL record.
//
//	@Summary      Update PDL
//	@Tags         pdls
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string                 true  "PDL UUID"
//	@Param        body  body  pdls.UpsertPdlRequest  true  "fields to update"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /pdls/{id} [put]
func UpdatePdlHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid pdl id", c.Params("id"))
		}
		var req UpsertPdlRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		upd := client.Pdl.UpdateOneID(id)
		if name := strings.TrimSpace(req.Name); name != "" {
			upd = upd.SetName(name)
		}
		if cell := strings.ToLower(strings.TrimSpace(req.Cell)); cell != "" {
			upd = upd.SetCell(cell)
		}
		if req.Crime != "" {
			upd = upd.SetCrime(req.Crime)
		}
		if req.DateCommitted != "" {
			d, err := time.Parse("2006-01-02", req.DateCommitted)
			if err != nil {
				return kit.BadRequest("invalid date_committed, want YYYY-MM-DD", req.DateCommitted)
			}
			upd = upd.SetDateCommitted(d)
		}
		updated, err := upd.Save(ctx)
		if ent.IsNotFound(err) {
			return kit.NotFound("pdl not found")
		}
		if err != nil {
			return kit.InternalError("update pdl failed", err.Error())
		}
		return kit.OK(c, updated)
	}
}

// DeletePdlHandler deletes a PDL record.
//
//	@Summary      Delete PDL
//	@Tags         pdls
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id  path  string  true  "PDL UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /pdls/{id} [delete]
func DeletePdlHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid pdl id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		if err := client.Pdl.DeleteOneID(id).Exec(ctx); err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("pdl not found")
			}
			return kit.InternalError("delete pdl failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"deleted": id})
	}
}
