// Package visitors provides HTTP handlers for registered visitor profiles.
package visitors

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"visitlog/ent"
	"visitlog/ent/registeredvisitor"
	"visitlog/internal/httpx/kit"
	"visitlog/internal/visitid"
)

// RegisterVisitorRequest is the request body for visitor registration
// swagger:model RegisterVisitorRequest
type RegisterVisitorRequest struct {
	FullName          string     `json:"full_name"`
	Relationship      string     `json:"relationship"`
	Age               int        `json:"age"`
	Address           string     `json:"address"`
	ValidID           string     `json:"valid_id"`
	ContactNumber     string     `json:"contact_number"`
	DateOfApplication string     `json:"date_of_application" example:"2026-03-14"`
	ConjugalVerified  bool       `json:"conjugal_verified"`
	PdlID             *uuid.UUID `json:"pdl_id"`
}

// RegisterVisitorHandler registers a visitor and issues a VIS id.
//
//	@Summary      Register a visitor
//	@Description  Creates a visitor profile with a collision-safe VIS-YY-NNNNNN id
//	@Tags         visitors
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  visitors.RegisterVisitorRequest  true  "visitor profile"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      500   {object}  map[string]interface{}
//	@Router       /visitors [post]
func RegisterVisitorHandler(reg *visitid.Registrar) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RegisterVisitorRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		if strings.TrimSpace(req.FullName) == "" {
			return kit.BadRequest("full_name required", nil)
		}
		p := visitid.Profile{
			FullName:         strings.TrimSpace(req.FullName),
			Relationship:     req.Relationship,
			Age:              req.Age,
			Address:          req.Address,
			ValidID:          req.ValidID,
			ContactNumber:    req.ContactNumber,
			ConjugalVerified: req.ConjugalVerified,
			PdlID:            req.PdlID,
		}
		if req.DateOfApplication != "" {
			d, err := time.Parse("2006-01-02", req.DateOfApplication)
			if err != nil {
				return kit.BadRequest("invalid date_of_application, want YYYY-MM-DD", req.DateOfApplication)
			}
			p.DateOfApplication = d
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		v, err := reg.Register(ctx, p)
		if err != nil {
			if err == visitid.ErrExhaustedRetries {
				return kit.NewAPIError(fiber.StatusInternalServerError, "E_ID_EXHAUSTED", "could not allocate a visitor id", nil)
			}
			if ent.IsConstraintError(err) {
				return kit.BadRequest("invalid visitor profile", err.Error())
			}
			return kit.InternalError("register visitor failed", err.Error())
		}
		return kit.Created(c, v)
	}
}

// ListVisitorsHandler lists registered visitors.
//
//	@Summary      List visitors
//	@Tags         visitors
//	@Produce      json
//	@Param        q       query  string  false  "name contains"
//	@Param        limit   query  int     false  "page size"  default(20)
//	@Param        offset  query  int     false  "offset"     default(0)
//	@Success      200  {object}  map[string]interface{}
//	@Router       /visitors [get]
func ListVisitorsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		q := client.RegisteredVisitor.Query().Order(ent.Desc(registeredvisitor.FieldCreatedAt))
		if needle := strings.TrimSpace(c.Query("q")); needle != "" {
			q = q.Where(registeredvisitor.FullNameContainsFold(needle))
		}
		items, err := q.Limit(pg.Limit).Offset(pg.Offset).All(ctx)
		if err != nil {
			return kit.InternalError("query visitors failed", err.Error())
		}
		meta := kit.PageMeta{Limit: pg.Limit, Offset: pg.Offset, Count: len(items), NextOffset: lo.ToPtr(pg.Offset + len(items)), HasMore: len(items) == pg.Limit, Mode: "offset"}
		return kit.List(c, items, meta)
	}
}

// GetVisitorHandler fetches one visitor by the issued VIS id.
//
//	@Summary      Get visitor by VIS id
//	@Tags         visitors
//	@Produce      json
//	@Param        visitor_id  path  string  true  "VIS-YY-NNNNNN"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /visitors/{visitor_id} [get]
func GetVisitorHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		v, err := client.RegisteredVisitor.Query().
			Where(registeredvisitor.VisitorIDEQ(c.Params("visitor_id"))).
			WithPdl().
			Only(ctx)
		if ent.IsNotFound(err) {
			return kit.NotFound("visitor not found")
		}
		if err != nil {
			return kit.InternalError("query visitor failed", err.Error())
		}
		return kit.OK(c, v)
	}
}
