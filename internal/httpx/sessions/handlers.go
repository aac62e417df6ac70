// Package sessions exposes the persisted visit log: listing, manual
// correction, deletion and search. Corrections bypass the resolver's state
// machine but still respect its invariants.
package sessions

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"visitlog/ent"
	"visitlog/ent/visitsession"
	"visitlog/internal/esx"
	"visitlog/internal/httpx/kit"
)

// CorrectionRequest rewrites both timestamps of a session.
// swagger:model CorrectionRequest
type CorrectionRequest struct {
	TimeIn  string `json:"time_in" example:"2026-03-14T09:00:00Z"`
	TimeOut string `json:"time_out" example:"2026-03-14T10:30:00Z"`
}

// ListSessionsHandler lists visit sessions.
//
//	@Summary      List visit sessions
//	@Description  Supports paging, a sort whitelist, and date/open/name/cell filters
//	@Tags         sessions
//	@Accept       json
//	@Produce      json
//	@Param        date    query  string  false  "scan date YYYY-MM-DD"
//	@Param        open    query  bool    false  "only open sessions"
//	@Param        name    query  string  false  "visitor name contains"
//	@Param        cell    query  string  false  "exact cell"
//	@Param        limit   query  int     false  "page size"  default(20)
//	@Param        offset  query  int     false  "offset"     default(0)
//	@Param        sort      query  string  false  "field:asc|desc"
//	@Param        snapshot  query  string  false  "RFC3339 upper bound on time_in, pins offset pages"
//	@Success      200  {object}  map[string]interface{}
//	@Router       /scanned_visitors [get]
func ListSessionsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}

		q := client.VisitSession.Query()
		if day := c.Query("date"); day != "" {
			d, err := time.Parse("2006-01-02", day)
			if err != nil {
				return kit.BadRequest("invalid date, want YYYY-MM-DD", day)
			}
			q = q.Where(visitsession.ScanDateGTE(d), visitsession.ScanDateLT(d.AddDate(0, 0, 1)))
		}
		if c.QueryBool("open", false) {
			q = q.Where(visitsession.TimeOutIsNil())
		}
		if name := strings.ToLower(strings.TrimSpace(c.Query("name"))); name != "" {
			q = q.Where(visitsession.VisitorKeyContains(name))
		}
		if cell := strings.ToLower(strings.TrimSpace(c.Query("cell"))); cell != "" {
			q = q.Where(visitsession.CellEQ(cell))
		}

		if pg.Mode == "cursor" {
			// keyset over (time_in desc, id desc); the cursor encodes the
			// last row's id and time_in
			if pg.CursorID != nil {
				if pg.CursorTS != nil {
					ts := pg.CursorTS.UTC()
					q = q.Where(visitsession.Or(
						visitsession.TimeInLT(ts),
						visitsession.And(visitsession.TimeInEQ(ts), visitsession.IDLT(*pg.CursorID)),
					))
				} else {
					q = q.Where(visitsession.IDLT(*pg.CursorID))
				}
			}
			items, err := q.
				Order(ent.Desc(visitsession.FieldTimeIn), ent.Desc(visitsession.FieldID)).
				Limit(pg.Limit).
				All(ctx)
			if err != nil {
				return kit.InternalError("query sessions failed", err.Error())
			}
			meta := kit.PageMeta{Limit: pg.Limit, Count: len(items), HasMore: len(items) == pg.Limit, Mode: "cursor"}
			if len(items) > 0 {
				last := items[len(items)-1]
				meta.NextCursorEnc = kit.EncodeCursor(last.ID.String(), last.TimeIn)
			}
			return kit.List(c, items, meta)
		}

		if pg.Snapshot != nil {
			// fixed window: rows scanned after the snapshot never shift offsets
			q = q.Where(visitsession.TimeInLTE(pg.Snapshot.UTC()))
		}

		s := lo.Ternary(pg.Sort != "", pg.Sort, "time_in:desc")
		q, err = kit.ApplyVisitSort(q, s)
		if err != nil {
			return err
		}

		items, err := q.Limit(pg.Limit).Offset(pg.Offset).All(ctx)
		if err != nil {
			return kit.InternalError("query sessions failed", err.Error())
		}

		meta := kit.PageMeta{Limit: pg.Limit, Offset: pg.Offset, Count: len(items), NextOffset: lo.ToPtr(pg.Offset + len(items)), HasMore: len(items) == pg.Limit, Mode: pg.Mode}
		if pg.Snapshot != nil {
			meta.Snapshot = pg.Snapshot.UTC().Format(time.RFC3339Nano)
		}
		if s == "time_in:desc" && len(items) > 0 {
			// clients on the default order may continue with keyset paging
			last := items[len(items)-1]
			meta.NextCursorEnc = kit.EncodeCursor(last.ID.String(), last.TimeIn)
		}
		if pg.WithTotal {
			if total, err := client.VisitSession.Query().Count(ctx); err == nil {
				meta.Total = lo.ToPtr(total)
			}
		}
		return kit.List(c, items, meta)
	}
}

// CorrectSessionHandler applies an administrative timestamp correction.
//
//	@Summary      Correct a session
//	@Description  Sets time_in and time_out directly, bypassing the state machine; time_out must be >= time_in
//	@Tags         sessions
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string             true  "session UUID"
//	@Param        body  body  sessions.CorrectionRequest  true  "corrected timestamps"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /scanned_visitors/{id} [put]
func CorrectSessionHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid session id", c.Params("id"))
		}
		var req CorrectionRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		tin, err := parseStamp(req.TimeIn)
		if err != nil {
			return kit.BadRequest("invalid time_in", req.TimeIn)
		}
		tout, err := parseStamp(req.TimeOut)
		if err != nil {
			return kit.BadRequest("invalid time_out", req.TimeOut)
		}
		if tout.Before(tin) {
			return kit.BadRequest("time_out must be >= time_in", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		updated, err := client.VisitSession.UpdateOneID(id).
			SetTimeIn(tin).
			SetTimeOut(tout).
			Save(ctx)
		if ent.IsNotFound(err) {
			return kit.NotFound("session not found")
		}
		if err != nil {
			return kit.InternalError("update session failed", err.Error())
		}
		return kit.OK(c, updated)
	}
}

// DeleteSessionHandler removes a session row unconditionally.
//
//	@Summary      Delete a session
//	@Tags         sessions
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id  path  string  true  "session UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /scanned_visitors/{id} [delete]
func DeleteSessionHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid session id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		if err := client.VisitSession.DeleteOneID(id).Exec(ctx); err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("session not found")
			}
			return kit.InternalError("delete session failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"deleted": id})
	}
}

// SearchVisitsHandler queries the search index.
//
//	@Summary      Search visits
//	@Tags         sessions
//	@Produce      json
//	@Param        q       query  string  true   "query text"
//	@Param        limit   query  int     false  "page size"  default(20)
//	@Param        offset  query  int     false  "offset"     default(0)
//	@Success      200  {object}  map[string]interface{}
//	@Router       /search/visits [get]
func SearchVisitsHandler(es *esx.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if es == nil {
			return kit.OK(c, fiber.Map{"hits": []any{}})
		}
		q := c.Query("q")
		if q == "" {
			return kit.BadRequest("q required", nil)
		}
		from := c.QueryInt("offset", 0)
		size := lo.Clamp(c.QueryInt("limit", 20), 1, 100)
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		res, err := esx.SearchVisits(ctx, es, "visits", q, from, size)
		if err != nil {
			return kit.InternalError("search failed", err.Error())
		}
		return kit.OK(c, res)
	}
}

// parseStamp accepts the same timestamp forms as the scan pipeline,
// but rejects anything malformed instead of falling back.
func parseStamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fiber.ErrBadRequest
}
