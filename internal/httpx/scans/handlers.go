// Package scans handles the QR scan pipeline: parse, schedule gate,
// debounce, then session resolution.
package scans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"visitlog/ent/visitsession"
	"visitlog/internal/debounce"
	"visitlog/internal/esx"
	"visitlog/internal/httpx/kit"
	"visitlog/internal/logx"
	"visitlog/internal/mqx"
	"visitlog/internal/qr"
	"visitlog/internal/resolver"
	"visitlog/internal/schedule"
)

var scanLogger = logx.GetScope("scans")

// Deps carries the scan pipeline collaborators.
type Deps struct {
	Resolver *resolver.Resolver
	Gate     *schedule.Gate
	Guard    *debounce.Guard
	MQ       mqx.Publisher
	ES       *esx.Client
}

// ScanHandler resolves a scanned visitor into a time-in or time-out.
//
//	@Summary      Resolve a visitor scan
//	@Description  Parses the payload, gates it against today's schedule, debounces repeats, then opens or closes a visit session. only_check performs the read-only preflight.
//	@Tags         scans
//	@Accept       json
//	@Produce      json
//	@Param        body  body  scans.ScanRequest  true  "scan event"
//	@Success      200   {object}  map[string]interface{}  "resolution"
//	@Failure      400   {object}  map[string]interface{}  "invalid QR or purpose"
//	@Failure      409   {object}  map[string]interface{}  "concurrent scan, re-scan"
//	@Failure      422   {object}  map[string]interface{}  "cell not scheduled"
//	@Router       /scanned_visitors [post]
func ScanHandler(d *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ScanRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid scan body", nil)
		}

		if strings.TrimSpace(req.Payload) != "" {
			fields, err := qr.Parse(req.Payload)
			var mf *qr.MissingFieldError
			if errors.As(err, &mf) {
				return kit.NewAPIError(http.StatusBadRequest, "E_INVALID_QR", "invalid QR code format", mf.Field)
			}
			if err != nil {
				return kit.BadRequest("invalid QR payload", err.Error())
			}
			req.VisitorName = fields.VisitorName
			req.PdlName = fields.PdlName
			req.Cell = fields.Cell
			req.Relationship = fields.Relationship
			req.ContactNumber = fields.ContactNumber
		}

		if strings.TrimSpace(req.VisitorName) == "" || strings.TrimSpace(req.PdlName) == "" || strings.TrimSpace(req.Cell) == "" {
			return kit.BadRequest("visitor_name, pdl_name and cell required", nil)
		}

		purpose, err := parsePurpose(req.Purpose)
		if err != nil {
			return err
		}

		triple := resolver.NewTriple(req.VisitorName, req.PdlName, req.Cell)

		// schedule gate comes before debounce and before any store access
		if !d.Gate.IsScheduled(triple.Cell) {
			return kit.Unprocessable("E_CELL_NOT_SCHEDULED", "cell is not scheduled for visits today", triple.Cell)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if req.OnlyCheck {
			action, err := d.Resolver.Preflight(ctx, triple)
			if err != nil {
				return kit.InternalError("preflight failed", err.Error())
			}
			return kit.OK(c, fiber.Map{"action": string(action)})
		}

		if d.Guard.ShouldSuppress(triple.Signature(), time.Now()) {
			return kit.OK(c, fiber.Map{"suppressed": true})
		}

		res, err := d.Resolver.Commit(ctx, resolver.CommitInput{
			Triple:        triple,
			Purpose:       purpose,
			Relationship:  req.Relationship,
			ContactNumber: req.ContactNumber,
			DeviceTime:    req.DeviceTime,
		})
		if errors.Is(err, resolver.ErrConcurrentScan) {
			return kit.Conflict("E_CONCURRENT_SCAN", "another scan for this visit is in flight, re-scan", nil)
		}
		if err != nil {
			return kit.InternalError("commit failed", err.Error())
		}

		publishResult(ctx, d, triple, purpose, res)

		body := fiber.Map{
			"action":  string(res.Kind),
			"id":      res.SessionID,
			"time_in": res.TimeIn,
		}
		if res.TimeOut != nil {
			body["time_out"] = res.TimeOut
		}
		return kit.OK(c, body)
	}
}

func parsePurpose(s string) (visitsession.Purpose, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return visitsession.PurposeNormal, nil
	case "normal":
		return visitsession.PurposeNormal, nil
	case "conjugal":
		return visitsession.PurposeConjugal, nil
	default:
		return "", kit.BadRequest("purpose must be normal or conjugal", s)
	}
}

// publishResult emits the MQ event and refreshes the search index.
// Both are best-effort; the committed decision is already durable.
func publishResult(ctx context.Context, d *Deps, t resolver.Triple, purpose visitsession.Purpose, res resolver.Result) {
	if d.MQ != nil {
		evt := map[string]any{
			"type":         "visit." + string(res.Kind),
			"id":           res.SessionID,
			"visitor_name": t.VisitorName,
			"pdl_name":     t.PdlName,
			"cell":         t.Cell,
		}
		b, _ := json.Marshal(evt)
		if err := d.MQ.Publish(ctx, "visit."+string(res.Kind), b); err != nil {
			scanLogger.Sugar().Warnf("publish visit event: %v", err)
		}
	}
	if d.ES != nil {
		doc := esx.VisitDoc{
			ID:          res.SessionID.String(),
			VisitorName: t.VisitorName,
			PdlName:     t.PdlName,
			Cell:        t.Cell,
			Purpose:     string(purpose),
			TimeIn:      res.TimeIn.UTC().Format(time.RFC3339Nano),
			ScanDate:    res.TimeIn.UTC().Format("2006-01-02"),
		}
		if res.TimeOut != nil {
			doc.TimeOut = res.TimeOut.UTC().Format(time.RFC3339Nano)
		}
		if err := esx.IndexVisit(ctx, d.ES, "visits", doc); err != nil {
			scanLogger.Sugar().Warnf("index visit: %v", err)
		}
	}
}
