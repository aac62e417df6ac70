// Package httpx wires the HTTP surface: middleware, routes and the
// swagger UI.
package httpx

import (
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"github.com/gofiber/fiber/v2"

	"visitlog/ent"
	"visitlog/internal/config"
	"visitlog/internal/debounce"
	"visitlog/internal/esx"
	"visitlog/internal/httpx/admin"
	"visitlog/internal/httpx/auth"
	"visitlog/internal/httpx/cells"
	"visitlog/internal/httpx/kit"
	"visitlog/internal/httpx/mw"
	"visitlog/internal/httpx/pdls"
	"visitlog/internal/httpx/scans"
	"visitlog/internal/httpx/sessions"
	"visitlog/internal/httpx/visitors"
	"visitlog/internal/mqx"
	"visitlog/internal/redisx"
	"visitlog/internal/resolver"
	"visitlog/internal/schedule"
	"visitlog/internal/visitid"
)

// Providers carries the optional backing services. Nil members degrade the
// corresponding feature instead of failing startup.
type Providers struct {
	MQ    mqx.Publisher
	ES    *esx.Client
	Redis *redisx.Client
	Gate  *schedule.Gate
	Guard *debounce.Guard
}

// Register mounts all routes on the app.
func Register(app *fiber.App, cfg *config.Config, client *ent.Client, p *Providers) {
	if p == nil {
		p = &Providers{}
	}
	if p.Gate == nil {
		p.Gate = schedule.New()
	}
	if p.Guard == nil {
		p.Guard = debounce.New(debounce.DefaultWindow)
	}

	app.Use(mw.JWTMiddlewareDynamic(auth.TokenParser(cfg)))

	app.Get("/health", HealthHandler)
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	app.Post("/auth/login", auth.LoginHandler(cfg, client))
	app.Post("/auth/refresh", auth.RefreshHandler(cfg, client))
	app.Post("/auth/logout", auth.LogoutHandler())
	app.Get("/auth/me", auth.MeHandler(client))

	scanDeps := &scans.Deps{
		Resolver: resolver.New(client),
		Gate:     p.Gate,
		Guard:    p.Guard,
		MQ:       p.MQ,
		ES:       p.ES,
	}
	scanLimit := mw.RateLimitDefault(p.Redis, cfg.Scan.RateWindowSec, cfg.Scan.RateLimit)
	app.Post("/scanned_visitors", scanLimit, scans.ScanHandler(scanDeps))

	app.Get("/scanned_visitors", sessions.ListSessionsHandler(client))
	app.Put("/scanned_visitors/:id", mw.RequireStaff(), sessions.CorrectSessionHandler(client))
	app.Delete("/scanned_visitors/:id", mw.RequireRoles("admin"), sessions.DeleteSessionHandler(client))
	app.Get("/search/visits", sessions.SearchVisitsHandler(p.ES))

	registrar := visitid.NewRegistrar(client)
	app.Post("/visitors", mw.RequireStaff(), visitors.RegisterVisitorHandler(registrar))
	app.Get("/visitors", visitors.ListVisitorsHandler(client))
	app.Get("/visitors/:visitor_id", visitors.GetVisitorHandler(client))

	app.Post("/pdls", mw.RequireStaff(), pdls.CreatePdlHandler(client))
	app.Get("/pdls", pdls.ListPdlsHandler(client))
	app.Put("/pdls/:id", mw.RequireStaff(), pdls.UpdatePdlHandler(client))
	app.Delete("/pdls/:id", mw.RequireRoles("admin"), pdls.DeletePdlHandler(client))

	app.Post("/cells", mw.RequireStaff(), cells.CreateCellHandler(client))
	app.Get("/cells", cells.ListCellsHandler(client))
	app.Get("/cells/active", cells.ListActiveCellsHandler(client))
	app.Put("/cells/:id", mw.RequireStaff(), cells.UpdateCellHandler(client))
	app.Delete("/cells/:id", mw.RequireRoles("admin"), cells.DeleteCellHandler(client))

	adminGroup := app.Group("/admin", mw.RequireRoles("admin"))
	adminGroup.Post("/staff", admin.CreateStaffHandler(client))
	adminGroup.Get("/staff", admin.ListStaffHandler(client))
	adminGroup.Delete("/staff/:id", admin.DeleteStaffHandler(client))
	adminGroup.Get("/schedule", admin.ScheduleHandler(p.Gate))
	adminGroup.Post("/schedule/reload", admin.ReloadScheduleHandler(client, p.Gate))
	adminGroup.Delete("/schedule", admin.ClearScheduleHandler(p.Gate))
}

// HealthHandler reports service liveness.
//
//	@Summary      Health check
//	@Tags         health
//	@Produce      json
//	@Success      200  {object}  map[string]string
//	@Router       /health [get]
func HealthHandler(c *fiber.Ctx) error {
	return kit.OK(c, fiber.Map{"status": "ok"})
}
