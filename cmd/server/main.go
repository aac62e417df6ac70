// Package main is the entry point for the visit log API server
//
//	@title			Jail Visit Log API
//	@version		1.0
//	@description	Visitation logging for a detention facility: QR scan resolution, visitor registry and schedule management
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in						header
//	@name					Authorization
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"visitlog/ent/staffuser"
	"visitlog/internal/config"
	"visitlog/internal/db"
	"visitlog/internal/debounce"
	"visitlog/internal/esx"
	"visitlog/internal/httpx"
	"visitlog/internal/httpx/auth"
	"visitlog/internal/httpx/cells"
	"visitlog/internal/httpx/kit"
	"visitlog/internal/logx"
	"visitlog/internal/mqx"
	"visitlog/internal/redisx"
	"visitlog/internal/schedule"
	"visitlog/internal/server"

	_ "visitlog/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// Load config (env first; optional Apollo override)
	cfg, store, apClose, err := config.Load()
	if err != nil {
		panic(err)
	}
	if apClose != nil {
		defer apClose()
	}

	logx.Init(cfg.Log.Level, cfg.Log.Format)
	mainLogger := logx.GetScope("main")

	mainLogger.Info("config loaded",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.Server.Addr),
		zap.String("log.level", cfg.Log.Level),
		zap.Int("scan.debounce_ms", cfg.Scan.DebounceMs),
	)

	// Open DB (Ent + pgx)
	client, closeDB, err := db.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Error("open db error", "err", err)
		panic(err)
	}
	defer closeDB()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		mainLogger.Sugar().Error("auto migrate error", "err", err)
		panic(err)
	}

	// Bootstrap admin account from env on first start
	if cfg.Admin.Username != "" && cfg.Admin.Password != "" {
		n, err := client.StaffUser.Query().Where(staffuser.UsernameEQ(cfg.Admin.Username)).Count(ctx)
		if err == nil && n == 0 {
			hash, err := auth.HashPassword(cfg.Admin.Password)
			if err == nil {
				_, err = client.StaffUser.Create().
					SetUsername(cfg.Admin.Username).
					SetPasswordHash(hash).
					SetRole(staffuser.RoleAdmin).
					Save(ctx)
			}
			if err != nil {
				mainLogger.Sugar().Warn("bootstrap admin failed", "err", err)
			} else {
				mainLogger.Sugar().Infof("bootstrap admin %q created", cfg.Admin.Username)
			}
		}
	}

	// Seed the schedule gate from currently active cells
	gate := schedule.New()
	if codes, err := cells.ActiveCodes(ctx, client); err != nil {
		mainLogger.Sugar().Warn("load active cells failed", "err", err)
	} else {
		gate.Replace(codes)
		mainLogger.Sugar().Infof("schedule gate loaded with %d cells", gate.Len())
	}
	guard := debounce.New(time.Duration(cfg.Scan.DebounceMs) * time.Millisecond)

	// Optional deps: Redis, MQ, ES
	var mqClose func() error
	rdb, rclose, err := redisx.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Warn("redis init failed", "err", err)
	} else {
		defer rclose()
	}

	var publisher mqx.Publisher
	if cfg.MQ.URL != "" {
		if pub, err := mqx.NewRabbitPublisher(cfg.MQ.URL, "visits"); err != nil {
			mainLogger.Sugar().Warn("mq init failed", "err", err)
		} else {
			publisher = pub
			mqClose = pub.Close
			defer func() {
				if mqClose != nil {
					_ = mqClose()
				}
			}()
		}
	}

	esClient, esClose, err := esx.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Warn("es init failed", "err", err)
	} else {
		defer esClose()
	}

	// Fiber app and routes
	app := fiber.New(fiber.Config{ErrorHandler: kit.ErrorHandler()})
	httpx.RegisterCommonMiddlewares(app)
	providers := &httpx.Providers{MQ: publisher, ES: esClient, Redis: rdb, Gate: gate, Guard: guard}
	httpx.Register(app, cfg, client, providers)

	// Watch for dynamic config changes (Apollo)
	// Validators: rollback strategy for invalid config
	store.AddValidator(func(newCfg *config.Config, changed map[string]bool) error {
		if changed["pg.max_open"] || changed["pg.max_idle"] {
			if newCfg.PG.MaxIdleConns > newCfg.PG.MaxOpenConns {
				return fmt.Errorf("PG_MAX_IDLE cannot exceed PG_MAX_OPEN")
			}
		}
		if changed["scan.debounce_ms"] && newCfg.Scan.DebounceMs < 0 {
			return fmt.Errorf("SCAN_DEBOUNCE_MS cannot be negative")
		}
		return nil
	})

	store.Watch(func(newCfg *config.Config, changed map[string]bool) {
		if changed["pg.max_open"] || changed["pg.max_idle"] {
			db.UpdatePool(newCfg.PG.MaxOpenConns, newCfg.PG.MaxIdleConns)
			mainLogger.Info("db pool updated",
				zap.Int("max_open", newCfg.PG.MaxOpenConns),
				zap.Int("max_idle", newCfg.PG.MaxIdleConns),
			)
		}
		if changed["scan.debounce_ms"] {
			guard.SetWindow(time.Duration(newCfg.Scan.DebounceMs) * time.Millisecond)
			mainLogger.Info("debounce window updated", zap.Int("ms", newCfg.Scan.DebounceMs))
		}
		if changed["pg.url"] {
			mainLogger.Warn("pg.url changed; restart required to reconnect")
		}
		if changed["server.addr"] {
			mainLogger.Warn("server.addr changed; restart required to take effect",
				zap.String("addr", newCfg.Server.Addr),
			)
		}
		if changed["log.level"] || changed["log.format"] {
			logx.Init(newCfg.Log.Level, newCfg.Log.Format)
			mainLogger.Info("logger reconfigured",
				zap.String("level", newCfg.Log.Level),
				zap.String("format", newCfg.Log.Format),
			)
		}
	})

	// Graceful shutdown
	go func() {
		ln, err := server.GetListener(cfg.Server.Addr)
		if err != nil {
			mainLogger.Sugar().Errorf("listener error: %v", err)
			return
		}
		if err := app.Listener(ln); err != nil {
			mainLogger.Sugar().Infof("fiber exit: %v", err)
		}
	}()
	mainLogger.Sugar().Infof("server started on %s", cfg.Server.Addr)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	mainLogger.Sugar().Info("shutting down...")
	_ = app.Shutdown()
}
