//go:build integration
// +build integration

package db

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"visitlog/ent/visitsession"
	"visitlog/internal/config"
	"visitlog/internal/resolver"
)

func Test_Open_With_PostgresContainer(t *testing.T) {
	ctx := context.Background()

	pg, err := postgres.RunContainer(ctx,
		postgres.WithDatabase("visitlog"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithSQLDriver("pgx"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	host, err := pg.Host(ctx)
	if err != nil {
		t.Fatalf("get container host: %v", err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("get container port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/visitlog?sslmode=disable", host, port.Port())

	cfg := &config.Config{}
	cfg.PG.URL = dsn
	cfg.PG.MaxOpenConns = 10
	cfg.PG.MaxIdleConns = 2

	c, closeFn, err := Open(cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer closeFn()

	ctx2, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := c.Schema.Create(ctx2); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	r := resolver.New(c)
	triple := resolver.NewTriple("Maria Santos", "Juan Cruz", "A-1")

	// A burst of concurrent scans of the same code must never leave more
	// than one open session. The partial unique index does the real work;
	// losers surface as ErrConcurrentScan.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Commit(ctx2, resolver.CommitInput{Triple: triple})
			if err != nil && !errors.Is(err, resolver.ErrConcurrentScan) {
				t.Errorf("commit: %v", err)
			}
		}()
	}
	wg.Wait()

	open, err := c.VisitSession.Query().
		Where(
			visitsession.VisitorKeyEQ(triple.VisitorKey),
			visitsession.TimeOutIsNil(),
		).
		Count(ctx2)
	if err != nil {
		t.Fatalf("count open sessions: %v", err)
	}
	if open > 1 {
		t.Fatalf("open sessions = %d, want at most 1", open)
	}

	// Settle state: keep scanning until the session is closed, then the
	// next scan must open a fresh one.
	for i := 0; i < 2; i++ {
		if _, err := r.Commit(ctx2, resolver.CommitInput{Triple: triple}); err != nil && !errors.Is(err, resolver.ErrConcurrentScan) {
			t.Fatalf("commit %d: %v", i, err)
		}
	}
	total, err := c.VisitSession.Query().Count(ctx2)
	if err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if total < 1 {
		t.Fatalf("sessions = %d, want at least 1", total)
	}
}
