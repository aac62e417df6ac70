package config

import (
	"errors"
	"testing"

	"github.com/apolloconfig/agollo/v4/agcache"
)

type fakeCache struct {
	m map[string]interface{}
}

var _ agcache.CacheInterface = (*fakeCache)(nil)

func (f *fakeCache) Set(key string, value interface{}, expireSeconds int) error {
	f.m[key] = value
	return nil
}

func (f *fakeCache) EntryCount() int64 { return int64(len(f.m)) }

func (f *fakeCache) Get(key string) (interface{}, error) {
	if v, ok := f.m[key]; ok {
		return v, nil
	}
	return nil, errors.New("key not found")
}

func (f *fakeCache) Del(key string) bool {
	_, ok := f.m[key]
	delete(f.m, key)
	return ok
}

func (f *fakeCache) Range(fn func(key, value interface{}) bool) {
	for k, v := range f.m {
		if !fn(k, v) {
			return
		}
	}
}

func (f *fakeCache) Clear() { f.m = map[string]interface{}{} }

func TestApplyApolloOverrides(t *testing.T) {
	cache := &fakeCache{m: map[string]interface{}{
		"app.env":              "production",
		"log.level":            "warn",
		"pg.max_open":          "33",
		"scan.debounce_ms":     "2500",
		"scan.rate_limit":      "90",
		"scan.rate_window_sec": "not-a-number",
	}}

	cfg := &Config{}
	cfg.AppEnv = "development"
	cfg.Server.Addr = ":8080"
	cfg.Log.Level = "info"
	cfg.PG.MaxOpenConns = 10
	cfg.Scan.DebounceMs = 5000
	cfg.Scan.RateLimit = 30
	cfg.Scan.RateWindowSec = 60

	applyApolloOverrides(cache, cfg)

	if cfg.AppEnv != "production" {
		t.Fatalf("app.env: want production, got %s", cfg.AppEnv)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("log.level: want warn, got %s", cfg.Log.Level)
	}
	if cfg.PG.MaxOpenConns != 33 {
		t.Fatalf("pg.max_open: want 33, got %d", cfg.PG.MaxOpenConns)
	}
	if cfg.Scan.DebounceMs != 2500 {
		t.Fatalf("scan.debounce_ms: want 2500, got %d", cfg.Scan.DebounceMs)
	}
	if cfg.Scan.RateLimit != 90 {
		t.Fatalf("scan.rate_limit: want 90, got %d", cfg.Scan.RateLimit)
	}
	// absent key keeps its current value; a non-numeric one is ignored
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("server.addr must be untouched, got %s", cfg.Server.Addr)
	}
	if cfg.Scan.RateWindowSec != 60 {
		t.Fatalf("scan.rate_window_sec must be untouched, got %d", cfg.Scan.RateWindowSec)
	}
}
