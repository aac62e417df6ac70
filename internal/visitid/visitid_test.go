package visitid

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
	"regexp"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"visitlog/ent"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestGenerate_Format(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	id := Generate(now, func(int) int { return 7 })
	if id != "VIS-26-000007" {
		t.Fatalf("id=%q, want VIS-26-000007", id)
	}
	re := regexp.MustCompile(`^VIS-\d{2}-\d{6}$`)
	for i := 0; i < 100; i++ {
		if got := Generate(now, rand.IntN); !re.MatchString(got) {
			t.Fatalf("id=%q does not match VIS-YY-NNNNNN", got)
		}
	}
}

func TestRegister_UniqueIDs(t *testing.T) {
	client := newTestClient(t)
	r := NewRegistrar(client)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		v, err := r.Register(ctx, Profile{FullName: fmt.Sprintf("Visitor %d", i)})
		if err != nil {
			t.Fatalf("register %d: %v", i, err)
		}
		if seen[v.VisitorID] {
			t.Fatalf("duplicate visitor_id %s", v.VisitorID)
		}
		seen[v.VisitorID] = true
	}
}

func TestRegister_RetriesOnCollision(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// a rigged sequence: the first candidate collides with an existing row,
	// the second one is free
	seq := []int{123456, 123456, 654321}
	i := 0
	r := &Registrar{client: client, now: time.Now, intn: func(int) int {
		n := seq[i%len(seq)]
		i++
		return n
	}}

	first, err := r.Register(ctx, Profile{FullName: "First"})
	if err != nil {
		t.Fatalf("register first: %v", err)
	}
	second, err := r.Register(ctx, Profile{FullName: "Second"})
	if err != nil {
		t.Fatalf("register second should retry past the collision: %v", err)
	}
	if first.VisitorID == second.VisitorID {
		t.Fatalf("collision not resolved: %s", first.VisitorID)
	}
}

func TestRegister_ExhaustsRetries(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// every candidate is the same number: after the first insert succeeds,
	// the next registration can never find a free id
	r := &Registrar{client: client, now: time.Now, intn: func(int) int { return 42 }}

	if _, err := r.Register(ctx, Profile{FullName: "Holder"}); err != nil {
		t.Fatalf("register holder: %v", err)
	}
	_, err := r.Register(ctx, Profile{FullName: "Blocked"})
	if err != ErrExhaustedRetries {
		t.Fatalf("err=%v, want ErrExhaustedRetries", err)
	}
}

func TestRegister_OtherConstraintNotRetried(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	calls := 0
	r := &Registrar{client: client, now: time.Now, intn: func(n int) int {
		calls++
		return rand.IntN(n)
	}}

	// empty full_name violates the NOT NULL/NotEmpty validator, which must
	// propagate without burning id attempts
	_, err := r.Register(ctx, Profile{FullName: ""})
	if err == nil {
		t.Fatal("want validation error")
	}
	if err == ErrExhaustedRetries {
		t.Fatal("non-id failures must not be retried to exhaustion")
	}
}
