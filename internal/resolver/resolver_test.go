package resolver

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"visitlog/ent"
	"visitlog/ent/visitsession"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)", t.Name())
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

func openCount(t *testing.T, client *ent.Client, tr Triple) int {
	t.Helper()
	n, err := client.VisitSession.Query().
		Where(
			visitsession.VisitorKeyEQ(tr.VisitorKey),
			visitsession.PdlNameEQ(tr.PdlName),
			visitsession.CellEQ(tr.Cell),
			visitsession.TimeOutIsNil(),
		).
		Count(context.Background())
	if err != nil {
		t.Fatalf("count open: %v", err)
	}
	return n
}

func TestCommit_Alternation(t *testing.T) {
	client := newTestClient(t)
	r := New(client)
	ctx := context.Background()
	tr := NewTriple("Jane Cruz", "John Santos", "A1")

	// first scan opens
	res1, err := r.Commit(ctx, CommitInput{Triple: tr, Relationship: "Mother", ContactNumber: "09171234567"})
	if err != nil {
		t.Fatalf("commit 1: %v", err)
	}
	if res1.Kind != KindTimeIn {
		t.Fatalf("commit 1 kind=%s, want time_in", res1.Kind)
	}

	// preflight now classifies as time-out
	act, err := r.Preflight(ctx, tr)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	if act != ActionTimeOut {
		t.Fatalf("preflight=%s, want time_out", act)
	}

	// second scan closes the same session
	res2, err := r.Commit(ctx, CommitInput{Triple: tr})
	if err != nil {
		t.Fatalf("commit 2: %v", err)
	}
	if res2.Kind != KindTimeOut || res2.SessionID != res1.SessionID {
		t.Fatalf("commit 2 kind=%s session=%s, want time_out on %s", res2.Kind, res2.SessionID, res1.SessionID)
	}
	if res2.TimeOut == nil || res2.TimeOut.Before(res1.TimeIn) {
		t.Fatalf("time_out must be >= time_in")
	}

	// third scan opens a fresh session
	res3, err := r.Commit(ctx, CommitInput{Triple: tr})
	if err != nil {
		t.Fatalf("commit 3: %v", err)
	}
	if res3.Kind != KindTimeIn || res3.SessionID == res1.SessionID {
		t.Fatalf("commit 3 should open a new session, got kind=%s session=%s", res3.Kind, res3.SessionID)
	}
	if n := openCount(t, client, tr); n != 1 {
		t.Fatalf("open sessions=%d, want 1", n)
	}
}

func TestPreflight_Pure(t *testing.T) {
	client := newTestClient(t)
	r := New(client)
	ctx := context.Background()
	tr := NewTriple("Ana Lim", "Pedro Reyes", "B2")

	for i := 0; i < 5; i++ {
		act, err := r.Preflight(ctx, tr)
		if err != nil {
			t.Fatalf("preflight %d: %v", i, err)
		}
		if act != ActionTimeInPending {
			t.Fatalf("preflight %d=%s, want time_in_pending", i, act)
		}
	}
	total, err := client.VisitSession.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 0 {
		t.Fatalf("preflight created %d rows", total)
	}

	if _, err := r.Commit(ctx, CommitInput{Triple: tr}); err != nil {
		t.Fatalf("commit: %v", err)
	}
	for i := 0; i < 5; i++ {
		act, _ := r.Preflight(ctx, tr)
		if act != ActionTimeOut {
			t.Fatalf("preflight after commit=%s, want time_out", act)
		}
	}
}

func TestCommit_DeviceTime(t *testing.T) {
	client := newTestClient(t)
	r := New(client)
	ctx := context.Background()

	// a valid device clock is authoritative
	want := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	tr := NewTriple("Jane", "John", "A1")
	res, err := r.Commit(ctx, CommitInput{Triple: tr, DeviceTime: want.Format(time.RFC3339)})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if !res.TimeIn.Equal(want) {
		t.Fatalf("time_in=%s, want device time %s", res.TimeIn, want)
	}

	// a malformed device clock falls back to the server clock, never errors
	tr2 := NewTriple("Other", "John", "A1")
	before := time.Now().Add(-time.Second)
	res2, err := r.Commit(ctx, CommitInput{Triple: tr2, DeviceTime: "not-a-date"})
	if err != nil {
		t.Fatalf("commit with bad device_time: %v", err)
	}
	if res2.TimeIn.Before(before) {
		t.Fatalf("fallback time_in=%s looks wrong", res2.TimeIn)
	}
}

func TestCommit_TimeOutClampedToTimeIn(t *testing.T) {
	client := newTestClient(t)
	r := New(client)
	ctx := context.Background()
	tr := NewTriple("Jane", "John", "A1")

	in := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	if _, err := r.Commit(ctx, CommitInput{Triple: tr, DeviceTime: in.Format(time.RFC3339)}); err != nil {
		t.Fatalf("open: %v", err)
	}
	// device clock drifted behind the recorded time-in
	res, err := r.Commit(ctx, CommitInput{Triple: tr, DeviceTime: in.Add(-time.Hour).Format(time.RFC3339)})
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if res.Kind != KindTimeOut || res.TimeOut == nil || !res.TimeOut.Equal(in) {
		t.Fatalf("time_out should clamp to time_in, got %+v", res)
	}
}

func TestCommit_PurposeDefaultsToNormal(t *testing.T) {
	client := newTestClient(t)
	r := New(client)
	ctx := context.Background()

	res, err := r.Commit(ctx, CommitInput{Triple: NewTriple("Jane", "John", "A1")})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	row, err := client.VisitSession.Get(ctx, res.SessionID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row.Purpose != visitsession.PurposeNormal {
		t.Fatalf("purpose=%s, want normal", row.Purpose)
	}

	res2, err := r.Commit(ctx, CommitInput{Triple: NewTriple("Maria", "John", "A1"), Purpose: visitsession.PurposeConjugal})
	if err != nil {
		t.Fatalf("commit conjugal: %v", err)
	}
	row2, _ := client.VisitSession.Get(ctx, res2.SessionID)
	if row2.Purpose != visitsession.PurposeConjugal {
		t.Fatalf("purpose=%s, want conjugal", row2.Purpose)
	}
}

func TestTripleNormalization(t *testing.T) {
	client := newTestClient(t)
	r := New(client)
	ctx := context.Background()

	// case and surrounding whitespace are unified
	if _, err := r.Commit(ctx, CommitInput{Triple: NewTriple("  Jane Cruz  ", "John Santos", "A1")}); err != nil {
		t.Fatalf("open: %v", err)
	}
	res, err := r.Commit(ctx, CommitInput{Triple: NewTriple("JANE CRUZ", "john santos", " a1 ")})
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if res.Kind != KindTimeOut {
		t.Fatalf("kind=%s, want time_out for the same normalized triple", res.Kind)
	}

	// interior whitespace is not collapsed: a divergent spelling is a new triple
	res2, err := r.Commit(ctx, CommitInput{Triple: NewTriple("Jane Cruz", "john  santos", "a1")})
	if err != nil {
		t.Fatalf("commit divergent: %v", err)
	}
	if res2.Kind != KindTimeIn {
		t.Fatalf("kind=%s, want time_in for a divergent spelling", res2.Kind)
	}
}

// TestCommit_AtMostOneOpen fans concurrent commits at one triple and checks
// that the partial unique index keeps at most one session open.
func TestCommit_AtMostOneOpen(t *testing.T) {
	client := newTestClient(t)
	r := New(client)
	tr := NewTriple("Jane Cruz", "John Santos", "A1")

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// racing commits may lose with ErrConcurrentScan or a busy
			// store; both are fine, the invariant is what matters
			_, _ = r.Commit(context.Background(), CommitInput{Triple: tr})
		}()
	}
	wg.Wait()

	if n := openCount(t, client, tr); n > 1 {
		t.Fatalf("open sessions=%d, invariant allows at most 1", n)
	}
}

func TestCommit_ScanDateIsDayOfTimeIn(t *testing.T) {
	client := newTestClient(t)
	r := New(client)
	ctx := context.Background()

	in := time.Date(2026, 3, 14, 23, 45, 0, 0, time.UTC)
	res, err := r.Commit(ctx, CommitInput{Triple: NewTriple("Jane", "John", "A1"), DeviceTime: in.Format(time.RFC3339)})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	row, _ := client.VisitSession.Get(ctx, res.SessionID)
	y, m, d := row.ScanDate.Date()
	if y != 2026 || m != time.March || d != 14 {
		t.Fatalf("scan_date=%s, want 2026-03-14", row.ScanDate)
	}
}

func TestCommit_CloseRaceReportsAlreadyTimedOut(t *testing.T) {
	client := newTestClient(t)
	r := New(client)
	ctx := context.Background()
	tr := NewTriple("Jane Cruz", "John Santos", "A1")

	res1, err := r.Commit(ctx, CommitInput{Triple: tr})
	if err != nil {
		t.Fatalf("commit 1: %v", err)
	}

	// close the session after the commit has read it as open but before
	// its compare-and-set runs, as a rival scanner would
	r.beforeClose = func(ctx context.Context, tx *ent.Tx) {
		n, err := tx.VisitSession.Update().
			Where(visitsession.IDEQ(res1.SessionID), visitsession.TimeOutIsNil()).
			SetTimeOut(time.Now()).
			Save(ctx)
		if err != nil || n != 1 {
			t.Fatalf("rival close: n=%d err=%v", n, err)
		}
	}
	res2, err := r.Commit(ctx, CommitInput{Triple: tr})
	if err != nil {
		t.Fatalf("commit 2: %v", err)
	}
	if res2.Kind != KindAlreadyTimedOut {
		t.Fatalf("commit 2 kind=%s, want already_timed_out", res2.Kind)
	}
	if res2.SessionID != res1.SessionID {
		t.Fatalf("commit 2 session=%s, want %s", res2.SessionID, res1.SessionID)
	}
	if res2.TimeOut == nil {
		t.Fatalf("already_timed_out must carry the rival's time_out")
	}
	if n := openCount(t, client, tr); n != 0 {
		t.Fatalf("open sessions=%d, want 0", n)
	}
}
