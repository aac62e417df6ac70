package schedule

import (
	"sync"
	"testing"
)

func TestGate_ReplaceAndCheck(t *testing.T) {
	g := New()
	if g.IsScheduled("a1") {
		t.Fatal("empty gate should reject everything")
	}
	g.Replace([]string{"A1", " b2 ", ""})
	if !g.IsScheduled("a1") || !g.IsScheduled("A1") || !g.IsScheduled("b2") {
		t.Fatal("scheduled cells should pass, case-insensitively")
	}
	if g.IsScheduled("b9") {
		t.Fatal("unscheduled cell should fail")
	}
	if g.Len() != 2 {
		t.Fatalf("len=%d, want 2", g.Len())
	}
}

func TestGate_AddRemoveClear(t *testing.T) {
	g := New()
	g.Add("C3")
	if !g.IsScheduled("c3") {
		t.Fatal("added cell missing")
	}
	g.Remove("c3")
	if g.IsScheduled("c3") {
		t.Fatal("removed cell still scheduled")
	}
	g.Replace([]string{"a1", "b2"})
	g.Clear()
	if g.Len() != 0 {
		t.Fatal("clear should empty the set")
	}
}

func TestGate_Snapshot(t *testing.T) {
	g := New()
	g.Replace([]string{"b2", "a1"})
	snap := g.Snapshot()
	if len(snap) != 2 || snap[0] != "a1" || snap[1] != "b2" {
		t.Fatalf("snapshot=%v, want sorted [a1 b2]", snap)
	}
}

func TestGate_ConcurrentReads(t *testing.T) {
	g := New()
	g.Replace([]string{"a1"})
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.IsScheduled("a1")
			g.Add("b2")
		}()
	}
	wg.Wait()
	if !g.IsScheduled("b2") {
		t.Fatal("concurrent add lost")
	}
}
