package debounce

import (
	"testing"
	"time"
)

func TestGuard_SuppressWithinWindow(t *testing.T) {
	g := New(5000 * time.Millisecond)
	base := time.Now()
	if g.ShouldSuppress("jane|john|a1", base) {
		t.Fatal("first scan must pass")
	}
	if !g.ShouldSuppress("jane|john|a1", base.Add(4999*time.Millisecond)) {
		t.Fatal("repeat inside window must be suppressed")
	}
}

func TestGuard_PassOutsideWindow(t *testing.T) {
	g := New(5000 * time.Millisecond)
	base := time.Now()
	g.ShouldSuppress("sig", base)
	if g.ShouldSuppress("sig", base.Add(5001*time.Millisecond)) {
		t.Fatal("repeat after window must pass")
	}
}

func TestGuard_DifferentSignaturePasses(t *testing.T) {
	g := New(5000 * time.Millisecond)
	base := time.Now()
	g.ShouldSuppress("a", base)
	if g.ShouldSuppress("b", base.Add(time.Millisecond)) {
		t.Fatal("different signature must pass")
	}
	// slot now holds "b"; "a" passes again even though it is recent
	if g.ShouldSuppress("a", base.Add(2*time.Millisecond)) {
		t.Fatal("single-slot guard tracks only the most recent signature")
	}
}

func TestGuard_BurstKeepsRefreshing(t *testing.T) {
	g := New(5000 * time.Millisecond)
	base := time.Now()
	g.ShouldSuppress("sig", base)
	for i := 1; i <= 3; i++ {
		at := base.Add(time.Duration(i) * 4 * time.Second)
		if !g.ShouldSuppress("sig", at) {
			t.Fatalf("scan %d should still be suppressed, window refreshes", i)
		}
	}
}

func TestGuard_DefaultWindow(t *testing.T) {
	g := New(0)
	base := time.Now()
	g.ShouldSuppress("sig", base)
	if !g.ShouldSuppress("sig", base.Add(DefaultWindow-time.Millisecond)) {
		t.Fatal("zero window should fall back to the default")
	}
}

func TestGuard_SetWindow(t *testing.T) {
	g := New(5000 * time.Millisecond)
	g.SetWindow(100 * time.Millisecond)
	base := time.Now()
	g.ShouldSuppress("sig", base)
	if g.ShouldSuppress("sig", base.Add(101*time.Millisecond)) {
		t.Fatal("shrunk window should let the repeat pass")
	}
}
