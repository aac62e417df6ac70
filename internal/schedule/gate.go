// Package schedule holds the set of cells open for visits today.
//
// The set is process-local. It is populated at day start (boot, or an admin
// reload), read-only during the day, and cleared by an admin action. A
// multi-instance deployment needs a shared store instead.
package schedule

import (
	"sort"
	"strings"
	"sync"
)

// Gate answers whether a cell is scheduled for visits.
type Gate struct {
	mu    sync.RWMutex
	cells map[string]struct{}
}

func New() *Gate {
	return &Gate{cells: make(map[string]struct{})}
}

func normalize(cell string) string {
	return strings.ToLower(strings.TrimSpace(cell))
}

// Replace swaps the whole scheduled set.
func (g *Gate) Replace(cells []string) {
	next := make(map[string]struct{}, len(cells))
	for _, c := range cells {
		if n := normalize(c); n != "" {
			next[n] = struct{}{}
		}
	}
	g.mu.Lock()
	g.cells = next
	g.mu.Unlock()
}

// Add schedules a single cell.
func (g *Gate) Add(cell string) {
	n := normalize(cell)
	if n == "" {
		return
	}
	g.mu.Lock()
	g.cells[n] = struct{}{}
	g.mu.Unlock()
}

// Remove unschedules a single cell.
func (g *Gate) Remove(cell string) {
	g.mu.Lock()
	delete(g.cells, normalize(cell))
	g.mu.Unlock()
}

// Clear empties the set (end-of-day admin action).
func (g *Gate) Clear() {
	g.mu.Lock()
	g.cells = make(map[string]struct{})
	g.mu.Unlock()
}

// IsScheduled reports whether the cell is open for visits today.
func (g *Gate) IsScheduled(cell string) bool {
	g.mu.RLock()
	_, ok := g.cells[normalize(cell)]
	g.mu.RUnlock()
	return ok
}

// Snapshot returns the scheduled cells, sorted.
func (g *Gate) Snapshot() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	g.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Len returns the number of scheduled cells.
func (g *Gate) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.cells)
}
