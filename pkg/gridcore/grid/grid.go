// Package grid implements the sparse cell store backing each sheet.
//
// A Grid maps cell addresses to string values. A key is present if and only
// if its value is non-empty, so storage and iteration stay proportional to
// the number of occupied cells rather than the logical grid area.
package grid

import (
	"sort"

	"github.com/ukaji3/gridcore-go/pkg/gridcore/models"
)

const (
	// MaxRows is the logical row count exposed to views.
	MaxRows = 2000
	// MaxColumns is the logical column count exposed to views.
	MaxColumns = 200
)

// Grid is a sparse mapping from address to non-empty value.
type Grid map[models.Address]string

// New returns an empty grid.
func New() Grid {
	return make(Grid)
}

// Get returns the value at addr, or "" when the cell is empty.
func (g Grid) Get(addr models.Address) string {
	return g[addr]
}

// Set writes value at addr. An empty value removes the key.
func (g Grid) Set(addr models.Address, value string) {
	if value == "" {
		delete(g, addr)
		return
	}
	g[addr] = value
}

// Has reports whether addr holds a non-empty value.
func (g Grid) Has(addr models.Address) bool {
	_, ok := g[addr]
	return ok
}

// Len returns the number of occupied cells.
func (g Grid) Len() int {
	return len(g)
}

// Addresses returns the occupied addresses in row-major order.
func (g Grid) Addresses() []models.Address {
	out := make([]models.Address, 0, len(g))
	for addr := range g {
		out = append(out, addr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Columns returns the sorted set of columns holding at least one value anywhere in the grid.
func (g Grid) Columns() []int {
	seen := make(map[int]struct{})
	for addr := range g {
		seen[addr.Col] = struct{}{}
	}
	return sortedKeys(seen)
}

// Rows returns the sorted set of rows holding at least one value anywhere in the grid.
func (g Grid) Rows() []int {
	seen := make(map[int]struct{})
	for addr := range g {
		seen[addr.Row] = struct{}{}
	}
	return sortedKeys(seen)
}

// Bounds returns the bounding box of occupied cells.
// ok is false when the grid is empty.
func (g Grid) Bounds() (r models.Range, ok bool) {
	for addr := range g {
		if !ok {
			r = models.Range{R1: addr.Row, C1: addr.Col, R2: addr.Row, C2: addr.Col}
			ok = true
			continue
		}
		r = r.Extend(addr)
	}
	return r, ok
}

// Extent returns the largest occupied row and column.
// Both are -1 when the grid is empty.
func (g Grid) Extent() (maxRow, maxCol int) {
	maxRow, maxCol = -1, -1
	for addr := range g {
		maxRow = max(maxRow, addr.Row)
		maxCol = max(maxCol, addr.Col)
	}
	return maxRow, maxCol
}

// Snapshot reads the current value of every address, keeping the first
// occurrence of duplicates.
func (g Grid) Snapshot(addrs []models.Address) map[models.Address]string {
	out := make(map[models.Address]string, len(addrs))
	for _, addr := range addrs {
		if _, ok := out[addr]; ok {
			continue
		}
		out[addr] = g.Get(addr)
	}
	return out
}

// Swap exchanges the values of two cells.
func (g Grid) Swap(a, b models.Address) {
	va, vb := g.Get(a), g.Get(b)
	g.Set(b, va)
	g.Set(a, vb)
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
