// Package grid implements the board as a fixed-size matrix of cell markers.
//
// Grids are values: every update returns a fresh copy, so a snapshot handed
// to the renderer can never observe a half-applied tick. There is exactly
// one writer (the state manager), which makes copying the whole
// synchronization story.
package grid

import (
	"fmt"

	"gosnake/game/types"
)

// Grid is a width x height matrix of markers. The zero value is unusable;
// construct with Empty.
type Grid struct {
	width  int
	height int
	cells  []types.Marker // row-major
}

// Empty returns a grid of the given dimensions with every cell Empty.
func Empty(width, height int) Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", width, height))
	}
	return Grid{
		width:  width,
		height: height,
		cells:  make([]types.Marker, width*height),
	}
}

func (g Grid) Width() int  { return g.width }
func (g Grid) Height() int { return g.height }

// Contains reports whether p lies inside the grid bounds.
func (g Grid) Contains(p types.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Get returns the marker at p. Callers are expected to bounds-check through
// the collision manager first; an out-of-range access is an invariant
// violation and panics rather than clamping.
func (g Grid) Get(p types.Point) types.Marker {
	if !g.Contains(p) {
		panic(fmt.Sprintf("grid: position (%d,%d) out of range [0,%d)x[0,%d)", p.X, p.Y, g.width, g.height))
	}
	return g.cells[p.Y*g.width+p.X]
}

// WithMarker returns a copy of the grid with the cell at p set to m.
// The receiver is unchanged.
func (g Grid) WithMarker(p types.Point, m types.Marker) Grid {
	if !g.Contains(p) {
		panic(fmt.Sprintf("grid: position (%d,%d) out of range [0,%d)x[0,%d)", p.X, p.Y, g.width, g.height))
	}
	next := g.clone()
	next.cells[p.Y*g.width+p.X] = m
	return next
}

// ClearMarker returns a copy of the grid with every cell equal to m reset
// to Empty. Used to erase a consumed apple.
func (g Grid) ClearMarker(m types.Marker) Grid {
	next := g.clone()
	for i, c := range next.cells {
		if c == m {
			next.cells[i] = types.Empty
		}
	}
	return next
}

// Count returns the number of cells holding m.
func (g Grid) Count(m types.Marker) int {
	n := 0
	for _, c := range g.cells {
		if c == m {
			n++
		}
	}
	return n
}

// Find returns the position of the first cell holding m, scanning row by row.
func (g Grid) Find(m types.Marker) (types.Point, bool) {
	for i, c := range g.cells {
		if c == m {
			return types.Point{X: i % g.width, Y: i / g.width}, true
		}
	}
	return types.Point{}, false
}

// Corners returns the four corner positions of the grid.
func (g Grid) Corners() [4]types.Point {
	return [4]types.Point{
		{X: 0, Y: 0},
		{X: g.width - 1, Y: 0},
		{X: 0, Y: g.height - 1},
		{X: g.width - 1, Y: g.height - 1},
	}
}

func (g Grid) clone() Grid {
	cells := make([]types.Marker, len(g.cells))
	copy(cells, g.cells)
	return Grid{width: g.width, height: g.height, cells: cells}
}
