// Package grid provides Grid, a fixed-size hex tiling stored in a flat slice.
//
// Tile (x, y) lives at index x*width + y. The x axis is bounded by Height and
// the y axis by Width. Neighbors follow the offset layout described in package
// hex.
//
// A Grid does no locking. Concurrent readers are fine; a writer must not
// overlap with any other access.
package grid

import (
	"fmt"
	"math"
)

// Grid is a height x width hex tiling holding one T per tile.
type Grid[T any] struct {
	height int
	width  int
	tiles  []T
}

// New creates a grid with every tile set to a copy of def. Negative
// dimensions are treated as zero. New panics if height*width overflows int.
func New[T any](height, width int, def T) *Grid[T] {
	g := alloc[T](height, width)
	for i := range g.tiles {
		g.tiles[i] = def
	}
	return g
}

// NewFunc creates a grid filling each tile with fill(x, y). Use it when T
// holds references and every tile needs its own copy.
func NewFunc[T any](height, width int, fill func(x, y int) T) *Grid[T] {
	g := alloc[T](height, width)
	for x := 0; x < g.height; x++ {
		for y := 0; y < g.width; y++ {
			g.tiles[x*g.width+y] = fill(x, y)
		}
	}
	return g
}

func alloc[T any](height, width int) *Grid[T] {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	n, ok := area(height, width)
	if !ok {
		panic(fmt.Sprintf("grid: %dx%d tiles overflows int", height, width))
	}
	return &Grid[T]{height: height, width: width, tiles: make([]T, n)}
}

// area returns height*width for non-negative dimensions, or false when the
// product does not fit in an int.
func area(height, width int) (int, bool) {
	if width != 0 && height > math.MaxInt/width {
		return 0, false
	}
	return height * width, true
}

// Height returns the number of columns (valid x values).
func (g *Grid[T]) Height() int { return g.height }

// Width returns the number of rows (valid y values).
func (g *Grid[T]) Width() int { return g.width }

// Len returns the number of tiles.
func (g *Grid[T]) Len() int { return len(g.tiles) }

// InBounds reports whether (x, y) addresses a tile.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.height && y >= 0 && y < g.width
}

// Get returns the tile at (x, y). ok is false when the coordinate is out of
// bounds.
func (g *Grid[T]) Get(x, y int) (v T, ok bool) {
	if !g.InBounds(x, y) {
		return v, false
	}
	return g.tiles[x*g.width+y], true
}

// Ref returns a pointer to the tile at (x, y), or nil when out of bounds.
// The pointer stays valid until the grid is overwritten by a decode.
func (g *Grid[T]) Ref(x, y int) *T {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.tiles[x*g.width+y]
}

// Set overwrites the tile at (x, y) and reports whether it was in bounds.
func (g *Grid[T]) Set(x, y int, v T) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.tiles[x*g.width+y] = v
	return true
}

// Each calls fn for every tile in storage order until fn returns false.
func (g *Grid[T]) Each(fn func(x, y int, v T) bool) {
	for i, v := range g.tiles {
		if !fn(i/g.width, i%g.width, v) {
			return
		}
	}
}
