package grid

import "github.com/gravitas-015/hexgrid/hex"

// Adjacent returns the in-bounds neighbors of tile (x, y): six for interior
// tiles, fewer on edges and corners. The result is a set; order carries no
// meaning. An out-of-bounds (x, y) has no neighbors and yields nil.
func (g *Grid[T]) Adjacent(x, y int) []hex.Offset {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.AppendAdjacent(make([]hex.Offset, 0, 6), x, y)
}

// AppendAdjacent appends the neighbors of (x, y) to dst and returns the
// extended slice.
func (g *Grid[T]) AppendAdjacent(dst []hex.Offset, x, y int) []hex.Offset {
	if !g.InBounds(x, y) {
		return dst
	}

	// diagonals sit on the row above for even columns, below for odd ones
	dy := -1
	if x&1 != 0 {
		dy = 1
	}
	if dy < 0 && y > 0 || dy > 0 && y < g.width-1 {
		dst = append(dst, hex.Offset{X: x, Y: y + dy})
		if x > 0 {
			dst = append(dst, hex.Offset{X: x - 1, Y: y + dy})
		}
		if x < g.height-1 {
			dst = append(dst, hex.Offset{X: x + 1, Y: y + dy})
		}
	}

	// straight neighbor on the other side
	if dy < 0 && y < g.width-1 || dy > 0 && y > 0 {
		dst = append(dst, hex.Offset{X: x, Y: y - dy})
	}

	if x > 0 {
		dst = append(dst, hex.Offset{X: x - 1, Y: y})
	}
	if x < g.height-1 {
		dst = append(dst, hex.Offset{X: x + 1, Y: y})
	}
	return dst
}
