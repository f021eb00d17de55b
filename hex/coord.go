// Package hex holds the coordinate types of an offset hex tiling and the
// projection of those coordinates onto the plane.
//
// The tiling is flat-top with columns along X. Odd columns sit half a hex
// lower than even columns, so an even column's diagonal neighbors are on the
// row above and an odd column's are on the row below.
package hex

// Offset is a tile address: X selects the column, Y the row within it.
type Offset struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Axial represents axial coordinates (q, r) of the same tiling.
type Axial struct {
	Q int
	R int
}

// Cube represents cube coordinates (x, y, z) with x+y+z=0.
type Cube struct {
	X int
	Y int
	Z int
}

// directions for axial neighbors in flat-top orientation.
var directions = [...]Axial{
	{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1},
}

// Even reports whether the column is even. Negative columns follow
// mathematical parity, so -1 is odd and -2 is even.
func (o Offset) Even() bool { return o.X&1 == 0 }

// Add returns o shifted by dx columns and dy rows.
func (o Offset) Add(dx, dy int) Offset { return Offset{o.X + dx, o.Y + dy} }

// Axial converts an offset coordinate to axial.
func (o Offset) Axial() Axial {
	return Axial{Q: o.X, R: o.Y - (o.X-o.X&1)/2}
}

// Offset converts axial back to an offset coordinate.
func (a Axial) Offset() Offset {
	return Offset{X: a.Q, Y: a.R + (a.Q-a.Q&1)/2}
}

func (a Axial) add(b Axial) Axial { return Axial{a.Q + b.Q, a.R + b.R} }

// ToCube converts axial to cube.
func (a Axial) ToCube() Cube {
	return Cube{X: a.Q, Y: -a.Q - a.R, Z: a.R}
}

// ToAxial converts cube to axial.
func (c Cube) ToAxial() Axial { return Axial{Q: c.X, R: c.Z} }

// Distance returns the number of single steps between two tiles.
func Distance(a, b Offset) int {
	return DistanceCube(a.Axial().ToCube(), b.Axial().ToCube())
}

// DistanceCube returns hex distance between two cube coords.
func DistanceCube(a, b Cube) int {
	dx, dy, dz := abs(a.X-b.X), abs(a.Y-b.Y), abs(a.Z-b.Z)
	if dx > dy && dx > dz {
		return dx
	}
	if dy > dz {
		return dy
	}
	return dz
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
