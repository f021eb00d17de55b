package hex

// Hex geometry for unit-radius flat-top tiles.
const (
	Sqrt3     float32 = 1.7320508075688772
	HalfSqrt3 float32 = 0.8660254037844386

	// ColumnSpacing is the horizontal distance between adjacent column centers.
	ColumnSpacing float32 = 1.5
)

// Vec2 is a point on the plane.
type Vec2 struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

// Position returns the plane center of tile (x, y). It depends only on the
// coordinate, never on grid dimensions.
func Position(x, y int) Vec2 {
	// explicit conversions keep each product rounded to float32 (no FMA)
	px := float32(float32(x) * ColumnSpacing)
	py := float32(float32(y) * Sqrt3)
	if x&1 != 0 {
		py += HalfSqrt3
	}
	return Vec2{X: px, Y: py}
}

// Position returns the plane center of o.
func (o Offset) Position() Vec2 { return Position(o.X, o.Y) }
