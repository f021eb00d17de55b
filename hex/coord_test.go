package hex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	cases := []struct {
		x, y int
		want Vec2
	}{
		{0, 0, Vec2{0, 0}},
		{0, 1, Vec2{0, 1.7320508}},
		{1, 0, Vec2{1.5, 0.8660254}},
		{1, 1, Vec2{1.5, 2.598076}},
		{2, 0, Vec2{3, 0}},
		{3, 2, Vec2{4.5, 2*1.7320508 + 0.8660254}},
	}
	for _, c := range cases {
		got := Position(c.x, c.y)
		require.InDelta(t, c.want.X, got.X, 1e-6, "x of (%d,%d)", c.x, c.y)
		require.InDelta(t, c.want.Y, got.Y, 1e-6, "y of (%d,%d)", c.x, c.y)
	}

	require.Equal(t, Vec2{0, 0}, Position(0, 0))
	require.Equal(t, Position(5, 7), Offset{5, 7}.Position())
}

func TestPositionOddColumnsShiftHalfHex(t *testing.T) {
	for y := 0; y < 5; y++ {
		even := Position(2, y)
		odd := Position(3, y)
		require.InDelta(t, HalfSqrt3, odd.Y-even.Y, 1e-5)
		require.InDelta(t, ColumnSpacing, odd.X-even.X, 1e-6)
	}
}

func TestEven(t *testing.T) {
	require.True(t, Offset{X: 0}.Even())
	require.False(t, Offset{X: 1}.Even())
	require.True(t, Offset{X: -2}.Even())
	require.False(t, Offset{X: -1}.Even())
}

func TestAxialRoundTrip(t *testing.T) {
	for x := -4; x <= 4; x++ {
		for y := -4; y <= 4; y++ {
			o := Offset{x, y}
			require.Equal(t, o, o.Axial().Offset())
			require.Equal(t, o.Axial(), o.Axial().ToCube().ToAxial())
		}
	}
}

func TestDistance(t *testing.T) {
	require.Equal(t, 0, Distance(Offset{2, 2}, Offset{2, 2}))
	require.Equal(t, 1, Distance(Offset{1, 1}, Offset{2, 2}))
	require.Equal(t, 1, Distance(Offset{2, 2}, Offset{1, 1}))
	require.Equal(t, 2, Distance(Offset{0, 0}, Offset{2, 0}))
	require.Equal(t, 3, Distance(Offset{0, 0}, Offset{0, 3}))

	// each axial direction is one step away
	origin := Offset{3, 3}
	for _, d := range directions {
		n := origin.Axial().add(d).Offset()
		require.Equal(t, 1, Distance(origin, n), "direction %v", d)
	}
}
