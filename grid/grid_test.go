package grid_test

import (
	"testing"

	"github.com/katalvlaran/kinetic/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Locations and modes
//----------------------------------------------------------------------------//

// TestParseLocation accepts short, long and decorated forms.
func TestParseLocation(t *testing.T) {
	cases := []struct {
		in   string
		want grid.Location
	}{
		{"n", grid.North},
		{"NE", grid.NorthEast},
		{"north_east", grid.NorthEast},
		{" SouthWest ", grid.SouthWest},
		{"WEST", grid.West},
	}
	for _, tc := range cases {
		got, err := grid.ParseLocation(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := grid.ParseLocation("up")
	assert.ErrorIs(t, err, grid.ErrUnknownLocation)
}

// TestParseMode rejects anything but diamond and box.
func TestParseMode(t *testing.T) {
	m, err := grid.ParseMode("Diamond")
	require.NoError(t, err)
	assert.Equal(t, grid.Diamond, m)

	_, err = grid.ParseMode("hex")
	assert.ErrorIs(t, err, grid.ErrUnknownMode)
}

// TestOppositeIsInvolution checks Opposite(Opposite(l)) == l for every location.
func TestOppositeIsInvolution(t *testing.T) {
	for _, l := range grid.AllLocations() {
		assert.NotEqual(t, l, l.Opposite(), l)
		assert.Equal(t, l, l.Opposite().Opposite(), l)
	}
	assert.Equal(t, grid.Location(""), grid.Location("x").Opposite())
}

// TestModeAnglesDefined verifies every cycle member has an angle under its mode.
func TestModeAnglesDefined(t *testing.T) {
	for _, m := range []grid.Mode{grid.Diamond, grid.Box} {
		for _, l := range m.Locations() {
			a, err := m.Angle(l)
			require.NoError(t, err)
			want, _ := l.Angle()
			assert.Equal(t, want, a)
		}
	}
	_, err := grid.Diamond.Angle(grid.NorthEast)
	assert.ErrorIs(t, err, grid.ErrLocationNotInMode)
	_, err = grid.Mode("hex").Angle(grid.North)
	assert.ErrorIs(t, err, grid.ErrUnknownMode)
}

// TestCycleWalk checks Next/Prev on both modes, including wrap-around.
func TestCycleWalk(t *testing.T) {
	next, err := grid.Diamond.Next(grid.West)
	require.NoError(t, err)
	assert.Equal(t, grid.North, next)

	prev, err := grid.Diamond.Prev(grid.North)
	require.NoError(t, err)
	assert.Equal(t, grid.West, prev)

	prev, err = grid.Box.Prev(grid.NorthEast)
	require.NoError(t, err)
	assert.Equal(t, grid.NorthWest, prev)

	far, err := grid.Box.Step(grid.NorthEast, -6)
	require.NoError(t, err)
	assert.Equal(t, grid.SouthWest, far)

	_, err = grid.Box.Next(grid.North)
	assert.ErrorIs(t, err, grid.ErrLocationNotInMode)
}

// TestModeOf maps cardinals to diamond and intercardinals to box.
func TestModeOf(t *testing.T) {
	m, err := grid.ModeOf(grid.South)
	require.NoError(t, err)
	assert.Equal(t, grid.Diamond, m)

	m, err = grid.ModeOf(grid.SouthEast)
	require.NoError(t, err)
	assert.Equal(t, grid.Box, m)

	_, err = grid.ModeOf("x")
	assert.ErrorIs(t, err, grid.ErrUnknownLocation)
}

// TestBetween bisects quarter-turn arcs and degrades to the start otherwise.
func TestBetween(t *testing.T) {
	cases := []struct{ a, b, want grid.Location }{
		{grid.North, grid.East, grid.NorthEast},
		{grid.East, grid.North, grid.NorthEast},
		{grid.West, grid.North, grid.NorthWest},
		{grid.NorthEast, grid.SouthEast, grid.East},
		{grid.NorthWest, grid.NorthEast, grid.North},
		{grid.North, grid.South, grid.North},
		{grid.West, grid.West, grid.West},
	}
	for _, tc := range cases {
		got, err := grid.Between(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s->%s", tc.a, tc.b)
	}
}

//----------------------------------------------------------------------------//
// Snap
//----------------------------------------------------------------------------//

// TestSnap maps screen vectors onto the mode's locations.
func TestSnap(t *testing.T) {
	opts := grid.SnapOptions{DeadZone: 5}
	cases := []struct {
		p    grid.Point
		m    grid.Mode
		want grid.Location
	}{
		{grid.Point{X: 0, Y: -50}, grid.Diamond, grid.North},
		{grid.Point{X: 50, Y: 3}, grid.Diamond, grid.East},
		{grid.Point{X: -2, Y: 40}, grid.Diamond, grid.South},
		{grid.Point{X: -30, Y: 0}, grid.Diamond, grid.West},
		{grid.Point{X: 30, Y: -30}, grid.Box, grid.NorthEast},
		{grid.Point{X: -10, Y: 40}, grid.Box, grid.SouthWest},
	}
	for _, tc := range cases {
		got, err := grid.Snap(tc.p, tc.m, opts)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%v in %s", tc.p, tc.m)
	}

	_, err := grid.Snap(grid.Point{X: 1, Y: 1}, grid.Diamond, opts)
	assert.ErrorIs(t, err, grid.ErrInsideDeadZone)
	_, err = grid.Snap(grid.Point{}, grid.Diamond, grid.DefaultSnapOptions())
	assert.ErrorIs(t, err, grid.ErrInsideDeadZone)
	_, err = grid.Snap(grid.Point{X: 10}, "hex", opts)
	assert.ErrorIs(t, err, grid.ErrUnknownMode)
}
