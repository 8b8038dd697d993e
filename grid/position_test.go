package grid_test

import (
	"testing"

	"github.com/katalvlaran/kinetic/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolvePosition covers each family on both grid modes.
func TestResolvePosition(t *testing.T) {
	cases := []struct {
		blue, red grid.Location
		want      string
	}{
		{grid.South, grid.North, "alpha1"},
		{grid.West, grid.East, "alpha3"},
		{grid.NorthEast, grid.SouthWest, "alpha6"},
		{grid.South, grid.South, "beta1"},
		{grid.SouthEast, grid.SouthEast, "beta8"},
		{grid.South, grid.West, "gamma1"},
		{grid.South, grid.East, "gamma9"},
		{grid.West, grid.South, "gamma11"},
		{grid.NorthWest, grid.NorthEast, "gamma4"},
	}
	for _, tc := range cases {
		got, err := grid.ResolvePosition(tc.blue, tc.red)
		require.NoError(t, err, "%s/%s", tc.blue, tc.red)
		assert.Equal(t, tc.want, got.String(), "%s/%s", tc.blue, tc.red)
	}

	_, err := grid.ResolvePosition(grid.North, grid.NorthEast)
	assert.ErrorIs(t, err, grid.ErrInvalidPosition)
	_, err = grid.ResolvePosition("x", grid.North)
	assert.ErrorIs(t, err, grid.ErrUnknownLocation)
}

// TestPositionRoundTrip checks Locations and ResolvePosition are inverse for
// every valid position.
func TestPositionRoundTrip(t *testing.T) {
	for sys, n := range map[grid.PositionSystem]int{grid.Alpha: 8, grid.Beta: 8, grid.Gamma: 16} {
		for i := 1; i <= n; i++ {
			p := grid.Position{System: sys, Index: i}
			blue, red, err := p.Locations()
			require.NoError(t, err, p.String())
			back, err := grid.ResolvePosition(blue, red)
			require.NoError(t, err, p.String())
			assert.Equal(t, p, back)

			m, err := p.Mode()
			require.NoError(t, err)
			assert.True(t, m.Contains(blue) && m.Contains(red), p.String())
		}
	}
}

// TestParsePosition parses text forms and rejects out-of-range indices.
func TestParsePosition(t *testing.T) {
	p, err := grid.ParsePosition("Gamma11")
	require.NoError(t, err)
	assert.Equal(t, grid.Position{System: grid.Gamma, Index: 11}, p)

	for _, bad := range []string{"alpha0", "alpha9", "beta", "delta1", "gamma17", ""} {
		_, err := grid.ParsePosition(bad)
		assert.ErrorIs(t, err, grid.ErrInvalidPosition, bad)
	}

	var q grid.Position
	require.NoError(t, q.UnmarshalText([]byte("beta3")))
	text, err := q.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "beta3", string(text))
}

// TestRotate keeps the family and the gamma half while moving the hands.
func TestRotate(t *testing.T) {
	cases := []struct {
		in    string
		steps int
		want  string
	}{
		{"alpha1", 1, "alpha2"},
		{"alpha8", 1, "alpha1"},
		{"beta1", -1, "beta8"},
		{"gamma8", 1, "gamma1"},
		{"gamma16", 1, "gamma9"},
		{"gamma9", 2, "gamma11"},
	}
	for _, tc := range cases {
		p, err := grid.ParsePosition(tc.in)
		require.NoError(t, err)
		got, err := p.Rotate(tc.steps)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.String(), "%s%+d", tc.in, tc.steps)
	}
}
