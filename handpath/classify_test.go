package handpath_test

import (
	"testing"

	"github.com/katalvlaran/kinetic/grid"
	"github.com/katalvlaran/kinetic/handpath"
	"github.com/katalvlaran/kinetic/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var modes = []grid.Mode{grid.Diamond, grid.Box}

// TestClassify_Totality checks every pair maps to exactly one type, stably.
func TestClassify_Totality(t *testing.T) {
	for _, a := range grid.AllLocations() {
		for _, b := range grid.AllLocations() {
			got := handpath.Classify(a, b)
			require.True(t, got.Valid(), "%s->%s", a, b)
			assert.Equal(t, got, handpath.Classify(a, b), "idempotent %s->%s", a, b)

			switch {
			case a == b:
				assert.Equal(t, motion.HandStatic, got)
			case a.Opposite() == b:
				assert.Equal(t, motion.HandDash, got)
			default:
				assert.Equal(t, motion.HandShift, got)
			}
		}
	}
}

// TestClassify_DashSymmetry checks dash(a,b) <=> dash(b,a).
func TestClassify_DashSymmetry(t *testing.T) {
	for _, a := range grid.AllLocations() {
		for _, b := range grid.AllLocations() {
			assert.Equal(t,
				handpath.Classify(a, b) == motion.HandDash,
				handpath.Classify(b, a) == motion.HandDash,
				"%s<->%s", a, b)
		}
	}
}

// TestClassify_UnknownLocations never reports a dash outside the eight-point set.
func TestClassify_UnknownLocations(t *testing.T) {
	assert.Equal(t, motion.HandShift, handpath.Classify("x", ""))
	assert.Equal(t, motion.HandShift, handpath.Classify("", "x"))
	assert.Equal(t, motion.HandShift, handpath.Classify(grid.North, "x"))
	assert.Equal(t, motion.HandStatic, handpath.Classify("x", "x"))
}

// TestAvailableMotionTypes lists the options per hand motion type.
func TestAvailableMotionTypes(t *testing.T) {
	assert.Equal(t, []motion.MotionType{motion.Static}, handpath.AvailableMotionTypes(grid.West, grid.West))
	assert.Equal(t, []motion.MotionType{motion.Dash}, handpath.AvailableMotionTypes(grid.East, grid.West))
	assert.Equal(t, []motion.MotionType{motion.Pro, motion.Anti, motion.Float}, handpath.AvailableMotionTypes(grid.North, grid.East))
}

// TestHandPathDirection_Scenarios covers the documented diamond and box cases.
func TestHandPathDirection_Scenarios(t *testing.T) {
	// Diamond N->S is a dash: no rotational direction.
	assert.Equal(t, motion.HandDash, handpath.Classify(grid.North, grid.South))
	_, ok, err := handpath.HandPathDirection(grid.North, grid.South, grid.Diamond)
	require.NoError(t, err)
	assert.False(t, ok)

	// Diamond N->E follows the N->E->S->W cycle: clockwise.
	assert.Equal(t, motion.HandShift, handpath.Classify(grid.North, grid.East))
	dir, ok, err := handpath.HandPathDirection(grid.North, grid.East, grid.Diamond)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, motion.Clockwise, dir)

	// Box NE->NW walks NE->SE->SW->NW backwards: counter-clockwise.
	assert.Equal(t, motion.HandShift, handpath.Classify(grid.NorthEast, grid.NorthWest))
	dir, ok, err = handpath.HandPathDirection(grid.NorthEast, grid.NorthWest, grid.Box)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, motion.CounterClockwise, dir)

	// Static has no direction either.
	_, ok, err = handpath.HandPathDirection(grid.West, grid.West, grid.Diamond)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestHandPathDirection_Antisymmetry checks reversing a shift reverses its direction.
func TestHandPathDirection_Antisymmetry(t *testing.T) {
	for _, m := range modes {
		for _, a := range m.Locations() {
			for _, b := range m.Locations() {
				if handpath.Classify(a, b) != motion.HandShift {
					continue
				}
				fwd, okF, err := handpath.HandPathDirection(a, b, m)
				require.NoError(t, err)
				back, okB, err := handpath.HandPathDirection(b, a, m)
				require.NoError(t, err)
				require.Equal(t, okF, okB, "%s %s<->%s", m, a, b)
				if okF {
					assert.Equal(t, fwd.Opposite(), back, "%s %s<->%s", m, a, b)
				}
			}
		}
	}
}

// TestHandPathDirection_CallerErrors separates bad input from "no direction".
func TestHandPathDirection_CallerErrors(t *testing.T) {
	_, ok, err := handpath.HandPathDirection(grid.North, grid.NorthEast, grid.Diamond)
	assert.False(t, ok)
	assert.ErrorIs(t, err, handpath.ErrClassification)
	assert.ErrorIs(t, err, grid.ErrLocationNotInMode)

	_, _, err = handpath.HandPathDirection(grid.North, grid.East, "hex")
	assert.ErrorIs(t, err, grid.ErrUnknownMode)
}

// TestPredicates delegate to Classify within the mode and reject foreign pairs.
func TestPredicates(t *testing.T) {
	assert.True(t, handpath.IsStatic(grid.South, grid.South, grid.Diamond))
	assert.True(t, handpath.IsDash(grid.NorthEast, grid.SouthWest, grid.Box))
	assert.True(t, handpath.IsShift(grid.East, grid.South, grid.Diamond))

	assert.False(t, handpath.IsDash(grid.North, grid.South, grid.Box))
	assert.False(t, handpath.IsShift(grid.North, grid.NorthEast, grid.Diamond))
	assert.False(t, handpath.IsStatic(grid.NorthEast, grid.NorthEast, grid.Diamond))
}

func BenchmarkClassify(b *testing.B) {
	locs := grid.AllLocations()
	for i := 0; i < b.N; i++ {
		_ = handpath.Classify(locs[i%8], locs[(i/8)%8])
	}
}
