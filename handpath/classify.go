// SPDX-License-Identifier: MIT
// Package: kinetic/handpath
//
// classify.go - hand-motion classification and direction detection.
//
// Contract:
//   - Classify is total: every pair of locations maps to exactly one of
//     static, dash, shift. It does not consult a grid mode.
//   - HandPathDirection only answers for shifts whose locations both belong
//     to the given mode. A foreign location is a caller error
//     (ErrClassification), never a silent "no direction".
//
// Complexity:
//   - O(1) per call.

package handpath

import (
	"fmt"

	"github.com/katalvlaran/kinetic/grid"
	"github.com/katalvlaran/kinetic/motion"
)

const methodHandPathDirection = "HandPathDirection"

// Classify labels the move from start to end: static when they are equal,
// dash when end is opposite start, shift otherwise. Only locations of the
// eight-point set have an opposite, so a pair involving any other value is
// never a dash.
func Classify(start, end grid.Location) motion.HandMotionType {
	switch {
	case start == end:
		return motion.HandStatic
	case start.Valid() && start.Opposite() == end:
		return motion.HandDash
	default:
		return motion.HandShift
	}
}

// AvailableMotionTypes lists the motion types a segment from start to end
// may take: [static], [dash] or [pro anti float].
func AvailableMotionTypes(start, end grid.Location) []motion.MotionType {
	switch Classify(start, end) {
	case motion.HandStatic:
		return []motion.MotionType{motion.Static}
	case motion.HandDash:
		return []motion.MotionType{motion.Dash}
	default:
		return []motion.MotionType{motion.Pro, motion.Anti, motion.Float}
	}
}

// HandPathDirection reports the direction of hand travel from start to end
// around mode's cycle.
//
// ok is false for static and dash pairs, and for shifts whose locations are
// not neighbours in the cycle. err is non-nil when mode is unknown or a
// location is not part of the mode (wrapping ErrClassification).
func HandPathDirection(start, end grid.Location, mode grid.Mode) (dir motion.RotationDirection, ok bool, err error) {
	if !mode.Valid() {
		return "", false, fmt.Errorf("%s(%s, %s, %q): %w", methodHandPathDirection, start, end, string(mode), grid.ErrUnknownMode)
	}
	if err := checkInMode(methodHandPathDirection, start, end, mode); err != nil {
		return "", false, err
	}
	if Classify(start, end) != motion.HandShift {
		return "", false, nil
	}

	// Both lookups succeed: membership was checked above.
	next, _ := mode.Next(start)
	prev, _ := mode.Prev(start)
	switch end {
	case next:
		return motion.Clockwise, true, nil
	case prev:
		return motion.CounterClockwise, true, nil
	}

	return "", false, nil
}

// IsStatic reports whether start->end is a static pair of mode.
func IsStatic(start, end grid.Location, mode grid.Mode) bool {
	return inMode(start, end, mode) && Classify(start, end) == motion.HandStatic
}

// IsDash reports whether start->end is a dash pair of mode.
func IsDash(start, end grid.Location, mode grid.Mode) bool {
	return inMode(start, end, mode) && Classify(start, end) == motion.HandDash
}

// IsShift reports whether start->end is a shift pair of mode.
func IsShift(start, end grid.Location, mode grid.Mode) bool {
	return inMode(start, end, mode) && Classify(start, end) == motion.HandShift
}

func inMode(start, end grid.Location, mode grid.Mode) bool {
	return mode.Contains(start) && mode.Contains(end)
}

// checkInMode returns ErrClassification (wrapping grid.ErrLocationNotInMode)
// naming the first location the mode cannot place.
func checkInMode(method string, start, end grid.Location, mode grid.Mode) error {
	for _, l := range []grid.Location{start, end} {
		if !mode.Contains(l) {
			return fmt.Errorf("%s: %q in %s: %w: %w", method, string(l), mode, ErrClassification, grid.ErrLocationNotInMode)
		}
	}

	return nil
}
