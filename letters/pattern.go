// SPDX-License-Identifier: MIT
// Package: kinetic/letters
//
// pattern.go - default Type-1 pattern construction.
//
// Contract:
//   - Each hand takes one step round the grid cycle. A pro hand travels with
//     its prop's rotation, an anti hand against it.
//   - Motion records come from the handpath converter, so the motion type of
//     a built record is recomputed from geometry, never copied from the
//     table. A table entry whose geometry disagrees surfaces in validation.
//   - Box patterns rotate the diamond start position one step clockwise.
//   - IDs are name-based UUIDs (SHA-1) over letter, mode, prop and pairs.
//
// Complexity:
//   - O(1) per pattern.

package letters

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/kinetic/grid"
	"github.com/katalvlaran/kinetic/handpath"
	"github.com/katalvlaran/kinetic/motion"
)

const methodBuildPattern = "BuildPattern"

// pictographNamespace scopes pictograph IDs.
var pictographNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("kinetic:pictograph"))

// PatternInput is everything a PatternBuilder needs for one combination.
type PatternInput struct {
	Letter         Letter
	PositionSystem PositionSystem
	// Start is the diamond start position from the letter table.
	Start     grid.Position
	GridMode  grid.Mode
	Motions   MotionPair
	Rotations RotationPair
	Timing    Timing
	Direction Direction
	PropType  motion.PropType
}

// PatternBuilder constructs one pictograph from a combination.
type PatternBuilder func(PatternInput) (Pictograph, error)

// BuildPattern is the default PatternBuilder.
func BuildPattern(in PatternInput) (Pictograph, error) {
	if !in.GridMode.Valid() {
		return Pictograph{}, fmt.Errorf("%s: mode %q: %w", methodBuildPattern, string(in.GridMode), grid.ErrUnknownMode)
	}
	start := in.Start
	if in.GridMode == grid.Box {
		var err error
		if start, err = start.Rotate(1); err != nil {
			return Pictograph{}, fmt.Errorf("%s: %w", methodBuildPattern, err)
		}
	}
	blueStart, redStart, err := start.Locations()
	if err != nil {
		return Pictograph{}, fmt.Errorf("%s: %w", methodBuildPattern, err)
	}

	blue, err := buildHand(motion.Blue, blueStart, in.Motions.Blue, in.Rotations.Blue, in)
	if err != nil {
		return Pictograph{}, err
	}
	red, err := buildHand(motion.Red, redStart, in.Motions.Red, in.Rotations.Red, in)
	if err != nil {
		return Pictograph{}, err
	}

	end, err := grid.ResolvePosition(blue.EndLocation, red.EndLocation)
	if err != nil {
		return Pictograph{}, fmt.Errorf("%s: end: %w", methodBuildPattern, err)
	}

	return Pictograph{
		ID:             patternID(in),
		Letter:         in.Letter,
		PositionSystem: in.PositionSystem,
		StartPosition:  start,
		EndPosition:    end,
		Timing:         in.Timing,
		Direction:      in.Direction,
		GridMode:       in.GridMode,
		Blue:           blue,
		Red:            red,
	}, nil
}

// buildHand moves one hand a single step and converts the segment.
func buildHand(c motion.Color, from grid.Location, mt motion.MotionType, rot motion.RotationDirection, in PatternInput) (motion.MotionData, error) {
	travel, err := travelDirection(mt, rot)
	if err != nil {
		return motion.MotionData{}, fmt.Errorf("%s: %s hand: %w", methodBuildPattern, c, err)
	}
	step := 1
	if travel == motion.CounterClockwise {
		step = -1
	}
	to, err := in.GridMode.Step(from, step)
	if err != nil {
		return motion.MotionData{}, fmt.Errorf("%s: %s hand: %w", methodBuildPattern, c, err)
	}
	seg, err := handpath.NewSegment(from, to, in.GridMode)
	if err != nil {
		return motion.MotionData{}, fmt.Errorf("%s: %s hand: %w", methodBuildPattern, c, err)
	}
	draft, err := handpath.ConvertSegmentToMotion(seg, rot, in.PropType)
	if err != nil {
		return motion.MotionData{}, fmt.Errorf("%s: %s hand: %w", methodBuildPattern, c, err)
	}

	return draft.Finalize(c, in.GridMode), nil
}

// travelDirection returns the way a hand travels for a motion type under
// its prop's rotation.
func travelDirection(mt motion.MotionType, rot motion.RotationDirection) (motion.RotationDirection, error) {
	if !isTurning(rot) {
		return "", fmt.Errorf("rotation %q: %w", string(rot), ErrInvalidPattern)
	}
	switch mt {
	case motion.Pro:
		return rot, nil
	case motion.Anti:
		return rot.Opposite(), nil
	}

	return "", fmt.Errorf("motion type %q is not a dual-shift type: %w", string(mt), ErrInvalidPattern)
}

func patternID(in PatternInput) string {
	name := fmt.Sprintf("%s|%s|%s|%s|%s/%s|%s/%s",
		in.Letter, in.PositionSystem, in.GridMode, in.PropType,
		in.Motions.Blue, in.Motions.Red, in.Rotations.Blue, in.Rotations.Red)

	return uuid.NewSHA1(pictographNamespace, []byte(name)).String()
}
