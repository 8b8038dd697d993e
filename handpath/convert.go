// SPDX-License-Identifier: MIT
// Package: kinetic/handpath
//
// convert.go - segment and path conversion into motion records.
//
// Contract:
//   - DetermineMotionType evaluates the decision table in package doc order
//     and uses the segment's own grid mode for direction detection.
//   - Segment-level conversion never invents a color. ConvertHandPathToMotions
//     finalises every record with the path's color and grid mode, which
//     supersede anything a segment carries.
//   - Malformed input fails fast with a sentinel; nothing is defaulted.
//
// Complexity:
//   - O(1) per segment, O(n) per path.

package handpath

import (
	"fmt"

	"github.com/katalvlaran/kinetic/grid"
	"github.com/katalvlaran/kinetic/motion"
)

const (
	methodDetermineMotionType = "DetermineMotionType"
	methodConvertSegment      = "ConvertSegmentToMotion"
	methodConvertHandPath     = "ConvertHandPathToMotions"
)

// DetermineMotionType resolves the final motion type of seg under the
// chosen prop rotation.
func DetermineMotionType(seg Segment, rot motion.RotationDirection) (motion.MotionType, error) {
	if !rot.Valid() {
		return "", fmt.Errorf("%s: rotation %q: %w", methodDetermineMotionType, string(rot), ErrInvalidRotation)
	}
	if !seg.GridMode.Valid() {
		return "", fmt.Errorf("%s: segment mode %q: %w", methodDetermineMotionType, string(seg.GridMode), grid.ErrUnknownMode)
	}
	if err := checkInMode(methodDetermineMotionType, seg.Start, seg.End, seg.GridMode); err != nil {
		return "", err
	}

	// A stored HandMotionType that disagrees with its locations is treated
	// as malformed rather than trusted.
	if got := Classify(seg.Start, seg.End); seg.HandMotionType != got {
		return "", fmt.Errorf("%s: segment %s->%s labelled %q, is %q: %w",
			methodDetermineMotionType, seg.Start, seg.End, seg.HandMotionType, got, ErrClassification)
	}

	switch {
	case seg.HandMotionType == motion.HandStatic:
		return motion.Static, nil
	case seg.HandMotionType == motion.HandDash:
		return motion.Dash, nil
	case rot == motion.NoRotation:
		return motion.Float, nil
	}

	pathDir, ok, err := HandPathDirection(seg.Start, seg.End, seg.GridMode)
	if err != nil {
		return "", fmt.Errorf("%s: %w", methodDetermineMotionType, err)
	}
	switch {
	case !ok:
		return motion.Float, nil
	case pathDir == rot:
		return motion.Pro, nil
	default:
		return motion.Anti, nil
	}
}

// SegmentMotion is the provisional record produced from a single segment.
// It has no color: a segment does not know which hand drew it.
type SegmentMotion struct {
	MotionType        motion.MotionType
	RotationDirection motion.RotationDirection
	StartLocation     grid.Location
	EndLocation       grid.Location
	Turns             float64
	StartOrientation  motion.Orientation
	EndOrientation    motion.Orientation
	PropType          motion.PropType
	GridMode          grid.Mode
	IsVisible         bool
	ArrowLocation     grid.Location
}

// Finalize applies path-level context and returns the complete record.
// color and mode replace whatever the segment carried.
func (s SegmentMotion) Finalize(color motion.Color, mode grid.Mode) motion.MotionData {
	return motion.MotionData{
		MotionType:        s.MotionType,
		RotationDirection: s.RotationDirection,
		StartLocation:     s.StartLocation,
		EndLocation:       s.EndLocation,
		Turns:             s.Turns,
		StartOrientation:  s.StartOrientation,
		EndOrientation:    s.EndOrientation,
		PropType:          s.PropType,
		Color:             color,
		GridMode:          mode,
		IsVisible:         s.IsVisible,
		ArrowLocation:     s.ArrowLocation,
	}
}

// ConvertSegmentToMotion converts seg with placeholder turns (0) and
// orientations (in/in). Static and dash records keep noRotation; shifts
// record the requested rotation.
func ConvertSegmentToMotion(seg Segment, rot motion.RotationDirection, prop motion.PropType) (SegmentMotion, error) {
	if !prop.Valid() {
		return SegmentMotion{}, fmt.Errorf("%s: prop %q: %w", methodConvertSegment, string(prop), ErrInvalidProp)
	}
	mt, err := DetermineMotionType(seg, rot)
	if err != nil {
		return SegmentMotion{}, fmt.Errorf("%s: %w", methodConvertSegment, err)
	}

	recorded := rot
	arrow := seg.Start
	if mt.IsShift() {
		// Shift arrows sit on the arc between the two locations.
		if arrow, err = grid.Between(seg.Start, seg.End); err != nil {
			return SegmentMotion{}, fmt.Errorf("%s: %w", methodConvertSegment, err)
		}
	} else {
		recorded = motion.NoRotation
	}

	return SegmentMotion{
		MotionType:        mt,
		RotationDirection: recorded,
		StartLocation:     seg.Start,
		EndLocation:       seg.End,
		Turns:             0,
		StartOrientation:  motion.In,
		EndOrientation:    motion.In,
		PropType:          prop,
		GridMode:          seg.GridMode,
		IsVisible:         true,
		ArrowLocation:     arrow,
	}, nil
}

// ConvertHandPathToMotions converts every segment of path and finalises each
// record with the path's color and grid mode. An empty path yields an empty,
// non-nil slice.
func ConvertHandPathToMotions(path HandPath, rot motion.RotationDirection, prop motion.PropType) ([]motion.MotionData, error) {
	if !path.Color.Valid() {
		return nil, fmt.Errorf("%s: color %q: %w", methodConvertHandPath, string(path.Color), ErrInvalidColor)
	}
	if !path.GridMode.Valid() {
		return nil, fmt.Errorf("%s: mode %q: %w", methodConvertHandPath, string(path.GridMode), grid.ErrUnknownMode)
	}

	// Pass 1: segment-level conversion.
	drafts := make([]SegmentMotion, 0, len(path.Segments))
	for i, seg := range path.Segments {
		if seg.GridMode != path.GridMode {
			return nil, fmt.Errorf("%s: segment %d drawn on %s, path on %s: %w",
				methodConvertHandPath, i, seg.GridMode, path.GridMode, ErrModeMismatch)
		}
		d, err := ConvertSegmentToMotion(seg, rot, prop)
		if err != nil {
			return nil, fmt.Errorf("%s: segment %d: %w", methodConvertHandPath, i, err)
		}
		drafts = append(drafts, d)
	}

	// Pass 2: path-level truth supersedes segment placeholders.
	out := make([]motion.MotionData, len(drafts))
	for i, d := range drafts {
		out[i] = d.Finalize(path.Color, path.GridMode)
	}

	return out, nil
}
