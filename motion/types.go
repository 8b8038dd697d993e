// Package motion defines the value types a hand path is converted into:
// the hand-motion classification, the final motion type, rotation,
// orientation, prop and color enums, and the MotionData record.
//
// All enums are string-backed so records serialise readably to YAML/JSON.
package motion

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownValue indicates a string that does not name a member of an enum.
var ErrUnknownValue = errors.New("motion: unknown value")

// HandMotionType classifies a (start, end) location pair.
type HandMotionType string

const (
	HandStatic HandMotionType = "static"
	HandDash   HandMotionType = "dash"
	HandShift  HandMotionType = "shift"
)

// MotionType is the final motion classification stored in a record.
type MotionType string

const (
	Static MotionType = "static"
	Dash   MotionType = "dash"
	Pro    MotionType = "pro"
	Anti   MotionType = "anti"
	Float  MotionType = "float"
)

// IsShift reports whether t is one of the shift motions (pro, anti, float).
func (t MotionType) IsShift() bool {
	return t == Pro || t == Anti || t == Float
}

// RotationDirection is the prop's rotation, or the direction of hand travel
// around a grid cycle.
type RotationDirection string

const (
	Clockwise        RotationDirection = "cw"
	CounterClockwise RotationDirection = "ccw"
	NoRotation       RotationDirection = "noRotation"
)

// Opposite swaps cw and ccw; noRotation is its own opposite.
func (r RotationDirection) Opposite() RotationDirection {
	switch r {
	case Clockwise:
		return CounterClockwise
	case CounterClockwise:
		return Clockwise
	}

	return r
}

// Orientation of a prop relative to the grid centre.
type Orientation string

const (
	In      Orientation = "in"
	Out     Orientation = "out"
	Clock   Orientation = "clock"
	Counter Orientation = "counter"
)

// PropType names the prop a motion is performed with.
type PropType string

const (
	Staff       PropType = "staff"
	SimpleStaff PropType = "simplestaff"
	Club        PropType = "club"
	Fan         PropType = "fan"
	Triad       PropType = "triad"
	MiniHoop    PropType = "minihoop"
	Buugeng     PropType = "buugeng"
	Hand        PropType = "hand"
)

// Color identifies one of the two hands/props in a pictograph.
type Color string

const (
	Blue Color = "blue"
	Red  Color = "red"
)

var (
	handMotionTypes = []HandMotionType{HandStatic, HandDash, HandShift}
	motionTypes     = []MotionType{Static, Dash, Pro, Anti, Float}
	rotations       = []RotationDirection{Clockwise, CounterClockwise, NoRotation}
	orientations    = []Orientation{In, Out, Clock, Counter}
	propTypes       = []PropType{Staff, SimpleStaff, Club, Fan, Triad, MiniHoop, Buugeng, Hand}
	colors          = []Color{Blue, Red}
)

// Valid reports whether t is a known hand motion type.
func (t HandMotionType) Valid() bool { return slices.Contains(handMotionTypes, t) }

// Valid reports whether t is a known motion type.
func (t MotionType) Valid() bool { return slices.Contains(motionTypes, t) }

// Valid reports whether r is a known rotation direction.
func (r RotationDirection) Valid() bool { return slices.Contains(rotations, r) }

// Valid reports whether o is a known orientation.
func (o Orientation) Valid() bool { return slices.Contains(orientations, o) }

// Valid reports whether p is a known prop type.
func (p PropType) Valid() bool { return slices.Contains(propTypes, p) }

// Valid reports whether c is blue or red.
func (c Color) Valid() bool { return slices.Contains(colors, c) }

// Colors returns blue and red, in that order.
func Colors() []Color { return []Color{Blue, Red} }

// ParseMotionType parses a motion type case-insensitively.
func ParseMotionType(s string) (MotionType, error) {
	return parse("ParseMotionType", s, motionTypes)
}

// ParseRotation parses "cw", "ccw" or "noRotation" case-insensitively.
// "none" is accepted as noRotation.
func ParseRotation(s string) (RotationDirection, error) {
	if strings.EqualFold(strings.TrimSpace(s), "none") {
		return NoRotation, nil
	}

	return parse("ParseRotation", s, rotations)
}

// ParsePropType parses a prop name case-insensitively.
func ParsePropType(s string) (PropType, error) {
	return parse("ParsePropType", s, propTypes)
}

// ParseColor parses "blue" or "red" case-insensitively.
func ParseColor(s string) (Color, error) {
	return parse("ParseColor", s, colors)
}

func parse[T ~string](method, s string, members []T) (T, error) {
	for _, m := range members {
		if strings.EqualFold(strings.TrimSpace(s), string(m)) {
			return m, nil
		}
	}
	var zero T

	return zero, fmt.Errorf("%s(%q): %w", method, s, ErrUnknownValue)
}
