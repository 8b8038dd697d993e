package motion

import (
	"fmt"

	"github.com/katalvlaran/kinetic/grid"
)

// MotionData is one prop's motion within a beat.
//
// Records are values: the With* helpers return modified copies and never
// touch the receiver, so a record shared by a sequence cannot be mutated in
// place.
type MotionData struct {
	MotionType        MotionType        `json:"motionType" yaml:"motionType"`
	RotationDirection RotationDirection `json:"rotationDirection" yaml:"rotationDirection"`
	StartLocation     grid.Location     `json:"startLocation" yaml:"startLocation"`
	EndLocation       grid.Location     `json:"endLocation" yaml:"endLocation"`
	Turns             float64           `json:"turns" yaml:"turns"`
	StartOrientation  Orientation       `json:"startOrientation" yaml:"startOrientation"`
	EndOrientation    Orientation       `json:"endOrientation" yaml:"endOrientation"`
	PropType          PropType          `json:"propType" yaml:"propType"`
	Color             Color             `json:"color" yaml:"color"`
	GridMode          grid.Mode         `json:"gridMode" yaml:"gridMode"`
	IsVisible         bool              `json:"isVisible" yaml:"isVisible"`
	ArrowLocation     grid.Location     `json:"arrowLocation" yaml:"arrowLocation"`
}

// WithTurns returns a copy of m with Turns set.
func (m MotionData) WithTurns(turns float64) MotionData {
	m.Turns = turns
	return m
}

// WithOrientations returns a copy of m with both orientations set.
func (m MotionData) WithOrientations(start, end Orientation) MotionData {
	m.StartOrientation, m.EndOrientation = start, end
	return m
}

// WithColor returns a copy of m with Color set.
func (m MotionData) WithColor(c Color) MotionData {
	m.Color = c
	return m
}

// WithVisibility returns a copy of m with IsVisible set.
func (m MotionData) WithVisibility(visible bool) MotionData {
	m.IsVisible = visible
	return m
}

// Validate checks every enum field and that both locations belong to the
// record's grid mode.
func (m MotionData) Validate() error {
	switch {
	case !m.MotionType.Valid():
		return fmt.Errorf("Validate: motionType %q: %w", m.MotionType, ErrUnknownValue)
	case !m.RotationDirection.Valid():
		return fmt.Errorf("Validate: rotationDirection %q: %w", m.RotationDirection, ErrUnknownValue)
	case !m.StartOrientation.Valid() || !m.EndOrientation.Valid():
		return fmt.Errorf("Validate: orientation %q/%q: %w", m.StartOrientation, m.EndOrientation, ErrUnknownValue)
	case !m.PropType.Valid():
		return fmt.Errorf("Validate: propType %q: %w", m.PropType, ErrUnknownValue)
	case !m.Color.Valid():
		return fmt.Errorf("Validate: color %q: %w", m.Color, ErrUnknownValue)
	case !m.GridMode.Valid():
		return fmt.Errorf("Validate: gridMode %q: %w", m.GridMode, grid.ErrUnknownMode)
	case !m.GridMode.Contains(m.StartLocation) || !m.GridMode.Contains(m.EndLocation):
		return fmt.Errorf("Validate: %s->%s in %s: %w", m.StartLocation, m.EndLocation, m.GridMode, grid.ErrLocationNotInMode)
	}

	return nil
}
