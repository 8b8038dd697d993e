package letters

import (
	"fmt"

	"github.com/katalvlaran/kinetic/handpath"
	"github.com/katalvlaran/kinetic/motion"
)

const methodValidatePattern = "ValidatePattern"

// Validator checks a built pictograph against the combination it came from.
// Returned errors should wrap ErrInvalidPattern; the generator adds it when
// they do not.
type Validator func(p Pictograph, in PatternInput) error

// ValidatePattern is the default Validator. It requires:
//   - start and end positions in the system's start and end families;
//   - both records to be shifts equal to the configured motion pair;
//   - both hands to travel the same way exactly when Direction is Same;
//   - each record to be well-formed and on the pattern's grid mode.
func ValidatePattern(p Pictograph, in PatternInput) error {
	startFamily, endFamily, ok := in.PositionSystem.Families()
	if !ok {
		return fmt.Errorf("%s: system %q: %w: %w", methodValidatePattern, string(in.PositionSystem), ErrInvalidPattern, ErrUnknownPositionSystem)
	}
	if p.StartPosition.System != startFamily {
		return fmt.Errorf("%s: start %s not in %s family: %w", methodValidatePattern, p.StartPosition, startFamily, ErrInvalidPattern)
	}
	if p.EndPosition.System != endFamily {
		return fmt.Errorf("%s: end %s not in %s family: %w", methodValidatePattern, p.EndPosition, endFamily, ErrInvalidPattern)
	}

	hands := []struct {
		color motion.Color
		data  motion.MotionData
		want  motion.MotionType
	}{
		{motion.Blue, p.Blue, in.Motions.Blue},
		{motion.Red, p.Red, in.Motions.Red},
	}
	var travel [2]motion.RotationDirection
	for i, h := range hands {
		if err := h.data.Validate(); err != nil {
			return fmt.Errorf("%s: %s hand: %w: %w", methodValidatePattern, h.color, ErrInvalidPattern, err)
		}
		if h.data.Color != h.color || h.data.GridMode != p.GridMode {
			return fmt.Errorf("%s: %s hand recorded as %s on %s: %w", methodValidatePattern, h.color, h.data.Color, h.data.GridMode, ErrInvalidPattern)
		}
		if !h.data.MotionType.IsShift() || h.data.MotionType != h.want {
			return fmt.Errorf("%s: %s hand is %s, want %s: %w", methodValidatePattern, h.color, h.data.MotionType, h.want, ErrInvalidPattern)
		}
		dir, ok, err := handpath.HandPathDirection(h.data.StartLocation, h.data.EndLocation, h.data.GridMode)
		if err != nil {
			return fmt.Errorf("%s: %s hand: %w: %w", methodValidatePattern, h.color, ErrInvalidPattern, err)
		}
		if !ok {
			return fmt.Errorf("%s: %s hand %s->%s has no travel direction: %w",
				methodValidatePattern, h.color, h.data.StartLocation, h.data.EndLocation, ErrInvalidPattern)
		}
		travel[i] = dir
	}

	same := travel[0] == travel[1]
	if same != (in.Direction == Same) {
		return fmt.Errorf("%s: hands travel %s/%s, direction %s: %w", methodValidatePattern, travel[0], travel[1], in.Direction, ErrInvalidPattern)
	}

	return nil
}
