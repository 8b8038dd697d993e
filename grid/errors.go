package grid

import "errors"

var (
	// ErrUnknownLocation indicates a value outside the eight grid locations.
	ErrUnknownLocation = errors.New("grid: unknown location")
	// ErrUnknownMode indicates a value that is neither diamond nor box.
	ErrUnknownMode = errors.New("grid: unknown grid mode")
	// ErrLocationNotInMode indicates a valid location that the mode's cycle cannot place.
	ErrLocationNotInMode = errors.New("grid: location not in grid mode")
	// ErrInvalidPosition indicates a location pair or text that is not a hand position.
	ErrInvalidPosition = errors.New("grid: invalid position")
	// ErrInsideDeadZone indicates a pointer sample too close to the grid centre.
	ErrInsideDeadZone = errors.New("grid: point inside dead zone")
)
