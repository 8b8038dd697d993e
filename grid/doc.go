// Package grid defines the fixed topology every pictograph is drawn on:
// eight compass locations, the two grid modes that use them, and the hand
// positions (alpha, beta, gamma) formed by a pair of locations.
//
// What:
//
//   - Location: N, NE, E, SE, S, SW, W, NW with a fixed angle (degrees,
//     clockwise from north) and an opposite.
//   - Mode: Diamond (N, E, S, W) or Box (NE, SE, SW, NW). Each mode owns a
//     clockwise cycle; Next/Prev walk it.
//   - Position: the relation of the blue and red hand, e.g. alpha1, beta3,
//     gamma11.
//   - Snap: map a pointer sample around the grid centre to the closest
//     location of a mode.
//
// Complexity:
//
//   - Every lookup is O(1) over tables of at most eight entries.
//
// Errors:
//
//   - ErrUnknownLocation:   value is not one of the eight locations.
//   - ErrUnknownMode:       value is neither diamond nor box.
//   - ErrLocationNotInMode: location is valid but not part of the mode's cycle.
//   - ErrInvalidPosition:   a location pair or text does not form a position.
//   - ErrInsideDeadZone:    a pointer sample is too close to the centre to snap.
package grid
