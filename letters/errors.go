// SPDX-License-Identifier: MIT
// Package: kinetic/letters
//
// errors.go - sentinel errors for the letters package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w, prefixed by the method name.
//   - ErrUnsupportedLetter is the expected, recoverable guard (check
//     SupportsLetter first). ErrInvalidPattern and ErrBadTable indicate a
//     configuration defect and should not be retried.

package letters

import "errors"

// ErrUnsupportedLetter indicates a letter absent from the generator's table.
var ErrUnsupportedLetter = errors.New("letters: unsupported letter")

// ErrInvalidPattern indicates that a constructed pattern was rejected by the
// validator or could not be built. The letter's table entry is defective.
var ErrInvalidPattern = errors.New("letters: invalid pattern")

// ErrBadTable indicates a malformed letter table: unknown enums, a start
// position outside the system's start family, empty pair lists, a
// non-matching rotation pair, or a letter listed under two systems.
var ErrBadTable = errors.New("letters: bad letter table")

// ErrUnknownPositionSystem indicates a Config naming a position system with
// no timing/direction entry.
var ErrUnknownPositionSystem = errors.New("letters: unknown position system")
