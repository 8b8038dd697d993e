// SPDX-License-Identifier: MIT
// Package: kinetic/letters
//
// tables_type1.go - canonical Type-1 letter tables (data-only).
//
// Purpose:
//   - Single source of truth for the dual-shift letters A..V on the diamond
//     grid. Generation logic (pattern construction, validation, caching)
//     lives in generator.go / pattern.go and never hardcodes a letter.
//
// Shape of an entry:
//   - Start: diamond start position; box generation rotates it one step.
//   - MotionPairs: allowed (blue, red) motion types, emission order.
//   - RotationPairs: allowed (blue, red) prop rotations, emission order.
//
// Type-1 letters rotate both props the same way. Hand travel then follows
// from the motion pair alone: pro/pro and anti/anti hands travel together,
// the hybrids (pro/anti, anti/pro) travel opposite ways.
//
// Notes:
//   - Keep changes append-only: never reorder existing pairs, golden IDs
//     depend on emission order.

package letters

import (
	"github.com/katalvlaran/kinetic/grid"
	"github.com/katalvlaran/kinetic/motion"
)

// Motion pair tokens.
var (
	proPro   = MotionPair{Blue: motion.Pro, Red: motion.Pro}
	antiAnti = MotionPair{Blue: motion.Anti, Red: motion.Anti}
	proAnti  = MotionPair{Blue: motion.Pro, Red: motion.Anti}
	antiPro  = MotionPair{Blue: motion.Anti, Red: motion.Pro}
)

// matchingRotations lists the Type-1 rotation pairs: both props turn the
// same way.
func matchingRotations() []RotationPair {
	return []RotationPair{
		{Blue: motion.Clockwise, Red: motion.Clockwise},
		{Blue: motion.CounterClockwise, Red: motion.CounterClockwise},
	}
}

func pos(sys grid.PositionSystem, idx int) grid.Position {
	return grid.Position{System: sys, Index: idx}
}

// entry composes a LetterConfig; it exists to keep the tables below terse.
func entry(start grid.Position, motions ...MotionPair) LetterConfig {
	return LetterConfig{Start: start, MotionPairs: motions, RotationPairs: matchingRotations()}
}

// type1Tables builds a fresh copy of the canonical tables on every call so
// callers may mutate the result.
func type1Tables() Tables {
	alpha1, beta1 := pos(grid.Alpha, 1), pos(grid.Beta, 1)
	gamma1, gamma9 := pos(grid.Gamma, 1), pos(grid.Gamma, 9)

	return Tables{
		// Hands stay opposite: they travel the same way.
		AlphaToAlpha: {
			"A": entry(alpha1, proPro),
			"B": entry(alpha1, antiAnti),
			"C": entry(alpha1, proPro, antiAnti),
		},
		// Hands split from one point to opposite points.
		BetaToAlpha: {
			"D": entry(beta1, proAnti),
			"E": entry(beta1, antiPro),
			"F": entry(beta1, proAnti, antiPro),
		},
		// Hands travel together.
		BetaToBeta: {
			"G": entry(beta1, proPro),
			"H": entry(beta1, antiAnti),
			"I": entry(beta1, proPro, antiAnti),
		},
		// Opposite hands meet.
		AlphaToBeta: {
			"J": entry(alpha1, proAnti),
			"K": entry(alpha1, antiPro),
			"L": entry(alpha1, proAnti, antiPro),
		},
		// Quarter-apart hands; M..R travel opposite ways, S..V the same way.
		GammaToGamma: {
			"M": entry(gamma1, proAnti),
			"N": entry(gamma1, antiPro),
			"O": entry(gamma1, proAnti, antiPro),
			"P": entry(gamma9, proAnti),
			"Q": entry(gamma9, antiPro),
			"R": entry(gamma9, proAnti, antiPro),
			"S": entry(gamma1, proPro),
			"T": entry(gamma1, antiAnti),
			"U": entry(gamma9, proPro),
			"V": entry(gamma9, antiAnti),
		},
	}
}
