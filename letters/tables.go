package letters

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/kinetic/grid"
	"github.com/katalvlaran/kinetic/motion"
)

// Tables maps each position system to its letters.
type Tables map[PositionSystem]map[Letter]LetterConfig

// DefaultType1Tables returns a fresh copy of the built-in tables.
func DefaultType1Tables() Tables {
	return type1Tables()
}

// Clone returns a deep copy of t.
func (t Tables) Clone() Tables {
	out := make(Tables, len(t))
	for sys, letters := range t {
		m := make(map[Letter]LetterConfig, len(letters))
		for l, cfg := range letters {
			m[l] = cfg.clone()
		}
		out[sys] = m
	}

	return out
}

func (c LetterConfig) clone() LetterConfig {
	return LetterConfig{
		Start:         c.Start,
		MotionPairs:   slices.Clone(c.MotionPairs),
		RotationPairs: slices.Clone(c.RotationPairs),
	}
}

// Letters returns every letter of t, sorted.
func (t Tables) Letters() []Letter {
	var out []Letter
	for _, letters := range t {
		for l := range letters {
			out = append(out, l)
		}
	}
	slices.Sort(out)

	return out
}

// SystemOf returns the position system listing letter.
func (t Tables) SystemOf(letter Letter) (PositionSystem, bool) {
	for sys, letters := range t {
		if _, ok := letters[letter]; ok {
			return sys, true
		}
	}

	return "", false
}

// Validate checks every entry of t and reports all defects at once, each
// wrapping ErrBadTable.
func (t Tables) Validate() error {
	var errs []error
	seen := make(map[Letter]PositionSystem)
	for _, sys := range sortedSystems(t) {
		if _, _, ok := sys.Families(); !ok {
			errs = append(errs, fmt.Errorf("Validate: system %q: %w: %w", string(sys), ErrBadTable, ErrUnknownPositionSystem))
			continue
		}
		for _, letter := range sortedLetters(t[sys]) {
			if prev, dup := seen[letter]; dup {
				errs = append(errs, fmt.Errorf("Validate: letter %q listed under %s and %s: %w", letter, prev, sys, ErrBadTable))
				continue
			}
			seen[letter] = sys
			if err := t[sys][letter].validate(sys); err != nil {
				errs = append(errs, fmt.Errorf("Validate: %s letter %q: %w", sys, letter, err))
			}
		}
	}

	return errors.Join(errs...)
}

// validate checks a single entry against its position system.
func (c LetterConfig) validate(sys PositionSystem) error {
	startFamily, _, _ := sys.Families()
	if !c.Start.Valid() || c.Start.System != startFamily {
		return fmt.Errorf("start %s not in %s family: %w", c.Start, startFamily, ErrBadTable)
	}
	if m, err := c.Start.Mode(); err != nil || m != grid.Diamond {
		return fmt.Errorf("start %s is not a diamond position: %w", c.Start, ErrBadTable)
	}
	if len(c.MotionPairs) == 0 || len(c.RotationPairs) == 0 {
		return fmt.Errorf("%d motion pairs, %d rotation pairs: %w", len(c.MotionPairs), len(c.RotationPairs), ErrBadTable)
	}
	for _, p := range c.MotionPairs {
		if !isDualShift(p.Blue) || !isDualShift(p.Red) {
			return fmt.Errorf("motion pair %s/%s: %w", p.Blue, p.Red, ErrBadTable)
		}
	}
	for _, r := range c.RotationPairs {
		if !isTurning(r.Blue) || !isTurning(r.Red) || !r.Matching() {
			return fmt.Errorf("rotation pair %s/%s is not a matching pair: %w", r.Blue, r.Red, ErrBadTable)
		}
	}

	return nil
}

// isDualShift reports whether t can appear in a Type-1 letter.
func isDualShift(t motion.MotionType) bool {
	return t == motion.Pro || t == motion.Anti
}

func isTurning(r motion.RotationDirection) bool {
	return r == motion.Clockwise || r == motion.CounterClockwise
}

// sortedSystems returns the systems of t in canonical order, unknown ones last.
func sortedSystems(t Tables) []PositionSystem {
	out := make([]PositionSystem, 0, len(t))
	for _, sys := range systemOrder {
		if _, ok := t[sys]; ok {
			out = append(out, sys)
		}
	}
	var unknown []PositionSystem
	for sys := range t {
		if !slices.Contains(systemOrder, sys) {
			unknown = append(unknown, sys)
		}
	}
	slices.Sort(unknown)

	return append(out, unknown...)
}

func sortedLetters[V any](m map[Letter]V) []Letter {
	out := make([]Letter, 0, len(m))
	for l := range m {
		out = append(out, l)
	}
	slices.Sort(out)

	return out
}
