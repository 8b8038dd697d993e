package letters

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/kinetic/grid"
	"github.com/katalvlaran/kinetic/motion"
)

// Letter identifies a glyph of the kinetic alphabet, e.g. "A" or "S".
type Letter string

// ParseLetter trims s and normalises it to NFC so that composed and
// decomposed input name the same letter. Case is preserved.
func ParseLetter(s string) (Letter, error) {
	l := norm.NFC.String(strings.TrimSpace(s))
	if l == "" {
		return "", fmt.Errorf("ParseLetter(%q): empty: %w", s, ErrUnsupportedLetter)
	}

	return Letter(l), nil
}

// PositionSystem is the start→end position family of a letter group.
type PositionSystem string

const (
	AlphaToAlpha PositionSystem = "alpha_to_alpha"
	BetaToAlpha  PositionSystem = "beta_to_alpha"
	BetaToBeta   PositionSystem = "beta_to_beta"
	AlphaToBeta  PositionSystem = "alpha_to_beta"
	GammaToGamma PositionSystem = "gamma_to_gamma"
)

// families maps each system to its start and end position families.
var families = map[PositionSystem][2]grid.PositionSystem{
	AlphaToAlpha: {grid.Alpha, grid.Alpha},
	BetaToAlpha:  {grid.Beta, grid.Alpha},
	BetaToBeta:   {grid.Beta, grid.Beta},
	AlphaToBeta:  {grid.Alpha, grid.Beta},
	GammaToGamma: {grid.Gamma, grid.Gamma},
}

// systemOrder is the canonical order of position systems.
var systemOrder = []PositionSystem{AlphaToAlpha, BetaToAlpha, BetaToBeta, AlphaToBeta, GammaToGamma}

// PositionSystems returns every known position system in canonical order.
func PositionSystems() []PositionSystem {
	out := make([]PositionSystem, len(systemOrder))
	copy(out, systemOrder)

	return out
}

// Families returns the start and end position families of s.
func (s PositionSystem) Families() (start, end grid.PositionSystem, ok bool) {
	f, ok := families[s]
	return f[0], f[1], ok
}

// Timing describes when the two hands move relative to each other.
type Timing string

const (
	Split   Timing = "split"
	Tog     Timing = "tog"
	Quarter Timing = "quarter"
)

// Direction relates the travel directions of the two hands.
type Direction string

const (
	// Same: both hands travel the same way round the grid.
	Same Direction = "same"
	// Opp: the hands travel opposite ways.
	Opp Direction = "opp"
)

// MotionPair is a (blue, red) motion-type combination.
type MotionPair struct {
	Blue motion.MotionType `json:"blue" yaml:"blue"`
	Red  motion.MotionType `json:"red" yaml:"red"`
}

// RotationPair is a (blue, red) prop-rotation combination.
type RotationPair struct {
	Blue motion.RotationDirection `json:"blue" yaml:"blue"`
	Red  motion.RotationDirection `json:"red" yaml:"red"`
}

// Matching reports whether both props rotate the same way.
func (r RotationPair) Matching() bool {
	return r.Blue == r.Red
}

// LetterConfig is the data-only description of one letter.
type LetterConfig struct {
	// Start is the diamond-grid start position; box generation rotates it.
	Start         grid.Position  `json:"start" yaml:"start"`
	MotionPairs   []MotionPair   `json:"motions" yaml:"motions"`
	RotationPairs []RotationPair `json:"rotations" yaml:"rotations"`
}

// Combinations returns len(MotionPairs) × len(RotationPairs).
func (c LetterConfig) Combinations() int {
	return len(c.MotionPairs) * len(c.RotationPairs)
}

// Pictograph is one candidate pattern of a letter.
type Pictograph struct {
	ID             string            `json:"id" yaml:"id"`
	Letter         Letter            `json:"letter" yaml:"letter"`
	PositionSystem PositionSystem    `json:"positionSystem" yaml:"positionSystem"`
	StartPosition  grid.Position     `json:"startPosition" yaml:"startPosition"`
	EndPosition    grid.Position     `json:"endPosition" yaml:"endPosition"`
	Timing         Timing            `json:"timing" yaml:"timing"`
	Direction      Direction         `json:"direction" yaml:"direction"`
	GridMode       grid.Mode         `json:"gridMode" yaml:"gridMode"`
	Blue           motion.MotionData `json:"blue" yaml:"blue"`
	Red            motion.MotionData `json:"red" yaml:"red"`
}

// Motion returns the record of the given hand.
func (p Pictograph) Motion(c motion.Color) (motion.MotionData, bool) {
	switch c {
	case motion.Blue:
		return p.Blue, true
	case motion.Red:
		return p.Red, true
	}

	return motion.MotionData{}, false
}
