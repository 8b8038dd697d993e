package letters

import "fmt"

// timingDirection is the generic classification of a position system.
type timingDirection struct {
	timing    Timing
	direction Direction
}

// systemTimings is keyed by position-system name, the lookup key a
// generator's Config carries.
var systemTimings = map[string]timingDirection{
	string(AlphaToAlpha): {timing: Split, direction: Same},
	string(BetaToAlpha):  {timing: Tog, direction: Opp},
	string(BetaToBeta):   {timing: Tog, direction: Same},
	string(AlphaToBeta):  {timing: Split, direction: Opp},
	string(GammaToGamma): {timing: Quarter, direction: Opp},
}

// directionOverrides lists letters whose direction differs from their
// system's generic one. Add new exceptions here, never inline.
var directionOverrides = map[PositionSystem]map[Letter]Direction{
	GammaToGamma: {
		"S": Same,
		"T": Same,
		"U": Same,
		"V": Same,
	},
}

// resolveTiming returns the timing and direction for letter under the named
// position system, applying directionOverrides.
func resolveTiming(name string, sys PositionSystem, letter Letter) (Timing, Direction, error) {
	td, ok := systemTimings[name]
	if !ok {
		return "", "", fmt.Errorf("resolveTiming(%q): %w", name, ErrUnknownPositionSystem)
	}
	if d, ok := directionOverrides[sys][letter]; ok {
		return td.timing, d, nil
	}

	return td.timing, td.direction, nil
}
