package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// PositionSystem is the family of a hand position.
type PositionSystem string

const (
	// Alpha: hands on opposite locations.
	Alpha PositionSystem = "alpha"
	// Beta: hands on the same location.
	Beta PositionSystem = "beta"
	// Gamma: hands a quarter turn apart.
	Gamma PositionSystem = "gamma"
)

// positionCount is the number of indices in each family.
var positionCount = map[PositionSystem]int{
	Alpha: 8,
	Beta:  8,
	Gamma: 16,
}

// positionOrder numbers the blue hand's location, clockwise from south.
var positionOrder = []Location{South, SouthWest, West, NorthWest, North, NorthEast, East, SouthEast}

// Position is a hand position such as alpha1 or gamma11.
//
// Index counts the blue location clockwise from south (S=1 ... SE=8). Gamma
// positions with the red hand counter-clockwise of the blue hand are offset
// by 8 (gamma9..gamma16).
type Position struct {
	System PositionSystem
	Index  int
}

// Valid reports whether p names an existing position.
func (p Position) Valid() bool {
	n, ok := positionCount[p.System]
	return ok && p.Index >= 1 && p.Index <= n
}

// String returns the text form, e.g. "alpha1".
func (p Position) String() string {
	return string(p.System) + strconv.Itoa(p.Index)
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("MarshalText(%+v): %w", p, ErrInvalidPosition)
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(text []byte) error {
	parsed, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}

// ParsePosition parses "alpha1", "Beta3", "gamma11".
func ParsePosition(s string) (Position, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for sys := range positionCount {
		rest, ok := strings.CutPrefix(key, string(sys))
		if !ok {
			continue
		}
		idx, err := strconv.Atoi(rest)
		if err != nil {
			break
		}
		p := Position{System: sys, Index: idx}
		if !p.Valid() {
			break
		}

		return p, nil
	}

	return Position{}, fmt.Errorf("ParsePosition(%q): %w", s, ErrInvalidPosition)
}

// ResolvePosition derives the position formed by the blue and red hands.
func ResolvePosition(blue, red Location) (Position, error) {
	bi, okB := locations[blue]
	ri, okR := locations[red]
	if !okB || !okR {
		return Position{}, fmt.Errorf("ResolvePosition(%q, %q): %w", string(blue), string(red), ErrUnknownLocation)
	}
	idx := orderIndex(blue) + 1
	switch normalizeAngle(ri.angle - bi.angle) {
	case 0:
		return Position{System: Beta, Index: idx}, nil
	case 180:
		return Position{System: Alpha, Index: idx}, nil
	case 90:
		return Position{System: Gamma, Index: idx}, nil
	case 270:
		return Position{System: Gamma, Index: idx + 8}, nil
	}

	return Position{}, fmt.Errorf("ResolvePosition(%s, %s): hands %v apart: %w",
		blue, red, angularDistance(bi.angle, ri.angle), ErrInvalidPosition)
}

// Locations returns the blue and red locations of p.
func (p Position) Locations() (blue, red Location, err error) {
	if !p.Valid() {
		return "", "", fmt.Errorf("Locations(%+v): %w", p, ErrInvalidPosition)
	}
	blue = positionOrder[(p.Index-1)%8]
	angle := locations[blue].angle
	switch {
	case p.System == Alpha:
		red = blue.Opposite()
	case p.System == Beta:
		red = blue
	case p.Index <= 8:
		red = nearest(allLocations, normalizeAngle(angle+90))
	default:
		red = nearest(allLocations, normalizeAngle(angle-90))
	}

	return blue, red, nil
}

// Mode returns the grid mode the position is drawn on.
func (p Position) Mode() (Mode, error) {
	blue, _, err := p.Locations()
	if err != nil {
		return "", err
	}

	return ModeOf(blue)
}

// Rotate turns both hands by steps eighths of a circle; positive is
// clockwise. One step moves a diamond position onto the box grid.
func (p Position) Rotate(steps int) (Position, error) {
	if !p.Valid() {
		return Position{}, fmt.Errorf("Rotate(%+v): %w", p, ErrInvalidPosition)
	}
	base := 0
	if p.Index > 8 {
		base = 8
	}
	i := ((p.Index-1-base+steps)%8 + 8) % 8

	return Position{System: p.System, Index: base + i + 1}, nil
}

func orderIndex(l Location) int {
	for i, o := range positionOrder {
		if o == l {
			return i
		}
	}

	return -1
}
