package grid

import (
	"fmt"
	"strings"
)

// Location is one of the eight compass points of the grid.
type Location string

const (
	North     Location = "n"
	NorthEast Location = "ne"
	East      Location = "e"
	SouthEast Location = "se"
	South     Location = "s"
	SouthWest Location = "sw"
	West      Location = "w"
	NorthWest Location = "nw"
)

// Mode selects the grid topology: Diamond uses the cardinal points, Box the
// intercardinal ones.
type Mode string

const (
	// Diamond uses N, E, S, W.
	Diamond Mode = "diamond"
	// Box uses NE, SE, SW, NW.
	Box Mode = "box"
)

// locationInfo holds the fixed geometry of a location.
type locationInfo struct {
	angle    float64 // degrees clockwise from north
	opposite Location
	name     string // long form accepted by ParseLocation
}

// locations is the immutable geometry table, listed clockwise from north.
var locations = map[Location]locationInfo{
	North:     {angle: 0, opposite: South, name: "north"},
	NorthEast: {angle: 45, opposite: SouthWest, name: "northeast"},
	East:      {angle: 90, opposite: West, name: "east"},
	SouthEast: {angle: 135, opposite: NorthWest, name: "southeast"},
	South:     {angle: 180, opposite: North, name: "south"},
	SouthWest: {angle: 225, opposite: NorthEast, name: "southwest"},
	West:      {angle: 270, opposite: East, name: "west"},
	NorthWest: {angle: 315, opposite: SouthEast, name: "northwest"},
}

// allLocations lists every location clockwise from north.
var allLocations = []Location{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// AllLocations returns the eight locations clockwise from north.
// The returned slice is a fresh copy.
func AllLocations() []Location {
	out := make([]Location, len(allLocations))
	copy(out, allLocations)

	return out
}

// Valid reports whether l is one of the eight locations.
func (l Location) Valid() bool {
	_, ok := locations[l]
	return ok
}

// Angle returns the angle of l in degrees clockwise from north.
func (l Location) Angle() (float64, error) {
	info, ok := locations[l]
	if !ok {
		return 0, fmt.Errorf("Angle(%q): %w", string(l), ErrUnknownLocation)
	}

	return info.angle, nil
}

// Opposite returns the diametrically opposite location, or "" if l is unknown.
func (l Location) Opposite() Location {
	return locations[l].opposite
}

// String returns the short upper-case form, e.g. "NE".
func (l Location) String() string {
	return strings.ToUpper(string(l))
}

// ParseLocation accepts short ("ne", "NE") and long ("northeast",
// "NORTH_EAST") forms.
func ParseLocation(s string) (Location, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
	if l := Location(key); l.Valid() {
		return l, nil
	}
	for _, l := range allLocations {
		if locations[l].name == key {
			return l, nil
		}
	}

	return "", fmt.Errorf("ParseLocation(%q): %w", s, ErrUnknownLocation)
}

// Valid reports whether m is a known grid mode.
func (m Mode) Valid() bool {
	_, ok := modes[m]
	return ok
}

// ParseMode accepts "diamond" or "box" in any case.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
	}

	return m, nil
}

// ModeOf returns the grid mode whose cycle contains l.
func ModeOf(l Location) (Mode, error) {
	for _, m := range []Mode{Diamond, Box} {
		if m.Contains(l) {
			return m, nil
		}
	}

	return "", fmt.Errorf("ModeOf(%q): %w", string(l), ErrUnknownLocation)
}
