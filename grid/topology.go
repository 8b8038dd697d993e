// SPDX-License-Identifier: MIT
// Package: kinetic/grid
//
// topology.go - per-mode cycles and angle tables.
//
// Contract:
//   - Every mode owns a clockwise cycle of four locations. Next walks
//     clockwise, Prev counter-clockwise; both wrap.
//   - Every location of a mode has an angle in that mode's table.
//   - Methods never panic; unknown modes or foreign locations are reported
//     with ErrUnknownMode / ErrLocationNotInMode.
//
// Complexity:
//   - All lookups O(1); the tables are built once at package init.

package grid

import "fmt"

// modeTable is the topology of one grid mode.
type modeTable struct {
	cycle  []Location           // clockwise order
	index  map[Location]int     // location -> position in cycle
	angles map[Location]float64 // location -> degrees clockwise from north
}

// newModeTable derives the index and angle tables from a clockwise cycle.
func newModeTable(cycle ...Location) modeTable {
	t := modeTable{
		cycle:  cycle,
		index:  make(map[Location]int, len(cycle)),
		angles: make(map[Location]float64, len(cycle)),
	}
	for i, l := range cycle {
		t.index[l] = i
		t.angles[l] = locations[l].angle
	}

	return t
}

var modes = map[Mode]modeTable{
	Diamond: newModeTable(North, East, South, West),
	Box:     newModeTable(NorthEast, SouthEast, SouthWest, NorthWest),
}

// Locations returns the mode's cycle in clockwise order, or nil for an
// unknown mode.
func (m Mode) Locations() []Location {
	t, ok := modes[m]
	if !ok {
		return nil
	}
	out := make([]Location, len(t.cycle))
	copy(out, t.cycle)

	return out
}

// Contains reports whether l is part of the mode's cycle.
func (m Mode) Contains(l Location) bool {
	_, ok := modes[m].index[l]
	return ok
}

// Angle returns the angle of l under mode m.
func (m Mode) Angle(l Location) (float64, error) {
	t, err := m.table("Angle")
	if err != nil {
		return 0, err
	}
	a, ok := t.angles[l]
	if !ok {
		return 0, fmt.Errorf("Angle(%s, %q): %w", m, string(l), ErrLocationNotInMode)
	}

	return a, nil
}

// Next returns the clockwise neighbour of l in the mode's cycle.
func (m Mode) Next(l Location) (Location, error) {
	return m.step("Next", l, 1)
}

// Prev returns the counter-clockwise neighbour of l in the mode's cycle.
func (m Mode) Prev(l Location) (Location, error) {
	return m.step("Prev", l, -1)
}

// Step walks n cycle steps from l; positive n is clockwise.
func (m Mode) Step(l Location, n int) (Location, error) {
	return m.step("Step", l, n)
}

func (m Mode) step(method string, l Location, n int) (Location, error) {
	t, err := m.table(method)
	if err != nil {
		return "", err
	}
	i, ok := t.index[l]
	if !ok {
		return "", fmt.Errorf("%s(%s, %q): %w", method, m, string(l), ErrLocationNotInMode)
	}
	size := len(t.cycle)

	return t.cycle[((i+n)%size+size)%size], nil
}

func (m Mode) table(method string) (modeTable, error) {
	t, ok := modes[m]
	if !ok {
		return modeTable{}, fmt.Errorf("%s(%q): %w", method, string(m), ErrUnknownMode)
	}

	return t, nil
}

// Between returns the location bisecting the short arc from a to b, e.g.
// Between(N, E) == NE. For identical or opposite locations there is no
// unique bisector and a itself is returned.
func Between(a, b Location) (Location, error) {
	ia, okA := locations[a]
	ib, okB := locations[b]
	if !okA || !okB {
		return "", fmt.Errorf("Between(%q, %q): %w", string(a), string(b), ErrUnknownLocation)
	}
	if a == b || ia.opposite == b {
		return a, nil
	}
	diff := ib.angle - ia.angle
	if diff > 180 {
		diff -= 360
	} else if diff < -180 {
		diff += 360
	}
	target := normalizeAngle(ia.angle + diff/2)

	return nearest(allLocations, target), nil
}
