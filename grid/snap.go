package grid

import (
	"fmt"
	"math"
)

// Point is a pointer sample relative to the grid centre in screen
// coordinates: X grows to the right, Y grows downward.
type Point struct {
	X, Y float64
}

// SnapOptions tunes Snap.
type SnapOptions struct {
	// DeadZone is the radius around the centre inside which no location is
	// chosen. Zero disables the dead zone.
	DeadZone float64
}

// DefaultSnapOptions returns SnapOptions with DeadZone=0.
func DefaultSnapOptions() SnapOptions {
	return SnapOptions{}
}

// Snap returns the location of mode m whose angle is closest to p.
// Ties resolve to the location listed first in the mode's cycle.
func Snap(p Point, m Mode, opts SnapOptions) (Location, error) {
	t, err := m.table("Snap")
	if err != nil {
		return "", err
	}
	r := math.Hypot(p.X, p.Y)
	if r == 0 || r < opts.DeadZone {
		return "", fmt.Errorf("Snap(%v, %s): radius %.2f < %.2f: %w", p, m, r, opts.DeadZone, ErrInsideDeadZone)
	}

	return nearest(t.cycle, pointAngle(p)), nil
}

// pointAngle converts a screen-space vector to degrees clockwise from north.
func pointAngle(p Point) float64 {
	// North is -Y on screen; atan2(x, -y) measures clockwise from it.
	deg := math.Atan2(p.X, -p.Y) * 180 / math.Pi

	return normalizeAngle(deg)
}

func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}

	return deg
}

// angularDistance is the short-arc distance between two angles, in [0,180].
func angularDistance(a, b float64) float64 {
	d := math.Abs(normalizeAngle(a) - normalizeAngle(b))
	if d > 180 {
		d = 360 - d
	}

	return d
}

// nearest picks the candidate with the smallest angular distance to target.
func nearest(candidates []Location, target float64) Location {
	best := candidates[0]
	bestD := math.Inf(1)
	for _, l := range candidates {
		if d := angularDistance(locations[l].angle, target); d < bestD {
			best, bestD = l, d
		}
	}

	return best
}
