package handpath

import (
	"fmt"

	"github.com/katalvlaran/kinetic/grid"
	"github.com/katalvlaran/kinetic/motion"
)

// Segment is one edge of a drawn hand path. It carries the grid mode it was
// drawn on so direction detection never has to assume one.
type Segment struct {
	Start          grid.Location         `json:"start" yaml:"start"`
	End            grid.Location         `json:"end" yaml:"end"`
	HandMotionType motion.HandMotionType `json:"handMotionType" yaml:"handMotionType"`
	GridMode       grid.Mode             `json:"gridMode" yaml:"gridMode"`
}

// NewSegment classifies start->end and checks both locations belong to mode.
func NewSegment(start, end grid.Location, mode grid.Mode) (Segment, error) {
	if !mode.Valid() {
		return Segment{}, fmt.Errorf("NewSegment(%s, %s, %q): %w", start, end, string(mode), grid.ErrUnknownMode)
	}
	if err := checkInMode("NewSegment", start, end, mode); err != nil {
		return Segment{}, err
	}

	return Segment{Start: start, End: end, HandMotionType: Classify(start, end), GridMode: mode}, nil
}

// HandPath is the ordered list of segments drawn by one hand.
type HandPath struct {
	Color    motion.Color `json:"color" yaml:"color"`
	GridMode grid.Mode    `json:"gridMode" yaml:"gridMode"`
	Segments []Segment    `json:"segments" yaml:"segments"`
}

// Locations returns the visited locations: the first segment's start
// followed by every segment's end.
func (p HandPath) Locations() []grid.Location {
	if len(p.Segments) == 0 {
		return nil
	}
	out := make([]grid.Location, 0, len(p.Segments)+1)
	out = append(out, p.Segments[0].Start)
	for _, s := range p.Segments {
		out = append(out, s.End)
	}

	return out
}

// Recorder builds a HandPath incrementally as a gesture is drawn.
// A Recorder is not safe for concurrent use.
type Recorder struct {
	color    motion.Color
	mode     grid.Mode
	snap     grid.SnapOptions
	last     grid.Location
	started  bool
	segments []Segment
}

// NewRecorder returns an empty recorder for one hand on one grid mode.
func NewRecorder(color motion.Color, mode grid.Mode) (*Recorder, error) {
	if !color.Valid() {
		return nil, fmt.Errorf("NewRecorder(%q): %w", string(color), ErrInvalidColor)
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("NewRecorder(%q): %w", string(mode), grid.ErrUnknownMode)
	}

	return &Recorder{color: color, mode: mode, snap: grid.DefaultSnapOptions()}, nil
}

// SetSnapOptions changes how AddPoint snaps pointer samples.
func (r *Recorder) SetSnapOptions(opts grid.SnapOptions) {
	r.snap = opts
}

// Add records l. The first location only anchors the path; every later one
// appends a segment from the previous location. Repeating a location
// appends a static segment.
func (r *Recorder) Add(l grid.Location) error {
	if !r.started {
		if !r.mode.Contains(l) {
			return fmt.Errorf("Add(%q): %w: %w", string(l), ErrClassification, grid.ErrLocationNotInMode)
		}
		r.last, r.started = l, true

		return nil
	}
	seg, err := NewSegment(r.last, l, r.mode)
	if err != nil {
		return err
	}
	r.segments = append(r.segments, seg)
	r.last = l

	return nil
}

// AddPoint snaps a pointer sample to the recorder's grid mode and records
// it, unless it lands on the location recorded last. It returns whether a
// location was recorded.
func (r *Recorder) AddPoint(p grid.Point) (bool, error) {
	l, err := grid.Snap(p, r.mode, r.snap)
	if err != nil {
		return false, err
	}
	if r.started && l == r.last {
		return false, nil
	}

	if err := r.Add(l); err != nil {
		return false, err
	}

	return true, nil
}

// Len returns the number of recorded segments.
func (r *Recorder) Len() int {
	return len(r.segments)
}

// Path returns a snapshot of the recorded path.
func (r *Recorder) Path() HandPath {
	segs := make([]Segment, len(r.segments))
	copy(segs, r.segments)

	return HandPath{Color: r.color, GridMode: r.mode, Segments: segs}
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.last, r.started, r.segments = "", false, nil
}
