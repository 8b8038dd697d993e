// Package handpath turns a drawn hand path into motion records.
//
// What:
//
//   - Classify / AvailableMotionTypes: label a (start, end) pair as static,
//     dash or shift and list the motion types a UI may offer for it.
//   - HandPathDirection / IsDash / IsStatic / IsShift: walk the grid mode's
//     cycle to find whether a shift travels clockwise or counter-clockwise.
//   - Recorder: build a HandPath one location (or pointer sample) at a time.
//   - DetermineMotionType / ConvertSegmentToMotion / ConvertHandPathToMotions:
//     combine a segment with the chosen prop rotation into pro, anti, float,
//     dash or static records.
//
// Decision table used by DetermineMotionType (first match wins):
//
//	static segment            -> static
//	dash segment              -> dash
//	rotation == noRotation    -> float
//	no path direction         -> float
//	path direction == rotation -> pro
//	otherwise                 -> anti
//
// Conversion is two-stage: a segment yields a SegmentMotion that carries no
// color; the path's color and grid mode are applied by Finalize.
//
// Errors:
//
//   - ErrClassification:  a location the segment's grid mode cannot place.
//   - ErrInvalidRotation: rotation is not cw, ccw or noRotation.
//   - ErrInvalidProp:     unknown prop type.
//   - ErrModeMismatch:    a segment drawn on another grid mode than its path.
//   - ErrInvalidColor:    unknown hand color.
//
// Every function is pure apart from Recorder, which is not safe for
// concurrent use.
package handpath
