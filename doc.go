// Package kinetic is the motion core of a kinetic alphabet editor: it
// classifies hand movements on a grid, converts drawn hand paths into motion
// records and enumerates the pictographs of the dual-shift letters.
//
// What is inside?
//
//	A small, deterministic library plus a CLI:
//		• Grid topology: locations, diamond/box cycles, positions, snapping
//		• Classification: static / dash / shift, CW / CCW travel
//		• Conversion: hand path + prop rotation -> pro / anti / float records
//		• Letters: table-driven Type-1 generation, cached and concurrent
//
// Packages:
//
//	grid/      - locations, modes, cycles, alpha/beta/gamma positions, pointer snapping
//	motion/    - motion enums and the MotionData record
//	handpath/  - classifier, direction detector, recorder, path converter
//	letters/   - Type-1 tables, generator, cache, registry, YAML tables
//	cmd/kinetic - command-line front end
//
// Quick ASCII example (diamond grid, clockwise N→E→S→W):
//
//	      N
//	   W  +  E
//	      S
//
// A hand moving N→E under a clockwise prop rotation is pro; under a
// counter-clockwise rotation it is anti. N→S is a dash whatever the rotation.
package kinetic
