package handpath

import "errors"

var (
	// ErrClassification indicates a segment whose locations its grid mode cannot place.
	// It is distinct from "no direction", which is a valid outcome for static and dash.
	ErrClassification = errors.New("handpath: cannot classify segment")
	// ErrInvalidRotation indicates a rotation outside cw, ccw and noRotation.
	ErrInvalidRotation = errors.New("handpath: invalid rotation direction")
	// ErrInvalidProp indicates an unknown prop type.
	ErrInvalidProp = errors.New("handpath: invalid prop type")
	// ErrInvalidColor indicates an unknown hand color.
	ErrInvalidColor = errors.New("handpath: invalid color")
	// ErrModeMismatch indicates a segment whose grid mode differs from its path.
	ErrModeMismatch = errors.New("handpath: segment grid mode differs from path")
)
