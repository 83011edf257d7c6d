package projective

import "errors"

var (
	// ErrNullArgument is returned when a required image, point list or
	// coefficient vector is nil.
	ErrNullArgument = errors.New("argument not defined")

	// ErrInvalidBorder is returned for a BorderColor other than
	// BringInWhite or BringInBlack.
	ErrInvalidBorder = errors.New("invalid border color")

	// ErrInvalidCount is returned when a point list does not hold exactly
	// four points.
	ErrInvalidCount = errors.New("need exactly 4 points")

	// ErrUnsupportedDepth is returned when the image depth is not handled
	// by the requested operation.
	ErrUnsupportedDepth = errors.New("unsupported depth")

	// ErrDegenerateSystem is returned when the point correspondences do not
	// determine a projective map, e.g. three collinear points.
	ErrDegenerateSystem = errors.New("degenerate point configuration")
)
