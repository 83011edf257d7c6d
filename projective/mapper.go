package projective

import (
	"fmt"
	"math"
)

// MapSampled maps the integer point (x, y) and rounds the result to the
// nearest pixel. Results that are not finite or do not fit in an int32 are
// returned as math.MinInt32, which lies outside every image.
func (c *Coeffs) MapSampled(x, y int) (xp, yp int) {
	fx, fy := float64(x), float64(y)
	factor := 1 / (c[6]*fx + c[7]*fy + 1)
	return roundSample(factor * (c[0]*fx + c[1]*fy + c[2])),
		roundSample(factor * (c[3]*fx + c[4]*fy + c[5]))
}

// Map maps (x, y) without rounding. A zero denominator yields an infinite
// or NaN coordinate.
func (c *Coeffs) Map(x, y float64) (xp, yp float64) {
	factor := 1 / (c[6]*x + c[7]*y + 1)
	return factor * (c[0]*x + c[1]*y + c[2]), factor * (c[3]*x + c[4]*y + c[5])
}

// MapSampled is the nil-checked form of Coeffs.MapSampled.
func MapSampled(vc *Coeffs, x, y int) (xp, yp int, err error) {
	if vc == nil {
		return 0, 0, fmt.Errorf("projective: map sampled: %w", ErrNullArgument)
	}
	xp, yp = vc.MapSampled(x, y)
	return xp, yp, nil
}

// Map is the nil-checked form of Coeffs.Map.
func Map(vc *Coeffs, x, y float64) (xp, yp float64, err error) {
	if vc == nil {
		return 0, 0, fmt.Errorf("projective: map: %w", ErrNullArgument)
	}
	xp, yp = vc.Map(x, y)
	return xp, yp, nil
}

// roundSample adds one half and truncates toward zero.
func roundSample(v float64) int {
	v += 0.5
	if math.IsNaN(v) || v <= math.MinInt32 || v > math.MaxInt32 {
		return math.MinInt32
	}
	return int(v)
}
