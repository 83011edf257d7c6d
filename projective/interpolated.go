package projective

import (
	"fmt"

	"github.com/njlr/leptonica/pix"
)

// TransformPoints is Transform with the map solved from four destination
// corners and their source corners.
func TransformPoints(pixs *pix.Pix, dst, src []Point, border BorderColor) (*pix.Pix, error) {
	if pixs == nil {
		return nil, fmt.Errorf("projective: transform: %w", ErrNullArgument)
	}
	vc, err := Solve(dst, src)
	if err != nil {
		return nil, err
	}
	return Transform(pixs, vc, border)
}

// Transform warps pixs with bilinear interpolation, vc mapping destination
// coordinates to source coordinates.
//
// 1 bpp images are warped with Sampled. Otherwise any colormap is removed
// and depths below 8 are promoted to 8 bpp gray, so the result is 8 bpp gray
// or 32 bpp color.
func Transform(pixs *pix.Pix, vc *Coeffs, border BorderColor) (*pix.Pix, error) {
	if pixs == nil || vc == nil {
		return nil, fmt.Errorf("projective: transform: %w", ErrNullArgument)
	}
	if !border.valid() {
		return nil, fmt.Errorf("projective: transform: %v: %w", border, ErrInvalidBorder)
	}
	if pixs.Depth() == 1 {
		Logger().Debug("projective: 1 bpp image, using sampled transform")
		return Sampled(pixs, vc, border)
	}

	pixt, err := pix.RemoveColormap(pixs, pix.RemoveBasedOnSrc)
	if err != nil {
		return nil, fmt.Errorf("projective: transform: %w", err)
	}
	if pixt.Depth() < 8 {
		if pixt, err = pix.ConvertTo8(pixt); err != nil {
			return nil, fmt.Errorf("projective: transform: %w", err)
		}
	}
	if pixt.Depth() != pixs.Depth() || pixs.Colormap() != nil {
		Logger().Debug("projective: normalised source",
			"from_depth", pixs.Depth(), "to_depth", pixt.Depth(),
			"colormap", pixs.Colormap() != nil)
	}

	if pixt.Depth() == 8 {
		return interpolate(pixt, vc, uint32(grayBorder(border)))
	}
	return interpolate(pixt, vc, colorBorder(border))
}

// GrayPoints is Gray with the map solved from point correspondences.
func GrayPoints(pixs *pix.Pix, dst, src []Point, grayval uint8) (*pix.Pix, error) {
	if pixs == nil {
		return nil, fmt.Errorf("projective: gray: %w", ErrNullArgument)
	}
	vc, err := Solve(dst, src)
	if err != nil {
		return nil, err
	}
	return Gray(pixs, vc, grayval)
}

// Gray warps an 8 bpp gray image with bilinear interpolation, filling
// uncovered pixels with grayval.
func Gray(pixs *pix.Pix, vc *Coeffs, grayval uint8) (*pix.Pix, error) {
	if pixs == nil || vc == nil {
		return nil, fmt.Errorf("projective: gray: %w", ErrNullArgument)
	}
	if pixs.Depth() != 8 || pixs.Colormap() != nil {
		return nil, fmt.Errorf("projective: gray: depth %d (colormap %t): %w",
			pixs.Depth(), pixs.Colormap() != nil, ErrUnsupportedDepth)
	}
	return interpolate(pixs, vc, uint32(grayval))
}

// ColorPoints is Color with the map solved from point correspondences.
func ColorPoints(pixs *pix.Pix, dst, src []Point, colorval uint32) (*pix.Pix, error) {
	if pixs == nil {
		return nil, fmt.Errorf("projective: color: %w", ErrNullArgument)
	}
	vc, err := Solve(dst, src)
	if err != nil {
		return nil, err
	}
	return Color(pixs, vc, colorval)
}

// Color warps a 32 bpp image with bilinear interpolation, filling uncovered
// pixels with the packed value colorval.
func Color(pixs *pix.Pix, vc *Coeffs, colorval uint32) (*pix.Pix, error) {
	if pixs == nil || vc == nil {
		return nil, fmt.Errorf("projective: color: %w", ErrNullArgument)
	}
	if pixs.Depth() != 32 {
		return nil, fmt.Errorf("projective: color: depth %d: %w", pixs.Depth(), ErrUnsupportedDepth)
	}
	return interpolate(pixs, vc, colorval)
}

// interpolate is the pass shared by every interpolated entry point. pixs is
// 8 bpp gray or 32 bpp color without a colormap.
func interpolate(pixs *pix.Pix, vc *Coeffs, border uint32) (*pix.Pix, error) {
	w, h, d := pixs.Dimensions()
	pixd, err := pix.New(w, h, d)
	if err != nil {
		return nil, fmt.Errorf("projective: interpolate: %w", err)
	}
	pixd.SetAllArbitrary(border)

	for i := 0; i < h; i++ {
		lined := pixd.Line(i)
		for j := 0; j < w; j++ {
			x, y := vc.Map(float64(j), float64(i))
			if d == 8 {
				v := InterpolateGray(pixs, x, y, uint8(border))
				pix.SetDataByte(lined, j, uint32(v))
			} else {
				lined[j] = InterpolateColor(pixs, x, y, border)
			}
		}
	}
	return pixd, nil
}
