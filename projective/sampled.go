package projective

import (
	"fmt"

	"github.com/njlr/leptonica/pix"
)

// SampledPoints warps pixs by nearest-pixel sampling. dst and src are the
// four matching corners in the destination and source images.
func SampledPoints(pixs *pix.Pix, dst, src []Point, border BorderColor) (*pix.Pix, error) {
	if pixs == nil {
		return nil, fmt.Errorf("projective: sampled: %w", ErrNullArgument)
	}
	vc, err := Solve(dst, src)
	if err != nil {
		return nil, err
	}
	return Sampled(pixs, vc, border)
}

// Sampled warps pixs by nearest-pixel sampling, with vc mapping destination
// coordinates to source coordinates. The result has the depth and size of
// pixs. A colormap is copied, with the border color added if it has room.
//
// At 1 bpp the border follows the bilevel convention: white clears the
// canvas and black sets it. At higher depths without a colormap, black
// clears and white sets every bit.
func Sampled(pixs *pix.Pix, vc *Coeffs, border BorderColor) (*pix.Pix, error) {
	if pixs == nil || vc == nil {
		return nil, fmt.Errorf("projective: sampled: %w", ErrNullArgument)
	}
	if !border.valid() {
		return nil, fmt.Errorf("projective: sampled: %v: %w", border, ErrInvalidBorder)
	}
	w, h, d := pixs.Dimensions()
	if !pix.ValidDepth(d) {
		return nil, fmt.Errorf("projective: sampled: depth %d: %w", d, ErrUnsupportedDepth)
	}

	pixd := pix.CreateTemplate(pixs)
	if cmap := pixd.Colormap(); cmap != nil {
		idx, err := cmap.AddBlackOrWhite(border == BringInWhite)
		if err != nil {
			return nil, fmt.Errorf("projective: sampled: border entry: %w", err)
		}
		pixd.SetAllArbitrary(uint32(idx))
	} else if (d == 1 && border == BringInWhite) || (d > 1 && border == BringInBlack) {
		pixd.ClearAll()
	} else {
		pixd.SetAll()
	}

	for i := 0; i < h; i++ {
		lined := pixd.Line(i)
		for j := 0; j < w; j++ {
			x, y := vc.MapSampled(j, i)
			if x < 0 || y < 0 || x >= w || y >= h {
				continue
			}
			lines := pixs.Line(y)
			switch d {
			case 1:
				pix.SetDataBitVal(lined, j, pix.GetDataBit(lines, x))
			case 2:
				pix.SetDataDibit(lined, j, pix.GetDataDibit(lines, x))
			case 4:
				pix.SetDataQbit(lined, j, pix.GetDataQbit(lines, x))
			case 8:
				pix.SetDataByte(lined, j, pix.GetDataByte(lines, x))
			case 32:
				lined[j] = lines[x]
			}
		}
	}
	return pixd, nil
}
