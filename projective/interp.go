package projective

import (
	"math"

	"github.com/njlr/leptonica/pix"
)

// bilinear holds the four corner weights for a fractional source location.
type bilinear struct {
	x0, y0             int
	w00, w10, w01, w11 float64
}

// newBilinear returns the blend for (x, y), or false when no corner can lie
// inside a w×h image. NaN coordinates always report false.
func newBilinear(x, y float64, w, h int) (bilinear, bool) {
	if !(x > -1 && x < float64(w) && y > -1 && y < float64(h)) {
		return bilinear{}, false
	}
	fx, fy := math.Floor(x), math.Floor(y)
	dx, dy := x-fx, y-fy
	return bilinear{
		x0:  int(fx),
		y0:  int(fy),
		w00: (1 - dx) * (1 - dy),
		w10: dx * (1 - dy),
		w01: (1 - dx) * dy,
		w11: dx * dy,
	}, true
}

func (b bilinear) blend(v00, v10, v01, v11 uint8) uint8 {
	v := b.w00*float64(v00) + b.w10*float64(v10) + b.w01*float64(v01) + b.w11*float64(v11) + 0.5
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v)
}

// InterpolateGray returns the bilinear blend of the four 8 bpp pixels around
// (x, y). Corners outside the image contribute border instead.
func InterpolateGray(src *pix.Pix, x, y float64, border uint8) uint8 {
	w, h := src.Width(), src.Height()
	b, ok := newBilinear(x, y, w, h)
	if !ok {
		return border
	}
	at := func(px, py int) uint8 {
		if px < 0 || py < 0 || px >= w || py >= h {
			return border
		}
		return uint8(pix.GetDataByte(src.Line(py), px))
	}
	return b.blend(at(b.x0, b.y0), at(b.x0+1, b.y0), at(b.x0, b.y0+1), at(b.x0+1, b.y0+1))
}

// InterpolateColor is InterpolateGray for 32 bpp images. Each byte of the
// packed value is blended on its own.
func InterpolateColor(src *pix.Pix, x, y float64, border uint32) uint32 {
	w, h := src.Width(), src.Height()
	b, ok := newBilinear(x, y, w, h)
	if !ok {
		return border
	}
	at := func(px, py int) uint32 {
		if px < 0 || py < 0 || px >= w || py >= h {
			return border
		}
		return src.Line(py)[px]
	}
	p00, p10, p01, p11 := at(b.x0, b.y0), at(b.x0+1, b.y0), at(b.x0, b.y0+1), at(b.x0+1, b.y0+1)

	var out uint32
	for _, shift := range [...]uint{pix.RedShift, pix.GreenShift, pix.BlueShift, pix.AlphaShift} {
		v := b.blend(uint8(p00>>shift), uint8(p10>>shift), uint8(p01>>shift), uint8(p11>>shift))
		out |= uint32(v) << shift
	}
	return out
}
