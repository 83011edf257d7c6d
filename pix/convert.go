package pix

import "fmt"

// RemovePolicy selects the output of RemoveColormap.
type RemovePolicy int

const (
	// RemoveBasedOnSrc picks full color if any entry has color, else
	// binary for 1 bpp and grayscale otherwise.
	RemoveBasedOnSrc RemovePolicy = iota
	// RemoveToBinary produces 1 bpp, thresholding gray at 128.
	RemoveToBinary
	// RemoveToGrayscale produces 8 bpp gray.
	RemoveToGrayscale
	// RemoveToFullColor produces 32 bpp RGB.
	RemoveToFullColor
)

func (rp RemovePolicy) String() string {
	switch rp {
	case RemoveBasedOnSrc:
		return "based-on-src"
	case RemoveToBinary:
		return "to-binary"
	case RemoveToGrayscale:
		return "to-grayscale"
	case RemoveToFullColor:
		return "to-full-color"
	default:
		return fmt.Sprintf("RemovePolicy(%d)", int(rp))
	}
}

// RemoveColormap returns a copy of p with true sample values in place of
// colormap indices. An image without a colormap is returned as a copy.
func RemoveColormap(p *Pix, policy RemovePolicy) (*Pix, error) {
	if p == nil {
		return nil, ErrNilPix
	}
	cmap := p.cmap
	if cmap == nil {
		return p.Copy(), nil
	}
	if policy == RemoveBasedOnSrc {
		switch {
		case cmap.HasColor():
			policy = RemoveToFullColor
		case p.d == 1:
			policy = RemoveToBinary
		default:
			policy = RemoveToGrayscale
		}
	}

	var outDepth int
	lut := make([]uint32, 1<<uint(p.d))
	switch policy {
	case RemoveToBinary:
		outDepth = 1
		for i := range lut {
			if cmap.Gray(i) < 128 {
				lut[i] = 1
			}
		}
	case RemoveToGrayscale:
		outDepth = 8
		for i := range lut {
			lut[i] = uint32(cmap.Gray(i))
		}
	case RemoveToFullColor:
		outDepth = 32
		for i := range lut {
			e, _ := cmap.Get(i)
			lut[i] = ComposeRGB(e.R, e.G, e.B)
		}
	default:
		return nil, fmt.Errorf("pix: remove colormap: unknown policy %v", policy)
	}

	out, err := New(p.w, p.h, outDepth)
	if err != nil {
		return nil, err
	}
	for y := 0; y < p.h; y++ {
		for x := 0; x < p.w; x++ {
			out.SetPixel(x, y, lut[p.Pixel(x, y)])
		}
	}
	return out, nil
}

// ConvertTo8 returns an 8 bpp gray version of p without a colormap.
// 1 bpp maps white (0) to 255 and black (1) to 0; 2 and 4 bpp values are
// spread evenly over 0..255; 32 bpp uses luminance weights 0.3, 0.5, 0.2.
func ConvertTo8(p *Pix) (*Pix, error) {
	if p == nil {
		return nil, ErrNilPix
	}
	if p.cmap != nil {
		return RemoveColormap(p, RemoveToGrayscale)
	}
	if p.d == 8 {
		return p.Copy(), nil
	}
	out, err := New(p.w, p.h, 8)
	if err != nil {
		return nil, err
	}
	for y := 0; y < p.h; y++ {
		lined := out.Line(y)
		for x := 0; x < p.w; x++ {
			SetDataByte(lined, x, uint32(GrayLevel(p.Pixel(x, y), p.d)))
		}
	}
	return out, nil
}

// GrayLevel maps a raw pixel value of a colormap-free image of depth d to
// an 8-bit gray level.
func GrayLevel(val uint32, d int) uint8 {
	switch d {
	case 1:
		if val&1 != 0 {
			return 0
		}
		return 255
	case 2:
		return uint8((val & 3) * 0x55)
	case 4:
		return uint8((val & 0xf) * 0x11)
	case 8:
		return uint8(val)
	default:
		r, g, b := ExtractRGB(val)
		return uint8(0.3*float64(r) + 0.5*float64(g) + 0.2*float64(b) + 0.5)
	}
}
