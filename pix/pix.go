// Package pix implements a word-packed raster image with 1, 2, 4, 8 or 32
// bits per pixel and an optional colormap.
//
// Pixels are stored row-major in 32-bit words. Within a word, pixels are
// packed most-significant-bits first, so pixel 0 of a 1 bpp line is bit 31 of
// word 0. A 32 bpp pixel is a packed RGB value R<<24 | G<<16 | B<<8 with the
// low byte unused (0).
//
// Polarity: at 1 bpp a set bit is black and a clear bit is white. At 2, 4 and
// 8 bpp without a colormap, 0 is black and the maximum value is white.
package pix

import (
	"errors"
	"fmt"
)

var (
	// ErrNilPix is returned when a required image is nil.
	ErrNilPix = errors.New("pix: image not defined")

	// ErrInvalidDepth is returned for depths outside {1, 2, 4, 8, 32}, or
	// for operations that do not support the image's depth.
	ErrInvalidDepth = errors.New("pix: invalid depth")

	// ErrInvalidSize is returned for non-positive width or height.
	ErrInvalidSize = errors.New("pix: invalid size")

	// ErrColormapFull is returned when a colormap has no free entries.
	ErrColormapFull = errors.New("pix: colormap full")
)

// Packed 32 bpp channel shifts.
const (
	RedShift   = 24
	GreenShift = 16
	BlueShift  = 8
	AlphaShift = 0
)

// Pix is a raster image.
type Pix struct {
	w    int
	h    int
	d    int
	wpl  int // 32-bit words per line
	data []uint32
	cmap *Colormap
}

// ValidDepth reports whether d is a supported depth.
func ValidDepth(d int) bool {
	switch d {
	case 1, 2, 4, 8, 32:
		return true
	}
	return false
}

// New allocates a zeroed image.
func New(width, height, depth int) (*Pix, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("pix: %dx%d: %w", width, height, ErrInvalidSize)
	}
	if !ValidDepth(depth) {
		return nil, fmt.Errorf("pix: depth %d: %w", depth, ErrInvalidDepth)
	}
	wpl := (width*depth + 31) / 32
	return &Pix{
		w:    width,
		h:    height,
		d:    depth,
		wpl:  wpl,
		data: make([]uint32, wpl*height),
	}, nil
}

// CreateTemplate returns a zeroed image with the geometry of p and a copy of
// its colormap.
func CreateTemplate(p *Pix) *Pix {
	t := &Pix{
		w:    p.w,
		h:    p.h,
		d:    p.d,
		wpl:  p.wpl,
		data: make([]uint32, len(p.data)),
	}
	if p.cmap != nil {
		t.cmap = p.cmap.Copy()
	}
	return t
}

// Copy returns a deep copy of p, including its colormap.
func (p *Pix) Copy() *Pix {
	c := CreateTemplate(p)
	copy(c.data, p.data)
	return c
}

// Width returns the width in pixels.
func (p *Pix) Width() int { return p.w }

// Height returns the height in pixels.
func (p *Pix) Height() int { return p.h }

// Depth returns the number of bits per pixel.
func (p *Pix) Depth() int { return p.d }

// Dimensions returns width, height and depth.
func (p *Pix) Dimensions() (w, h, d int) { return p.w, p.h, p.d }

// Wpl returns the row stride in 32-bit words.
func (p *Pix) Wpl() int { return p.wpl }

// Data returns the packed pixel words. The slice aliases the image.
func (p *Pix) Data() []uint32 { return p.data }

// Line returns the words of row i. The slice aliases the image.
func (p *Pix) Line(i int) []uint32 {
	return p.data[i*p.wpl : (i+1)*p.wpl]
}

// Colormap returns the colormap, or nil.
func (p *Pix) Colormap() *Colormap { return p.cmap }

// SetColormap attaches cmap to p. A nil cmap removes the colormap.
func (p *Pix) SetColormap(cmap *Colormap) error {
	if cmap != nil && cmap.Depth() != p.d {
		return fmt.Errorf("pix: colormap depth %d for %d bpp image: %w", cmap.Depth(), p.d, ErrInvalidDepth)
	}
	p.cmap = cmap
	return nil
}

// Contains reports whether (x, y) lies inside the image.
func (p *Pix) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.w && y < p.h
}

// Pixel returns the raw value at (x, y), or 0 outside the image.
func (p *Pix) Pixel(x, y int) uint32 {
	if !p.Contains(x, y) {
		return 0
	}
	line := p.Line(y)
	switch p.d {
	case 1:
		return GetDataBit(line, x)
	case 2:
		return GetDataDibit(line, x)
	case 4:
		return GetDataQbit(line, x)
	case 8:
		return GetDataByte(line, x)
	default:
		return line[x]
	}
}

// SetPixel writes the raw value at (x, y). Values are masked to the depth;
// writes outside the image are ignored.
func (p *Pix) SetPixel(x, y int, val uint32) {
	if !p.Contains(x, y) {
		return
	}
	line := p.Line(y)
	switch p.d {
	case 1:
		SetDataBitVal(line, x, val)
	case 2:
		SetDataDibit(line, x, val)
	case 4:
		SetDataQbit(line, x, val)
	case 8:
		SetDataByte(line, x, val)
	default:
		line[x] = val
	}
}

// Equal reports whether a and b have the same geometry, the same pixel
// values and equivalent colormaps. Padding bits past the row width are
// ignored.
func Equal(a, b *Pix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.w != b.w || a.h != b.h || a.d != b.d {
		return false
	}
	if (a.cmap == nil) != (b.cmap == nil) {
		return false
	}
	if a.cmap != nil && !a.cmap.Equal(b.cmap) {
		return false
	}
	for y := 0; y < a.h; y++ {
		for x := 0; x < a.w; x++ {
			if a.Pixel(x, y) != b.Pixel(x, y) {
				return false
			}
		}
	}
	return true
}

// ComposeRGB packs 8-bit channels into a 32 bpp pixel.
func ComposeRGB(r, g, b uint8) uint32 {
	return uint32(r)<<RedShift | uint32(g)<<GreenShift | uint32(b)<<BlueShift
}

// ExtractRGB unpacks the color channels of a 32 bpp pixel.
func ExtractRGB(v uint32) (r, g, b uint8) {
	return uint8(v >> RedShift), uint8(v >> GreenShift), uint8(v >> BlueShift)
}
