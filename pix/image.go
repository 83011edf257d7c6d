package pix

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// FromImage converts img into a Pix.
//
// Paletted images keep their palette as a colormap at the smallest depth
// that holds it (1, 2, 4 or 8 bpp). Gray images become 8 bpp. Everything else
// becomes 32 bpp RGB; alpha is dropped.
func FromImage(img image.Image) (*Pix, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.Paletted:
		d := paletteDepth(len(src.Palette))
		p, err := New(w, h, d)
		if err != nil {
			return nil, err
		}
		cmap, err := NewColormap(d)
		if err != nil {
			return nil, err
		}
		for _, c := range src.Palette {
			n := color.NRGBAModel.Convert(c).(color.NRGBA)
			if err := cmap.Add(Color{R: n.R, G: n.G, B: n.B, A: n.A}); err != nil {
				return nil, err
			}
		}
		p.cmap = cmap
		for y := 0; y < h; y++ {
			off := (b.Min.Y-src.Rect.Min.Y+y)*src.Stride + (b.Min.X - src.Rect.Min.X)
			for x := 0; x < w; x++ {
				p.SetPixel(x, y, uint32(src.Pix[off+x]))
			}
		}
		return p, nil

	case *image.Gray:
		p, err := New(w, h, 8)
		if err != nil {
			return nil, err
		}
		for y := 0; y < h; y++ {
			line := p.Line(y)
			off := (b.Min.Y-src.Rect.Min.Y+y)*src.Stride + (b.Min.X - src.Rect.Min.X)
			for x := 0; x < w; x++ {
				SetDataByte(line, x, uint32(src.Pix[off+x]))
			}
		}
		return p, nil
	}

	nrgba := imaging.Clone(img)
	p, err := New(w, h, 32)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		line := p.Line(y)
		off := y * nrgba.Stride
		for x := 0; x < w; x++ {
			line[x] = ComposeRGB(nrgba.Pix[off], nrgba.Pix[off+1], nrgba.Pix[off+2])
			off += 4
		}
	}
	return p, nil
}

// ToImage converts p to a standard library image. Colormapped images become
// *image.Paletted, 1..8 bpp gray becomes *image.Gray and 32 bpp becomes an
// opaque *image.NRGBA.
func ToImage(p *Pix) image.Image {
	r := image.Rect(0, 0, p.w, p.h)

	if p.cmap != nil {
		pal := make(color.Palette, p.cmap.Count())
		for i, c := range p.cmap.colors {
			pal[i] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
		}
		out := image.NewPaletted(r, pal)
		for y := 0; y < p.h; y++ {
			for x := 0; x < p.w; x++ {
				out.Pix[y*out.Stride+x] = uint8(p.Pixel(x, y))
			}
		}
		return out
	}

	if p.d == 32 {
		out := image.NewNRGBA(r)
		for y := 0; y < p.h; y++ {
			line := p.Line(y)
			off := y * out.Stride
			for x := 0; x < p.w; x++ {
				out.Pix[off], out.Pix[off+1], out.Pix[off+2] = ExtractRGB(line[x])
				out.Pix[off+3] = 255
				off += 4
			}
		}
		return out
	}

	out := image.NewGray(r)
	for y := 0; y < p.h; y++ {
		for x := 0; x < p.w; x++ {
			out.Pix[y*out.Stride+x] = GrayLevel(p.Pixel(x, y), p.d)
		}
	}
	return out
}

func paletteDepth(n int) int {
	switch {
	case n <= 2:
		return 1
	case n <= 4:
		return 2
	case n <= 16:
		return 4
	default:
		return 8
	}
}
