package pix

import "fmt"

// Color is a colormap entry.
type Color struct {
	R, G, B, A uint8
}

// Colormap maps pixel values of a 1, 2, 4 or 8 bpp image to colors.
type Colormap struct {
	depth  int
	colors []Color
}

// NewColormap returns an empty colormap for images of the given depth.
func NewColormap(depth int) (*Colormap, error) {
	switch depth {
	case 1, 2, 4, 8:
	default:
		return nil, fmt.Errorf("pix: colormap depth %d: %w", depth, ErrInvalidDepth)
	}
	return &Colormap{depth: depth, colors: make([]Color, 0, 1<<uint(depth))}, nil
}

// Copy returns an independent copy of c.
func (c *Colormap) Copy() *Colormap {
	colors := make([]Color, len(c.colors), cap(c.colors))
	copy(colors, c.colors)
	return &Colormap{depth: c.depth, colors: colors}
}

// Depth returns the image depth the colormap is built for.
func (c *Colormap) Depth() int { return c.depth }

// Count returns the number of entries.
func (c *Colormap) Count() int { return len(c.colors) }

// FreeCount returns the number of entries that can still be added.
func (c *Colormap) FreeCount() int { return 1<<uint(c.depth) - len(c.colors) }

// Get returns entry i.
func (c *Colormap) Get(i int) (Color, bool) {
	if i < 0 || i >= len(c.colors) {
		return Color{}, false
	}
	return c.colors[i], true
}

// Colors returns a copy of all entries.
func (c *Colormap) Colors() []Color {
	out := make([]Color, len(c.colors))
	copy(out, c.colors)
	return out
}

// Add appends col.
func (c *Colormap) Add(col Color) error {
	if c.FreeCount() <= 0 {
		return fmt.Errorf("pix: add %v: %w", col, ErrColormapFull)
	}
	c.colors = append(c.colors, col)
	return nil
}

// Index returns the first entry whose RGB matches col.
func (c *Colormap) Index(col Color) (int, bool) {
	for i, e := range c.colors {
		if e.R == col.R && e.G == col.G && e.B == col.B {
			return i, true
		}
	}
	return 0, false
}

// AddNewColor returns the index of col, appending it if it is not present.
func (c *Colormap) AddNewColor(col Color) (int, error) {
	if i, ok := c.Index(col); ok {
		return i, nil
	}
	if err := c.Add(col); err != nil {
		return 0, err
	}
	return len(c.colors) - 1, nil
}

// AddBlackOrWhite returns the index of black (or white), adding the entry
// when there is room. A full colormap yields its darkest (or lightest) entry.
func (c *Colormap) AddBlackOrWhite(white bool) (int, error) {
	if c.FreeCount() > 0 {
		col := Color{A: 255}
		if white {
			col = Color{R: 255, G: 255, B: 255, A: 255}
		}
		return c.AddNewColor(col)
	}
	if len(c.colors) == 0 {
		return 0, ErrColormapFull
	}
	if white {
		return c.Lightest(), nil
	}
	return c.Darkest(), nil
}

// Darkest returns the index of the entry with the lowest r+g+b.
func (c *Colormap) Darkest() int {
	best, idx := 1<<30, 0
	for i, e := range c.colors {
		if s := int(e.R) + int(e.G) + int(e.B); s < best {
			best, idx = s, i
		}
	}
	return idx
}

// Lightest returns the index of the entry with the highest r+g+b.
func (c *Colormap) Lightest() int {
	best, idx := -1, 0
	for i, e := range c.colors {
		if s := int(e.R) + int(e.G) + int(e.B); s > best {
			best, idx = s, i
		}
	}
	return idx
}

// HasColor reports whether any entry is not a shade of gray.
func (c *Colormap) HasColor() bool {
	for _, e := range c.colors {
		if e.R != e.G || e.G != e.B {
			return true
		}
	}
	return false
}

// Gray returns the gray value of entry i, weighting green double.
func (c *Colormap) Gray(i int) uint8 {
	e, ok := c.Get(i)
	if !ok {
		return 0
	}
	return uint8((int(e.R) + 2*int(e.G) + int(e.B)) / 4)
}

// Equal reports whether c and o have the same depth and entries.
func (c *Colormap) Equal(o *Colormap) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c.depth != o.depth || len(c.colors) != len(o.colors) {
		return false
	}
	for i := range c.colors {
		if c.colors[i] != o.colors[i] {
			return false
		}
	}
	return true
}
