package pix

// ClearAll sets every bit of the image to 0.
func (p *Pix) ClearAll() {
	for i := range p.data {
		p.data[i] = 0
	}
}

// SetAll sets every bit of the image to 1.
func (p *Pix) SetAll() {
	for i := range p.data {
		p.data[i] = 0xffffffff
	}
}

// SetAllArbitrary sets every pixel to val. With a colormap, val is an index
// and is clamped to the last entry.
func (p *Pix) SetAllArbitrary(val uint32) {
	if p.cmap != nil && p.cmap.Count() > 0 {
		if n := uint32(p.cmap.Count()); val >= n {
			val = n - 1
		}
	}
	word := val
	if p.d < 32 {
		val &= 1<<uint(p.d) - 1
		word = 0
		for i := 0; i < 32/p.d; i++ {
			word = word<<uint(p.d) | val
		}
	}
	for i := range p.data {
		p.data[i] = word
	}
}
