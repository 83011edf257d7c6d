package pix

// Line accessors. n is the pixel index within the line; bounds are the
// caller's responsibility.

// GetDataBit returns the 1 bpp value of pixel n.
func GetDataBit(line []uint32, n int) uint32 {
	return (line[n>>5] >> (31 - uint(n&31))) & 1
}

// SetDataBit sets pixel n of a 1 bpp line.
func SetDataBit(line []uint32, n int) {
	line[n>>5] |= 0x80000000 >> uint(n&31)
}

// ClearDataBit clears pixel n of a 1 bpp line.
func ClearDataBit(line []uint32, n int) {
	line[n>>5] &^= 0x80000000 >> uint(n&31)
}

// SetDataBitVal sets or clears pixel n of a 1 bpp line.
func SetDataBitVal(line []uint32, n int, val uint32) {
	if val&1 != 0 {
		SetDataBit(line, n)
	} else {
		ClearDataBit(line, n)
	}
}

// GetDataDibit returns the 2 bpp value of pixel n.
func GetDataDibit(line []uint32, n int) uint32 {
	return (line[n>>4] >> (2 * (15 - uint(n&15)))) & 3
}

// SetDataDibit writes the 2 bpp value of pixel n.
func SetDataDibit(line []uint32, n int, val uint32) {
	shift := 2 * (15 - uint(n&15))
	w := &line[n>>4]
	*w = *w&^(3<<shift) | (val&3)<<shift
}

// GetDataQbit returns the 4 bpp value of pixel n.
func GetDataQbit(line []uint32, n int) uint32 {
	return (line[n>>3] >> (4 * (7 - uint(n&7)))) & 0xf
}

// SetDataQbit writes the 4 bpp value of pixel n.
func SetDataQbit(line []uint32, n int, val uint32) {
	shift := 4 * (7 - uint(n&7))
	w := &line[n>>3]
	*w = *w&^(0xf<<shift) | (val&0xf)<<shift
}

// GetDataByte returns the 8 bpp value of pixel n.
func GetDataByte(line []uint32, n int) uint32 {
	return (line[n>>2] >> (8 * (3 - uint(n&3)))) & 0xff
}

// SetDataByte writes the 8 bpp value of pixel n.
func SetDataByte(line []uint32, n int, val uint32) {
	shift := 8 * (3 - uint(n&3))
	w := &line[n>>2]
	*w = *w&^(0xff<<shift) | (val&0xff)<<shift
}
