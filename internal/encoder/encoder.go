package encoder

import (
	"image"
)

// Encoder writes a warped image in one file format.
type Encoder interface {
	// Format returns the format name (e.g. "png", "jpeg", "tiff", "bmp").
	Format() string

	// Encode serialises img. quality (1-100) only affects lossy formats;
	// 0 selects the encoder default.
	Encode(img image.Image, quality int) ([]byte, error)

	// Lossless reports whether Encode preserves every pixel value.
	Lossless() bool

	// Extension returns the file extension without dot.
	Extension() string
}
