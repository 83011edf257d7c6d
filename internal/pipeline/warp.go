package pipeline

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/njlr/leptonica/internal/profile"
	"github.com/njlr/leptonica/pix"
	"github.com/njlr/leptonica/projective"
)

// Load decodes the image at path into a raster. JPEG EXIF orientation is
// applied first; paletted files keep their palette as a colormap.
func Load(path string) (*pix.Pix, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	p, err := pix.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", path, err)
	}
	return p, nil
}

// Warp applies vc to pixs with the reconstruction selected by mode.
func Warp(pixs *pix.Pix, vc *projective.Coeffs, mode profile.Mode, border projective.BorderColor) (*pix.Pix, error) {
	switch mode {
	case profile.Sampled:
		return projective.Sampled(pixs, vc, border)
	case profile.Interpolated:
		return projective.Transform(pixs, vc, border)
	default:
		return nil, fmt.Errorf("warp: unknown mode %q", mode)
	}
}
