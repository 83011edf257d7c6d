package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/njlr/leptonica/internal/encoder"
	"github.com/njlr/leptonica/internal/hasher"
	"github.com/njlr/leptonica/internal/manifest"
	"github.com/njlr/leptonica/pix"
)

// processResult holds the result of warping a single source image.
type processResult struct {
	key   string
	asset manifest.Asset
	err   error
}

// processImage handles a single source image: decode, warp, encode, write.
func processImage(src Source, cfg Config, registry *encoder.Registry) processResult {
	result := processResult{key: src.Key}

	pixs, err := Load(src.AbsPath)
	if err != nil {
		result.err = fmt.Errorf("%s: %w", src.RelPath, err)
		return result
	}
	w, h, d := pixs.Dimensions()

	result.asset = manifest.Asset{
		Original: manifest.OriginalInfo{
			Width:    w,
			Height:   h,
			Depth:    d,
			Colormap: pixs.Colormap() != nil,
			Format:   src.Format,
			Size:     src.Size,
		},
	}

	pixd, err := Warp(pixs, cfg.Coeffs, cfg.Profile.Mode, cfg.Border)
	if err != nil {
		result.err = fmt.Errorf("%s: %w", src.RelPath, err)
		return result
	}
	img := pix.ToImage(pixd)
	indexed := pixd.Colormap() != nil || pixd.Depth() == 1
	formats := registry.ResolveFormats(cfg.Profile.Formats, indexed)

	keyDir := filepath.Dir(src.Key)
	if keyDir != "." {
		if err := os.MkdirAll(filepath.Join(cfg.OutputDir, keyDir), 0o755); err != nil {
			result.err = fmt.Errorf("create %s: %w", keyDir, err)
			return result
		}
	}

	for _, format := range formats {
		enc := registry.Get(format)
		if enc == nil {
			continue
		}

		data, err := enc.Encode(img, cfg.Profile.Quality)
		if err != nil {
			logf(cfg.Verbose, "warn: encode %s as %s: %v", src.Key, format, err)
			continue
		}

		contentHash := hasher.ContentHash(data, hasher.FullLen)

		// key.w.h.hash.ext
		fileName := fmt.Sprintf("%s.%d.%d.%s.%s",
			filepath.Base(src.Key), w, h, contentHash[:8], enc.Extension())
		relPath := filepath.ToSlash(filepath.Join(keyDir, fileName))

		if err := os.WriteFile(filepath.Join(cfg.OutputDir, relPath), data, 0o644); err != nil {
			result.err = fmt.Errorf("write %s: %w", relPath, err)
			return result
		}

		result.asset.Outputs = append(result.asset.Outputs, manifest.Output{
			Format: enc.Format(),
			Width:  w,
			Height: h,
			Depth:  pixd.Depth(),
			Size:   int64(len(data)),
			Hash:   contentHash,
			Path:   relPath,
		})
	}

	if len(result.asset.Outputs) == 0 {
		result.err = fmt.Errorf("%s: no output could be encoded", src.RelPath)
	}
	return result
}
