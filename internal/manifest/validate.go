package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/njlr/leptonica/internal/hasher"
)

// Validate checks m against the files under baseDir and returns one message
// per problem found.
func Validate(m *Manifest, baseDir string) []string {
	var errs []string

	if m.Version != SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}
	if t := m.Transform; t != nil {
		if t.Mode != "sampled" && t.Mode != "interpolated" {
			errs = append(errs, fmt.Sprintf("transform: unknown mode %q", t.Mode))
		}
		if t.Border != "white" && t.Border != "black" {
			errs = append(errs, fmt.Sprintf("transform: unknown border %q", t.Border))
		}
		if len(t.Src) != 4 || len(t.Dst) != 4 {
			errs = append(errs, fmt.Sprintf("transform: need 4 src and 4 dst points, got %d and %d",
				len(t.Src), len(t.Dst)))
		}
	}

	seenPaths := map[string]string{}
	for key, asset := range m.Assets {
		if asset.Original.Width <= 0 || asset.Original.Height <= 0 {
			errs = append(errs, fmt.Sprintf("asset %q: invalid original dimensions %dx%d",
				key, asset.Original.Width, asset.Original.Height))
		}
		if len(asset.Outputs) == 0 {
			errs = append(errs, fmt.Sprintf("asset %q: no outputs", key))
		}

		for i, o := range asset.Outputs {
			if o.Format == "" {
				errs = append(errs, fmt.Sprintf("asset %q output[%d]: empty format", key, i))
			}
			if o.Width != asset.Original.Width || o.Height != asset.Original.Height {
				errs = append(errs, fmt.Sprintf("asset %q output[%d]: size %dx%d differs from source %dx%d",
					key, i, o.Width, o.Height, asset.Original.Width, asset.Original.Height))
			}
			if o.Hash == "" {
				errs = append(errs, fmt.Sprintf("asset %q output[%d]: missing hash", key, i))
			}
			if o.Path == "" {
				errs = append(errs, fmt.Sprintf("asset %q output[%d]: missing path", key, i))
				continue
			}

			if other, ok := seenPaths[o.Path]; ok {
				errs = append(errs, fmt.Sprintf("asset %q output[%d]: path %q already used by %q",
					key, i, o.Path, other))
			}
			seenPaths[o.Path] = key

			if msg := checkFile(filepath.Join(baseDir, o.Path), o); msg != "" {
				errs = append(errs, fmt.Sprintf("asset %q output[%d]: %s", key, i, msg))
			}
		}
	}

	outputCount := 0
	for _, a := range m.Assets {
		outputCount += len(a.Outputs)
	}
	if m.Stats.TotalAssets != len(m.Assets) {
		errs = append(errs, fmt.Sprintf("stats.total_assets mismatch: %d != %d", m.Stats.TotalAssets, len(m.Assets)))
	}
	if m.Stats.TotalOutputs != outputCount {
		errs = append(errs, fmt.Sprintf("stats.total_outputs mismatch: %d != %d", m.Stats.TotalOutputs, outputCount))
	}

	return errs
}

// checkFile verifies size and content hash of one output.
func checkFile(path string, o Output) string {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Sprintf("file not found: %s", o.Path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Sprintf("stat %s: %v", o.Path, err)
	}
	if o.Size > 0 && info.Size() != o.Size {
		return fmt.Sprintf("size mismatch: manifest=%d, disk=%d", o.Size, info.Size())
	}
	if o.Hash == "" {
		return ""
	}
	sum, err := hasher.ContentHashReader(f, 0)
	if err != nil {
		return fmt.Sprintf("hash %s: %v", o.Path, err)
	}
	if !hasher.Matches(sum, o.Hash) {
		return fmt.Sprintf("hash mismatch: manifest=%s, disk=%s", o.Hash, sum)
	}
	return ""
}
