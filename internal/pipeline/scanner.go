package pipeline

import (
	"os"
	"path/filepath"
	"strings"
)

// Source represents a discovered image file.
type Source struct {
	// AbsPath is the absolute path to the file on disk.
	AbsPath string
	// RelPath is the path relative to the input directory.
	RelPath string
	// Key is the asset key (relpath without extension).
	Key string
	// Format is the source format (png, jpeg, gif, bmp, tiff, webp).
	Format string
	// Size is the file size in bytes.
	Size int64
}

// imageExtensions maps recognized file extensions to format names.
var imageExtensions = map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".gif":  "gif",
	".bmp":  "bmp",
	".tif":  "tiff",
	".tiff": "tiff",
	".webp": "webp",
}

// FormatFromPath returns the format name for path's extension, or "" if it
// is not a recognized image.
func FormatFromPath(path string) string {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// ScanImages walks inputDir and returns all image sources in lexical order.
// Hidden directories and any directory in skip are not entered, so an
// output directory nested in the input is never read back.
func ScanImages(inputDir string, skip ...string) ([]Source, error) {
	var sources []Source

	skipDirs := map[string]bool{}
	for _, s := range skip {
		if abs, err := filepath.Abs(s); err == nil {
			skipDirs[abs] = true
		}
	}

	err := filepath.Walk(inputDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != inputDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			if abs, err := filepath.Abs(path); err == nil && skipDirs[abs] && path != inputDir {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(path)
		format := FormatFromPath(path)
		if format == "" {
			return nil
		}

		relPath, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}

		sources = append(sources, Source{
			AbsPath: path,
			RelPath: filepath.ToSlash(relPath),
			Key:     filepath.ToSlash(strings.TrimSuffix(relPath, ext)),
			Format:  format,
			Size:    info.Size(),
		})
		return nil
	})

	return sources, err
}
