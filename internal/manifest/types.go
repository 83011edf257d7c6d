// Package manifest describes the JSON record written by a batch warp.
package manifest

// Manifest is the top-level output of a lept batch run.
type Manifest struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Profile     string           `json:"profile"`
	BasePath    string           `json:"base_path"`
	Transform   *Transform       `json:"transform,omitempty"`
	BuildInfo   *BuildInfo       `json:"build_info,omitempty"`
	Assets      map[string]Asset `json:"assets"`
	Stats       Stats            `json:"stats"`
}

// Transform records the projective map applied to every asset.
type Transform struct {
	Mode   string     `json:"mode"`   // "sampled" or "interpolated"
	Border string     `json:"border"` // "white" or "black"
	Src    []Point    `json:"src"`    // source corners
	Dst    []Point    `json:"dst"`    // destination corners
	Coeffs [8]float64 `json:"coeffs"` // destination to source map
}

// Point is one corner of a correspondence.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BuildInfo captures run parameters for diagnostics.
type BuildInfo struct {
	Workers   int   `json:"workers"`
	ElapsedMS int64 `json:"elapsed_ms"`
}

// Asset describes one source image and the files written for it.
type Asset struct {
	Original OriginalInfo `json:"original"`
	Outputs  []Output     `json:"outputs"`
}

// OriginalInfo holds metadata about the source image as decoded.
type OriginalInfo struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Depth    int    `json:"depth"`
	Colormap bool   `json:"colormap"`
	Format   string `json:"format"`
	Size     int64  `json:"size"`
}

// Output is one encoded warp result.
type Output struct {
	Format string `json:"format"` // "png", "tiff", "jpeg", "bmp"
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Depth  int    `json:"depth"` // depth of the warped raster before encoding
	Size   int64  `json:"size"`  // bytes on disk
	Hash   string `json:"hash"`  // 16 hex chars of xxhash64
	Path   string `json:"path"`  // relative to base_path
}

// Stats aggregates run metrics.
type Stats struct {
	TotalInputBytes  int64 `json:"total_input_bytes"`
	TotalOutputBytes int64 `json:"total_output_bytes"`
	TotalAssets      int   `json:"total_assets"`
	TotalOutputs     int   `json:"total_outputs"`
	Failed           int   `json:"failed,omitempty"` // sources that could not be warped
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1

// FileName is the manifest's name inside an output directory.
const FileName = "lept.manifest.json"
