package encoder

import (
	"fmt"
	"strings"
)

// formatOrder is the preference order used when listing formats.
var formatOrder = []string{"png", "tiff", "jpeg", "bmp"}

// aliases maps common spellings and file extensions to format names.
var aliases = map[string]string{
	"jpg": "jpeg",
	"tif": "tiff",
}

// Registry holds the output encoders by format name.
type Registry struct {
	encoders map[string]Encoder
}

// NewRegistry creates a registry with every built-in encoder.
func NewRegistry() *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
	}
	for _, enc := range []Encoder{
		&PNGEncoder{},
		&TIFFEncoder{},
		&JPEGEncoder{},
		&BMPEncoder{},
	} {
		r.encoders[enc.Format()] = enc
	}
	return r
}

// Normalize lowercases format and resolves aliases such as "jpg".
func Normalize(format string) string {
	f := strings.ToLower(strings.TrimPrefix(format, "."))
	if a, ok := aliases[f]; ok {
		return a
	}
	return f
}

// Get returns the encoder for format, or nil if there is none.
func (r *Registry) Get(format string) Encoder {
	return r.encoders[Normalize(format)]
}

// Available returns all format names in preference order.
func (r *Registry) Available() []string {
	var result []string
	for _, f := range formatOrder {
		if _, ok := r.encoders[f]; ok {
			result = append(result, f)
		}
	}
	return result
}

// ResolveFormats drops unknown and duplicate formats. Warped bilevel and
// colormapped images lose information in JPEG, so when indexed is set a
// lossless format is always kept; an empty result falls back to png.
func (r *Registry) ResolveFormats(requested []string, indexed bool) []string {
	var resolved []string
	seen := map[string]bool{}
	lossless := false

	for _, f := range requested {
		f = Normalize(f)
		enc, ok := r.encoders[f]
		if !ok || seen[f] {
			continue
		}
		resolved = append(resolved, f)
		seen[f] = true
		lossless = lossless || enc.Lossless()
	}

	if len(resolved) == 0 || (indexed && !lossless) {
		if !seen["png"] {
			resolved = append(resolved, "png")
		}
	}
	return resolved
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}
