// Package profile holds named presets for batch warps.
package profile

import "sort"

// Mode selects the reconstruction used by a warp.
type Mode string

const (
	// Sampled copies the nearest source pixel and keeps depth and colormap.
	Sampled Mode = "sampled"
	// Interpolated blends neighbouring pixels, producing 8 or 32 bpp.
	Interpolated Mode = "interpolated"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return m == Sampled || m == Interpolated }

// Profile defines how a batch of images is warped and written.
type Profile struct {
	Name    string
	Mode    Mode
	Border  string   // "white" or "black"
	Formats []string // output formats in priority order
	Quality int      // lossy encoding quality 1-100
}

// DefaultName is the preset used when none or an unknown one is requested.
const DefaultName = "default"

// Built-in profiles.
var profiles = map[string]Profile{
	DefaultName: {
		Name:    DefaultName,
		Mode:    Interpolated,
		Border:  "white",
		Formats: []string{"png"},
		Quality: 90,
	},
	"document": {
		Name:    "document",
		Mode:    Sampled,
		Border:  "white",
		Formats: []string{"png"},
		Quality: 90,
	},
	"document-dark": {
		Name:    "document-dark",
		Mode:    Sampled,
		Border:  "black",
		Formats: []string{"png"},
		Quality: 90,
	},
	"photo": {
		Name:    "photo",
		Mode:    Interpolated,
		Border:  "black",
		Formats: []string{"jpeg", "png"},
		Quality: 88,
	},
	"archive": {
		Name:    "archive",
		Mode:    Sampled,
		Border:  "white",
		Formats: []string{"tiff"},
		Quality: 100,
	},
}

// Get returns a profile by name. Unknown names get the default preset
// under the requested name.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p.clone()
	}
	p := profiles[DefaultName].clone()
	if name != "" {
		p.Name = name
	}
	return p
}

// Known reports whether name is a built-in profile.
func Known(name string) bool {
	_, ok := profiles[name]
	return ok
}

// Names returns the built-in profile names, sorted.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (p Profile) clone() Profile {
	p.Formats = append([]string(nil), p.Formats...)
	return p
}
