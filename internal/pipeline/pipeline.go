// Package pipeline warps every image in a directory with one projective
// map and records the results in a manifest.
package pipeline

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/njlr/leptonica/internal/encoder"
	"github.com/njlr/leptonica/internal/manifest"
	"github.com/njlr/leptonica/internal/profile"
	"github.com/njlr/leptonica/projective"
)

// Config holds all parameters for a batch run.
type Config struct {
	InputDir  string
	OutputDir string
	Profile   profile.Profile
	Border    projective.BorderColor
	Src, Dst  []projective.Point
	Coeffs    *projective.Coeffs // destination to source, solved from Dst and Src when nil
	Workers   int
	Verbose   bool
}

// Pipeline orchestrates a batch warp.
type Pipeline struct {
	cfg      Config
	registry *encoder.Registry
}

// New creates a configured pipeline. The map is solved here so a bad
// correspondence fails before any file is touched.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if !cfg.Profile.Mode.Valid() {
		return nil, fmt.Errorf("profile %s: unknown mode %q", cfg.Profile.Name, cfg.Profile.Mode)
	}
	if cfg.Border == 0 {
		b, err := projective.ParseBorderColor(cfg.Profile.Border)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", cfg.Profile.Name, err)
		}
		cfg.Border = b
	}
	if cfg.Coeffs == nil {
		vc, err := projective.Solve(cfg.Dst, cfg.Src)
		if err != nil {
			return nil, err
		}
		cfg.Coeffs = vc
	}
	return &Pipeline{
		cfg:      cfg,
		registry: encoder.NewRegistry(),
	}, nil
}

// Coeffs returns the destination to source map applied to every image.
func (p *Pipeline) Coeffs() *projective.Coeffs { return p.cfg.Coeffs }

// Run warps every image and returns the manifest. Individual failures are
// reported and counted; Run fails only when no image could be warped.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	start := time.Now()
	logf(p.cfg.Verbose, "%s", p.registry.String())

	sources, err := ScanImages(p.cfg.InputDir, p.cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", p.cfg.InputDir)
	}
	logf(p.cfg.Verbose, "found %d images", len(sources))

	results := make([]processResult, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, s Source) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			logf(p.cfg.Verbose, "warping: %s", s.Key)
			results[idx] = processImage(s, p.cfg, p.registry)
			if results[idx].err == nil {
				logf(p.cfg.Verbose, "done: %s (%d outputs)", s.Key, len(results[idx].asset.Outputs))
			}
		}(i, src)
	}
	wg.Wait()

	m := manifest.New(p.cfg.Profile.Name)
	m.Transform = p.transform()

	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		m.Assets[r.key] = r.asset
	}

	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[lept] error: %v\n", e)
		}
		if len(errs) == len(sources) {
			return nil, fmt.Errorf("all %d images failed to warp", len(errs))
		}
		fmt.Fprintf(os.Stderr, "[lept] warning: %d of %d images had errors\n", len(errs), len(sources))
	}

	m.BuildInfo = &manifest.BuildInfo{
		Workers:   p.cfg.Workers,
		ElapsedMS: time.Since(start).Milliseconds(),
	}
	m.Stats.Failed = len(errs)
	m.ComputeStats()
	return m, nil
}

func (p *Pipeline) transform() *manifest.Transform {
	return &manifest.Transform{
		Mode:   string(p.cfg.Profile.Mode),
		Border: p.cfg.Border.String(),
		Src:    points(p.cfg.Src),
		Dst:    points(p.cfg.Dst),
		Coeffs: [8]float64(*p.cfg.Coeffs),
	}
}

func points(pts []projective.Point) []manifest.Point {
	out := make([]manifest.Point, len(pts))
	for i, pt := range pts {
		out[i] = manifest.Point{X: pt.X, Y: pt.Y}
	}
	return out
}

func logf(verbose bool, format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[lept] "+format+"\n", args...)
	}
}
