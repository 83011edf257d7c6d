package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/njlr/leptonica/internal/manifest"
	"github.com/njlr/leptonica/projective"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_manifest>",
	Short: "Display statistics for a batch output directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	m, path, err := manifest.Load(args[0])
	if err != nil {
		return err
	}
	logVerbose("manifest: %s", path)
	printStats(m)
	return nil
}

func printStats(m *manifest.Manifest) {
	fmt.Println()
	fmt.Printf("  Manifest version: %d\n", m.Version)
	fmt.Printf("  Generated:        %s\n", m.GeneratedAt)
	fmt.Printf("  Profile:          %s\n", m.Profile)
	if t := m.Transform; t != nil {
		fmt.Printf("  Mode:             %s\n", t.Mode)
		fmt.Printf("  Border:           %s\n", borderName(t))
		fmt.Printf("  Coefficients:     %.6g\n", t.Coeffs)
	}
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:          %d\n", m.BuildInfo.Workers)
		fmt.Printf("  Elapsed:          %d ms\n", m.BuildInfo.ElapsedMS)
	}
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Total assets:     %d\n", s.TotalAssets)
	fmt.Printf("  Total outputs:    %d\n", s.TotalOutputs)
	if s.Failed > 0 {
		fmt.Printf("  Failed sources:   %d\n", s.Failed)
	}
	fmt.Printf("  Input size:       %s\n", formatBytes(s.TotalInputBytes))
	fmt.Printf("  Output size:      %s\n", formatBytes(s.TotalOutputBytes))
	fmt.Println()

	formatStats := map[string]struct {
		count int
		bytes int64
	}{}
	for _, a := range m.Assets {
		for _, o := range a.Outputs {
			fs := formatStats[o.Format]
			fs.count++
			fs.bytes += o.Size
			formatStats[o.Format] = fs
		}
	}
	fmt.Println("  Format breakdown:")
	for _, f := range []string{"png", "tiff", "jpeg", "bmp"} {
		if fs, ok := formatStats[f]; ok {
			fmt.Printf("    %-6s  %4d files  %s\n", f, fs.count, formatBytes(fs.bytes))
		}
	}
	fmt.Println()

	// Source depth against output depth; interpolation promotes low depths.
	type depthPair struct{ in, out int }
	depthStats := map[depthPair]int{}
	colormapped := 0
	for _, a := range m.Assets {
		if a.Original.Colormap {
			colormapped++
		}
		for _, o := range a.Outputs {
			depthStats[depthPair{a.Original.Depth, o.Depth}]++
		}
	}
	pairs := make([]depthPair, 0, len(depthStats))
	for p := range depthStats {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].in != pairs[j].in {
			return pairs[i].in < pairs[j].in
		}
		return pairs[i].out < pairs[j].out
	})
	fmt.Println("  Depth breakdown:")
	for _, p := range pairs {
		fmt.Printf("    %2d → %2d bpp  %4d outputs\n", p.in, p.out, depthStats[p])
	}
	fmt.Printf("  Colormapped sources: %d / %d\n", colormapped, len(m.Assets))

	var warnings []string
	for key, a := range m.Assets {
		if len(a.Outputs) == 0 {
			warnings = append(warnings, fmt.Sprintf("asset %q has no outputs", key))
		}
	}
	sort.Strings(warnings)
	if len(warnings) > 0 {
		fmt.Println()
		fmt.Printf("  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("    ⚠ %s\n", w)
		}
	}
	fmt.Println()
}

// borderName labels the border of t, which may be missing or invalid.
func borderName(t *manifest.Transform) string {
	if t == nil {
		return "unknown"
	}
	if b, err := projective.ParseBorderColor(t.Border); err == nil {
		return b.String()
	}
	return fmt.Sprintf("invalid (%q)", t.Border)
}
