package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/njlr/leptonica/internal/manifest"
	"github.com/njlr/leptonica/internal/pipeline"
	"github.com/njlr/leptonica/internal/profile"
)

var (
	batchCorners cornerFlags
	batchOutDir  string
	batchProfile string
	batchWorkers int
	batchMode    string
	batchBorder  string
	batchFormats []string
	batchQuality int
)

var batchCmd = &cobra.Command{
	Use:   "batch <input_dir>",
	Short: "Warp every image in a directory and write a manifest",
	Long: `Scans the input directory for images (png, jpg, jpeg, gif, bmp, tif, tiff,
webp), applies the same corner correspondence to each and writes the
results plus lept.manifest.json.

Output filenames are content-addressed: <key>.<w>.<h>.<hash>.ext

Profiles: ` + strings.Join(profile.Names(), ", "),
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCorners.register(batchCmd)
	batchCmd.Flags().StringVarP(&batchOutDir, "out", "o", "./lept_out", "output directory")
	batchCmd.Flags().StringVarP(&batchProfile, "profile", "p", profile.DefaultName, "warp profile")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	batchCmd.Flags().StringVarP(&batchMode, "mode", "m", "", "sampled or interpolated (overrides profile)")
	batchCmd.Flags().StringVarP(&batchBorder, "border", "b", "", "white or black (overrides profile)")
	batchCmd.Flags().StringSliceVar(&batchFormats, "formats", nil, "output formats (overrides profile)")
	batchCmd.Flags().IntVarP(&batchQuality, "quality", "q", 0, "jpeg quality 1-100 (0 = profile default)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	inputDir := args[0]
	start := time.Now()

	absInput, err := filepath.Abs(inputDir)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOutput, err := filepath.Abs(batchOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	src, dst, err := batchCorners.points()
	if err != nil {
		return err
	}

	prof := profile.Get(batchProfile)
	if !profile.Known(batchProfile) {
		logVerbose("unknown profile %q, using %s settings", batchProfile, profile.DefaultName)
	}
	if batchMode != "" {
		prof.Mode = profile.Mode(batchMode)
	}
	if batchBorder != "" {
		prof.Border = batchBorder
	}
	if batchFormats != nil {
		prof.Formats = batchFormats
	}
	if batchQuality > 0 {
		prof.Quality = batchQuality
	}

	logVerbose("input:   %s", absInput)
	logVerbose("output:  %s", absOutput)
	logVerbose("profile: %s (mode=%s, border=%s, formats=%v, quality=%d)",
		prof.Name, prof.Mode, prof.Border, prof.Formats, prof.Quality)

	p, err := pipeline.New(pipeline.Config{
		InputDir:  absInput,
		OutputDir: absOutput,
		Profile:   prof,
		Src:       src,
		Dst:       dst,
		Workers:   batchWorkers,
		Verbose:   verbose,
	})
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	logVerbose("coeffs:  %v", p.Coeffs())

	if err := os.MkdirAll(absOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	if err := manifest.WriteJSON(m, filepath.Join(absOutput, manifest.FileName)); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	printBatchReport(m, time.Since(start))
	return nil
}

func printBatchReport(m *manifest.Manifest, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════╗")
	fmt.Println("║               lept batch complete                ║")
	fmt.Println("╚══════════════════════════════════════════════════╝")
	fmt.Println()

	stats := m.Stats
	fmt.Printf("  Assets:      %d\n", stats.TotalAssets)
	fmt.Printf("  Outputs:     %d\n", stats.TotalOutputs)
	if stats.Failed > 0 {
		fmt.Printf("  Failed:      %d\n", stats.Failed)
	}
	fmt.Printf("  Input size:  %s\n", formatBytes(stats.TotalInputBytes))
	fmt.Printf("  Output size: %s\n", formatBytes(stats.TotalOutputBytes))
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:     %d\n", m.BuildInfo.Workers)
	}
	if t := m.Transform; t != nil {
		fmt.Printf("  Transform:   %s, %s border\n", t.Mode, t.Border)
	}
	fmt.Println()

	// Largest sources first.
	if len(m.Assets) > 0 {
		type assetSize struct {
			key        string
			depth      int
			inputSize  int64
			outputSize int64
		}
		var items []assetSize
		for key, a := range m.Assets {
			var outSum int64
			for _, o := range a.Outputs {
				outSum += o.Size
			}
			items = append(items, assetSize{key, a.Original.Depth, a.Original.Size, outSum})
		}
		sort.Slice(items, func(i, j int) bool {
			if items[i].inputSize != items[j].inputSize {
				return items[i].inputSize > items[j].inputSize
			}
			return items[i].key < items[j].key
		})
		n := len(items)
		if n > 10 {
			n = 10
		}
		fmt.Printf("  Top %d largest (source → outputs):\n", n)
		for _, it := range items[:n] {
			fmt.Printf("    %-40s %2d bpp %8s → %8s\n",
				truncKey(it.key, 40),
				it.depth,
				formatBytes(it.inputSize),
				formatBytes(it.outputSize),
			)
		}
		fmt.Println()
	}

	fmt.Printf("  Formats:     %s\n", strings.Join(detectOutputFormats(m), ", "))
	fmt.Println()

	data, _ := json.Marshal(m)
	fmt.Printf("  Manifest:    %s (%s)\n", manifest.FileName, formatBytes(int64(len(data))))
	fmt.Println()
}

func detectOutputFormats(m *manifest.Manifest) []string {
	set := map[string]bool{}
	for _, a := range m.Assets {
		for _, o := range a.Outputs {
			set[o.Format] = true
		}
	}
	var out []string
	for _, f := range []string{"png", "tiff", "jpeg", "bmp"} {
		if set[f] {
			out = append(out, f)
		}
	}
	return out
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func truncKey(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
