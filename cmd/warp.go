package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/njlr/leptonica/internal/encoder"
	"github.com/njlr/leptonica/internal/hasher"
	"github.com/njlr/leptonica/internal/pipeline"
	"github.com/njlr/leptonica/internal/profile"
	"github.com/njlr/leptonica/pix"
	"github.com/njlr/leptonica/projective"
)

var (
	warpCorners cornerFlags
	warpOut     string
	warpMode    string
	warpBorder  string
	warpFormat  string
	warpQuality int
)

var warpCmd = &cobra.Command{
	Use:   "warp <input>",
	Short: "Warp one image so the source corners land on the destination corners",
	Long: `Decodes the input (png, jpeg, gif, bmp, tiff, webp), maps the four --src
corners onto the four --dst corners and writes the result.

The output keeps the input's width and height. Pixels with no source data
take the --border color.`,
	Args: cobra.ExactArgs(1),
	RunE: runWarp,
}

func init() {
	warpCorners.register(warpCmd)
	warpCmd.Flags().StringVarP(&warpOut, "out", "o", "", "output file (default <input>.warped.<ext>)")
	warpCmd.Flags().StringVarP(&warpMode, "mode", "m", string(profile.Interpolated), "sampled or interpolated")
	warpCmd.Flags().StringVarP(&warpBorder, "border", "b", "white", "border color: white or black")
	warpCmd.Flags().StringVarP(&warpFormat, "format", "f", "", "output format (default from --out, else png)")
	warpCmd.Flags().IntVarP(&warpQuality, "quality", "q", 0, "jpeg quality 1-100 (0 = encoder default)")
	rootCmd.AddCommand(warpCmd)
}

func runWarp(_ *cobra.Command, args []string) error {
	input := args[0]
	start := time.Now()

	src, dst, err := warpCorners.points()
	if err != nil {
		return err
	}
	mode := profile.Mode(warpMode)
	if !mode.Valid() {
		return fmt.Errorf("--mode: unknown mode %q", warpMode)
	}
	border, err := projective.ParseBorderColor(warpBorder)
	if err != nil {
		return err
	}

	registry := encoder.NewRegistry()
	format := warpFormat
	if format == "" && warpOut != "" {
		format = encoder.Normalize(filepath.Ext(warpOut))
	}
	if format == "" {
		format = "png"
	}
	enc := registry.Get(format)
	if enc == nil {
		return fmt.Errorf("--format: no encoder for %q (have %s)", format, strings.Join(registry.Available(), ", "))
	}
	out := warpOut
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + ".warped." + enc.Extension()
	}

	pixs, err := pipeline.Load(input)
	if err != nil {
		return err
	}
	logVerbose("input:  %s (%dx%d, %d bpp, colormap=%t)",
		input, pixs.Width(), pixs.Height(), pixs.Depth(), pixs.Colormap() != nil)

	vc, err := projective.Solve(dst, src)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	logVerbose("coeffs: %v", vc)

	pixd, err := pipeline.Warp(pixs, vc, mode, border)
	if err != nil {
		return fmt.Errorf("warp: %w", err)
	}
	data, err := enc.Encode(pix.ToImage(pixd), warpQuality)
	if err != nil {
		return fmt.Errorf("encode %s: %w", enc.Format(), err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logVerbose("output: %s (%d bpp, %s) in %s",
		out, pixd.Depth(), formatBytes(int64(len(data))), time.Since(start).Round(time.Millisecond))
	fmt.Printf("%s  %s\n", hasher.ContentHash(data, hasher.FullLen), out)
	return nil
}
