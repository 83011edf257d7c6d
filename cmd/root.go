package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/njlr/leptonica/projective"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lept",
	Short: "Projective (keystone) correction for raster images",
	Long: `lept — straightens photographed pages, slides and signs by mapping four
source corners onto four destination corners.

Images are warped either by nearest-pixel sampling, which keeps bilevel and
colormapped images as they are, or by bilinear interpolation.`,
	Version: version,
	PersistentPreRun: func(*cobra.Command, []string) {
		if verbose {
			projective.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"lept %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[lept] "+format+"\n", args...)
	}
}
