package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/njlr/leptonica/projective"
)

var (
	coeffsCorners cornerFlags
	coeffsInvert  bool
	coeffsJSON    bool
)

var coeffsCmd = &cobra.Command{
	Use:   "coeffs",
	Short: "Print the projective coefficients for a corner correspondence",
	Long: `Prints c0..c7 of the map used by warp, which takes destination
coordinates to source coordinates:

  x = (c0*x' + c1*y' + c2) / (c6*x' + c7*y' + 1)
  y = (c3*x' + c4*y' + c5) / (c6*x' + c7*y' + 1)

--invert prints the forward map from source to destination instead.`,
	Args: cobra.NoArgs,
	RunE: runCoeffs,
}

func init() {
	coeffsCorners.register(coeffsCmd)
	coeffsCmd.Flags().BoolVar(&coeffsInvert, "invert", false, "print the source to destination map")
	coeffsCmd.Flags().BoolVar(&coeffsJSON, "json", false, "print JSON")
	rootCmd.AddCommand(coeffsCmd)
}

type coeffsOutput struct {
	Direction string     `json:"direction"`
	Coeffs    [8]float64 `json:"coeffs"`
}

func runCoeffs(_ *cobra.Command, _ []string) error {
	src, dst, err := coeffsCorners.points()
	if err != nil {
		return err
	}
	vc, direction, err := solveCoeffs(src, dst, coeffsInvert)
	if err != nil {
		return err
	}

	if coeffsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(coeffsOutput{Direction: direction, Coeffs: [8]float64(*vc)})
	}
	fmt.Printf("  %s\n", direction)
	for i, c := range vc {
		fmt.Printf("  c%d = %.10g\n", i, c)
	}
	return nil
}

// solveCoeffs returns the warp map, or its inverse when invert is set.
func solveCoeffs(src, dst []projective.Point, invert bool) (*projective.Coeffs, string, error) {
	vc, err := projective.Solve(dst, src)
	if err != nil {
		return nil, "", fmt.Errorf("solve: %w", err)
	}
	if !invert {
		return vc, "dst->src", nil
	}
	inv, err := vc.Invert()
	if err != nil {
		return nil, "", err
	}
	logVerbose("inverted %v", vc)
	return inv, "src->dst", nil
}
