package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/njlr/leptonica/projective"
)

// cornerFlags holds the --src and --dst correspondences shared by the
// warp, coeffs and batch commands.
type cornerFlags struct {
	src, dst []float64
}

func (c *cornerFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64SliceVar(&c.src, "src", nil, "source corners x1,y1,x2,y2,x3,y3,x4,y4")
	cmd.Flags().Float64SliceVar(&c.dst, "dst", nil, "destination corners x1,y1,x2,y2,x3,y3,x4,y4")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("dst")
}

func (c *cornerFlags) points() (src, dst []projective.Point, err error) {
	if src, err = parsePoints("src", c.src); err != nil {
		return nil, nil, err
	}
	if dst, err = parsePoints("dst", c.dst); err != nil {
		return nil, nil, err
	}
	return src, dst, nil
}

// parsePoints turns a flat x,y list into exactly four points.
func parsePoints(name string, vals []float64) ([]projective.Point, error) {
	if len(vals) != 8 {
		return nil, fmt.Errorf("--%s: want 8 numbers (4 x,y pairs), got %d: %w",
			name, len(vals), projective.ErrInvalidCount)
	}
	pts := make([]projective.Point, 4)
	for i := range pts {
		pts[i] = projective.Point{X: vals[2*i], Y: vals[2*i+1]}
	}
	return pts, nil
}
