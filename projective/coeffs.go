package projective

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/njlr/leptonica/internal/linalg"
)

// Point is a location in image coordinates.
type Point struct {
	X, Y float64
}

// Coeffs holds the eight coefficients of a projective map, c0..c7.
type Coeffs [8]float64

// Identity returns the map that leaves every point in place.
func Identity() *Coeffs {
	return &Coeffs{1, 0, 0, 0, 1, 0, 0, 0}
}

// Solve returns the projective map sending src[i] to dst[i]. Both lists must
// hold exactly four points. Three collinear points (or coincident points)
// give ErrDegenerateSystem.
func Solve(src, dst []Point) (*Coeffs, error) {
	if src == nil || dst == nil {
		return nil, fmt.Errorf("projective: solve: %w", ErrNullArgument)
	}
	if len(src) != 4 || len(dst) != 4 {
		return nil, fmt.Errorf("projective: solve: got %d src and %d dst points: %w",
			len(src), len(dst), ErrInvalidCount)
	}

	var (
		scratch [8][8]float64
		b       [8]float64
	)
	for i, p := range dst {
		b[2*i] = p.X
		b[2*i+1] = p.Y
	}
	for i, p := range src {
		x, y := p.X, p.Y
		scratch[2*i] = [8]float64{x, y, 1, 0, 0, 0, -x * b[2*i], -y * b[2*i]}
		scratch[2*i+1] = [8]float64{0, 0, 0, x, y, 1, -x * b[2*i+1], -y * b[2*i+1]}
	}

	a := make([][]float64, 8)
	for i := range scratch {
		a[i] = scratch[i][:]
	}
	if err := linalg.GaussJordan(a, b[:]); err != nil {
		if errors.Is(err, linalg.ErrSingular) {
			return nil, fmt.Errorf("projective: solve: %w: %w", ErrDegenerateSystem, err)
		}
		return nil, fmt.Errorf("projective: solve: %w", err)
	}

	c := Coeffs(b)
	Logger().Debug("projective: solved coefficients", "coeffs", c[:])
	return &c, nil
}

// homography lifts c to the 3x3 homogeneous matrix with h33 = 1.
func (c *Coeffs) homography() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		c[0], c[1], c[2],
		c[3], c[4], c[5],
		c[6], c[7], 1,
	})
}

func fromHomography(h *mat.Dense) (*Coeffs, error) {
	s := h.At(2, 2)
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return nil, ErrDegenerateSystem
	}
	var c Coeffs
	for i := 0; i < 8; i++ {
		c[i] = h.At(i/3, i%3) / s
	}
	return &c, nil
}

// Invert returns the map that undoes c.
func (c *Coeffs) Invert() (*Coeffs, error) {
	if c == nil {
		return nil, fmt.Errorf("projective: invert: %w", ErrNullArgument)
	}
	var inv mat.Dense
	if err := inv.Inverse(c.homography()); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("projective: invert: %w: %w", ErrDegenerateSystem, err)
		}
		Logger().Debug("projective: ill-conditioned inverse", "condition", float64(cond))
	}
	out, err := fromHomography(&inv)
	if err != nil {
		return nil, fmt.Errorf("projective: invert: %w", err)
	}
	return out, nil
}

// Then returns the map that applies c and then next.
func (c *Coeffs) Then(next *Coeffs) (*Coeffs, error) {
	if c == nil || next == nil {
		return nil, fmt.Errorf("projective: compose: %w", ErrNullArgument)
	}
	var h mat.Dense
	h.Mul(next.homography(), c.homography())
	out, err := fromHomography(&h)
	if err != nil {
		return nil, fmt.Errorf("projective: compose: %w", err)
	}
	return out, nil
}

// MapPoints returns the images of pts under c.
func (c *Coeffs) MapPoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i].X, out[i].Y = c.Map(p.X, p.Y)
	}
	return out
}

func (c *Coeffs) String() string {
	return fmt.Sprintf("[%g %g %g %g %g %g %g %g]", c[0], c[1], c[2], c[3], c[4], c[5], c[6], c[7])
}
