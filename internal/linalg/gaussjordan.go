// Package linalg holds the small dense solver used by the projective
// coefficient fit.
package linalg

import (
	"errors"
	"fmt"
	"math"
)

// ErrSingular is returned when the system has no unique solution.
var ErrSingular = errors.New("linalg: singular matrix")

// singularTol is the smallest usable pivot relative to the largest
// magnitude in the input matrix.
const singularTol = 1e-12

// GaussJordan solves a·x = b in place by Gauss-Jordan elimination with
// partial pivoting. a must be n×n with n == len(b). On success b holds x and
// a holds the identity; on failure both are left in an unspecified state.
func GaussJordan(a [][]float64, b []float64) error {
	n := len(b)
	if len(a) != n {
		return fmt.Errorf("linalg: %d rows for %d unknowns", len(a), n)
	}
	scale := 0.0
	for i, row := range a {
		if len(row) != n {
			return fmt.Errorf("linalg: row %d has %d columns, want %d", i, len(row), n)
		}
		for _, v := range row {
			scale = math.Max(scale, math.Abs(v))
		}
	}
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return ErrSingular
	}
	tol := singularTol * scale

	for col := 0; col < n; col++ {
		pivot := findPivotRow(a, col)
		if math.Abs(a[pivot][col]) <= tol {
			return fmt.Errorf("linalg: column %d: %w", col, ErrSingular)
		}
		if pivot != col {
			a[pivot], a[col] = a[col], a[pivot]
			b[pivot], b[col] = b[col], b[pivot]
		}
		normalizeRow(a, b, col)
		eliminateColumn(a, b, col)
	}
	return nil
}

func findPivotRow(a [][]float64, col int) int {
	best, row := -1.0, col
	for r := col; r < len(a); r++ {
		if v := math.Abs(a[r][col]); v > best {
			best, row = v, r
		}
	}
	return row
}

func normalizeRow(a [][]float64, b []float64, row int) {
	inv := 1 / a[row][row]
	for c := range a[row] {
		a[row][c] *= inv
	}
	a[row][row] = 1
	b[row] *= inv
}

func eliminateColumn(a [][]float64, b []float64, col int) {
	for r := range a {
		if r == col {
			continue
		}
		f := a[r][col]
		if f == 0 {
			continue
		}
		for c := range a[r] {
			a[r][c] -= f * a[col][c]
		}
		a[r][col] = 0
		b[r] -= f * b[col]
	}
}
