package linalg

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func matrix(rows ...[]float64) [][]float64 { return rows }

func TestGaussJordan_Solves(t *testing.T) {
	a := matrix(
		[]float64{2, 1, -1},
		[]float64{-3, -1, 2},
		[]float64{-2, 1, 2},
	)
	b := []float64{8, -11, -3}
	if err := GaussJordan(a, b); err != nil {
		t.Fatal(err)
	}
	want := []float64{2, 3, -1}
	for i := range want {
		if !scalar.EqualWithinAbsOrRel(b[i], want[i], 1e-12, 1e-12) {
			t.Errorf("x[%d]: got %v, want %v", i, b[i], want[i])
		}
	}
}

func TestGaussJordan_NeedsPivoting(t *testing.T) {
	a := matrix(
		[]float64{0, 1},
		[]float64{1, 0},
	)
	b := []float64{5, 7}
	if err := GaussJordan(a, b); err != nil {
		t.Fatal(err)
	}
	if b[0] != 7 || b[1] != 5 {
		t.Errorf("got %v, want [7 5]", b)
	}
}

func TestGaussJordan_Singular(t *testing.T) {
	tests := []struct {
		name string
		a    [][]float64
	}{
		{"zero", matrix([]float64{0, 0}, []float64{0, 0})},
		{"dependent rows", matrix([]float64{1, 2}, []float64{2, 4})},
		{"near dependent", matrix([]float64{1, 1}, []float64{1, 1 + 1e-15})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GaussJordan(tt.a, []float64{1, 2})
			if !errors.Is(err, ErrSingular) {
				t.Errorf("got %v, want ErrSingular", err)
			}
		})
	}
}

func TestGaussJordan_ShapeMismatch(t *testing.T) {
	if err := GaussJordan(matrix([]float64{1, 2}), []float64{1, 2}); err == nil {
		t.Error("expected error for 1x2 system with 2 unknowns")
	}
	if err := GaussJordan(matrix([]float64{1}, []float64{1, 2}), []float64{1, 2}); err == nil {
		t.Error("expected error for ragged matrix")
	}
}
