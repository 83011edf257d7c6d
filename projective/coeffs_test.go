package projective

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

func corners(w, h float64) []Point {
	return []Point{{0, 0}, {w - 1, 0}, {w - 1, h - 1}, {0, h - 1}}
}

var keystone = []Point{{12, 7}, {88, 3}, {95, 97}, {4, 90}}

func coeffsEqual(t *testing.T, got, want *Coeffs, eps float64) {
	t.Helper()
	for i := range want {
		if !scalar.EqualWithinAbsOrRel(got[i], want[i], eps, eps) {
			t.Fatalf("c%d: got %v, want %v (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestSolve_Identity(t *testing.T) {
	pts := corners(10, 10)
	vc, err := Solve(pts, pts)
	if err != nil {
		t.Fatal(err)
	}
	coeffsEqual(t, vc, Identity(), tol)
}

func TestSolve_RecoversKnownMap(t *testing.T) {
	want := &Coeffs{1.2, 0.1, 5, -0.05, 0.9, 3, 0.001, -0.002}
	src := corners(100, 100)
	dst := want.MapPoints(src)
	got, err := Solve(src, dst)
	if err != nil {
		t.Fatal(err)
	}
	coeffsEqual(t, got, want, 1e-8)
}

func TestSolve_MapsCorrespondences(t *testing.T) {
	src := corners(100, 100)
	vc, err := Solve(src, keystone)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range vc.MapPoints(src) {
		if !scalar.EqualWithinAbs(p.X, keystone[i].X, 1e-8) || !scalar.EqualWithinAbs(p.Y, keystone[i].Y, 1e-8) {
			t.Errorf("point %d: got %v, want %v", i, p, keystone[i])
		}
	}
}

func TestSolve_Errors(t *testing.T) {
	good := corners(10, 10)
	tests := []struct {
		name     string
		src, dst []Point
		want     error
	}{
		{"nil src", nil, good, ErrNullArgument},
		{"nil dst", good, nil, ErrNullArgument},
		{"three points", good[:3], good[:3], ErrInvalidCount},
		{"five points", append(corners(10, 10), Point{5, 5}), good, ErrInvalidCount},
		{"collinear", []Point{{0, 0}, {10, 0}, {20, 0}, {0, 10}}, good, ErrDegenerateSystem},
		{"coincident", []Point{{3, 3}, {3, 3}, {9, 9}, {0, 9}}, good, ErrDegenerateSystem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vc, err := Solve(tt.src, tt.dst)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			if vc != nil {
				t.Errorf("got coefficients %v on error", vc)
			}
		})
	}
}

func TestSolve_RoundTrip(t *testing.T) {
	src := corners(100, 100)
	fwd, err := Solve(src, keystone)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Solve(keystone, src)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []Point{{10, 10}, {50, 50}, {25, 80}, {90, 15}, {33.3, 66.6}} {
		x, y := fwd.Map(p.X, p.Y)
		x, y = back.Map(x, y)
		if !scalar.EqualWithinAbs(x, p.X, 1e-6) || !scalar.EqualWithinAbs(y, p.Y, 1e-6) {
			t.Errorf("%v: round trip gave (%v, %v)", p, x, y)
		}
	}
}

func TestInvert_MatchesReverseSolve(t *testing.T) {
	src := corners(100, 100)
	fwd, err := Solve(src, keystone)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Solve(keystone, src)
	if err != nil {
		t.Fatal(err)
	}
	inv, err := fwd.Invert()
	if err != nil {
		t.Fatal(err)
	}
	coeffsEqual(t, inv, back, 1e-8)
}

func TestThen_InverseIsIdentity(t *testing.T) {
	fwd, err := Solve(corners(100, 100), keystone)
	if err != nil {
		t.Fatal(err)
	}
	inv, err := fwd.Invert()
	if err != nil {
		t.Fatal(err)
	}
	id, err := fwd.Then(inv)
	if err != nil {
		t.Fatal(err)
	}
	coeffsEqual(t, id, Identity(), 1e-8)
}

func TestThen_AppliesInOrder(t *testing.T) {
	shift := &Coeffs{1, 0, 10, 0, 1, 0, 0, 0}
	scale := &Coeffs{2, 0, 0, 0, 2, 0, 0, 0}
	c, err := shift.Then(scale)
	if err != nil {
		t.Fatal(err)
	}
	x, y := c.Map(1, 1)
	if x != 22 || y != 2 {
		t.Errorf("shift then scale of (1,1): got (%v, %v), want (22, 2)", x, y)
	}
}

func TestInvert_Singular(t *testing.T) {
	flat := &Coeffs{1, 0, 0, 0, 0, 0, 0, 0}
	if _, err := flat.Invert(); !errors.Is(err, ErrDegenerateSystem) {
		t.Errorf("got %v, want ErrDegenerateSystem", err)
	}
	var nilc *Coeffs
	if _, err := nilc.Invert(); !errors.Is(err, ErrNullArgument) {
		t.Errorf("nil: got %v, want ErrNullArgument", err)
	}
}

func TestMapSampled(t *testing.T) {
	tests := []struct {
		name   string
		vc     *Coeffs
		x, y   int
		wx, wy int
	}{
		{"identity", Identity(), 7, 3, 7, 3},
		{"shift rounds half up", &Coeffs{1, 0, 0.5, 0, 1, 1.49, 0, 0}, 2, 2, 3, 3},
		{"truncates toward zero", &Coeffs{1, 0, -1.2, 0, 1, 0, 0, 0}, 0, 0, 0, 0},
		{"zero denominator", &Coeffs{1, 0, 0, 0, 1, 0, -1, 0}, 1, 0, math.MinInt32, math.MinInt32},
		{"overflow", &Coeffs{1e12, 0, 0, 0, 1, 0, 0, 0}, 5, 0, math.MinInt32, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.vc.MapSampled(tt.x, tt.y)
			if x != tt.wx || y != tt.wy {
				t.Errorf("got (%d, %d), want (%d, %d)", x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestMap_NilCoeffs(t *testing.T) {
	if _, _, err := Map(nil, 1, 1); !errors.Is(err, ErrNullArgument) {
		t.Errorf("Map: got %v", err)
	}
	if _, _, err := MapSampled(nil, 1, 1); !errors.Is(err, ErrNullArgument) {
		t.Errorf("MapSampled: got %v", err)
	}
	x, y, err := Map(&Coeffs{2, 0, 0, 0, 3, 0, 0, 0}, 1.5, 2)
	if err != nil || x != 3 || y != 6 {
		t.Errorf("Map: got (%v, %v, %v)", x, y, err)
	}
}

func TestParseBorderColor(t *testing.T) {
	if b, err := ParseBorderColor("black"); err != nil || b != BringInBlack {
		t.Errorf("black: got %v, %v", b, err)
	}
	if _, err := ParseBorderColor("gray"); !errors.Is(err, ErrInvalidBorder) {
		t.Errorf("gray: got %v", err)
	}
}
