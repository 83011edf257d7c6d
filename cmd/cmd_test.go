package cmd

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/njlr/leptonica/internal/manifest"
	"github.com/njlr/leptonica/projective"
)

const (
	squareFlag   = "0,0,31,0,31,23,0,23"
	keystoneFlag = "2,1,30,0,31,23,0,22"
)

func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 32, 24))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 3)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

// execute runs the shared command tree. Slice flags accumulate across
// calls, so each command is executed at most once per test binary.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestParsePoints(t *testing.T) {
	pts, err := parsePoints("src", []float64{0, 1, 2, 3, 4, 5, 6, 7})
	if err != nil {
		t.Fatal(err)
	}
	if pts[3] != (projective.Point{X: 6, Y: 7}) {
		t.Errorf("point 3: got %v", pts[3])
	}
	if _, err := parsePoints("dst", []float64{1, 2, 3}); !errors.Is(err, projective.ErrInvalidCount) {
		t.Errorf("short list: got %v", err)
	}
}

func TestSolveCoeffs(t *testing.T) {
	src := []projective.Point{{X: 0, Y: 0}, {X: 31, Y: 0}, {X: 31, Y: 23}, {X: 0, Y: 23}}
	dst := []projective.Point{{X: 2, Y: 1}, {X: 30, Y: 0}, {X: 31, Y: 23}, {X: 0, Y: 22}}

	back, dir, err := solveCoeffs(src, dst, false)
	if err != nil || dir != "dst->src" {
		t.Fatalf("got %q, %v", dir, err)
	}
	fwd, dir, err := solveCoeffs(src, dst, true)
	if err != nil || dir != "src->dst" {
		t.Fatalf("got %q, %v", dir, err)
	}
	for i, p := range fwd.MapPoints(src) {
		if !scalar.EqualWithinAbs(p.X, dst[i].X, 1e-8) || !scalar.EqualWithinAbs(p.Y, dst[i].Y, 1e-8) {
			t.Errorf("forward corner %d: got %v, want %v", i, p, dst[i])
		}
	}
	for i, p := range back.MapPoints(dst) {
		if !scalar.EqualWithinAbs(p.X, src[i].X, 1e-8) || !scalar.EqualWithinAbs(p.Y, src[i].Y, 1e-8) {
			t.Errorf("backward corner %d: got %v, want %v", i, p, src[i])
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := map[int64]string{
		12:      "12 B",
		2048:    "2.0 KB",
		3 << 20: "3.0 MB",
	}
	for in, want := range tests {
		if got := formatBytes(in); got != want {
			t.Errorf("%d: got %q, want %q", in, got, want)
		}
	}
	if got := truncKey("abcdefghij", 8); got != "...fghij" {
		t.Errorf("truncKey: got %q", got)
	}
}

func TestBorderName(t *testing.T) {
	if got := borderName(nil); got != "unknown" {
		t.Errorf("nil: got %q", got)
	}
	if got := borderName(&manifest.Transform{Border: "black"}); got != "black" {
		t.Errorf("black: got %q", got)
	}
}

func TestWarpCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "page.png")
	out := filepath.Join(dir, "page.out.tif")
	writeTestPNG(t, in)

	err := execute(t, "warp", in, "--src", squareFlag, "--dst", keystoneFlag,
		"-o", out, "--mode", "sampled", "--border", "black", "--format", "")
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty output")
	}
}

func TestBatchAndValidateCommands(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeTestPNG(t, filepath.Join(in, "a.png"))
	writeTestPNG(t, filepath.Join(in, "b.png"))

	err := execute(t, "batch", in, "--src", squareFlag, "--dst", keystoneFlag,
		"-o", out, "-p", "archive", "-w", "2")
	if err != nil {
		t.Fatal(err)
	}

	m, _, err := manifest.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if m.Profile != "archive" || len(m.Assets) != 2 {
		t.Fatalf("manifest: profile %q, %d assets", m.Profile, len(m.Assets))
	}
	if o := m.Assets["a"].Outputs; len(o) != 1 || o[0].Format != "tiff" {
		t.Errorf("outputs: got %+v", o)
	}

	if err := execute(t, "validate", filepath.Join(out, manifest.FileName)); err != nil {
		t.Errorf("validate: %v", err)
	}
	if err := execute(t, "stats", out); err != nil {
		t.Errorf("stats: %v", err)
	}
}

func TestCoeffsCommand(t *testing.T) {
	err := execute(t, "coeffs", "--src", squareFlag, "--dst", "0,0,10,0,20,0,0,10", "--json")
	if !errors.Is(err, projective.ErrDegenerateSystem) {
		t.Errorf("collinear: got %v", err)
	}
}
