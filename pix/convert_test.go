package pix

import (
	"errors"
	"testing"
)

func grayCmap(t *testing.T, depth int, grays ...uint8) *Colormap {
	t.Helper()
	cmap, err := NewColormap(depth)
	if err != nil {
		t.Fatal(err)
	}
	for _, g := range grays {
		if err := cmap.Add(Color{R: g, G: g, B: g, A: 255}); err != nil {
			t.Fatal(err)
		}
	}
	return cmap
}

func TestColormap_AddBlackOrWhite(t *testing.T) {
	cmap := grayCmap(t, 2, 40, 200)

	idx, err := cmap.AddBlackOrWhite(true)
	if err != nil {
		t.Fatal(err)
	}
	if idx != 2 || cmap.Count() != 3 {
		t.Errorf("white: got index %d count %d, want 2 and 3", idx, cmap.Count())
	}

	again, _ := cmap.AddBlackOrWhite(true)
	if again != 2 || cmap.Count() != 3 {
		t.Errorf("existing white: got index %d count %d", again, cmap.Count())
	}

	black, _ := cmap.AddBlackOrWhite(false)
	if black != 3 || cmap.Count() != 4 {
		t.Errorf("black: got index %d count %d, want 3 and 4", black, cmap.Count())
	}
}

func TestColormap_AddBlackOrWhiteFull(t *testing.T) {
	cmap := grayCmap(t, 1, 30, 220)
	if cmap.FreeCount() != 0 {
		t.Fatalf("free: got %d", cmap.FreeCount())
	}
	w, err := cmap.AddBlackOrWhite(true)
	if err != nil {
		t.Fatal(err)
	}
	if w != 1 {
		t.Errorf("lightest: got %d, want 1", w)
	}
	b, _ := cmap.AddBlackOrWhite(false)
	if b != 0 {
		t.Errorf("darkest: got %d, want 0", b)
	}
	if err := cmap.Add(Color{}); !errors.Is(err, ErrColormapFull) {
		t.Errorf("add to full: got %v", err)
	}
}

func TestColormap_HasColorAndGray(t *testing.T) {
	cmap := grayCmap(t, 8, 0, 128)
	if cmap.HasColor() {
		t.Error("gray colormap reported color")
	}
	_ = cmap.Add(Color{R: 200, G: 100, B: 0, A: 255})
	if !cmap.HasColor() {
		t.Error("color entry not detected")
	}
	if g := cmap.Gray(2); g != 100 {
		t.Errorf("gray of (200,100,0): got %d, want 100", g)
	}
}

func TestRemoveColormap_BasedOnSrc(t *testing.T) {
	gray, _ := New(4, 2, 2)
	_ = gray.SetColormap(grayCmap(t, 2, 0, 90, 180, 255))
	gray.SetPixel(1, 0, 2)
	out, err := RemoveColormap(gray, RemoveBasedOnSrc)
	if err != nil {
		t.Fatal(err)
	}
	if out.Depth() != 8 || out.Colormap() != nil {
		t.Fatalf("gray cmap: got depth %d cmap %v", out.Depth(), out.Colormap())
	}
	if out.Pixel(1, 0) != 180 {
		t.Errorf("gray value: got %d, want 180", out.Pixel(1, 0))
	}

	color, _ := New(4, 2, 4)
	cmap, _ := NewColormap(4)
	_ = cmap.Add(Color{R: 10, G: 20, B: 30, A: 255})
	_ = cmap.Add(Color{R: 250, G: 0, B: 5, A: 255})
	_ = color.SetColormap(cmap)
	color.SetPixel(3, 1, 1)
	out, err = RemoveColormap(color, RemoveBasedOnSrc)
	if err != nil {
		t.Fatal(err)
	}
	if out.Depth() != 32 {
		t.Fatalf("color cmap: got depth %d, want 32", out.Depth())
	}
	if got, want := out.Pixel(3, 1), ComposeRGB(250, 0, 5); got != want {
		t.Errorf("rgb: got %08x, want %08x", got, want)
	}
	if got, want := out.Pixel(0, 0), ComposeRGB(10, 20, 30); got != want {
		t.Errorf("rgb index 0: got %08x, want %08x", got, want)
	}

	bin, _ := New(3, 1, 1)
	_ = bin.SetColormap(grayCmap(t, 1, 255, 0))
	bin.SetPixel(2, 0, 1)
	out, err = RemoveColormap(bin, RemoveBasedOnSrc)
	if err != nil {
		t.Fatal(err)
	}
	if out.Depth() != 1 {
		t.Fatalf("binary cmap: got depth %d, want 1", out.Depth())
	}
	if out.Pixel(0, 0) != 0 || out.Pixel(2, 0) != 1 {
		t.Errorf("binary values: got %d,%d want 0,1", out.Pixel(0, 0), out.Pixel(2, 0))
	}
}

func TestRemoveColormap_NoColormapCopies(t *testing.T) {
	p, _ := New(3, 3, 8)
	p.SetPixel(1, 1, 5)
	out, err := RemoveColormap(p, RemoveBasedOnSrc)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(p, out) {
		t.Error("copy differs")
	}
	out.SetPixel(1, 1, 6)
	if p.Pixel(1, 1) != 5 {
		t.Error("copy aliases source")
	}
}

func TestConvertTo8(t *testing.T) {
	tests := []struct {
		depth int
		in    uint32
		want  uint32
	}{
		{1, 0, 255},
		{1, 1, 0},
		{2, 1, 85},
		{2, 3, 255},
		{4, 2, 34},
		{4, 15, 255},
		{8, 77, 77},
		{32, ComposeRGB(100, 200, 50), 140},
	}
	for _, tt := range tests {
		p, _ := New(2, 2, tt.depth)
		p.SetPixel(1, 1, tt.in)
		out, err := ConvertTo8(p)
		if err != nil {
			t.Fatal(err)
		}
		if out.Depth() != 8 {
			t.Fatalf("depth %d: out depth %d", tt.depth, out.Depth())
		}
		if got := out.Pixel(1, 1); got != tt.want {
			t.Errorf("depth %d value %d: got %d, want %d", tt.depth, tt.in, got, tt.want)
		}
	}
}

func TestConvertTo8_Colormapped(t *testing.T) {
	p, _ := New(2, 1, 4)
	_ = p.SetColormap(grayCmap(t, 4, 12, 240))
	p.SetPixel(1, 0, 1)
	out, err := ConvertTo8(p)
	if err != nil {
		t.Fatal(err)
	}
	if out.Colormap() != nil || out.Pixel(1, 0) != 240 || out.Pixel(0, 0) != 12 {
		t.Errorf("got cmap=%v values %d,%d", out.Colormap(), out.Pixel(0, 0), out.Pixel(1, 0))
	}
}
