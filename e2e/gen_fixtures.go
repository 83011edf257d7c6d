//go:build ignore

// gen_fixtures creates small test images for the E2E smoke test: a flat
// page, the same page photographed at an angle, a paletted logo and a
// bilevel scan. It prints the lept command that straightens the page.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/njlr/leptonica/pix"
	"github.com/njlr/leptonica/projective"
)

const w, h = 400, 300

var (
	flat     = []projective.Point{{0, 0}, {w - 1, 0}, {w - 1, h - 1}, {0, h - 1}}
	keystone = []projective.Point{{40, 18}, {372, 0}, {399, 299}, {0, 270}}
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	if err := os.MkdirAll(filepath.Join(dir, "scans"), 0o755); err != nil {
		fail(err)
	}

	page := ruledPage()
	writePNG(filepath.Join(dir, "page.png"), page)

	// Photograph the page: every flat pixel lands on the keystone quad.
	src, err := pix.FromImage(page)
	if err != nil {
		fail(err)
	}
	photo, err := projective.TransformPoints(src, keystone, flat, projective.BringInBlack)
	if err != nil {
		fail(err)
	}
	writeJPEG(filepath.Join(dir, "scans", "photo.jpg"), pix.ToImage(photo))

	writeGIF(filepath.Join(dir, "scans", "logo.gif"), logo())
	writePNG(filepath.Join(dir, "scans", "bilevel.png"), bilevel())

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 4 fixtures in %s\n", dir)
	fmt.Printf("lept batch %s --src %s --dst %s -o %s\n",
		filepath.Join(dir, "scans"), flag(keystone), flag(flat), filepath.Join(dir, "out"))
}

func ruledPage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: 250, G: 248, B: 240, A: 255}
			switch {
			case y%24 == 0:
				c = color.NRGBA{R: 120, G: 150, B: 220, A: 255}
			case x == 48:
				c = color.NRGBA{R: 220, G: 60, B: 60, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func logo() *image.Paletted {
	pal := color.Palette{
		color.RGBA{R: 255, G: 255, B: 255, A: 255},
		color.RGBA{R: 20, G: 60, B: 140, A: 255},
		color.RGBA{R: 240, G: 180, B: 20, A: 255},
	}
	img := image.NewPaletted(image.Rect(0, 0, 160, 120), pal)
	for y := 0; y < 120; y++ {
		for x := 0; x < 160; x++ {
			dx, dy := x-80, y-60
			switch {
			case dx*dx+dy*dy < 30*30:
				img.SetColorIndex(x, y, 2)
			case x > 10 && x < 150 && y > 10 && y < 110:
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	return img
}

func bilevel() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 200, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			v := uint8(255)
			if (x/10+y/10)%2 == 0 {
				v = 0
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

func flag(pts []projective.Point) string {
	s := ""
	for i, p := range pts {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("%g,%g", p.X, p.Y)
	}
	return s
}

func writePNG(path string, img image.Image) {
	f, err := os.Create(path)
	if err != nil {
		fail(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		fail(err)
	}
}

func writeJPEG(path string, img image.Image) {
	f, err := os.Create(path)
	if err != nil {
		fail(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		fail(err)
	}
}

func writeGIF(path string, img *image.Paletted) {
	f, err := os.Create(path)
	if err != nil {
		fail(err)
	}
	defer f.Close()
	if err := gif.Encode(f, img, nil); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "[gen_fixtures] %v\n", err)
	os.Exit(1)
}
