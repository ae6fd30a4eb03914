// ABOUTME: Shared test fixtures: in-memory NRGBA images and encoded files on disk
// ABOUTME: Encoders cover png and bmp so decoder registration is exercised

package image

import (
	"bytes"
	goimage "image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

var (
	black       = color.NRGBA{A: 255}
	white       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	transparent = color.NRGBA{}
)

// newNRGBA builds a w x h image from pixels in row-major order.
func newNRGBA(t *testing.T, w, h int, pixels ...color.NRGBA) *goimage.NRGBA {
	t.Helper()
	if len(pixels) != w*h {
		t.Fatalf("newNRGBA: got %d pixels for %dx%d", len(pixels), w, h)
	}
	img := goimage.NewNRGBA(goimage.Rect(0, 0, w, h))
	for i, px := range pixels {
		img.SetNRGBA(i%w, i/w, px)
	}
	return img
}

// solid builds a w x h image filled with c.
func solid(w, h int, c color.NRGBA) *goimage.NRGBA {
	img := goimage.NewNRGBA(goimage.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// writePNG encodes img into a temp file and returns its path.
func writePNG(t *testing.T, img goimage.Image) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return writeFile(t, "img.png", buf.Bytes())
}

// writeBMP encodes img as BMP into a temp file and returns its path.
func writeBMP(t *testing.T, img goimage.Image) string {
	t.Helper()
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return writeFile(t, "img.bmp", buf.Bytes())
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
