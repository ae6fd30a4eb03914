// ABOUTME: Resize to a character width with terminal font aspect correction, then contrast
// ABOUTME: Cells are ~2x taller than wide, so height = width * srcH / (2 * srcW), truncated

package image

import (
	goimage "image"

	"github.com/disintegration/imaging"

	pilog "github.com/mauromedda/im2as-go/internal/log"
)

// fontAspect is the height:width ratio of a terminal character cell.
const fontAspect = 2.0

// OutputSize returns the pixel dimensions a srcW x srcH image is resized to
// for width character columns. Height is truncated and never below 1.
func OutputSize(srcW, srcH, width int) (int, int) {
	scaledWidth := float64(srcW) * fontAspect
	ratio := float64(srcH) / scaledWidth
	height := int(float64(width) * ratio)
	if height < 1 {
		height = 1
	}
	return width, height
}

// ScaleToWidth resizes img to exactly width columns using filter.
func ScaleToWidth(img goimage.Image, width int, filter Filter) *goimage.NRGBA {
	b := img.Bounds()
	w, h := OutputSize(b.Dx(), b.Dy(), width)
	pilog.Debug("transform: resize %dx%d -> %dx%d filter=%s", b.Dx(), b.Dy(), w, h, filter)
	return imaging.Resize(img, w, h, filter.resample())
}

// AdjustContrast applies a linear contrast stretch around the midpoint.
// percentage is clamped to [-100, 100]; 0 returns an unchanged copy.
// Alpha is not modified. The slope is 1+percentage/100, so the default of
// 50 doubles contrast. That is a little milder than the squared curve
// ((100+c)/100)^2 some converters use, which gives 2.25 at 50 and is
// unclamped.
func AdjustContrast(img goimage.Image, percentage float64) *goimage.NRGBA {
	return imaging.AdjustContrast(img, percentage)
}

// Prepare loads path and applies ScaleToWidth followed by AdjustContrast.
// Contrast runs second so it sees the resampled pixels.
func Prepare(path string, opts Options) (*goimage.NRGBA, error) {
	img, err := Load(path, opts.AutoOrient)
	if err != nil {
		return nil, err
	}
	scaled := ScaleToWidth(img, opts.Width, opts.Filter)
	return AdjustContrast(scaled, opts.Contrast), nil
}
