// ABOUTME: Image file loading with format sniffing and optional EXIF orientation
// ABOUTME: Registers png, jpeg, gif, bmp, tiff, webp; maps failures to IOError/DecodeError

package image

import (
	"errors"
	"fmt"
	goimage "image"
	"io"
	"os"

	// Register decoders for standard formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	pilog "github.com/mauromedda/im2as-go/internal/log"
)

var errEmptyImage = errors.New("image has no pixels")

// Load opens path and decodes it into a non-premultiplied RGBA buffer.
// When autoOrient is set, EXIF orientation (JPEG only) is applied.
func Load(path string, autoOrient bool) (*goimage.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	if st.IsDir() {
		return nil, &IOError{Path: path, Err: fmt.Errorf("is a directory")}
	}

	return decode(path, f, autoOrient)
}

// decode sniffs the format from the header, then rewinds and decodes fully.
func decode(path string, r io.ReadSeeker, autoOrient bool) (*goimage.NRGBA, error) {
	cfg, format, err := goimage.DecodeConfig(r)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	pilog.Debug("load: %s format=%s size=%dx%d", path, format, cfg.Width, cfg.Height)

	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, &DecodeError{Path: path, Format: format, Err: errEmptyImage}
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	img, err := imaging.Decode(r, imaging.AutoOrientation(autoOrient))
	if err != nil {
		return nil, &DecodeError{Path: path, Format: format, Err: err}
	}
	if img.Bounds().Empty() {
		return nil, &DecodeError{Path: path, Format: format, Err: errEmptyImage}
	}

	if nrgba, ok := img.(*goimage.NRGBA); ok {
		return nrgba, nil
	}
	return imaging.Clone(img), nil
}
