package gallery

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// textureResult is the outcome of a background image load.
type textureResult struct {
	img image.Image
	err error
}

// loadTextureAsync decodes name from fsys on a new goroutine. The returned
// channel receives exactly one result and is never closed; it is buffered so
// the goroutine never blocks on a consumer that stopped listening.
func loadTextureAsync(fsys fs.FS, name string) <-chan textureResult {
	ch := make(chan textureResult, 1)
	go func() {
		img, err := decodeImage(fsys, name)
		ch <- textureResult{img: img, err: err}
	}()
	return ch
}

// decodeImage reads and decodes an image, then applies its EXIF orientation
// so photos taken in portrait display upright.
func decodeImage(fsys fs.FS, name string) (image.Image, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return orient(img, exifOrientation(data)), nil
}

// exifOrientation returns the EXIF orientation tag (1-8), or 1 when the data
// carries no EXIF block or no orientation.
func exifOrientation(data []byte) int {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return 1 // EXIF might not be present
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	o, err := tag.Int(0)
	if err != nil || o < 1 || o > 8 {
		return 1
	}
	return o
}

// orient returns img transformed according to an EXIF orientation value.
// Orientation 1 and unknown values return img unchanged.
func orient(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		// Tag 6 means the camera was turned 90 clockwise; imaging rotates
		// counter-clockwise.
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	}
	return img
}
