package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/disintegration/imaging"

	// Register decoders for the formats historical scans arrive in.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// DecodeScan decodes a scanned page image. PNG, JPEG, TIFF, and BMP are
// supported; archival scans are most often TIFF.
func DecodeScan(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("ocr: decoding scan: %w", err)
	}
	return img, nil
}

// EnhanceForRecognition applies a series of image processing operations that
// improve recognition on aged document scans: grayscale for contrast,
// aggressive contrast boost, sharpening, and a slight brightness lift.
func EnhanceForRecognition(src image.Image) image.Image {
	img := imaging.Grayscale(src)
	img = imaging.AdjustContrast(img, 30)
	img = imaging.Sharpen(img, 1.5)
	img = imaging.AdjustBrightness(img, 10)
	return img
}

// EncodePNG encodes an image as PNG bytes, the form the recognition client
// consumes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("ocr: encoding image: %w", err)
	}
	return buf.Bytes(), nil
}
