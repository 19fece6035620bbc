// Package imagecodec provides an image codec built on the standard image
// packages and golang.org/x/image.
package imagecodec

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	// Extra formats accepted when loading.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"

	"github.com/user/gridraster/pkg/ports"
)

// DefaultJPEGQuality matches the quality javax-style writers default to.
const DefaultJPEGQuality = 75

// Codec implements ports.ImageCodec.
//
// Decoding accepts GIF, JPEG and PNG plus BMP, TIFF and WebP. Encoding
// produces GIF, JPEG or PNG.
type Codec struct{}

// New creates a new Codec.
func New() *Codec {
	return &Codec{}
}

// DecodeImage decodes image data, detecting the format from its header.
func (c *Codec) DecodeImage(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// EncodeImage encodes an image to the specified format.
func (c *Codec) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		if quality <= 0 || quality > 100 {
			quality = DefaultJPEGQuality
		}
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	case ports.FormatGIF:
		opts := &gif.Options{NumColors: 256, Drawer: draw.FloydSteinberg}
		if err := gif.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode GIF: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// Ensure Codec implements ports.ImageCodec
var _ ports.ImageCodec = (*Codec)(nil)
