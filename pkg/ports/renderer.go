package ports

import (
	"fmt"
	"image"
	"image/color"
)

// ImageCodec decodes and encodes raster image files.
type ImageCodec interface {
	// DecodeImage decodes image data, detecting the format from its header.
	// It returns the detected format name.
	DecodeImage(data []byte) (image.Image, string, error)

	// EncodeImage encodes an image to the specified format.
	// quality is only used by lossy formats.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)
}

// TextRasterizer renders a text label onto a solid background.
type TextRasterizer interface {
	// RenderText returns an image of req.Width x req.Height filled with
	// req.Background and carrying the label.
	RenderText(req TextRequest) (image.Image, error)
}

// TextRequest describes a label to rasterize.
type TextRequest struct {
	Width      int
	Height     int
	Background color.Color

	X, Y int
	Text string
	// Size is the font size in pixels.
	Size  float64
	Color color.Color

	// Centered places the text's bounding box centre at (X, Y) instead of
	// starting it there.
	Centered bool

	// FontPath optionally selects a TrueType font instead of the built-in face.
	FontPath string
}

// ImageFormat specifies an image encoding format.
type ImageFormat int

const (
	FormatGIF ImageFormat = iota
	FormatJPEG
	FormatPNG
)

// String returns the format name as accepted by ParseImageFormat.
func (f ImageFormat) String() string {
	switch f {
	case FormatGIF:
		return "gif"
	case FormatJPEG:
		return "jpg"
	case FormatPNG:
		return "png"
	default:
		return "unknown"
	}
}

// ParseImageFormat matches s case-sensitively against gif, jpg and png.
func ParseImageFormat(s string) (ImageFormat, error) {
	switch s {
	case "gif":
		return FormatGIF, nil
	case "jpg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	default:
		return 0, fmt.Errorf("%w: invalid format: %s (valid values: gif, jpg, png)", ErrInvalidArgument, s)
	}
}
