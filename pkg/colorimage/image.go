// Package colorimage provides an in-memory colour image backed by a grid of
// packed pixels, with file I/O and text labels delegated to collaborators.
//
// The grid is row-major: data[y][x], so the number of rows is the height
// and the row length is the width.
package colorimage

import (
	"image"
	"image/color"

	"github.com/user/gridraster/pkg/rgb"
)

// Image is a fixed-size colour image.
type Image struct {
	data [][]rgb.Pixel
}

// New returns a width x height image with every pixel zero.
func New(width, height int) *Image {
	data := make([][]rgb.Pixel, height)
	for y := range data {
		data[y] = make([]rgb.Pixel, width)
	}
	return &Image{data: data}
}

// NewFilled returns a width x height image with every pixel set to c.
func NewFilled(width, height int, c rgb.Color) *Image {
	img := New(width, height)
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			img.SetColor(x, y, c)
		}
	}
	return img
}

// FromGrid wraps grid without copying it. Writes through either the image
// or the grid are visible through the other.
func FromGrid(grid [][]rgb.Pixel) *Image {
	return &Image{data: grid}
}

// Grid returns the backing grid.
func (i *Image) Grid() [][]rgb.Pixel {
	return i.data
}

// Width returns the row length. The image must have at least one row.
func (i *Image) Width() int {
	return len(i.data[0])
}

// Height returns the number of rows.
func (i *Image) Height() int {
	return len(i.data)
}

// SetColor stores c at (x, y).
func (i *Image) SetColor(x, y int, c rgb.Color) {
	i.data[y][x] = c.Pixel()
}

// Color decodes the pixel at (x, y).
func (i *Image) Color(x, y int) (rgb.Color, error) {
	return rgb.FromPixel(i.data[y][x])
}

// Pixel returns the packed pixel at (x, y).
func (i *Image) Pixel(x, y int) rgb.Pixel {
	return i.data[y][x]
}

// Copy copies every pixel of other into the same coordinates of i.
// i must be at least as large as other in both dimensions.
func (i *Image) Copy(other *Image) {
	for y := 0; y < other.Height(); y++ {
		for x := 0; x < other.Width(); x++ {
			i.data[y][x] = other.data[y][x]
		}
	}
}

// Clone returns a deep copy of i.
func (i *Image) Clone() *Image {
	c := New(i.Width(), i.Height())
	c.Copy(i)
	return c
}

// Binary thresholds the image by luminance: true where a pixel is light.
func (i *Image) Binary() [][]bool {
	out := make([][]bool, i.Height())
	for y, row := range i.data {
		out[y] = make([]bool, len(row))
		for x, p := range row {
			out[y][x] = pixelIsLight(p)
		}
	}
	return out
}

func pixelIsLight(p rgb.Pixel) bool {
	r, g, b, err := rgb.Decode(p)
	if err != nil {
		return false
	}
	l, _ := rgb.Luminance(r, g, b)
	return rgb.IsLight(l)
}

// ColorModel implements image.Image.
func (i *Image) ColorModel() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		return rgb.FromColor(c)
	})
}

// Bounds implements image.Image.
func (i *Image) Bounds() image.Rectangle {
	if len(i.data) == 0 {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, i.Width(), i.Height())
}

// At implements image.Image. Pixels outside the bounds are transparent.
func (i *Image) At(x, y int) color.Color {
	if !image.Pt(x, y).In(i.Bounds()) {
		return color.Transparent
	}
	c, err := i.Color(x, y)
	if err != nil {
		return color.Transparent
	}
	return c
}

// fromImage converts any decoded image to an opaque grid, dropping alpha.
func fromImage(src image.Image) *Image {
	b := src.Bounds()
	img := New(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			img.data[y][x] = rgb.FromColor(src.At(b.Min.X+x, b.Min.Y+y)).Pixel()
		}
	}
	return img
}

var _ image.Image = (*Image)(nil)
