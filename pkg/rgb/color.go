package rgb

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an immutable opaque RGB colour.
type Color struct {
	r, g, b uint8
}

// Common colours.
var (
	Black = Color{}
	White = Color{r: 255, g: 255, b: 255}
)

// New returns the colour with the given channels.
func New(r, g, b int) (Color, error) {
	if err := ValidateRGB(r, g, b); err != nil {
		return Color{}, err
	}
	return Color{r: uint8(r), g: uint8(g), b: uint8(b)}, nil
}

// MustNew is like New but panics on invalid channels.
func MustNew(r, g, b int) Color {
	c, err := New(r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}

// FromPixel decodes a packed pixel.
func FromPixel(p Pixel) (Color, error) {
	r, g, b, err := Decode(p)
	if err != nil {
		return Color{}, err
	}
	return Color{r: uint8(r), g: uint8(g), b: uint8(b)}, nil
}

// FromColor converts any colour to an opaque Color, dropping alpha the way
// non-premultiplied readers do.
func FromColor(c color.Color) Color {
	if rc, ok := c.(Color); ok {
		return rc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{r: n.R, g: n.G, b: n.B}
}

const hexDigits = "0123456789abcdefABCDEF"

// ParseHex parses "#rrggbb", "rrggbb" or the short "#rgb" form.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return Color{}, fmt.Errorf("%w: invalid colour %q", ErrInvalidArgument, s)
	}
	// colorful.Hex scans with Sscanf, which stops at the first bad digit.
	if strings.Trim(hex[1:], hexDigits) != "" {
		return Color{}, fmt.Errorf("%w: invalid colour %q", ErrInvalidArgument, s)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("%w: invalid colour %q: %w", ErrInvalidArgument, s, err)
	}
	r, g, b := c.RGB255()
	return Color{r: r, g: g, b: b}, nil
}

func (c Color) R() int { return int(c.r) }
func (c Color) G() int { return int(c.g) }
func (c Color) B() int { return int(c.b) }

// Pixel returns the packed form of c.
func (c Color) Pixel() Pixel {
	return opaque | Pixel(c.r)<<16 | Pixel(c.g)<<8 | Pixel(c.b)
}

// Invert returns the channel-wise inversion of c.
func (c Color) Invert() Color {
	return Color{r: 255 - c.r, g: 255 - c.g, b: 255 - c.b}
}

// Luminance returns the perceived brightness of c.
func (c Color) Luminance() int {
	l, _ := Luminance(c.R(), c.G(), c.B())
	return l
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.r)
	r |= r << 8
	g = uint32(c.g)
	g |= g << 8
	b = uint32(c.b)
	b |= b << 8
	return r, g, b, 0xffff
}

// String returns c as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

var _ color.Color = Color{}
