// Package rgb converts between 8-bit RGB channels and packed 32-bit pixels.
//
// Packed pixels use the layout 0xFFRRGGBB: the alpha byte is always opaque.
package rgb

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is wrapped by every precondition failure in this module.
var ErrInvalidArgument = errors.New("invalid argument")

// Pixel is a packed opaque colour in 0xFFRRGGBB layout.
type Pixel uint32

// opaque is the fixed alpha byte of every encoded pixel.
const opaque Pixel = 0xFF << 24

// ValidComponent reports whether v is a valid channel value.
func ValidComponent(v int) bool {
	return v >= 0 && v <= 255
}

// ValidRGB reports whether all three channels are valid.
func ValidRGB(r, g, b int) bool {
	return ValidComponent(r) && ValidComponent(g) && ValidComponent(b)
}

// ValidateRGB returns an error wrapping ErrInvalidArgument when any channel
// is outside [0, 255].
func ValidateRGB(r, g, b int) error {
	if !ValidRGB(r, g, b) {
		return fmt.Errorf("%w: invalid RGB: %d, %d, %d", ErrInvalidArgument, r, g, b)
	}
	return nil
}

// Encode packs three channels into a Pixel.
func Encode(r, g, b int) (Pixel, error) {
	if err := ValidateRGB(r, g, b); err != nil {
		return 0, err
	}
	return opaque | Pixel(r)<<16 | Pixel(g)<<8 | Pixel(b), nil
}

// Decode extracts the three channels of p. The alpha byte is ignored.
//
// The range check cannot fail for values produced by Encode; it guards
// pixels supplied from outside the codec.
func Decode(p Pixel) (r, g, b int, err error) {
	r = int(p>>16) & 0xFF
	g = int(p>>8) & 0xFF
	b = int(p) & 0xFF
	if !ValidRGB(r, g, b) {
		return 0, 0, 0, fmt.Errorf("%w: invalid value: %d, resulted in [%d, %d, %d]", ErrInvalidArgument, uint32(p), r, g, b)
	}
	return r, g, b, nil
}

// Luminance returns the perceived brightness of a colour in [0, 255].
func Luminance(r, g, b int) (int, error) {
	if err := ValidateRGB(r, g, b); err != nil {
		return 0, err
	}
	return int(math.Round(float64(r)*.21 + float64(g)*.71 + float64(b)*.08)), nil
}

// IsLight reports whether a luminance value falls on the "on" side of the
// binary threshold.
func IsLight(luminance int) bool {
	return luminance >= 128
}
