package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate rendering results.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveTextLayer saves the offscreen layer rendered for a text label,
	// before it is composited.
	SaveTextLayer(index int, img image.Image) error

	// SaveImage saves a named intermediate image.
	SaveImage(name string, img image.Image) error
}
