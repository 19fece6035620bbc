package mocks

import (
	"image"
	"sync"

	"github.com/user/gridraster/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	TextLayers map[int]image.Image
	Images     map[string]image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:    enabled,
		TextLayers: make(map[int]image.Image),
		Images:     make(map[string]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveTextLayer(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TextLayers[index] = img
	return nil
}

func (m *DebugSink) SaveImage(name string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Images[name] = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)

// NullSink is a no-op implementation of ports.DebugSink.
type NullSink struct{}

func (m *NullSink) Enabled() bool                                  { return false }
func (m *NullSink) SaveTextLayer(index int, img image.Image) error { return nil }
func (m *NullSink) SaveImage(name string, img image.Image) error   { return nil }

var _ ports.DebugSink = (*NullSink)(nil)
