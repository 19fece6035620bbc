// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/gridraster/pkg/ports"
)

// Sink saves debug output as PNG files under a base directory.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
	codec   ports.ImageCodec
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, codec ports.ImageCodec) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
		codec:   codec,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveTextLayer saves the offscreen text layer as layers/layer-NNNN.png.
func (s *Sink) SaveTextLayer(index int, img image.Image) error {
	dir := filepath.Join(s.baseDir, "layers")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	return s.savePNG(filepath.Join(dir, fmt.Sprintf("layer-%04d.png", index)), img)
}

// SaveImage saves a named intermediate image as <name>.png.
func (s *Sink) SaveImage(name string, img image.Image) error {
	return s.savePNG(filepath.Join(s.baseDir, name+".png"), img)
}

func (s *Sink) savePNG(path string, img image.Image) error {
	data, err := s.codec.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
