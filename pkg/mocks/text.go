package mocks

import (
	"image"
	"image/draw"
	"sync"

	"github.com/user/gridraster/pkg/ports"
)

// TextRasterizer is a mock implementation of ports.TextRasterizer.
//
// By default it fills the layer with the background and paints a solid
// block of Color at (X, Y) sized BlockWidth x BlockHeight, which makes
// composited output easy to predict.
type TextRasterizer struct {
	mu       sync.Mutex
	Requests []ports.TextRequest

	BlockWidth  int
	BlockHeight int

	RenderTextFunc func(req ports.TextRequest) (image.Image, error)
}

func (m *TextRasterizer) RenderText(req ports.TextRequest) (image.Image, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()

	if m.RenderTextFunc != nil {
		return m.RenderTextFunc(req)
	}

	img := image.NewRGBA(image.Rect(0, 0, req.Width, req.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(req.Background), image.Point{}, draw.Src)
	block := image.Rect(req.X, req.Y, req.X+m.BlockWidth, req.Y+m.BlockHeight)
	draw.Draw(img, block, image.NewUniform(req.Color), image.Point{}, draw.Src)
	return img, nil
}

var _ ports.TextRasterizer = (*TextRasterizer)(nil)
