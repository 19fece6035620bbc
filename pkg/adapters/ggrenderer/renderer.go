// Package ggrenderer provides a text rasterizer using the gg library.
package ggrenderer

import (
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/user/gridraster/pkg/ports"
)

var (
	defaultFontOnce sync.Once
	defaultFont     *opentype.Font
	defaultFontErr  error
)

func loadDefaultFont() (*opentype.Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = opentype.Parse(goregular.TTF)
	})
	return defaultFont, defaultFontErr
}

// Renderer implements ports.TextRasterizer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// RenderText draws req.Text onto a canvas cleared to req.Background.
//
// Without centring, (X, Y) is the top-left of the text's line box. With
// centring, the line box is centred on (X, Y).
func (r *Renderer) RenderText(req ports.TextRequest) (image.Image, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return nil, fmt.Errorf("%w: text layer size %dx%d", ports.ErrInvalidArgument, req.Width, req.Height)
	}
	if req.Size <= 0 {
		return nil, fmt.Errorf("%w: font size %v", ports.ErrInvalidArgument, req.Size)
	}

	face, err := r.face(req.FontPath, req.Size)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	dc := gg.NewContext(req.Width, req.Height)
	dc.SetColor(req.Background)
	dc.Clear()

	dc.SetFontFace(face)
	dc.SetColor(req.Color)

	x, y := origin(face.Metrics(), dc, req)
	dc.DrawString(req.Text, float64(x), float64(y))

	return dc.Image(), nil
}

// origin returns the baseline start of the label.
func origin(m font.Metrics, dc *gg.Context, req ports.TextRequest) (int, int) {
	advance, _ := dc.MeasureString(req.Text)
	textWidth := int(math.Round(advance))

	height := m.Height.Round()
	ascent := m.Ascent.Round()
	descent := m.Descent.Round()
	leading := height - ascent - descent

	x, y := req.X, req.Y
	if req.Centered {
		x -= textWidth / 2
		y -= height / 2
	}

	// Keeps labels of different sizes visually centred on the requested y.
	correction := height - ascent + descent - leading
	return x, y + height - correction/2
}

func (r *Renderer) face(path string, size float64) (font.Face, error) {
	if path != "" {
		face, err := gg.LoadFontFace(path, size)
		if err != nil {
			return nil, fmt.Errorf("%w: load font %s: %w", ports.ErrInvalidArgument, path, err)
		}
		return face, nil
	}

	f, err := loadDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("parse default font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

// Ensure Renderer implements ports.TextRasterizer
var _ ports.TextRasterizer = (*Renderer)(nil)
