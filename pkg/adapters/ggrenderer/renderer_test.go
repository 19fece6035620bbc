package ggrenderer

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/user/gridraster/pkg/ports"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

func isBackground(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

// inked returns the bounding box of every non-background pixel.
func inked(img image.Image) (image.Rectangle, int) {
	var box image.Rectangle
	count := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if isBackground(img, x, y) {
				continue
			}
			count++
			box = box.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	return box, count
}

func TestRenderer_RenderTextSize(t *testing.T) {
	r := New()

	img, err := r.RenderText(ports.TextRequest{
		Width: 120, Height: 40, Background: white,
		X: 5, Y: 5, Text: "Sudoku", Size: 16, Color: black,
	})
	if err != nil {
		t.Fatalf("RenderText failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 120 || bounds.Dy() != 40 {
		t.Errorf("expected 120x40, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	if !isBackground(img, 119, 39) {
		t.Error("expected corner pixel to keep the background colour")
	}
	if _, n := inked(img); n == 0 {
		t.Error("expected some text pixels")
	}
}

func TestRenderer_EmptyTextIsBackground(t *testing.T) {
	r := New()

	img, err := r.RenderText(ports.TextRequest{
		Width: 20, Height: 20, Background: white,
		Text: "", Size: 12, Color: black,
	})
	if err != nil {
		t.Fatalf("RenderText failed: %v", err)
	}
	if _, n := inked(img); n != 0 {
		t.Errorf("expected no text pixels, got %d", n)
	}
}

func TestRenderer_CenteredTextStraddlesPoint(t *testing.T) {
	r := New()

	img, err := r.RenderText(ports.TextRequest{
		Width: 200, Height: 200, Background: white,
		X: 100, Y: 100, Text: "888", Size: 40, Color: black, Centered: true,
	})
	if err != nil {
		t.Fatalf("RenderText failed: %v", err)
	}

	box, n := inked(img)
	if n == 0 {
		t.Fatal("expected some text pixels")
	}
	if box.Min.X >= 100 || box.Max.X <= 100 {
		t.Errorf("expected text to straddle x=100, got %v", box)
	}
	if box.Min.Y >= 100 || box.Max.Y <= 100 {
		t.Errorf("expected text to straddle y=100, got %v", box)
	}
}

func TestRenderer_LeftAlignedTextStartsAtPoint(t *testing.T) {
	r := New()

	img, err := r.RenderText(ports.TextRequest{
		Width: 200, Height: 100, Background: white,
		X: 50, Y: 30, Text: "123", Size: 24, Color: black,
	})
	if err != nil {
		t.Fatalf("RenderText failed: %v", err)
	}

	box, n := inked(img)
	if n == 0 {
		t.Fatal("expected some text pixels")
	}
	if box.Min.X < 50 {
		t.Errorf("expected text to start at or right of x=50, got %v", box)
	}
	if box.Min.Y < 30 {
		t.Errorf("expected text below y=30, got %v", box)
	}
}

func TestRenderer_FontPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.ttf")
	if err := os.WriteFile(path, gomono.TTF, 0644); err != nil {
		t.Fatalf("failed to write font: %v", err)
	}

	r := New()
	req := ports.TextRequest{
		Width: 200, Height: 60, Background: white,
		X: 10, Y: 10, Text: "iiii", Size: 24, Color: black,
	}
	regular, err := r.RenderText(req)
	if err != nil {
		t.Fatalf("RenderText failed: %v", err)
	}

	req.FontPath = path
	mono, err := r.RenderText(req)
	if err != nil {
		t.Fatalf("RenderText with font file failed: %v", err)
	}

	regularBox, _ := inked(regular)
	monoBox, n := inked(mono)
	if n == 0 {
		t.Fatal("expected some text pixels")
	}
	// Monospaced "i" advances as wide as any glyph, so the run is wider.
	if monoBox.Dx() <= regularBox.Dx() {
		t.Errorf("expected monospaced text to be wider: regular %v, mono %v", regularBox, monoBox)
	}
}

func TestRenderer_InvalidRequest(t *testing.T) {
	r := New()

	tests := []struct {
		name string
		req  ports.TextRequest
	}{
		{"zero width", ports.TextRequest{Width: 0, Height: 10, Size: 10}},
		{"zero size", ports.TextRequest{Width: 10, Height: 10, Size: 0}},
		{"missing font", ports.TextRequest{Width: 10, Height: 10, Size: 10, FontPath: "/nonexistent/font.ttf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Background = white
			tt.req.Color = black
			_, err := r.RenderText(tt.req)
			if !errors.Is(err, ports.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}
