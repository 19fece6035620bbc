package colorimage

import (
	"image/color"
	"testing"

	"github.com/user/gridraster/pkg/rgb"
)

func TestNew_Dimensions(t *testing.T) {
	img := New(7, 3)
	if img.Width() != 7 || img.Height() != 3 {
		t.Errorf("expected 7x3, got %dx%d", img.Width(), img.Height())
	}
	if img.Pixel(6, 2) != 0 {
		t.Errorf("expected zero pixel, got %#x", uint32(img.Pixel(6, 2)))
	}
}

func TestNewFilled(t *testing.T) {
	c := rgb.MustNew(10, 20, 30)
	img := NewFilled(5, 4, c)

	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			got, err := img.Color(x, y)
			if err != nil {
				t.Fatalf("Color(%d, %d) failed: %v", x, y, err)
			}
			if got != c {
				t.Fatalf("Color(%d, %d): expected %v, got %v", x, y, c, got)
			}
		}
	}
}

func TestSetColor_RowMajor(t *testing.T) {
	img := New(4, 2)
	red := rgb.MustNew(255, 0, 0)
	img.SetColor(3, 1, red)

	if img.Grid()[1][3] != red.Pixel() {
		t.Error("expected pixel stored at grid[y][x]")
	}
	if got, _ := img.Color(3, 1); got != red {
		t.Errorf("expected %v, got %v", red, got)
	}
}

func TestSetColor_OutOfRangePanics(t *testing.T) {
	img := New(2, 2)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	img.SetColor(2, 0, rgb.Black)
}

func TestFromGrid_SharesStorage(t *testing.T) {
	grid := [][]rgb.Pixel{
		{rgb.White.Pixel(), rgb.White.Pixel(), rgb.White.Pixel()},
		{rgb.White.Pixel(), rgb.White.Pixel(), rgb.White.Pixel()},
	}
	img := FromGrid(grid)

	if img.Width() != 3 || img.Height() != 2 {
		t.Errorf("expected 3x2, got %dx%d", img.Width(), img.Height())
	}

	img.SetColor(0, 0, rgb.Black)
	if grid[0][0] != rgb.Black.Pixel() {
		t.Error("expected write through image to be visible in grid")
	}

	grid[1][2] = rgb.MustNew(1, 2, 3).Pixel()
	if got, _ := img.Color(2, 1); got != rgb.MustNew(1, 2, 3) {
		t.Error("expected write through grid to be visible in image")
	}
}

func TestCopy(t *testing.T) {
	c1 := rgb.MustNew(200, 200, 200)
	c2 := rgb.MustNew(10, 10, 10)
	a := NewFilled(6, 5, c1)
	b := NewFilled(6, 5, c2)

	a.Copy(b)

	for y := 0; y < 5; y++ {
		for x := 0; x < 6; x++ {
			if got, _ := a.Color(x, y); got != c2 {
				t.Fatalf("Color(%d, %d): expected %v, got %v", x, y, c2, got)
			}
		}
	}

	b.SetColor(0, 0, c1)
	if got, _ := a.Color(0, 0); got != c2 {
		t.Error("copy should not share storage")
	}
}

func TestCopy_SmallerSource(t *testing.T) {
	a := NewFilled(4, 4, rgb.White)
	b := NewFilled(2, 2, rgb.Black)

	a.Copy(b)

	if got, _ := a.Color(1, 1); got != rgb.Black {
		t.Errorf("expected copied pixel, got %v", got)
	}
	if got, _ := a.Color(3, 3); got != rgb.White {
		t.Errorf("expected untouched pixel, got %v", got)
	}
}

func TestClone(t *testing.T) {
	a := NewFilled(3, 3, rgb.White)
	c := a.Clone()
	c.SetColor(1, 1, rgb.Black)

	if got, _ := a.Color(1, 1); got != rgb.White {
		t.Error("clone should not share storage")
	}
}

func TestBinary(t *testing.T) {
	img := NewFilled(2, 1, rgb.White)
	img.SetColor(1, 0, rgb.MustNew(100, 100, 100))

	bin := img.Binary()
	if !bin[0][0] {
		t.Error("expected white to be on")
	}
	if bin[0][1] {
		t.Error("expected dark grey to be off")
	}
}

func TestImage_ImplementsImage(t *testing.T) {
	img := NewFilled(3, 2, rgb.MustNew(0, 128, 255))

	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("unexpected bounds %v", b)
	}

	r, g, b, a := img.At(2, 1).RGBA()
	if r != 0 || g != 0x8080 || b != 0xffff || a != 0xffff {
		t.Errorf("unexpected colour %x %x %x %x", r, g, b, a)
	}

	if img.At(3, 0) != color.Transparent {
		t.Error("expected transparent outside bounds")
	}

	converted := img.ColorModel().Convert(color.RGBA{R: 5, G: 6, B: 7, A: 255})
	if converted != rgb.MustNew(5, 6, 7) {
		t.Errorf("unexpected converted colour %v", converted)
	}
}
