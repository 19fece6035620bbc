package colorimage

import (
	"fmt"
	"image"

	"github.com/user/gridraster/pkg/ports"
	"github.com/user/gridraster/pkg/rgb"
)

// JPEGQuality is the quality used when saving JPEG files.
const JPEGQuality = 75

// DefaultOutputPath is where SaveDefault writes.
const DefaultOutputPath = "./output.png"

// Toolkit binds images to the collaborators that read and write files and
// rasterize text.
type Toolkit struct {
	fs     ports.FileSystem
	codec  ports.ImageCodec
	text   ports.TextRasterizer
	sink   ports.DebugSink
	logger ports.Logger

	fontPath string
	layers   int
}

// NewToolkit creates a Toolkit.
func NewToolkit(fs ports.FileSystem, codec ports.ImageCodec, text ports.TextRasterizer, sink ports.DebugSink, logger ports.Logger) *Toolkit {
	return &Toolkit{
		fs:     fs,
		codec:  codec,
		text:   text,
		sink:   sink,
		logger: logger.WithComponent("colorimage"),
	}
}

// SetFontPath selects a TrueType or OpenType font file for labels. An empty
// path restores the built-in font.
func (t *Toolkit) SetFontPath(path string) {
	t.fontPath = path
}

// Load reads an image file (GIF, JPEG, PNG and any other format the codec
// accepts). Transparency is discarded.
func (t *Toolkit) Load(path string) (*Image, error) {
	src, format, err := t.decodeFile(path)
	if err != nil {
		return nil, err
	}
	img := fromImage(src)
	t.logger.Debug("Loaded %dx%d %s image from %s", src.Bounds().Dx(), src.Bounds().Dy(), format, path)
	return img, nil
}

// LoadBinary reads an image file as a matrix of booleans, true where the
// pixel's luminance is at least 50%.
func (t *Toolkit) LoadBinary(path string) ([][]bool, error) {
	img, err := t.Load(path)
	if err != nil {
		return nil, err
	}
	return img.Binary(), nil
}

func (t *Toolkit) decodeFile(path string) (image.Image, string, error) {
	if err := t.validateFile(path); err != nil {
		return nil, "", err
	}
	data, err := t.fs.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ports.ErrInvalidArgument, err)
	}
	img, format, err := t.codec.DecodeImage(data)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", ports.ErrInvalidArgument, path, err)
	}
	if img.Bounds().Empty() {
		return nil, "", fmt.Errorf("%w: %s: empty image", ports.ErrInvalidArgument, path)
	}
	return img, format, nil
}

func (t *Toolkit) validateFile(path string) error {
	exists, err := t.fs.Exists(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ports.ErrInvalidArgument, err)
	}
	if !exists {
		return fmt.Errorf("%w: file does not exist: %s", ports.ErrInvalidArgument, path)
	}
	regular, err := t.fs.IsRegular(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ports.ErrInvalidArgument, err)
	}
	if !regular {
		return fmt.Errorf("%w: path does not represent a file: %s", ports.ErrInvalidArgument, path)
	}
	return nil
}

// Save writes img to path. format is matched case-sensitively against
// gif, jpg and png.
func (t *Toolkit) Save(img *Image, path, format string) error {
	f, err := ports.ParseImageFormat(format)
	if err != nil {
		return err
	}
	data, err := t.codec.EncodeImage(img, f, JPEGQuality)
	if err != nil {
		return fmt.Errorf("%w: %w", ports.ErrInvalidArgument, err)
	}
	if err := t.fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrInvalidArgument, err)
	}
	t.logger.Debug("Saved %dx%d %s image to %s", img.Width(), img.Height(), f, path)
	return nil
}

// DrawText composites a label whose line box starts at (x, y).
func (t *Toolkit) DrawText(img *Image, x, y int, text string, size int, c rgb.Color) error {
	return t.drawText(img, x, y, text, size, c, false)
}

// DrawCenteredText composites a label centred on (x, y).
func (t *Toolkit) DrawCenteredText(img *Image, x, y int, text string, size int, c rgb.Color) error {
	return t.drawText(img, x, y, text, size, c, true)
}

// drawText renders the label on a full-size layer whose background is the
// inverse of c, then copies every layer pixel that differs from that
// background. Glyph pixels that happen to equal the background are dropped.
func (t *Toolkit) drawText(img *Image, x, y int, text string, size int, c rgb.Color, centered bool) error {
	t.logger.Debug("Compositing text %q at (%d, %d), size %d", text, x, y, size)

	mask := c.Invert()
	layer, err := t.text.RenderText(ports.TextRequest{
		Width:      img.Width(),
		Height:     img.Height(),
		Background: mask,
		X:          x,
		Y:          y,
		Text:       text,
		Size:       float64(size),
		Color:      c,
		Centered:   centered,
		FontPath:   t.fontPath,
	})
	if err != nil {
		return fmt.Errorf("render text %q: %w", text, err)
	}

	if t.sink.Enabled() {
		t.layers++
		if err := t.sink.SaveTextLayer(t.layers, layer); err != nil {
			t.logger.Warn("Failed to save text layer: %s", err.Error())
		}
	}

	n := composite(img, layer, mask.Pixel())
	t.logger.Debug("Composited %d text pixels", n)
	return nil
}

// composite copies layer pixels that differ from key into img and returns
// how many were copied.
func composite(img *Image, layer image.Image, key rgb.Pixel) int {
	b := layer.Bounds()
	h := min(b.Dy(), img.Height())
	w := min(b.Dx(), img.Width())

	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := rgb.FromColor(layer.At(b.Min.X+x, b.Min.Y+y)).Pixel()
			if p != key {
				img.data[y][x] = p
				n++
			}
		}
	}
	return n
}
