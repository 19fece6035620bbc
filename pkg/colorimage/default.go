package colorimage

import (
	"sync"

	"github.com/user/gridraster/pkg/adapters/ggrenderer"
	"github.com/user/gridraster/pkg/adapters/imagecodec"
	"github.com/user/gridraster/pkg/adapters/logger"
	"github.com/user/gridraster/pkg/adapters/nullsink"
	"github.com/user/gridraster/pkg/adapters/osfilesystem"
	"github.com/user/gridraster/pkg/rgb"
)

var (
	defaultOnce    sync.Once
	defaultToolkit *Toolkit
)

// Default returns a Toolkit on the local file system with the built-in
// codec and text renderer. It logs nothing.
//
// For a custom logger or debug output, use NewToolkit instead:
//
//	tk := colorimage.NewToolkit(
//	    osfilesystem.New(),
//	    imagecodec.New(),
//	    ggrenderer.New(),
//	    filesink.New("./debug", fs, codec),
//	    myLogger,
//	)
func Default() *Toolkit {
	defaultOnce.Do(func() {
		defaultToolkit = NewToolkit(
			osfilesystem.New(),
			imagecodec.New(),
			ggrenderer.New(),
			nullsink.New(),
			logger.NewNoop(),
		)
	})
	return defaultToolkit
}

// Open loads an image file with the default toolkit.
func Open(path string) (*Image, error) {
	return Default().Load(path)
}

// Save writes i with the default toolkit.
func (i *Image) Save(path, format string) error {
	return Default().Save(i, path, format)
}

// SaveDefault writes i to ./output.png.
func (i *Image) SaveDefault() error {
	return i.Save(DefaultOutputPath, "png")
}

// DrawText composites a label with the default toolkit.
func (i *Image) DrawText(x, y int, text string, size int, c rgb.Color) error {
	return Default().DrawText(i, x, y, text, size, c)
}

// DrawCenteredText composites a centred label with the default toolkit.
func (i *Image) DrawCenteredText(x, y int, text string, size int, c rgb.Color) error {
	return Default().DrawCenteredText(i, x, y, text, size, c)
}
