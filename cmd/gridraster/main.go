// Package main provides the CLI entry point for gridraster.
package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/gridraster/pkg/adapters/filesink"
	"github.com/user/gridraster/pkg/adapters/ggrenderer"
	"github.com/user/gridraster/pkg/adapters/imagecodec"
	"github.com/user/gridraster/pkg/adapters/logger"
	"github.com/user/gridraster/pkg/adapters/nullsink"
	"github.com/user/gridraster/pkg/adapters/osfilesystem"
	"github.com/user/gridraster/pkg/board"
	"github.com/user/gridraster/pkg/colorimage"
	"github.com/user/gridraster/pkg/config"
	"github.com/user/gridraster/pkg/ports"
	"github.com/user/gridraster/pkg/rgb"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Render   RenderCmd   `cmd:"" help:"Render a Sudoku puzzle to an image file."`
	Label    LabelCmd    `cmd:"" help:"Draw a text label onto an image."`
	Binarize BinarizeCmd `cmd:"" help:"Convert an image to black and white by luminance."`
	Version  VersionCmd  `cmd:"" help:"Show version information."`
}

// CommonFlags are shared by every command that touches images.
type CommonFlags struct {
	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`

	// Text options
	Font string `type:"existingfile" help:"TrueType or OpenType font file for text. The built-in font is used when omitted."`

	// Debug options
	Debug    bool   `short:"d" help:"Save intermediate text layers."`
	DebugDir string `default:"./debug" help:"Directory for debug output."`
}

// RenderCmd defines the render subcommand.
type RenderCmd struct {
	CommonFlags `embed:""`

	Puzzle string `arg:"" help:"81 cells in row order; digits are givens, '.' or '0' are empty."`
	Output string `short:"o" required:"" help:"Output image file path."`

	Config string  `short:"c" type:"existingfile" help:"YAML theme configuration."`
	Format string  `short:"f" help:"Output format (gif, jpg, png). Overrides the configuration."`
	Title  *string `short:"t" help:"Title drawn above the grid."`
}

// LabelCmd defines the label subcommand.
type LabelCmd struct {
	CommonFlags `embed:""`

	Input      string `short:"i" help:"Image to draw on. A blank canvas is used when omitted."`
	Width      int    `default:"200" help:"Canvas width when no input is given."`
	Height     int    `default:"100" help:"Canvas height when no input is given."`
	Background string `default:"#ffffff" help:"Canvas colour when no input is given."`

	Text     string `required:"" help:"Label text."`
	X        int    `help:"Label x position."`
	Y        int    `help:"Label y position."`
	Size     int    `default:"24" help:"Font size in pixels."`
	Color    string `default:"#000000" help:"Text colour (hex, e.g., #1e3a8a)."`
	Centered bool   `help:"Centre the label on (x, y)."`

	Output string `short:"o" required:"" help:"Output image file path."`
	Format string `short:"f" default:"png" help:"Output format (gif, jpg, png)."`
}

// BinarizeCmd defines the binarize subcommand.
type BinarizeCmd struct {
	CommonFlags `embed:""`

	Input  string `arg:"" help:"Image to convert."`
	Output string `short:"o" required:"" help:"Output image file path."`
	Format string `short:"f" default:"png" help:"Output format (gif, jpg, png)."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("gridraster"),
		kong.Description("Render Sudoku grids and text labels to raster images."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// env holds the adapters shared by a command run.
type env struct {
	log     ports.Logger
	sink    ports.DebugSink
	toolkit *colorimage.Toolkit
}

func (f *CommonFlags) setup() (*env, error) {
	var log ports.Logger
	if f.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(f.LogLevel))
	}

	fs := osfilesystem.New()
	codec := imagecodec.New()

	var sink ports.DebugSink
	if f.Debug {
		if err := fs.MkdirAll(f.DebugDir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(f.DebugDir, fs, codec)
	} else {
		sink = nullsink.New()
	}

	toolkit := colorimage.NewToolkit(fs, codec, ggrenderer.New(), sink, log)
	toolkit.SetFontPath(f.Font)

	return &env{
		log:     log,
		sink:    sink,
		toolkit: toolkit,
	}, nil
}

// Run executes the render command.
func (cmd *RenderCmd) Run() error {
	e, err := cmd.setup()
	if err != nil {
		return err
	}

	cfg := config.Defaults()
	if cmd.Config != "" {
		cfg, err = config.LoadFromFile(cmd.Config)
		if err != nil {
			return err
		}
		e.log.Info("Loaded config from %s", cmd.Config)
	}
	if cmd.Title != nil {
		cfg.Title = *cmd.Title
	}
	if cmd.Format != "" {
		cfg.Format = cmd.Format
	}
	if cmd.Font == "" && cfg.FontPath != "" {
		e.toolkit.SetFontPath(cfg.FontPath)
	}

	theme, err := cfg.ToTheme()
	if err != nil {
		return err
	}
	b, err := board.Parse(cmd.Puzzle)
	if err != nil {
		return err
	}

	e.log.Info("Rendering puzzle to %s", cmd.Output)
	img, err := board.NewRenderer(e.toolkit, e.sink, theme, e.log).Render(b)
	if err != nil {
		e.log.Error("Failed to render puzzle: %s", err.Error())
		return err
	}
	return save(e, img, cmd.Output, cfg.Format)
}

// Run executes the label command.
func (cmd *LabelCmd) Run() error {
	e, err := cmd.setup()
	if err != nil {
		return err
	}

	textColor, err := rgb.ParseHex(cmd.Color)
	if err != nil {
		return err
	}

	var img *colorimage.Image
	if cmd.Input != "" {
		img, err = e.toolkit.Load(cmd.Input)
		if err != nil {
			return err
		}
	} else {
		if cmd.Width <= 0 || cmd.Height <= 0 {
			return fmt.Errorf("%w: canvas size %dx%d", ports.ErrInvalidArgument, cmd.Width, cmd.Height)
		}
		bg, err := rgb.ParseHex(cmd.Background)
		if err != nil {
			return err
		}
		img = colorimage.NewFilled(cmd.Width, cmd.Height, bg)
	}

	e.log.Info("Labeling image %dx%d", img.Width(), img.Height())
	if cmd.Centered {
		err = e.toolkit.DrawCenteredText(img, cmd.X, cmd.Y, cmd.Text, cmd.Size, textColor)
	} else {
		err = e.toolkit.DrawText(img, cmd.X, cmd.Y, cmd.Text, cmd.Size, textColor)
	}
	if err != nil {
		return err
	}
	return save(e, img, cmd.Output, cmd.Format)
}

// Run executes the binarize command.
func (cmd *BinarizeCmd) Run() error {
	e, err := cmd.setup()
	if err != nil {
		return err
	}

	e.log.Info("Binarizing %s", cmd.Input)
	bits, err := e.toolkit.LoadBinary(cmd.Input)
	if err != nil {
		return err
	}
	return save(e, fromBits(bits), cmd.Output, cmd.Format)
}

func fromBits(bits [][]bool) *colorimage.Image {
	img := colorimage.New(len(bits[0]), len(bits))
	for y, row := range bits {
		for x, on := range row {
			c := rgb.Black
			if on {
				c = rgb.White
			}
			img.SetColor(x, y, c)
		}
	}
	return img
}

func save(e *env, img *colorimage.Image, path, format string) error {
	if err := e.toolkit.Save(img, path, format); err != nil {
		e.log.Error("Failed to write output: %s", err.Error())
		return err
	}
	e.log.Info("Output saved to %s", path)
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("gridraster version %s", version))
	return nil
}
