package board

import (
	"strconv"

	"github.com/user/gridraster/pkg/colorimage"
	"github.com/user/gridraster/pkg/ports"
	"github.com/user/gridraster/pkg/rgb"
)

// Theme controls the geometry and colours of a rendered board.
type Theme struct {
	CellSize  int
	Margin    int
	ThinLine  int
	ThickLine int
	FontSize  int

	Title     string
	TitleSize int

	Background rgb.Color
	GridColor  rgb.Color
	DigitColor rgb.Color
	TitleColor rgb.Color
}

// DefaultTheme returns black-on-white settings.
func DefaultTheme() Theme {
	return Theme{
		CellSize:   48,
		Margin:     16,
		ThinLine:   1,
		ThickLine:  3,
		FontSize:   32,
		TitleSize:  20,
		Background: rgb.White,
		GridColor:  rgb.Black,
		DigitColor: rgb.Black,
		TitleColor: rgb.Black,
	}
}

// Renderer draws boards onto new images.
type Renderer struct {
	toolkit *colorimage.Toolkit
	sink    ports.DebugSink
	theme   Theme
	logger  ports.Logger
}

// NewRenderer creates a Renderer.
func NewRenderer(toolkit *colorimage.Toolkit, sink ports.DebugSink, theme Theme, logger ports.Logger) *Renderer {
	return &Renderer{
		toolkit: toolkit,
		sink:    sink,
		theme:   theme,
		logger:  logger.WithComponent("board"),
	}
}

// headerHeight is the band above the grid reserved for the title.
func (r *Renderer) headerHeight() int {
	if r.theme.Title == "" {
		return 0
	}
	return r.theme.TitleSize * 2
}

// gridSide is the side of the grid including the outer lines.
func (r *Renderer) gridSide() int {
	return Size*r.theme.CellSize + r.theme.ThickLine
}

// Dimensions returns the size of the images Render produces.
func (r *Renderer) Dimensions() (width, height int) {
	side := r.gridSide()
	return side + 2*r.theme.Margin, side + 2*r.theme.Margin + r.headerHeight()
}

// CellCenter returns the image coordinates of the centre of a cell.
func (r *Renderer) CellCenter(row, col int) (x, y int) {
	ox, oy := r.origin()
	half := r.theme.ThickLine / 2
	return ox + half + col*r.theme.CellSize + r.theme.CellSize/2,
		oy + half + row*r.theme.CellSize + r.theme.CellSize/2
}

func (r *Renderer) origin() (x, y int) {
	return r.theme.Margin, r.theme.Margin + r.headerHeight()
}

// Render draws the grid lines, the givens and the optional title.
func (r *Renderer) Render(b Board) (*colorimage.Image, error) {
	w, h := r.Dimensions()
	r.logger.Debug("Rendering %dx%d board", w, h)

	img := colorimage.NewFilled(w, h, r.theme.Background)
	r.drawLines(img)

	if r.sink.Enabled() {
		if err := r.sink.SaveImage("grid", img); err != nil {
			r.logger.Warn("Failed to save debug image: %s", err.Error())
		}
	}

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			v := b[row][col]
			if v == 0 {
				continue
			}
			x, y := r.CellCenter(row, col)
			if err := r.toolkit.DrawCenteredText(img, x, y, strconv.Itoa(v), r.theme.FontSize, r.theme.DigitColor); err != nil {
				return nil, err
			}
		}
	}

	if r.theme.Title != "" {
		if err := r.toolkit.DrawText(img, r.theme.Margin, r.theme.Margin/2, r.theme.Title, r.theme.TitleSize, r.theme.TitleColor); err != nil {
			return nil, err
		}
	}

	r.logger.Debug("Board rendered with %d digits", b.Givens())
	return img, nil
}

func (r *Renderer) drawLines(img *colorimage.Image) {
	ox, oy := r.origin()
	side := r.gridSide()
	for i := 0; i <= Size; i++ {
		thickness := r.theme.ThinLine
		if i%BoxSize == 0 {
			thickness = r.theme.ThickLine
		}
		// Lines are centred on the cell boundary within the thick-line gutter.
		offset := i*r.theme.CellSize + (r.theme.ThickLine-thickness)/2
		fillRect(img, ox+offset, oy, thickness, side, r.theme.GridColor)
		fillRect(img, ox, oy+offset, side, thickness, r.theme.GridColor)
	}
}

func fillRect(img *colorimage.Image, x, y, w, h int, c rgb.Color) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, img.Width()), min(y+h, img.Height())
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			img.SetColor(px, py, c)
		}
	}
}
