// Package config provides configuration loading for board rendering.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/gridraster/pkg/board"
	"github.com/user/gridraster/pkg/ports"
	"github.com/user/gridraster/pkg/rgb"
)

// Config represents a board rendering configuration file.
type Config struct {
	// Layout
	CellSize  int `yaml:"cell_size"`
	Margin    int `yaml:"margin"`
	ThinLine  int `yaml:"thin_line"`
	ThickLine int `yaml:"thick_line"`

	// Text
	FontPath  string `yaml:"font_path"`
	FontSize  int    `yaml:"font_size"`
	Title     string `yaml:"title"`
	TitleSize int    `yaml:"title_size"`

	Theme ThemeConfig `yaml:"theme"`

	// Output
	Format string `yaml:"format"`
}

// ThemeConfig holds hex colours.
type ThemeConfig struct {
	BackgroundColor string `yaml:"background_color"`
	GridColor       string `yaml:"grid_color"`
	DigitColor      string `yaml:"digit_color"`
	TitleColor      string `yaml:"title_color"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		CellSize:  48,
		Margin:    16,
		ThinLine:  1,
		ThickLine: 3,

		FontSize:  32,
		TitleSize: 20,

		Theme: ThemeConfig{
			BackgroundColor: "#ffffff",
			GridColor:       "#000000",
			DigitColor:      "#000000",
			TitleColor:      "#000000",
		},

		Format: "png",
	}
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the
// file keep their default values.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// ParseColor parses a hex colour string.
func ParseColor(hex string) (rgb.Color, error) {
	return rgb.ParseHex(hex)
}

// ToTheme converts c to a board.Theme.
func (c Config) ToTheme() (board.Theme, error) {
	theme := board.Theme{
		CellSize:  c.CellSize,
		Margin:    c.Margin,
		ThinLine:  c.ThinLine,
		ThickLine: c.ThickLine,
		FontSize:  c.FontSize,
		Title:     c.Title,
		TitleSize: c.TitleSize,
	}

	colors := []struct {
		name string
		hex  string
		dst  *rgb.Color
	}{
		{"background_color", c.Theme.BackgroundColor, &theme.Background},
		{"grid_color", c.Theme.GridColor, &theme.GridColor},
		{"digit_color", c.Theme.DigitColor, &theme.DigitColor},
		{"title_color", c.Theme.TitleColor, &theme.TitleColor},
	}
	for _, col := range colors {
		v, err := ParseColor(col.hex)
		if err != nil {
			return board.Theme{}, fmt.Errorf("theme.%s: %w", col.name, err)
		}
		*col.dst = v
	}

	if err := validate(theme); err != nil {
		return board.Theme{}, err
	}
	return theme, nil
}

func validate(t board.Theme) error {
	switch {
	case t.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive", ports.ErrInvalidArgument)
	case t.Margin < 0:
		return fmt.Errorf("%w: margin must not be negative", ports.ErrInvalidArgument)
	case t.ThinLine <= 0 || t.ThickLine < t.ThinLine:
		return fmt.Errorf("%w: need 0 < thin_line <= thick_line", ports.ErrInvalidArgument)
	case t.ThickLine >= t.CellSize:
		return fmt.Errorf("%w: thick_line must be smaller than cell_size", ports.ErrInvalidArgument)
	case t.FontSize <= 0:
		return fmt.Errorf("%w: font_size must be positive", ports.ErrInvalidArgument)
	case t.Title != "" && t.TitleSize <= 0:
		return fmt.Errorf("%w: title_size must be positive", ports.ErrInvalidArgument)
	}
	return nil
}
