package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/milk9111/pixeltiles/grid"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Config is the editor layout and presentation settings.
type Config struct {
	Title       string `yaml:"title"`
	PanelPixels int    `yaml:"panel_pixels"`
	GridPixels  int    `yaml:"grid_pixels"`
	GridColor   string `yaml:"grid_color"`
	LabelSize   int    `yaml:"label_size"`
	Margin      int    `yaml:"margin"`
}

// Default returns the embedded configuration.
func Default() Config {
	cfg, err := parse(defaultYAML)
	if err != nil {
		panic("config: embedded default.yaml: " + err.Error())
	}
	return cfg
}

// Load reads path from disk and layers it over the embedded defaults.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the editor cannot draw with. A panel size that is
// not a multiple of the tile count only misaligns the grid, so it is logged
// and allowed.
func (c Config) Validate() error {
	if c.PanelPixels < grid.PanelTiles {
		return fmt.Errorf("panel_pixels must be at least %d, got %d", grid.PanelTiles, c.PanelPixels)
	}
	if c.GridPixels < 0 {
		return fmt.Errorf("grid_pixels must not be negative, got %d", c.GridPixels)
	}
	if c.LabelSize <= 0 {
		return fmt.Errorf("label_size must be positive, got %d", c.LabelSize)
	}
	if c.Margin < 0 {
		return fmt.Errorf("margin must not be negative, got %d", c.Margin)
	}
	if geom, _ := grid.NewGeometry(c.PanelPixels); !geom.Aligned() {
		log.Printf("config: panel_pixels %d is not divisible by %d; tiles will not align", c.PanelPixels, grid.PanelTiles)
	}
	return nil
}

// WithPresentation returns c with the settings from n that can change while
// the editor runs. The panel size and margin stay fixed.
func (c Config) WithPresentation(n Config) Config {
	c.Title = n.Title
	c.GridPixels = n.GridPixels
	c.GridColor = n.GridColor
	c.LabelSize = n.LabelSize
	return c
}

// GridRGBA returns the grid line color, falling back to #dddddd.
func (c Config) GridRGBA() color.RGBA {
	return parseHexColor(c.GridColor)
}

// parseHexColor parses "#rrggbb" or "#rgb".
func parseHexColor(s string) color.RGBA {
	fallback := color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
	if len(s) == 0 || s[0] != '#' {
		return fallback
	}
	var r, g, b uint32
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
			return fallback
		}
	case 4:
		if _, err := fmt.Sscanf(s[1:], "%1x%1x%1x", &r, &g, &b); err != nil {
			return fallback
		}
		r, g, b = r*0x11, g*0x11, b*0x11
	default:
		return fallback
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}
