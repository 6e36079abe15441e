// Package config loads the optional planform.yaml configuration file that
// carries the numeric drawing defaults. The loaded values are passed
// explicitly into the core; nothing in pkg reads configuration itself.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/planform/planform/pkg/drawing"
	"github.com/planform/planform/pkg/geometry"
)

type DrawingConfig struct {
	WallThickness        float64 `yaml:"wall_thickness"`
	RoomLabelHeight      float64 `yaml:"room_label_height"`
	FurnitureLabelHeight float64 `yaml:"furniture_label_height"`
	SillMark             float64 `yaml:"sill_mark"`
	TitleBlockX          float64 `yaml:"title_block_x"`
	TitleBlockY          float64 `yaml:"title_block_y"`
}

type Config struct {
	LogLevel  string        `yaml:"log_level"`
	Tolerance float64       `yaml:"tolerance"`
	Drawing   DrawingConfig `yaml:"drawing"`
}

// Default returns the built-in configuration.
func Default() *Config {
	opts := drawing.DefaultOptions()
	return &Config{
		LogLevel:  "info",
		Tolerance: geometry.Epsilon,
		Drawing: DrawingConfig{
			WallThickness:        opts.WallThickness,
			RoomLabelHeight:      opts.RoomLabelHeight,
			FurnitureLabelHeight: opts.FurnitureLabelHeight,
			SillMark:             opts.SillMark,
			TitleBlockX:          opts.TitleBlockOrigin.X,
			TitleBlockY:          opts.TitleBlockOrigin.Y,
		},
	}
}

// Load reads a YAML config file on top of the defaults. A missing path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DrawingOptions converts the config into the explicit options the drawing
// generator takes.
func (c *Config) DrawingOptions() drawing.Options {
	return drawing.Options{
		WallThickness:        c.Drawing.WallThickness,
		Tolerance:            c.Tolerance,
		RoomLabelHeight:      c.Drawing.RoomLabelHeight,
		FurnitureLabelHeight: c.Drawing.FurnitureLabelHeight,
		SillMark:             c.Drawing.SillMark,
		TitleBlockOrigin:     geometry.Point{X: c.Drawing.TitleBlockX, Y: c.Drawing.TitleBlockY},
	}
}
