// Package config provides the simulator settings: window, maze construction,
// zoomed map behaviour and generation options. Settings are read from a YAML
// file on top of built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"chosenoffset.com/mazesim/internal/render/mazeview"
	"chosenoffset.com/mazesim/internal/world/mazegen"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all simulator settings
type Config struct {
	Window   WindowConfig      `mapstructure:"window" yaml:"window"`
	Maze     MazeConfig        `mapstructure:"maze" yaml:"maze"`
	Zoomed   ZoomedConfig      `mapstructure:"zoomed_map" yaml:"zoomed_map"`
	Agent    AgentConfig       `mapstructure:"agent" yaml:"agent"`
	Generate mazegen.Options   `mapstructure:"generate" yaml:"generate"`
	Geometry mazeview.Geometry `mapstructure:"geometry" yaml:"geometry"`
}

// WindowConfig defines the initial window and the layout border
type WindowConfig struct {
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
	Border int    `mapstructure:"border" yaml:"border"` // pixels around and between the two maps
	Title  string `mapstructure:"title" yaml:"title"`
}

// MazeConfig defines the maze dimensions in cells
type MazeConfig struct {
	Width  int   `mapstructure:"width" yaml:"width"`
	Height int   `mapstructure:"height" yaml:"height"`
	Seed   int64 `mapstructure:"seed" yaml:"seed"` // 0 = random
}

// ZoomedConfig defines the follow map
type ZoomedConfig struct {
	ScreenPixelsPerMeter float64 `mapstructure:"screen_pixels_per_meter" yaml:"screen_pixels_per_meter"`
	Scale                float64 `mapstructure:"scale" yaml:"scale"`
	MinScale             float64 `mapstructure:"min_scale" yaml:"min_scale"`
	MaxScale             float64 `mapstructure:"max_scale" yaml:"max_scale"`
	ScaleStep            float64 `mapstructure:"scale_step" yaml:"scale_step"` // multiplier per key press
	RotateWithAgent      bool    `mapstructure:"rotate_with_agent" yaml:"rotate_with_agent"`
}

// AgentConfig defines the manual drive speeds
type AgentConfig struct {
	StartX      int     `mapstructure:"start_x" yaml:"start_x"` // starting cell
	StartY      int     `mapstructure:"start_y" yaml:"start_y"`
	Speed       float64 `mapstructure:"speed" yaml:"speed"`               // meters per second
	TurnRate    float64 `mapstructure:"turn_rate" yaml:"turn_rate"`       // degrees per second
	HeadingDegs float64 `mapstructure:"heading_deg" yaml:"heading_deg"` // initial heading
}

// DefaultConfig returns a classic 16x16 micromouse maze
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Border: 10,
			Title:  "mazesim",
		},
		Maze: MazeConfig{
			Width:  16,
			Height: 16,
		},
		Zoomed: ZoomedConfig{
			ScreenPixelsPerMeter: 2000,
			Scale:                0.25,
			MinScale:             0.05,
			MaxScale:             2,
			ScaleStep:            1.05,
			RotateWithAgent:      false,
		},
		Agent: AgentConfig{
			Speed:       0.5,
			TurnRate:    180,
			HeadingDegs: 90,
		},
		Generate: mazegen.Options{
			OpenCenter: true,
		},
		Geometry: mazeview.Geometry{
			WallLength: 0.168,
			WallWidth:  0.012,
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType(configType(path))
	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	// Keys absent from the file keep their default values.
	if err := vp.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	default:
		return "yaml"
	}
}

// Validate checks every value the transforms and the generator divide by
// or index with.
func (c *Config) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	check(c.Window.Border >= 0, "window border %d must not be negative", c.Window.Border)
	check(c.Maze.Width > 0 && c.Maze.Height > 0, "maze size %dx%d must be positive", c.Maze.Width, c.Maze.Height)
	check(c.Geometry.WallLength > 0, "wall length %g must be positive", c.Geometry.WallLength)
	check(c.Geometry.WallWidth >= 0, "wall width %g must not be negative", c.Geometry.WallWidth)
	check(c.Zoomed.ScreenPixelsPerMeter > 0, "screen pixels per meter %g must be positive", c.Zoomed.ScreenPixelsPerMeter)
	check(c.Zoomed.MinScale > 0 && c.Zoomed.MinScale <= c.Zoomed.MaxScale,
		"zoom range [%g, %g] is invalid", c.Zoomed.MinScale, c.Zoomed.MaxScale)
	check(c.Zoomed.Scale >= c.Zoomed.MinScale && c.Zoomed.Scale <= c.Zoomed.MaxScale,
		"zoom scale %g is outside [%g, %g]", c.Zoomed.Scale, c.Zoomed.MinScale, c.Zoomed.MaxScale)
	check(c.Zoomed.ScaleStep > 1, "zoom step %g must be greater than 1", c.Zoomed.ScaleStep)
	check(c.Generate.Braiding >= 0 && c.Generate.Braiding <= 1, "braiding %g must be within [0, 1]", c.Generate.Braiding)
	check(c.Generate.StartX >= 0 && c.Generate.StartX < c.Maze.Width &&
		c.Generate.StartY >= 0 && c.Generate.StartY < c.Maze.Height,
		"generation start (%d, %d) is outside the maze", c.Generate.StartX, c.Generate.StartY)
	check(c.Agent.StartX >= 0 && c.Agent.StartX < c.Maze.Width &&
		c.Agent.StartY >= 0 && c.Agent.StartY < c.Maze.Height,
		"agent start (%d, %d) is outside the maze", c.Agent.StartX, c.Agent.StartY)
	check(c.Agent.Speed >= 0 && c.Agent.TurnRate >= 0, "agent speeds must not be negative")

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Marshal renders the config as YAML, suitable as a starting config file.
func (c *Config) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return out, nil
}
