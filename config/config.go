package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/parameter"
)

type Config struct {
	Arena   ArenaConfig   `toml:"arena"`
	Timing  TimingConfig  `toml:"timing"`
	Spawn   SpawnConfig   `toml:"spawn"`
	Logging LoggingConfig `toml:"logging"`
}

type ArenaConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type TimingConfig struct {
	MoveInterval time.Duration `toml:"move_interval"`
	FoodInterval time.Duration `toml:"food_interval"`
}

type SpawnConfig struct {
	HeadX     int    `toml:"head_x"`
	HeadY     int    `toml:"head_y"`
	Direction string `toml:"direction"` // "up", "down", "left", "right"
}

type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Load reads the TOML file at path over the built-in defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:  parameter.ArenaWidth,
			Height: parameter.ArenaHeight,
		},
		Timing: TimingConfig{
			MoveInterval: parameter.MoveUpdateInterval,
			FoodInterval: parameter.FoodUpdateInterval,
		},
		Spawn: SpawnConfig{
			HeadX:     parameter.SpawnHeadX,
			HeadY:     parameter.SpawnHeadY,
			Direction: "up",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "gridsnake.log",
		},
	}
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Arena.Width < 2 || c.Arena.Height < 2 {
		return fmt.Errorf("arena %dx%d too small, need at least 2x2", c.Arena.Width, c.Arena.Height)
	}
	if c.Timing.MoveInterval <= 0 {
		return fmt.Errorf("move_interval must be positive, got %v", c.Timing.MoveInterval)
	}
	if c.Timing.FoodInterval <= 0 {
		return fmt.Errorf("food_interval must be positive, got %v", c.Timing.FoodInterval)
	}
	if c.Spawn.HeadX < 0 || c.Spawn.HeadX >= c.Arena.Width ||
		c.Spawn.HeadY < 0 || c.Spawn.HeadY >= c.Arena.Height {
		return fmt.Errorf("spawn cell (%d,%d) outside arena %dx%d",
			c.Spawn.HeadX, c.Spawn.HeadY, c.Arena.Width, c.Arena.Height)
	}
	if _, err := c.SpawnDirection(); err != nil {
		return err
	}
	return nil
}

// SpawnDirection parses the configured direction string.
func (c *Config) SpawnDirection() (component.Direction, error) {
	switch c.Spawn.Direction {
	case "up":
		return component.DirUp, nil
	case "down":
		return component.DirDown, nil
	case "left":
		return component.DirLeft, nil
	case "right":
		return component.DirRight, nil
	default:
		return 0, fmt.Errorf("unknown spawn direction %q", c.Spawn.Direction)
	}
}

// Resource converts the loaded config into the world resource form.
// Call only after Validate.
func (c *Config) Resource() *engine.ConfigResource {
	dir, err := c.SpawnDirection()
	if err != nil {
		dir = component.DirUp
	}
	return &engine.ConfigResource{
		ArenaWidth:     c.Arena.Width,
		ArenaHeight:    c.Arena.Height,
		SpawnHead:      component.PositionComponent{X: c.Spawn.HeadX, Y: c.Spawn.HeadY},
		SpawnDirection: dir,
	}
}
