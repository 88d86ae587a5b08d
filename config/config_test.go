package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/gridsnake/component"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with empty path: %v", err)
	}
	if cfg.Arena.Width != 10 || cfg.Arena.Height != 10 {
		t.Errorf("default arena %dx%d, want 10x10", cfg.Arena.Width, cfg.Arena.Height)
	}
	if cfg.Timing.MoveInterval != 150*time.Millisecond {
		t.Errorf("default move_interval = %v", cfg.Timing.MoveInterval)
	}
	if cfg.Timing.FoodInterval != 1000*time.Millisecond {
		t.Errorf("default food_interval = %v", cfg.Timing.FoodInterval)
	}
	if dir, err := cfg.SpawnDirection(); err != nil || dir != component.DirUp {
		t.Errorf("default spawn direction = %v %v", dir, err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridsnake.toml")
	content := `
[arena]
width = 16
height = 12

[timing]
move_interval = "100ms"
food_interval = "2s"

[spawn]
head_x = 8
head_y = 6
direction = "right"

[logging]
level = "debug"
file = ""
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Arena.Width != 16 || cfg.Arena.Height != 12 {
		t.Errorf("arena %dx%d, want 16x12", cfg.Arena.Width, cfg.Arena.Height)
	}
	if cfg.Timing.MoveInterval != 100*time.Millisecond {
		t.Errorf("move_interval = %v, want 100ms", cfg.Timing.MoveInterval)
	}
	if cfg.Timing.FoodInterval != 2*time.Second {
		t.Errorf("food_interval = %v, want 2s", cfg.Timing.FoodInterval)
	}

	res := cfg.Resource()
	if res.SpawnHead.X != 8 || res.SpawnHead.Y != 6 {
		t.Errorf("spawn head %v, want (8,6)", res.SpawnHead)
	}
	if res.SpawnDirection != component.DirRight {
		t.Errorf("spawn direction = %v, want right", res.SpawnDirection)
	}
}

// Partial files keep defaults for sections they omit.
func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	content := `
[arena]
width = 20
height = 20
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Arena.Width != 20 {
		t.Errorf("arena width = %d, want 20", cfg.Arena.Width)
	}
	if cfg.Timing.MoveInterval != 150*time.Millisecond {
		t.Errorf("move_interval = %v, want the 150ms default", cfg.Timing.MoveInterval)
	}
	if cfg.Spawn.Direction != "up" {
		t.Errorf("spawn direction = %q, want the up default", cfg.Spawn.Direction)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny arena", func(c *Config) { c.Arena.Width = 1 }},
		{"zero move interval", func(c *Config) { c.Timing.MoveInterval = 0 }},
		{"negative food interval", func(c *Config) { c.Timing.FoodInterval = -time.Second }},
		{"spawn outside arena", func(c *Config) { c.Spawn.HeadX = 10 }},
		{"bad direction", func(c *Config) { c.Spawn.Direction = "sideways" }},
	}
	for _, c := range cases {
		cfg := defaults()
		c.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate accepted invalid config", c.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/gridsnake.toml"); err == nil {
		t.Error("Load of missing file did not fail")
	}
}
