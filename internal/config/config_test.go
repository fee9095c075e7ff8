package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	var cfg AsteroidsConfig
	if err := yaml.Unmarshal(defaultAsteroidsYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if want := DefaultAsteroidsConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded defaults drifted from DefaultAsteroidsConfig:\n got %+v\nwant %+v", cfg, want)
	}
}

func TestGetDefaultYAML(t *testing.T) {
	tests := []struct {
		mode string
		want bool
	}{
		{"asteroids", true},
		{"procroids", true},
		{"snake", false},
	}
	for _, tt := range tests {
		got := GetDefaultYAML(tt.mode)
		if (got != nil) != tt.want {
			t.Errorf("GetDefaultYAML(%q) present = %v, want %v", tt.mode, got != nil, tt.want)
		}
	}
}

func TestLoadAsteroidsCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  lives: 7\nproc:\n  max_asteroids: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAsteroids(path)
	if err != nil {
		t.Fatalf("LoadAsteroids: %v", err)
	}
	if cfg.Player.Lives != 7 || cfg.Proc.MaxAsteroids != 3 {
		t.Errorf("overrides not applied: lives %d max %d", cfg.Player.Lives, cfg.Proc.MaxAsteroids)
	}
	if cfg.Projectile.Speed != 200 {
		t.Errorf("unset keys should keep defaults, projectile speed = %v", cfg.Projectile.Speed)
	}
}

func TestLoadAsteroidsMissingCustomPath(t *testing.T) {
	if _, err := LoadAsteroids(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadAsteroidsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("player: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAsteroids(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyAsteroidsPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		lives   int
		level   float64
	}{
		{DifficultyEasy, true, 5, 0.0},
		{DifficultyNormal, true, 3, 0.3},
		{DifficultyHard, true, 2, 0.7},
		{DifficultyFixed, false, 3, 0.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultAsteroidsConfig()
			ApplyAsteroidsPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("enabled = %v, want %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Player.Lives != tt.lives {
				t.Errorf("lives = %d, want %d", cfg.Player.Lives, tt.lives)
			}
			if cfg.Difficulty.InitialLevel != tt.level {
				t.Errorf("initial level = %v, want %v", cfg.Difficulty.InitialLevel, tt.level)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard not parsed")
	}
	if ParsePreset("brutal") != "" {
		t.Error("unknown preset should be empty")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultAsteroidsConfig().Difficulty
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0 {
		t.Errorf("level at 0 = %v, want 0", got)
	}
	if got := d.Level(cfg.Progression.MaxAt*2, 0); got != 1 {
		t.Errorf("level past max = %v, want 1", got)
	}
	if got := d.SpeedScale(cfg.Progression.MaxAt, 0); got != 2 {
		t.Errorf("speed scale at max = %v, want 2", got)
	}
	if got := d.MinLive(4, cfg.Progression.MaxAt, 0); got != 8 {
		t.Errorf("min live at max = %d, want 8", got)
	}
	if got := d.MinLive(0, cfg.Progression.MaxAt, 0); got != 0 {
		t.Errorf("min live with base 0 = %d, want 0", got)
	}

	d.SetEnabled(false)
	d.SetInitialLevel(0.5)
	if got := d.Level(cfg.Progression.MaxAt, 0); got != 0.5 {
		t.Errorf("disabled level = %v, want 0.5", got)
	}
}
