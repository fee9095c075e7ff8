// Package config provides YAML-based game configuration loading and
// difficulty management for procroids.
package config

// AsteroidsConfig contains all configuration for the asteroids game.
// Durations are integer milliseconds.
type AsteroidsConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Proc       ProcConfig       `yaml:"proc"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the simulated window in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Radius           float64 `yaml:"radius"`
	ThrustForce      float64 `yaml:"thrust_force"`
	RotationVelocity float64 `yaml:"rotation_velocity"` // radians per second
	Lives            int     `yaml:"lives"`
	InvulnerableMs   int     `yaml:"invulnerable_ms"`
	CoastOnRelease   bool    `yaml:"coast_on_release"`
}

// AsteroidConfig defines seeding, respawn and splitting.
type AsteroidConfig struct {
	InitialCount   int      `yaml:"initial_count"`
	MinLive        int      `yaml:"min_live"`
	Speed          float64  `yaml:"speed"`
	Spin           float64  `yaml:"spin"`
	SafeRadius     float64  `yaml:"safe_radius"`
	InitialClasses []string `yaml:"initial_classes"` // small, medium, large
	SplitFactor    int      `yaml:"split_factor"`
	SplitVariance  float64  `yaml:"split_variance"`
	SplitSpeed     float64  `yaml:"split_speed"`
}

// ProjectileConfig defines shots.
type ProjectileConfig struct {
	Radius        float64 `yaml:"radius"`
	Speed         float64 `yaml:"speed"`
	MaxLifetimeMs int     `yaml:"max_lifetime_ms"` // 0 = unlimited
	CooldownMs    int     `yaml:"cooldown_ms"`
}

// ScoringConfig defines points per asteroid class.
type ScoringConfig struct {
	Small  int `yaml:"small"`
	Medium int `yaml:"medium"`
	Large  int `yaml:"large"`
}

// ProcConfig defines the process monitor used by the procroids mode.
type ProcConfig struct {
	ListIntervalMs int  `yaml:"list_interval_ms"`
	KillIntervalMs int  `yaml:"kill_interval_ms"`
	KillQueue      int  `yaml:"kill_queue"`
	MaxAsteroids   int  `yaml:"max_asteroids"`
	KillOnDestroy  bool `yaml:"kill_on_destroy"`
}

// InputConfig defines how key presses become held actions.
type InputConfig struct {
	HoldWindowMs int `yaml:"hold_window_ms"` // release after this long without a repeat
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to asteroid speed at max difficulty
	ExtraAsteroids  int     `yaml:"extra_asteroids"`  // Added to min_live at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown names yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
