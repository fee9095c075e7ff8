package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		World: WorldConfig{
			Width:  800,
			Height: 800,
		},
		Player: PlayerConfig{
			Radius:           10,
			ThrustForce:      100,
			RotationVelocity: 2.4,
			Lives:            3,
			InvulnerableMs:   2000,
			CoastOnRelease:   true,
		},
		Asteroids: AsteroidConfig{
			InitialCount:   9,
			MinLive:        4,
			Speed:          100,
			Spin:           10,
			SafeRadius:     120,
			InitialClasses: []string{"small", "medium", "large"},
			SplitFactor:    4,
			SplitVariance:  2.0,
			SplitSpeed:     60,
		},
		Projectile: ProjectileConfig{
			Radius:        5,
			Speed:         200,
			MaxLifetimeMs: 3000,
			CooldownMs:    150,
		},
		Scoring: ScoringConfig{
			Small:  100,
			Medium: 50,
			Large:  20,
		},
		Proc: ProcConfig{
			ListIntervalMs: 1000,
			KillIntervalMs: 500,
			KillQueue:      64,
			MaxAsteroids:   12,
			KillOnDestroy:  true,
		},
		Input: InputConfig{
			HoldWindowMs: 180,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				ExtraAsteroids:  4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "asteroids", "procroids":
		return defaultAsteroidsYAML
	default:
		return nil
	}
}
