package sim

// PlayerTuning configures the player craft.
type PlayerTuning struct {
	Radius           float64
	ThrustForce      float64
	RotationVelocity float64
	Lives            int
	InvulnerableSecs float64
	// CoastOnRelease clears accumulated acceleration when thrust is released,
	// so the craft keeps its velocity instead of accelerating forever.
	CoastOnRelease bool
}

// AsteroidTuning configures seeding, respawning and splitting.
type AsteroidTuning struct {
	InitialCount   int
	MinLive        int
	Speed          float64 // max absolute velocity component
	Spin           float64 // max absolute rotation velocity
	SafeRadius     float64 // spawn exclusion radius around the player
	InitialClasses []SizeClass
	SplitFactor    int
	SplitVariance  float64
	SplitSpeed     float64
}

// ProjectileTuning configures fired projectiles.
type ProjectileTuning struct {
	Radius      float64
	Speed       float64
	MaxLifetime float64 // seconds, 0 means unlimited
	Cooldown    float64 // seconds between shots
}

// Scoring maps asteroid classes to points.
type Scoring struct {
	Small  int
	Medium int
	Large  int
}

// Points returns the score for destroying an asteroid of class c.
func (s Scoring) Points(c SizeClass) int {
	switch c {
	case Small:
		return s.Small
	case Medium:
		return s.Medium
	case Large:
		return s.Large
	default:
		return 0
	}
}

// Tuning bundles all simulation parameters.
type Tuning struct {
	Player     PlayerTuning
	Asteroid   AsteroidTuning
	Projectile ProjectileTuning
	Scoring    Scoring
}

// DefaultTuning returns the stock parameters.
func DefaultTuning() Tuning {
	return Tuning{
		Player: PlayerTuning{
			Radius:           10,
			ThrustForce:      100,
			RotationVelocity: 2.4,
			Lives:            3,
			InvulnerableSecs: 2,
			CoastOnRelease:   true,
		},
		Asteroid: AsteroidTuning{
			InitialCount:   9,
			MinLive:        4,
			Speed:          100,
			Spin:           10,
			SafeRadius:     120,
			InitialClasses: []SizeClass{Small, Medium, Large},
			SplitFactor:    4,
			SplitVariance:  2,
			SplitSpeed:     60,
		},
		Projectile: ProjectileTuning{
			Radius:      5,
			Speed:       200,
			MaxLifetime: 3,
			Cooldown:    0.15,
		},
		Scoring: Scoring{
			Small:  100,
			Medium: 50,
			Large:  20,
		},
	}
}
