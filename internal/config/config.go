// Package config provides YAML-based game configuration loading and
// difficulty presets for Lost Reef.
package config

// ReefConfig contains all tunable parameters of the reef game.
// World coordinates are logical pixels, timers are 60 FPS frames.
type ReefConfig struct {
	World    WorldConfig    `yaml:"world"`
	Player   PlayerConfig   `yaml:"player"`
	Bullet   BulletConfig   `yaml:"bullet"`
	Enemies  EnemyConfig    `yaml:"enemies"`
	Pearl    PearlConfig    `yaml:"pearl"`
	PowerUp  PowerUpConfig  `yaml:"powerup"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Spawning SpawningConfig `yaml:"spawning"`
}

// WorldConfig defines the logical simulation area.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player fish parameters.
type PlayerConfig struct {
	Size            float64 `yaml:"size"`
	Speed           float64 `yaml:"speed"`
	MaxHealth       int     `yaml:"max_health"`
	ShootCooldown   int     `yaml:"shoot_cooldown"`
	Invulnerability int     `yaml:"invulnerability"` // Frames after a hit
	BoostMultiplier float64 `yaml:"boost_multiplier"`
}

// BulletConfig defines bubble projectile parameters.
type BulletConfig struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
}

// EnemyConfig defines per-variant enemy parameters.
type EnemyConfig struct {
	Size           float64 `yaml:"size"`
	SharkSize      float64 `yaml:"shark_size"`
	JellyfishSpeed float64 `yaml:"jellyfish_speed"`
	CrabSpeed      float64 `yaml:"crab_speed"`
	SharkSpeed     float64 `yaml:"shark_speed"`
}

// PearlConfig defines collectible pearl parameters.
type PearlConfig struct {
	Size float64 `yaml:"size"`
}

// PowerUpConfig defines power-up parameters.
type PowerUpConfig struct {
	Size        float64 `yaml:"size"`
	Duration    int     `yaml:"duration"`     // Effect duration in frames
	SpawnChance int     `yaml:"spawn_chance"` // 1-in-N chance per frame
}

// ScoringConfig defines base point values. Effective values grow with the
// level: enemies give EnemyPoints + level*EnemyPointsPerLevel, pearls give
// PearlPoints + level*PearlPointsPerLevel.
type ScoringConfig struct {
	EnemyPoints         int `yaml:"enemy_points"`
	EnemyPointsPerLevel int `yaml:"enemy_points_per_level"`
	PearlPoints         int `yaml:"pearl_points"`
	PearlPointsPerLevel int `yaml:"pearl_points_per_level"`
}

// SpawningConfig defines placement margins and constraints.
type SpawningConfig struct {
	EnemyMargin      float64 `yaml:"enemy_margin"`       // Border kept clear of enemies
	PickupMargin     float64 `yaml:"pickup_margin"`      // Border kept clear of pearls/power-ups
	PearlMinDistance float64 `yaml:"pearl_min_distance"` // Spacing between pearls of a batch
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
