package config

import (
	_ "embed"
)

//go:embed defaults/reef.yaml
var defaultReefYAML []byte

// DefaultReefConfig returns the default reef configuration. Values mirror
// defaults/reef.yaml and serve as the last-resort fallback if the embedded
// YAML cannot be parsed.
func DefaultReefConfig() ReefConfig {
	return ReefConfig{
		World: WorldConfig{
			Width:  1000,
			Height: 700,
		},
		Player: PlayerConfig{
			Size:            30,
			Speed:           5,
			MaxHealth:       3,
			ShootCooldown:   15,
			Invulnerability: 120,
			BoostMultiplier: 1.5,
		},
		Bullet: BulletConfig{
			Size:  8,
			Speed: 8,
		},
		Enemies: EnemyConfig{
			Size:           25,
			SharkSize:      35,
			JellyfishSpeed: 1,
			CrabSpeed:      2,
			SharkSpeed:     3,
		},
		Pearl: PearlConfig{
			Size: 15,
		},
		PowerUp: PowerUpConfig{
			Size:        20,
			Duration:    300, // 5 seconds
			SpawnChance: 300, // 1-in-300 per frame
		},
		Scoring: ScoringConfig{
			EnemyPoints:         75,
			EnemyPointsPerLevel: 5,
			PearlPoints:         25,
			PearlPointsPerLevel: 2,
		},
		Spawning: SpawningConfig{
			EnemyMargin:      100,
			PickupMargin:     50,
			PearlMinDistance: 40,
		},
	}
}
