package reef

import (
	"math/rand"

	"github.com/lostreef/lostreef/internal/config"
	"github.com/lostreef/lostreef/internal/core"
)

// Spawner places new entities into the world. All randomness in the
// game flows through its seeded generator, so runs with the same seed
// and inputs produce identical worlds.
type Spawner struct {
	rng *rand.Rand
	cfg config.ReefConfig
}

// NewSpawner creates a spawner seeded for reproducible placement.
func NewSpawner(seed int64, cfg config.ReefConfig) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// EnemyCountForLevel returns how many enemies a level starts with.
func EnemyCountForLevel(level int) int {
	switch {
	case level <= 3:
		return 3
	case level <= 10:
		return 5
	case level <= 20:
		return 7
	default:
		return 8
	}
}

// AvailableVariants returns the species unlocked at a level. Early
// levels see only jellyfish; crabs join at 4 and sharks at 9.
func AvailableVariants(level int) []Variant {
	switch {
	case level <= 3:
		return []Variant{Jellyfish}
	case level <= 8:
		return []Variant{Jellyfish, Crab}
	default:
		return []Variant{Jellyfish, Crab, Shark}
	}
}

// pickVariant chooses a species from the available set. From level 8
// the draw is weighted, shifting toward sharks as levels climb.
func (s *Spawner) pickVariant(level int, avail []Variant) Variant {
	if level < 8 {
		return avail[s.rng.Intn(len(avail))]
	}
	var weights []int
	if level >= 15 {
		weights = []int{1, 2, 4}
	} else if len(avail) == 3 {
		weights = []int{2, 3, 2}
	} else {
		weights = []int{3, 4}
	}
	return avail[s.weightedIndex(weights)]
}

// weightedIndex draws an index with probability proportional to its weight.
func (s *Spawner) weightedIndex(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	r := s.rng.Intn(total)
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// CreateEnemies builds the starting population for a level. Positions
// are uniform within the world minus the spawn margin on every side;
// each enemy starts with a random facing.
func (s *Spawner) CreateEnemies(level int) []*Enemy {
	count := EnemyCountForLevel(level)
	avail := AvailableVariants(level)
	margin := s.cfg.Spawning.EnemyMargin

	enemies := make([]*Enemy, 0, count)
	for i := 0; i < count; i++ {
		v := s.pickVariant(level, avail)
		x := s.uniformIn(margin, s.cfg.World.Width-margin)
		y := s.uniformIn(margin, s.cfg.World.Height-margin)
		e := newEnemy(v, x, y, s.cfg)
		if s.rng.Intn(2) == 0 {
			e.Direction = -1
		}
		enemies = append(enemies, e)
	}
	return enemies
}

// PearlsForLevel returns how many pearls to scatter for a level.
func PearlsForLevel(level int) int {
	switch {
	case level <= 5:
		return 8
	case level <= 15:
		return 12
	default:
		return 15
	}
}

// CreatePearls scatters pearls with a minimum spacing between them.
// Placement retries a bounded number of times; crowded worlds may get
// fewer pearls than requested.
func (s *Spawner) CreatePearls(count int) []*Pearl {
	margin := s.cfg.Spawning.PickupMargin
	minDist := s.cfg.Spawning.PearlMinDistance

	pearls := make([]*Pearl, 0, count)
	attempts := 0
	budget := count * 3
	for len(pearls) < count && attempts < budget {
		attempts++
		x := s.uniformIn(margin, s.cfg.World.Width-margin)
		y := s.uniformIn(margin, s.cfg.World.Height-margin)
		crowded := false
		for _, p := range pearls {
			if core.Dist(x, y, p.X, p.Y) < minDist {
				crowded = true
				break
			}
		}
		if crowded {
			continue
		}
		pearls = append(pearls, &Pearl{X: x, Y: y, Size: s.cfg.Pearl.Size})
	}
	return pearls
}

// TrySpawnPowerUp rolls the per-tick power-up chance. Returns nil on
// most ticks; on a hit the kind is an even coin flip.
func (s *Spawner) TrySpawnPowerUp() *PowerUp {
	if s.rng.Intn(s.cfg.PowerUp.SpawnChance) != 0 {
		return nil
	}
	kind := PowerSpeed
	if s.rng.Intn(2) == 1 {
		kind = PowerShield
	}
	margin := s.cfg.Spawning.PickupMargin
	return &PowerUp{
		X:    s.uniformIn(margin, s.cfg.World.Width-margin),
		Y:    s.uniformIn(margin, s.cfg.World.Height-margin),
		Size: s.cfg.PowerUp.Size,
		Kind: kind,
	}
}

func (s *Spawner) uniformIn(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}
