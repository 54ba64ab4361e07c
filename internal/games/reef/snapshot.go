package reef

import "github.com/lostreef/lostreef/internal/core"

// BulletView is a read-only bullet projection for rendering and tests.
type BulletView struct {
	X, Y float64
	Dir  int
}

// EnemyView is a read-only enemy projection.
type EnemyView struct {
	X, Y    float64
	Size    float64
	Variant Variant
	Phase   int
	Color   core.Color
}

// PearlView is a read-only pearl projection.
type PearlView struct {
	X, Y  float64
	Size  float64
	Phase int
}

// PowerUpView is a read-only power-up projection.
type PowerUpView struct {
	X, Y  float64
	Size  float64
	Kind  PowerKind
	Phase int
}

// Snapshot is a flat, copyable view of the whole game for rendering
// and determinism checks. Two snapshots of identically seeded and
// identically driven games are equal.
type Snapshot struct {
	Tick       uint64
	State      string
	MenuCursor int

	Level       int
	TargetScore int
	Score       int
	Health      int

	PlayerX, PlayerY float64
	PlayerDir        int
	SpeedBoost       int
	Shield           int
	Invulnerable     int
	ShootCooldown    int

	Bullets  []BulletView
	Enemies  []EnemyView
	Pearls   []PearlView
	PowerUps []PowerUpView

	Banner string
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		State:      g.state,
		MenuCursor: g.menuCursor,
		Level:      g.level,
		Banner:     g.banner,
	}
	if g.level > 0 {
		s.TargetScore = TargetScore(g.level)
	}
	if g.player == nil {
		return s
	}

	p := g.player
	s.Score = p.Score
	s.Health = p.Health
	s.PlayerX, s.PlayerY = p.X, p.Y
	s.PlayerDir = p.Direction
	s.SpeedBoost = p.SpeedBoost
	s.Shield = p.Shield
	s.Invulnerable = p.Invulnerable
	s.ShootCooldown = p.ShootCooldown

	for _, b := range p.Bullets {
		dir := 1
		if b.VX < 0 {
			dir = -1
		}
		s.Bullets = append(s.Bullets, BulletView{X: b.X, Y: b.Y, Dir: dir})
	}
	for _, e := range g.enemies {
		s.Enemies = append(s.Enemies, EnemyView{
			X: e.X, Y: e.Y, Size: e.Size, Variant: e.Variant, Phase: e.Phase, Color: e.Color(),
		})
	}
	for _, p := range g.pearls {
		s.Pearls = append(s.Pearls, PearlView{X: p.X, Y: p.Y, Size: p.Size, Phase: p.Phase})
	}
	for _, p := range g.powerups {
		s.PowerUps = append(s.PowerUps, PowerUpView{X: p.X, Y: p.Y, Size: p.Size, Kind: p.Kind, Phase: p.Phase})
	}
	return s
}

// Hash folds the snapshot into a single value. Positions are quantized
// to thousandths so the hash is stable across identical runs.
func (s Snapshot) Hash() uint64 {
	h := uint64(1469598103934665603)
	mix := func(v uint64) {
		h ^= v
		h *= 1099511628211
	}
	q := func(f float64) uint64 {
		return uint64(int64(f * 1000))
	}

	for _, c := range s.State {
		mix(uint64(c))
	}
	mix(uint64(s.MenuCursor))
	mix(uint64(s.Level))
	mix(uint64(s.Score))
	mix(uint64(s.Health))
	mix(q(s.PlayerX))
	mix(q(s.PlayerY))
	mix(uint64(int64(s.PlayerDir)))
	mix(uint64(s.SpeedBoost))
	mix(uint64(s.Shield))
	mix(uint64(s.Invulnerable))
	mix(uint64(s.ShootCooldown))

	for _, b := range s.Bullets {
		mix(q(b.X))
		mix(q(b.Y))
	}
	for _, e := range s.Enemies {
		mix(q(e.X))
		mix(q(e.Y))
		mix(uint64(e.Variant))
	}
	for _, p := range s.Pearls {
		mix(q(p.X))
		mix(q(p.Y))
	}
	for _, p := range s.PowerUps {
		mix(q(p.X))
		mix(q(p.Y))
		mix(uint64(p.Kind))
	}
	return h
}
