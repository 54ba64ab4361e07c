package reef

import (
	"github.com/lostreef/lostreef/internal/config"
	"github.com/lostreef/lostreef/internal/core"
)

// Bullet is a bubble projectile fired by the player. It travels
// horizontally and pops on the first enemy it touches.
type Bullet struct {
	X, Y float64
	VX   float64 // Signed by firing direction
	dead bool
}

// Player is the player-controlled fish.
type Player struct {
	X, Y      float64
	Size      float64
	Speed     float64
	Health    int
	Score     int
	Direction int // 1 = facing right, -1 = facing left
	Bullets   []Bullet

	// Frame countdowns, floored at zero
	ShootCooldown int
	SpeedBoost    int
	Shield        int
	Invulnerable  int

	cfg config.ReefConfig
}

// NewPlayer creates a player at the center of the world.
func NewPlayer(cfg config.ReefConfig) *Player {
	return &Player{
		X:         cfg.World.Width / 2,
		Y:         cfg.World.Height / 2,
		Size:      cfg.Player.Size,
		Speed:     cfg.Player.Speed,
		Health:    cfg.Player.MaxHealth,
		Direction: 1,
		cfg:       cfg,
	}
}

// Update advances the player by one tick: movement from the active intents,
// firing, timer countdowns, and bullet advancement.
func (p *Player) Update(in core.InputFrame) {
	speed := p.Speed
	if p.SpeedBoost > 0 {
		speed *= p.cfg.Player.BoostMultiplier
	}

	// Each active intent applies its delta independently; opposite
	// directions cancel by net displacement.
	if in.Has(core.ActionLeft) {
		p.X -= speed
		p.Direction = -1
	}
	if in.Has(core.ActionRight) {
		p.X += speed
		p.Direction = 1
	}
	if in.Has(core.ActionUp) {
		p.Y -= speed
	}
	if in.Has(core.ActionDown) {
		p.Y += speed
	}

	p.X = core.ClampF(p.X, p.Size, p.cfg.World.Width-p.Size)
	p.Y = core.ClampF(p.Y, p.Size, p.cfg.World.Height-p.Size)

	if in.Has(core.ActionFire) && p.ShootCooldown <= 0 {
		p.shoot()
	}

	p.tickTimers()
	p.advanceBullets()
}

// shoot spawns a bullet in front of the fish and starts the cooldown.
func (p *Player) shoot() {
	p.Bullets = append(p.Bullets, Bullet{
		X:  p.X + p.Size*float64(p.Direction),
		Y:  p.Y,
		VX: p.cfg.Bullet.Speed * float64(p.Direction),
	})
	p.ShootCooldown = p.cfg.Player.ShootCooldown
}

func (p *Player) tickTimers() {
	if p.ShootCooldown > 0 {
		p.ShootCooldown--
	}
	if p.SpeedBoost > 0 {
		p.SpeedBoost--
	}
	if p.Shield > 0 {
		p.Shield--
	}
	if p.Invulnerable > 0 {
		p.Invulnerable--
	}
}

// advanceBullets moves bullets and drops the ones that left the world.
func (p *Player) advanceBullets() {
	live := p.Bullets[:0]
	for _, b := range p.Bullets {
		b.X += b.VX
		if b.X < 0 || b.X > p.cfg.World.Width {
			continue
		}
		live = append(live, b)
	}
	p.Bullets = live
}

// Box returns the player's collision box.
func (p *Player) Box() core.Box {
	return core.BoxAround(p.X, p.Y, p.Size)
}

// CanTakeDamage reports whether a hit would land. Callers must gate
// TakeDamage behind this check so one overlap window cannot damage twice.
func (p *Player) CanTakeDamage() bool {
	return p.Invulnerable <= 0 && p.Shield <= 0
}

// TakeDamage applies one hit. Returns false if the shield absorbed it;
// otherwise decrements health, opens the invulnerability window, and
// returns true.
func (p *Player) TakeDamage() bool {
	if p.Shield > 0 {
		return false
	}
	p.Health--
	p.Invulnerable = p.cfg.Player.Invulnerability
	return true
}

// ApplyPowerUp activates a power-up effect. Durations overwrite rather
// than stack: collecting a second power-up of the same kind restarts it.
func (p *Player) ApplyPowerUp(kind PowerKind) {
	switch kind {
	case PowerSpeed:
		p.SpeedBoost = p.cfg.PowerUp.Duration
	case PowerShield:
		p.Shield = p.cfg.PowerUp.Duration
	}
}
