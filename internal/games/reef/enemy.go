package reef

import (
	"math"

	"github.com/lostreef/lostreef/internal/config"
	"github.com/lostreef/lostreef/internal/core"
)

// Variant identifies an enemy species. Each species has its own
// movement pattern and speed.
type Variant int

const (
	Jellyfish Variant = iota // Slow vertical drifter
	Crab                     // Horizontal patroller
	Shark                    // Active pursuer
)

func (v Variant) String() string {
	switch v {
	case Jellyfish:
		return "jellyfish"
	case Crab:
		return "crab"
	case Shark:
		return "shark"
	default:
		return "unknown"
	}
}

// Movement pattern tuning. The phase counter drives both animation and
// periodic behavior changes.
const (
	jellyfishBobRate  = 0.05
	jellyfishBobScale = 0.5
	jellyfishDrift    = 0.5
	crabTurnPeriod    = 120
)

// Enemy is a hostile creature. All variants share the struct; behavior
// dispatches on Variant.
type Enemy struct {
	X, Y      float64
	Size      float64
	Variant   Variant
	Speed     float64
	Direction float64 // ±1, horizontal patrol heading
	Phase     int
	dead      bool

	worldW, worldH float64
}

func newEnemy(v Variant, x, y float64, cfg config.ReefConfig) *Enemy {
	e := &Enemy{
		X:         x,
		Y:         y,
		Variant:   v,
		Direction: 1,
		worldW:    cfg.World.Width,
		worldH:    cfg.World.Height,
	}
	switch v {
	case Jellyfish:
		e.Size = cfg.Enemies.Size
		e.Speed = cfg.Enemies.JellyfishSpeed
	case Crab:
		e.Size = cfg.Enemies.Size
		e.Speed = cfg.Enemies.CrabSpeed
	case Shark:
		e.Size = cfg.Enemies.SharkSize
		e.Speed = cfg.Enemies.SharkSpeed
	}
	return e
}

// Update advances the enemy one tick. Sharks steer toward the player
// position; the other variants ignore it.
func (e *Enemy) Update(playerX, playerY float64) {
	e.Phase++

	switch e.Variant {
	case Jellyfish:
		e.Y += math.Sin(float64(e.Phase)*jellyfishBobRate) * jellyfishBobScale
		e.X += e.Direction * jellyfishDrift
	case Crab:
		e.X += e.Direction * e.Speed
		if e.Phase%crabTurnPeriod == 0 {
			e.Direction = -e.Direction
		}
	case Shark:
		dx := playerX - e.X
		dy := playerY - e.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist > 0 {
			e.X += dx / dist * e.Speed
			e.Y += dy / dist * e.Speed
		}
	}

	e.X = core.ClampF(e.X, e.Size, e.worldW-e.Size)
	e.Y = core.ClampF(e.Y, e.Size, e.worldH-e.Size)
}

// Box returns the enemy's collision box.
func (e *Enemy) Box() core.Box {
	return core.BoxAround(e.X, e.Y, e.Size)
}

// Color returns the display color tag for the variant.
func (e *Enemy) Color() core.Color {
	switch e.Variant {
	case Jellyfish:
		return core.ColorMagenta
	case Crab:
		return core.ColorRed
	case Shark:
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}
