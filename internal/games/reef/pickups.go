package reef

import (
	"math"

	"github.com/lostreef/lostreef/internal/core"
)

// Idle bob animation tuning for collectibles.
const (
	pearlBobRate    = 0.1
	pearlBobScale   = 0.3
	powerUpBobRate  = 0.15
	powerUpBobScale = 0.5
)

// Pearl is a score collectible. It bobs in place until collected.
type Pearl struct {
	X, Y  float64
	Size  float64
	Phase int
	dead  bool
}

// Update advances the bob animation one tick.
func (p *Pearl) Update() {
	p.Phase++
	p.Y += math.Sin(float64(p.Phase)*pearlBobRate) * pearlBobScale
}

// Box returns the pearl's collision box.
func (p *Pearl) Box() core.Box {
	return core.BoxAround(p.X, p.Y, p.Size)
}

// PowerKind identifies a power-up effect.
type PowerKind int

const (
	PowerSpeed  PowerKind = iota // Movement speed boost
	PowerShield                  // Absorbs hits without losing health
)

func (k PowerKind) String() string {
	switch k {
	case PowerSpeed:
		return "speed"
	case PowerShield:
		return "shield"
	default:
		return "unknown"
	}
}

// PowerUp is a timed-effect collectible.
type PowerUp struct {
	X, Y  float64
	Size  float64
	Kind  PowerKind
	Phase int
	dead  bool
}

// Update advances the bob animation one tick.
func (p *PowerUp) Update() {
	p.Phase++
	p.Y += math.Sin(float64(p.Phase)*powerUpBobRate) * powerUpBobScale
}

// Box returns the power-up's collision box.
func (p *PowerUp) Box() core.Box {
	return core.BoxAround(p.X, p.Y, p.Size)
}

// Color returns the display color tag for the kind.
func (p *PowerUp) Color() core.Color {
	if p.Kind == PowerShield {
		return core.ColorCyan
	}
	return core.ColorYellow
}
