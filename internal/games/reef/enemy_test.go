package reef

import (
	"math"
	"testing"

	"github.com/lostreef/lostreef/internal/config"
)

func TestJellyfishDrift(t *testing.T) {
	cfg := config.DefaultReefConfig()
	e := newEnemy(Jellyfish, 500, 350, cfg)

	e.Update(0, 0)

	if e.X != 500+jellyfishDrift {
		t.Errorf("X = %v, want %v", e.X, 500+jellyfishDrift)
	}
	wantY := 350 + math.Sin(1*jellyfishBobRate)*jellyfishBobScale
	if e.Y != wantY {
		t.Errorf("Y = %v, want %v", e.Y, wantY)
	}
}

func TestJellyfishIgnoresPlayer(t *testing.T) {
	cfg := config.DefaultReefConfig()
	a := newEnemy(Jellyfish, 500, 350, cfg)
	b := newEnemy(Jellyfish, 500, 350, cfg)

	a.Update(100, 100)
	b.Update(900, 600)

	if a.X != b.X || a.Y != b.Y {
		t.Error("jellyfish movement should not depend on the player position")
	}
}

func TestCrabPatrolReversal(t *testing.T) {
	cfg := config.DefaultReefConfig()
	e := newEnemy(Crab, 500, 350, cfg)

	for i := 0; i < crabTurnPeriod-1; i++ {
		e.Update(0, 0)
	}
	if e.Direction != 1 {
		t.Fatalf("Direction = %v before the turn period, want 1", e.Direction)
	}

	e.Update(0, 0)
	if e.Direction != -1 {
		t.Errorf("Direction = %v at the turn period, want -1", e.Direction)
	}
}

func TestCrabSpeed(t *testing.T) {
	cfg := config.DefaultReefConfig()
	e := newEnemy(Crab, 500, 350, cfg)

	e.Update(0, 0)

	if e.X != 500+cfg.Enemies.CrabSpeed {
		t.Errorf("X = %v, want %v", e.X, 500+cfg.Enemies.CrabSpeed)
	}
	if e.Y != 350 {
		t.Errorf("Y = %v, want unchanged", e.Y)
	}
}

func TestSharkPursuit(t *testing.T) {
	cfg := config.DefaultReefConfig()
	e := newEnemy(Shark, 200, 350, cfg)

	e.Update(800, 350)

	if e.X != 200+cfg.Enemies.SharkSpeed {
		t.Errorf("X = %v, want %v toward the player", e.X, 200+cfg.Enemies.SharkSpeed)
	}
	if e.Y != 350 {
		t.Errorf("Y = %v, want unchanged on a level approach", e.Y)
	}

	// Diagonal pursuit is normalized: per-tick displacement equals the
	// shark's speed.
	e2 := newEnemy(Shark, 200, 200, cfg)
	e2.Update(500, 500)
	dx := e2.X - 200
	dy := e2.Y - 200
	dist := math.Sqrt(dx*dx + dy*dy)
	if math.Abs(dist-cfg.Enemies.SharkSpeed) > 1e-9 {
		t.Errorf("displacement = %v, want %v", dist, cfg.Enemies.SharkSpeed)
	}
}

func TestSharkAtPlayerPositionStays(t *testing.T) {
	cfg := config.DefaultReefConfig()
	e := newEnemy(Shark, 400, 300, cfg)

	e.Update(400, 300)

	if e.X != 400 || e.Y != 300 {
		t.Errorf("position = (%v, %v), want unchanged at zero distance", e.X, e.Y)
	}
}

func TestEnemyClampedToWorld(t *testing.T) {
	cfg := config.DefaultReefConfig()
	e := newEnemy(Crab, cfg.World.Width-cfg.Enemies.Size, 350, cfg)

	for i := 0; i < 50; i++ {
		e.Update(0, 0)
		if e.X > cfg.World.Width-e.Size || e.X < e.Size {
			t.Fatalf("X = %v escaped the world bounds", e.X)
		}
	}
}

func TestEnemySizesAndSpeeds(t *testing.T) {
	cfg := config.DefaultReefConfig()

	j := newEnemy(Jellyfish, 0, 0, cfg)
	c := newEnemy(Crab, 0, 0, cfg)
	s := newEnemy(Shark, 0, 0, cfg)

	if j.Size != cfg.Enemies.Size || c.Size != cfg.Enemies.Size {
		t.Error("jellyfish and crab should use the standard enemy size")
	}
	if s.Size != cfg.Enemies.SharkSize {
		t.Errorf("shark size = %v, want %v", s.Size, cfg.Enemies.SharkSize)
	}
	if !(j.Speed < c.Speed && c.Speed < s.Speed) {
		t.Errorf("speeds %v/%v/%v should be strictly increasing", j.Speed, c.Speed, s.Speed)
	}
}
