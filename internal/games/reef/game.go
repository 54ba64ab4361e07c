// Package reef implements Lost Reef, a single-player arcade survival
// game. The player fish swims a 2D ocean, pops enemies with bubble
// shots, collects pearls, and climbs an endless level ladder.
package reef

import (
	"github.com/lostreef/lostreef/internal/config"
	"github.com/lostreef/lostreef/internal/core"
	"github.com/lostreef/lostreef/internal/registry"
)

const (
	StateMenu         = "menu"
	StatePlaying      = "playing"
	StateInstructions = "instructions"
	StateGameOver     = "gameover"
)

var menuOptions = []string{"PLAY", "INSTRUCTIONS", "QUIT"}

var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
)

// SetConfigPath overrides the config search path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects the difficulty applied on the next Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game holds one session of Lost Reef, from menu through play to game
// over and back. All simulation is deterministic given the seed and
// the input sequence.
type Game struct {
	state      string
	menuCursor int

	cfg     config.ReefConfig
	runtime core.RuntimeConfig
	spawner *Spawner

	player   *Player
	enemies  []*Enemy
	pearls   []*Pearl
	powerups []*PowerUp
	level    int

	banner     string
	bannerLeft int

	tick uint64
}

// New creates an uninitialized game; call Reset before stepping.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("reef", func() registry.Game {
		return New()
	})
}

func (g *Game) ID() string    { return "reef" }
func (g *Game) Title() string { return "Lost Reef" }

// Reset loads configuration and returns the game to the menu. The seed
// in the runtime config drives all spawning for the session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadReef(configPath)
	if err != nil {
		cfg = config.DefaultReefConfig()
	}
	config.ApplyReefPreset(&cfg, difficultyPreset)

	g.cfg = cfg
	g.runtime = rc
	g.spawner = NewSpawner(rc.Seed, cfg)
	g.state = StateMenu
	g.menuCursor = 0
	g.player = nil
	g.enemies = nil
	g.pearls = nil
	g.powerups = nil
	g.level = 0
	g.banner = ""
	g.bannerLeft = 0
	g.tick = 0
}

// startSession builds a fresh world and enters play.
func (g *Game) startSession() {
	g.player = NewPlayer(g.cfg)
	g.level = 1
	g.enemies = g.spawner.CreateEnemies(g.level)
	g.pearls = g.spawner.CreatePearls(PearlsForLevel(g.level))
	g.powerups = nil
	g.banner = ""
	g.bannerLeft = 0
	g.state = StatePlaying
}

// Step advances the game one tick under the given input frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch g.state {
	case StateMenu:
		if quit := g.stepMenu(in); quit {
			return core.StepResult{State: g.State(), Quit: true}
		}
	case StateInstructions:
		if in.Has(core.ActionBack) || in.Has(core.ActionFire) || in.Has(core.ActionConfirm) {
			g.state = StateMenu
		}
	case StateGameOver:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) || in.Has(core.ActionBack) {
			g.state = StateMenu
		}
	case StatePlaying:
		g.stepPlaying(in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepMenu(in core.InputFrame) (quit bool) {
	n := len(menuOptions)
	if in.Has(core.ActionUp) {
		g.menuCursor = (g.menuCursor - 1 + n) % n
	}
	if in.Has(core.ActionDown) {
		g.menuCursor = (g.menuCursor + 1) % n
	}
	if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
		switch g.menuCursor {
		case 0:
			g.startSession()
		case 1:
			g.state = StateInstructions
		case 2:
			return true
		}
	}
	return false
}

func (g *Game) stepPlaying(in core.InputFrame) {
	g.player.Update(in)
	for _, e := range g.enemies {
		e.Update(g.player.X, g.player.Y)
	}
	for _, p := range g.pearls {
		p.Update()
	}
	for _, p := range g.powerups {
		p.Update()
	}

	g.resolveCollisions()
	if g.state != StatePlaying {
		return
	}

	if pu := g.spawner.TrySpawnPowerUp(); pu != nil {
		g.powerups = append(g.powerups, pu)
	}

	if g.bannerLeft > 0 {
		g.bannerLeft--
		if g.bannerLeft == 0 {
			g.banner = ""
		}
	}

	if ShouldAdvance(g.player.Score, TargetScore(g.level), len(g.enemies)) {
		g.advanceLevel()
	}
}

// resolveCollisions runs the fixed per-tick collision pass: bullets
// against enemies, then the player against enemies, pearls, and
// power-ups, in that order.
func (g *Game) resolveCollisions() {
	// A bullet pops at most one enemy; a popped enemy absorbs at most
	// one bullet.
	for bi := range g.player.Bullets {
		b := &g.player.Bullets[bi]
		bbox := core.BoxAround(b.X, b.Y, g.cfg.Bullet.Size)
		for _, e := range g.enemies {
			if e.dead {
				continue
			}
			if bbox.Overlaps(e.Box()) {
				e.dead = true
				b.dead = true
				g.player.Score += EnemyPoints(g.cfg.Scoring, g.level)
				break
			}
		}
	}
	g.compactBullets()
	g.compactEnemies()

	// At most one damage event per tick, no matter how many enemies
	// overlap the player.
	pbox := g.player.Box()
	for _, e := range g.enemies {
		if !pbox.Overlaps(e.Box()) {
			continue
		}
		if g.player.CanTakeDamage() {
			if g.player.TakeDamage() && g.player.Health <= 0 {
				g.state = StateGameOver
			}
			break
		}
	}

	for _, p := range g.pearls {
		if pbox.Overlaps(p.Box()) {
			p.dead = true
			g.player.Score += PearlValue(g.cfg.Scoring, g.level)
		}
	}
	g.compactPearls()

	for _, p := range g.powerups {
		if pbox.Overlaps(p.Box()) {
			p.dead = true
			g.player.ApplyPowerUp(p.Kind)
		}
	}
	g.compactPowerUps()
}

func (g *Game) compactBullets() {
	live := g.player.Bullets[:0]
	for _, b := range g.player.Bullets {
		if !b.dead {
			live = append(live, b)
		}
	}
	g.player.Bullets = live
}

func (g *Game) compactEnemies() {
	live := g.enemies[:0]
	for _, e := range g.enemies {
		if !e.dead {
			live = append(live, e)
		}
	}
	g.enemies = live
}

func (g *Game) compactPearls() {
	live := g.pearls[:0]
	for _, p := range g.pearls {
		if !p.dead {
			live = append(live, p)
		}
	}
	g.pearls = live
}

func (g *Game) compactPowerUps() {
	live := g.powerups[:0]
	for _, p := range g.powerups {
		if !p.dead {
			live = append(live, p)
		}
	}
	g.powerups = live
}

// advanceLevel moves to the next level: enemies are replaced with a
// fresh population, new pearls join any leftovers, and milestone
// completions raise a banner.
func (g *Game) advanceLevel() {
	completed := g.level
	g.level++

	if IsMilestone(completed) {
		g.banner = MilestoneMessage(completed)
		g.bannerLeft = bannerTicks
	}

	g.enemies = g.spawner.CreateEnemies(g.level)
	g.pearls = append(g.pearls, g.spawner.CreatePearls(PearlsForLevel(g.level))...)
}

// State reports the externally visible game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Level:    g.level,
		GameOver: g.state == StateGameOver,
	}
	if g.player != nil {
		st.Score = g.player.Score
	}
	return st
}
