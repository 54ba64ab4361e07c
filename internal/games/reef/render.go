package reef

import (
	"fmt"
	"unicode/utf8"

	"github.com/lostreef/lostreef/internal/core"
)

// Rows reserved around the playfield: two for the HUD on top, one for
// the progress line at the bottom.
const (
	hudRows      = 2
	progressRows = 1
)

// Render draws the current screen for the active state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.state {
	case StateMenu:
		g.renderMenu(dst)
	case StateInstructions:
		g.renderInstructions(dst)
	case StatePlaying:
		g.renderPlaying(dst)
	case StateGameOver:
		g.renderGameOver(dst)
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	h := dst.Height()
	top := h/2 - 5

	dst.DrawTextCenteredColored(top, "L O S T   R E E F", core.ColorCyan)
	dst.DrawTextCenteredColored(top+1, "Adventures in the Lost Reef", core.ColorBlue)

	for i, opt := range menuOptions {
		y := top + 4 + i
		if i == g.menuCursor {
			dst.DrawTextCenteredColored(y, "> "+opt+" <", core.ColorYellow)
		} else {
			dst.DrawTextCentered(y, opt)
		}
	}

	dst.DrawTextCenteredColored(h-2, "Arrows/WS: select | Enter: confirm | Q: quit", core.ColorGray)
}

func (g *Game) renderInstructions(dst *core.Screen) {
	lines := []struct {
		text  string
		color core.Color
	}{
		{"HOW TO PLAY", core.ColorCyan},
		{"", core.ColorDefault},
		{"Arrows or WASD ... swim", core.ColorDefault},
		{"Space ............ shoot bubbles", core.ColorDefault},
		{"", core.ColorDefault},
		{"Pop jellyfish, crabs and sharks for points.", core.ColorDefault},
		{"Collect pearls, they are worth more each level.", core.ColorCoral},
		{"Grab power-ups: speed boost and bubble shield.", core.ColorYellow},
		{"", core.ColorDefault},
		{"Clear the score target or the whole reef", core.ColorDefault},
		{"to descend to the next level. Good luck!", core.ColorDefault},
		{"", core.ColorDefault},
		{"ESC: back to menu", core.ColorGray},
	}

	top := (dst.Height() - len(lines)) / 2
	if top < 0 {
		top = 0
	}
	for i, l := range lines {
		if l.text == "" {
			continue
		}
		dst.DrawTextCenteredColored(top+i, l.text, l.color)
	}
}

func (g *Game) renderPlaying(dst *core.Screen) {
	g.renderHUD(dst)
	g.renderWorld(dst)
	g.renderProgress(dst)

	if g.bannerLeft > 0 {
		g.renderBanner(dst)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	p := g.player

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", p.Score), core.ColorYellow)
	dst.DrawTextColored(16, 0, fmt.Sprintf("Level: %d", g.level), core.ColorCyan)

	dst.DrawText(28, 0, "Health:")
	for i := 0; i < p.Health; i++ {
		dst.SetColored(36+i*2, 0, '♥', core.ColorRed)
	}

	// Active effect badges on the right
	x := dst.Width() - 2
	if p.Shield > 0 {
		label := fmt.Sprintf("SHIELD %d", (p.Shield+59)/60)
		x -= len(label)
		dst.DrawTextColored(x, 0, label, core.ColorCyan)
		x -= 2
	}
	if p.SpeedBoost > 0 {
		label := fmt.Sprintf("SPEED %d", (p.SpeedBoost+59)/60)
		x -= len(label)
		dst.DrawTextColored(x, 0, label, core.ColorYellow)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderWorld projects world coordinates onto the playfield cells
// between the HUD and the progress line.
func (g *Game) renderWorld(dst *core.Screen) {
	w := dst.Width()
	h := dst.Height() - hudRows - progressRows
	if w <= 0 || h <= 0 {
		return
	}

	toCell := func(x, y float64) (int, int) {
		cx := int(x / g.cfg.World.Width * float64(w))
		cy := hudRows + int(y/g.cfg.World.Height*float64(h))
		return core.Clamp(cx, 0, w-1), core.Clamp(cy, hudRows, hudRows+h-1)
	}

	for _, p := range g.pearls {
		cx, cy := toCell(p.X, p.Y)
		dst.SetColored(cx, cy, '●', core.ColorCoral)
	}

	for _, p := range g.powerups {
		cx, cy := toCell(p.X, p.Y)
		glyph := '»'
		if p.Kind == PowerShield {
			glyph = '◊'
		}
		dst.SetColored(cx, cy, glyph, p.Color())
	}

	for _, e := range g.enemies {
		cx, cy := toCell(e.X, e.Y)
		var glyph rune
		switch e.Variant {
		case Jellyfish:
			glyph = 'Ψ'
		case Crab:
			glyph = 'Ж'
		case Shark:
			glyph = '◆'
		}
		dst.SetColored(cx, cy, glyph, e.Color())
	}

	for _, b := range g.player.Bullets {
		cx, cy := toCell(b.X, b.Y)
		dst.SetColored(cx, cy, '°', core.ColorCyan)
	}

	g.renderPlayerFish(dst, toCell)
}

func (g *Game) renderPlayerFish(dst *core.Screen, toCell func(float64, float64) (int, int)) {
	p := g.player

	// Hit invulnerability blinks the fish in five-tick windows
	if p.Invulnerable > 0 && (p.Invulnerable/5)%2 == 1 {
		return
	}

	color := core.ColorOrange
	if p.Shield > 0 {
		color = core.ColorCyan
	}

	fish := "><>"
	if p.Direction < 0 {
		fish = "<><"
	}
	cx, cy := toCell(p.X, p.Y)
	dst.DrawTextColored(cx-1, cy, fish, color)
}

func (g *Game) renderProgress(dst *core.Screen) {
	y := dst.Height() - 1
	target := TargetScore(g.level)
	remaining := PointsToNext(g.player.Score, target)

	var line string
	if remaining > 0 {
		line = fmt.Sprintf("Next level: %d points to go | Enemies: %d", remaining, len(g.enemies))
	} else {
		line = fmt.Sprintf("Clear the reef to advance! Enemies: %d", len(g.enemies))
	}
	// Early levels preview how much steeper the next target is
	if g.level <= 10 {
		line += fmt.Sprintf("  |  Next target: +%d", TargetScore(g.level+1)-target)
	}
	if zone := ZoneLabel(g.level); zone != "" {
		line += "  |  " + zone
	}
	dst.DrawTextColored(1, y, line, core.ColorGreen)
}

func (g *Game) renderBanner(dst *core.Screen) {
	y := dst.Height() / 2
	text := " " + g.banner + " "
	w := utf8.RuneCountInString(text) + 2
	x := (dst.Width() - w) / 2

	dst.DrawBoxOutline(x, y-1, w, 3)
	dst.DrawTextCenteredColored(y, text, core.ColorYellow)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	h := dst.Height()
	top := h/2 - 4

	score := 0
	if g.player != nil {
		score = g.player.Score
	}

	dst.DrawTextCenteredColored(top, "G A M E   O V E R", core.ColorRed)
	dst.DrawTextCentered(top+2, fmt.Sprintf("Final score: %d", score))
	dst.DrawTextCentered(top+3, fmt.Sprintf("Level reached: %d", g.level))
	dst.DrawTextCenteredColored(top+5, PerformanceMessage(score), core.ColorCyan)
	dst.DrawTextCenteredColored(top+7, "Enter: back to menu", core.ColorGray)
}
