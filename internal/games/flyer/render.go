package flyer

import (
	"fmt"

	"github.com/vovakirdan/tui-flyer/internal/core"
)

// Render projects the visible world window onto the terminal buffer.
// The window is one screen wide and high in world units, centered on the
// camera horizontally and on the world origin vertically.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 0 {
		return
	}

	snap := g.Snapshot()
	scaleX := float64(w) / g.cfg.World.ScreenW
	scaleY := float64(h) / g.cfg.World.ScreenH
	left := snap.CameraX - g.cfg.World.ScreenW/2.0

	toCellX := func(wx float64) int { return int((wx - left) * scaleX) }
	toCellY := func(wy float64) int { return int((g.cfg.World.ScreenH/2.0 - wy) * scaleY) }

	g.renderBackdrop(dst, snap, toCellX)
	g.renderBounds(dst, w, h)
	g.renderObstacles(dst, snap, toCellX, toCellY)
	g.renderFlyer(dst, snap, toCellX, toCellY)
	g.renderHUD(dst, snap)
}

// renderBackdrop marks tile seams with faint columns so horizontal motion
// reads even in empty stretches.
func (g *Game) renderBackdrop(dst *core.Screen, snap Snapshot, toCellX func(float64) int) {
	for _, t := range snap.Tiles {
		x := toCellX(t.X)
		if x < 0 || x >= dst.Width() {
			continue
		}
		for y := 1; y < dst.Height()-1; y += 3 {
			dst.SetCell(x, y, '·', core.ColorGray)
		}
	}
}

// renderBounds draws the lethal ceiling and floor as the top and bottom
// rows.
func (g *Game) renderBounds(dst *core.Screen, w, h int) {
	for x := 0; x < w; x++ {
		dst.SetCell(x, 0, '═', core.ColorGray)
		dst.SetCell(x, h-1, '═', core.ColorGray)
	}
}

func (g *Game) renderObstacles(dst *core.Screen, snap Snapshot, toCellX, toCellY func(float64) int) {
	halfW := g.cfg.Obstacles.Width / 2.0
	for _, o := range snap.Obstacles {
		x0 := toCellX(o.X - halfW)
		x1 := toCellX(o.X + halfW)
		if x1 < 0 || x0 >= dst.Width() {
			continue
		}
		if x1 == x0 {
			x1 = x0 + 1
		}

		gapTop := toCellY(o.YMid + o.HalfGap)
		gapBottom := toCellY(o.YMid - o.HalfGap)

		dst.DrawRectColored(core.NewRect(x0, 0, x1-x0, gapTop), '█', core.ColorGreen)
		dst.DrawRectColored(core.NewRect(x0, gapBottom, x1-x0, dst.Height()-gapBottom), '█', core.ColorGreen)

		// Gate edge caps where the walls meet the opening.
		for x := x0; x < x1; x++ {
			dst.SetCell(x, gapTop, '▄', core.ColorBrightCyan)
			dst.SetCell(x, gapBottom-1, '▀', core.ColorBrightCyan)
		}
	}
}

func (g *Game) renderFlyer(dst *core.Screen, snap Snapshot, toCellX, toCellY func(float64) int) {
	x := toCellX(snap.FlyerX)
	y := toCellY(snap.FlyerY)

	glyph := '●'
	color := core.ColorBrightYellow
	if !snap.Alive {
		glyph = '✕'
		color = core.ColorRed
	}
	dst.SetCell(x, y, glyph, color)
	if snap.Alive {
		dst.SetCell(x+1, y, '▶', core.ColorYellow)
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" SCORE %d ", snap.Score), core.ColorBrightWhite)

	if snap.Paused {
		dst.DrawTextCentered(dst.Height()/2, "║ PAUSED ║")
	}
	if !snap.Alive {
		dst.DrawTextCentered(dst.Height()/2-1, "✕ CRASHED ✕")
	}
}
