package runner

import (
	"fmt"

	"github.com/vovakirdan/puku-runner/internal/assets"
	"github.com/vovakirdan/puku-runner/internal/core"
)

// Visual characters for rendering
const (
	GroundChar = '▀'
	hudRows    = 1 // Rows above the world reserved for the HUD
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.session.Phase {
	case PhaseStart:
		g.drawTitleCard(dst)
		return
	case PhaseGameOver:
		g.drawEndingCard(dst)
		return
	}

	vp := g.viewport(dst)

	g.drawBackground(dst, vp)

	groundRow := hudRows + vp.CellY(g.cfg.World.Ground)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGreen)

	for _, a := range g.lifecycle.Airplanes() {
		g.drawEntity(dst, vp, a)
	}
	for _, o := range g.lifecycle.Obstacles() {
		g.drawEntity(dst, vp, o)
	}
	for _, c := range g.lifecycle.Coins() {
		g.drawEntity(dst, vp, c)
	}

	c := g.character
	sp := g.characterSprite()
	drawSprite(dst, g.cell(vp, core.NewRectF(c.X, c.Y, sp.Width, c.Height())), sp)

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// viewport maps the world onto the rows below the HUD.
func (g *Game) viewport(dst *core.Screen) core.Viewport {
	return core.Viewport{
		WorldW:  g.cfg.World.Width,
		WorldH:  g.cfg.World.Height,
		ScreenW: dst.Width(),
		ScreenH: core.Max(dst.Height()-hudRows, 1),
	}
}

// cell converts a world box to screen cells below the HUD.
func (g *Game) cell(vp core.Viewport, r core.RectF) core.Rect {
	box := vp.Cells(r)
	box.Y += hudRows
	return box
}

// characterSprite selects the frame for the character's pose.
func (g *Game) characterSprite() assets.Sprite {
	sprites := g.sheet.Character
	switch g.character.Pose() {
	case PoseJumping:
		return sprites.Jump
	case PoseDucking:
		return sprites.Duck
	default:
		return sprites.Run[g.character.RunFrame%len(sprites.Run)]
	}
}

// drawEntity draws a scenery entity with its sheet sprite.
func (g *Game) drawEntity(dst *core.Screen, vp core.Viewport, e Entity) {
	drawSprite(dst, g.cell(vp, e.Bounds()), e.Sprite(g.sheet))
}

// drawSprite draws sprite art centered horizontally and resting on the bottom of box.
// Spaces in the art are transparent.
func drawSprite(dst *core.Screen, box core.Rect, sp assets.Sprite) {
	aw, ah := sp.ArtSize()
	x0 := box.X + (box.W-aw)/2
	y0 := box.Bottom() - ah
	tint := sp.Tint()

	for dy, row := range sp.Art {
		dx := 0
		for _, r := range row {
			if r != ' ' {
				dst.SetColored(x0+dx, y0+dy, r, tint)
			}
			dx++
		}
	}
}

// drawBackground tiles the background art across both scroll copies, resting on the ground.
func (g *Game) drawBackground(dst *core.Screen, vp core.Viewport) {
	sp := g.sheet.Background
	_, ah := sp.ArtSize()
	base := hudRows + vp.CellY(g.cfg.World.Ground) - ah
	tint := sp.Tint()

	for _, left := range g.bg.Copies() {
		x0 := vp.CellX(left)
		span := vp.CellX(left+g.bg.Width) - x0
		for dy, line := range sp.Art {
			row := []rune(line)
			if len(row) == 0 {
				continue
			}
			for dx := 0; dx < span; dx++ {
				r := row[dx%len(row)]
				if r != ' ' {
					dst.SetColored(x0+dx, base+dy, r, tint)
				}
			}
		}
	}
}

// drawHUD renders the score line.
func (g *Game) drawHUD(dst *core.Screen) {
	s := g.session
	labels := g.cfg.Labels

	left := fmt.Sprintf(" Score: %d  %s: %d  %s: %d ", s.Score, labels.Ordinary, s.Ordinary, labels.Premium, s.Premium)
	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf(" Best: %d ", core.Max(s.Best, s.Score))
	if goal := g.cfg.Goal; goal.Enabled() {
		right = fmt.Sprintf(" Goal %d/%d %d/%d ", s.Ordinary, goal.Ordinary, s.Premium, goal.Premium) + right
	}
	x := core.Clamp(dst.Width()-len([]rune(right))-1, 0, dst.Width())
	dst.DrawTextColored(x, 0, right, core.ColorYellow)
}

// drawTitleCard renders the start screen.
func (g *Game) drawTitleCard(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	dst.DrawBox(core.NewRect(0, 0, w, h))

	y := g.drawArt(dst, g.sheet.Title, h/4)

	dst.DrawTextCentered(y+2, "Collect coins, dodge obstacles")
	dst.DrawTextCenteredColored(y+4, "Press SPACE or ENTER to start", core.ColorBrightYellow)
	dst.DrawTextCenteredColored(y+6, "SPACE/↑ jump   ↓ duck   P pause   Q quit", core.ColorGray)
	if goal := g.cfg.Goal; goal.Enabled() {
		dst.DrawTextCentered(y+8, fmt.Sprintf("Goal: %d %s and %d %s",
			goal.Ordinary, g.cfg.Labels.Ordinary, goal.Premium, g.cfg.Labels.Premium))
	}
	if g.session.Best > 0 {
		dst.DrawTextCentered(h-3, fmt.Sprintf("Best: %d", g.session.Best))
	}
}

// drawEndingCard renders the game over screen.
func (g *Game) drawEndingCard(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	s := g.session
	dst.DrawBox(core.NewRect(0, 0, w, h))

	y := h / 4
	if s.Won {
		dst.DrawTextCenteredColored(y, "YOU WIN!", core.ColorBrightGreen)
		y++
	} else {
		y = g.drawArt(dst, g.sheet.Ending, y)
	}

	dst.DrawTextCenteredColored(y+2, fmt.Sprintf("Score: %d", s.Score), core.ColorBrightWhite)
	dst.DrawTextCentered(y+3, fmt.Sprintf("Best: %d", s.Best))
	dst.DrawTextCentered(y+5, fmt.Sprintf("%s: %d   %s: %d",
		g.cfg.Labels.Ordinary, s.Ordinary, g.cfg.Labels.Premium, s.Premium))
	dst.DrawTextCenteredColored(y+7, "Press SPACE or ENTER to play again, Q to quit", core.ColorBrightYellow)
}

// drawArt centers a card's art starting at row y and returns the row below it.
func (g *Game) drawArt(dst *core.Screen, sp assets.Sprite, y int) int {
	tint := sp.Tint()
	for i, row := range sp.Art {
		dst.DrawTextCenteredColored(y+i, row, tint)
	}
	return y + len(sp.Art)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Clamp(core.Max(len(title), len(subtitle))+4, 0, w)
	boxH := core.Clamp(5, 0, h)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
