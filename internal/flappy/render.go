package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// HUD score placement.
const (
	hudScoreY       = 20
	hudDigitSpacing = 15
	homeMessageY    = 60
)

// Render draws the current frame. It reads state only; all animation
// choices were made during Tick.
func (g *Game) Render(dst core.Surface) {
	w, h := g.Playfield()
	dst.ClearRect(0, 0, w, h)

	g.drawBackdrop(dst, w, h)
	g.drawObstacles(dst)
	g.drawGround(dst, w)
	g.drawFlyer(dst)

	switch g.phase {
	case PhaseHome:
		msg := g.catalog.MustImage(SpriteMessage)
		dst.DrawImage(msg, w/2-msg.Width()/2, homeMessageY)
	case PhaseRunning:
		g.drawHUDScore(dst, w)
	case PhaseScoreSummary:
		g.drawSummary(dst)
	}
}

func (g *Game) drawBackdrop(dst core.Surface, w, h float64) {
	dst.DrawImageSized(g.catalog.MustImage(g.scene.SkySprite()), 0, 0, w, h)

	bg := g.catalog.MustImage(g.scene.BackdropSprite())
	y := h - g.ground.Tile().Height() - bg.Height()
	for x := 0.0; x < w; x += bg.Width() {
		dst.DrawImage(bg, x, y)
	}
}

func (g *Game) drawObstacles(dst core.Surface) {
	upper := g.catalog.MustImage(g.scene.PipeSprite(true))
	lower := g.catalog.MustImage(g.scene.PipeSprite(false))
	width := g.pipes.Width()

	for _, p := range g.pipes.Pairs() {
		gapTop := float64(p.GapY)
		dst.DrawImageSized(upper, p.X, gapTop-upper.Height(), width, upper.Height())
		dst.DrawImageSized(lower, p.X, gapTop+g.pipes.Gap(), width, lower.Height())
	}
}

// drawGround tiles the strip from its scroll offset across the full width.
func (g *Game) drawGround(dst core.Surface, w float64) {
	tile := g.ground.Tile()
	for x := g.ground.X; x < w; x += tile.Width() {
		dst.DrawImage(tile, x, g.ground.Top())
	}
}

// drawFlyer rotates the sprite about its center.
func (g *Game) drawFlyer(dst core.Surface) {
	img := g.flyer.Sprite()
	cx := g.flyer.X + img.Width()/2
	cy := g.flyer.Y + img.Height()/2

	dst.Save()
	dst.Translate(cx, cy)
	dst.Rotate(core.Radians(g.flyer.Rotation))
	dst.DrawImage(img, -img.Width()/2, -img.Height()/2)
	dst.Restore()
}

func (g *Game) drawHUDScore(dst core.Surface, w float64) {
	zero := g.catalog.MustImage(DigitSprite(0))
	x := w/2 - zero.Width()/2
	for _, d := range LayoutDigits(g.score.Current, x, hudDigitSpacing) {
		dst.DrawImage(g.catalog.MustImage(DigitSprite(d.Digit)), d.X, hudScoreY)
	}
}

func (g *Game) drawSummary(dst core.Surface) {
	g.placeSummary()
	l := g.layout
	dst.DrawImage(g.catalog.MustImage(SpriteGameOver), l.GameOver.X, l.GameOver.Y)
	dst.DrawImage(g.catalog.MustImage(SpriteScorePanel), l.Panel.X, l.Panel.Y)
	dst.DrawImage(g.catalog.MustImage(SpritePlay), l.Play.X, l.Play.Y)

	g.drawSmallNumber(dst, g.score.Current, l.CurrentX, l.CurrentY)
	g.drawSmallNumber(dst, g.score.Best, l.BestX, l.BestY)
}

func (g *Game) drawSmallNumber(dst core.Surface, value int, x, y float64) {
	for _, d := range LayoutDigits(value, x, summaryDigitSpacing) {
		dst.DrawImageSized(g.catalog.MustImage(DigitSprite(d.Digit)), d.X, y, summaryDigitW, summaryDigitH)
	}
}
