package core

import "math"

// defaultGlyph is used for images that do not implement Glyph.
var defaultGlyph = Cell{Rune: '█', Color: ColorGray}

// Canvas implements Surface on top of a Screen. The playfield is scaled to
// fill the screen, and each sprite is rasterized by sampling cell centers
// through the inverse of the current transform, so rotated sprites come out
// rotated on the character grid too.
type Canvas struct {
	screen *Screen
	worldW float64
	worldH float64
	base   Affine
	ctm    Affine
	stack  []Affine
}

// NewCanvas creates a canvas that maps a worldW x worldH playfield onto screen.
func NewCanvas(screen *Screen, worldW, worldH float64) *Canvas {
	c := &Canvas{
		screen: screen,
		worldW: worldW,
		worldH: worldH,
	}
	c.Begin()
	return c
}

// Screen returns the underlying character buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// Begin starts a new frame: it clears the screen, refits the playfield to
// the current screen size and drops any leftover transform state.
func (c *Canvas) Begin() {
	c.screen.Clear()
	sx, sy := 1.0, 1.0
	if c.worldW > 0 {
		sx = float64(c.screen.Width()) / c.worldW
	}
	if c.worldH > 0 {
		sy = float64(c.screen.Height()) / c.worldH
	}
	c.base = Scaling(sx, sy)
	c.ctm = c.base
	c.stack = c.stack[:0]
}

// ToWorld converts a screen cell to the playfield point at its center.
func (c *Canvas) ToWorld(col, row int) (float64, float64) {
	inv, ok := c.base.Invert()
	if !ok {
		return 0, 0
	}
	return inv.Apply(float64(col)+0.5, float64(row)+0.5)
}

// DrawImage draws img at its natural size.
func (c *Canvas) DrawImage(img Image, x, y float64) {
	c.DrawImageSized(img, x, y, img.Width(), img.Height())
}

// DrawImageSized draws img stretched to w x h.
func (c *Canvas) DrawImageSized(img Image, x, y, w, h float64) {
	cell := defaultGlyph
	if g, ok := img.(Glyph); ok {
		cell.Rune, cell.Color = g.Glyph()
	}
	c.fill(x, y, w, h, cell)

	if l, ok := img.(Labeled); ok && l.Label() != "" {
		c.label(x, y, w, h, l.Label())
	}
}

// ClearRect erases the rectangle to blank cells.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	c.fill(x, y, w, h, blankCell)
}

// Save pushes the current transform.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.ctm)
}

// Restore pops the last saved transform. Unbalanced calls are ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.ctm = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin in the current space.
func (c *Canvas) Translate(dx, dy float64) {
	c.ctm = c.ctm.Then(Translation(dx, dy))
}

// Rotate turns the current space by the given radians.
func (c *Canvas) Rotate(radians float64) {
	c.ctm = c.ctm.Then(Rotation(radians))
}

// fill paints every cell whose center falls inside the transformed rect.
func (c *Canvas) fill(x, y, w, h float64, cell Cell) {
	if w <= 0 || h <= 0 {
		return
	}
	inv, ok := c.ctm.Invert()
	if !ok {
		return
	}

	minX, minY, maxX, maxY := c.deviceBounds(x, y, w, h)
	x0 := Max(int(math.Floor(minX)), 0)
	y0 := Max(int(math.Floor(minY)), 0)
	x1 := Min(int(math.Ceil(maxX)), c.screen.Width())
	y1 := Min(int(math.Ceil(maxY)), c.screen.Height())

	painted := false
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			lx, ly := inv.Apply(float64(col)+0.5, float64(row)+0.5)
			if lx >= x && lx < x+w && ly >= y && ly < y+h {
				c.screen.SetCell(col, row, cell)
				painted = true
			}
		}
	}

	// Sprites smaller than a cell still leave a mark at their center.
	if !painted {
		cx, cy := c.ctm.Apply(x+w/2, y+h/2)
		c.screen.SetCell(int(math.Floor(cx)), int(math.Floor(cy)), cell)
	}
}

// label centers text over an unrotated sprite when it fits.
func (c *Canvas) label(x, y, w, h float64, text string) {
	if c.ctm.Rotated() {
		return
	}
	minX, minY, maxX, maxY := c.deviceBounds(x, y, w, h)
	runes := []rune(text)
	width := Max(int(math.Floor(maxX))-int(math.Ceil(minX)), 1)
	if len(runes) > width {
		runes = runes[:width]
	}
	row := int(math.Floor((minY + maxY) / 2))
	col := int(math.Floor((minX+maxX)/2)) - len(runes)/2
	c.screen.DrawText(col, row, string(runes), ColorBrightWhite)
}

// deviceBounds returns the screen-space bounding box of a local rect.
func (c *Canvas) deviceBounds(x, y, w, h float64) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{x, y}, {x + w, y}, {x, y + h}, {x + w, y + h}} {
		dx, dy := c.ctm.Apply(p[0], p[1])
		minX, maxX = math.Min(minX, dx), math.Max(maxX, dx)
		minY, maxY = math.Min(minY, dy), math.Max(maxY, dy)
	}
	return minX, minY, maxX, maxY
}
