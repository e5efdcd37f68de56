package core

import (
	"math"
	"testing"
)

type testImage struct {
	name  string
	w, h  float64
	r     rune
	color Color
	label string
}

func (i testImage) Name() string { return i.name }
func (i testImage) Width() float64 { return i.w }
func (i testImage) Height() float64 { return i.h }
func (i testImage) Glyph() (rune, Color) { return i.r, i.color }
func (i testImage) Label() string { return i.label }

type plainImage struct{ w, h float64 }

func (i plainImage) Name() string { return "plain" }
func (i plainImage) Width() float64 { return i.w }
func (i plainImage) Height() float64 { return i.h }

func TestCanvasDrawImageIdentity(t *testing.T) {
	s := NewScreen(10, 10)
	c := NewCanvas(s, 10, 10)

	c.DrawImage(testImage{w: 2, h: 2, r: '#', color: ColorGreen}, 1, 1)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 1 && x <= 2 && y >= 1 && y <= 2
			cell := s.GetCell(x, y)
			if inside && (cell.Rune != '#' || cell.Color != ColorGreen) {
				t.Errorf("expected green # at (%d, %d), got %+v", x, y, cell)
			}
			if !inside && cell.Rune != ' ' {
				t.Errorf("expected blank at (%d, %d), got %q", x, y, cell.Rune)
			}
		}
	}
}

func TestCanvasScalesPlayfield(t *testing.T) {
	s := NewScreen(10, 5)
	c := NewCanvas(s, 100, 50)

	// Right half of the playfield maps to the right half of the screen.
	c.DrawImageSized(plainImage{}, 50, 0, 50, 50)

	if s.Get(4, 2) != ' ' {
		t.Errorf("left half should stay blank, got %q", s.Get(4, 2))
	}
	if cell := s.GetCell(5, 2); cell != defaultGlyph {
		t.Errorf("right half should use the default glyph, got %+v", cell)
	}

	x, y := c.ToWorld(0, 0)
	if math.Abs(x-5) > 1e-9 || math.Abs(y-5) > 1e-9 {
		t.Errorf("ToWorld(0, 0) = (%f, %f), expected (5, 5)", x, y)
	}
}

func TestCanvasRotate(t *testing.T) {
	s := NewScreen(10, 10)
	c := NewCanvas(s, 10, 10)

	c.Save()
	c.Translate(5, 5)
	c.Rotate(math.Pi / 2)
	c.DrawImageSized(testImage{r: '*'}, 0, 0, 3, 1)
	c.Restore()

	// A 3x1 bar rotated a quarter turn stands vertically left of the pivot.
	for _, p := range [][2]int{{4, 5}, {4, 6}, {4, 7}} {
		if s.Get(p[0], p[1]) != '*' {
			t.Errorf("expected * at (%d, %d)", p[0], p[1])
		}
	}
	if s.Get(5, 5) != ' ' || s.Get(6, 5) != ' ' {
		t.Error("unrotated footprint should stay blank")
	}
}

func TestCanvasSaveRestore(t *testing.T) {
	s := NewScreen(10, 10)
	c := NewCanvas(s, 10, 10)

	c.Save()
	c.Translate(3, 3)
	c.Restore()
	c.Restore() // unbalanced restore is ignored

	c.DrawImageSized(testImage{r: 'o'}, 0, 0, 1, 1)
	if s.Get(0, 0) != 'o' {
		t.Error("transform should be back to identity after Restore")
	}
}

func TestCanvasClearRect(t *testing.T) {
	s := NewScreen(4, 4)
	c := NewCanvas(s, 4, 4)

	c.DrawImageSized(testImage{r: 'x'}, 0, 0, 4, 4)
	c.ClearRect(0, 0, 2, 4)

	if s.Get(1, 1) != ' ' || s.Get(2, 1) != 'x' {
		t.Errorf("ClearRect left rows %q", s.Row(1))
	}
}

func TestCanvasTinySpriteStillVisible(t *testing.T) {
	s := NewScreen(10, 10)
	c := NewCanvas(s, 100, 100)

	c.DrawImageSized(testImage{r: '.'}, 52, 52, 1, 1)
	if s.Get(5, 5) != '.' {
		t.Error("sub-cell sprite should mark the cell at its center")
	}
}

func TestCanvasLabel(t *testing.T) {
	s := NewScreen(20, 3)
	c := NewCanvas(s, 20, 3)

	c.DrawImageSized(testImage{r: '=', label: "PLAY"}, 0, 0, 20, 3)
	if got := s.Row(1); got != "========PLAY========" {
		t.Errorf("Row(1) = %q", got)
	}
	if s.GetCell(8, 1).Color != ColorBrightWhite {
		t.Error("label should be drawn in bright white")
	}
}

func TestCanvasBeginResets(t *testing.T) {
	s := NewScreen(4, 4)
	c := NewCanvas(s, 4, 4)
	c.Translate(2, 2)
	c.DrawImageSized(testImage{r: 'x'}, 0, 0, 1, 1)

	s.Resize(8, 8)
	c.Begin()
	c.DrawImageSized(testImage{r: 'y'}, 0, 0, 1, 1)

	if s.Get(0, 0) != 'y' || s.Get(1, 1) != 'y' {
		t.Errorf("expected 2x2 block after refit, rows %q %q", s.Row(0), s.Row(1))
	}
	if s.Get(4, 4) == 'x' {
		t.Error("Begin should clear the previous frame")
	}
}
