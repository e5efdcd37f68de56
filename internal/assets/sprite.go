package assets

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Sprite is a catalog image. It implements core.Image, core.Glyph and
// core.Labeled so both renderers can draw it.
type Sprite struct {
	name   string
	width  float64
	height float64
	glyph  rune
	color  core.Color
	rgba   color.RGBA
	label  string
}

func newSprite(spec ImageSpec) *Sprite {
	r, _ := utf8.DecodeRuneInString(spec.Glyph)
	c, _ := core.ParseColor(spec.Color)
	rgba, _ := parseRGB(spec.RGB)
	return &Sprite{
		name:   spec.Name,
		width:  spec.Width,
		height: spec.Height,
		glyph:  r,
		color:  c,
		rgba:   rgba,
		label:  spec.Label,
	}
}

func (s *Sprite) Name() string { return s.name }
func (s *Sprite) Width() float64 { return s.width }
func (s *Sprite) Height() float64 { return s.height }
func (s *Sprite) Glyph() (rune, core.Color) { return s.glyph, s.color }
func (s *Sprite) Label() string { return s.label }

// RGBA returns the fill color for pixel renderers. Sprites without an rgb
// entry are fully transparent.
func (s *Sprite) RGBA() color.RGBA {
	return s.rgba
}

// parseRGB accepts "#rrggbb" or "#rrggbbaa". An empty string is transparent.
func parseRGB(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{}, nil
	}
	var r, g, b uint8
	a := uint8(0xff)
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("bad rgb %q: %w", s, err)
		}
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return color.RGBA{}, fmt.Errorf("bad rgb %q: %w", s, err)
		}
	default:
		return color.RGBA{}, fmt.Errorf("bad rgb %q: want #rrggbb", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}
