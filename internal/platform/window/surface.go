package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// filled is implemented by images that carry a solid pixel color.
type filled interface {
	RGBA() color.RGBA
}

// surface implements core.Surface on an ebiten image. Sprites are baked
// into textures the first time they are drawn.
type surface struct {
	dst      *ebiten.Image
	geo      ebiten.GeoM
	stack    []ebiten.GeoM
	textures map[string]*ebiten.Image
	pixel    *ebiten.Image
	face     font.Face
}

func newSurface() *surface {
	return &surface{
		textures: make(map[string]*ebiten.Image),
		face:     basicfont.Face7x13,
	}
}

// begin targets dst for a new frame.
func (s *surface) begin(dst *ebiten.Image) {
	s.dst = dst
	s.geo.Reset()
	s.stack = s.stack[:0]
}

func (s *surface) DrawImage(img core.Image, x, y float64) {
	s.DrawImageSized(img, x, y, img.Width(), img.Height())
}

func (s *surface) DrawImageSized(img core.Image, x, y, w, h float64) {
	tex := s.texture(img)
	if tex == nil || w <= 0 || h <= 0 {
		return
	}
	tw, th := tex.Bounds().Dx(), tex.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(tw), h/float64(th))
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(s.geo)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(tex, op)
}

func (s *surface) ClearRect(x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(s.geo)
	op.Blend = ebiten.BlendClear
	if s.pixel == nil {
		s.pixel = ebiten.NewImage(1, 1)
		s.pixel.Fill(color.White)
	}
	s.dst.DrawImage(s.pixel, op)
}

func (s *surface) Save() {
	s.stack = append(s.stack, s.geo)
}

func (s *surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.geo = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *surface) Translate(dx, dy float64) {
	var t ebiten.GeoM
	t.Translate(dx, dy)
	s.prepend(t)
}

func (s *surface) Rotate(radians float64) {
	var t ebiten.GeoM
	t.Rotate(radians)
	s.prepend(t)
}

// prepend applies t in local coordinates, before the current transform.
func (s *surface) prepend(t ebiten.GeoM) {
	t.Concat(s.geo)
	s.geo = t
}

// texture returns the cached texture for img, baking it on first use.
func (s *surface) texture(img core.Image) *ebiten.Image {
	if tex, ok := s.textures[img.Name()]; ok {
		return tex
	}
	w, h := int(img.Width()), int(img.Height())
	if w <= 0 || h <= 0 {
		return nil
	}

	tex := ebiten.NewImage(w, h)
	if f, ok := img.(filled); ok {
		tex.Fill(f.RGBA())
	}
	if l, ok := img.(core.Labeled); ok && l.Label() != "" {
		s.drawLabel(tex, l.Label())
	}
	s.textures[img.Name()] = tex
	return tex
}

// drawLabel prints text centered on tex with a one pixel shadow.
func (s *surface) drawLabel(tex *ebiten.Image, label string) {
	bounds := text.BoundString(s.face, label)
	x := (tex.Bounds().Dx() - bounds.Dx()) / 2
	y := (tex.Bounds().Dy()+bounds.Dy())/2 - 1
	text.Draw(tex, label, s.face, x+1, y+1, color.Black)
	text.Draw(tex, label, s.face, x, y, color.White)
}
