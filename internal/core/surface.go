package core

// Image is a drawable asset with a natural size in playfield pixels.
type Image interface {
	Name() string
	Width() float64
	Height() float64
}

// Glyph is implemented by images that know how to look on a character
// grid. Images without it are drawn as solid gray blocks.
type Glyph interface {
	Glyph() (rune, Color)
}

// Labeled is implemented by images that carry a short caption, such as
// a button text or a digit.
type Labeled interface {
	Label() string
}

// Surface is the drawing target the game renders into. It follows the
// familiar 2D canvas model: a current transform that Translate and Rotate
// append to, and a Save/Restore stack around it.
type Surface interface {
	// DrawImage draws img at its natural size with its top-left corner at (x, y).
	DrawImage(img Image, x, y float64)
	// DrawImageSized draws img stretched to w x h.
	DrawImageSized(img Image, x, y, w, h float64)
	// ClearRect erases a rectangle to the background.
	ClearRect(x, y, w, h float64)
	// Save pushes the current transform.
	Save()
	// Restore pops the transform pushed by the matching Save.
	Restore()
	// Translate moves the origin by (dx, dy) in the current space.
	Translate(dx, dy float64)
	// Rotate turns the current space clockwise by the given radians.
	Rotate(radians float64)
}
