package assets

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ErrUnknownAsset is returned when a name is not in the catalog.
var ErrUnknownAsset = errors.New("unknown asset")

// Sound is a loaded sound effect. Play must not block.
type Sound interface {
	Play()
}

// SoundBank turns sound descriptions into playable sounds.
type SoundBank interface {
	Load(spec SoundSpec) (Sound, error)
}

// SilentBank loads sounds that do nothing. It is used when audio is
// disabled or no output device is available.
type SilentBank struct{}

// Load returns a no-op sound.
func (SilentBank) Load(SoundSpec) (Sound, error) {
	return silentSound{}, nil
}

type silentSound struct{}

func (silentSound) Play() {}

// Catalog resolves sprites and sounds by name. It is read-only after
// construction and safe to share between games.
type Catalog struct {
	images map[string]*Sprite
	order  []*Sprite
	sounds map[string]Sound
}

// NewCatalog builds a catalog from a manifest, loading sounds through bank.
func NewCatalog(m Manifest, bank SoundBank) (*Catalog, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if bank == nil {
		bank = SilentBank{}
	}

	c := &Catalog{
		images: make(map[string]*Sprite, len(m.Images)),
		sounds: make(map[string]Sound, len(m.Sounds)),
	}
	for _, spec := range m.Images {
		s := newSprite(spec)
		c.images[spec.Name] = s
		c.order = append(c.order, s)
	}
	for _, spec := range m.Sounds {
		snd, err := bank.Load(spec)
		if err != nil {
			return nil, fmt.Errorf("failed to load sound %q: %w", spec.Name, err)
		}
		c.sounds[spec.Name] = snd
	}
	return c, nil
}

// Default builds a catalog from the embedded manifest.
func Default(bank SoundBank) (*Catalog, error) {
	m, err := DefaultManifest()
	if err != nil {
		return nil, err
	}
	return NewCatalog(m, bank)
}

// Image returns the sprite with the given name.
func (c *Catalog) Image(name string) (core.Image, error) {
	s, ok := c.images[name]
	if !ok {
		return nil, fmt.Errorf("image %q: %w", name, ErrUnknownAsset)
	}
	return s, nil
}

// MustImage returns the sprite with the given name and panics if it is
// missing. Callers check names up front with Require.
func (c *Catalog) MustImage(name string) core.Image {
	img, err := c.Image(name)
	if err != nil {
		panic(err)
	}
	return img
}

// Sprites returns every sprite in manifest order.
func (c *Catalog) Sprites() []*Sprite {
	return c.order
}

// Sound returns the sound with the given name.
func (c *Catalog) Sound(name string) (Sound, error) {
	s, ok := c.sounds[name]
	if !ok {
		return nil, fmt.Errorf("sound %q: %w", name, ErrUnknownAsset)
	}
	return s, nil
}

// Require reports every listed name that the catalog lacks.
func (c *Catalog) Require(images, sounds []string) error {
	var errs []error
	for _, name := range images {
		if _, err := c.Image(name); err != nil {
			errs = append(errs, err)
		}
	}
	for _, name := range sounds {
		if _, err := c.Sound(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
