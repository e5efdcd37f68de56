// Package assets holds the sprite and sound catalog the game draws and
// plays by name.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

//go:embed manifest.yaml
var defaultManifest []byte

// ErrInvalidManifest is wrapped by every manifest validation failure.
var ErrInvalidManifest = errors.New("invalid asset manifest")

// Waveforms understood by sound synthesis.
const (
	WaveSine   = "sine"
	WaveSquare = "square"
	WaveSaw    = "saw"
	WaveNoise  = "noise"
)

// ImageSpec describes one sprite.
type ImageSpec struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Glyph  string  `yaml:"glyph"`
	Color  string  `yaml:"color"`
	RGB    string  `yaml:"rgb"`
	Label  string  `yaml:"label"`
}

// SoundSpec describes one synthesized sound effect. The pitch slides
// linearly from Frequency to EndFrequency over Duration.
type SoundSpec struct {
	Name         string        `yaml:"name"`
	Wave         string        `yaml:"wave"`
	Frequency    float64       `yaml:"frequency"`
	EndFrequency float64       `yaml:"end_frequency"`
	Duration     time.Duration `yaml:"duration"`
	Gain         float64       `yaml:"gain"`
}

// Manifest lists every asset.
type Manifest struct {
	Images []ImageSpec `yaml:"images"`
	Sounds []SoundSpec `yaml:"sounds"`
}

// DefaultManifest returns the embedded manifest.
func DefaultManifest() (Manifest, error) {
	return ParseManifest(defaultManifest)
}

// ParseManifest decodes and validates a manifest.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("failed to parse asset manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return m, err
	}
	return m, nil
}

// Validate checks names, sizes, glyphs and sound parameters.
func (m Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Images))
	for _, img := range m.Images {
		if img.Name == "" {
			return fmt.Errorf("%w: image without a name", ErrInvalidManifest)
		}
		if seen[img.Name] {
			return fmt.Errorf("%w: duplicate image %q", ErrInvalidManifest, img.Name)
		}
		seen[img.Name] = true
		if img.Width <= 0 || img.Height <= 0 {
			return fmt.Errorf("%w: image %q has size %gx%g", ErrInvalidManifest, img.Name, img.Width, img.Height)
		}
		if utf8.RuneCountInString(img.Glyph) != 1 {
			return fmt.Errorf("%w: image %q glyph must be one character, got %q", ErrInvalidManifest, img.Name, img.Glyph)
		}
		if _, ok := core.ParseColor(img.Color); !ok {
			return fmt.Errorf("%w: image %q has unknown color %q", ErrInvalidManifest, img.Name, img.Color)
		}
		if img.RGB != "" {
			if _, err := parseRGB(img.RGB); err != nil {
				return fmt.Errorf("%w: image %q: %v", ErrInvalidManifest, img.Name, err)
			}
		}
	}

	seen = make(map[string]bool, len(m.Sounds))
	for _, snd := range m.Sounds {
		if snd.Name == "" {
			return fmt.Errorf("%w: sound without a name", ErrInvalidManifest)
		}
		if seen[snd.Name] {
			return fmt.Errorf("%w: duplicate sound %q", ErrInvalidManifest, snd.Name)
		}
		seen[snd.Name] = true
		switch snd.Wave {
		case WaveSine, WaveSquare, WaveSaw:
			if snd.Frequency <= 0 {
				return fmt.Errorf("%w: sound %q needs a frequency", ErrInvalidManifest, snd.Name)
			}
		case WaveNoise:
		default:
			return fmt.Errorf("%w: sound %q has unknown wave %q", ErrInvalidManifest, snd.Name, snd.Wave)
		}
		if snd.Duration <= 0 {
			return fmt.Errorf("%w: sound %q needs a positive duration", ErrInvalidManifest, snd.Name)
		}
		if snd.Gain < 0 || snd.Gain > 1 {
			return fmt.Errorf("%w: sound %q gain must be within 0..1", ErrInvalidManifest, snd.Name)
		}
	}
	return nil
}
