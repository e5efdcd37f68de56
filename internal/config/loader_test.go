package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedMatchesBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded defaults differ from DefaultFlappyConfig():\n%+v\n%+v", cfg, DefaultFlappyConfig())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 0.5\naudio:\n  die_delay: 1s\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("Gravity = %f, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Audio.DieDelay != time.Second {
		t.Errorf("DieDelay = %s, expected 1s", cfg.Audio.DieDelay)
	}
	if cfg.Physics.JumpImpulse != 4.8 {
		t.Errorf("JumpImpulse = %f, expected default 4.8", cfg.Physics.JumpImpulse)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero tick rate", "loop:\n  ticks_per_second: 0\n"},
		{"negative gap", "obstacles:\n  gap: -1\n"},
		{"zero spawn cadence", "obstacles:\n  spawn_every: 0\n"},
		{"loud volume", "audio:\n  volume: 2\n"},
		{"player off field", "player:\n  x: 1000\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Parse() error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("physics: [unclosed"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("syntax errors should not be reported as validation errors")
	}
}

func TestLoadFlappyCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("ground:\n  speed: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() error = %v", err)
	}
	if loaded.Source != SourceCustom || loaded.Path != path {
		t.Errorf("source = %s %s, expected custom %s", loaded.Source, loaded.Path, path)
	}
	if loaded.Config.Ground.Speed != 3 {
		t.Errorf("Ground.Speed = %f, expected 3", loaded.Config.Ground.Speed)
	}
}

func TestLoadFlappyMissingCustomPath(t *testing.T) {
	_, err := LoadFlappy(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadFlappy() error = %v, expected not-exist", err)
	}
}

func TestLoadFlappySearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	loaded, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy() error = %v", err)
	}
	if loaded.Source != SourceEmbedded {
		t.Errorf("Source = %s, expected embedded", loaded.Source)
	}

	writeFile(t, filepath.Join(work, "configs", "flappy.yaml"), "ground:\n  speed: 4\n")
	loaded, _ = LoadFlappy("")
	if loaded.Source != SourceLocal || loaded.Config.Ground.Speed != 4 {
		t.Errorf("expected local config, got %s speed %f", loaded.Source, loaded.Config.Ground.Speed)
	}

	writeFile(t, filepath.Join(home, ".tui-flappy", "configs", "flappy.yaml"), "ground:\n  speed: 5\n")
	loaded, _ = LoadFlappy("")
	if loaded.Source != SourceUser || loaded.Config.Ground.Speed != 5 {
		t.Errorf("expected user config, got %s speed %f", loaded.Source, loaded.Config.Ground.Speed)
	}

	// A broken user file falls through to the next candidate.
	writeFile(t, filepath.Join(home, ".tui-flappy", "configs", "flappy.yaml"), "ground:\n  speed: -1\n")
	loaded, _ = LoadFlappy("")
	if loaded.Source != SourceLocal {
		t.Errorf("invalid user config should be skipped, got %s", loaded.Source)
	}
}

func TestWriteUserConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path, err := WriteUserConfig(false)
	if err != nil {
		t.Fatalf("WriteUserConfig() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != string(DefaultYAML()) {
		t.Fatalf("written file does not hold the defaults: %v", err)
	}

	if _, err := WriteUserConfig(false); !errors.Is(err, fs.ErrExist) {
		t.Errorf("second write error = %v, expected ErrExist", err)
	}
	if _, err := WriteUserConfig(true); err != nil {
		t.Errorf("forced write error = %v", err)
	}
}

func TestMarshalRoundTripsDurations(t *testing.T) {
	data, err := Marshal(DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "die_delay: 350ms") {
		t.Errorf("expected human-readable die_delay, got:\n%s", data)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
