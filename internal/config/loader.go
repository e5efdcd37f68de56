package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration came from.
const (
	SourceCustom   = "custom"
	SourceUser     = "user"
	SourceLocal    = "local"
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Loaded is a validated configuration together with its origin.
type Loaded struct {
	Config FlappyConfig
	Source string
	Path   string
}

// LoadFlappy loads the game configuration.
// Search order: customPath -> ~/.tui-flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// A custom path must exist and be valid. Broken files further down the
// list are skipped.
func LoadFlappy(customPath string) (Loaded, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Loaded{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Loaded{}, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return Loaded{Config: cfg, Source: SourceCustom, Path: customPath}, nil
	}

	candidates := []struct{ source, path string }{
		{SourceUser, userConfigPath("flappy.yaml")},
		{SourceLocal, filepath.Join("configs", "flappy.yaml")},
	}
	for _, c := range candidates {
		if c.path == "" {
			continue
		}
		data, err := os.ReadFile(c.path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return Loaded{Config: cfg, Source: c.source, Path: c.path}, nil
		}
	}

	if cfg, err := Parse(defaultFlappyYAML); err == nil {
		return Loaded{Config: cfg, Source: SourceEmbedded}, nil
	}
	return Loaded{Config: DefaultFlappyConfig(), Source: SourceBuiltin}, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
func Parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// WriteUserConfig writes the embedded defaults to the user config path
// unless a file is already there. It returns the path.
func WriteUserConfig(force bool) (string, error) {
	path := userConfigPath("flappy.yaml")
	if path == "" {
		return "", errors.New("home directory is unavailable")
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("config %s: %w", path, fs.ErrExist)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, defaultFlappyYAML, 0o644); err != nil {
		return path, fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return path, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-flappy", "configs", filename)
}
