package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// session bundles everything a host needs to create games.
type session struct {
	cfg     config.FlappyConfig
	catalog *assets.Catalog
	player  *audio.Player
	logger  *log.Logger
	logFile *os.File
}

// newLogger builds the process logger. fallback receives output when no
// --log-file is given.
func newLogger(fallback io.Writer) (*log.Logger, *os.File, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	var file *os.File
	if flagLogFile != "" {
		file, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = file
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, file, nil
}

// loadConfig resolves the configuration and applies flag overrides.
func loadConfig(logger *log.Logger) (config.FlappyConfig, error) {
	loaded, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	logger.Debug("config loaded", "source", loaded.Source, "path", loaded.Path)

	cfg := loaded.Config
	if flagFPS > 0 {
		cfg.Loop.TicksPerSecond = flagFPS
	}
	if flagNoAudio {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return config.FlappyConfig{}, err
	}
	return cfg, nil
}

// openSession loads config and assets. With withSpeaker the local audio
// device is opened; failures there fall back to silence.
func openSession(logOutput io.Writer, withSpeaker bool) (*session, error) {
	logger, logFile, err := newLogger(logOutput)
	if err != nil {
		return nil, err
	}
	s := &session{logger: logger, logFile: logFile}

	s.cfg, err = loadConfig(logger)
	if err != nil {
		s.close()
		return nil, err
	}

	var bank assets.SoundBank = assets.SilentBank{}
	if withSpeaker && s.cfg.Audio.Enabled {
		player, playerErr := audio.NewPlayer(s.cfg.Audio, logger)
		if playerErr != nil {
			logger.Warn("audio disabled", "error", playerErr)
		} else {
			s.player = player
			bank = player
		}
	}

	s.catalog, err = assets.Default(bank)
	if err != nil {
		s.close()
		return nil, err
	}
	return s, nil
}

// newGame creates a game with the session's config and assets.
func (s *session) newGame(seed int64, logger *log.Logger) (*flappy.Game, error) {
	return flappy.New(s.cfg, s.catalog, flappy.Options{
		Seed:      seed,
		Scheduler: clock.TimerScheduler{},
		Logger:    logger,
	})
}

func (s *session) close() {
	if s.player != nil {
		s.player.Close()
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
