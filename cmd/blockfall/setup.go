package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/audio"
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/highscore"
	"github.com/vovakirdan/blockfall/internal/logging"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// bestScoreFile keeps the best score when the database cannot be opened.
const bestScoreFile = "~/.blockfall/best_score"

// loadConfig reads the config file and applies --difficulty.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// runtimeConfig sizes the screen from the controlling terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// session holds everything a local game needs. close releases it in reverse order.
type session struct {
	deps    tui.Deps
	closers []io.Closer
}

// openSession wires the logger, score store, best-score tracker and sound for a
// local game. Missing storage or audio degrade the game instead of failing it.
func openSession(cfg config.Config) *session {
	s := &session{}

	logger, logCloser, err := logging.OpenFile(logging.DefaultFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = logging.Discard()
	} else {
		s.closers = append(s.closers, logCloser)
	}

	s.deps = tui.Deps{
		Config: cfg,
		Logger: logger,
		Player: currentUser(),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "error", err)
	} else {
		s.deps.Store = store
		s.closers = append(s.closers, store)
	}

	s.deps.Tracker = newTracker(store, logger)

	if cfg.Sound.Enabled {
		player := audio.NewPlayer(true, cfg.Sound.Volume)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			s.deps.Audio = player
			s.closers = append(s.closers, closerFunc(player.Close))
		}
	}

	return s
}

// newTracker keeps the best score in the database when there is one and in a
// plain file otherwise.
func newTracker(store *storage.Store, logger *log.Logger) *highscore.Tracker {
	if store != nil {
		return highscore.NewTracker(highscore.StoreBackend{Store: store}, logger)
	}

	backend, err := highscore.NewFileBackend(bestScoreFile)
	if err != nil {
		logger.Warn("best score will not be kept", "error", err)
		return nil
	}
	return highscore.NewTracker(backend, logger)
}

func (s *session) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		//nolint:errcheck // Nothing useful to do on exit
		s.closers[i].Close()
	}
}

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}

func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
