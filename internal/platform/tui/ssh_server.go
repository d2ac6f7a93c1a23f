package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/highscore"
	"github.com/vovakirdan/blockfall/internal/logging"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// DefaultHostKeyPath is where the server keeps its generated host key.
const DefaultHostKeyPath = "~/.blockfall/host_key"

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address     string        // host:port, e.g. ":23234"
	HostKeyPath string        // generated on first start when missing
	DBPath      string        // shared score database
	IdleTimeout time.Duration // idle connections are closed after this long

	// Game is the configuration every session plays with.
	Game config.Config
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		HostKeyPath: DefaultHostKeyPath,
		DBPath:      storage.DefaultPath,
		IdleTimeout: 30 * time.Minute,
		Game:        config.Default(),
	}
}

// SSHServer serves blockfall over SSH. Every connection plays its own game with
// its own engine and gravity schedule; connections share only the score
// database and the best-score tracker. No sound is played on the server.
type SSHServer struct {
	cfg     SSHServerConfig
	server  *ssh.Server
	store   *storage.Store
	tracker *highscore.Tracker
	logger  *log.Logger
	active  atomic.Int64
}

// NewSSHServer prepares the server. A score database that cannot be opened is
// logged and the server runs without one.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	if cfg.HostKeyPath == "" {
		cfg.HostKeyPath = DefaultHostKeyPath
	}

	keyPath, err := core.ExpandHome(cfg.HostKeyPath)
	if err != nil {
		return nil, fmt.Errorf("ssh: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(keyPath), 0o700); err != nil {
		return nil, fmt.Errorf("ssh: create host key directory: %w", err)
	}

	s := &SSHServer{cfg: cfg, logger: logger}
	if store, err := storage.Open(cfg.DBPath); err != nil {
		logger.Warn("scores database unavailable, games will not be recorded", "path", cfg.DBPath, "error", err)
	} else {
		s.store = store
		s.tracker = highscore.NewTracker(highscore.StoreBackend{Store: store}, logger)
	}

	// Middlewares run last to first: log, require a terminal, then play.
	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			activeterm.Middleware(),
			s.logSessions,
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("ssh: create server: %w", err)
	}
	return s, nil
}

// newSession builds the program for one connection.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	user := sess.User()

	deps := Deps{
		Config:   s.cfg.Game,
		Store:    s.store,
		Tracker:  s.tracker,
		Logger:   s.logger.With("user", user),
		Player:   user,
		Renderer: bubbletea.MakeRenderer(sess),
	}
	rc := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
		Seed:    time.Now().UnixNano(),
	}
	return NewSessionModel(deps, rc), []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		l := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())

		l.Info("session started", "active", s.active.Add(1))
		next(sess)
		l.Info("session ended", "active", s.active.Add(-1), "duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.cfg.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down", "active", s.active.Load())
		return s.Shutdown()
	}
}

// Shutdown stops accepting connections, waits up to ten seconds for open
// sessions and closes the score database.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("closing scores database", "error", err)
	}
	s.store = nil
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}
