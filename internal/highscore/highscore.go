// Package highscore keeps the best score across games.
//
// The tracker never fails its callers: a backend that cannot be read reports a
// best score of 0, and a backend that cannot be written is logged and ignored.
package highscore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// Backend persists a single best score.
type Backend interface {
	Load() (int, error)
	Save(score int) error
}

// FileBackend stores the best score as decimal text in a single file.
type FileBackend struct {
	Path string
}

// NewFileBackend creates a file backend; a leading ~ in path is expanded.
func NewFileBackend(path string) (*FileBackend, error) {
	expanded, err := core.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileBackend{Path: expanded}, nil
}

// Load reads the stored score. A missing file is a score of 0.
func (f *FileBackend) Load() (int, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: read %s: %w", f.Path, err)
	}
	return parseScore(string(data))
}

// Save writes the score, creating the parent directory if needed.
func (f *FileBackend) Save(score int) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("highscore: create directory: %w", err)
	}
	if err := os.WriteFile(f.Path, []byte(strconv.Itoa(score)+"\n"), 0o644); err != nil {
		return fmt.Errorf("highscore: write %s: %w", f.Path, err)
	}
	return nil
}

// parseScore accepts a non-negative decimal integer, allowing surrounding space.
func parseScore(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("highscore: invalid stored score %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("highscore: negative stored score %d", n)
	}
	return n, nil
}

// StoreBackend keeps the best score in the score database, next to the
// recorded games it is compared with.
type StoreBackend struct {
	Store *storage.Store
}

// Load returns the best of the saved best score and every recorded game.
func (b StoreBackend) Load() (int, error) {
	return b.Store.HighScore()
}

// Save raises the stored best score.
func (b StoreBackend) Save(score int) error {
	return b.Store.SaveBest(score)
}

// Tracker caches the best score and persists improvements.
type Tracker struct {
	mu      sync.Mutex
	backend Backend
	logger  *log.Logger
	best    int
}

// NewTracker loads the current best score from backend. Load failures are
// logged and treated as 0. A nil logger discards messages.
func NewTracker(backend Backend, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	t := &Tracker{backend: backend, logger: logger}

	best, err := backend.Load()
	if err != nil {
		logger.Warn("cannot load best score", "error", err)
		best = 0
	}
	t.best = best
	return t
}

// Best returns the best score seen so far.
func (t *Tracker) Best() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.best
}

// Observe reports a current score. When it beats the best score the new best is
// saved. The returned value is the best score after the update.
func (t *Tracker) Observe(score int) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if score <= t.best {
		return t.best
	}
	t.best = score
	if err := t.backend.Save(score); err != nil {
		t.logger.Error("cannot save best score", "score", score, "error", err)
	}
	return t.best
}
