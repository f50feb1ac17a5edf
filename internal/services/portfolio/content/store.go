package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/paul-wang1/portfolio/internal/platform/timeouts"
	"go.uber.org/zap"
)

// Store hands out the current content snapshot.
type Store interface {
	Portfolio() *Portfolio
}

// StaticStore serves one snapshot for the life of the process.
type StaticStore struct {
	portfolio *Portfolio
}

// NewStaticStore wraps a loaded snapshot.
func NewStaticStore(p *Portfolio) *StaticStore {
	return &StaticStore{portfolio: p}
}

// Portfolio returns the wrapped snapshot.
func (s *StaticStore) Portfolio() *Portfolio {
	return s.portfolio
}

// WatchedStore reloads a content directory whenever it changes on disk.
type WatchedStore struct {
	dir      string
	logger   *zap.Logger
	debounce time.Duration
	current  atomic.Pointer[Portfolio]
	reloads  atomic.Int64
}

// WatchOption customizes a WatchedStore.
type WatchOption func(*WatchedStore)

// WithDebounce sets how long the store waits for writes to settle.
func WithDebounce(d time.Duration) WatchOption {
	return func(s *WatchedStore) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// NewWatchedStore loads dir and returns a store that can follow its changes.
// The initial load must succeed.
func NewWatchedStore(dir string, logger *zap.Logger, opts ...WatchOption) (*WatchedStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &WatchedStore{dir: dir, logger: logger, debounce: timeouts.ContentReload}
	for _, opt := range opts {
		opt(s)
	}
	p, err := Load(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("load content %s: %w", dir, err)
	}
	s.current.Store(p)
	return s, nil
}

// Portfolio returns the latest valid snapshot.
func (s *WatchedStore) Portfolio() *Portfolio {
	return s.current.Load()
}

// Reloads reports how many snapshots replaced the initial one.
func (s *WatchedStore) Reloads() int64 {
	return s.reloads.Load()
}

// Reload loads the directory again. A failed reload keeps the current
// snapshot.
func (s *WatchedStore) Reload() error {
	p, err := Load(os.DirFS(s.dir))
	if err != nil {
		return err
	}
	s.current.Store(p)
	s.reloads.Add(1)
	return nil
}

// Watch follows file changes until ctx is canceled.
func (s *WatchedStore) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range []string{s.dir, filepath.Join(s.dir, ProjectsDir)} {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	s.logger.Info("watching content", zap.String("dir", s.dir))

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				timer.Reset(s.debounce)
			}
			pending = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				pending = time.After(s.debounce)
			}
			s.logger.Warn("content watcher", zap.Error(err))
		case <-pending:
			pending = nil
			if err := s.Reload(); err != nil {
				s.logger.Error("reload content; keeping previous snapshot", zap.Error(err))
				continue
			}
			s.logger.Info("content reloaded", zap.Int("projects", len(s.Portfolio().Projects)))
		}
	}
}
