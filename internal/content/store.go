package content

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DebounceInterval is how long Watch waits for writes to settle before reloading.
const DebounceInterval = 300 * time.Millisecond

type snapshot struct {
	site     *Site
	revision string
}

// Store serves the current content and can swap it for a fresh copy of the
// content file. Readers always see a complete, validated Site.
type Store struct {
	path string
	log  *zap.Logger
	cur  atomic.Pointer[snapshot]
}

// NewStore loads content from path, or the compiled-in content when path is empty.
func NewStore(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{path: path, log: log}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewStaticStore wraps an already loaded Site. Reload and Watch are no-ops.
func NewStaticStore(site *Site) *Store {
	s := &Store{log: zap.NewNop()}
	s.cur.Store(&snapshot{site: site, revision: "static"})
	return s
}

// Site returns the current content.
func (s *Store) Site() *Site {
	return s.cur.Load().site
}

// Revision identifies the current content. It changes whenever the source does.
func (s *Store) Revision() string {
	return s.cur.Load().revision
}

// Current returns the content together with its revision, read atomically.
func (s *Store) Current() (*Site, string) {
	snap := s.cur.Load()
	return snap.site, snap.revision
}

// Reload reads the content source again. On failure the previous content
// stays in place.
func (s *Store) Reload() error {
	src := defaultYAML
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return fmt.Errorf("read content file %s: %w", s.path, err)
		}
		src = b
	} else if s.cur.Load() != nil {
		return nil
	}

	site, err := Load(bytes.NewReader(src))
	if err != nil {
		return fmt.Errorf("content %s: %w", s.source(), err)
	}
	sum := sha256.Sum256(src)
	rev := hex.EncodeToString(sum[:])[:12]

	prev := s.cur.Swap(&snapshot{site: site, revision: rev})
	if prev != nil && prev.revision != rev {
		s.log.Info("content reloaded", zap.String("source", s.source()), zap.String("revision", rev))
	}
	return nil
}

func (s *Store) source() string {
	if s.path == "" {
		return "embedded"
	}
	return s.path
}

// Watch reloads the content file whenever it changes, until ctx is done.
// The containing directory is watched so that editors that replace the file
// on save are picked up too.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		<-ctx.Done()
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create content watcher: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(s.path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	s.log.Info("watching content", zap.String("path", target))

	var (
		timer *time.Timer
		fire  <-chan time.Time
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
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			s.log.Debug("content change detected", zap.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(DebounceInterval)
			} else {
				timer.Reset(DebounceInterval)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			if err := s.Reload(); err != nil {
				s.log.Error("content reload failed, keeping previous content", zap.Error(err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("content watcher error", zap.Error(err))
		}
	}
}
