package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// writeTimeout bounds each background write.
const writeTimeout = 5 * time.Second

// untracked path prefixes: assets, the admin area, the privacy page and htmx
// fragments.
var untracked = []string{"/static/", "/admin", "/ui/", "/favicon", "/privacy", "/resume.pdf", "/healthz"}

// Tracker records metrics in the background so requests never wait on the
// database.
type Tracker struct {
	store *Store
	salt  string
	log   *zap.Logger
	wg    sync.WaitGroup
}

// NewTracker wraps store with a fresh per-process hashing salt.
func NewTracker(store *Store, log *zap.Logger) (*Tracker, error) {
	if log == nil {
		log = zap.NewNop()
	}
	salt, err := RandomToken()
	if err != nil {
		return nil, err
	}
	return &Tracker{store: store, salt: salt, log: log}, nil
}

// RandomToken returns 32 random bytes, hex encoded.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashIP is consistent for one IP within the process lifetime and does not
// reveal the address.
func (t *Tracker) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// ShouldTrack reports whether a request may be recorded. Assets, admin and
// fragment requests are skipped, as is any visitor sending Do Not Track.
func ShouldTrack(path, dnt string) bool {
	if dnt == "1" {
		return false
	}
	for _, p := range untracked {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// Visit records a page view.
func (t *Tracker) Visit(ip, userAgent, path string) {
	v := Visit{HashedIP: t.HashIP(ip), UserAgent: userAgent, Path: path}
	t.async("visit", func(ctx context.Context) error {
		return t.store.RecordVisit(ctx, v)
	})
}

// Navigated records a navigation to section.
func (t *Tracker) Navigated(section string) {
	t.async("navigation", func(ctx context.Context) error {
		return t.store.RecordNavigation(ctx, section)
	})
}

func (t *Tracker) async(kind string, fn func(context.Context) error) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			t.log.Warn("error recording metric", zap.String("kind", kind), zap.Error(err))
		}
	}()
}

// Store exposes the underlying store for reporting.
func (t *Tracker) Store() *Store {
	return t.store
}

// Close waits for pending writes. The store itself stays open.
func (t *Tracker) Close() {
	t.wg.Wait()
}
