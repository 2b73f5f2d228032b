// Package cache stores rendered pages so repeated requests for the same
// content revision and UI state skip rendering.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/devankur/portfolio/internal/ui"
)

// Pages is a best-effort page cache. Misses and failures look the same to
// callers; implementations log failures themselves.
type Pages interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, page []byte)
	Close() error
}

// Key identifies a rendered page.
func Key(revision string, st ui.State) string {
	return revision + ":" + st.Key()
}

// Nop caches nothing.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (Nop) Set(context.Context, string, []byte)        {}
func (Nop) Close() error                               { return nil }

const keyPrefix = "portfolio:page:"

// Redis keeps pages in Redis with a TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedis connects to redisURL and checks the connection.
func NewRedis(redisURL string, ttl time.Duration, log *zap.Logger) (*Redis, error) {
	if log == nil {
		log = zap.NewNop()
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info("redis page cache connected", zap.String("addr", opt.Addr), zap.Duration("ttl", ttl))
	return &Redis{client: client, ttl: ttl, log: log}, nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Debug("page cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return b, true
}

func (r *Redis) Set(ctx context.Context, key string, page []byte) {
	if err := r.client.Set(ctx, keyPrefix+key, page, r.ttl).Err(); err != nil {
		r.log.Debug("page cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *Redis) Close() error {
	return r.client.Close()
}
