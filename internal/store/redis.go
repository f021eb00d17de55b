// Package store persists grid snapshots in Redis.
//
// A snapshot is a JSON envelope holding the encoded grid and its xxhash
// checksum. Load rejects a snapshot whose checksum does not match.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/gravitas-015/hexgrid/grid"
	"github.com/gravitas-015/hexgrid/internal/config"
	"github.com/gravitas-015/hexgrid/internal/log"
)

var (
	// ErrNotFound is returned by Load when no snapshot exists under the name.
	ErrNotFound = errors.New("store: snapshot not found")
	// ErrChecksum is returned by Load when the stored checksum does not
	// match the grid bytes.
	ErrChecksum = errors.New("store: snapshot checksum mismatch")
)

// KV is the part of the Redis client the store uses. *redis.Client
// satisfies it.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

var _ KV = (*redis.Client)(nil)

// Store saves and loads Grid[T] snapshots by name.
type Store[T any] struct {
	kv     KV
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

// Option configures a Store.
type Option func(*options)

type options struct {
	ttl time.Duration
}

// WithTTL expires snapshots after d. Zero keeps them forever.
func WithTTL(d time.Duration) Option { return func(o *options) { o.ttl = d } }

type snapshot struct {
	Checksum uint64          `json:"checksum"`
	Grid     json.RawMessage `json:"grid"`
}

// NewRedis creates a snapshot store on top of kv. Keys are prefix+name.
func NewRedis[T any](kv KV, prefix string, logger *zap.Logger, opts ...Option) *Store[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T]{kv: kv, prefix: prefix, ttl: o.ttl, logger: log.OrNop(logger)}
}

// Dial connects to Redis and verifies the connection.
func Dial(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func (s *Store[T]) key(name string) string { return s.prefix + name }

// Save writes g under name, replacing any previous snapshot.
func (s *Store[T]) Save(ctx context.Context, name string, g *grid.Grid[T]) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to encode grid %q: %w", name, err)
	}
	payload, err := json.Marshal(snapshot{Checksum: xxhash.Sum64(data), Grid: data})
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %q: %w", name, err)
	}
	if err := s.kv.Set(ctx, s.key(name), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", name, err)
	}
	s.logger.Debug("snapshot saved",
		zap.String("key", s.key(name)),
		zap.Int("height", g.Height()),
		zap.Int("width", g.Width()),
		zap.Int("bytes", len(payload)),
	)
	return nil
}

// Load reads the snapshot stored under name.
func (s *Store[T]) Load(ctx context.Context, name string) (*grid.Grid[T], error) {
	raw, err := s.kv.Get(ctx, s.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %q: %w", name, err)
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %q: %w", name, err)
	}
	if sum := xxhash.Sum64(snap.Grid); sum != snap.Checksum {
		s.logger.Warn("snapshot checksum mismatch",
			zap.String("key", s.key(name)),
			zap.Uint64("stored", snap.Checksum),
			zap.Uint64("computed", sum),
		)
		return nil, fmt.Errorf("%q: %w", name, ErrChecksum)
	}

	g := new(grid.Grid[T])
	if err := json.Unmarshal(snap.Grid, g); err != nil {
		return nil, fmt.Errorf("snapshot %q: %w", name, err)
	}
	return g, nil
}

// Delete removes the snapshot stored under name. Deleting a missing
// snapshot is not an error.
func (s *Store[T]) Delete(ctx context.Context, name string) error {
	if err := s.kv.Del(ctx, s.key(name)).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot %q: %w", name, err)
	}
	return nil
}
