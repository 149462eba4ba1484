// Package session holds the seller auth credential. The dashboard keeps a
// single bearer token per process; it is read on every upstream request and
// cleared when the seller API answers 401.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type TokenStore interface {
	// Token returns the stored credential, ok=false when none is stored.
	Token(ctx context.Context) (string, bool, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

const redisTokenKey = "session:seller:token"

type RedisStore struct {
	c   *redis.Client
	ttl time.Duration
}

// NewRedisStore stores the token under a fixed key. ttl<=0 means no expiry.
func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		c:   redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

func (s *RedisStore) Token(ctx context.Context) (string, bool, error) {
	val, err := s.c.Get(ctx, redisTokenKey).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "redis get token")
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, token string) error {
	if err := s.c.Set(ctx, redisTokenKey, token, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set token")
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.c.Del(ctx, redisTokenKey).Err(); err != nil {
		return errors.Wrap(err, "redis clear token")
	}
	return nil
}

// MemoryStore is for tests and single-process local runs.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Token(_ context.Context) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.set, nil
}

func (s *MemoryStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
	return nil
}
