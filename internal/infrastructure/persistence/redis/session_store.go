// Package redis provides a Redis-backed session store implementation
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/larderly/v2/internal/infrastructure/config"
	"github.com/larderly/v2/internal/ports/outbound"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "larderly:session:"

// SessionStore implements outbound.SessionStore on Redis, so session
// snapshots survive restarts and are shared across instances.
type SessionStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewSessionStore connects to Redis and returns a session store
func NewSessionStore(cfg *config.Config, logger *zap.Logger) (outbound.SessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.Database,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &SessionStore{
		client: client,
		logger: logger.Named("redis-session"),
	}, nil
}

// Set stores a value with TTL
func (s *SessionStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := s.client.Set(ctx, keyPrefix+key, value, ttl).Err()
	if err != nil {
		s.logger.Error("Session set failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Get retrieves a value; nil when absent or expired
func (s *SessionStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		s.logger.Error("Session get failed", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return data, nil
}

// Delete removes a key
func (s *SessionStore) Delete(ctx context.Context, key string) error {
	err := s.client.Del(ctx, keyPrefix+key).Err()
	if err != nil {
		s.logger.Error("Session delete failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Close closes the underlying Redis client
func (s *SessionStore) Close() error {
	return s.client.Close()
}
