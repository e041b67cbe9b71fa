package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"core/internal/dialog"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "assistant:session:"

// RedisStore keeps sessions in Redis so conversations survive restarts and
// can be served by any instance behind a load balancer.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection. Sessions
// expire after ttl of inactivity.
func NewRedisStore(ctx context.Context, addr, password string, db int, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Get returns the session for the conversation, or (nil, nil) if unknown.
func (s *RedisStore) Get(ctx context.Context, conversationID string) (*dialog.Session, error) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+conversationID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	var sess dialog.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &sess, nil
}

// Save stores the session and refreshes its TTL.
func (s *RedisStore) Save(ctx context.Context, sess *dialog.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+sess.ID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Delete drops the session for the conversation.
func (s *RedisStore) Delete(ctx context.Context, conversationID string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+conversationID).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
