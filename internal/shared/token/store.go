package token

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dormlife/community-api/internal/config"
	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "refresh_token"

// RefreshStore tracks which refresh tokens are still live.
// Revoke reports whether the token was live; only the one caller that gets true
// may treat the token as used, so rotation is a single atomic step.
type RefreshStore interface {
	Save(ctx context.Context, memberID, tokenID string, ttl time.Duration) error
	Revoke(ctx context.Context, memberID, tokenID string) (bool, error)
	RevokeAll(ctx context.Context, memberID string) error
}

// RedisRefreshStore keeps one key per refresh token: refresh_token:<memberID>:<tokenID>.
type RedisRefreshStore struct {
	client *redis.Client
}

// NewRedisClient connects and pings the configured Redis instance.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("Redis 연결 실패: %w", err)
	}

	slog.Info("Redis 연결 성공", "host", cfg.Host, "port", cfg.Port, "db", cfg.DB)
	return rdb, nil
}

func NewRedisRefreshStore(client *redis.Client) *RedisRefreshStore {
	return &RedisRefreshStore{client: client}
}

// Ping is used by the health check.
func (s *RedisRefreshStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisRefreshStore) Save(ctx context.Context, memberID, tokenID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, refreshKey(memberID, tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// Revoke deletes the token key. DEL is atomic, so of two concurrent calls for
// one token exactly one sees a deleted count of 1.
func (s *RedisRefreshStore) Revoke(ctx context.Context, memberID, tokenID string) (bool, error) {
	n, err := s.client.Del(ctx, refreshKey(memberID, tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revoke refresh token: %w", err)
	}
	return n == 1, nil
}

// RevokeAll deletes every refresh token of the member.
func (s *RedisRefreshStore) RevokeAll(ctx context.Context, memberID string) error {
	iter := s.client.Scan(ctx, 0, refreshKey(memberID, "*"), 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan refresh tokens: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("revoke refresh tokens: %w", err)
	}
	return nil
}

// StatelessRefreshStore is used when Redis is not configured: every signature-valid
// refresh token is accepted and revocation is a no-op.
type StatelessRefreshStore struct{}

func (StatelessRefreshStore) Save(context.Context, string, string, time.Duration) error { return nil }

func (StatelessRefreshStore) Revoke(context.Context, string, string) (bool, error) { return true, nil }

func (StatelessRefreshStore) RevokeAll(context.Context, string) error { return nil }

func refreshKey(memberID, tokenID string) string {
	return fmt.Sprintf("%s:%s:%s", refreshKeyPrefix, memberID, tokenID)
}

var (
	_ RefreshStore = (*RedisRefreshStore)(nil)
	_ RefreshStore = StatelessRefreshStore{}
)
