package authtokens

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/courtside/courtside/internal/common"
	"github.com/courtside/courtside/internal/server/models"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "courtside"

// tokenKey addresses a record by the digest of its token so the key space
// never holds a usable credential.
func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%s:auth_token:%s", keyPrefix, hex.EncodeToString(sum[:]))
}

type redisRecord struct {
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// RedisRepository keeps one key per token with a TTL matching the token's
// remaining lifetime, so Redis drops expired records by itself.
type RedisRepository struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisRepository connects to url and checks the connection.
func NewRedisRepository(ctx context.Context, url string) (*RedisRepository, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: redis ping: %w", common.ErrStoreUnavailable, err)
	}

	return NewRedisRepositoryWithClient(client), nil
}

// NewRedisRepositoryWithClient wraps an existing client (used by tests).
func NewRedisRepositoryWithClient(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client, now: time.Now}
}

func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) Create(ctx context.Context, token *models.AuthToken) error {
	now := r.now()
	if token.Expired(now) {
		return nil
	}
	ttl := token.ExpiresAt.Sub(now)

	token.CreatedAt = now
	data, err := json.Marshal(redisRecord{
		UserID:    token.UserID,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
	})
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, tokenKey(token.Token), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis error: %w: %w", common.ErrStoreUnavailable, err)
	}
	return nil
}

// PurgeExpired is a no-op: keys expire on their own.
func (r *RedisRepository) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}
