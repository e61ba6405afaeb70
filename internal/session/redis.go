package session

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "session:"

type RedisStore struct {
	client *redis.Client
}

// NewRedisStore conecta no Redis da URL informada. O TTL fica por
// conta do próprio Redis, então não há poda manual.
func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Put(ctx context.Context, s Session) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(
		ctx,
		redisKeyPrefix+s.Token,
		s.CreatedAt.UTC().Format(time.RFC3339),
		ttl,
	).Err()
}

func (r *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	val, err := r.client.Get(ctx, redisKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	createdAt, _ := time.Parse(time.RFC3339, val)
	ttl, err := r.client.TTL(ctx, redisKeyPrefix+token).Result()
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:     token,
		CreatedAt: createdAt,
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}

func (r *RedisStore) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, redisKeyPrefix+token).Err()
}

// Compile-time check
var _ Store = (*RedisStore)(nil)
