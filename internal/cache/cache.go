package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// Keys for the public listings.
const (
	KeyServices = "site:services"
	KeyMasters  = "site:masters"
	KeyGallery  = "site:gallery"
	KeyReviews  = "site:reviews"
	KeySettings = "site:settings"
)

var (
	ErrMiss  = errors.New("cache miss")
	ErrStale = errors.New("cache key invalidated while loading")
)

// Cache stores encoded listings. Every key carries a version that Delete
// advances, so a value read from the store before an invalidation can never
// be written back after it.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Version(ctx context.Context, key string) (int64, error)
	// SetIfVersion stores value only while key is still at version, and
	// returns ErrStale otherwise.
	SetIfVersion(ctx context.Context, key string, version int64, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}

// Nop never stores anything; used when Redis is not configured.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, error) { return nil, ErrMiss }

func (Nop) Version(context.Context, string) (int64, error) { return 0, nil }

func (Nop) SetIfVersion(context.Context, string, int64, []byte) error { return nil }

func (Nop) Delete(context.Context, ...string) error { return nil }

type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// Connect returns a Redis cache, or Nop when addr is empty or unreachable.
func Connect(addr, password string, db int, ttl time.Duration) Cache {
	if addr == "" {
		return Nop{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("redis unreachable, caching disabled")
		client.Close()
		return Nop{}
	}

	log.Info().Str("addr", addr).Dur("ttl", ttl).Msg("redis cache enabled")
	return NewRedis(client, ttl)
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return b, err
}

func versionKey(key string) string {
	return key + ":version"
}

func (r *Redis) Version(ctx context.Context, key string) (int64, error) {
	v, err := r.client.Get(ctx, versionKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// SetIfVersion watches the version key so a concurrent Delete aborts the
// write.
func (r *Redis) SetIfVersion(ctx context.Context, key string, version int64, value []byte) error {
	vk := versionKey(key)
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, vk).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return ErrStale
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key, value, r.ttl)
			return nil
		})
		return err
	}, vk)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrStale
	}
	return err
}

// Delete advances the version of every key and drops its value.
func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		for _, k := range keys {
			p.Incr(ctx, versionKey(k))
		}
		p.Del(ctx, keys...)
		return nil
	})
	return err
}

// Load serves key from c when present, otherwise calls fetch and stores its
// JSON encoding. The value is not stored when key was invalidated while
// fetch ran. Cache failures only cost the round trip to the store.
func Load[T any](ctx context.Context, c Cache, key string, fetch func(context.Context) (T, error)) (T, error) {
	if b, err := c.Get(ctx, key); err == nil {
		var v T
		if err := json.Unmarshal(b, &v); err == nil {
			return v, nil
		}
	} else if !errors.Is(err, ErrMiss) {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}

	version, verErr := c.Version(ctx, key)

	v, err := fetch(ctx)
	if err != nil {
		return v, err
	}

	if verErr != nil {
		return v, nil
	}
	if b, err := json.Marshal(v); err == nil {
		switch err := c.SetIfVersion(ctx, key, version, b); {
		case err == nil:
		case errors.Is(err, ErrStale):
			log.Debug().Str("key", key).Msg("cache key changed during load, not storing")
		default:
			log.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}
	return v, nil
}

// Invalidate drops keys and logs, never fails.
func Invalidate(ctx context.Context, c Cache, keys ...string) {
	if err := c.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
