package schemasource

import (
	"context"
	"errors"
	"maps"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/incoming/pkg/schemafile"
)

// RedisConfig locates schema documents in a Redis hash: each field holds one
// document, named after the field.
type RedisConfig struct {
	ConnectionURL  string        `env:"INCOMING_REDIS_URL" envDefault:"redis://localhost:6379/0"` // "redis://:password@localhost:6379/0"
	Key            string        `env:"INCOMING_REDIS_KEY" envDefault:"incoming:schemas"`
	RetryAttempts  int           `env:"INCOMING_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"INCOMING_REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"INCOMING_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// ConnectRedis dials Redis and pings it, retrying up to cfg.RetryAttempts
// times with cfg.RetryInterval between attempts. The whole procedure is
// bounded by cfg.ConnectTimeout.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrRedisURL, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	var lastErr error
	for range max(cfg.RetryAttempts, 1) {
		client := redis.NewClient(opts)
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}
	return nil, errors.Join(ErrRedisNotReady, lastErr)
}

// RedisHealthcheck pings client. It fits httpserver.Check.
func RedisHealthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrRedisUnhealthy, err)
		}
		return nil
	}
}

// HashReader is the subset of redis.Cmdable the Redis source uses.
type HashReader interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// Redis reads schema documents from the fields of a hash.
type Redis struct {
	client HashReader
	key    string
}

func NewRedis(client HashReader, key string) *Redis {
	return &Redis{client: client, key: key}
}

func (r *Redis) String() string {
	return "redis:" + r.key
}

// Fetch returns the documents ordered by field name.
func (r *Redis) Fetch(ctx context.Context) ([]schemafile.Raw, error) {
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	if len(fields) == 0 {
		return nil, ErrNoDocuments
	}

	docs := make([]schemafile.Raw, 0, len(fields))
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		docs = append(docs, schemafile.Raw{Name: name, Content: []byte(fields[name])})
	}
	return docs, nil
}
