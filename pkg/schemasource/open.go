package schemasource

import (
	"context"
	"fmt"
)

// Source kinds accepted by Config.Kind.
const (
	KindFile  = "file"
	KindS3    = "s3"
	KindRedis = "redis"
)

// Config selects and configures a backend. Only the section matching Kind
// is read.
type Config struct {
	Kind string `env:"INCOMING_SCHEMA_SOURCE" envDefault:"file"`

	// Path is a schema document path or a glob matching several.
	Path  string `env:"INCOMING_SCHEMA_FILE" envDefault:"schemas.yaml"`
	S3    S3Config
	Redis RedisConfig
}

// Handle is an opened Source with the resources backing it.
type Handle struct {
	Source

	check func(context.Context) error
	close func() error
}

// Check reports whether the backend is reachable. Files are always ready.
func (h *Handle) Check(ctx context.Context) error {
	if h.check == nil {
		return nil
	}
	return h.check(ctx)
}

// Close releases connections held by the backend.
func (h *Handle) Close() error {
	if h.close == nil {
		return nil
	}
	return h.close()
}

// Open creates the source described by cfg. Remote backends are dialed
// here, so a misconfigured source fails at startup.
func Open(ctx context.Context, cfg Config) (*Handle, error) {
	switch cfg.Kind {
	case KindFile, "":
		return &Handle{Source: NewFile(cfg.Path)}, nil

	case KindS3:
		if cfg.S3.Bucket == "" {
			return nil, ErrMissingBucket
		}
		client, err := NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		src, err := NewS3(client, cfg.S3.Bucket, cfg.S3.Prefix)
		if err != nil {
			return nil, err
		}
		return &Handle{Source: src, check: src.Check}, nil

	case KindRedis:
		client, err := ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &Handle{
			Source: NewRedis(client, cfg.Redis.Key),
			check:  RedisHealthcheck(client),
			close:  client.Close,
		}, nil

	default:
		return nil, fmt.Errorf("%w %q: expected %s, %s or %s", ErrUnknownSource, cfg.Kind, KindFile, KindS3, KindRedis)
	}
}
