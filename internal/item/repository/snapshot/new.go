package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"campus-lost-found/internal/item/repository"
	pkgLog "campus-lost-found/pkg/log"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Config selects and configures the snapshot store.
type Config struct {
	Driver        string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Key           string
	TTL           time.Duration
}

// New builds the configured store. The returned close function releases the
// redis connection pool and is a no-op for the memory driver.
func New(ctx context.Context, cfg Config, l pkgLog.Logger) (repository.SnapshotStore, func() error, error) {
	switch cfg.Driver {
	case "", DriverMemory:
		l.Infof(ctx, "snapshot store: memory (ttl=%v)", cfg.TTL)
		return NewMemory(cfg.TTL), func() error { return nil }, nil

	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
		}
		l.Infof(ctx, "snapshot store: redis %s db=%d key=%s", cfg.RedisAddr, cfg.RedisDB, cfg.Key)
		return NewRedis(client, cfg.Key, cfg.TTL), client.Close, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", repository.ErrUnknownDriver, cfg.Driver)
}
