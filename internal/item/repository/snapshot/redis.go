package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"campus-lost-found/internal/item/repository"
	"campus-lost-found/internal/model"
)

const DefaultKey = "lostfound:items:snapshot"

type redisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedis stores the snapshot as one JSON value so that every replica of the
// service answers cached queries from the same list.
func NewRedis(client *redis.Client, key string, ttl time.Duration) repository.SnapshotStore {
	if key == "" {
		key = DefaultKey
	}
	return &redisStore{client: client, key: key, ttl: ttl}
}

func (s *redisStore) Save(ctx context.Context, snap repository.Snapshot) error {
	if snap.Items == nil {
		snap.Items = []model.Item{}
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return s.client.Set(ctx, s.key, data, s.ttl).Err()
}

func (s *redisStore) Load(ctx context.Context) (repository.Snapshot, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return repository.Snapshot{}, repository.ErrNoSnapshot
	}
	if err != nil {
		return repository.Snapshot{}, err
	}
	return decode(data)
}

func (s *redisStore) Patch(ctx context.Context, it model.Item) error {
	return s.update(ctx, func(snap *repository.Snapshot) bool {
		return replaceItem(snap.Items, it)
	})
}

func (s *redisStore) Remove(ctx context.Context, id string) error {
	return s.update(ctx, func(snap *repository.Snapshot) bool {
		before := len(snap.Items)
		snap.Items = withoutID(snap.Items, id)
		return len(snap.Items) != before
	})
}

// update rewrites the stored snapshot inside an optimistic transaction so a
// concurrent Save is never overwritten by a stale copy.
func (s *redisStore) update(ctx context.Context, change func(*repository.Snapshot) bool) error {
	return s.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, s.key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}

		snap, err := decode(data)
		if err != nil {
			return err
		}
		if !change(&snap) {
			return nil
		}
		out, err := json.Marshal(snap)
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.key, out, redis.KeepTTL)
			return nil
		})
		return err
	}, s.key)
}

func decode(data []byte) (repository.Snapshot, error) {
	var snap repository.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return repository.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Items == nil {
		snap.Items = []model.Item{}
	}
	return snap, nil
}
