// Package persistence implements the slot store backends and the ledger
// holding the in-memory collections.
package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/mairuba/finanzas-backend/internal/application/adapter"
	domainerror "github.com/mairuba/finanzas-backend/internal/domain/error"
)

// slotKeyPrefix namespaces slot keys inside the Redis keyspace.
const slotKeyPrefix = "slot:"

// redisStore implements adapter.SlotStore on Redis, one key per slot.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed slot store.
func NewRedisStore(client *redis.Client) adapter.SlotStore {
	return &redisStore{
		client: client,
	}
}

// Load reads the raw payload of a slot.
func (s *redisStore) Load(ctx context.Context, slot string) ([]byte, error) {
	payload, err := s.client.Get(ctx, slotKeyPrefix+slot).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrSlotNotFound
		}
		return nil, err
	}
	return payload, nil
}

// Save writes the raw payload of a slot, replacing any previous value.
// Slots never expire.
func (s *redisStore) Save(ctx context.Context, slot string, payload []byte) error {
	if err := s.client.Set(ctx, slotKeyPrefix+slot, payload, 0).Err(); err != nil {
		return domainerror.NewStoreError(
			domainerror.ErrCodeSlotWriteFailed,
			"failed to write slot "+slot,
			errors.Join(domainerror.ErrSlotWriteFailed, err),
		)
	}
	return nil
}
