package inventories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	engerr "github.com/emberforge/arpg-engine/internal/errors"
	"github.com/emberforge/arpg-engine/internal/inventory"
	itemservice "github.com/emberforge/arpg-engine/internal/services/item"
)

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client      redis.UniversalClient
	itemFactory itemservice.Service
}

// RedisConfig holds configuration for the redis repository
type RedisConfig struct {
	Client      redis.UniversalClient // Required
	ItemFactory itemservice.Service   // Required
}

// NewRedis creates a redis-backed inventory repository
func NewRedis(cfg *RedisConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}
	if cfg.ItemFactory == nil {
		panic("item factory is required")
	}

	return &redisRepo{
		client:      cfg.Client,
		itemFactory: cfg.ItemFactory,
	}
}

func inventoryKey(ownerID, key string) string {
	return fmt.Sprintf("inventory:%s:%s", ownerID, key)
}

func ownerIndexKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:inventories", ownerID)
}

// Save persists a snapshot of the inventory
func (r *redisRepo) Save(ctx context.Context, ownerID, key string, inv *inventory.Inventory) error {
	if ownerID == "" || key == "" {
		return engerr.InvalidArgument("owner ID and key are required")
	}
	if inv == nil {
		return engerr.InvalidArgument("inventory cannot be nil")
	}

	jsonData, err := json.Marshal(Snapshot(inv))
	if err != nil {
		return engerr.Wrap(err, "failed to marshal inventory data")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, inventoryKey(ownerID, key), string(jsonData), 0)
	pipe.SAdd(ctx, ownerIndexKey(ownerID), key)
	if _, err := pipe.Exec(ctx); err != nil {
		return engerr.Wrap(err, "failed to save inventory to redis")
	}

	return nil
}

// Load rebuilds the stored inventory
func (r *redisRepo) Load(ctx context.Context, ownerID, key string) (*inventory.Inventory, error) {
	jsonData, err := r.client.Get(ctx, inventoryKey(ownerID, key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, engerr.NotFoundf("inventory '%s/%s' not found", ownerID, key).
				WithMeta("owner_id", ownerID).
				WithMeta("key", key)
		}
		return nil, engerr.Wrap(err, "failed to get inventory from redis")
	}

	var snapshot Data
	if err := json.Unmarshal(jsonData, &snapshot); err != nil {
		return nil, engerr.Wrap(err, "failed to unmarshal inventory data")
	}

	return rebuild(ctx, r.itemFactory, snapshot)
}

// LoadAll rebuilds every stored inventory for the owner, fetching keys
// concurrently
func (r *redisRepo) LoadAll(ctx context.Context, ownerID string) (map[string]*inventory.Inventory, error) {
	keys, err := r.ListKeys(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	result := make(map[string]*inventory.Inventory, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			inv, err := r.Load(gctx, ownerID, key)
			if err != nil {
				return err
			}
			mu.Lock()
			result[key] = inv
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the stored inventory
func (r *redisRepo) Delete(ctx context.Context, ownerID, key string) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, inventoryKey(ownerID, key))
	pipe.SRem(ctx, ownerIndexKey(ownerID), key)
	if _, err := pipe.Exec(ctx); err != nil {
		return engerr.Wrap(err, "failed to delete inventory from redis")
	}

	return nil
}

// ListKeys returns the keys stored for the owner
func (r *redisRepo) ListKeys(ctx context.Context, ownerID string) ([]string, error) {
	keys, err := r.client.SMembers(ctx, ownerIndexKey(ownerID)).Result()
	if err != nil {
		return nil, engerr.Wrap(err, "failed to list inventory keys from redis")
	}
	return keys, nil
}
