package inventories

import (
	"context"
	"sync"

	itemdomain "github.com/emberforge/arpg-engine/internal/domain/item"
	engerr "github.com/emberforge/arpg-engine/internal/errors"
	"github.com/emberforge/arpg-engine/internal/inventory"
	itemservice "github.com/emberforge/arpg-engine/internal/services/item"
)

// InMemoryRepository is an in-memory implementation of the inventory
// repository. Useful for testing and development.
type InMemoryRepository struct {
	mu          sync.RWMutex
	data        map[string]map[string]Data
	itemFactory itemservice.Service
}

// NewInMemoryRepository creates a new in-memory repository. The item
// factory rebuilds instances on load.
func NewInMemoryRepository(itemFactory itemservice.Service) *InMemoryRepository {
	if itemFactory == nil {
		panic("item factory is required")
	}

	return &InMemoryRepository{
		data:        make(map[string]map[string]Data),
		itemFactory: itemFactory,
	}
}

// Save persists a snapshot of the inventory
func (r *InMemoryRepository) Save(ctx context.Context, ownerID, key string, inv *inventory.Inventory) error {
	if ownerID == "" || key == "" {
		return engerr.InvalidArgument("owner ID and key are required")
	}
	if inv == nil {
		return engerr.InvalidArgument("inventory cannot be nil")
	}

	snapshot := Snapshot(inv)

	r.mu.Lock()
	defer r.mu.Unlock()

	owned, ok := r.data[ownerID]
	if !ok {
		owned = make(map[string]Data)
		r.data[ownerID] = owned
	}
	owned[key] = snapshot

	return nil
}

// Load rebuilds the stored inventory
func (r *InMemoryRepository) Load(ctx context.Context, ownerID, key string) (*inventory.Inventory, error) {
	r.mu.RLock()
	snapshot, ok := r.data[ownerID][key]
	r.mu.RUnlock()

	if !ok {
		return nil, engerr.NotFoundf("inventory '%s/%s' not found", ownerID, key).
			WithMeta("owner_id", ownerID).
			WithMeta("key", key)
	}

	return rebuild(ctx, r.itemFactory, snapshot)
}

// LoadAll rebuilds every stored inventory for the owner
func (r *InMemoryRepository) LoadAll(ctx context.Context, ownerID string) (map[string]*inventory.Inventory, error) {
	r.mu.RLock()
	owned := make(map[string]Data, len(r.data[ownerID]))
	for key, snapshot := range r.data[ownerID] {
		owned[key] = snapshot
	}
	r.mu.RUnlock()

	result := make(map[string]*inventory.Inventory, len(owned))
	for key, snapshot := range owned {
		inv, err := rebuild(ctx, r.itemFactory, snapshot)
		if err != nil {
			return nil, err
		}
		result[key] = inv
	}

	return result, nil
}

// Delete removes the stored inventory
func (r *InMemoryRepository) Delete(ctx context.Context, ownerID, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned, ok := r.data[ownerID]
	if !ok {
		return engerr.NotFoundf("inventory '%s/%s' not found", ownerID, key)
	}
	if _, ok := owned[key]; !ok {
		return engerr.NotFoundf("inventory '%s/%s' not found", ownerID, key)
	}

	delete(owned, key)
	return nil
}

// ListKeys returns the keys stored for the owner
func (r *InMemoryRepository) ListKeys(ctx context.Context, ownerID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.data[ownerID]))
	for key := range r.data[ownerID] {
		keys = append(keys, key)
	}
	return keys, nil
}

// rebuild turns a snapshot back into an inventory through the item factory
func rebuild(ctx context.Context, factory itemservice.Service, snapshot Data) (*inventory.Inventory, error) {
	inv := inventory.New(snapshot.Capacity, snapshot.Gold)

	items := make([]itemdomain.Item, 0, len(snapshot.Items))
	for _, rec := range snapshot.Items {
		it, err := factory.Rehydrate(ctx, rec)
		if err != nil {
			return nil, engerr.Wrapf(err, "failed to rehydrate item '%s'", rec.ID)
		}
		items = append(items, it)
	}
	inv.LoadSlots(items)

	return inv, nil
}
