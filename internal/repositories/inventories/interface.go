package inventories

//go:generate mockgen -destination=mock/mock.go -package=mockinventories -source=interface.go

import (
	"context"

	"github.com/emberforge/arpg-engine/internal/domain/item"
	"github.com/emberforge/arpg-engine/internal/inventory"
)

// Data is the persisted shape of an inventory. Capacity and gold round-trip
// exactly; items round-trip as {id, quantity, type} triples and are rebuilt
// into instances by the item factory.
type Data struct {
	Capacity int           `json:"capacity"`
	Gold     int           `json:"gold"`
	Items    []item.Record `json:"items"`
}

// Repository defines the interface for inventory persistence. Inventories
// are keyed by owner (character/session id) and a caller-chosen key such
// as "player" or "storage".
type Repository interface {
	// Save persists the inventory under owner and key
	Save(ctx context.Context, ownerID, key string, inv *inventory.Inventory) error

	// Load rebuilds the inventory stored under owner and key
	Load(ctx context.Context, ownerID, key string) (*inventory.Inventory, error)

	// LoadAll rebuilds every inventory stored for the owner, keyed by key
	LoadAll(ctx context.Context, ownerID string) (map[string]*inventory.Inventory, error)

	// Delete removes the inventory stored under owner and key
	Delete(ctx context.Context, ownerID, key string) error

	// ListKeys returns the keys stored for the owner
	ListKeys(ctx context.Context, ownerID string) ([]string, error)
}

// Snapshot captures an inventory into its persisted shape
func Snapshot(inv *inventory.Inventory) Data {
	return Data{
		Capacity: inv.Capacity(),
		Gold:     inv.Gold(),
		Items:    inv.Records(),
	}
}
