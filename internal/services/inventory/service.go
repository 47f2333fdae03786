package inventory

//go:generate mockgen -destination=mock/mock_service.go -package=mockinventory -source=service.go

import (
	"context"
	"sync"

	"github.com/emberforge/arpg-engine/internal/domain/character"
	itemdomain "github.com/emberforge/arpg-engine/internal/domain/item"
	"github.com/emberforge/arpg-engine/internal/domain/shared"
	engerr "github.com/emberforge/arpg-engine/internal/errors"
	invdomain "github.com/emberforge/arpg-engine/internal/inventory"
	"github.com/emberforge/arpg-engine/internal/metrics"
	"github.com/emberforge/arpg-engine/internal/repositories/inventories"
	itemservice "github.com/emberforge/arpg-engine/internal/services/item"
	"github.com/emberforge/arpg-engine/internal/uuid"
)

// Default container sizes
const (
	DefaultPlayerCapacity  = 30
	DefaultStorageCapacity = 50
)

// Persistence keys for the canonical containers
const (
	KeyPlayer  = "player"
	KeyStorage = "storage"
)

// Service orchestrates the canonical player and storage inventories, any
// transient inventories (shops, loot drops, trade sessions), and the
// equip/unequip transactions against the character's slot manager. It is
// the sole mutator of the canonical containers. Every multi-step
// operation rolls back fully on failure; no item may vanish.
type Service interface {
	// Player returns the canonical player inventory, recreating it if absent
	Player() *invdomain.Inventory

	// Storage returns the canonical storage inventory
	Storage() *invdomain.Inventory

	// CreateTransient registers a transient inventory under the id (a
	// fresh id is generated when empty) and returns the id and container
	CreateTransient(id string, capacity, gold int) (string, *invdomain.Inventory)

	// Transient returns the transient inventory for the id, or nil
	Transient(id string) *invdomain.Inventory

	// DisposeTransient drops the transient inventory
	DisposeTransient(id string)

	// GrantItem creates qty of the catalog item and adds it to the player
	// inventory, all or nothing
	GrantItem(ctx context.Context, id string, qty int) (itemdomain.Item, error)

	// MoveItem moves qty of the exact instance from src to dst
	MoveItem(src, dst *invdomain.Inventory, instance itemdomain.Item, qty int) error

	// MoveItemByID moves qty of a template id from src to dst
	MoveItemByID(src, dst *invdomain.Inventory, id string, qty int) error

	// SwapItems exchanges the slots at the two indexes between containers
	SwapItems(a *invdomain.Inventory, indexA int, b *invdomain.Inventory, indexB int) error

	// EquipItem equips the exact instance held in the player inventory
	EquipItem(eq *itemdomain.Equipment) error

	// EquipItemAt equips the equipment held at the player inventory index
	EquipItemAt(index int) error

	// UnequipItem vacates the slot back into the player inventory
	UnequipItem(slot shared.EquipSlot) error

	// Gold returns the player inventory's gold balance
	Gold() int

	// AddGold credits the player inventory and returns the new balance
	AddGold(amount int) int

	// RemoveGold debits the player inventory; insufficient funds leave
	// the balance unchanged
	RemoveGold(amount int) int

	// SlotManager exposes the character's equipment slots (read-only use)
	SlotManager() *character.SlotManager

	// Ledger exposes the character's stats ledger (read-only use)
	Ledger() *character.StatsLedger

	// Save persists the canonical inventories
	Save(ctx context.Context) error

	// Load restores the canonical inventories; missing records keep the
	// current containers
	Load(ctx context.Context) error
}

// service implements the Service interface
type service struct {
	mu sync.Mutex

	ownerID string

	player     *invdomain.Inventory
	storage    *invdomain.Inventory
	transients map[string]*invdomain.Inventory

	slots  *character.SlotManager
	ledger *character.StatsLedger

	itemFactory   itemservice.Service
	repository    inventories.Repository
	uuidGenerator uuid.Generator

	playerCapacity  int
	storageCapacity int
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	OwnerID     string                   // Required
	Ledger      *character.StatsLedger   // Required
	SlotManager *character.SlotManager   // Required
	ItemFactory itemservice.Service      // Required
	Repository  inventories.Repository   // Optional; Save/Load become no-ops
	UUID        uuid.Generator           // Optional

	PlayerCapacity  int // Optional, defaults to DefaultPlayerCapacity
	StorageCapacity int // Optional, defaults to DefaultStorageCapacity
	StartingGold    int // Optional
}

// NewService creates a new inventory orchestrator
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.OwnerID == "" {
		panic("owner ID is required")
	}
	if cfg.Ledger == nil {
		panic("stats ledger is required")
	}
	if cfg.SlotManager == nil {
		panic("slot manager is required")
	}
	if cfg.ItemFactory == nil {
		panic("item factory is required")
	}

	playerCapacity := cfg.PlayerCapacity
	if playerCapacity <= 0 {
		playerCapacity = DefaultPlayerCapacity
	}
	storageCapacity := cfg.StorageCapacity
	if storageCapacity <= 0 {
		storageCapacity = DefaultStorageCapacity
	}

	svc := &service{
		ownerID:         cfg.OwnerID,
		player:          invdomain.New(playerCapacity, cfg.StartingGold),
		storage:         invdomain.New(storageCapacity, 0),
		transients:      make(map[string]*invdomain.Inventory),
		slots:           cfg.SlotManager,
		ledger:          cfg.Ledger,
		itemFactory:     cfg.ItemFactory,
		repository:      cfg.Repository,
		uuidGenerator:   cfg.UUID,
		playerCapacity:  playerCapacity,
		storageCapacity: storageCapacity,
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewRandomGenerator()
	}

	return svc
}

// Player returns the canonical player inventory, recreating it if absent
func (s *service) Player() *invdomain.Inventory {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.player == nil {
		s.player = invdomain.New(s.playerCapacity, 0)
	}
	return s.player
}

// Storage returns the canonical storage inventory
func (s *service) Storage() *invdomain.Inventory {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.storage == nil {
		s.storage = invdomain.New(s.storageCapacity, 0)
	}
	return s.storage
}

// CreateTransient registers a transient inventory
func (s *service) CreateTransient(id string, capacity, gold int) (string, *invdomain.Inventory) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		id = s.uuidGenerator.New()
	}

	inv := invdomain.New(capacity, gold)
	s.transients[id] = inv
	return id, inv
}

// Transient returns the transient inventory for the id, or nil
func (s *service) Transient(id string) *invdomain.Inventory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transients[id]
}

// DisposeTransient drops the transient inventory
func (s *service) DisposeTransient(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.transients, id)
}

// GrantItem creates qty of the catalog item and adds it to the player
// inventory
func (s *service) GrantItem(ctx context.Context, id string, qty int) (itemdomain.Item, error) {
	if id == "" || qty <= 0 {
		return nil, engerr.InvalidArgument("an id and a positive quantity are required")
	}

	it, err := s.itemFactory.CreateItem(ctx, id, qty)
	if err != nil {
		return nil, engerr.Wrapf(err, "failed to create item '%s'", id)
	}

	// A single non-stackable unit goes in as its own instance so the
	// caller's reference is the one the inventory holds
	if !it.Stackable() && qty == 1 {
		if !s.Player().InsertSlot(it) {
			return nil, engerr.CapacityExceededf("player inventory cannot fit '%s'", id)
		}
	} else if !s.Player().AddItemAll(it, qty) {
		return nil, engerr.CapacityExceededf("player inventory cannot fit %d of '%s'", qty, id)
	}

	metrics.InventoryMutations.WithLabelValues("grant").Inc()
	return it, nil
}

// MoveItem moves qty of the exact instance from src to dst using
// remove-then-add with rollback: a failed destination add restores the
// removed quantity to the source before the error is reported.
func (s *service) MoveItem(src, dst *invdomain.Inventory, instance itemdomain.Item, qty int) error {
	if src == nil || dst == nil {
		return engerr.InvalidArgument("source and destination are required")
	}
	if instance == nil || qty <= 0 {
		return engerr.InvalidArgument("an instance and a positive quantity are required")
	}
	if src == dst {
		return nil
	}

	// A single non-stackable unit keeps its exact instance across the
	// move; enhanced equipment must not come out the other side as a copy.
	if !instance.Stackable() && qty == 1 {
		index := src.IndexOf(instance)
		if index < 0 {
			metrics.Transfers.WithLabelValues("failed").Inc()
			return engerr.NotFoundf("item '%s' not found in source", instance.ID())
		}
		taken := src.TakeAt(index)
		if !dst.InsertSlot(taken) {
			src.InsertSlot(taken)
			metrics.Transfers.WithLabelValues("rolled_back").Inc()
			return engerr.CapacityExceededf("destination cannot fit '%s'", instance.ID())
		}
		metrics.Transfers.WithLabelValues("ok").Inc()
		return nil
	}

	if !src.RemoveItem(instance, qty) {
		metrics.Transfers.WithLabelValues("failed").Inc()
		return engerr.NotFoundf("item '%s' with quantity %d not found in source", instance.ID(), qty)
	}

	if !dst.AddItemAll(instance, qty) {
		// Restore before reporting; the item must not vanish
		src.AddItemAll(instance, qty)
		metrics.Transfers.WithLabelValues("rolled_back").Inc()
		return engerr.CapacityExceededf("destination cannot fit %d of '%s'", qty, instance.ID())
	}

	metrics.Transfers.WithLabelValues("ok").Inc()
	return nil
}

// MoveItemByID moves qty of a template id from src to dst with the same
// rollback discipline
func (s *service) MoveItemByID(src, dst *invdomain.Inventory, id string, qty int) error {
	if src == nil || dst == nil {
		return engerr.InvalidArgument("source and destination are required")
	}
	if id == "" || qty <= 0 {
		return engerr.InvalidArgument("an id and a positive quantity are required")
	}
	if src == dst {
		return nil
	}

	template := findByID(src, id)
	if template == nil || src.TotalQuantityOf(id) < qty {
		metrics.Transfers.WithLabelValues("failed").Inc()
		return engerr.NotFoundf("source does not hold %d of '%s'", qty, id)
	}

	// Unit items carry per-instance state (enhancements), so they move as
	// the exact instances rather than through the cloning add path.
	if !template.Stackable() {
		return s.moveUnitsByID(src, dst, id, qty)
	}

	if !src.RemoveItemByID(id, qty) {
		metrics.Transfers.WithLabelValues("failed").Inc()
		return engerr.NotFoundf("source does not hold %d of '%s'", qty, id)
	}

	if !dst.AddItemAll(template, qty) {
		src.AddItemAll(template, qty)
		metrics.Transfers.WithLabelValues("rolled_back").Inc()
		return engerr.CapacityExceededf("destination cannot fit %d of '%s'", qty, id)
	}

	metrics.Transfers.WithLabelValues("ok").Inc()
	return nil
}

func lastIndexOfID(inv *invdomain.Inventory, id string) int {
	items := inv.Items()
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].ID() == id {
			return i
		}
	}
	return -1
}

// SwapItems exchanges the slots at the two indexes. Both sides roll back
// on any failure.
func (s *service) SwapItems(a *invdomain.Inventory, indexA int, b *invdomain.Inventory, indexB int) error {
	if a == nil || b == nil {
		return engerr.InvalidArgument("both containers are required")
	}
	if a == b {
		// A take would shift the layout and invalidate the second index,
		// so reorders within one container swap in place.
		if indexA == indexB {
			return nil
		}
		if !a.SwapSlots(indexA, indexB) {
			metrics.Transfers.WithLabelValues("failed").Inc()
			return engerr.NotFoundf("no items at indexes %d and %d", indexA, indexB)
		}
		metrics.Transfers.WithLabelValues("ok").Inc()
		return nil
	}

	itemA := a.TakeAt(indexA)
	if itemA == nil {
		metrics.Transfers.WithLabelValues("failed").Inc()
		return engerr.NotFoundf("no item at source index %d", indexA)
	}

	itemB := b.TakeAt(indexB)
	if itemB == nil {
		a.InsertSlot(itemA)
		metrics.Transfers.WithLabelValues("rolled_back").Inc()
		return engerr.NotFoundf("no item at destination index %d", indexB)
	}

	// Each side just freed exactly one slot, so the cross inserts cannot
	// fail for capacity; the guards below keep the rollback airtight anyway.
	if !b.InsertSlot(itemA) {
		a.InsertSlot(itemA)
		b.InsertSlot(itemB)
		metrics.Transfers.WithLabelValues("rolled_back").Inc()
		return engerr.CapacityExceeded("destination cannot accept the swapped item")
	}
	if !a.InsertSlot(itemB) {
		b.RemoveItem(itemA, itemA.Quantity())
		a.InsertSlot(itemA)
		b.InsertSlot(itemB)
		metrics.Transfers.WithLabelValues("rolled_back").Inc()
		return engerr.CapacityExceeded("source cannot accept the swapped item")
	}

	metrics.Transfers.WithLabelValues("ok").Inc()
	return nil
}

// EquipItem equips the exact instance after locating it in the player
// inventory.
func (s *service) EquipItem(eq *itemdomain.Equipment) error {
	if eq == nil {
		return engerr.InvalidArgument("equipment is required")
	}

	index := s.Player().IndexOf(eq)
	if index < 0 {
		return engerr.NotFoundf("equipment '%s' is not in the player inventory", eq.ID())
	}
	return s.EquipItemAt(index)
}

// EquipItemAt equips the equipment at the player inventory index. The
// unit leaves the inventory before installation and returns to it if the
// installation is rejected; a displaced occupant lands in the freed slot.
func (s *service) EquipItemAt(index int) error {
	player := s.Player()

	it := player.ItemAt(index)
	if it == nil {
		return engerr.NotFoundf("no item at index %d", index)
	}

	eq, ok := it.(*itemdomain.Equipment)
	if !ok {
		return engerr.InvalidArgumentf("item '%s' is not equipment", it.ID())
	}

	if !s.slots.CanEquip(eq, s.ledger.Level()) {
		return engerr.RequirementNotMetf("level %d required to equip '%s'", eq.LevelRequirement(), eq.ID())
	}

	if taken := player.TakeAt(index); taken == nil {
		return engerr.NotFoundf("no item at index %d", index)
	}

	previous, equipped := s.slots.Equip(eq)
	if !equipped {
		player.InsertSlot(eq)
		return engerr.InvalidArgumentf("equipment '%s' has no valid slot", eq.ID())
	}

	if previous != nil {
		// The equip just freed one inventory slot, so this cannot fail
		player.InsertSlot(previous)
	}

	metrics.InventoryMutations.WithLabelValues("equip").Inc()
	return nil
}

// UnequipItem vacates the slot into the player inventory. A full
// inventory re-installs the item into the slot and reports failure.
func (s *service) UnequipItem(slot shared.EquipSlot) error {
	player := s.Player()

	previous := s.slots.Unequip(slot)
	if previous == nil {
		return engerr.NotFoundf("slot '%s' is empty", slot)
	}

	if !player.InsertSlot(previous) {
		s.slots.Equip(previous)
		return engerr.CapacityExceeded("player inventory is full")
	}

	metrics.InventoryMutations.WithLabelValues("unequip").Inc()
	return nil
}

// Gold returns the player inventory's gold balance
func (s *service) Gold() int {
	return s.Player().Gold()
}

// AddGold credits the player inventory
func (s *service) AddGold(amount int) int {
	return s.Player().AddGold(amount)
}

// RemoveGold debits the player inventory
func (s *service) RemoveGold(amount int) int {
	return s.Player().RemoveGold(amount)
}

// SlotManager exposes the character's equipment slots
func (s *service) SlotManager() *character.SlotManager {
	return s.slots
}

// Ledger exposes the character's stats ledger
func (s *service) Ledger() *character.StatsLedger {
	return s.ledger
}

// Save persists the canonical inventories
func (s *service) Save(ctx context.Context) error {
	if s.repository == nil {
		return nil
	}

	if err := s.repository.Save(ctx, s.ownerID, KeyPlayer, s.Player()); err != nil {
		return engerr.Wrap(err, "failed to save player inventory")
	}
	if err := s.repository.Save(ctx, s.ownerID, KeyStorage, s.Storage()); err != nil {
		return engerr.Wrap(err, "failed to save storage inventory")
	}
	return nil
}

// Load restores the canonical inventories. A missing record keeps the
// current container.
func (s *service) Load(ctx context.Context) error {
	if s.repository == nil {
		return nil
	}

	player, err := s.repository.Load(ctx, s.ownerID, KeyPlayer)
	if err != nil && !engerr.IsNotFound(err) {
		return engerr.Wrap(err, "failed to load player inventory")
	}
	storage, err := s.repository.Load(ctx, s.ownerID, KeyStorage)
	if err != nil && !engerr.IsNotFound(err) {
		return engerr.Wrap(err, "failed to load storage inventory")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if player != nil {
		s.player = player
	}
	if storage != nil {
		s.storage = storage
	}
	return nil
}

// moveUnitsByID moves qty non-stackable units one instance at a time,
// back to front like RemoveItemByID. A rejected insert returns every
// already-moved unit to the source before reporting failure.
func (s *service) moveUnitsByID(src, dst *invdomain.Inventory, id string, qty int) error {
	moved := make([]itemdomain.Item, 0, qty)
	for len(moved) < qty {
		unit := src.TakeAt(lastIndexOfID(src, id))
		if unit == nil || !dst.InsertSlot(unit) {
			if unit != nil {
				src.InsertSlot(unit)
			}
			for _, prev := range moved {
				src.InsertSlot(dst.TakeAt(dst.IndexOf(prev)))
			}
			metrics.Transfers.WithLabelValues("rolled_back").Inc()
			return engerr.CapacityExceededf("destination cannot fit %d of '%s'", qty, id)
		}
		moved = append(moved, unit)
	}

	metrics.Transfers.WithLabelValues("ok").Inc()
	return nil
}

func findByID(inv *invdomain.Inventory, id string) itemdomain.Item {
	for _, it := range inv.Items() {
		if it.ID() == id {
			return it
		}
	}
	return nil
}
