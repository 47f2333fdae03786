package character

import (
	"sync"

	"github.com/emberforge/arpg-engine/internal/domain/item"
	"github.com/emberforge/arpg-engine/internal/domain/shared"
	"github.com/emberforge/arpg-engine/internal/events"
)

// SlotManager tracks at most one equipped item per slot and keeps the
// attached ledger's overlay in sync. It is owned one-per-character and
// never shared.
type SlotManager struct {
	mu sync.Mutex

	slots       map[shared.EquipSlot]*item.Equipment
	ledger      *StatsLedger
	weaponClass shared.WeaponClass
	dispatcher  *events.Dispatcher
}

// NewSlotManager creates an empty slot manager bound to a ledger. The
// ledger is required; the dispatcher is optional.
func NewSlotManager(ledger *StatsLedger, dispatcher *events.Dispatcher) *SlotManager {
	if ledger == nil {
		panic("slot manager requires a stats ledger")
	}

	return &SlotManager{
		slots:       make(map[shared.EquipSlot]*item.Equipment),
		ledger:      ledger,
		weaponClass: shared.WeaponClassAny,
		dispatcher:  dispatcher,
	}
}

// CanEquip reports whether a character of the given level may wear the
// equipment
func (m *SlotManager) CanEquip(eq *item.Equipment, level int) bool {
	if eq == nil {
		return false
	}
	return level >= eq.LevelRequirement()
}

// Equip installs the equipment into its slot, vacating any current
// occupant first, and returns the previous occupant (nil if the slot was
// empty). Stats are fully recalculated.
func (m *SlotManager) Equip(eq *item.Equipment) (*item.Equipment, bool) {
	if eq == nil || !eq.Slot().IsValid() {
		return nil, false
	}

	m.mu.Lock()

	slot := eq.Slot()
	previous := m.slots[slot]
	m.slots[slot] = eq

	if slot == shared.SlotWeapon {
		m.weaponClass = shared.ClassForRange(eq.Range())
	}

	m.recalculateLocked()
	dispatcher := m.dispatcher
	m.mu.Unlock()

	if dispatcher != nil {
		dispatcher.Emit(events.Event{
			Type:       events.TypeEquip,
			ItemID:     eq.ID(),
			InstanceID: eq.InstanceID(),
			Slot:       slot,
		})
	}

	return previous, true
}

// Unequip vacates the slot and returns the previous occupant, or nil when
// the slot was already empty. Stats are fully recalculated.
func (m *SlotManager) Unequip(slot shared.EquipSlot) *item.Equipment {
	if !slot.IsValid() {
		return nil
	}

	m.mu.Lock()

	previous := m.slots[slot]
	if previous == nil {
		m.mu.Unlock()
		return nil
	}

	delete(m.slots, slot)

	if slot == shared.SlotWeapon {
		m.weaponClass = shared.WeaponClassAny
	}

	m.recalculateLocked()
	dispatcher := m.dispatcher
	m.mu.Unlock()

	if dispatcher != nil {
		dispatcher.Emit(events.Event{
			Type:       events.TypeUnequip,
			ItemID:     previous.ID(),
			InstanceID: previous.InstanceID(),
			Slot:       slot,
		})
	}

	return previous
}

// Equipped returns the occupant of a slot, or nil
func (m *SlotManager) Equipped(slot shared.EquipSlot) *item.Equipment {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slots[slot]
}

// AllEquipped returns a copy of the slot map
func (m *SlotManager) AllEquipped() map[shared.EquipSlot]*item.Equipment {
	m.mu.Lock()
	defer m.mu.Unlock()

	equipped := make(map[shared.EquipSlot]*item.Equipment, len(m.slots))
	for slot, eq := range m.slots {
		equipped[slot] = eq
	}
	return equipped
}

// CurrentWeaponClass returns the cached combat classification of the
// weapon slot
func (m *SlotManager) CurrentWeaponClass() shared.WeaponClass {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.weaponClass
}

// RecalculateStats rebuilds the ledger overlay from the slot map. The slot
// map is the single source of truth; there is no incremental bookkeeping
// to drift.
func (m *SlotManager) RecalculateStats() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recalculateLocked()
}

func (m *SlotManager) recalculateLocked() {
	bonuses := make(map[shared.StatKind]float64)
	for _, eq := range m.slots {
		for kind, v := range eq.BonusStats() {
			bonuses[kind] += v
		}
	}
	m.ledger.SetEquipmentBonuses(bonuses)
}
