package inventory

import (
	"sync"

	"github.com/emberforge/arpg-engine/internal/domain/item"
	"github.com/emberforge/arpg-engine/internal/events"
)

// Inventory is a capacity-bounded container of item slots plus a gold
// balance. A slot holds either one stack of a stackable item or a single
// non-stackable unit. Every mutation that changes composition notifies
// registered listeners synchronously before the call returns.
type Inventory struct {
	mu sync.Mutex

	slots      []item.Item
	capacity   int
	gold       int
	dispatcher *events.Dispatcher
}

// New creates an inventory with a fixed slot capacity and starting gold
func New(capacity, gold int) *Inventory {
	if capacity < 1 {
		capacity = 1
	}
	if gold < 0 {
		gold = 0
	}

	return &Inventory{
		capacity:   capacity,
		gold:       gold,
		dispatcher: events.NewDispatcher(),
	}
}

// OnChange registers a change listener. Listeners run synchronously, in
// registration order, and a panicking listener does not block the rest.
func (inv *Inventory) OnChange(listener events.Listener) {
	inv.dispatcher.Register(listener)
}

// Capacity returns the slot capacity
func (inv *Inventory) Capacity() int {
	return inv.capacity
}

// Gold returns the current gold balance
func (inv *Inventory) Gold() int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.gold
}

// UsedSlots returns the number of occupied slots
func (inv *Inventory) UsedSlots() int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return len(inv.slots)
}

// FreeSlots returns the number of unoccupied slots
func (inv *Inventory) FreeSlots() int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.capacity - len(inv.slots)
}

// Items returns a copy of the slot list. The items themselves are live
// references; callers treat them read-only.
func (inv *Inventory) Items() []item.Item {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	items := make([]item.Item, len(inv.slots))
	copy(items, inv.slots)
	return items
}

// ItemAt returns the slot at index, or nil when out of range
func (inv *Inventory) ItemAt(index int) item.Item {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if index < 0 || index >= len(inv.slots) {
		return nil
	}
	return inv.slots[index]
}

// IndexOf returns the slot index of the exact instance, or -1
func (inv *Inventory) IndexOf(instance item.Item) int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.indexOfLocked(instance)
}

func (inv *Inventory) indexOfLocked(instance item.Item) int {
	for i, slot := range inv.slots {
		if slot == instance {
			return i
		}
	}
	return -1
}

// TotalQuantityOf sums quantities across every slot holding the template id
func (inv *Inventory) TotalQuantityOf(id string) int {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	total := 0
	for _, slot := range inv.slots {
		if slot.ID() == id {
			total += slot.Quantity()
		}
	}
	return total
}

// Records returns the persistence shape of every occupied slot
func (inv *Inventory) Records() []item.Record {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	records := make([]item.Record, len(inv.slots))
	for i, slot := range inv.slots {
		records[i] = slot.Record()
	}
	return records
}

// CanAddItem reports whether the full quantity would fit: a stackable item
// fits when a mergeable stack exists or one slot is free; a non-stackable
// item needs qty free slots.
func (inv *Inventory) CanAddItem(it item.Item, qty int) bool {
	if it == nil || qty <= 0 {
		return false
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	free := inv.capacity - len(inv.slots)

	if it.Stackable() {
		for _, slot := range inv.slots {
			if slot.ID() == it.ID() && slot.Quantity() < item.MaxStack {
				return true
			}
		}
		return free >= 1
	}

	return free >= qty
}

// AddItem places the item. Stackable items merge into the first stack of
// the same id with room, clamping at the stack cap; otherwise a new slot
// opens. Non-stackable items occupy one slot per unit and place as many
// units as fit: the call succeeds when at least one unit landed, and a
// Full event reports any truncation.
func (inv *Inventory) AddItem(it item.Item, qty int) bool {
	if it == nil || qty <= 0 {
		return false
	}

	inv.mu.Lock()

	var emitted []events.Event
	ok := false

	if it.Stackable() {
		ok, emitted = inv.addStackableLocked(it, qty)
	} else {
		ok, emitted = inv.addUnitsLocked(it, qty)
	}

	inv.mu.Unlock()

	for _, ev := range emitted {
		inv.dispatcher.Emit(ev)
	}
	return ok
}

func (inv *Inventory) addStackableLocked(it item.Item, qty int) (bool, []events.Event) {
	for _, slot := range inv.slots {
		if slot.ID() == it.ID() && slot.Quantity() < item.MaxStack {
			slot.SetQuantity(slot.Quantity() + qty)
			return true, []events.Event{{
				Type:     events.TypeAdd,
				ItemID:   it.ID(),
				Quantity: qty,
			}}
		}
	}

	if len(inv.slots) >= inv.capacity {
		return false, []events.Event{{
			Type:   events.TypeFull,
			ItemID: it.ID(),
		}}
	}

	unit := it.Clone()
	unit.SetQuantity(qty)
	inv.slots = append(inv.slots, unit)

	return true, []events.Event{{
		Type:     events.TypeAdd,
		ItemID:   it.ID(),
		Quantity: qty,
	}}
}

func (inv *Inventory) addUnitsLocked(it item.Item, qty int) (bool, []events.Event) {
	placed := 0
	for i := 0; i < qty; i++ {
		if len(inv.slots) >= inv.capacity {
			break
		}
		unit := it.Clone()
		unit.SetQuantity(1)
		inv.slots = append(inv.slots, unit)
		placed++
	}

	var emitted []events.Event
	if placed > 0 {
		emitted = append(emitted, events.Event{
			Type:     events.TypeAdd,
			ItemID:   it.ID(),
			Quantity: placed,
		})
	}
	if placed < qty {
		emitted = append(emitted, events.Event{
			Type:   events.TypeFull,
			ItemID: it.ID(),
		})
	}

	return placed > 0, emitted
}

// RemoveItemAt removes qty from the slot at index. The slot is deleted
// when it empties; asking for more than the slot holds is a no-op.
func (inv *Inventory) RemoveItemAt(index, qty int) bool {
	inv.mu.Lock()

	ok, ev := inv.removeAtLocked(index, qty)

	inv.mu.Unlock()

	if ok {
		inv.dispatcher.Emit(ev)
	}
	return ok
}

func (inv *Inventory) removeAtLocked(index, qty int) (bool, events.Event) {
	if index < 0 || index >= len(inv.slots) || qty <= 0 {
		return false, events.Event{}
	}

	slot := inv.slots[index]
	have := slot.Quantity()
	if qty > have {
		return false, events.Event{}
	}

	if qty < have {
		slot.SetQuantity(have - qty)
	} else {
		inv.slots = append(inv.slots[:index], inv.slots[index+1:]...)
	}

	return true, events.Event{
		Type:       events.TypeRemove,
		ItemID:     slot.ID(),
		InstanceID: slot.InstanceID(),
		Quantity:   qty,
	}
}

// RemoveItem removes qty from the slot holding the exact instance
func (inv *Inventory) RemoveItem(instance item.Item, qty int) bool {
	inv.mu.Lock()

	index := inv.indexOfLocked(instance)
	ok, ev := inv.removeAtLocked(index, qty)

	inv.mu.Unlock()

	if ok {
		inv.dispatcher.Emit(ev)
	}
	return ok
}

// RemoveItemByID removes qty of a template id, aggregating across every
// slot that holds it. Matches are consumed from the end of the match list
// backward so earlier indices stay stable mid-operation. Holding less
// than qty in total is a no-op.
func (inv *Inventory) RemoveItemByID(id string, qty int) bool {
	if qty <= 0 {
		return false
	}

	inv.mu.Lock()

	var matches []int
	total := 0
	for i, slot := range inv.slots {
		if slot.ID() == id {
			matches = append(matches, i)
			total += slot.Quantity()
		}
	}

	if total < qty {
		inv.mu.Unlock()
		return false
	}

	remaining := qty
	for i := len(matches) - 1; i >= 0 && remaining > 0; i-- {
		index := matches[i]
		slot := inv.slots[index]
		take := slot.Quantity()
		if take > remaining {
			take = remaining
		}

		if take < slot.Quantity() {
			slot.SetQuantity(slot.Quantity() - take)
		} else {
			inv.slots = append(inv.slots[:index], inv.slots[index+1:]...)
		}
		remaining -= take
	}

	inv.mu.Unlock()

	inv.dispatcher.Emit(events.Event{
		Type:     events.TypeRemove,
		ItemID:   id,
		Quantity: qty,
	})
	return true
}

// UseItemAt delegates to the item's Use. A slot that empties on success is
// deleted.
func (inv *Inventory) UseItemAt(index int) bool {
	inv.mu.Lock()

	if index < 0 || index >= len(inv.slots) {
		inv.mu.Unlock()
		return false
	}

	slot := inv.slots[index]
	if !slot.Use() {
		inv.mu.Unlock()
		return false
	}

	if slot.Quantity() == 0 {
		inv.slots = append(inv.slots[:index], inv.slots[index+1:]...)
	}

	inv.mu.Unlock()

	inv.dispatcher.Emit(events.Event{
		Type:       events.TypeUse,
		ItemID:     slot.ID(),
		InstanceID: slot.InstanceID(),
		Quantity:   slot.Quantity(),
	})
	return true
}

// AddGold credits the balance; non-positive amounts are ignored
func (inv *Inventory) AddGold(amount int) int {
	inv.mu.Lock()

	if amount <= 0 {
		balance := inv.gold
		inv.mu.Unlock()
		return balance
	}

	inv.gold += amount
	balance := inv.gold

	inv.mu.Unlock()

	inv.dispatcher.Emit(events.Event{
		Type: events.TypeGoldChange,
		Gold: balance,
	})
	return balance
}

// RemoveGold debits the balance. An insufficient balance is a no-op that
// returns the unchanged amount.
func (inv *Inventory) RemoveGold(amount int) int {
	inv.mu.Lock()

	if amount <= 0 || amount > inv.gold {
		balance := inv.gold
		inv.mu.Unlock()
		return balance
	}

	inv.gold -= amount
	balance := inv.gold

	inv.mu.Unlock()

	inv.dispatcher.Emit(events.Event{
		Type: events.TypeGoldChange,
		Gold: balance,
	})
	return balance
}
