package inventory

import (
	"github.com/emberforge/arpg-engine/internal/domain/item"
	"github.com/emberforge/arpg-engine/internal/events"
)

// Transfer primitives used by the orchestrator. Unlike AddItem, which
// clamps a merged stack at the cap, these place everything or nothing, so
// a cross-container move can never shed quantity.

// RoomFor returns how many units of the template could be placed without
// loss: remaining stack headroom plus free slots for stackables, free
// slots for unit items.
func (inv *Inventory) RoomFor(it item.Item) int {
	if it == nil {
		return 0
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.roomForLocked(it)
}

func (inv *Inventory) roomForLocked(it item.Item) int {
	free := inv.capacity - len(inv.slots)
	if !it.Stackable() {
		return free
	}

	room := free * item.MaxStack
	for _, slot := range inv.slots {
		if slot.ID() == it.ID() {
			room += item.MaxStack - slot.Quantity()
		}
	}
	return room
}

// AddItemAll places exactly qty units or nothing. Stackable quantity is
// distributed across existing stacks first, then into new slots. Returns
// false (with a Full event) when the full quantity cannot fit.
func (inv *Inventory) AddItemAll(it item.Item, qty int) bool {
	if it == nil || qty <= 0 {
		return false
	}

	inv.mu.Lock()

	if inv.roomForLocked(it) < qty {
		inv.mu.Unlock()
		inv.dispatcher.Emit(events.Event{
			Type:   events.TypeFull,
			ItemID: it.ID(),
		})
		return false
	}

	if it.Stackable() {
		remaining := qty
		for _, slot := range inv.slots {
			if remaining == 0 {
				break
			}
			if slot.ID() != it.ID() || slot.Quantity() >= item.MaxStack {
				continue
			}
			take := item.MaxStack - slot.Quantity()
			if take > remaining {
				take = remaining
			}
			slot.SetQuantity(slot.Quantity() + take)
			remaining -= take
		}
		for remaining > 0 {
			take := remaining
			if take > item.MaxStack {
				take = item.MaxStack
			}
			unit := it.Clone()
			unit.SetQuantity(take)
			inv.slots = append(inv.slots, unit)
			remaining -= take
		}
	} else {
		for i := 0; i < qty; i++ {
			unit := it.Clone()
			unit.SetQuantity(1)
			inv.slots = append(inv.slots, unit)
		}
	}

	inv.mu.Unlock()

	inv.dispatcher.Emit(events.Event{
		Type:     events.TypeAdd,
		ItemID:   it.ID(),
		Quantity: qty,
	})
	return true
}

// InsertSlot appends the exact instance as its own slot, without merging
// or cloning. Used where instance identity must survive, such as moving a
// piece of equipment between the player inventory and an equip slot.
func (inv *Inventory) InsertSlot(it item.Item) bool {
	if it == nil || it.Quantity() == 0 {
		return false
	}

	inv.mu.Lock()

	if len(inv.slots) >= inv.capacity {
		inv.mu.Unlock()
		inv.dispatcher.Emit(events.Event{
			Type:   events.TypeFull,
			ItemID: it.ID(),
		})
		return false
	}

	inv.slots = append(inv.slots, it)
	inv.mu.Unlock()

	inv.dispatcher.Emit(events.Event{
		Type:       events.TypeAdd,
		ItemID:     it.ID(),
		InstanceID: it.InstanceID(),
		Quantity:   it.Quantity(),
	})
	return true
}

// SwapSlots exchanges the slots at the two indexes in place. The layout
// changes but the composition does not, so no event is emitted. Returns
// false when either index is out of range, leaving the slots untouched.
func (inv *Inventory) SwapSlots(i, j int) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if i < 0 || j < 0 || i >= len(inv.slots) || j >= len(inv.slots) {
		return false
	}

	inv.slots[i], inv.slots[j] = inv.slots[j], inv.slots[i]
	return true
}

// TakeAt removes and returns the whole slot at index, preserving the
// instance. Returns nil when the index is out of range.
func (inv *Inventory) TakeAt(index int) item.Item {
	inv.mu.Lock()

	if index < 0 || index >= len(inv.slots) {
		inv.mu.Unlock()
		return nil
	}

	slot := inv.slots[index]
	inv.slots = append(inv.slots[:index], inv.slots[index+1:]...)
	inv.mu.Unlock()

	inv.dispatcher.Emit(events.Event{
		Type:       events.TypeRemove,
		ItemID:     slot.ID(),
		InstanceID: slot.InstanceID(),
		Quantity:   slot.Quantity(),
	})
	return slot
}
