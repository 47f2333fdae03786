package inventory

import (
	"github.com/emberforge/arpg-engine/internal/domain/item"
)

// LoadSlots installs rehydrated items as the slot list, preserving slot
// layout exactly as persisted. Anything beyond capacity is dropped. No
// events fire; rehydration is not a mutation of live state.
func (inv *Inventory) LoadSlots(items []item.Item) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	inv.slots = inv.slots[:0]
	for _, it := range items {
		if it == nil || it.Quantity() == 0 {
			continue
		}
		if len(inv.slots) >= inv.capacity {
			break
		}
		inv.slots = append(inv.slots, it)
	}
}
