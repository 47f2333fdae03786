package shared

// EquipSlot is one of the five fixed equip positions
type EquipSlot string

const (
	SlotWeapon   EquipSlot = "weapon"
	SlotArmor    EquipSlot = "armor"
	SlotShoes    EquipSlot = "shoes"
	SlotRing     EquipSlot = "ring"
	SlotNecklace EquipSlot = "necklace"
)

// AllEquipSlots returns the five equip slots in declaration order
func AllEquipSlots() []EquipSlot {
	return []EquipSlot{SlotWeapon, SlotArmor, SlotShoes, SlotRing, SlotNecklace}
}

// IsValid reports whether the slot is one of the five equip positions
func (s EquipSlot) IsValid() bool {
	switch s {
	case SlotWeapon, SlotArmor, SlotShoes, SlotRing, SlotNecklace:
		return true
	}
	return false
}
