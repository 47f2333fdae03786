package shared

// ItemType tags the concrete item variant
type ItemType string

const (
	ItemTypeEquipment  ItemType = "equipment"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeMaterial   ItemType = "material"
)

// IsValid reports whether the type is a known variant
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeEquipment, ItemTypeConsumable, ItemTypeMaterial:
		return true
	}
	return false
}

// EffectType describes how a consumable applies its effect
type EffectType string

const (
	EffectImmediate EffectType = "immediate"
	EffectOvertime  EffectType = "overtime"
	EffectSpecial   EffectType = "special"
)

// EffectAttribute describes what a consumable effect targets
type EffectAttribute string

const (
	EffectAttributeHeal   EffectAttribute = "heal"
	EffectAttributeDamage EffectAttribute = "damage"
	EffectAttributeBuff   EffectAttribute = "buff"
)
