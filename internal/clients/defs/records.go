package defs

import (
	"github.com/emberforge/arpg-engine/internal/domain/shared"
)

// EquipmentRecord is the immutable template for an equipment item.
// Records are supplied already parsed; this client only validates and
// serves them.
type EquipmentRecord struct {
	ID               string                       `json:"id" validate:"required"`
	Name             string                       `json:"name" validate:"required"`
	Description      string                       `json:"description"`
	Type             shared.ItemType              `json:"type"`
	Icon             string                       `json:"icon"`
	Value            int                          `json:"value" validate:"min=0"`
	LevelRequirement int                          `json:"level_requirement" validate:"min=0"`
	BonusStats       map[shared.StatKind]float64  `json:"bonus_stats"`
	EnhanceLimit     int                          `json:"enhance_limit" validate:"min=0"`
	Slot             shared.EquipSlot             `json:"slot"`
	Range            shared.AttackRange           `json:"range,omitempty"`
	AttackSpeed      float64                      `json:"attack_speed" validate:"min=0"`
	Rarity           shared.Rarity                `json:"rarity"`
}

// ConsumableRecord is the immutable template for a consumable item
type ConsumableRecord struct {
	ID          string                 `json:"id" validate:"required"`
	Name        string                 `json:"name" validate:"required"`
	Description string                 `json:"description"`
	Type        shared.ItemType        `json:"type"`
	Icon        string                 `json:"icon"`
	Stackable   bool                   `json:"stackable"`
	Value       int                    `json:"value" validate:"min=0"`
	EffectType  shared.EffectType      `json:"effect_type"`
	EffectValue float64                `json:"effect_value"`
	Duration    float64                `json:"duration,omitempty"`
	Attribute   shared.EffectAttribute `json:"attribute,omitempty"`
}

// MaterialRecord is the immutable template for a crafting material
type MaterialRecord struct {
	ID          string          `json:"id" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Type        shared.ItemType `json:"type"`
	Icon        string          `json:"icon"`
	Stackable   bool            `json:"stackable"`
	Value       int             `json:"value" validate:"min=0"`
}

// MonsterRecord is boundary-only data for a monster template. The engine
// serves these to combat/AI consumers but never interprets them.
type MonsterRecord struct {
	ID          string                      `json:"id" validate:"required"`
	Name        string                      `json:"name" validate:"required"`
	Level       int                         `json:"level" validate:"min=1"`
	Stats       map[shared.StatKind]float64 `json:"stats"`
	DropItemIDs []string                    `json:"drop_item_ids"`
	GoldMin     int                         `json:"gold_min" validate:"min=0"`
	GoldMax     int                         `json:"gold_max" validate:"min=0"`
}

func copyStats(stats map[shared.StatKind]float64) map[shared.StatKind]float64 {
	if stats == nil {
		return nil
	}
	copied := make(map[shared.StatKind]float64, len(stats))
	for k, v := range stats {
		copied[k] = v
	}
	return copied
}

// Clone returns an independent copy of the record
func (r EquipmentRecord) Clone() EquipmentRecord {
	clone := r
	clone.BonusStats = copyStats(r.BonusStats)
	return clone
}

// Clone returns an independent copy of the record
func (r MonsterRecord) Clone() MonsterRecord {
	clone := r
	clone.Stats = copyStats(r.Stats)
	clone.DropItemIDs = append([]string(nil), r.DropItemIDs...)
	return clone
}
