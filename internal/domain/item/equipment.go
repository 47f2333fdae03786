package item

import (
	"github.com/google/uuid"

	"github.com/emberforge/arpg-engine/internal/clients/defs"
	"github.com/emberforge/arpg-engine/internal/domain/shared"
)

// enhancePercent is the per-enhancement bonus-stat growth for each rarity
var enhancePercent = map[shared.Rarity]float64{
	shared.RarityInferior:  0.04,
	shared.RarityCommon:    0.05,
	shared.RarityRare:      0.06,
	shared.RarityEpic:      0.08,
	shared.RarityLegendary: 0.10,
}

// Equipment is a wearable item occupying one of the five equip slots
type Equipment struct {
	base

	levelRequirement int
	bonusStats       map[shared.StatKind]float64
	enhanceLimit     int
	enhanceCount     int
	slot             shared.EquipSlot
	attackRange      shared.AttackRange
	attackSpeed      float64
	rarity           shared.Rarity
}

// NewEquipment builds an equipment instance from its template record.
// A record whose type tag disagrees with the variant is corrected, not
// rejected.
func NewEquipment(instanceID string, rec *defs.EquipmentRecord) *Equipment {
	if rec == nil {
		return nil
	}

	rarity := rec.Rarity
	if !rarity.IsValid() {
		rarity = shared.RarityCommon
	}

	stats := make(map[shared.StatKind]float64, len(rec.BonusStats))
	for kind, v := range rec.BonusStats {
		stats[kind] = v
	}

	eq := &Equipment{
		base: base{
			id:          rec.ID,
			instanceID:  instanceID,
			name:        rec.Name,
			description: rec.Description,
			itemType:    shared.ItemTypeEquipment,
			icon:        rec.Icon,
			stackable:   false,
			value:       rec.Value,
		},
		levelRequirement: rec.LevelRequirement,
		bonusStats:       stats,
		enhanceLimit:     rec.EnhanceLimit,
		slot:             rec.Slot,
		attackRange:      rec.Range,
		attackSpeed:      rec.AttackSpeed,
		rarity:           rarity,
	}
	eq.SetQuantity(1)

	return eq
}

func (e *Equipment) LevelRequirement() int          { return e.levelRequirement }
func (e *Equipment) EnhanceLimit() int              { return e.enhanceLimit }
func (e *Equipment) EnhanceCount() int              { return e.enhanceCount }
func (e *Equipment) Slot() shared.EquipSlot         { return e.slot }
func (e *Equipment) Range() shared.AttackRange      { return e.attackRange }
func (e *Equipment) AttackSpeed() float64           { return e.attackSpeed }
func (e *Equipment) Rarity() shared.Rarity          { return e.rarity }

// BonusStats returns a copy of the bonus-stat map
func (e *Equipment) BonusStats() map[shared.StatKind]float64 {
	stats := make(map[shared.StatKind]float64, len(e.bonusStats))
	for kind, v := range e.bonusStats {
		stats[kind] = v
	}
	return stats
}

// Use always fails; equipping is a separate operation
func (e *Equipment) Use() bool {
	return false
}

// Enhance raises the enhancement count by one and scales every bonus stat
// upward by the rarity's growth percentage. Fails once the count reaches
// the limit. Values stay unrounded so small flat stats still compound
// across steps; display rounding is the generator's concern.
func (e *Equipment) Enhance() bool {
	if e.enhanceCount >= e.enhanceLimit {
		return false
	}

	growth := 1 + enhancePercent[e.rarity]
	for kind, v := range e.bonusStats {
		e.bonusStats[kind] = v * growth
	}
	e.enhanceCount++

	return true
}

// Clone returns an independent copy with a fresh instance id
func (e *Equipment) Clone() Item {
	clone := *e
	clone.instanceID = uuid.New().String()
	clone.bonusStats = e.BonusStats()
	return &clone
}

// Definition round-trips the instance back to its template shape,
// capturing generated stats and enhancement adjustments
func (e *Equipment) Definition() defs.EquipmentRecord {
	return defs.EquipmentRecord{
		ID:               e.id,
		Name:             e.name,
		Description:      e.description,
		Type:             shared.ItemTypeEquipment,
		Icon:             e.icon,
		Value:            e.value,
		LevelRequirement: e.levelRequirement,
		BonusStats:       e.BonusStats(),
		EnhanceLimit:     e.enhanceLimit,
		Slot:             e.slot,
		Range:            e.attackRange,
		AttackSpeed:      e.attackSpeed,
		Rarity:           e.rarity,
	}
}
