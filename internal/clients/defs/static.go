package defs

import (
	"github.com/go-playground/validator/v10"

	engerr "github.com/emberforge/arpg-engine/internal/errors"
	"github.com/emberforge/arpg-engine/internal/domain/shared"
)

// StaticClient serves already-parsed definition records from memory
type StaticClient struct {
	equipment   map[string]EquipmentRecord
	consumables map[string]ConsumableRecord
	materials   map[string]MaterialRecord
	monsters    map[string]MonsterRecord
}

// Config holds the record sets for a static client
type Config struct {
	Equipment   []EquipmentRecord
	Consumables []ConsumableRecord
	Materials   []MaterialRecord
	Monsters    []MonsterRecord
}

// NewStaticClient builds a client from parsed records. Records are
// validated up front; a malformed record rejects construction rather than
// surfacing later as a bad template.
func NewStaticClient(cfg *Config) (*StaticClient, error) {
	if cfg == nil {
		return nil, engerr.InvalidArgument("config cannot be nil")
	}

	validate := validator.New()

	client := &StaticClient{
		equipment:   make(map[string]EquipmentRecord, len(cfg.Equipment)),
		consumables: make(map[string]ConsumableRecord, len(cfg.Consumables)),
		materials:   make(map[string]MaterialRecord, len(cfg.Materials)),
		monsters:    make(map[string]MonsterRecord, len(cfg.Monsters)),
	}

	for _, rec := range cfg.Equipment {
		if err := validate.Struct(rec); err != nil {
			return nil, engerr.Wrapf(err, "invalid equipment record '%s'", rec.ID)
		}
		if err := validateEquipmentSemantics(rec); err != nil {
			return nil, err
		}
		client.equipment[rec.ID] = rec.Clone()
	}

	for _, rec := range cfg.Consumables {
		if err := validate.Struct(rec); err != nil {
			return nil, engerr.Wrapf(err, "invalid consumable record '%s'", rec.ID)
		}
		client.consumables[rec.ID] = rec
	}

	for _, rec := range cfg.Materials {
		if err := validate.Struct(rec); err != nil {
			return nil, engerr.Wrapf(err, "invalid material record '%s'", rec.ID)
		}
		client.materials[rec.ID] = rec
	}

	for _, rec := range cfg.Monsters {
		if err := validate.Struct(rec); err != nil {
			return nil, engerr.Wrapf(err, "invalid monster record '%s'", rec.ID)
		}
		client.monsters[rec.ID] = rec.Clone()
	}

	return client, nil
}

func validateEquipmentSemantics(rec EquipmentRecord) error {
	if !rec.Slot.IsValid() {
		return engerr.InvalidArgumentf("equipment record '%s' has invalid slot '%s'", rec.ID, rec.Slot)
	}
	if rec.Rarity != "" && !rec.Rarity.IsValid() {
		return engerr.InvalidArgumentf("equipment record '%s' has invalid rarity '%s'", rec.ID, rec.Rarity)
	}
	if rec.Range != shared.RangeNone && rec.Slot != shared.SlotWeapon {
		return engerr.InvalidArgumentf("equipment record '%s' declares a range on a non-weapon slot", rec.ID)
	}
	for kind := range rec.BonusStats {
		if !kind.IsValid() {
			return engerr.InvalidArgumentf("equipment record '%s' has unknown stat kind '%s'", rec.ID, kind)
		}
	}
	return nil
}

// GetEquipmentByID returns a copy of the equipment template
func (c *StaticClient) GetEquipmentByID(id string) (*EquipmentRecord, error) {
	rec, ok := c.equipment[id]
	if !ok {
		return nil, engerr.NotFoundf("equipment template '%s' not found", id).
			WithMeta("template_id", id)
	}
	clone := rec.Clone()
	return &clone, nil
}

// GetConsumableByID returns a copy of the consumable template
func (c *StaticClient) GetConsumableByID(id string) (*ConsumableRecord, error) {
	rec, ok := c.consumables[id]
	if !ok {
		return nil, engerr.NotFoundf("consumable template '%s' not found", id).
			WithMeta("template_id", id)
	}
	clone := rec
	return &clone, nil
}

// GetMaterialByID returns a copy of the material template
func (c *StaticClient) GetMaterialByID(id string) (*MaterialRecord, error) {
	rec, ok := c.materials[id]
	if !ok {
		return nil, engerr.NotFoundf("material template '%s' not found", id).
			WithMeta("template_id", id)
	}
	clone := rec
	return &clone, nil
}

// GetMonsterByID returns a copy of the monster template
func (c *StaticClient) GetMonsterByID(id string) (*MonsterRecord, error) {
	rec, ok := c.monsters[id]
	if !ok {
		return nil, engerr.NotFoundf("monster template '%s' not found", id).
			WithMeta("template_id", id)
	}
	clone := rec.Clone()
	return &clone, nil
}

// GetAllEquipment returns copies of every equipment template
func (c *StaticClient) GetAllEquipment() []EquipmentRecord {
	result := make([]EquipmentRecord, 0, len(c.equipment))
	for _, rec := range c.equipment {
		result = append(result, rec.Clone())
	}
	return result
}

// GetAllConsumables returns copies of every consumable template
func (c *StaticClient) GetAllConsumables() []ConsumableRecord {
	result := make([]ConsumableRecord, 0, len(c.consumables))
	for _, rec := range c.consumables {
		result = append(result, rec)
	}
	return result
}

// GetAllMaterials returns copies of every material template
func (c *StaticClient) GetAllMaterials() []MaterialRecord {
	result := make([]MaterialRecord, 0, len(c.materials))
	for _, rec := range c.materials {
		result = append(result, rec)
	}
	return result
}

// GetAllMonsters returns copies of every monster template
func (c *StaticClient) GetAllMonsters() []MonsterRecord {
	result := make([]MonsterRecord, 0, len(c.monsters))
	for _, rec := range c.monsters {
		result = append(result, rec.Clone())
	}
	return result
}
