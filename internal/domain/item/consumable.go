package item

import (
	"github.com/google/uuid"

	"github.com/emberforge/arpg-engine/internal/clients/defs"
	"github.com/emberforge/arpg-engine/internal/domain/shared"
)

// Consumable is an item that is used up to apply an effect
type Consumable struct {
	base

	effectType  shared.EffectType
	effectValue float64
	duration    float64
	attribute   shared.EffectAttribute
}

// NewConsumable builds a consumable instance from its template record
func NewConsumable(instanceID string, rec *defs.ConsumableRecord, quantity int) *Consumable {
	if rec == nil {
		return nil
	}

	c := &Consumable{
		base: base{
			id:          rec.ID,
			instanceID:  instanceID,
			name:        rec.Name,
			description: rec.Description,
			itemType:    shared.ItemTypeConsumable,
			icon:        rec.Icon,
			stackable:   rec.Stackable,
			value:       rec.Value,
		},
		effectType:  rec.EffectType,
		effectValue: rec.EffectValue,
		duration:    rec.Duration,
		attribute:   rec.Attribute,
	}
	c.SetQuantity(quantity)

	return c
}

func (c *Consumable) EffectType() shared.EffectType       { return c.effectType }
func (c *Consumable) EffectValue() float64                { return c.effectValue }
func (c *Consumable) Duration() float64                   { return c.duration }
func (c *Consumable) Attribute() shared.EffectAttribute   { return c.attribute }

// Use dispatches on the effect type and decrements quantity by one on
// success. The effect itself is delivered to the consumer through the
// returned values; this engine does not resolve combat math.
func (c *Consumable) Use() bool {
	if c.quantity <= 0 {
		return false
	}

	switch c.effectType {
	case shared.EffectImmediate, shared.EffectOvertime, shared.EffectSpecial:
		c.quantity--
		return true
	default:
		return false
	}
}

// Clone returns an independent copy with a fresh instance id
func (c *Consumable) Clone() Item {
	clone := *c
	clone.instanceID = uuid.New().String()
	return &clone
}

// Definition round-trips the instance back to its template shape
func (c *Consumable) Definition() defs.ConsumableRecord {
	return defs.ConsumableRecord{
		ID:          c.id,
		Name:        c.name,
		Description: c.description,
		Type:        shared.ItemTypeConsumable,
		Icon:        c.icon,
		Stackable:   c.stackable,
		Value:       c.value,
		EffectType:  c.effectType,
		EffectValue: c.effectValue,
		Duration:    c.duration,
		Attribute:   c.attribute,
	}
}
