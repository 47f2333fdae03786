package item

import (
	"github.com/google/uuid"

	"github.com/emberforge/arpg-engine/internal/clients/defs"
	"github.com/emberforge/arpg-engine/internal/domain/shared"
)

// Material is a crafting input. Crafting itself lives outside this engine,
// so materials can never be used directly.
type Material struct {
	base
}

// NewMaterial builds a material instance from its template record
func NewMaterial(instanceID string, rec *defs.MaterialRecord, quantity int) *Material {
	if rec == nil {
		return nil
	}

	m := &Material{
		base: base{
			id:          rec.ID,
			instanceID:  instanceID,
			name:        rec.Name,
			description: rec.Description,
			itemType:    shared.ItemTypeMaterial,
			icon:        rec.Icon,
			stackable:   rec.Stackable,
			value:       rec.Value,
		},
	}
	m.SetQuantity(quantity)

	return m
}

// Use always fails for materials
func (m *Material) Use() bool {
	return false
}

// Clone returns an independent copy with a fresh instance id
func (m *Material) Clone() Item {
	clone := *m
	clone.instanceID = uuid.New().String()
	return &clone
}

// Definition round-trips the instance back to its template shape
func (m *Material) Definition() defs.MaterialRecord {
	return defs.MaterialRecord{
		ID:          m.id,
		Name:        m.name,
		Description: m.description,
		Type:        shared.ItemTypeMaterial,
		Icon:        m.icon,
		Stackable:   m.stackable,
		Value:       m.value,
	}
}
