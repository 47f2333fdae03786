package item

import (
	"github.com/emberforge/arpg-engine/internal/domain/shared"
)

// MaxStack is the largest quantity one inventory slot can hold for a
// stackable item
const MaxStack = 99

// Item is the capability set shared by every concrete variant
type Item interface {
	// ID returns the stable template key
	ID() string

	// InstanceID identifies this particular instance
	InstanceID() string

	Name() string
	Description() string
	Type() shared.ItemType
	Icon() string
	Stackable() bool

	// Value returns the unit value
	Value() int

	Quantity() int

	// SetQuantity clamps to [0, MaxStack] for stackables and [0, 1]
	// otherwise. It never fails.
	SetQuantity(qty int)

	// TotalValue returns unit value times quantity
	TotalValue() int

	// Use attempts to consume the item and reports whether anything
	// happened
	Use() bool

	// Clone returns a deep, independent copy holding the current quantity
	Clone() Item

	// Record returns the persistence shape {id, quantity, type}
	Record() Record
}

// Record is the serialized form of an item instance. Rehydrating a Record
// back into a concrete Item is the factory's job.
type Record struct {
	ID       string          `json:"id"`
	Quantity int             `json:"quantity"`
	Type     shared.ItemType `json:"type"`
}

// base carries the fields every variant shares
type base struct {
	id          string
	instanceID  string
	name        string
	description string
	itemType    shared.ItemType
	icon        string
	stackable   bool
	value       int
	quantity    int
}

func (b *base) ID() string            { return b.id }
func (b *base) InstanceID() string    { return b.instanceID }
func (b *base) Name() string          { return b.name }
func (b *base) Description() string   { return b.description }
func (b *base) Type() shared.ItemType { return b.itemType }
func (b *base) Icon() string          { return b.icon }
func (b *base) Stackable() bool       { return b.stackable }
func (b *base) Value() int            { return b.value }
func (b *base) Quantity() int         { return b.quantity }

func (b *base) SetQuantity(qty int) {
	max := 1
	if b.stackable {
		max = MaxStack
	}
	if qty < 0 {
		qty = 0
	}
	if qty > max {
		qty = max
	}
	b.quantity = qty
}

func (b *base) TotalValue() int {
	return b.value * b.quantity
}

func (b *base) Record() Record {
	return Record{
		ID:       b.id,
		Quantity: b.quantity,
		Type:     b.itemType,
	}
}
