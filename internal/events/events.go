package events

import (
	"github.com/emberforge/arpg-engine/internal/domain/shared"
)

// Type tags a change notification
type Type string

const (
	// TypeAdd fires when items enter a container
	TypeAdd Type = "add"

	// TypeRemove fires when items leave a container
	TypeRemove Type = "remove"

	// TypeUse fires when an item is consumed
	TypeUse Type = "use"

	// TypeGoldChange fires when a gold balance moves
	TypeGoldChange Type = "gold_change"

	// TypeFull fires when an add was truncated or rejected for space
	TypeFull Type = "full"

	// TypeEquip fires when an item is installed into an equip slot
	TypeEquip Type = "equip"

	// TypeUnequip fires when an equip slot is vacated
	TypeUnequip Type = "unequip"

	// TypeLevelUp fires when accumulated experience crosses a threshold
	TypeLevelUp Type = "level_up"
)

// Event is the payload delivered to listeners. Fields beyond Type are
// populated according to what the event describes.
type Event struct {
	Type       Type
	ItemID     string
	InstanceID string
	Quantity   int
	Gold       int
	Slot       shared.EquipSlot
	Level      int
}
