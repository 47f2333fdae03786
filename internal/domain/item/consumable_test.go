package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberforge/arpg-engine/internal/clients/defs"
	"github.com/emberforge/arpg-engine/internal/domain/shared"
)

func potionRecord() *defs.ConsumableRecord {
	return &defs.ConsumableRecord{
		ID:          "test-potion",
		Name:        "Test Potion",
		Type:        shared.ItemTypeConsumable,
		Stackable:   true,
		Value:       10,
		EffectType:  shared.EffectImmediate,
		EffectValue: 50,
		Attribute:   shared.EffectAttributeHeal,
	}
}

func TestNewConsumable(t *testing.T) {
	potion := NewConsumable("inst-1", potionRecord(), 3)
	require.NotNil(t, potion)

	assert.Equal(t, "test-potion", potion.ID())
	assert.True(t, potion.Stackable())
	assert.Equal(t, 3, potion.Quantity())
	assert.Equal(t, 30, potion.TotalValue())
	assert.Equal(t, shared.EffectImmediate, potion.EffectType())
	assert.Equal(t, 50.0, potion.EffectValue())
}

func TestConsumableSetQuantityClampsToStackCap(t *testing.T) {
	potion := NewConsumable("inst-1", potionRecord(), 150)
	assert.Equal(t, MaxStack, potion.Quantity())

	potion.SetQuantity(-1)
	assert.Equal(t, 0, potion.Quantity())
}

func TestConsumableUseDecrements(t *testing.T) {
	potion := NewConsumable("inst-1", potionRecord(), 2)

	require.True(t, potion.Use())
	assert.Equal(t, 1, potion.Quantity())

	require.True(t, potion.Use())
	assert.Equal(t, 0, potion.Quantity())

	// Empty stacks cannot be used
	assert.False(t, potion.Use())
	assert.Equal(t, 0, potion.Quantity())
}

func TestConsumableUseUnknownEffectFails(t *testing.T) {
	rec := potionRecord()
	rec.EffectType = "mystery"

	potion := NewConsumable("inst-1", rec, 2)
	assert.False(t, potion.Use())
	assert.Equal(t, 2, potion.Quantity())
}

func TestConsumableOvertimeAndSpecialAreUsable(t *testing.T) {
	for _, effect := range []shared.EffectType{shared.EffectOvertime, shared.EffectSpecial} {
		rec := potionRecord()
		rec.EffectType = effect

		potion := NewConsumable("inst-1", rec, 1)
		assert.True(t, potion.Use(), "effect %s", effect)
	}
}

func TestConsumableCloneIsIndependent(t *testing.T) {
	potion := NewConsumable("inst-1", potionRecord(), 5)

	clone := potion.Clone()
	assert.NotEqual(t, potion.InstanceID(), clone.InstanceID())
	assert.Equal(t, 5, clone.Quantity())

	clone.SetQuantity(1)
	assert.Equal(t, 5, potion.Quantity())
}

func TestMaterialNeverUsable(t *testing.T) {
	ore := NewMaterial("inst-1", &defs.MaterialRecord{
		ID:        "test-ore",
		Name:      "Test Ore",
		Type:      shared.ItemTypeMaterial,
		Stackable: true,
		Value:     2,
	}, 10)
	require.NotNil(t, ore)

	assert.False(t, ore.Use())
	assert.Equal(t, 10, ore.Quantity())
	assert.Equal(t, 20, ore.TotalValue())
}

func TestNilRecordsReturnNil(t *testing.T) {
	assert.Nil(t, NewEquipment("inst-1", nil))
	assert.Nil(t, NewConsumable("inst-1", nil, 1))
	assert.Nil(t, NewMaterial("inst-1", nil, 1))
}
