package item_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/emberforge/arpg-engine/internal/clients/defs"
	mockdefs "github.com/emberforge/arpg-engine/internal/clients/defs/mock"
	itemdomain "github.com/emberforge/arpg-engine/internal/domain/item"
	"github.com/emberforge/arpg-engine/internal/domain/shared"
	engerr "github.com/emberforge/arpg-engine/internal/errors"
	itemservice "github.com/emberforge/arpg-engine/internal/services/item"
	mockuuid "github.com/emberforge/arpg-engine/internal/uuid/mock"
)

func defaultService(t *testing.T) itemservice.Service {
	t.Helper()

	client, err := defs.NewStaticClient(defs.DefaultCatalog())
	require.NoError(t, err)

	return itemservice.NewService(&itemservice.ServiceConfig{
		DefsClient: client,
	})
}

func TestNewServiceRequiresDefsClient(t *testing.T) {
	assert.Panics(t, func() {
		itemservice.NewService(nil)
	})
	assert.Panics(t, func() {
		itemservice.NewService(&itemservice.ServiceConfig{})
	})
}

func TestCreateEquipment(t *testing.T) {
	svc := defaultService(t)

	eq, err := svc.CreateEquipment(context.Background(), "rusty-sword")
	require.NoError(t, err)

	assert.Equal(t, "rusty-sword", eq.ID())
	assert.NotEmpty(t, eq.InstanceID())
	assert.Equal(t, shared.SlotWeapon, eq.Slot())
	assert.Equal(t, 1, eq.Quantity())
}

func TestCreateEquipmentUnknownID(t *testing.T) {
	svc := defaultService(t)

	_, err := svc.CreateEquipment(context.Background(), "excalibur")
	require.Error(t, err)
	assert.True(t, engerr.IsNotFound(err))
}

func TestCreateEquipmentInstancesAreDistinct(t *testing.T) {
	svc := defaultService(t)

	first, err := svc.CreateEquipment(context.Background(), "rusty-sword")
	require.NoError(t, err)
	second, err := svc.CreateEquipment(context.Background(), "rusty-sword")
	require.NoError(t, err)

	assert.NotEqual(t, first.InstanceID(), second.InstanceID())
}

func TestCreateEquipmentUsesInjectedUUIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generator := mockuuid.NewMockGenerator(ctrl)
	generator.EXPECT().New().Return("fixed-instance-id")

	client, err := defs.NewStaticClient(defs.DefaultCatalog())
	require.NoError(t, err)

	svc := itemservice.NewService(&itemservice.ServiceConfig{
		DefsClient:    client,
		UUIDGenerator: generator,
	})

	eq, err := svc.CreateEquipment(context.Background(), "rusty-sword")
	require.NoError(t, err)
	assert.Equal(t, "fixed-instance-id", eq.InstanceID())
}

func TestCreateConsumable(t *testing.T) {
	svc := defaultService(t)

	potion, err := svc.CreateConsumable(context.Background(), "minor-healing-potion", 5)
	require.NoError(t, err)

	assert.Equal(t, 5, potion.Quantity())
	assert.Equal(t, shared.EffectImmediate, potion.EffectType())
}

func TestCreateConsumableQuantityFloorsAtOne(t *testing.T) {
	svc := defaultService(t)

	potion, err := svc.CreateConsumable(context.Background(), "minor-healing-potion", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, potion.Quantity())
}

func TestCreateMaterial(t *testing.T) {
	svc := defaultService(t)

	oreItem, err := svc.CreateMaterial(context.Background(), "iron-ore", 12)
	require.NoError(t, err)

	assert.Equal(t, 12, oreItem.Quantity())
	assert.Equal(t, shared.ItemTypeMaterial, oreItem.Type())
}

func TestCreateItemResolvesAcrossKinds(t *testing.T) {
	svc := defaultService(t)

	tests := []struct {
		name         string
		id           string
		expectedType shared.ItemType
	}{
		{name: "equipment id", id: "rusty-sword", expectedType: shared.ItemTypeEquipment},
		{name: "consumable id", id: "minor-healing-potion", expectedType: shared.ItemTypeConsumable},
		{name: "material id", id: "wolf-pelt", expectedType: shared.ItemTypeMaterial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := svc.CreateItem(context.Background(), tt.id, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedType, it.Type())
		})
	}
}

func TestCreateItemUnknownID(t *testing.T) {
	svc := defaultService(t)

	_, err := svc.CreateItem(context.Background(), "no-such-id", 1)
	require.Error(t, err)
	assert.True(t, engerr.IsNotFound(err))
}

func TestCreateEquipmentFromRecord(t *testing.T) {
	svc := defaultService(t)

	eq, err := svc.CreateEquipmentFromRecord(context.Background(), &defs.EquipmentRecord{
		ID:   "generated-blade",
		Name: "Generated Blade",
		Type: shared.ItemTypeEquipment,
		BonusStats: map[shared.StatKind]float64{
			shared.StatPhysicalAttack: 14,
		},
		Slot:   shared.SlotWeapon,
		Range:  shared.RangeMelee,
		Rarity: shared.RarityEpic,
	})
	require.NoError(t, err)

	assert.Equal(t, "generated-blade", eq.ID())
	assert.Equal(t, shared.RarityEpic, eq.Rarity())

	_, err = svc.CreateEquipmentFromRecord(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, engerr.IsInvalidArgument(err))
}

func TestRehydrate(t *testing.T) {
	svc := defaultService(t)

	tests := []struct {
		name     string
		record   itemdomain.Record
		expected shared.ItemType
		quantity int
	}{
		{
			name:     "equipment record",
			record:   itemdomain.Record{ID: "rusty-sword", Quantity: 1, Type: shared.ItemTypeEquipment},
			expected: shared.ItemTypeEquipment,
			quantity: 1,
		},
		{
			name:     "consumable record",
			record:   itemdomain.Record{ID: "minor-healing-potion", Quantity: 8, Type: shared.ItemTypeConsumable},
			expected: shared.ItemTypeConsumable,
			quantity: 8,
		},
		{
			name:     "material record",
			record:   itemdomain.Record{ID: "iron-ore", Quantity: 30, Type: shared.ItemTypeMaterial},
			expected: shared.ItemTypeMaterial,
			quantity: 30,
		},
		{
			name:     "missing type tag falls back to id resolution",
			record:   itemdomain.Record{ID: "wolf-pelt", Quantity: 4},
			expected: shared.ItemTypeMaterial,
			quantity: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := svc.Rehydrate(context.Background(), tt.record)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, it.Type())
			assert.Equal(t, tt.quantity, it.Quantity())
		})
	}
}

func TestRehydrateUnknownID(t *testing.T) {
	svc := defaultService(t)

	_, err := svc.Rehydrate(context.Background(), itemdomain.Record{
		ID:   "vanished-item",
		Type: shared.ItemTypeEquipment,
	})
	require.Error(t, err)
	assert.True(t, engerr.IsNotFound(err))
}

func TestCreateEquipmentPropagatesClientErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockdefs.NewMockClient(ctrl)
	client.EXPECT().
		GetEquipmentByID("rusty-sword").
		Return(nil, engerr.Internal("catalog backend unavailable"))

	svc := itemservice.NewService(&itemservice.ServiceConfig{
		DefsClient: client,
	})

	_, err := svc.CreateEquipment(context.Background(), "rusty-sword")
	require.Error(t, err)
	assert.False(t, engerr.IsNotFound(err))
}
