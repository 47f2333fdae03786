package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberforge/arpg-engine/internal/clients/defs"
	"github.com/emberforge/arpg-engine/internal/domain/shared"
	engerr "github.com/emberforge/arpg-engine/internal/errors"
	"github.com/emberforge/arpg-engine/internal/rng"
	mockrng "github.com/emberforge/arpg-engine/internal/rng/mock"
	itemservice "github.com/emberforge/arpg-engine/internal/services/item"
)

func testCatalog(t *testing.T) defs.Client {
	t.Helper()

	client, err := defs.NewStaticClient(&defs.Config{
		Equipment: []defs.EquipmentRecord{
			{
				ID:               "iron-sword",
				Name:             "Iron Sword",
				Type:             shared.ItemTypeEquipment,
				Value:            25,
				LevelRequirement: 1,
				BonusStats: map[shared.StatKind]float64{
					shared.StatPhysicalAttack: 10,
					shared.StatCritRate:       0.05,
				},
				EnhanceLimit: 2,
				Slot:         shared.SlotWeapon,
				Range:        shared.RangeMelee,
				Rarity:       shared.RarityCommon,
			},
			{
				ID:               "oak-bow",
				Name:             "Oak Bow",
				Type:             shared.ItemTypeEquipment,
				Value:            30,
				LevelRequirement: 3,
				BonusStats: map[shared.StatKind]float64{
					shared.StatPhysicalAttack: 8,
				},
				EnhanceLimit: 2,
				Slot:         shared.SlotWeapon,
				Range:        shared.RangeLong,
				Rarity:       shared.RarityCommon,
			},
			{
				ID:               "quilted-vest",
				Name:             "Quilted Vest",
				Type:             shared.ItemTypeEquipment,
				Value:            15,
				LevelRequirement: 2,
				BonusStats: map[shared.StatKind]float64{
					shared.StatPhysicalDefense: 6,
				},
				EnhanceLimit: 1,
				Slot:         shared.SlotArmor,
				Rarity:       shared.RarityCommon,
			},
		},
	})
	require.NoError(t, err)
	return client
}

func newTestService(t *testing.T, random rng.Source) Service {
	t.Helper()

	client := testCatalog(t)
	return NewService(&ServiceConfig{
		DefsClient: client,
		ItemFactory: itemservice.NewService(&itemservice.ServiceConfig{
			DefsClient: client,
		}),
		Random: random,
	})
}

func TestRollRarityWalksBucketsInOrder(t *testing.T) {
	random := mockrng.NewManualSource()
	svc := newTestService(t, random)

	// Zero luck: buckets are 40/60/40/20/10 over a total of 170.
	tests := []struct {
		name     string
		fraction float64
		expected shared.Rarity
	}{
		{name: "draw in the first bucket", fraction: 0.0, expected: shared.RarityInferior},
		{name: "draw just below the first boundary", fraction: 39.5 / 170, expected: shared.RarityInferior},
		{name: "draw just past the first boundary", fraction: 40.5 / 170, expected: shared.RarityCommon},
		{name: "draw inside the common bucket", fraction: 99.0 / 170, expected: shared.RarityCommon},
		{name: "draw inside the rare bucket", fraction: 120.0 / 170, expected: shared.RarityRare},
		{name: "draw inside the epic bucket", fraction: 150.0 / 170, expected: shared.RarityEpic},
		{name: "draw in the final bucket", fraction: 169.0 / 170, expected: shared.RarityLegendary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			random.SetFloats(tt.fraction)
			assert.Equal(t, tt.expected, svc.RollRarity(0))
		})
	}
}

func TestRollRarityLuckShiftsBoundaries(t *testing.T) {
	random := mockrng.NewManualSource()
	svc := newTestService(t, random)

	// With luck 100 the buckets become 40/60/90/50/30 over 270. A draw at
	// 165/270 now lands in rare where it would have been epic at zero luck.
	random.SetFloats(165.0 / 270.0)
	assert.Equal(t, shared.RarityRare, svc.RollRarity(100))
}

func TestRollRarityLuckRaisesHighTierFrequency(t *testing.T) {
	const rolls = 10000

	histogram := func(luck float64) map[shared.Rarity]int {
		svc := newTestService(t, rng.NewRandomSource(7))
		counts := make(map[shared.Rarity]int)
		for i := 0; i < rolls; i++ {
			counts[svc.RollRarity(luck)]++
		}
		return counts
	}

	base := histogram(0)
	lucky := histogram(50)

	// Zero luck: 40/60/40/20/10 over 170. Every bucket's empirical share
	// must sit near its weight share.
	expectedBase := map[shared.Rarity]float64{
		shared.RarityInferior:  40.0 / 170,
		shared.RarityCommon:    60.0 / 170,
		shared.RarityRare:      40.0 / 170,
		shared.RarityEpic:      20.0 / 170,
		shared.RarityLegendary: 10.0 / 170,
	}
	for rarity, share := range expectedBase {
		assert.InDelta(t, rolls*share, float64(base[rarity]), rolls*0.025,
			"zero-luck share for %s", rarity)
	}

	// Luck 50: 40/60/65/35/20 over 220.
	expectedLucky := map[shared.Rarity]float64{
		shared.RarityInferior:  40.0 / 220,
		shared.RarityCommon:    60.0 / 220,
		shared.RarityRare:      65.0 / 220,
		shared.RarityEpic:      35.0 / 220,
		shared.RarityLegendary: 20.0 / 220,
	}
	for rarity, share := range expectedLucky {
		assert.InDelta(t, rolls*share, float64(lucky[rarity]), rolls*0.025,
			"luck-50 share for %s", rarity)
	}

	for _, rarity := range []shared.Rarity{shared.RarityRare, shared.RarityEpic, shared.RarityLegendary} {
		assert.Greater(t, lucky[rarity], base[rarity])
	}
}

func TestRollRarityNegativeLuckReadsAsZero(t *testing.T) {
	random := mockrng.NewManualSource()
	svc := newTestService(t, random)

	random.SetFloats(0.5)
	withZero := svc.RollRarity(0)
	random.SetFloats(0.5)
	withNegative := svc.RollRarity(-25)

	assert.Equal(t, withZero, withNegative)
}

func TestGenerateEquipmentAppliesTierRanges(t *testing.T) {
	random := mockrng.NewManualSource()
	svc := newTestService(t, random)

	// Rarity draw lands in the legendary bucket; both stats scale by the
	// scripted multipliers and the enhance limit grows by the scripted
	// adjustment.
	random.SetFloats(169.0/170.0, 2.0, 1.5)
	random.SetInts(3)

	eq, err := svc.GenerateEquipment(context.Background(), "iron-sword", 0)
	require.NoError(t, err)

	assert.Equal(t, shared.RarityLegendary, eq.Rarity())
	assert.Equal(t, 5, eq.EnhanceLimit())

	stats := eq.BonusStats()
	// Map iteration order is unknown, so both stats scripted at distinct
	// multipliers cannot be asserted individually; assert the value set.
	attack := stats[shared.StatPhysicalAttack]
	crit := stats[shared.StatCritRate]
	assert.True(t,
		(attack == 20 && crit == 0.075) || (attack == 15 && crit == 0.1),
		"attack=%v crit=%v", attack, crit)
}

func TestGenerateEquipmentRoundsScaledStats(t *testing.T) {
	random := mockrng.NewManualSource()
	svc := newTestService(t, random)

	// Common rarity, both multipliers 1.07: flat attack 10.7 rounds to 11,
	// crit rate 0.0535 keeps three decimals.
	random.SetFloats(50.0/170.0, 1.07, 1.07)
	random.SetInts(0)

	eq, err := svc.GenerateEquipment(context.Background(), "iron-sword", 0)
	require.NoError(t, err)

	stats := eq.BonusStats()
	assert.InDelta(t, 11.0, stats[shared.StatPhysicalAttack], 1e-9)
	assert.InDelta(t, 0.054, stats[shared.StatCritRate], 1e-9)
}

func TestGenerateEquipmentEnhanceLimitFloorsAtZero(t *testing.T) {
	random := mockrng.NewManualSource()
	svc := newTestService(t, random)

	// Inferior draw with the worst enhance adjustment: 2 - 2 = 0 stands,
	// and a deeper cut can never go negative.
	random.SetFloats(0.0, 0.6, 0.6)
	random.SetInts(-2)

	eq, err := svc.GenerateEquipment(context.Background(), "iron-sword", 0)
	require.NoError(t, err)

	assert.Equal(t, shared.RarityInferior, eq.Rarity())
	assert.Equal(t, 0, eq.EnhanceLimit())
}

func TestGenerateEquipmentUnknownBase(t *testing.T) {
	svc := newTestService(t, rng.NewRandomSource(1))

	_, err := svc.GenerateEquipment(context.Background(), "no-such-item", 0)
	require.Error(t, err)
	assert.True(t, engerr.IsNotFound(err))
}

func TestGenerateEquipmentDoesNotMutateTemplate(t *testing.T) {
	client := testCatalog(t)
	svc := NewService(&ServiceConfig{
		DefsClient: client,
		ItemFactory: itemservice.NewService(&itemservice.ServiceConfig{
			DefsClient: client,
		}),
		Random: rng.NewRandomSource(3),
	})

	_, err := svc.GenerateEquipment(context.Background(), "iron-sword", 0)
	require.NoError(t, err)

	rec, err := client.GetEquipmentByID("iron-sword")
	require.NoError(t, err)
	assert.InDelta(t, 10.0, rec.BonusStats[shared.StatPhysicalAttack], 1e-9)
	assert.Equal(t, 2, rec.EnhanceLimit)
	assert.Equal(t, shared.RarityCommon, rec.Rarity)
}

func TestCreateRandomEquipmentFiltersByLevel(t *testing.T) {
	random := mockrng.NewManualSource()
	svc := newTestService(t, random)

	// Only oak-bow requires level 3; the template pick is forced, then the
	// usual generation script runs.
	random.SetInts(0, 0)
	random.SetFloats(0.0, 0.8)

	eq, err := svc.CreateRandomEquipment(context.Background(), 3, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, "oak-bow", eq.ID())
}

func TestCreateRandomEquipmentEmptyRange(t *testing.T) {
	svc := newTestService(t, rng.NewRandomSource(1))

	_, err := svc.CreateRandomEquipment(context.Background(), 40, 50, 0)
	require.Error(t, err)
	assert.True(t, engerr.IsNotFound(err))
}

func TestCreateEquipmentBySlot(t *testing.T) {
	random := mockrng.NewManualSource()
	svc := newTestService(t, random)

	random.SetInts(0, 0)
	random.SetFloats(0.0, 0.7)

	eq, err := svc.CreateEquipmentBySlot(context.Background(), shared.SlotArmor, 1, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, "quilted-vest", eq.ID())
	assert.Equal(t, shared.SlotArmor, eq.Slot())
}

func TestCreateEquipmentBySlotInvalidSlot(t *testing.T) {
	svc := newTestService(t, rng.NewRandomSource(1))

	_, err := svc.CreateEquipmentBySlot(context.Background(), "hat", 1, 10, 0)
	require.Error(t, err)
	assert.True(t, engerr.IsInvalidArgument(err))
}

func TestNewServiceRequiresCollaborators(t *testing.T) {
	assert.Panics(t, func() {
		NewService(nil)
	})
	assert.Panics(t, func() {
		NewService(&ServiceConfig{})
	})
}
