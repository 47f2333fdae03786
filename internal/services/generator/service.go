package generator

//go:generate mockgen -destination=mock/mock_service.go -package=mockgenerator -source=service.go

import (
	"context"
	"sort"

	"github.com/emberforge/arpg-engine/internal/clients/defs"
	itemdomain "github.com/emberforge/arpg-engine/internal/domain/item"
	"github.com/emberforge/arpg-engine/internal/domain/shared"
	engerr "github.com/emberforge/arpg-engine/internal/errors"
	"github.com/emberforge/arpg-engine/internal/metrics"
	"github.com/emberforge/arpg-engine/internal/rng"
	itemservice "github.com/emberforge/arpg-engine/internal/services/item"
)

// Service procedurally derives equipment instances from base templates
type Service interface {
	// GenerateEquipment rolls a rarity tier for the base template and
	// resamples its bonus stats and enhance limit
	GenerateEquipment(ctx context.Context, baseID string, luckBonus float64) (*itemdomain.Equipment, error)

	// CreateRandomEquipment picks a template within the level range
	// uniformly and generates from it
	CreateRandomEquipment(ctx context.Context, minLevel, maxLevel int, luckBonus float64) (*itemdomain.Equipment, error)

	// CreateEquipmentBySlot is CreateRandomEquipment restricted to one slot
	CreateEquipmentBySlot(ctx context.Context, slot shared.EquipSlot, minLevel, maxLevel int, luckBonus float64) (*itemdomain.Equipment, error)

	// RollRarity exposes the weighted roll for tuning tools
	RollRarity(luckBonus float64) shared.Rarity
}

// service implements the Service interface
type service struct {
	defsClient  defs.Client
	itemFactory itemservice.Service
	random      rng.Source
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	DefsClient  defs.Client         // Required
	ItemFactory itemservice.Service // Required
	Random      rng.Source          // Optional, defaults to time-seeded
}

// NewService creates a new equipment generator service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.DefsClient == nil {
		panic("defs client is required")
	}
	if cfg.ItemFactory == nil {
		panic("item factory is required")
	}

	svc := &service{
		defsClient:  cfg.DefsClient,
		itemFactory: cfg.ItemFactory,
		random:      cfg.Random,
	}
	if svc.random == nil {
		svc.random = rng.NewTimeSeededSource()
	}

	return svc
}

// RollRarity draws uniformly in [0, totalWeight) and walks the buckets in
// declaration order, accumulating weight until the draw falls inside the
// running sum. The luck bonus boosts only the top three buckets.
func (s *service) RollRarity(luckBonus float64) shared.Rarity {
	if luckBonus < 0 {
		luckBonus = 0
	}

	total := 0.0
	for _, bucket := range rarityWeights {
		total += bucket.Base + bucket.LuckScale*luckBonus
	}

	draw := s.random.Float64() * total

	running := 0.0
	for _, bucket := range rarityWeights {
		running += bucket.Base + bucket.LuckScale*luckBonus
		if draw < running {
			return bucket.Rarity
		}
	}

	// Unreachable unless float error leaves draw == total
	return rarityWeights[len(rarityWeights)-1].Rarity
}

// GenerateEquipment looks up the base template, rolls a rarity, and scales
// every bonus stat and the enhance limit into the tier's ranges
func (s *service) GenerateEquipment(ctx context.Context, baseID string, luckBonus float64) (*itemdomain.Equipment, error) {
	rec, err := s.defsClient.GetEquipmentByID(baseID)
	if err != nil {
		return nil, err
	}

	rarity := s.RollRarity(luckBonus)
	generated := s.applyRarity(rec.Clone(), rarity)

	eq, err := s.itemFactory.CreateEquipmentFromRecord(ctx, &generated)
	if err != nil {
		return nil, err
	}

	metrics.EquipmentGenerated.WithLabelValues(string(rarity)).Inc()
	return eq, nil
}

func (s *service) applyRarity(rec defs.EquipmentRecord, rarity shared.Rarity) defs.EquipmentRecord {
	tier := tierRanges[rarity]

	scaled := make(map[shared.StatKind]float64, len(rec.BonusStats))
	for kind, v := range rec.BonusStats {
		multiplier := s.random.FloatRange(tier.StatMin, tier.StatMax)
		scaled[kind] = shared.RoundStat(kind, v*multiplier)
	}
	rec.BonusStats = scaled

	rec.EnhanceLimit += s.random.IntRange(tier.EnhanceMin, tier.EnhanceMax)
	if rec.EnhanceLimit < 0 {
		rec.EnhanceLimit = 0
	}

	rec.Rarity = rarity
	return rec
}

// CreateRandomEquipment generates from a uniformly chosen template whose
// level requirement falls inside [minLevel, maxLevel]
func (s *service) CreateRandomEquipment(ctx context.Context, minLevel, maxLevel int, luckBonus float64) (*itemdomain.Equipment, error) {
	return s.createFiltered(ctx, "", minLevel, maxLevel, luckBonus)
}

// CreateEquipmentBySlot generates from a uniformly chosen template for one
// equip slot within the level range
func (s *service) CreateEquipmentBySlot(ctx context.Context, slot shared.EquipSlot, minLevel, maxLevel int, luckBonus float64) (*itemdomain.Equipment, error) {
	if !slot.IsValid() {
		return nil, engerr.InvalidArgumentf("invalid equip slot '%s'", slot)
	}
	return s.createFiltered(ctx, slot, minLevel, maxLevel, luckBonus)
}

func (s *service) createFiltered(ctx context.Context, slot shared.EquipSlot, minLevel, maxLevel int, luckBonus float64) (*itemdomain.Equipment, error) {
	candidates := s.defsClient.GetAllEquipment()

	filtered := candidates[:0]
	for _, rec := range candidates {
		if rec.LevelRequirement < minLevel || rec.LevelRequirement > maxLevel {
			continue
		}
		if slot != "" && rec.Slot != slot {
			continue
		}
		filtered = append(filtered, rec)
	}

	if len(filtered) == 0 {
		return nil, engerr.NotFoundf("no equipment template in level range [%d, %d]", minLevel, maxLevel).
			WithMeta("slot", string(slot))
	}

	// Catalog order is map order; sort for a stable uniform pick
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].ID < filtered[j].ID
	})

	chosen := filtered[s.random.Intn(len(filtered))]
	return s.GenerateEquipment(ctx, chosen.ID, luckBonus)
}
