package generator

import (
	"github.com/emberforge/arpg-engine/internal/domain/shared"
)

// rarityWeight is one bucket of the weighted rarity roll. LuckScale is the
// fraction of the luck bonus added to the bucket's weight.
type rarityWeight struct {
	Rarity    shared.Rarity
	Base      float64
	LuckScale float64
}

// rarityWeights lists the buckets in declaration order; ties on the walk
// resolve to the earlier bucket.
var rarityWeights = []rarityWeight{
	{Rarity: shared.RarityInferior, Base: 40, LuckScale: 0},
	{Rarity: shared.RarityCommon, Base: 60, LuckScale: 0},
	{Rarity: shared.RarityRare, Base: 40, LuckScale: 0.5},
	{Rarity: shared.RarityEpic, Base: 20, LuckScale: 0.3},
	{Rarity: shared.RarityLegendary, Base: 10, LuckScale: 0.2},
}

// tierRange holds a rarity's stat-multiplier range and enhance-limit
// adjustment range
type tierRange struct {
	StatMin    float64
	StatMax    float64
	EnhanceMin int
	EnhanceMax int
}

// tierRanges skews inferior gear at or below the base and legendary gear
// up to double it
var tierRanges = map[shared.Rarity]tierRange{
	shared.RarityInferior:  {StatMin: 0.6, StatMax: 1.0, EnhanceMin: -2, EnhanceMax: 0},
	shared.RarityCommon:    {StatMin: 0.8, StatMax: 1.1, EnhanceMin: -1, EnhanceMax: 1},
	shared.RarityRare:      {StatMin: 1.0, StatMax: 1.3, EnhanceMin: 0, EnhanceMax: 2},
	shared.RarityEpic:      {StatMin: 1.2, StatMax: 1.6, EnhanceMin: 1, EnhanceMax: 3},
	shared.RarityLegendary: {StatMin: 1.5, StatMax: 2.0, EnhanceMin: 2, EnhanceMax: 5},
}
