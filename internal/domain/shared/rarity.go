package shared

// Rarity is one of five ordinal quality tiers. The ordering matters only
// for generation weighting and display; it carries no gameplay meaning.
type Rarity string

const (
	RarityInferior  Rarity = "inferior"
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns the tiers in ascending order
func AllRarities() []Rarity {
	return []Rarity{RarityInferior, RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

// IsValid checks if rarity is a known tier
func (r Rarity) IsValid() bool {
	switch r {
	case RarityInferior, RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// Rank returns the ordinal position of the tier, 0 for inferior
func (r Rarity) Rank() int {
	for i, tier := range AllRarities() {
		if r == tier {
			return i
		}
	}
	return 0
}

// Color returns the display color name clients use for the tier
func (r Rarity) Color() string {
	switch r {
	case RarityInferior:
		return "gray"
	case RarityCommon:
		return "white"
	case RarityRare:
		return "blue"
	case RarityEpic:
		return "purple"
	case RarityLegendary:
		return "orange"
	default:
		return "white"
	}
}
