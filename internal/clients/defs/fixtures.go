package defs

import (
	"github.com/emberforge/arpg-engine/internal/domain/shared"
)

// DefaultCatalog returns the built-in template set used by the demo
// command and as a convenient seed for tests. Real deployments feed
// NewStaticClient with records parsed by the content pipeline.
func DefaultCatalog() *Config {
	return &Config{
		Equipment: []EquipmentRecord{
			{
				ID:               "rusty-sword",
				Name:             "Rusty Sword",
				Description:      "A chipped blade that has seen better decades.",
				Type:             shared.ItemTypeEquipment,
				Icon:             "icons/rusty_sword",
				Value:            25,
				LevelRequirement: 1,
				BonusStats: map[shared.StatKind]float64{
					shared.StatPhysicalAttack: 10,
					shared.StatAccuracy:       3,
				},
				EnhanceLimit: 3,
				Slot:         shared.SlotWeapon,
				Range:        shared.RangeMelee,
				AttackSpeed:  1.0,
				Rarity:       shared.RarityCommon,
			},
			{
				ID:               "hunting-bow",
				Name:             "Hunting Bow",
				Description:      "Strung with sinew, favored by frontier scouts.",
				Type:             shared.ItemTypeEquipment,
				Icon:             "icons/hunting_bow",
				Value:            40,
				LevelRequirement: 3,
				BonusStats: map[shared.StatKind]float64{
					shared.StatPhysicalAttack: 8,
					shared.StatAccuracy:       6,
					shared.StatCritRate:       0.02,
				},
				EnhanceLimit: 4,
				Slot:         shared.SlotWeapon,
				Range:        shared.RangeLong,
				AttackSpeed:  0.8,
				Rarity:       shared.RarityCommon,
			},
			{
				ID:               "ember-staff",
				Name:             "Ember Staff",
				Description:      "Warm to the touch even in winter.",
				Type:             shared.ItemTypeEquipment,
				Icon:             "icons/ember_staff",
				Value:            60,
				LevelRequirement: 5,
				BonusStats: map[shared.StatKind]float64{
					shared.StatMagicAttack:      14,
					shared.StatMagicDamageBonus: 0.05,
				},
				EnhanceLimit: 4,
				Slot:         shared.SlotWeapon,
				Range:        shared.RangeMedium,
				AttackSpeed:  0.9,
				Rarity:       shared.RarityRare,
			},
			{
				ID:               "leather-cuirass",
				Name:             "Leather Cuirass",
				Description:      "Boiled leather over a padded shirt.",
				Type:             shared.ItemTypeEquipment,
				Icon:             "icons/leather_cuirass",
				Value:            30,
				LevelRequirement: 1,
				BonusStats: map[shared.StatKind]float64{
					shared.StatHP:              40,
					shared.StatPhysicalDefense: 8,
				},
				EnhanceLimit: 3,
				Slot:         shared.SlotArmor,
				Rarity:       shared.RarityCommon,
			},
			{
				ID:               "swift-boots",
				Name:             "Swift Boots",
				Description:      "The soles barely touch the ground.",
				Type:             shared.ItemTypeEquipment,
				Icon:             "icons/swift_boots",
				Value:            35,
				LevelRequirement: 2,
				BonusStats: map[shared.StatKind]float64{
					shared.StatMoveSpeed: 12,
					shared.StatEvasion:   4,
				},
				EnhanceLimit: 3,
				Slot:         shared.SlotShoes,
				Rarity:       shared.RarityCommon,
			},
			{
				ID:               "band-of-vigor",
				Name:             "Band of Vigor",
				Description:      "A plain ring humming with borrowed life.",
				Type:             shared.ItemTypeEquipment,
				Icon:             "icons/band_of_vigor",
				Value:            55,
				LevelRequirement: 4,
				BonusStats: map[shared.StatKind]float64{
					shared.StatHP:             60,
					shared.StatEnergyRecovery: 0.5,
				},
				EnhanceLimit: 2,
				Slot:         shared.SlotRing,
				Rarity:       shared.RarityRare,
			},
			{
				ID:               "wolffang-pendant",
				Name:             "Wolffang Pendant",
				Description:      "Taken from the alpha of the northern ridge.",
				Type:             shared.ItemTypeEquipment,
				Icon:             "icons/wolffang_pendant",
				Value:            80,
				LevelRequirement: 6,
				BonusStats: map[shared.StatKind]float64{
					shared.StatPhysicalAttack:      6,
					shared.StatCritRate:            0.03,
					shared.StatPhysicalDamageBonus: 0.04,
				},
				EnhanceLimit: 3,
				Slot:         shared.SlotNecklace,
				Rarity:       shared.RarityEpic,
			},
		},
		Consumables: []ConsumableRecord{
			{
				ID:          "minor-healing-potion",
				Name:        "Minor Healing Potion",
				Description: "Tastes of copper and mint.",
				Type:        shared.ItemTypeConsumable,
				Icon:        "icons/minor_healing_potion",
				Stackable:   true,
				Value:       10,
				EffectType:  shared.EffectImmediate,
				EffectValue: 50,
				Attribute:   shared.EffectAttributeHeal,
			},
			{
				ID:          "regen-draught",
				Name:        "Regeneration Draught",
				Description: "Heals slowly but steadily.",
				Type:        shared.ItemTypeConsumable,
				Icon:        "icons/regen_draught",
				Stackable:   true,
				Value:       18,
				EffectType:  shared.EffectOvertime,
				EffectValue: 8,
				Duration:    10,
				Attribute:   shared.EffectAttributeHeal,
			},
			{
				ID:          "scroll-of-return",
				Name:        "Scroll of Return",
				Description: "One-way trip back to town.",
				Type:        shared.ItemTypeConsumable,
				Icon:        "icons/scroll_of_return",
				Stackable:   true,
				Value:       25,
				EffectType:  shared.EffectSpecial,
				EffectValue: 0,
			},
		},
		Materials: []MaterialRecord{
			{
				ID:          "iron-ore",
				Name:        "Iron Ore",
				Description: "Unrefined, heavy, and dependable.",
				Type:        shared.ItemTypeMaterial,
				Icon:        "icons/iron_ore",
				Stackable:   true,
				Value:       5,
			},
			{
				ID:          "wolf-pelt",
				Name:        "Wolf Pelt",
				Description: "Still smells faintly of the hunt.",
				Type:        shared.ItemTypeMaterial,
				Icon:        "icons/wolf_pelt",
				Stackable:   true,
				Value:       8,
			},
		},
		Monsters: []MonsterRecord{
			{
				ID:    "ridge-wolf",
				Name:  "Ridge Wolf",
				Level: 3,
				Stats: map[shared.StatKind]float64{
					shared.StatHP:              120,
					shared.StatPhysicalAttack:  14,
					shared.StatPhysicalDefense: 6,
					shared.StatMoveSpeed:       140,
				},
				DropItemIDs: []string{"wolf-pelt", "minor-healing-potion"},
				GoldMin:     4,
				GoldMax:     12,
			},
			{
				ID:    "mine-golem",
				Name:  "Mine Golem",
				Level: 7,
				Stats: map[shared.StatKind]float64{
					shared.StatHP:              420,
					shared.StatPhysicalAttack:  26,
					shared.StatPhysicalDefense: 22,
					shared.StatMoveSpeed:       70,
				},
				DropItemIDs: []string{"iron-ore"},
				GoldMin:     15,
				GoldMax:     40,
			},
		},
	}
}
