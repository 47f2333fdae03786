package shared

// AttackRange is the reach class of a weapon template
type AttackRange string

const (
	RangeMelee  AttackRange = "melee"
	RangeMedium AttackRange = "medium"
	RangeLong   AttackRange = "long"
	RangeNone   AttackRange = ""
)

// WeaponClass is the combat classification derived from the equipped
// weapon's range. An empty weapon slot classifies as WeaponClassAny.
type WeaponClass string

const (
	WeaponClassAny    WeaponClass = "any"
	WeaponClassMelee  WeaponClass = "melee"
	WeaponClassMedium WeaponClass = "medium"
	WeaponClassRanged WeaponClass = "ranged"
)

// ClassForRange maps a weapon's attack range to its combat class.
// A weapon without a declared range fights as melee.
func ClassForRange(r AttackRange) WeaponClass {
	switch r {
	case RangeMedium:
		return WeaponClassMedium
	case RangeLong:
		return WeaponClassRanged
	default:
		return WeaponClassMelee
	}
}
