package shared

// StatKind identifies one numeric character attribute. Keeping the set
// enumerated lets stat maps stay sparse while lookups remain exhaustive.
type StatKind string

const (
	StatHP                  StatKind = "hp"
	StatEnergy              StatKind = "energy"
	StatPhysicalAttack      StatKind = "physical_attack"
	StatMagicAttack         StatKind = "magic_attack"
	StatPhysicalDefense     StatKind = "physical_defense"
	StatMagicDefense        StatKind = "magic_defense"
	StatAccuracy            StatKind = "accuracy"
	StatEvasion             StatKind = "evasion"
	StatPhysicalPenetration StatKind = "physical_penetration"
	StatMagicPenetration    StatKind = "magic_penetration"
	StatPhysicalDamageBonus StatKind = "physical_damage_bonus"
	StatMagicDamageBonus    StatKind = "magic_damage_bonus"
	StatMoveSpeed           StatKind = "move_speed"
	StatCritRate            StatKind = "crit_rate"
	StatDamageStability     StatKind = "damage_stability"
	StatVulnerability       StatKind = "vulnerability"
	StatResistance          StatKind = "resistance"
	StatEnergyRecovery      StatKind = "energy_recovery"
)

// AllStatKinds returns every stat kind in declaration order
func AllStatKinds() []StatKind {
	return []StatKind{
		StatHP,
		StatEnergy,
		StatPhysicalAttack,
		StatMagicAttack,
		StatPhysicalDefense,
		StatMagicDefense,
		StatAccuracy,
		StatEvasion,
		StatPhysicalPenetration,
		StatMagicPenetration,
		StatPhysicalDamageBonus,
		StatMagicDamageBonus,
		StatMoveSpeed,
		StatCritRate,
		StatDamageStability,
		StatVulnerability,
		StatResistance,
		StatEnergyRecovery,
	}
}

// IsValid reports whether the kind is a known stat
func (k StatKind) IsValid() bool {
	for _, kind := range AllStatKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// IsRate reports whether the stat is a rate/percentage kind. Rate stats
// keep three decimal places through generation and enhancement rounding.
func (k StatKind) IsRate() bool {
	switch k {
	case StatCritRate, StatPhysicalDamageBonus, StatMagicDamageBonus,
		StatVulnerability, StatResistance, StatEnergyRecovery:
		return true
	}
	return false
}
