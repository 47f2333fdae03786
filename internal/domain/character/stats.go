package character

import (
	"math"
	"sync"

	"github.com/emberforge/arpg-engine/internal/domain/shared"
	"github.com/emberforge/arpg-engine/internal/events"
)

// StatsLedger is the per-character record of base attributes and the
// additive equipment-bonus overlay. The effective value of every attribute
// is base + overlay. A ledger is exclusively owned by one character; only
// its slot manager writes the overlay.
type StatsLedger struct {
	mu sync.Mutex

	base    map[shared.StatKind]float64
	overlay map[shared.StatKind]float64

	currentHP     float64
	currentEnergy float64

	level      int
	experience float64

	dispatcher *events.Dispatcher
}

// NewStatsLedger creates an empty ledger at level 1. The dispatcher is
// optional; without one level-up signals are dropped.
func NewStatsLedger(dispatcher *events.Dispatcher) *StatsLedger {
	return &StatsLedger{
		base:       make(map[shared.StatKind]float64),
		overlay:    make(map[shared.StatKind]float64),
		level:      1,
		dispatcher: dispatcher,
	}
}

// SetBase assigns a base attribute directly. Used at character
// initialization from definition records.
func (s *StatsLedger) SetBase(kind shared.StatKind, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.base[kind] = value

	if kind == shared.StatHP || kind == shared.StatEnergy {
		s.clampCurrents()
	}
}

// SetBaseStats assigns a batch of base attributes
func (s *StatsLedger) SetBaseStats(stats map[shared.StatKind]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for kind, v := range stats {
		s.base[kind] = v
	}
	s.clampCurrents()
}

// Get returns the effective value of an attribute: base plus overlay
func (s *StatsLedger) Get(kind shared.StatKind) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.effective(kind)
}

func (s *StatsLedger) effective(kind shared.StatKind) float64 {
	return s.base[kind] + s.overlay[kind]
}

// SetEquipmentBonuses replaces the whole overlay; it is never a merge.
// Current HP and energy are re-clamped to the new maxima immediately.
func (s *StatsLedger) SetEquipmentBonuses(bonuses map[shared.StatKind]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.overlay = make(map[shared.StatKind]float64, len(bonuses))
	for kind, v := range bonuses {
		s.overlay[kind] = v
	}

	s.clampCurrents()
}

// ResetEquipmentBonuses clears the overlay
func (s *StatsLedger) ResetEquipmentBonuses() {
	s.SetEquipmentBonuses(nil)
}

// EquipmentBonuses returns a copy of the overlay
func (s *StatsLedger) EquipmentBonuses() map[shared.StatKind]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	bonuses := make(map[shared.StatKind]float64, len(s.overlay))
	for kind, v := range s.overlay {
		bonuses[kind] = v
	}
	return bonuses
}

func (s *StatsLedger) clampCurrents() {
	if maxHP := s.effective(shared.StatHP); s.currentHP > maxHP {
		s.currentHP = maxHP
	}
	if s.currentHP < 0 {
		s.currentHP = 0
	}
	if maxEnergy := s.effective(shared.StatEnergy); s.currentEnergy > maxEnergy {
		s.currentEnergy = maxEnergy
	}
	if s.currentEnergy < 0 {
		s.currentEnergy = 0
	}
}

// MaxHP returns the effective hit point maximum
func (s *StatsLedger) MaxHP() float64 {
	return s.Get(shared.StatHP)
}

// MaxEnergy returns the effective energy maximum
func (s *StatsLedger) MaxEnergy() float64 {
	return s.Get(shared.StatEnergy)
}

// CurrentHP returns the bounded current hit points
func (s *StatsLedger) CurrentHP() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentHP
}

// SetCurrentHP clamps to [0, MaxHP]
func (s *StatsLedger) SetCurrentHP(value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentHP = value
	s.clampCurrents()
}

// CurrentEnergy returns the bounded current energy
func (s *StatsLedger) CurrentEnergy() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentEnergy
}

// SetCurrentEnergy clamps to [0, MaxEnergy]
func (s *StatsLedger) SetCurrentEnergy(value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentEnergy = value
	s.clampCurrents()
}

// CritDamage derives the crit multiplier from damage stability:
// log10(10 + 10*log10(stability)). Stability below 1 reads as 1, which
// pins the floor at exactly 1.0.
func (s *StatsLedger) CritDamage() float64 {
	stability := s.Get(shared.StatDamageStability)
	if stability < 1 {
		stability = 1
	}
	return math.Log10(10 + 10*math.Log10(stability))
}

// RegenerateEnergy applies continuous recovery for the elapsed wall time:
// energyRecovery/100 units per second, clamped to the maximum.
func (s *StatsLedger) RegenerateEnergy(elapsedMs float64) {
	if elapsedMs <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rate := s.effective(shared.StatEnergyRecovery) / 100
	s.currentEnergy += rate * (elapsedMs / 1000)
	s.clampCurrents()
}

// Level returns the current level
func (s *StatsLedger) Level() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// Experience returns experience accumulated toward the next level
func (s *StatsLedger) Experience() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.experience
}

// AddExp accumulates experience and reports whether a level-up occurred.
// At most one level is gained per call even when the added amount would
// cross several thresholds; the surplus simply waits for the next call.
func (s *StatsLedger) AddExp(amount float64) bool {
	if amount <= 0 {
		return false
	}

	s.mu.Lock()
	s.experience += amount

	threshold := ExpToNextLevel(s.level)
	if s.experience < threshold {
		s.mu.Unlock()
		return false
	}

	s.experience -= threshold
	s.level++
	newLevel := s.level
	dispatcher := s.dispatcher
	s.mu.Unlock()

	if dispatcher != nil {
		dispatcher.Emit(events.Event{
			Type:  events.TypeLevelUp,
			Level: newLevel,
		})
	}

	return true
}
