package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label names
const (
	LabelOp     = "op"
	LabelRarity = "rarity"
	LabelResult = "result"
)

// Inventory metrics
var (
	InventoryMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_inventory_mutations_total",
			Help: "Total number of inventory mutations by operation",
		},
		[]string{LabelOp},
	)

	Transfers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_transfers_total",
			Help: "Total number of cross-container transfers by result",
		},
		[]string{LabelResult},
	)
)

// Generation metrics
var (
	EquipmentGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_equipment_generated_total",
			Help: "Total number of generated equipment instances by rarity",
		},
		[]string{LabelRarity},
	)
)
