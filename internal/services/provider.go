package services

import (
	"github.com/emberforge/arpg-engine/internal/clients/defs"
	"github.com/emberforge/arpg-engine/internal/domain/character"
	"github.com/emberforge/arpg-engine/internal/events"
	"github.com/emberforge/arpg-engine/internal/repositories/inventories"
	"github.com/emberforge/arpg-engine/internal/rng"
	generatorService "github.com/emberforge/arpg-engine/internal/services/generator"
	inventoryService "github.com/emberforge/arpg-engine/internal/services/inventory"
	itemService "github.com/emberforge/arpg-engine/internal/services/item"
)

// Provider holds all service instances for one character
type Provider struct {
	ItemService      itemService.Service
	GeneratorService generatorService.Service
	InventoryService inventoryService.Service

	Dispatcher  *events.Dispatcher
	Ledger      *character.StatsLedger
	SlotManager *character.SlotManager
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	OwnerID             string
	DefsClient          defs.Client
	InventoryRepository inventories.Repository
	Random              rng.Source

	PlayerCapacity  int
	StorageCapacity int
	StartingGold    int
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	defsClient := cfg.DefsClient
	if defsClient == nil {
		static, err := defs.NewStaticClient(defs.DefaultCatalog())
		if err != nil {
			panic("built-in catalog is invalid: " + err.Error())
		}
		defsClient = static
	}

	itemSvc := itemService.NewService(&itemService.ServiceConfig{
		DefsClient: defsClient,
	})

	generatorSvc := generatorService.NewService(&generatorService.ServiceConfig{
		DefsClient:  defsClient,
		ItemFactory: itemSvc,
		Random:      cfg.Random,
	})

	// Use in-memory repository if none provided
	invRepo := cfg.InventoryRepository
	if invRepo == nil {
		invRepo = inventories.NewInMemoryRepository(itemSvc)
	}

	dispatcher := events.NewDispatcher()
	ledger := character.NewStatsLedger(dispatcher)
	slots := character.NewSlotManager(ledger, dispatcher)

	ownerID := cfg.OwnerID
	if ownerID == "" {
		ownerID = "local"
	}

	inventorySvc := inventoryService.NewService(&inventoryService.ServiceConfig{
		OwnerID:         ownerID,
		Ledger:          ledger,
		SlotManager:     slots,
		ItemFactory:     itemSvc,
		Repository:      invRepo,
		PlayerCapacity:  cfg.PlayerCapacity,
		StorageCapacity: cfg.StorageCapacity,
		StartingGold:    cfg.StartingGold,
	})

	return &Provider{
		ItemService:      itemSvc,
		GeneratorService: generatorSvc,
		InventoryService: inventorySvc,
		Dispatcher:       dispatcher,
		Ledger:           ledger,
		SlotManager:      slots,
	}
}
