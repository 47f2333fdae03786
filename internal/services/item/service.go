package item

//go:generate mockgen -destination=mock/mock_service.go -package=mockitem -source=service.go

import (
	"context"

	"github.com/emberforge/arpg-engine/internal/clients/defs"
	itemdomain "github.com/emberforge/arpg-engine/internal/domain/item"
	"github.com/emberforge/arpg-engine/internal/domain/shared"
	engerr "github.com/emberforge/arpg-engine/internal/errors"
	"github.com/emberforge/arpg-engine/internal/uuid"
)

// Service constructs item instances from definition templates
type Service interface {
	// CreateItem resolves the id across every template kind and builds an
	// instance with the given quantity
	CreateItem(ctx context.Context, id string, qty int) (itemdomain.Item, error)

	// CreateEquipment builds an equipment instance from its template
	CreateEquipment(ctx context.Context, id string) (*itemdomain.Equipment, error)

	// CreateEquipmentFromRecord builds an equipment instance from an
	// already-resolved (possibly generated) record
	CreateEquipmentFromRecord(ctx context.Context, rec *defs.EquipmentRecord) (*itemdomain.Equipment, error)

	// CreateConsumable builds a consumable instance from its template
	CreateConsumable(ctx context.Context, id string, qty int) (*itemdomain.Consumable, error)

	// CreateMaterial builds a material instance from its template
	CreateMaterial(ctx context.Context, id string, qty int) (*itemdomain.Material, error)

	// Rehydrate rebuilds an instance from its persistence record
	Rehydrate(ctx context.Context, rec itemdomain.Record) (itemdomain.Item, error)
}

// service implements the Service interface
type service struct {
	defsClient    defs.Client
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	DefsClient    defs.Client    // Required
	UUIDGenerator uuid.Generator // Optional, defaults to google uuid
}

// NewService creates a new item factory service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.DefsClient == nil {
		panic("defs client is required")
	}

	svc := &service{
		defsClient:    cfg.DefsClient,
		uuidGenerator: cfg.UUIDGenerator,
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewRandomGenerator()
	}

	return svc
}

// CreateItem resolves an id across equipment, consumables and materials
func (s *service) CreateItem(ctx context.Context, id string, qty int) (itemdomain.Item, error) {
	if eq, err := s.CreateEquipment(ctx, id); err == nil {
		return eq, nil
	}
	if c, err := s.CreateConsumable(ctx, id, qty); err == nil {
		return c, nil
	}
	if m, err := s.CreateMaterial(ctx, id, qty); err == nil {
		return m, nil
	}

	return nil, engerr.NotFoundf("no template with id '%s'", id).
		WithMeta("template_id", id)
}

// CreateEquipment builds an equipment instance from its template
func (s *service) CreateEquipment(ctx context.Context, id string) (*itemdomain.Equipment, error) {
	rec, err := s.defsClient.GetEquipmentByID(id)
	if err != nil {
		return nil, err
	}

	return itemdomain.NewEquipment(s.uuidGenerator.New(), rec), nil
}

// CreateEquipmentFromRecord builds an equipment instance from a resolved record
func (s *service) CreateEquipmentFromRecord(ctx context.Context, rec *defs.EquipmentRecord) (*itemdomain.Equipment, error) {
	if rec == nil {
		return nil, engerr.InvalidArgument("equipment record cannot be nil")
	}

	return itemdomain.NewEquipment(s.uuidGenerator.New(), rec), nil
}

// CreateConsumable builds a consumable instance from its template
func (s *service) CreateConsumable(ctx context.Context, id string, qty int) (*itemdomain.Consumable, error) {
	rec, err := s.defsClient.GetConsumableByID(id)
	if err != nil {
		return nil, err
	}

	if qty < 1 {
		qty = 1
	}
	return itemdomain.NewConsumable(s.uuidGenerator.New(), rec, qty), nil
}

// CreateMaterial builds a material instance from its template
func (s *service) CreateMaterial(ctx context.Context, id string, qty int) (*itemdomain.Material, error) {
	rec, err := s.defsClient.GetMaterialByID(id)
	if err != nil {
		return nil, err
	}

	if qty < 1 {
		qty = 1
	}
	return itemdomain.NewMaterial(s.uuidGenerator.New(), rec, qty), nil
}

// Rehydrate rebuilds an instance from its persistence record. The type tag
// routes the lookup; a tag that disagrees with where the id resolves is
// tolerated, matching the self-healing construction policy.
func (s *service) Rehydrate(ctx context.Context, rec itemdomain.Record) (itemdomain.Item, error) {
	switch rec.Type {
	case shared.ItemTypeEquipment:
		eq, err := s.CreateEquipment(ctx, rec.ID)
		if err != nil {
			return nil, err
		}
		eq.SetQuantity(rec.Quantity)
		return eq, nil
	case shared.ItemTypeConsumable:
		return s.CreateConsumable(ctx, rec.ID, rec.Quantity)
	case shared.ItemTypeMaterial:
		return s.CreateMaterial(ctx, rec.ID, rec.Quantity)
	default:
		return s.CreateItem(ctx, rec.ID, rec.Quantity)
	}
}
