package defs

//go:generate mockgen -destination=mock/mock_client.go -package=mockdefs . Client

// Client is the definition-source boundary. Templates are loaded once,
// treated read-only, and served as independent copies.
type Client interface {
	GetEquipmentByID(id string) (*EquipmentRecord, error)
	GetConsumableByID(id string) (*ConsumableRecord, error)
	GetMaterialByID(id string) (*MaterialRecord, error)
	GetMonsterByID(id string) (*MonsterRecord, error)

	GetAllEquipment() []EquipmentRecord
	GetAllConsumables() []ConsumableRecord
	GetAllMaterials() []MaterialRecord
	GetAllMonsters() []MonsterRecord
}
