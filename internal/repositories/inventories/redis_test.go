package inventories

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/emberforge/arpg-engine/internal/clients/defs"
	engerr "github.com/emberforge/arpg-engine/internal/errors"
	"github.com/emberforge/arpg-engine/internal/inventory"
	itemservice "github.com/emberforge/arpg-engine/internal/services/item"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	server  *miniredis.Miniredis
	client  *redis.Client
	factory itemservice.Service
	repo    Repository
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	server, err := miniredis.Run()
	s.Require().NoError(err)
	s.server = server

	s.client = redis.NewClient(&redis.Options{Addr: server.Addr()})

	defsClient, err := defs.NewStaticClient(defs.DefaultCatalog())
	s.Require().NoError(err)
	s.factory = itemservice.NewService(&itemservice.ServiceConfig{
		DefsClient: defsClient,
	})

	s.repo = NewRedis(&RedisConfig{
		Client:      s.client,
		ItemFactory: s.factory,
	})
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	_ = s.client.Close()
	s.server.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) seedInventory() *inventory.Inventory {
	inv := inventory.New(30, 180)

	potion, err := s.factory.CreateConsumable(s.ctx, "regen-draught", 7)
	s.Require().NoError(err)
	s.Require().True(inv.AddItem(potion, 7))

	bow, err := s.factory.CreateEquipment(s.ctx, "hunting-bow")
	s.Require().NoError(err)
	s.Require().True(inv.AddItem(bow, 1))

	return inv
}

func (s *RedisRepositoryTestSuite) TestSaveAndLoadRoundTrip() {
	s.Require().NoError(s.repo.Save(s.ctx, "owner-1", "player", s.seedInventory()))

	loaded, err := s.repo.Load(s.ctx, "owner-1", "player")
	s.Require().NoError(err)

	s.Equal(30, loaded.Capacity())
	s.Equal(180, loaded.Gold())
	s.Equal(2, loaded.UsedSlots())
	s.Equal(7, loaded.TotalQuantityOf("regen-draught"))
	s.Equal(1, loaded.TotalQuantityOf("hunting-bow"))
}

func (s *RedisRepositoryTestSuite) TestSaveWritesKeyAndIndex() {
	s.Require().NoError(s.repo.Save(s.ctx, "owner-1", "player", inventory.New(30, 0)))

	s.True(s.server.Exists("inventory:owner-1:player"))
	members, err := s.server.SMembers("owner:owner-1:inventories")
	s.Require().NoError(err)
	s.Equal([]string{"player"}, members)
}

func (s *RedisRepositoryTestSuite) TestLoadMissingIsNotFound() {
	_, err := s.repo.Load(s.ctx, "owner-1", "player")
	s.Require().Error(err)
	s.True(engerr.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestLoadCorruptPayload() {
	s.Require().NoError(s.server.Set("inventory:owner-1:player", "{not json"))

	_, err := s.repo.Load(s.ctx, "owner-1", "player")
	s.Require().Error(err)
	s.False(engerr.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestSaveValidatesArguments() {
	inv := inventory.New(5, 0)
	s.Error(s.repo.Save(s.ctx, "", "player", inv))
	s.Error(s.repo.Save(s.ctx, "owner-1", "", inv))
	s.Error(s.repo.Save(s.ctx, "owner-1", "player", nil))
}

func (s *RedisRepositoryTestSuite) TestLoadAll() {
	s.Require().NoError(s.repo.Save(s.ctx, "owner-1", "player", s.seedInventory()))
	s.Require().NoError(s.repo.Save(s.ctx, "owner-1", "storage", inventory.New(50, 40)))
	s.Require().NoError(s.repo.Save(s.ctx, "owner-2", "player", inventory.New(30, 0)))

	all, err := s.repo.LoadAll(s.ctx, "owner-1")
	s.Require().NoError(err)

	s.Require().Len(all, 2)
	s.Equal(180, all["player"].Gold())
	s.Equal(40, all["storage"].Gold())
}

func (s *RedisRepositoryTestSuite) TestLoadAllEmptyOwner() {
	all, err := s.repo.LoadAll(s.ctx, "nobody")
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *RedisRepositoryTestSuite) TestDeleteRemovesKeyAndIndexEntry() {
	s.Require().NoError(s.repo.Save(s.ctx, "owner-1", "player", inventory.New(30, 0)))
	s.Require().NoError(s.repo.Save(s.ctx, "owner-1", "storage", inventory.New(50, 0)))

	s.Require().NoError(s.repo.Delete(s.ctx, "owner-1", "player"))

	s.False(s.server.Exists("inventory:owner-1:player"))
	keys, err := s.repo.ListKeys(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.Equal([]string{"storage"}, keys)
}

func (s *RedisRepositoryTestSuite) TestListKeys() {
	keys, err := s.repo.ListKeys(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.Empty(keys)

	s.Require().NoError(s.repo.Save(s.ctx, "owner-1", "player", inventory.New(30, 0)))
	s.Require().NoError(s.repo.Save(s.ctx, "owner-1", "storage", inventory.New(50, 0)))

	keys, err = s.repo.ListKeys(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"player", "storage"}, keys)
}

func (s *RedisRepositoryTestSuite) TestRehydrationFailureSurfaces() {
	// A payload naming an id the catalog no longer carries must fail the
	// load loudly instead of dropping the slot.
	payload := `{"capacity":10,"gold":0,"items":[{"id":"deleted-item","quantity":1,"type":"equipment"}]}`
	s.Require().NoError(s.server.Set("inventory:owner-1:player", payload))
	s.Require().NoError(s.client.SAdd(s.ctx, "owner:owner-1:inventories", "player").Err())

	_, err := s.repo.Load(s.ctx, "owner-1", "player")
	s.Require().Error(err)
}
