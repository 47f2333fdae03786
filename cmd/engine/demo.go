package main

import (
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/emberforge/arpg-engine/internal/clients/defs"
	"github.com/emberforge/arpg-engine/internal/config"
	"github.com/emberforge/arpg-engine/internal/domain/shared"
	"github.com/emberforge/arpg-engine/internal/events"
	"github.com/emberforge/arpg-engine/internal/repositories/inventories"
	"github.com/emberforge/arpg-engine/internal/services"
	itemService "github.com/emberforge/arpg-engine/internal/services/item"
)

var demoOwner string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a short equip-and-fight walkthrough against the built-in catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		defsClient, err := defs.NewStaticClient(defs.DefaultCatalog())
		if err != nil {
			return err
		}

		// Try Redis if configured, fall back to in-memory
		var repo inventories.Repository
		if cfg.Redis.Addr != "" {
			redisClient := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
				log.Printf("Redis unavailable at %s: %v", cfg.Redis.Addr, pingErr)
				log.Println("Falling back to in-memory repository")
			} else {
				log.Printf("Connected to Redis at %s", cfg.Redis.Addr)
				repo = inventories.NewRedis(&inventories.RedisConfig{
					Client: redisClient,
					ItemFactory: itemService.NewService(&itemService.ServiceConfig{
						DefsClient: defsClient,
					}),
				})
			}
		}

		provider := services.NewProvider(&services.ProviderConfig{
			OwnerID:             demoOwner,
			DefsClient:          defsClient,
			InventoryRepository: repo,
			PlayerCapacity:      cfg.Inventory.PlayerCapacity,
			StorageCapacity:     cfg.Inventory.StorageCapacity,
			StartingGold:        cfg.Inventory.StartingGold,
		})

		provider.Dispatcher.Register(func(ev events.Event) {
			log.Printf("event %s item=%s qty=%d gold=%d slot=%s level=%d",
				ev.Type, ev.ItemID, ev.Quantity, ev.Gold, ev.Slot, ev.Level)
		})

		ledger := provider.Ledger
		ledger.SetBaseStats(map[shared.StatKind]float64{
			shared.StatHP:             120,
			shared.StatEnergy:         50,
			shared.StatPhysicalAttack: 14,
			shared.StatCritRate:       0.05,
		})

		inv := provider.InventoryService
		if err := inv.Load(ctx); err != nil {
			return err
		}

		if _, err := inv.GrantItem(ctx, "minor-healing-potion", 5); err != nil {
			return err
		}

		sword, err := provider.GeneratorService.GenerateEquipment(ctx, "rusty-sword", 0.2)
		if err != nil {
			return err
		}
		if !inv.Player().InsertSlot(sword) {
			return fmt.Errorf("inventory rejected the generated weapon")
		}
		if err := inv.EquipItem(sword); err != nil {
			return err
		}

		fmt.Printf("character level %d, weapon class %s\n", ledger.Level(), provider.SlotManager.CurrentWeaponClass())
		fmt.Printf("physical attack %.0f, crit damage %.3f\n",
			ledger.Get(shared.StatPhysicalAttack), ledger.CritDamage())
		fmt.Printf("inventory %d/%d slots, %d gold\n",
			inv.Player().UsedSlots(), inv.Player().Capacity(), inv.Player().Gold())

		if err := inv.Save(ctx); err != nil {
			return err
		}
		log.Printf("saved inventories for owner %s", demoOwner)

		return nil
	},
}

func init() {
	demoCmd.Flags().StringVar(&demoOwner, "owner", "demo", "owner id the inventories are stored under")
}
