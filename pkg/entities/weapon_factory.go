package entities

import (
	"fmt"

	"github.com/gonewx/bossrush/pkg/components"
	"github.com/gonewx/bossrush/pkg/config"
	"github.com/gonewx/bossrush/pkg/ecs"
	"github.com/gonewx/bossrush/pkg/types"
)

// NewWeapon 创建武器实体
// 武器冷却从 0 开始，创建后即可开火
func NewWeapon(em *ecs.EntityManager, weaponType types.WeaponType, stats config.WeaponStats) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if stats.Ammo < components.UnlimitedAmmo {
		return 0, fmt.Errorf("weapon %s: invalid ammo %d", weaponType, stats.Ammo)
	}

	count := stats.ProjectileCount
	if count < 1 {
		count = 1
	}
	size := stats.Size
	if size <= 0 {
		size = 8
	}

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.WeaponComponent{
		Type:            weaponType,
		Ammo:            stats.Ammo,
		RefillAmmo:      stats.RefillAmmo,
		Cooldown:        stats.Cooldown,
		Damage:          stats.Damage,
		Speed:           stats.Speed,
		ProjectileCount: count,
		SpreadDegrees:   stats.SpreadDegrees,
		TrailLength:     stats.TrailLength,
		TurnRate:        stats.TurnRate,
		Size:            size,
		Color:           stats.Color,
	})
	return entityID, nil
}

// EquipLoadout 按配置为玩家创建全部武器并装入武器栏
func EquipLoadout(em *ecs.EntityManager, playerID ecs.EntityID, cfg *config.WeaponStatsConfig) error {
	loadout, ok := ecs.GetComponent[*components.LoadoutComponent](em, playerID)
	if !ok {
		return fmt.Errorf("entity %d has no loadout", playerID)
	}

	weaponTypes, err := cfg.LoadoutTypes()
	if err != nil {
		return fmt.Errorf("loadout: %w", err)
	}

	for _, weaponType := range weaponTypes {
		stats, ok := cfg.Get(weaponType)
		if !ok {
			return fmt.Errorf("weapon %s: no stats", weaponType)
		}
		weaponID, err := NewWeapon(em, weaponType, stats)
		if err != nil {
			return err
		}
		loadout.Weapons = append(loadout.Weapons, weaponID)
	}
	loadout.Current = 0
	return nil
}
