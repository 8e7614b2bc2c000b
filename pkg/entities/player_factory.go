package entities

import (
	"fmt"

	"github.com/gonewx/bossrush/pkg/components"
	"github.com/gonewx/bossrush/pkg/config"
	"github.com/gonewx/bossrush/pkg/ecs"
)

// NewPlayer 创建玩家实体
// 玩家固定在屏幕左侧 20% 处，只能上下飞行
func NewPlayer(em *ecs.EntityManager, invulnerable bool) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: config.GameWindowWidth * config.PlayerXRatio,
		Y: config.ViewportHeight / 2,
	})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  config.PlayerWidth,
		Height: config.PlayerHeight,
	})
	ecs.AddComponent(em, entityID, &components.PlayerComponent{
		VelY:           config.PlayerInitialVelY,
		MaxVelY:        config.PlayerMaxVelY,
		Gravity:        config.PlayerGravity,
		FlapVel:        config.PlayerFlapVel,
		MinY:           -2 * config.PlayerHeight,
		FloorY:         config.ViewportHeight,
		Invulnerable:   invulnerable,
		GraceRemaining: config.PlayerSpawnGrace,
	})
	ecs.AddComponent(em, entityID, &components.LoadoutComponent{})

	return entityID, nil
}
