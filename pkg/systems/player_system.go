package systems

import (
	"log"

	"github.com/gonewx/bossrush/pkg/components"
	"github.com/gonewx/bossrush/pkg/ecs"
	"github.com/gonewx/bossrush/pkg/event"
)

// PlayerSystem 处理玩家的振翅飞行物理和出界判定
type PlayerSystem struct {
	em     *ecs.EntityManager
	events *event.Queue
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *ecs.EntityManager, events *event.Queue) *PlayerSystem {
	return &PlayerSystem{em: em, events: events}
}

// Flap 记录一次振翅意图，在下一次 Update 中生效
func (s *PlayerSystem) Flap(playerID ecs.EntityID) {
	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, playerID); ok && !player.Defeated {
		player.Flapped = true
	}
}

// Update 推进玩家一个模拟步
func (s *PlayerSystem) Update() {
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.em) {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if player.Defeated {
			continue
		}

		if player.GraceRemaining > 0 {
			player.GraceRemaining--
		}

		if player.Flapped {
			player.VelY = player.FlapVel
			player.Flapped = false
		} else if player.VelY < player.MaxVelY {
			player.VelY += player.Gravity
			if player.VelY > player.MaxVelY {
				player.VelY = player.MaxVelY
			}
		}

		halfHeight := 0.0
		if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
			halfHeight = col.Height / 2
		}

		pos.Y += player.VelY
		if pos.Y < player.MinY {
			pos.Y = player.MinY
			player.VelY = 0
		}

		// 飞出屏幕上沿同样判负
		if pos.Y-halfHeight < 0 && !player.IsInvulnerable() {
			s.Defeat(id, "ceiling")
			continue
		}
		if pos.Y+halfHeight >= player.FloorY {
			pos.Y = player.FloorY - halfHeight
			player.VelY = 0
			if !player.IsInvulnerable() {
				s.Defeat(id, "floor")
			}
		}
	}
}

// Defeat 判定玩家死亡，只发布一次 PlayerDefeated
func (s *PlayerSystem) Defeat(playerID ecs.EntityID, cause string) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, playerID)
	if !ok || player.DefeatNotified {
		return
	}
	player.Defeated = true
	player.DefeatNotified = true
	s.events.Publish(event.Event{Type: event.PlayerDefeated, Entity: playerID})
	log.Printf("[PlayerSystem] 玩家 %d 死亡: %s", playerID, cause)
}
