package systems

import (
	"github.com/gonewx/bossrush/pkg/components"
	"github.com/gonewx/bossrush/pkg/ecs"
	"github.com/gonewx/bossrush/pkg/event"
	"github.com/jakecoffman/cp"
)

// CombatSystem 处理投射物与 Boss、玩家之间的碰撞
//
// 玩家投射物命中 Boss：造成伤害、移除投射物、发布得分事件。
// Boss 投射物命中玩家：移除投射物；玩家不处于无敌状态时判定死亡。
// 每个投射物最多命中一次，因此每次接触只产生一个命中事件。
type CombatSystem struct {
	em           *ecs.EntityManager
	events       *event.Queue
	bossSystem   *BossSystem
	playerSystem *PlayerSystem
}

// NewCombatSystem 创建战斗系统
func NewCombatSystem(em *ecs.EntityManager, events *event.Queue, bossSystem *BossSystem, playerSystem *PlayerSystem) *CombatSystem {
	return &CombatSystem{
		em:           em,
		events:       events,
		bossSystem:   bossSystem,
		playerSystem: playerSystem,
	}
}

// boundingBox 返回实体的轴对齐包围盒，碰撞盒以实体位置为中心
func boundingBox(pos *components.PositionComponent, col *components.CollisionComponent) cp.BB {
	center := cp.Vector{X: pos.X + col.OffsetX, Y: pos.Y + col.OffsetY}
	return cp.NewBBForExtents(center, col.Width/2, col.Height/2)
}

func (s *CombatSystem) box(id ecs.EntityID) (cp.BB, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return cp.BB{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id)
	if !ok {
		return cp.BB{}, false
	}
	return boundingBox(pos, col), true
}

// Update 执行一次完整的碰撞检测
func (s *CombatSystem) Update() {
	projectiles := ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.CollisionComponent](s.em)
	s.resolvePlayerShots(projectiles)
	s.resolveBossShots(projectiles)
}

func (s *CombatSystem) resolvePlayerShots(projectiles []ecs.EntityID) {
	bosses := ecs.GetEntitiesWith3[*components.BossComponent, *components.PositionComponent, *components.CollisionComponent](s.em)
	if len(bosses) == 0 {
		return
	}

	for _, projID := range projectiles {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, projID)
		if proj.Side != components.SidePlayer || proj.Consumed || proj.IgnitionDelay > 0 || !s.em.IsAlive(projID) {
			continue
		}
		projBox, _ := s.box(projID)

		for _, bossID := range bosses {
			boss, _ := ecs.GetComponent[*components.BossComponent](s.em, bossID)
			if boss.Phase == components.BossPhaseDefeated || !s.em.IsAlive(bossID) {
				continue
			}
			bossBox, _ := s.box(bossID)
			if !projBox.Intersects(bossBox) {
				continue
			}

			proj.Consumed = true
			s.em.DestroyEntity(projID)
			s.bossSystem.TakeDamage(bossID, proj.Damage)
			s.events.Publish(event.Event{Type: event.ScoreIncrement, Entity: bossID, Amount: 1})
			break
		}
	}
}

func (s *CombatSystem) resolveBossShots(projectiles []ecs.EntityID) {
	players := ecs.GetEntitiesWith3[*components.PlayerComponent, *components.PositionComponent, *components.CollisionComponent](s.em)
	if len(players) == 0 {
		return
	}

	for _, projID := range projectiles {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, projID)
		if proj.Side != components.SideBoss || proj.Consumed || proj.IgnitionDelay > 0 || !s.em.IsAlive(projID) {
			continue
		}
		projBox, _ := s.box(projID)

		for _, playerID := range players {
			player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, playerID)
			if player.Defeated {
				continue
			}
			playerBox, _ := s.box(playerID)
			if !projBox.Intersects(playerBox) {
				continue
			}

			proj.Consumed = true
			s.em.DestroyEntity(projID)
			s.events.Publish(event.Event{Type: event.PlayerHit, Entity: playerID, Amount: proj.Damage})
			if !player.IsInvulnerable() {
				s.playerSystem.Defeat(playerID, "projectile")
			}
			break
		}
	}
}
