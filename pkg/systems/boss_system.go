package systems

import (
	"log"

	"github.com/gonewx/bossrush/pkg/components"
	"github.com/gonewx/bossrush/pkg/config"
	"github.com/gonewx/bossrush/pkg/ecs"
	"github.com/gonewx/bossrush/pkg/event"
	"github.com/gonewx/bossrush/pkg/types"
	"github.com/gonewx/bossrush/pkg/utils"
)

// BossSystem 驱动 Boss 状态机
//
// 阶段流转：Preparing → Active → PreUltimateWarning → UltimateActive → Cooldown → Active ...
// 生命值归零时从任意阶段进入 Defeated（终态）。
// 原型差异（移动、普通攻击、大招）通过 behaviors 分派表委托给 BossBehavior。
type BossSystem struct {
	em        *ecs.EntityManager
	events    *event.Queue
	rng       *utils.PRNGService
	behaviors [types.BossTypeCount]BossBehavior
}

// NewBossSystem 创建 Boss 系统
func NewBossSystem(em *ecs.EntityManager, events *event.Queue, rng *utils.PRNGService) *BossSystem {
	return &BossSystem{
		em:        em,
		events:    events,
		rng:       rng,
		behaviors: defaultBossBehaviors(),
	}
}

// Update 推进所有 Boss 一个模拟步
func (s *BossSystem) Update() {
	for _, id := range ecs.GetEntitiesWith3[*components.BossComponent, *components.PositionComponent, *components.HealthComponent](s.em) {
		if !s.em.IsAlive(id) {
			continue
		}
		if ctx, ok := s.context(id); ok {
			s.stepBoss(ctx)
		}
	}
}

// Phase 返回 Boss 当前阶段，实体不存在时返回 false
func (s *BossSystem) Phase(id ecs.EntityID) (components.BossPhase, bool) {
	boss, ok := ecs.GetComponent[*components.BossComponent](s.em, id)
	if !ok {
		return 0, false
	}
	return boss.Phase, true
}

func (s *BossSystem) context(id ecs.EntityID) (*BossContext, bool) {
	boss, ok := ecs.GetComponent[*components.BossComponent](s.em, id)
	if !ok {
		return nil, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return nil, false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.em, id)
	if !ok {
		return nil, false
	}
	rage, ok := ecs.GetComponent[*components.RageComponent](s.em, id)
	if !ok {
		return nil, false
	}
	return &BossContext{
		ID:       id,
		Boss:     boss,
		Position: pos,
		Health:   health,
		Rage:     rage,
		em:       s.em,
		events:   s.events,
		rng:      s.rng,
	}, true
}

func (s *BossSystem) behavior(bossType types.BossType) BossBehavior {
	return s.behaviors[int(bossType)%types.BossTypeCount]
}

func (s *BossSystem) stepBoss(ctx *BossContext) {
	boss := ctx.Boss
	if boss.Phase == components.BossPhaseDefeated {
		return
	}

	boss.Tick++
	if ctx.Health.HitFlash > 0 {
		ctx.Health.HitFlash--
	}

	behavior := s.behavior(boss.Type)

	switch boss.Phase {
	case components.BossPhasePreparing:
		behavior.Move(ctx)
		boss.PreparationRemaining--
		if boss.PreparationRemaining <= 0 {
			boss.PreparationRemaining = 0
			boss.Phase = components.BossPhaseActive
			log.Printf("[BossSystem] Boss %d (%s) 准备完毕，进入战斗", ctx.ID, boss.Type)
		}

	case components.BossPhaseActive:
		behavior.Move(ctx)
		s.addRage(ctx, ctx.Rage.GainPerTick)
		if s.checkRageThreshold(ctx) {
			return
		}
		s.normalAttackCadence(ctx, behavior)

	case components.BossPhasePreUltimate:
		behavior.Move(ctx)
		if boss.PreUltimateRemaining%config.UltimateWarningInterval == 0 {
			s.events.Publish(event.Event{
				Type:      event.UltimateWarning,
				Entity:    ctx.ID,
				BossType:  boss.Type,
				Remaining: boss.PreUltimateRemaining,
			})
		}
		boss.PreUltimateRemaining--
		if boss.PreUltimateRemaining <= 0 {
			s.startUltimate(ctx, behavior)
		}

	case components.BossPhaseUltimate:
		behavior.Move(ctx)
		behavior.UltimateEffect(ctx)
		boss.UltimateTicker++
		boss.UltimateRemaining--
		if boss.UltimateRemaining <= 0 {
			boss.UltimateRemaining = 0
			boss.Phase = components.BossPhaseCooldown
			boss.CooldownRemaining = config.UltimateCooldown
			boss.FireCounter = 0
			s.events.Publish(event.Event{Type: event.UltimateEnded, Entity: ctx.ID, BossType: boss.Type})
			log.Printf("[BossSystem] Boss %d 大招结束，冷却 %d 步", ctx.ID, boss.CooldownRemaining)
		}

	case components.BossPhaseCooldown:
		behavior.Move(ctx)
		s.normalAttackCadence(ctx, behavior)
		boss.CooldownRemaining--
		if boss.CooldownRemaining <= 0 {
			boss.CooldownRemaining = 0
			boss.Phase = components.BossPhaseActive
		}
	}
}

func (s *BossSystem) normalAttackCadence(ctx *BossContext, behavior BossBehavior) {
	ctx.Boss.FireCounter++
	if ctx.Boss.FireCounter >= ctx.Boss.FireInterval {
		ctx.Boss.FireCounter = 0
		behavior.NormalAttack(ctx)
	}
}

func (s *BossSystem) startUltimate(ctx *BossContext, behavior BossBehavior) {
	boss := ctx.Boss
	boss.PreUltimateRemaining = 0
	boss.Phase = components.BossPhaseUltimate
	boss.UltimateRemaining = boss.UltimateDuration
	boss.UltimateTicker = 0
	behavior.UltimateSetup(ctx)
	s.events.Publish(event.Event{
		Type:      event.UltimateStarted,
		Entity:    ctx.ID,
		BossType:  boss.Type,
		Remaining: boss.UltimateRemaining,
	})
	log.Printf("[BossSystem] Boss %d (%s) 释放大招，持续 %d 步", ctx.ID, boss.Type, boss.UltimateRemaining)
}

// checkRageThreshold 仅在 Active 阶段检查怒气阈值
// 达到阈值时清空怒气并进入预警，返回 true
func (s *BossSystem) checkRageThreshold(ctx *BossContext) bool {
	if ctx.Boss.Phase != components.BossPhaseActive {
		return false
	}
	if ctx.Rage.Current < ctx.Rage.Threshold {
		return false
	}
	ctx.Rage.Current = 0
	ctx.Boss.Phase = components.BossPhasePreUltimate
	ctx.Boss.PreUltimateRemaining = config.PreUltimateDelay
	log.Printf("[BossSystem] Boss %d 怒气已满，%d 步后释放大招", ctx.ID, config.PreUltimateDelay)
	return true
}

// addRage 增加怒气并钳制在 [0, Max]
func (s *BossSystem) addRage(ctx *BossContext, amount float64) {
	rage := ctx.Rage
	rage.Current += amount
	if rage.Current > rage.Max {
		rage.Current = rage.Max
	}
	if rage.Current < 0 {
		log.Printf("[BossSystem] Boss %d 怒气为负 (%.2f)，已钳制为 0", ctx.ID, rage.Current)
		rage.Current = 0
	}
}

// accruesHitRage 受击怒气只在战斗阶段积累，准备和冷却阶段不积累
func accruesHitRage(phase components.BossPhase) bool {
	switch phase {
	case components.BossPhaseActive, components.BossPhasePreUltimate, components.BossPhaseUltimate:
		return true
	}
	return false
}

// TakeDamage 对 Boss 造成伤害
//
// 规则：
//   - 已被击败的 Boss 不再受到任何影响
//   - 装甲型在受击后生命值低于 50% 时返还 amount / 2
//   - 生命值钳制在 [0, MaxHealth]
//   - 怒气增加 GainOnHit，低血量时额外 +50%
//   - 分裂型生命值首次降到分裂阈值及以下时立即分裂
//   - 生命值归零时进入 Defeated，丢弃自身投射物，只发布一次击败事件
//
// 返回实际扣除的生命值
func (s *BossSystem) TakeDamage(id ecs.EntityID, amount int) int {
	ctx, ok := s.context(id)
	if !ok {
		return 0
	}
	boss, health := ctx.Boss, ctx.Health
	if boss.Phase == components.BossPhaseDefeated {
		return 0
	}
	if amount < 0 {
		log.Printf("[BossSystem] Boss %d 收到负伤害 %d，按 0 处理", id, amount)
		amount = 0
	}

	before := health.CurrentHealth
	health.CurrentHealth -= amount

	if armor, ok := ecs.GetComponent[*components.ArmorComponent](s.em, id); ok && armor.RefundDivisor > 0 {
		if float64(health.CurrentHealth) < float64(health.MaxHealth)*armor.LowHealthRatio {
			health.CurrentHealth += amount / armor.RefundDivisor
		}
	}

	if health.CurrentHealth < 0 {
		health.CurrentHealth = 0
	}
	if health.CurrentHealth > health.MaxHealth {
		health.CurrentHealth = health.MaxHealth
	}
	health.HitFlash = config.BossHitFlashSteps

	if accruesHitRage(boss.Phase) {
		gain := ctx.Rage.GainOnHit
		if float64(health.CurrentHealth) < float64(health.MaxHealth)*config.LowHealthRatio {
			gain += ctx.Rage.GainOnHit * config.LowHealthRageBonus
		}
		s.addRage(ctx, gain)
	}

	dealt := before - health.CurrentHealth
	s.events.Publish(event.Event{
		Type:     event.BossHit,
		Entity:   id,
		BossType: boss.Type,
		Amount:   dealt,
	})

	if health.CurrentHealth > 0 && boss.SplitThreshold > 0 && !boss.HasSplit &&
		health.CurrentHealth <= boss.SplitThreshold {
		s.split(ctx)
	}

	if health.CurrentHealth == 0 {
		s.defeat(ctx)
		return dealt
	}

	s.checkRageThreshold(ctx)
	return dealt
}

// split 触发一次性分裂
func (s *BossSystem) split(ctx *BossContext) {
	ctx.Boss.HasSplit = true
	if splitter, ok := s.behavior(ctx.Boss.Type).(splitBehavior); ok {
		splitter.Split(ctx)
	}
	s.events.Publish(event.Event{Type: event.BossSplit, Entity: ctx.ID, BossType: ctx.Boss.Type})
	log.Printf("[BossSystem] Boss %d 生命值 %d 低于分裂阈值，触发分裂", ctx.ID, ctx.Health.CurrentHealth)
}

func (s *BossSystem) defeat(ctx *BossContext) {
	boss := ctx.Boss
	boss.Phase = components.BossPhaseDefeated
	boss.PreparationRemaining = 0
	boss.PreUltimateRemaining = 0
	boss.UltimateRemaining = 0
	boss.CooldownRemaining = 0

	discarded := s.DiscardProjectiles(ctx.ID)

	if boss.DefeatNotified {
		return
	}
	boss.DefeatNotified = true
	s.events.Publish(event.Event{
		Type:      event.BossDefeated,
		Entity:    ctx.ID,
		BossType:  boss.Type,
		BossLevel: boss.BossLevel,
		Cycle:     boss.CycleCount,
	})
	log.Printf("[BossSystem] Boss %d (%s) 被击败，丢弃 %d 个投射物", ctx.ID, boss.Type, discarded)
}

// DiscardProjectiles 销毁指定 Boss 拥有的所有投射物，返回销毁数量
func (s *BossSystem) DiscardProjectiles(owner ecs.EntityID) int {
	return discardOwnedProjectiles(s.em, owner)
}

// discardOwnedProjectiles 销毁 Owner 为 owner 的所有投射物
func discardOwnedProjectiles(em *ecs.EntityManager, owner ecs.EntityID) int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		if proj.Owner != owner || em.IsMarkedForDestroy(id) {
			continue
		}
		em.DestroyEntity(id)
		count++
	}
	return count
}

// OwnedProjectiles 返回指定所有者的存活投射物
func OwnedProjectiles(em *ecs.EntityManager, owner ecs.EntityID) []ecs.EntityID {
	result := make([]ecs.EntityID, 0)
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		if proj.Owner == owner && em.IsAlive(id) {
			result = append(result, id)
		}
	}
	return result
}
