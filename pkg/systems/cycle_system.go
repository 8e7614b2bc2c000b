package systems

import (
	"log"

	"github.com/gonewx/bossrush/pkg/components"
	"github.com/gonewx/bossrush/pkg/config"
	"github.com/gonewx/bossrush/pkg/ecs"
	"github.com/gonewx/bossrush/pkg/entities"
	"github.com/gonewx/bossrush/pkg/event"
	"github.com/gonewx/bossrush/pkg/types"
)

// CycleSystem Boss 轮换控制器
//
// 维护单调递增的 bossLevel，Boss 被击败后进入固定时长的空场转场，
// 然后按缩放规则生成下一个原型。循环没有终点，难度随 bossLevel 无限上升。
type CycleSystem struct {
	em           *ecs.EntityManager
	events       *event.Queue
	difficulty   *DifficultyEngine
	bossSystem   *BossSystem
	weaponSystem *WeaponSystem

	cycleEntity ecs.EntityID
	playerID    ecs.EntityID
}

// NewCycleSystem 创建轮换控制器，并创建承载 CycleComponent 的实体
func NewCycleSystem(em *ecs.EntityManager, events *event.Queue, difficulty *DifficultyEngine, bossSystem *BossSystem, weaponSystem *WeaponSystem) *CycleSystem {
	cycleEntity := em.CreateEntity()
	ecs.AddComponent(em, cycleEntity, &components.CycleComponent{
		State:    components.CycleStateTransitioning,
		NextType: types.BossTypeForLevel(0),
	})

	return &CycleSystem{
		em:           em,
		events:       events,
		difficulty:   difficulty,
		bossSystem:   bossSystem,
		weaponSystem: weaponSystem,
		cycleEntity:  cycleEntity,
	}
}

// Start 绑定玩家并立即生成第一个 Boss
func (s *CycleSystem) Start(playerID ecs.EntityID) error {
	s.playerID = playerID
	return s.spawnBoss(s.state())
}

func (s *CycleSystem) state() *components.CycleComponent {
	cycle, _ := ecs.GetComponent[*components.CycleComponent](s.em, s.cycleEntity)
	return cycle
}

// State 返回轮换状态（只读使用）
func (s *CycleSystem) State() components.CycleComponent {
	return *s.state()
}

// CurrentBoss 返回场上的 Boss，转场期间返回 NoEntity
func (s *CycleSystem) CurrentBoss() ecs.EntityID {
	return s.state().CurrentBoss
}

// BossLevel 返回当前 bossLevel
func (s *CycleSystem) BossLevel() int {
	return s.state().BossLevel
}

// Update 推进轮换状态一个模拟步
func (s *CycleSystem) Update() {
	cycle := s.state()

	switch cycle.State {
	case components.CycleStateFighting:
		phase, ok := s.bossSystem.Phase(cycle.CurrentBoss)
		if !ok || phase == components.BossPhaseDefeated {
			s.onBossDefeated(cycle)
		}

	case components.CycleStateTransitioning:
		if cycle.TransitionRemaining > 0 {
			cycle.TransitionRemaining--
		}
		if cycle.TransitionRemaining <= 0 {
			if err := s.spawnBoss(cycle); err != nil {
				log.Printf("[CycleSystem] 生成 Boss 失败，下一步重试: %v", err)
			}
		}
	}
}

// onBossDefeated 结算被击败的 Boss 并开始转场
func (s *CycleSystem) onBossDefeated(cycle *components.CycleComponent) {
	defeated := cycle.CurrentBoss
	s.bossSystem.DiscardProjectiles(defeated)
	s.em.DestroyEntity(defeated)

	cycle.BossLevel++
	cycle.BossesDefeated++
	cycle.CurrentBoss = ecs.NoEntity
	cycle.State = components.CycleStateTransitioning
	cycle.TransitionRemaining = config.BossTransitionSteps
	cycle.NextType = types.BossTypeForLevel(cycle.BossLevel)

	// 击败奖励：补给弹药，清空玩家在场的子弹
	if s.playerID != ecs.NoEntity {
		s.weaponSystem.ClearProjectiles(s.playerID)
		s.weaponSystem.Refill(s.playerID)
	}

	s.events.Publish(event.Event{
		Type:      event.TransitionBegan,
		BossType:  cycle.NextType,
		BossLevel: cycle.BossLevel,
		Cycle:     s.difficulty.CycleCount(cycle.BossLevel),
		Remaining: cycle.TransitionRemaining,
	})
	log.Printf("[CycleSystem] 第 %d 个 Boss 被击败，%d 步后出现 %s", cycle.BossLevel, cycle.TransitionRemaining, cycle.NextType)
}

// spawnBoss 按当前 bossLevel 生成下一个 Boss
func (s *CycleSystem) spawnBoss(cycle *components.CycleComponent) error {
	bossType, stats, err := s.difficulty.StatsForLevel(cycle.BossLevel)
	if err != nil {
		return err
	}
	cycleCount := s.difficulty.CycleCount(cycle.BossLevel)
	x, y := entities.BossSpawnPosition(stats.Size)

	bossID, err := entities.NewBoss(s.em, entities.BossSpec{
		Type:        bossType,
		Stats:       stats,
		BossLevel:   cycle.BossLevel,
		CycleCount:  cycleCount,
		Preparation: s.difficulty.PreparationSteps(cycle.BossLevel, stats),
		X:           x,
		Y:           y,
	})
	if err != nil {
		return err
	}

	cycle.CurrentBoss = bossID
	cycle.State = components.CycleStateFighting
	cycle.TransitionRemaining = 0

	s.events.Publish(event.Event{
		Type:      event.BossSpawned,
		Entity:    bossID,
		BossType:  bossType,
		BossLevel: cycle.BossLevel,
		Cycle:     cycleCount,
		Amount:    stats.BaseHealth,
	})

	if cycleCount > cycle.HighestCycle {
		cycle.HighestCycle = cycleCount
		s.events.Publish(event.Event{
			Type:      event.CycleReached,
			BossLevel: cycle.BossLevel,
			Cycle:     cycleCount,
		})
		log.Printf("[CycleSystem] 进入第 %d 轮循环", cycleCount)
	}
	return nil
}
