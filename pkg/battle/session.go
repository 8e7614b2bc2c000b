// Package battle 把各个系统组装成一局可逐步推进的 Boss 战
//
// BattleSession 不持有任何渲染或输入设备，桌面场景和无界面模拟器都通过
// Step 以固定顺序驱动它，因此同一种子和同一输入序列总能得到相同的结果。
package battle

import (
	"fmt"
	"log"

	"github.com/gonewx/bossrush/pkg/components"
	"github.com/gonewx/bossrush/pkg/config"
	"github.com/gonewx/bossrush/pkg/ecs"
	"github.com/gonewx/bossrush/pkg/entities"
	"github.com/gonewx/bossrush/pkg/event"
	"github.com/gonewx/bossrush/pkg/systems"
	"github.com/gonewx/bossrush/pkg/utils"
)

// Config 一局战斗的启动参数
type Config struct {
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// BossStats Boss 属性，nil 时使用内置默认值
	BossStats *config.BossStatsConfig
	// WeaponStats 武器属性，nil 时使用内置默认值
	WeaponStats *config.WeaponStatsConfig
	// Invulnerable 无敌模式（调试用）
	Invulnerable bool
}

// Intent 玩家在一个模拟步内的操作意图
type Intent struct {
	Flap         bool
	Fire         bool
	SwitchWeapon int // -1 上一把，+1 下一把，0 不切换
	SelectWeapon int // 1..N 直接选中装备栏第 N 把，0 不选；优先于 SwitchWeapon
}

// BattleSession 一局 Boss 战
type BattleSession struct {
	em         *ecs.EntityManager
	events     *event.Queue
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService

	difficulty  *systems.DifficultyEngine
	bosses      *systems.BossSystem
	projectiles *systems.ProjectileSystem
	weapons     *systems.WeaponSystem
	players     *systems.PlayerSystem
	combat      *systems.CombatSystem
	lifetime    *systems.LifetimeSystem
	cycle       *systems.CycleSystem

	playerID ecs.EntityID
	step     int
	score    int
	over     bool
}

// NewBattleSession 创建一局战斗：玩家出生并装备武器，第一个 Boss 立即入场
func NewBattleSession(cfg Config) (*BattleSession, error) {
	bossStats := cfg.BossStats
	if bossStats == nil {
		bossStats = config.DefaultBossStats()
	}
	weaponStats := cfg.WeaponStats
	if weaponStats == nil {
		weaponStats = config.DefaultWeaponStats()
	}

	em := ecs.NewEntityManager()
	events := event.NewQueue()
	rng := utils.NewPRNGService(cfg.Seed)

	s := &BattleSession{
		em:         em,
		events:     events,
		dispatcher: event.NewDispatcher(),
		rng:        rng,
		difficulty: systems.NewDifficultyEngine(bossStats),
	}
	s.bosses = systems.NewBossSystem(em, events, rng)
	s.projectiles = systems.NewProjectileSystem(em, events)
	s.weapons = systems.NewWeaponSystem(em, events)
	s.players = systems.NewPlayerSystem(em, events)
	s.combat = systems.NewCombatSystem(em, events, s.bosses, s.players)
	s.lifetime = systems.NewLifetimeSystem(em)
	s.cycle = systems.NewCycleSystem(em, events, s.difficulty, s.bosses, s.weapons)

	playerID, err := entities.NewPlayer(em, cfg.Invulnerable)
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	if err := entities.EquipLoadout(em, playerID, weaponStats); err != nil {
		return nil, fmt.Errorf("equip loadout: %w", err)
	}
	s.playerID = playerID

	if err := s.cycle.Start(playerID); err != nil {
		return nil, fmt.Errorf("spawn first boss: %w", err)
	}

	log.Printf("[BattleSession] 新的一局开始, seed=%d invulnerable=%v", rng.Seed(), cfg.Invulnerable)
	return s, nil
}

// Step 推进一个模拟步并返回本步产生的事件
//
// 固定顺序：武器冷却 → 玩家（切枪、振翅、物理、开火）→ 轮换控制器 → Boss
// → 投射物 → 生命周期 → 碰撞 → 清理。玩家死亡后 Step 不再推进，返回 nil。
func (s *BattleSession) Step(in Intent) []event.Event {
	if s.over {
		return nil
	}
	s.step++
	s.events.SetStep(s.step)

	s.weapons.Update()
	if in.SelectWeapon > 0 {
		s.weapons.SelectWeapon(s.playerID, in.SelectWeapon-1)
	} else if in.SwitchWeapon != 0 {
		s.weapons.SwitchWeapon(s.playerID, in.SwitchWeapon)
	}
	if in.Flap {
		s.players.Flap(s.playerID)
	}
	s.players.Update()
	if in.Fire && !s.playerDefeated() {
		s.weapons.FireCurrent(s.playerID, s.cycle.CurrentBoss())
	}

	s.cycle.Update()
	s.bosses.Update()
	s.projectiles.Update()
	s.lifetime.Update()
	s.combat.Update()
	s.em.RemoveMarkedEntities()

	events := s.events.Drain()
	for _, e := range events {
		switch e.Type {
		case event.ScoreIncrement:
			s.score += e.Amount
		case event.PlayerDefeated:
			s.over = true
		}
	}
	s.dispatcher.DispatchAll(events)

	if s.over {
		log.Printf("[BattleSession] 玩家阵亡: step=%d score=%d bossLevel=%d", s.step, s.score, s.cycle.BossLevel())
	}
	return events
}

// SetBossStats 替换 Boss 属性（配置热重载），从下一个出场的 Boss 开始生效
func (s *BattleSession) SetBossStats(bossStats *config.BossStatsConfig) {
	s.difficulty.SetBossStats(bossStats)
}

// Dispatcher 返回事件分发器，订阅者在每步结束时收到本步事件
func (s *BattleSession) Dispatcher() *event.Dispatcher {
	return s.dispatcher
}

// Seed 返回本局实际使用的随机种子
func (s *BattleSession) Seed() int64 {
	return s.rng.Seed()
}

// Over 玩家是否已阵亡
func (s *BattleSession) Over() bool {
	return s.over
}

// Score 当前得分（命中次数）
func (s *BattleSession) Score() int {
	return s.score
}

// Steps 已推进的模拟步数
func (s *BattleSession) Steps() int {
	return s.step
}

// PlayerID 返回玩家实体
func (s *BattleSession) PlayerID() ecs.EntityID {
	return s.playerID
}

// CurrentBoss 返回场上的 Boss，转场期间为 NoEntity
func (s *BattleSession) CurrentBoss() ecs.EntityID {
	return s.cycle.CurrentBoss()
}

// Summary 返回本局的统计结果
func (s *BattleSession) Summary() Summary {
	state := s.cycle.State()
	return Summary{
		Seed:           s.rng.Seed(),
		Steps:          s.step,
		Score:          s.score,
		BossLevel:      state.BossLevel,
		HighestCycle:   state.HighestCycle,
		BossesDefeated: state.BossesDefeated,
		Over:           s.over,
	}
}

func (s *BattleSession) playerDefeated() bool {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID)
	return !ok || player.Defeated
}

// Summary 一局战斗的统计
type Summary struct {
	Seed           int64
	Steps          int
	Score          int
	BossLevel      int
	HighestCycle   int
	BossesDefeated int
	Over           bool
}
