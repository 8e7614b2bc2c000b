package components

import (
	"github.com/gonewx/bossrush/pkg/ecs"
	"github.com/gonewx/bossrush/pkg/types"
)

// CycleComponent Boss 轮换控制器的状态
//
// BossLevel 单调递增且从不重置，原型和循环数都由它推导：
//   - archetypeIndex = BossLevel mod 4
//   - cycleCount     = BossLevel div 4
type CycleComponent struct {
	// BossLevel 当前（或即将生成的）Boss 的全局序号
	BossLevel int

	// CurrentBoss 场上的 Boss 实体，转场期间为 NoEntity
	CurrentBoss ecs.EntityID

	// State 轮换状态
	// "fighting" - Boss 在场
	// "transitioning" - 两个 Boss 之间的空场停顿
	State string

	// TransitionRemaining 转场剩余步数
	TransitionRemaining int

	// NextType 转场结束后将要生成的原型（供 HUD 预告）
	NextType types.BossType

	// HighestCycle 本局到达过的最大循环数
	HighestCycle int

	// BossesDefeated 本局击败的 Boss 数
	BossesDefeated int
}

// CycleState 常量
const (
	// CycleStateFighting Boss 在场
	CycleStateFighting = "fighting"

	// CycleStateTransitioning 两个 Boss 之间的空场停顿
	CycleStateTransitioning = "transitioning"
)

// ArchetypeIndex 返回 BossLevel 对应的原型序号
func (c *CycleComponent) ArchetypeIndex() int {
	return c.BossLevel % types.BossTypeCount
}

// CycleCount 返回 BossLevel 对应的循环数
func (c *CycleComponent) CycleCount() int {
	return c.BossLevel / types.BossTypeCount
}
