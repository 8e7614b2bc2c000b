package components

import "github.com/gonewx/bossrush/pkg/types"

// BossPhase Boss 的生命周期阶段
//
// 任意时刻只有一个阶段成立，Defeated 为终态
type BossPhase int

const (
	// BossPhasePreparing 入场准备：移动但不攻击、不积累怒气
	BossPhasePreparing BossPhase = iota
	// BossPhaseActive 常规战斗：移动、普通攻击、积累怒气
	BossPhaseActive
	// BossPhasePreUltimate 大招预警：不攻击，每隔固定步数发出警告
	BossPhasePreUltimate
	// BossPhaseUltimate 大招释放中：每步执行原型专属效果
	BossPhaseUltimate
	// BossPhaseCooldown 大招冷却：移动和普通攻击，不积累怒气
	BossPhaseCooldown
	// BossPhaseDefeated 已被击败
	BossPhaseDefeated
)

// String 返回阶段名称
func (p BossPhase) String() string {
	switch p {
	case BossPhasePreparing:
		return "Preparing"
	case BossPhaseActive:
		return "Active"
	case BossPhasePreUltimate:
		return "PreUltimateWarning"
	case BossPhaseUltimate:
		return "UltimateActive"
	case BossPhaseCooldown:
		return "Cooldown"
	case BossPhaseDefeated:
		return "Defeated"
	default:
		return "Unknown"
	}
}

// BossComponent 存储 Boss 的状态机与原型参数
type BossComponent struct {
	Type       types.BossType
	Phase      BossPhase
	BossLevel  int // 生成时的全局 Boss 序号
	CycleCount int // 生成时的循环数，仅用于缩放和显示

	// 原型参数（构造时确定）
	Speed            float64
	FireInterval     int
	UltimateDuration int
	Size             float64
	SplitThreshold   int // 仅分裂型使用，0 表示不分裂

	// 阶段计数器
	PreparationRemaining int
	PreUltimateRemaining int
	UltimateRemaining    int
	CooldownRemaining    int

	// 运行时状态
	Direction      float64 // 巡逻方向：1 向下，-1 向上
	FireCounter    int     // 距上次普通攻击经过的步数
	UltimateTicker int     // 大招内部节拍计数
	Tick           int     // Boss 存活总步数，用于移动节奏
	HasSplit       bool    // 分裂型是否已触发过一次性分裂
	DefeatNotified bool    // 击败事件是否已发布
}

// IsAttackPhase 当前阶段是否允许普通攻击
func (b *BossComponent) IsAttackPhase() bool {
	return b.Phase == BossPhaseActive || b.Phase == BossPhaseCooldown
}
