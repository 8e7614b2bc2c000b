package components

import (
	"github.com/gonewx/bossrush/pkg/ecs"
	"github.com/gonewx/bossrush/pkg/types"
)

// ProjectileSide 投射物所属阵营
type ProjectileSide int

const (
	// SideBoss Boss 发射，只与玩家碰撞
	SideBoss ProjectileSide = iota
	// SidePlayer 玩家发射，只与 Boss 碰撞
	SidePlayer
)

// ProjectileComponent 投射物的公共数据
//
// Owner 指向发射者（Boss 或玩家实体）。Boss 被销毁时，
// 所有 Owner 为该 Boss 的投射物一并销毁。
type ProjectileComponent struct {
	Kind          types.ProjectileKind
	Side          ProjectileSide
	Owner         ecs.EntityID
	Damage        int
	IgnitionDelay int  // 发射前的等待步数，期间不移动
	Consumed      bool // 已命中目标，等待清理
}

// HomingComponent 追踪弹参数
//
// Target 是弱引用：只保存实体 ID，每步通过 EntityManager.IsAlive 校验。
// 目标消失后保持最后的航向直线飞行。
type HomingComponent struct {
	Target   ecs.EntityID
	TurnRate float64 // 每步最大转向角（弧度）
	Speed    float64
}

// SplitterComponent 定时分裂弹参数
type SplitterComponent struct {
	Countdown     int     // 距分裂的剩余步数
	ChildCount    int     // 分裂出的子弹数量
	SpreadDegrees float64 // 相邻子弹之间的夹角（度）
	ChildSpeed    float64
	HasSplit      bool // 一次性标记，分裂后不再触发
}

// PathPoint 路径上的一个点
type PathPoint struct {
	X, Y float64
}

// PathComponent 折线路径（闪电弹）
//
// 投射物以 Speed 沿折线前进，位置取最后到达的路径点；走完路径即过期
type PathComponent struct {
	Points   []PathPoint
	Index    int     // 最后到达的路径点下标
	Progress float64 // 在当前线段上已前进的距离
	Speed    float64
	Finished bool
}

// TrailComponent 记录最近若干步的位置，用于光束拖尾渲染
type TrailComponent struct {
	Length int
	Points []PathPoint
}
