// Package event 定义战斗核心向外发布的离散事件
//
// 战斗模拟每步把事件写入 Queue，由外层（渲染、音效、进度记录）在步末统一取走，
// 或通过 Dispatcher 分发给订阅者。核心本身从不直接调用外层。
package event

import (
	"github.com/gonewx/bossrush/pkg/ecs"
	"github.com/gonewx/bossrush/pkg/types"
)

// EventType 事件类型
type EventType string

const (
	BossSpawned     EventType = "boss_spawned"
	BossHit         EventType = "boss_hit"
	BossSplit       EventType = "boss_split"
	UltimateWarning EventType = "ultimate_warning"
	UltimateStarted EventType = "ultimate_started"
	UltimateEnded   EventType = "ultimate_ended"
	BossDefeated    EventType = "boss_defeated"
	TransitionBegan EventType = "transition_began"
	CycleReached    EventType = "cycle_reached"
	PlayerHit       EventType = "player_hit"
	PlayerDefeated  EventType = "player_defeated"
	ScoreIncrement  EventType = "score_increment"
	WeaponFired     EventType = "weapon_fired"
	WeaponSwitched  EventType = "weapon_switched"
	ProjectileSplit EventType = "projectile_split"
	AmmoReplenished EventType = "ammo_replenished"
)

// Event 一条战斗事件
//
// 字段按事件类型选择性填写，未使用的字段保持零值
type Event struct {
	Type      EventType
	Step      int          // 发生时的模拟步序号
	Entity    ecs.EntityID // 相关实体（Boss、投射物或玩家）
	BossType  types.BossType
	BossLevel int
	Cycle     int
	Amount    int // 伤害、得分或弹药数
	Remaining int // 预警剩余步数
	Weapon    types.WeaponType
}

// Queue 单步事件缓冲
type Queue struct {
	step   int
	events []Event
}

// NewQueue 创建空的事件队列
func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 16)}
}

// SetStep 设置后续事件的步序号
func (q *Queue) SetStep(step int) {
	q.step = step
}

// Publish 追加事件，自动填写步序号
func (q *Queue) Publish(e Event) {
	e.Step = q.step
	q.events = append(q.events, e)
}

// Len 返回缓冲中的事件数
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain 取走并清空所有事件，按发布顺序返回
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
