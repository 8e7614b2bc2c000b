package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在步数超过上限的实体（如闪电弹、拖尾光束）
type LifetimeComponent struct {
	MaxSteps     int  // 最大存活步数
	CurrentSteps int  // 当前已存活步数
	IsExpired    bool // 是否已过期
}
