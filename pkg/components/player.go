package components

// PlayerComponent 玩家的飞行物理与生存状态
type PlayerComponent struct {
	VelY    float64
	MaxVelY float64 // 下落终端速度
	Gravity float64 // 每步加速度
	FlapVel float64 // 振翅时的瞬时速度（负值向上）
	Flapped bool    // 本步是否振翅
	MinY    float64
	FloorY  float64 // 触地即死亡的高度（碰撞盒下沿）

	Invulnerable   bool // 常驻无敌（调试用）
	GraceRemaining int  // 出生保护剩余步数
	Defeated       bool
	DefeatNotified bool
}

// IsInvulnerable 当前是否免疫伤害
func (p *PlayerComponent) IsInvulnerable() bool {
	return p.Invulnerable || p.GraceRemaining > 0
}
