package components

// HealthComponent 存储实体的生命值信息
// 用于 Boss 等可被攻击的实体
//
// 不变量：0 <= CurrentHealth <= MaxHealth，由 BossSystem 在修改时钳制
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
	HitFlash      int // 受击闪烁剩余步数（仅影响渲染）
}

// Ratio 返回当前生命值比例，MaxHealth 为 0 时返回 0
func (h *HealthComponent) Ratio() float64 {
	if h.MaxHealth <= 0 {
		return 0
	}
	return float64(h.CurrentHealth) / float64(h.MaxHealth)
}
