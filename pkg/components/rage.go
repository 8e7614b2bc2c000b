package components

// RageComponent Boss 的怒气槽
//
// 不变量：0 <= Current <= Max。Current 达到 Threshold 时触发大招预警并清零
type RageComponent struct {
	Current     float64
	Max         float64
	Threshold   float64
	GainOnHit   float64 // 每次受击增加的怒气
	GainPerTick float64 // Active 阶段每步增加的怒气
}

// Ratio 返回怒气相对于阈值的比例，用于渲染怒气条
func (r *RageComponent) Ratio() float64 {
	if r.Threshold <= 0 {
		return 0
	}
	ratio := r.Current / r.Threshold
	if ratio > 1 {
		return 1
	}
	return ratio
}
