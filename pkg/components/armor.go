package components

// ArmorComponent 存储装甲型 Boss 的减伤规则
//
// 设计说明:
// - 受击后若生命值低于 MaxHealth * LowHealthRatio，返还 damage / RefundDivisor 点生命值
// - 返还发生在钳制之前，因此单次受击的净损失不超过 ceil(damage/2)
// - 没有此组件的实体承受全部伤害
type ArmorComponent struct {
	RefundDivisor  int     // 返还除数，2 表示返还一半（整数除法）
	LowHealthRatio float64 // 触发减伤的生命值比例阈值
}
