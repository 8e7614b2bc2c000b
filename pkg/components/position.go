package components

// PositionComponent 存储实体在战场中的中心坐标
// 坐标系：原点在左上角，X 向右，Y 向下（像素）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 存储实体每个模拟步的位移
type VelocityComponent struct {
	VX float64 // 水平速度（像素/步），负值向左
	VY float64 // 垂直速度（像素/步），负值向上
}
