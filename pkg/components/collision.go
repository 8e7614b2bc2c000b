package components

// CollisionComponent 定义实体的碰撞检测边界框
// 用于战斗系统检测投射物与 Boss、玩家之间的接触
//
// 边界框以实体位置为中心，Width/Height 为完整尺寸
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度（像素）
	Height  float64 // 碰撞盒高度（像素）
	OffsetX float64 // 碰撞盒中心相对于实体位置的X偏移量（像素）
	OffsetY float64 // 碰撞盒中心相对于实体位置的Y偏移量（像素）
}
