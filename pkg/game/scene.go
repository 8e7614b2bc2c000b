package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个游戏场景（例如战斗场景）
// 每个场景有自己的更新和绘制逻辑
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上次调用的秒数
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen 上
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口，场景在程序退出时保存状态
//
// 实现此接口的场景会在窗口关闭时被调用 SaveOnExit()
type Saveable interface {
	// SaveOnExit 返回 true 表示保存成功或无需保存
	SaveOnExit() bool
}
