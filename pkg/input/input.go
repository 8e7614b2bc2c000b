// Package input 把键盘、鼠标和触摸映射为战斗操作
//
// 只有渲染层依赖本包，模拟核心不接触输入设备。
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// slotKeys 数字键 1~4 直接选中对应武器栏
var slotKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

// State 存储当前帧的输入状态
type State struct {
	Flap          bool // 本帧刚按下振翅（空格 / 上 / W / 鼠标左键 / 触摸）
	Fire          bool // 开火键按住（J / Z / 鼠标右键）
	NextWeapon    bool // E / Tab
	PrevWeapon    bool // Q
	SelectSlot    int  // 1~4，0 表示未按数字键
	Restart       bool // R
	ToggleHitbox  bool // F3
	ToggleFullscr bool // F11
}

// Poll 获取当前帧的输入状态
func Poll() State {
	state := State{}

	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		state.Flap = true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		state.Flap = true
	}
	for _, key := range []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW} {
		if inpututil.IsKeyJustPressed(key) {
			state.Flap = true
		}
	}

	state.Fire = ebiten.IsKeyPressed(ebiten.KeyJ) || ebiten.IsKeyPressed(ebiten.KeyZ) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	state.NextWeapon = inpututil.IsKeyJustPressed(ebiten.KeyE) || inpututil.IsKeyJustPressed(ebiten.KeyTab)
	state.PrevWeapon = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	for i, key := range slotKeys {
		if inpututil.IsKeyJustPressed(key) {
			state.SelectSlot = i + 1
		}
	}
	state.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	state.ToggleHitbox = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	state.ToggleFullscr = inpututil.IsKeyJustPressed(ebiten.KeyF11)
	return state
}

// WeaponDelta 把切换按键转换为武器栏偏移，同时按下时互相抵消
func (s State) WeaponDelta() int {
	delta := 0
	if s.NextWeapon {
		delta++
	}
	if s.PrevWeapon {
		delta--
	}
	return delta
}
