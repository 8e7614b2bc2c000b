package components

import (
	"github.com/gonewx/bossrush/pkg/ecs"
	"github.com/gonewx/bossrush/pkg/types"
)

// UnlimitedAmmo 弹药无限的哨兵值
const UnlimitedAmmo = -1

// WeaponComponent 玩家武器
//
// 不变量：有限弹药的武器在 Ammo 为 0 时无法开火，直到被补给
type WeaponComponent struct {
	Type              types.WeaponType
	Ammo              int // -1 表示无限
	RefillAmmo        int // Boss 切换时补给到的最低弹药量
	Cooldown          int // 两次开火之间的步数
	CooldownRemaining int
	Damage            int
	Speed             float64
	ProjectileCount   int     // 每次开火的弹数
	SpreadDegrees     float64 // 多发时相邻弹道夹角
	TrailLength       int
	TurnRate          float64
	Size              float64
	Color             string
}

// HasAmmo 判断是否还有弹药
func (w *WeaponComponent) HasAmmo() bool {
	return w.Ammo == UnlimitedAmmo || w.Ammo > 0
}

// LoadoutComponent 玩家持有的武器列表
type LoadoutComponent struct {
	Weapons []ecs.EntityID
	Current int
}

// CurrentWeapon 返回当前选中的武器实体，列表为空时返回 NoEntity
func (l *LoadoutComponent) CurrentWeapon() ecs.EntityID {
	if len(l.Weapons) == 0 {
		return ecs.NoEntity
	}
	return l.Weapons[l.Current%len(l.Weapons)]
}
