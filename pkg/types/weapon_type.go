package types

import (
	"fmt"
	"strings"
)

// WeaponType 定义玩家武器类型
type WeaponType int

const (
	// WeaponStandard 默认武器，弹药无限
	WeaponStandard WeaponType = iota
	// WeaponMulti 三向散射
	WeaponMulti
	// WeaponPiercingTrail 带拖尾的高速光束
	WeaponPiercingTrail
	// WeaponHoming 追踪导弹
	WeaponHoming
)

// String 返回武器类型的字符串表示（同时用作配置文件中的键）
func (w WeaponType) String() string {
	switch w {
	case WeaponStandard:
		return "standard"
	case WeaponMulti:
		return "multi"
	case WeaponPiercingTrail:
		return "piercing_trail"
	case WeaponHoming:
		return "homing"
	default:
		return fmt.Sprintf("weapon(%d)", int(w))
	}
}

// ParseWeaponType 从配置字符串解析武器类型
func ParseWeaponType(s string) (WeaponType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return WeaponStandard, nil
	case "multi", "triple":
		return WeaponMulti, nil
	case "piercing_trail", "laser":
		return WeaponPiercingTrail, nil
	case "homing":
		return WeaponHoming, nil
	}
	return 0, fmt.Errorf("unknown weapon type %q", s)
}

// AllWeaponTypes 按切换顺序返回全部武器类型
func AllWeaponTypes() []WeaponType {
	return []WeaponType{WeaponStandard, WeaponMulti, WeaponPiercingTrail, WeaponHoming}
}
