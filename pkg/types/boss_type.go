// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"fmt"
	"strings"
)

// BossType 定义 Boss 原型
//
// 取值与循环中的原型序号一一对应：archetypeIndex = bossLevel mod BossTypeCount
type BossType int

const (
	// BossStandard 标准型：单发直射，随机变向巡逻
	BossStandard BossType = iota
	// BossSwift 迅捷型：三连发，频繁变向
	BossSwift
	// BossSplitting 分裂型：慢速分裂弹，低血量时减速并分裂一次
	BossSplitting
	// BossArmored 装甲型：重型子弹，低血量时减免伤害
	BossArmored

	// BossTypeCount 原型数量，即一个循环的长度
	BossTypeCount = 4
)

// String 返回 Boss 原型的字符串表示（同时用作配置文件中的键）
func (b BossType) String() string {
	switch b {
	case BossStandard:
		return "standard"
	case BossSwift:
		return "swift"
	case BossSplitting:
		return "splitting"
	case BossArmored:
		return "armored"
	default:
		return fmt.Sprintf("boss(%d)", int(b))
	}
}

// Valid 判断是否为已知原型
func (b BossType) Valid() bool {
	return b >= BossStandard && b < BossTypeCount
}

// BossTypeForLevel 由 bossLevel 推导原型，负数视为 0
func BossTypeForLevel(bossLevel int) BossType {
	if bossLevel < 0 {
		bossLevel = 0
	}
	return BossType(bossLevel % BossTypeCount)
}

// ParseBossType 从配置字符串解析 Boss 原型（不区分大小写）
func ParseBossType(s string) (BossType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return BossStandard, nil
	case "swift":
		return BossSwift, nil
	case "splitting":
		return BossSplitting, nil
	case "armored":
		return BossArmored, nil
	}
	return 0, fmt.Errorf("unknown boss type %q", s)
}

// AllBossTypes 按循环顺序返回全部原型
func AllBossTypes() []BossType {
	return []BossType{BossStandard, BossSwift, BossSplitting, BossArmored}
}
