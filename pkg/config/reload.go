package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// StatsUpdate 一次热加载的结果，未变化的一项为 nil
type StatsUpdate struct {
	BossStats   *BossStatsConfig
	WeaponStats *WeaponStatsConfig
}

// ReloadChanged 根据变更的文件路径重新读取对应的属性配置
//
// 热加载直接读取磁盘文件，不经过嵌入文件系统。
// 与属性配置无关的文件返回空的 StatsUpdate 和 nil。
func ReloadChanged(path string) (StatsUpdate, error) {
	var update StatsUpdate

	switch filepath.Base(path) {
	case filepath.Base(BossStatsPath):
		data, err := os.ReadFile(path)
		if err != nil {
			return update, fmt.Errorf("reload %s: %w", path, err)
		}
		cfg, err := ParseBossStats(data)
		if err != nil {
			return update, fmt.Errorf("reload %s: %w", path, err)
		}
		update.BossStats = cfg

	case filepath.Base(WeaponStatsPath):
		data, err := os.ReadFile(path)
		if err != nil {
			return update, fmt.Errorf("reload %s: %w", path, err)
		}
		cfg, err := ParseWeaponStats(data)
		if err != nil {
			return update, fmt.Errorf("reload %s: %w", path, err)
		}
		update.WeaponStats = cfg
	}

	return update, nil
}

// Empty 是否没有任何配置需要更新
func (u StatsUpdate) Empty() bool {
	return u.BossStats == nil && u.WeaponStats == nil
}
