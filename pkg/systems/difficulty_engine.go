package systems

import (
	"fmt"

	"github.com/gonewx/bossrush/pkg/config"
	"github.com/gonewx/bossrush/pkg/types"
)

// DifficultyEngine 难度引擎
// 负责由 bossLevel 推导原型与循环数，并计算循环缩放后的 Boss 属性
type DifficultyEngine struct {
	bossStats *config.BossStatsConfig
}

// NewDifficultyEngine 创建新的难度引擎实例
// bossStats 为 nil 时使用内置属性表
func NewDifficultyEngine(bossStats *config.BossStatsConfig) *DifficultyEngine {
	if bossStats == nil {
		bossStats = config.DefaultBossStats()
	}
	return &DifficultyEngine{
		bossStats: bossStats,
	}
}

// SetBossStats 替换属性表（配置热加载），只影响之后生成的 Boss
func (d *DifficultyEngine) SetBossStats(bossStats *config.BossStatsConfig) {
	if bossStats != nil {
		d.bossStats = bossStats
	}
}

// ArchetypeIndex 计算原型序号
// 公式: archetypeIndex = bossLevel mod 4
func (d *DifficultyEngine) ArchetypeIndex(bossLevel int) int {
	return int(types.BossTypeForLevel(bossLevel))
}

// CycleCount 计算已完成的循环数
// 公式: cycleCount = bossLevel div 4
func (d *DifficultyEngine) CycleCount(bossLevel int) int {
	if bossLevel < 0 {
		return 0
	}
	return bossLevel / types.BossTypeCount
}

// ScaledHealth 计算缩放后的生命值
// 公式: baseHealth + 20 * cycleCount
func (d *DifficultyEngine) ScaledHealth(baseHealth, cycleCount int) int {
	return baseHealth + config.CycleHealthBonus*cycleCount
}

// ScaledFireInterval 计算缩放后的射击间隔
// 公式: max(baseRate - min(5 * cycleCount, 30), 10)
func (d *DifficultyEngine) ScaledFireInterval(baseRate, cycleCount int) int {
	reduction := config.CycleFireIntervalStep * cycleCount
	if reduction > config.CycleFireIntervalMaxReduction {
		reduction = config.CycleFireIntervalMaxReduction
	}
	interval := baseRate - reduction
	if interval < config.MinFireInterval {
		interval = config.MinFireInterval
	}
	return interval
}

// PreparationSteps 返回入场准备步数
// 本局第一个 Boss 使用更长的准备时间，之后使用原型自身的值
func (d *DifficultyEngine) PreparationSteps(bossLevel int, stats config.BossStats) int {
	if bossLevel == 0 {
		return config.FirstBossPreparation
	}
	return stats.PreparationSteps
}

// StatsForLevel 返回指定 bossLevel 的原型及缩放后的属性
//
// 返回：
//
//	types.BossType - 原型
//	config.BossStats - BaseHealth 与 FireInterval 已按循环缩放
//	error - 属性表缺少该原型
func (d *DifficultyEngine) StatsForLevel(bossLevel int) (types.BossType, config.BossStats, error) {
	bossType := types.BossTypeForLevel(bossLevel)
	stats, ok := d.bossStats.Get(bossType)
	if !ok {
		return bossType, config.BossStats{}, fmt.Errorf("no stats for boss %s", bossType)
	}

	cycle := d.CycleCount(bossLevel)
	stats.BaseHealth = d.ScaledHealth(stats.BaseHealth, cycle)
	stats.FireInterval = d.ScaledFireInterval(stats.FireInterval, cycle)
	return bossType, stats, nil
}
