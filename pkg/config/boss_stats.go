package config

import (
	"fmt"

	"github.com/gonewx/bossrush/pkg/embedded"
	"github.com/gonewx/bossrush/pkg/types"
	"gopkg.in/yaml.v3"
)

// BossStatsPath 默认的 Boss 属性配置路径
const BossStatsPath = "data/boss_stats.yaml"

// BossStats 单个 Boss 原型的基础属性（未经循环缩放）
type BossStats struct {
	BaseHealth       int     `yaml:"baseHealth"`       // 基础生命值
	Speed            float64 `yaml:"speed"`            // 巡逻速度（像素/步）
	FireInterval     int     `yaml:"fireInterval"`     // 普通攻击间隔（步）
	RageGainOnHit    float64 `yaml:"rageGainOnHit"`    // 每次受击增加的怒气
	RageGainPerTick  float64 `yaml:"rageGainPerTick"`  // Active 阶段每步增加的怒气
	RageThreshold    float64 `yaml:"rageThreshold"`    // 触发大招的怒气阈值
	UltimateDuration int     `yaml:"ultimateDuration"` // 大招持续步数
	PreparationSteps int     `yaml:"preparationSteps"` // 入场准备步数
	Size             float64 `yaml:"size"`             // 碰撞盒边长
	SplitThreshold   int     `yaml:"splitThreshold"`   // 分裂阈值，仅分裂型使用
}

// BossStatsConfig Boss 属性配置文件结构
type BossStatsConfig struct {
	Bosses map[string]BossStats `yaml:"bosses"` // 原型名到属性的映射
}

// Get 返回指定原型的属性
func (c *BossStatsConfig) Get(bossType types.BossType) (BossStats, bool) {
	stats, ok := c.Bosses[bossType.String()]
	return stats, ok
}

// DefaultBossStats 返回内置的 Boss 属性表
// 配置文件缺失时使用
func DefaultBossStats() *BossStatsConfig {
	return &BossStatsConfig{
		Bosses: map[string]BossStats{
			types.BossStandard.String(): {
				BaseHealth: 100, Speed: 2, FireInterval: 60,
				RageGainOnHit: 8, RageGainPerTick: 0.15, RageThreshold: 90,
				UltimateDuration: 90, PreparationSteps: 60, Size: 100,
			},
			types.BossSwift.String(): {
				BaseHealth: 80, Speed: 4, FireInterval: 30,
				RageGainOnHit: 5, RageGainPerTick: 0.25, RageThreshold: 80,
				UltimateDuration: 120, PreparationSteps: 90, Size: 80,
			},
			types.BossSplitting.String(): {
				BaseHealth: 120, Speed: 1.5, FireInterval: 90,
				RageGainOnHit: 10, RageGainPerTick: 0.1, RageThreshold: 95,
				UltimateDuration: 60, PreparationSteps: 75, Size: 120,
				SplitThreshold: 40,
			},
			types.BossArmored.String(): {
				BaseHealth: 200, Speed: 1, FireInterval: 120,
				RageGainOnHit: 12, RageGainPerTick: 0.08, RageThreshold: 100,
				UltimateDuration: 150, PreparationSteps: 45, Size: 140,
			},
		},
	}
}

// LoadBossStats 从 YAML 文件加载 Boss 属性配置
// 参数：
//
//	filepath - 配置文件路径（"data/" 前缀优先读取嵌入文件）
//
// 返回：
//
//	*BossStatsConfig - 解析并校验后的配置
//	error - 文件读取、解析或校验失败
func LoadBossStats(filepath string) (*BossStatsConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read boss stats file %s: %w", filepath, err)
	}

	config, err := ParseBossStats(data)
	if err != nil {
		return nil, fmt.Errorf("boss stats %s: %w", filepath, err)
	}
	return config, nil
}

// ParseBossStats 解析并校验 Boss 属性 YAML
func ParseBossStats(data []byte) (*BossStatsConfig, error) {
	var config BossStatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse boss stats YAML: %w", err)
	}

	if err := validateBossStats(&config); err != nil {
		return nil, fmt.Errorf("invalid boss stats: %w", err)
	}

	return &config, nil
}

// validateBossStats 验证 Boss 属性配置的完整性和合法性
func validateBossStats(config *BossStatsConfig) error {
	for name := range config.Bosses {
		if _, err := types.ParseBossType(name); err != nil {
			return err
		}
	}

	// 四个原型必须齐全，否则轮换会出现空档
	for _, bossType := range types.AllBossTypes() {
		stats, ok := config.Get(bossType)
		if !ok {
			return fmt.Errorf("boss %s: missing", bossType)
		}

		if stats.BaseHealth <= 0 {
			return fmt.Errorf("boss %s: baseHealth must be positive, got %d", bossType, stats.BaseHealth)
		}

		if stats.Speed < 0 {
			return fmt.Errorf("boss %s: speed cannot be negative, got %v", bossType, stats.Speed)
		}

		if stats.FireInterval < MinFireInterval {
			return fmt.Errorf("boss %s: fireInterval must be at least %d, got %d", bossType, MinFireInterval, stats.FireInterval)
		}

		if stats.RageGainOnHit < 0 || stats.RageGainPerTick < 0 {
			return fmt.Errorf("boss %s: rage gains cannot be negative", bossType)
		}

		if stats.RageThreshold <= 0 || stats.RageThreshold > MaxRage {
			return fmt.Errorf("boss %s: rageThreshold must be in (0, %v], got %v", bossType, MaxRage, stats.RageThreshold)
		}

		if stats.UltimateDuration <= 0 {
			return fmt.Errorf("boss %s: ultimateDuration must be positive, got %d", bossType, stats.UltimateDuration)
		}

		if stats.PreparationSteps < 0 {
			return fmt.Errorf("boss %s: preparationSteps cannot be negative, got %d", bossType, stats.PreparationSteps)
		}

		if stats.Size <= 0 {
			return fmt.Errorf("boss %s: size must be positive, got %v", bossType, stats.Size)
		}

		if stats.SplitThreshold < 0 || stats.SplitThreshold >= stats.BaseHealth {
			return fmt.Errorf("boss %s: splitThreshold must be in [0, baseHealth), got %d", bossType, stats.SplitThreshold)
		}
	}

	return nil
}
