package config

import (
	"fmt"

	"github.com/gonewx/bossrush/pkg/embedded"
	"github.com/gonewx/bossrush/pkg/types"
	"gopkg.in/yaml.v3"
)

// WeaponStatsPath 默认的武器属性配置路径
const WeaponStatsPath = "data/weapon_stats.yaml"

// WeaponStats 单种武器的属性
type WeaponStats struct {
	Ammo            int     `yaml:"ammo"`            // 初始弹药，-1 表示无限
	RefillAmmo      int     `yaml:"refillAmmo"`      // Boss 切换时补给到的弹药量
	Cooldown        int     `yaml:"cooldown"`        // 开火间隔（步）
	Damage          int     `yaml:"damage"`          // 每发伤害
	Speed           float64 `yaml:"speed"`           // 弹速（像素/步）
	ProjectileCount int     `yaml:"projectileCount"` // 每次开火的弹数
	SpreadDegrees   float64 `yaml:"spreadDegrees"`   // 多发时相邻弹道夹角
	TrailLength     int     `yaml:"trailLength"`     // 拖尾长度，0 表示无拖尾
	TurnRate        float64 `yaml:"turnRate"`        // 追踪转向速率（弧度/步），0 表示不追踪
	Size            float64 `yaml:"size"`            // 碰撞尺寸
	Color           string  `yaml:"color"`           // 显示颜色（#RRGGBB）
}

// WeaponStatsConfig 武器属性配置文件结构
type WeaponStatsConfig struct {
	Weapons map[string]WeaponStats `yaml:"weapons"`
	Loadout []string               `yaml:"loadout"` // 玩家携带的武器及切换顺序
}

// Get 返回指定武器类型的属性
func (c *WeaponStatsConfig) Get(weaponType types.WeaponType) (WeaponStats, bool) {
	stats, ok := c.Weapons[weaponType.String()]
	return stats, ok
}

// LoadoutTypes 返回解析后的携带列表
func (c *WeaponStatsConfig) LoadoutTypes() ([]types.WeaponType, error) {
	result := make([]types.WeaponType, 0, len(c.Loadout))
	for _, name := range c.Loadout {
		weaponType, err := types.ParseWeaponType(name)
		if err != nil {
			return nil, err
		}
		result = append(result, weaponType)
	}
	return result, nil
}

// DefaultWeaponStats 返回内置的武器属性表
func DefaultWeaponStats() *WeaponStatsConfig {
	return &WeaponStatsConfig{
		Weapons: map[string]WeaponStats{
			types.WeaponStandard.String(): {
				Ammo: -1, RefillAmmo: -1, Cooldown: 20, Damage: 10, Speed: 10,
				ProjectileCount: 1, Size: 8, Color: "#ffffff",
			},
			types.WeaponMulti.String(): {
				Ammo: 15, RefillAmmo: 15, Cooldown: 25, Damage: 8, Speed: 10,
				ProjectileCount: 3, SpreadDegrees: 15, Size: 8, Color: "#ffd700",
			},
			types.WeaponPiercingTrail.String(): {
				Ammo: 50, RefillAmmo: 50, Cooldown: 8, Damage: 5, Speed: 15,
				ProjectileCount: 1, TrailLength: 6, Size: 6, Color: "#00ffff",
			},
			types.WeaponHoming.String(): {
				Ammo: 5, RefillAmmo: 5, Cooldown: 40, Damage: 25, Speed: 8,
				ProjectileCount: 1, TurnRate: 0.15, Size: 10, Color: "#ff4500",
			},
		},
		Loadout: []string{"standard", "multi", "piercing_trail", "homing"},
	}
}

// LoadWeaponStats 从 YAML 文件加载武器属性配置
func LoadWeaponStats(filepath string) (*WeaponStatsConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read weapon stats file %s: %w", filepath, err)
	}

	config, err := ParseWeaponStats(data)
	if err != nil {
		return nil, fmt.Errorf("weapon stats %s: %w", filepath, err)
	}
	return config, nil
}

// ParseWeaponStats 解析并校验武器属性 YAML
func ParseWeaponStats(data []byte) (*WeaponStatsConfig, error) {
	var config WeaponStatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse weapon stats YAML: %w", err)
	}

	if err := validateWeaponStats(&config); err != nil {
		return nil, fmt.Errorf("invalid weapon stats: %w", err)
	}

	return &config, nil
}

// validateWeaponStats 验证武器属性配置
func validateWeaponStats(config *WeaponStatsConfig) error {
	if len(config.Loadout) == 0 {
		return fmt.Errorf("loadout must contain at least one weapon")
	}

	loadout, err := config.LoadoutTypes()
	if err != nil {
		return fmt.Errorf("loadout: %w", err)
	}

	for _, weaponType := range loadout {
		stats, ok := config.Get(weaponType)
		if !ok {
			return fmt.Errorf("weapon %s: listed in loadout but not defined", weaponType)
		}

		if stats.Ammo < -1 {
			return fmt.Errorf("weapon %s: ammo must be -1 (unlimited) or non-negative, got %d", weaponType, stats.Ammo)
		}

		if stats.Cooldown < 0 {
			return fmt.Errorf("weapon %s: cooldown cannot be negative, got %d", weaponType, stats.Cooldown)
		}

		if stats.Damage < 0 {
			return fmt.Errorf("weapon %s: damage cannot be negative, got %d", weaponType, stats.Damage)
		}

		if stats.Speed <= 0 {
			return fmt.Errorf("weapon %s: speed must be positive, got %v", weaponType, stats.Speed)
		}

		if stats.ProjectileCount < 1 {
			return fmt.Errorf("weapon %s: projectileCount must be at least 1, got %d", weaponType, stats.ProjectileCount)
		}

		if stats.TrailLength < 0 || stats.TurnRate < 0 {
			return fmt.Errorf("weapon %s: trailLength and turnRate cannot be negative", weaponType)
		}
	}

	return nil
}
