package entities

import (
	"fmt"
	"log"

	"github.com/gonewx/bossrush/pkg/components"
	"github.com/gonewx/bossrush/pkg/config"
	"github.com/gonewx/bossrush/pkg/ecs"
	"github.com/gonewx/bossrush/pkg/types"
)

// BossSpec 描述一个待创建的 Boss
//
// Stats 必须是已经应用循环缩放后的数值
type BossSpec struct {
	Type        types.BossType
	Stats       config.BossStats
	BossLevel   int
	CycleCount  int
	Preparation int // 入场准备步数
	X, Y        float64
}

// NewBoss 创建 Boss 实体
// Boss 以 Preparing 阶段出生，生命值满、怒气为 0
func NewBoss(em *ecs.EntityManager, spec BossSpec) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if !spec.Type.Valid() {
		return 0, fmt.Errorf("invalid boss type %v", spec.Type)
	}
	if spec.Stats.BaseHealth <= 0 {
		return 0, fmt.Errorf("boss %s: health must be positive, got %d", spec.Type, spec.Stats.BaseHealth)
	}
	if spec.Stats.FireInterval <= 0 {
		return 0, fmt.Errorf("boss %s: fire interval must be positive, got %d", spec.Type, spec.Stats.FireInterval)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: spec.X, Y: spec.Y})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  spec.Stats.Size,
		Height: spec.Stats.Size,
	})
	ecs.AddComponent(em, entityID, &components.HealthComponent{
		CurrentHealth: spec.Stats.BaseHealth,
		MaxHealth:     spec.Stats.BaseHealth,
	})
	ecs.AddComponent(em, entityID, &components.RageComponent{
		Max:         config.MaxRage,
		Threshold:   spec.Stats.RageThreshold,
		GainOnHit:   spec.Stats.RageGainOnHit,
		GainPerTick: spec.Stats.RageGainPerTick,
	})

	phase := components.BossPhasePreparing
	if spec.Preparation <= 0 {
		phase = components.BossPhaseActive
	}
	ecs.AddComponent(em, entityID, &components.BossComponent{
		Type:                 spec.Type,
		Phase:                phase,
		BossLevel:            spec.BossLevel,
		CycleCount:           spec.CycleCount,
		Speed:                spec.Stats.Speed,
		FireInterval:         spec.Stats.FireInterval,
		UltimateDuration:     spec.Stats.UltimateDuration,
		Size:                 spec.Stats.Size,
		SplitThreshold:       spec.Stats.SplitThreshold,
		PreparationRemaining: spec.Preparation,
		Direction:            1,
	})

	// 装甲型独有的减伤规则
	if spec.Type == types.BossArmored {
		ecs.AddComponent(em, entityID, &components.ArmorComponent{
			RefundDivisor:  config.ArmoredRefundDivisor,
			LowHealthRatio: config.LowHealthRatio,
		})
	}

	log.Printf("[BossFactory] 创建 Boss %d: type=%s level=%d cycle=%d health=%d interval=%d",
		entityID, spec.Type, spec.BossLevel, spec.CycleCount, spec.Stats.BaseHealth, spec.Stats.FireInterval)

	return entityID, nil
}

// BossSpawnPosition 返回指定尺寸 Boss 的出生位置（中心坐标）
// Boss 贴近右侧，垂直居中于可活动区域
func BossSpawnPosition(size float64) (x, y float64) {
	x = config.GameWindowWidth - config.BossRightMargin - size/2
	y = config.ViewportHeight / 2
	return x, y
}
