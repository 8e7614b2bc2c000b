package entities

import (
	"fmt"

	"github.com/gonewx/bossrush/pkg/components"
	"github.com/gonewx/bossrush/pkg/ecs"
	"github.com/gonewx/bossrush/pkg/types"
)

// ProjectileSpec 描述一个待创建的投射物
//
// Homing、Splitter、Path 为可选的运动策略，同时最多设置一个；
// 都为空时按 VX/VY 直线运动。
type ProjectileSpec struct {
	X, Y          float64
	VX, VY        float64
	Width, Height float64
	Damage        int
	Kind          types.ProjectileKind
	Side          components.ProjectileSide
	Owner         ecs.EntityID
	IgnitionDelay int

	Homing   *components.HomingComponent
	Splitter *components.SplitterComponent
	Path     []components.PathPoint
	// PathSpeed 沿路径前进的速度（像素/步）
	PathSpeed float64

	TrailLength int
	MaxSteps    int // 大于 0 时添加生命周期组件
}

// NewProjectile 创建投射物实体
//
// 参数:
//   - em: 实体管理器
//   - spec: 投射物描述
//
// 返回:
//   - ecs.EntityID: 创建的投射物实体ID，如果失败返回 0
//   - error: 参数非法时返回错误信息
func NewProjectile(em *ecs.EntityManager, spec ProjectileSpec) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if spec.Damage < 0 {
		return 0, fmt.Errorf("projectile damage cannot be negative, got %d", spec.Damage)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return 0, fmt.Errorf("projectile size must be positive, got %vx%v", spec.Width, spec.Height)
	}
	if spec.IgnitionDelay < 0 {
		return 0, fmt.Errorf("ignition delay cannot be negative, got %d", spec.IgnitionDelay)
	}
	if len(spec.Path) == 1 {
		return 0, fmt.Errorf("path needs at least 2 points")
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: spec.X, Y: spec.Y})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{VX: spec.VX, VY: spec.VY})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  spec.Width,
		Height: spec.Height,
	})
	ecs.AddComponent(em, entityID, &components.ProjectileComponent{
		Kind:          spec.Kind,
		Side:          spec.Side,
		Owner:         spec.Owner,
		Damage:        spec.Damage,
		IgnitionDelay: spec.IgnitionDelay,
	})

	if spec.Homing != nil {
		homing := *spec.Homing
		ecs.AddComponent(em, entityID, &homing)
	}

	if spec.Splitter != nil {
		splitter := *spec.Splitter
		splitter.HasSplit = false
		ecs.AddComponent(em, entityID, &splitter)
	}

	if len(spec.Path) > 0 {
		points := make([]components.PathPoint, len(spec.Path))
		copy(points, spec.Path)
		// 路径弹从第一个路径点出发
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, entityID)
		pos.X, pos.Y = points[0].X, points[0].Y
		ecs.AddComponent(em, entityID, &components.PathComponent{
			Points: points,
			Speed:  spec.PathSpeed,
		})
	}

	if spec.TrailLength > 0 {
		ecs.AddComponent(em, entityID, &components.TrailComponent{
			Length: spec.TrailLength,
			Points: make([]components.PathPoint, 0, spec.TrailLength),
		})
	}

	if spec.MaxSteps > 0 {
		ecs.AddComponent(em, entityID, &components.LifetimeComponent{MaxSteps: spec.MaxSteps})
	}

	return entityID, nil
}
