package systems

import (
	"log"
	"math"

	"github.com/gonewx/bossrush/pkg/components"
	"github.com/gonewx/bossrush/pkg/config"
	"github.com/gonewx/bossrush/pkg/ecs"
	"github.com/gonewx/bossrush/pkg/entities"
	"github.com/gonewx/bossrush/pkg/event"
	"github.com/gonewx/bossrush/pkg/types"
	"github.com/gonewx/bossrush/pkg/utils"
	"github.com/jakecoffman/cp"
)

// BossBehavior 原型专属行为
//
// 每个原型一个实现，BossSystem 按 BossType 从分派表中选取。
type BossBehavior interface {
	// Move 每步调用一次（Defeated 以外的所有阶段）
	Move(ctx *BossContext)
	// NormalAttack 普通攻击，由射击间隔驱动
	NormalAttack(ctx *BossContext)
	// UltimateSetup 进入 UltimateActive 时调用一次
	UltimateSetup(ctx *BossContext)
	// UltimateEffect UltimateActive 期间每步调用
	UltimateEffect(ctx *BossContext)
}

// splitBehavior 低血量一次性分裂能力（仅分裂型实现）
type splitBehavior interface {
	Split(ctx *BossContext)
}

// BossContext 单个 Boss 在一次调用中可访问的状态
type BossContext struct {
	ID       ecs.EntityID
	Boss     *components.BossComponent
	Position *components.PositionComponent
	Health   *components.HealthComponent
	Rage     *components.RageComponent

	em     *ecs.EntityManager
	events *event.Queue
	rng    *utils.PRNGService
}

// RNG 返回模拟共用的随机数服务
func (c *BossContext) RNG() *utils.PRNGService {
	return c.rng
}

// FrontX 返回 Boss 左侧边缘的 X 坐标（开火位置）
func (c *BossContext) FrontX() float64 {
	return c.Position.X - c.Boss.Size/2
}

// Spawn 以该 Boss 为所有者创建投射物
func (c *BossContext) Spawn(spec entities.ProjectileSpec) ecs.EntityID {
	spec.Side = components.SideBoss
	spec.Owner = c.ID
	id, err := entities.NewProjectile(c.em, spec)
	if err != nil {
		log.Printf("[BossSystem] Boss %d 创建投射物失败: %v", c.ID, err)
		return ecs.NoEntity
	}
	return id
}

func defaultBossBehaviors() [types.BossTypeCount]BossBehavior {
	var table [types.BossTypeCount]BossBehavior
	table[types.BossStandard] = standardBehavior{}
	table[types.BossSwift] = swiftBehavior{}
	table[types.BossSplitting] = splittingBehavior{}
	table[types.BossArmored] = armoredBehavior{}
	return table
}

// patrol 在可活动区域内上下巡逻，碰到边界反向
func patrol(ctx *BossContext, speed float64) {
	half := ctx.Boss.Size / 2
	top := config.BossPatrolMargin + half
	bottom := config.ViewportHeight - config.BossPatrolMargin - half
	if bottom < top {
		bottom = top
	}

	ctx.Position.Y += speed * ctx.Boss.Direction
	if ctx.Position.Y <= top {
		ctx.Position.Y = top
		ctx.Boss.Direction = 1
	} else if ctx.Position.Y >= bottom {
		ctx.Position.Y = bottom
		ctx.Boss.Direction = -1
	}
}

// maybeFlip 每隔 period 步以概率 chance 反转巡逻方向
func maybeFlip(ctx *BossContext, period int, chance float64) {
	if period > 0 && ctx.Boss.Tick%period == 0 && ctx.rng.Chance(chance) {
		ctx.Boss.Direction = -ctx.Boss.Direction
	}
}

// ---- Standard ----

type standardBehavior struct{}

func (standardBehavior) Move(ctx *BossContext) {
	patrol(ctx, ctx.Boss.Speed)
	maybeFlip(ctx, 120, 0.3)
}

func (standardBehavior) NormalAttack(ctx *BossContext) {
	ctx.Spawn(entities.ProjectileSpec{
		X: ctx.FrontX() - 10, Y: ctx.Position.Y,
		VX: -8,
		Width: config.BossBulletSize, Height: config.BossBulletSize,
		Damage: 1,
		Kind:   types.ProjectileBullet,
	})
}

func (standardBehavior) UltimateSetup(ctx *BossContext) {}

// UltimateEffect 每 8 步喷出一颗随机散射的火球
func (standardBehavior) UltimateEffect(ctx *BossContext) {
	if ctx.Boss.UltimateTicker%8 != 0 {
		return
	}
	rng := ctx.rng
	ctx.Spawn(entities.ProjectileSpec{
		X:  ctx.FrontX(),
		Y:  ctx.Position.Y + rng.FloatRange(-20, 20),
		VX: -7 - rng.Float64()*3,
		VY: -3 + rng.Float64()*6,
		Width: config.FireballSize, Height: config.FireballSize,
		Damage: 3,
		Kind:   types.ProjectileFireball,
	})
}

// ---- Swift ----

type swiftBehavior struct{}

func (swiftBehavior) Move(ctx *BossContext) {
	patrol(ctx, ctx.Boss.Speed)
	maybeFlip(ctx, 60, 0.5)
}

// NormalAttack 三连发，依次延迟 5 步出膛
func (swiftBehavior) NormalAttack(ctx *BossContext) {
	for i := 0; i < 3; i++ {
		ctx.Spawn(entities.ProjectileSpec{
			X: ctx.FrontX(), Y: ctx.Position.Y,
			VX: -12,
			Width: config.BossBulletSize, Height: config.BossBulletSize,
			Damage:        1,
			Kind:          types.ProjectileBullet,
			IgnitionDelay: i * 5,
		})
	}
}

func (swiftBehavior) UltimateSetup(ctx *BossContext) {}

// UltimateEffect 每 4 步放出 4 道折线闪电
func (b swiftBehavior) UltimateEffect(ctx *BossContext) {
	if ctx.Boss.UltimateTicker%4 != 0 {
		return
	}
	for i := 0; i < 4; i++ {
		b.lightning(ctx)
	}
}

func (swiftBehavior) lightning(ctx *BossContext) {
	rng := ctx.rng
	start := cp.Vector{
		X: ctx.FrontX(),
		Y: ctx.Position.Y + rng.FloatRange(-ctx.Boss.Size/4, ctx.Boss.Size/4),
	}
	target := cp.Vector{
		X: -20 + rng.FloatRange(-100, 100),
		Y: rng.FloatRange(50, config.ViewportHeight-50),
	}
	segments := rng.IntRange(5, 8)
	path := zigzagPath(rng, start, target, segments)
	speed := rng.FloatRange(14, 20)

	ctx.Spawn(entities.ProjectileSpec{
		Width: config.LightningSize, Height: config.LightningSize,
		Damage:    2,
		Kind:      types.ProjectileLightning,
		Path:      path,
		PathSpeed: speed,
		MaxSteps:  config.LightningMaxSteps,
	})

	if !rng.Chance(0.5) {
		return
	}

	// 分叉：从中间某个折点分出短闪电，等主闪电到达该点后再出发
	branches := rng.IntRange(1, 3)
	for j := 0; j < branches; j++ {
		k := rng.IntRange(1, len(path)-2)
		origin := cp.Vector{X: path[k].X, Y: path[k].Y}
		heading := cp.ForAngle(math.Pi + rng.FloatRange(-math.Pi/3, math.Pi/3))
		end := origin.Add(heading.Mult(rng.FloatRange(40, 80)))

		ctx.Spawn(entities.ProjectileSpec{
			Width: config.LightningSize, Height: config.LightningSize,
			Damage:        2,
			Kind:          types.ProjectileLightning,
			Path:          zigzagPath(rng, origin, end, rng.IntRange(2, 3)),
			PathSpeed:     speed,
			IgnitionDelay: int(math.Ceil(pathLength(path[:k+1]) / speed)),
			MaxSteps:      config.LightningMaxSteps,
		})
	}
}

// zigzagPath 生成从 start 到 end 的折线，中间折点沿垂直方向随机偏移 10~30 像素
func zigzagPath(rng *utils.PRNGService, start, end cp.Vector, segments int) []components.PathPoint {
	if segments < 1 {
		segments = 1
	}
	dir := end.Sub(start)
	perp := cp.Vector{}
	if dir.LengthSq() > 0 {
		perp = dir.Normalize().Perp()
	}

	points := make([]components.PathPoint, 0, segments+1)
	points = append(points, components.PathPoint{X: start.X, Y: start.Y})
	for i := 1; i <= segments; i++ {
		p := start.Lerp(end, float64(i)/float64(segments))
		if i < segments {
			p = p.Add(perp.Mult(rng.FloatRange(10, 30) * rng.Sign()))
		}
		points = append(points, components.PathPoint{X: p.X, Y: p.Y})
	}
	return points
}

func pathLength(points []components.PathPoint) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		a := cp.Vector{X: points[i-1].X, Y: points[i-1].Y}
		total += a.Distance(cp.Vector{X: points[i].X, Y: points[i].Y})
	}
	return total
}

// ---- Splitting ----

type splittingBehavior struct{}

func (splittingBehavior) Move(ctx *BossContext) {
	speed := ctx.Boss.Speed
	if ctx.Boss.SplitThreshold > 0 && ctx.Health.CurrentHealth <= ctx.Boss.SplitThreshold {
		speed *= config.SplittingSlowFactor
	}
	patrol(ctx, speed)
}

// NormalAttack 慢速分裂弹，30 步后分成三颗
func (splittingBehavior) NormalAttack(ctx *BossContext) {
	ctx.Spawn(entities.ProjectileSpec{
		X: ctx.FrontX(), Y: ctx.Position.Y,
		VX: -6,
		Width: config.BossBulletSize, Height: config.BossBulletSize,
		Damage: 1,
		Kind:   types.ProjectileSplitter,
		Splitter: &components.SplitterComponent{
			Countdown:     30,
			ChildCount:    3,
			SpreadDegrees: 30,
			ChildSpeed:    8,
		},
	})
}

// UltimateSetup 一次性放出 16 方向的分裂弹环
func (splittingBehavior) UltimateSetup(ctx *BossContext) {
	const ringSize = 16
	for i := 0; i < ringSize; i++ {
		v := cp.ForAngle(2 * math.Pi * float64(i) / ringSize).Mult(6)
		ctx.Spawn(entities.ProjectileSpec{
			X: ctx.Position.X, Y: ctx.Position.Y,
			VX: v.X, VY: v.Y,
			Width: config.BossBulletSize, Height: config.BossBulletSize,
			Damage: 2,
			Kind:   types.ProjectileSplitter,
			Splitter: &components.SplitterComponent{
				Countdown:     25,
				ChildCount:    3,
				SpreadDegrees: 30,
				ChildSpeed:    8,
			},
		})
	}
}

func (splittingBehavior) UltimateEffect(ctx *BossContext) {}

// Split 低血量分裂：上下各放出一颗斜向子弹
func (splittingBehavior) Split(ctx *BossContext) {
	for _, dy := range []float64{-1, 1} {
		ctx.Spawn(entities.ProjectileSpec{
			X: ctx.FrontX(), Y: ctx.Position.Y + 50*dy,
			VX: -3, VY: dy,
			Width: config.BossBulletSize, Height: config.BossBulletSize,
			Damage: 1,
			Kind:   types.ProjectileFragment,
		})
	}
}

// ---- Armored ----

type armoredBehavior struct{}

// Move 每 180 步的前 60 步原地不动
func (armoredBehavior) Move(ctx *BossContext) {
	if ctx.Boss.Tick%config.ArmoredFreezePeriod < config.ArmoredFreezeSteps {
		return
	}
	patrol(ctx, ctx.Boss.Speed)
}

func (armoredBehavior) NormalAttack(ctx *BossContext) {
	ctx.Spawn(entities.ProjectileSpec{
		X: ctx.FrontX() - 20, Y: ctx.Position.Y,
		VX: -5,
		Width: config.ArmoredBulletSize, Height: config.ArmoredBulletSize,
		Damage: 2,
		Kind:   types.ProjectileHeavyBullet,
	})
}

func (armoredBehavior) UltimateSetup(ctx *BossContext) {}

// UltimateEffect 每 25 步推出一道冲击波
func (armoredBehavior) UltimateEffect(ctx *BossContext) {
	if ctx.Boss.UltimateTicker%25 != 0 {
		return
	}
	ctx.Spawn(entities.ProjectileSpec{
		X: ctx.FrontX(), Y: ctx.Position.Y,
		VX: -4,
		Width: config.ShockwaveSize, Height: config.ShockwaveSize,
		Damage: 5,
		Kind:   types.ProjectileShockwave,
	})
}
