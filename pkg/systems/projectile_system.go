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
	"github.com/jakecoffman/cp"
)

// ProjectileSystem 推进所有投射物的运动
//
// 每个投射物每步依次处理：
//  1. 上一步已离开战场的投射物在本步被丢弃
//  2. 点火延迟未结束时只递减延迟，不移动
//  3. 按运动策略移动：路径 > 追踪 > 直线
//  4. 分裂倒计时，到 0 时分裂一次
//  5. 记录拖尾
type ProjectileSystem struct {
	em     *ecs.EntityManager
	events *event.Queue
	bounds cp.BB
}

// NewProjectileSystem 创建投射物系统，战场范围为屏幕大小
func NewProjectileSystem(em *ecs.EntityManager, events *event.Queue) *ProjectileSystem {
	return &ProjectileSystem{
		em:     em,
		events: events,
		bounds: cp.BB{L: 0, B: 0, R: config.GameWindowWidth, T: config.GameWindowHeight},
	}
}

// Update 推进所有投射物一个模拟步
func (s *ProjectileSystem) Update() {
	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.em) {
		if !s.em.IsAlive(id) {
			continue
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		if s.outOfBounds(id, pos) {
			s.em.DestroyEntity(id)
			continue
		}

		if proj.IgnitionDelay > 0 {
			proj.IgnitionDelay--
			continue
		}

		if path, ok := ecs.GetComponent[*components.PathComponent](s.em, id); ok {
			if path.Finished {
				s.em.DestroyEntity(id)
				continue
			}
			advancePath(path, pos)
		} else {
			vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, id)
			if !ok {
				continue
			}
			if homing, ok := ecs.GetComponent[*components.HomingComponent](s.em, id); ok {
				s.steer(homing, pos, vel)
			}
			pos.X += vel.VX
			pos.Y += vel.VY
		}

		if splitter, ok := ecs.GetComponent[*components.SplitterComponent](s.em, id); ok {
			s.tickSplitter(id, proj, splitter, pos)
		}

		if trail, ok := ecs.GetComponent[*components.TrailComponent](s.em, id); ok {
			recordTrail(trail, pos)
		}
	}
}

// outOfBounds 判断投射物是否已离开战场
// 左侧和上方允许越界一个自身尺寸，右侧和下方以屏幕边缘为界
func (s *ProjectileSystem) outOfBounds(id ecs.EntityID, pos *components.PositionComponent) bool {
	w, h := 0.0, 0.0
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
		w, h = col.Width, col.Height
	}
	area := cp.BB{L: s.bounds.L - w, B: s.bounds.B - h, R: s.bounds.R, T: s.bounds.T}
	return !area.ContainsVect(cp.Vector{X: pos.X, Y: pos.Y})
}

// steer 以恒定速度把航向转向目标，每步最多转 TurnRate 弧度
// 目标已不存在时保持当前航向
func (s *ProjectileSystem) steer(homing *components.HomingComponent, pos *components.PositionComponent, vel *components.VelocityComponent) {
	if !s.em.IsAlive(homing.Target) {
		return
	}
	targetPos, ok := ecs.GetComponent[*components.PositionComponent](s.em, homing.Target)
	if !ok {
		return
	}

	current := cp.Vector{X: vel.VX, Y: vel.VY}
	speed := homing.Speed
	if speed <= 0 {
		speed = current.Length()
	}
	desired := cp.Vector{X: targetPos.X - pos.X, Y: targetPos.Y - pos.Y}
	if desired.LengthSq() == 0 || speed == 0 {
		return
	}

	heading := current.ToAngle()
	if current.LengthSq() == 0 {
		heading = desired.ToAngle()
	}
	diff := normalizeAngle(desired.ToAngle() - heading)
	if diff > homing.TurnRate {
		diff = homing.TurnRate
	} else if diff < -homing.TurnRate {
		diff = -homing.TurnRate
	}

	next := cp.ForAngle(heading + diff).Mult(speed)
	vel.VX, vel.VY = next.X, next.Y
}

// normalizeAngle 把角度规范到 (-π, π]
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// advancePath 沿折线前进 Speed 距离，位置取最后到达的路径点
func advancePath(path *components.PathComponent, pos *components.PositionComponent) {
	remaining := path.Speed
	for remaining > 0 && path.Index < len(path.Points)-1 {
		a := path.Points[path.Index]
		b := path.Points[path.Index+1]
		segment := cp.Vector{X: a.X, Y: a.Y}.Distance(cp.Vector{X: b.X, Y: b.Y})
		left := segment - path.Progress
		if remaining >= left {
			remaining -= left
			path.Index++
			path.Progress = 0
		} else {
			path.Progress += remaining
			remaining = 0
		}
	}

	reached := path.Points[path.Index]
	pos.X, pos.Y = reached.X, reached.Y
	if path.Index >= len(path.Points)-1 {
		path.Finished = true
	}
}

// tickSplitter 分裂倒计时；到 0 时沿当前航向扇形分出子弹，只触发一次
func (s *ProjectileSystem) tickSplitter(id ecs.EntityID, proj *components.ProjectileComponent, splitter *components.SplitterComponent, pos *components.PositionComponent) {
	if splitter.HasSplit {
		return
	}
	if splitter.Countdown > 0 {
		splitter.Countdown--
	}
	if splitter.Countdown > 0 {
		return
	}
	splitter.HasSplit = true

	heading := math.Pi
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, id); ok && (vel.VX != 0 || vel.VY != 0) {
		heading = cp.Vector{X: vel.VX, Y: vel.VY}.ToAngle()
	}

	damage := proj.Damage / 2
	if damage < 1 {
		damage = 1
	}
	spread := splitter.SpreadDegrees * math.Pi / 180
	for i := 0; i < splitter.ChildCount; i++ {
		offset := (float64(i) - float64(splitter.ChildCount-1)/2) * spread
		v := cp.ForAngle(heading + offset).Mult(splitter.ChildSpeed)
		_, err := entities.NewProjectile(s.em, entities.ProjectileSpec{
			X: pos.X, Y: pos.Y,
			VX: v.X, VY: v.Y,
			Width: config.FragmentSize, Height: config.FragmentSize,
			Damage: damage,
			Kind:   types.ProjectileFragment,
			Side:   proj.Side,
			Owner:  proj.Owner,
		})
		if err != nil {
			log.Printf("[ProjectileSystem] 分裂子弹创建失败: %v", err)
		}
	}

	s.events.Publish(event.Event{
		Type:   event.ProjectileSplit,
		Entity: id,
		Amount: splitter.ChildCount,
	})
}

func recordTrail(trail *components.TrailComponent, pos *components.PositionComponent) {
	trail.Points = append(trail.Points, components.PathPoint{X: pos.X, Y: pos.Y})
	if over := len(trail.Points) - trail.Length; over > 0 {
		trail.Points = append(trail.Points[:0], trail.Points[over:]...)
	}
}
