package battle

import (
	"github.com/gonewx/bossrush/pkg/components"
	"github.com/gonewx/bossrush/pkg/ecs"
	"github.com/gonewx/bossrush/pkg/types"
)

// BossView 渲染层读取的 Boss 状态
type BossView struct {
	ID          ecs.EntityID
	Type        types.BossType
	Phase       components.BossPhase
	X, Y        float64
	Size        float64
	Health      int
	MaxHealth   int
	HealthRatio float64
	RageRatio   float64
	Flashing    bool
	BossLevel   int
	CycleCount  int
}

// PlayerView 渲染层读取的玩家状态
type PlayerView struct {
	X, Y          float64
	Width, Height float64
	Defeated      bool
	Invulnerable  bool
}

// ProjectileView 渲染层读取的投射物状态
type ProjectileView struct {
	X, Y          float64
	Width, Height float64
	Kind          types.ProjectileKind
	Side          components.ProjectileSide
	Dormant       bool // 点火延迟尚未结束
	Trail         []components.PathPoint
}

// WeaponView 渲染层读取的武器状态
type WeaponView struct {
	Type          types.WeaponType
	Ammo          int
	CooldownRatio float64
	Color         string
	Selected      bool
}

// Snapshot 某一步结束时的只读世界快照
type Snapshot struct {
	Step        int
	Score       int
	Over        bool
	Boss        *BossView // 转场期间为 nil
	Player      PlayerView
	Projectiles []ProjectileView
	Weapons     []WeaponView

	BossLevel           int
	TransitionRemaining int
	NextBoss            types.BossType
}

// Snapshot 生成当前世界的快照
// 快照中的切片是副本，调用方可以跨步保存
func (s *BattleSession) Snapshot() Snapshot {
	state := s.cycle.State()
	snap := Snapshot{
		Step:                s.step,
		Score:               s.score,
		Over:                s.over,
		BossLevel:           state.BossLevel,
		TransitionRemaining: state.TransitionRemaining,
		NextBoss:            state.NextType,
	}

	if view, ok := s.bossView(state.CurrentBoss); ok {
		snap.Boss = &view
	}
	snap.Player = s.playerView()
	snap.Projectiles = s.projectileViews()
	snap.Weapons = s.weaponViews()
	return snap
}

func (s *BattleSession) bossView(id ecs.EntityID) (BossView, bool) {
	if id == ecs.NoEntity || !s.em.IsAlive(id) {
		return BossView{}, false
	}
	boss, ok := ecs.GetComponent[*components.BossComponent](s.em, id)
	if !ok {
		return BossView{}, false
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
	health, _ := ecs.GetComponent[*components.HealthComponent](s.em, id)
	rage, _ := ecs.GetComponent[*components.RageComponent](s.em, id)

	return BossView{
		ID:          id,
		Type:        boss.Type,
		Phase:       boss.Phase,
		X:           pos.X,
		Y:           pos.Y,
		Size:        boss.Size,
		Health:      health.CurrentHealth,
		MaxHealth:   health.MaxHealth,
		HealthRatio: health.Ratio(),
		RageRatio:   rage.Ratio(),
		Flashing:    health.HitFlash > 0,
		BossLevel:   boss.BossLevel,
		CycleCount:  boss.CycleCount,
	}, true
}

func (s *BattleSession) playerView() PlayerView {
	var view PlayerView
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.playerID); ok {
		view.X, view.Y = pos.X, pos.Y
	}
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, s.playerID); ok {
		view.Width, view.Height = col.Width, col.Height
	}
	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID); ok {
		view.Defeated = player.Defeated
		view.Invulnerable = player.IsInvulnerable()
	}
	return view
}

func (s *BattleSession) projectileViews() []ProjectileView {
	ids := ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.CollisionComponent](s.em)
	views := make([]ProjectileView, 0, len(ids))
	for _, id := range ids {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)

		view := ProjectileView{
			X:       pos.X,
			Y:       pos.Y,
			Width:   col.Width,
			Height:  col.Height,
			Kind:    proj.Kind,
			Side:    proj.Side,
			Dormant: proj.IgnitionDelay > 0,
		}
		if trail, ok := ecs.GetComponent[*components.TrailComponent](s.em, id); ok && len(trail.Points) > 0 {
			view.Trail = append([]components.PathPoint(nil), trail.Points...)
		}
		views = append(views, view)
	}
	return views
}

func (s *BattleSession) weaponViews() []WeaponView {
	loadout, ok := ecs.GetComponent[*components.LoadoutComponent](s.em, s.playerID)
	if !ok {
		return nil
	}
	views := make([]WeaponView, 0, len(loadout.Weapons))
	for i, id := range loadout.Weapons {
		weapon, ok := ecs.GetComponent[*components.WeaponComponent](s.em, id)
		if !ok {
			continue
		}
		ratio := 0.0
		if weapon.Cooldown > 0 {
			ratio = float64(weapon.CooldownRemaining) / float64(weapon.Cooldown)
		}
		views = append(views, WeaponView{
			Type:          weapon.Type,
			Ammo:          weapon.Ammo,
			CooldownRatio: ratio,
			Color:         weapon.Color,
			Selected:      i == loadout.Current,
		})
	}
	return views
}
