package systems

import (
	"log"
	"math"

	"github.com/gonewx/bossrush/pkg/components"
	"github.com/gonewx/bossrush/pkg/ecs"
	"github.com/gonewx/bossrush/pkg/entities"
	"github.com/gonewx/bossrush/pkg/event"
	"github.com/gonewx/bossrush/pkg/types"
	"github.com/jakecoffman/cp"
)

// WeaponSystem 管理玩家武器的冷却、开火、切换和补给
type WeaponSystem struct {
	em     *ecs.EntityManager
	events *event.Queue
}

// NewWeaponSystem 创建武器系统
func NewWeaponSystem(em *ecs.EntityManager, events *event.Queue) *WeaponSystem {
	return &WeaponSystem{em: em, events: events}
}

// Update 所有武器冷却递减一步
func (s *WeaponSystem) Update() {
	for _, id := range ecs.GetEntitiesWith1[*components.WeaponComponent](s.em) {
		weapon, _ := ecs.GetComponent[*components.WeaponComponent](s.em, id)
		if weapon.CooldownRemaining > 0 {
			weapon.CooldownRemaining--
		}
	}
}

// Fire 从 origin 开火
//
// 冷却未结束、或有限弹药已耗尽时不开火。成功时按武器类型生成投射物，
// 有限弹药减一，冷却重置。target 只对追踪武器有意义，可为 NoEntity。
//
// 返回生成的投射物数量
func (s *WeaponSystem) Fire(weaponID, owner ecs.EntityID, originX, originY float64, target ecs.EntityID) int {
	weapon, ok := ecs.GetComponent[*components.WeaponComponent](s.em, weaponID)
	if !ok {
		return 0
	}
	if weapon.CooldownRemaining > 0 || !weapon.HasAmmo() {
		return 0
	}

	kind := projectileKindFor(weapon.Type)
	spread := weapon.SpreadDegrees * math.Pi / 180
	spawned := 0
	for i := 0; i < weapon.ProjectileCount; i++ {
		angle := (float64(i) - float64(weapon.ProjectileCount-1)/2) * spread
		v := cp.ForAngle(angle).Mult(weapon.Speed)

		spec := entities.ProjectileSpec{
			X: originX, Y: originY,
			VX: v.X, VY: v.Y,
			Width: weapon.Size, Height: weapon.Size,
			Damage:      weapon.Damage,
			Kind:        kind,
			Side:        components.SidePlayer,
			Owner:       owner,
			TrailLength: weapon.TrailLength,
		}
		if weapon.TurnRate > 0 && target != ecs.NoEntity {
			spec.Homing = &components.HomingComponent{
				Target:   target,
				TurnRate: weapon.TurnRate,
				Speed:    weapon.Speed,
			}
		}

		if _, err := entities.NewProjectile(s.em, spec); err != nil {
			log.Printf("[WeaponSystem] 武器 %s 开火失败: %v", weapon.Type, err)
			continue
		}
		spawned++
	}

	if spawned == 0 {
		return 0
	}
	if weapon.Ammo != components.UnlimitedAmmo {
		weapon.Ammo--
	}
	weapon.CooldownRemaining = weapon.Cooldown

	s.events.Publish(event.Event{
		Type:   event.WeaponFired,
		Entity: weaponID,
		Weapon: weapon.Type,
		Amount: spawned,
	})
	return spawned
}

// FireCurrent 用玩家当前选中的武器从玩家位置开火
func (s *WeaponSystem) FireCurrent(playerID, target ecs.EntityID) int {
	loadout, ok := ecs.GetComponent[*components.LoadoutComponent](s.em, playerID)
	if !ok {
		return 0
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, playerID)
	if !ok {
		return 0
	}
	return s.Fire(loadout.CurrentWeapon(), playerID, pos.X, pos.Y, target)
}

// SwitchWeapon 按 delta 循环切换当前武器
func (s *WeaponSystem) SwitchWeapon(playerID ecs.EntityID, delta int) {
	loadout, ok := ecs.GetComponent[*components.LoadoutComponent](s.em, playerID)
	if !ok || len(loadout.Weapons) == 0 || delta == 0 {
		return
	}
	n := len(loadout.Weapons)
	loadout.Current = ((loadout.Current+delta)%n + n) % n
	s.publishSwitched(loadout)
}

// SelectWeapon 直接选中装备栏中第 index 把武器（从 0 开始）
// 越界或已选中时返回 false
func (s *WeaponSystem) SelectWeapon(playerID ecs.EntityID, index int) bool {
	loadout, ok := ecs.GetComponent[*components.LoadoutComponent](s.em, playerID)
	if !ok || index < 0 || index >= len(loadout.Weapons) || index == loadout.Current {
		return false
	}
	loadout.Current = index
	s.publishSwitched(loadout)
	return true
}

func (s *WeaponSystem) publishSwitched(loadout *components.LoadoutComponent) {
	if weapon, ok := ecs.GetComponent[*components.WeaponComponent](s.em, loadout.CurrentWeapon()); ok {
		s.events.Publish(event.Event{
			Type:   event.WeaponSwitched,
			Entity: loadout.CurrentWeapon(),
			Weapon: weapon.Type,
			Amount: weapon.Ammo,
		})
	}
}

// Refill 把有限弹药武器补给到 RefillAmmo，只增不减
func (s *WeaponSystem) Refill(playerID ecs.EntityID) {
	loadout, ok := ecs.GetComponent[*components.LoadoutComponent](s.em, playerID)
	if !ok {
		return
	}
	for _, weaponID := range loadout.Weapons {
		weapon, ok := ecs.GetComponent[*components.WeaponComponent](s.em, weaponID)
		if !ok || weapon.Ammo == components.UnlimitedAmmo {
			continue
		}
		if weapon.Ammo < weapon.RefillAmmo {
			weapon.Ammo = weapon.RefillAmmo
			s.events.Publish(event.Event{
				Type:   event.AmmoReplenished,
				Entity: weaponID,
				Weapon: weapon.Type,
				Amount: weapon.Ammo,
			})
		}
	}
}

// ClearProjectiles 销毁玩家发射的所有投射物
func (s *WeaponSystem) ClearProjectiles(owner ecs.EntityID) int {
	return discardOwnedProjectiles(s.em, owner)
}

func projectileKindFor(weaponType types.WeaponType) types.ProjectileKind {
	switch weaponType {
	case types.WeaponPiercingTrail:
		return types.ProjectileBeam
	case types.WeaponHoming:
		return types.ProjectileMissile
	default:
		return types.ProjectilePlayerShot
	}
}
