package systems

import (
	"math"
	"testing"

	"github.com/gonewx/bossrush/pkg/components"
	"github.com/gonewx/bossrush/pkg/ecs"
	"github.com/gonewx/bossrush/pkg/event"
	"github.com/gonewx/bossrush/pkg/types"
)

func weaponOf(t *testing.T, w *testWorld, playerID ecs.EntityID, weaponType types.WeaponType) (ecs.EntityID, *components.WeaponComponent) {
	t.Helper()
	loadout, _ := ecs.GetComponent[*components.LoadoutComponent](w.em, playerID)
	for _, id := range loadout.Weapons {
		weapon, _ := ecs.GetComponent[*components.WeaponComponent](w.em, id)
		if weapon.Type == weaponType {
			return id, weapon
		}
	}
	t.Fatalf("player has no %s", weaponType)
	return ecs.NoEntity, nil
}

func TestWeaponCooldown(t *testing.T) {
	w := newTestWorld()
	player := w.spawnPlayer(t, false)

	if n := w.weapons.FireCurrent(player, ecs.NoEntity); n != 1 {
		t.Fatalf("first shot spawned %d projectiles, want 1", n)
	}
	if n := w.weapons.FireCurrent(player, ecs.NoEntity); n != 0 {
		t.Fatalf("fired during cooldown")
	}

	_, weapon := weaponOf(t, w, player, types.WeaponStandard)
	for i := 0; i < weapon.Cooldown; i++ {
		w.weapons.Update()
	}
	if n := w.weapons.FireCurrent(player, ecs.NoEntity); n != 1 {
		t.Errorf("shot after cooldown spawned %d projectiles, want 1", n)
	}
	if weapon.Ammo != components.UnlimitedAmmo {
		t.Errorf("standard ammo = %d, want unlimited", weapon.Ammo)
	}
}

func TestWeaponAmmoAndRefill(t *testing.T) {
	w := newTestWorld()
	player := w.spawnPlayer(t, false)
	weaponID, weapon := weaponOf(t, w, player, types.WeaponHoming)
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, player)

	for i := 0; i < 5; i++ {
		weapon.CooldownRemaining = 0
		if n := w.weapons.Fire(weaponID, player, pos.X, pos.Y, ecs.NoEntity); n != 1 {
			t.Fatalf("shot %d failed", i)
		}
	}
	weapon.CooldownRemaining = 0
	if n := w.weapons.Fire(weaponID, player, pos.X, pos.Y, ecs.NoEntity); n != 0 {
		t.Fatal("fired with no ammo")
	}

	w.events.Drain()
	w.weapons.Refill(player)
	if weapon.Ammo != weapon.RefillAmmo {
		t.Errorf("ammo after refill = %d, want %d", weapon.Ammo, weapon.RefillAmmo)
	}
	events := w.events.Drain()
	if n := countEvents(events, event.AmmoReplenished); n != 1 {
		t.Errorf("AmmoReplenished events = %d, want 1", n)
	}
}

func TestMultiWeaponSpread(t *testing.T) {
	w := newTestWorld()
	player := w.spawnPlayer(t, false)
	weaponID, weapon := weaponOf(t, w, player, types.WeaponMulti)

	if n := w.weapons.Fire(weaponID, player, 70, 200, ecs.NoEntity); n != 3 {
		t.Fatalf("spawned %d projectiles, want 3", n)
	}

	want := []float64{-15, 0, 15}
	shots := OwnedProjectiles(w.em, player)
	for i, id := range shots {
		vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, id)
		angle := math.Atan2(vel.VY, vel.VX) * 180 / math.Pi
		if math.Abs(angle-want[i]) > 1e-9 {
			t.Errorf("shot %d angle = %v, want %v", i, angle, want[i])
		}
		if speed := math.Hypot(vel.VX, vel.VY); math.Abs(speed-weapon.Speed) > 1e-9 {
			t.Errorf("shot %d speed = %v, want %v", i, speed, weapon.Speed)
		}
	}
	if weapon.Ammo != weapon.RefillAmmo-1 {
		t.Errorf("ammo = %d, want %d", weapon.Ammo, weapon.RefillAmmo-1)
	}
}

func TestHomingWeaponTargeting(t *testing.T) {
	w := newTestWorld()
	player := w.spawnPlayer(t, false)
	boss := w.spawnBoss(t, types.BossStandard, 0)
	weaponID, weapon := weaponOf(t, w, player, types.WeaponHoming)

	w.weapons.Fire(weaponID, player, 70, 200, ecs.NoEntity)
	weapon.CooldownRemaining = 0
	w.weapons.Fire(weaponID, player, 70, 200, boss)

	shots := OwnedProjectiles(w.em, player)
	if len(shots) != 2 {
		t.Fatalf("shots = %d, want 2", len(shots))
	}
	if ecs.HasComponent[*components.HomingComponent](w.em, shots[0]) {
		t.Error("shot without target should fly straight")
	}
	homing, ok := ecs.GetComponent[*components.HomingComponent](w.em, shots[1])
	if !ok || homing.Target != boss {
		t.Error("shot with target should home on the boss")
	}
}

func TestPiercingTrailWeapon(t *testing.T) {
	w := newTestWorld()
	player := w.spawnPlayer(t, false)
	weaponID, weapon := weaponOf(t, w, player, types.WeaponPiercingTrail)

	w.weapons.Fire(weaponID, player, 70, 200, ecs.NoEntity)
	shots := OwnedProjectiles(w.em, player)
	if len(shots) != 1 {
		t.Fatalf("shots = %d, want 1", len(shots))
	}
	trail, ok := ecs.GetComponent[*components.TrailComponent](w.em, shots[0])
	if !ok || trail.Length != weapon.TrailLength {
		t.Errorf("trail missing or wrong length")
	}
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](w.em, shots[0])
	if proj.Kind != types.ProjectileBeam || proj.Side != components.SidePlayer {
		t.Errorf("kind=%s side=%v, want beam/player", proj.Kind, proj.Side)
	}
}

func TestSwitchWeaponWraps(t *testing.T) {
	w := newTestWorld()
	player := w.spawnPlayer(t, false)
	loadout, _ := ecs.GetComponent[*components.LoadoutComponent](w.em, player)

	w.weapons.SwitchWeapon(player, -1)
	if loadout.Current != len(loadout.Weapons)-1 {
		t.Errorf("current = %d, want %d", loadout.Current, len(loadout.Weapons)-1)
	}
	w.weapons.SwitchWeapon(player, 1)
	if loadout.Current != 0 {
		t.Errorf("current = %d, want 0", loadout.Current)
	}
	if n := countEvents(w.events.Drain(), event.WeaponSwitched); n != 2 {
		t.Errorf("WeaponSwitched events = %d, want 2", n)
	}
}

func TestSelectWeapon(t *testing.T) {
	tests := []struct {
		name        string
		index       int
		wantOK      bool
		wantCurrent int
	}{
		{"选中第三把", 2, true, 2},
		{"已选中不重复切换", 0, false, 0},
		{"负数越界", -1, false, 0},
		{"超出装备栏", 9, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			player := w.spawnPlayer(t, false)
			loadout, _ := ecs.GetComponent[*components.LoadoutComponent](w.em, player)

			if ok := w.weapons.SelectWeapon(player, tt.index); ok != tt.wantOK {
				t.Errorf("SelectWeapon(%d) = %v, want %v", tt.index, ok, tt.wantOK)
			}
			if loadout.Current != tt.wantCurrent {
				t.Errorf("current = %d, want %d", loadout.Current, tt.wantCurrent)
			}
			want := 0
			if tt.wantOK {
				want = 1
			}
			if n := countEvents(w.events.Drain(), event.WeaponSwitched); n != want {
				t.Errorf("WeaponSwitched events = %d, want %d", n, want)
			}
		})
	}
}
