package systems

import (
	"testing"

	"github.com/gonewx/bossrush/pkg/components"
	"github.com/gonewx/bossrush/pkg/config"
	"github.com/gonewx/bossrush/pkg/ecs"
	"github.com/gonewx/bossrush/pkg/event"
	"github.com/gonewx/bossrush/pkg/types"
)

func newTestCycle(t *testing.T, w *testWorld) (*CycleSystem, ecs.EntityID) {
	t.Helper()
	cycle := NewCycleSystem(w.em, w.events, w.difficulty, w.bosses, w.weapons)
	player := w.spawnPlayer(t, true)
	if err := cycle.Start(player); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return cycle, player
}

// defeatAndAdvance 击败当前 Boss 并推进到下一个 Boss 出场
func defeatAndAdvance(t *testing.T, w *testWorld, cycle *CycleSystem) ecs.EntityID {
	t.Helper()
	w.bosses.TakeDamage(cycle.CurrentBoss(), 1<<20)
	cycle.Update()
	w.em.RemoveMarkedEntities()
	for i := 0; i < config.BossTransitionSteps; i++ {
		cycle.Update()
	}
	if cycle.CurrentBoss() == ecs.NoEntity {
		t.Fatalf("no boss spawned after transition")
	}
	return cycle.CurrentBoss()
}

func TestCycleStartSpawnsFirstBoss(t *testing.T) {
	w := newTestWorld()
	cycle, _ := newTestCycle(t, w)

	boss, health, _ := w.boss(t, cycle.CurrentBoss())
	if boss.Type != types.BossStandard || boss.BossLevel != 0 {
		t.Errorf("first boss = %s level %d", boss.Type, boss.BossLevel)
	}
	if boss.Phase != components.BossPhasePreparing || boss.PreparationRemaining != config.FirstBossPreparation {
		t.Errorf("phase=%s prep=%d, want Preparing %d", boss.Phase, boss.PreparationRemaining, config.FirstBossPreparation)
	}
	if health.MaxHealth != 100 {
		t.Errorf("max health = %d, want 100", health.MaxHealth)
	}
	if n := countEvents(w.events.Drain(), event.BossSpawned); n != 1 {
		t.Errorf("BossSpawned events = %d, want 1", n)
	}
}

func TestCycleTransition(t *testing.T) {
	w := newTestWorld()
	cycle, _ := newTestCycle(t, w)
	first := cycle.CurrentBoss()
	w.events.Drain()

	w.bosses.TakeDamage(first, 1000)
	cycle.Update()

	state := cycle.State()
	if state.State != components.CycleStateTransitioning || state.BossLevel != 1 {
		t.Fatalf("state=%s level=%d, want transitioning 1", state.State, state.BossLevel)
	}
	if !w.em.IsMarkedForDestroy(first) {
		t.Error("defeated boss should be removed")
	}
	if n := countEvents(w.events.Drain(), event.TransitionBegan); n != 1 {
		t.Errorf("TransitionBegan events = %d, want 1", n)
	}

	for i := 0; i < config.BossTransitionSteps-1; i++ {
		cycle.Update()
	}
	if cycle.CurrentBoss() != ecs.NoEntity {
		t.Fatal("boss spawned before the transition ended")
	}
	cycle.Update()

	next := cycle.CurrentBoss()
	boss, _, _ := w.boss(t, next)
	if boss.Type != types.BossSwift {
		t.Errorf("second boss = %s, want swift", boss.Type)
	}
	swift, _ := config.DefaultBossStats().Get(types.BossSwift)
	if boss.PreparationRemaining != swift.PreparationSteps {
		t.Errorf("preparation = %d, want %d", boss.PreparationRemaining, swift.PreparationSteps)
	}
}

// bossLevel 7 是第二轮的装甲型：生命 220，射击间隔 115
func TestCycleScalingAtLevelSeven(t *testing.T) {
	w := newTestWorld()
	cycle, _ := newTestCycle(t, w)

	var id ecs.EntityID
	for level := 1; level <= 7; level++ {
		id = defeatAndAdvance(t, w, cycle)
	}

	boss, health, _ := w.boss(t, id)
	if boss.Type != types.BossArmored || boss.BossLevel != 7 || boss.CycleCount != 1 {
		t.Fatalf("boss = %s level %d cycle %d", boss.Type, boss.BossLevel, boss.CycleCount)
	}
	if health.MaxHealth != 220 {
		t.Errorf("max health = %d, want 220", health.MaxHealth)
	}
	if boss.FireInterval != 115 {
		t.Errorf("fire interval = %d, want 115", boss.FireInterval)
	}
	if !ecs.HasComponent[*components.ArmorComponent](w.em, id) {
		t.Error("armored boss should carry armor")
	}

	state := cycle.State()
	if state.HighestCycle != 1 || state.BossesDefeated != 7 {
		t.Errorf("highest cycle=%d defeated=%d", state.HighestCycle, state.BossesDefeated)
	}
	reached := 0
	for _, e := range w.events.Drain() {
		if e.Type == event.CycleReached {
			reached++
			if e.Cycle != 1 || e.BossLevel != 4 {
				t.Errorf("CycleReached at level %d cycle %d, want 4/1", e.BossLevel, e.Cycle)
			}
		}
	}
	if reached != 1 {
		t.Errorf("CycleReached events = %d, want 1", reached)
	}
}

func TestCycleRefillsAmmoOnDefeat(t *testing.T) {
	w := newTestWorld()
	cycle, player := newTestCycle(t, w)
	_, homing := weaponOf(t, w, player, types.WeaponHoming)
	homing.Ammo = 0

	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, player)
	shot := spawnProjectile(t, w, entitiesSpecAt(pos.X, pos.Y, player))

	w.bosses.TakeDamage(cycle.CurrentBoss(), 1000)
	cycle.Update()

	if homing.Ammo != homing.RefillAmmo {
		t.Errorf("homing ammo = %d, want %d", homing.Ammo, homing.RefillAmmo)
	}
	if !w.em.IsMarkedForDestroy(shot) {
		t.Error("player projectiles should be cleared between bosses")
	}
}
