package systems

import (
	"math"
	"testing"

	"github.com/gonewx/bossrush/pkg/components"
	"github.com/gonewx/bossrush/pkg/config"
	"github.com/gonewx/bossrush/pkg/ecs"
	"github.com/gonewx/bossrush/pkg/entities"
	"github.com/gonewx/bossrush/pkg/event"
	"github.com/gonewx/bossrush/pkg/types"
)

func spawnProjectile(t *testing.T, w *testWorld, spec entities.ProjectileSpec) ecs.EntityID {
	t.Helper()
	if spec.Width == 0 {
		spec.Width, spec.Height = 8, 8
	}
	id, err := entities.NewProjectile(w.em, spec)
	if err != nil {
		t.Fatalf("NewProjectile failed: %v", err)
	}
	return id
}

func TestIgnitionDelay(t *testing.T) {
	w := newTestWorld()
	id := spawnProjectile(t, w, entities.ProjectileSpec{X: 200, Y: 100, VX: -5, Damage: 1, IgnitionDelay: 3})
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)

	for i := 0; i < 3; i++ {
		w.projectiles.Update()
		if pos.X != 200 {
			t.Fatalf("step %d: moved during ignition delay (x=%v)", i, pos.X)
		}
	}
	w.projectiles.Update()
	if pos.X != 195 {
		t.Errorf("x = %v, want 195", pos.X)
	}
}

func TestHomingTurnRateIsLimited(t *testing.T) {
	w := newTestWorld()
	target := w.em.CreateEntity()
	ecs.AddComponent(w.em, target, &components.PositionComponent{X: 100, Y: 300})

	id := spawnProjectile(t, w, entities.ProjectileSpec{
		X: 100, Y: 100, VX: 8, Damage: 1,
		Homing: &components.HomingComponent{Target: target, TurnRate: 0.15, Speed: 8},
	})
	w.projectiles.Update()

	vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, id)
	angle := math.Atan2(vel.VY, vel.VX)
	if math.Abs(angle-0.15) > 1e-9 {
		t.Errorf("heading = %v, want 0.15", angle)
	}
	if speed := math.Hypot(vel.VX, vel.VY); math.Abs(speed-8) > 1e-9 {
		t.Errorf("speed = %v, want 8", speed)
	}
}

func TestHomingContinuesStraightWhenTargetGone(t *testing.T) {
	w := newTestWorld()
	target := w.em.CreateEntity()
	ecs.AddComponent(w.em, target, &components.PositionComponent{X: 300, Y: 300})

	id := spawnProjectile(t, w, entities.ProjectileSpec{
		X: 100, Y: 100, VX: 6, VY: 0, Damage: 1,
		Homing: &components.HomingComponent{Target: target, TurnRate: 0.2, Speed: 6},
	})
	w.em.DestroyEntity(target)
	w.em.RemoveMarkedEntities()

	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, id)
	for i := 0; i < 5; i++ {
		w.projectiles.Update()
	}
	if vel.VX != 6 || vel.VY != 0 {
		t.Errorf("velocity changed to (%v, %v)", vel.VX, vel.VY)
	}
	if pos.X != 130 || pos.Y != 100 {
		t.Errorf("position = (%v, %v), want (130, 100)", pos.X, pos.Y)
	}
}

func TestPathProjectile(t *testing.T) {
	w := newTestWorld()
	id := spawnProjectile(t, w, entities.ProjectileSpec{
		Damage: 2,
		Kind:   types.ProjectileLightning,
		Path: []components.PathPoint{
			{X: 200, Y: 100},
			{X: 200, Y: 130},
			{X: 230, Y: 130},
		},
		PathSpeed: 20,
	})
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	path, _ := ecs.GetComponent[*components.PathComponent](w.em, id)

	steps := []struct {
		x, y     float64
		finished bool
	}{
		{200, 100, false},
		{200, 130, false},
		{230, 130, true},
	}
	for i, want := range steps {
		w.projectiles.Update()
		if pos.X != want.x || pos.Y != want.y || path.Finished != want.finished {
			t.Fatalf("step %d: pos=(%v,%v) finished=%v, want (%v,%v) %v",
				i, pos.X, pos.Y, path.Finished, want.x, want.y, want.finished)
		}
	}

	w.projectiles.Update()
	if !w.em.IsMarkedForDestroy(id) {
		t.Error("finished path projectile should be discarded")
	}
}

func TestSplitterSplitsExactlyOnce(t *testing.T) {
	w := newTestWorld()
	owner := w.em.CreateEntity()
	id := spawnProjectile(t, w, entities.ProjectileSpec{
		X: 300, Y: 300, VX: -1, Damage: 4,
		Side:  components.SideBoss,
		Owner: owner,
		Kind:  types.ProjectileSplitter,
		Splitter: &components.SplitterComponent{
			Countdown: 2, ChildCount: 3, SpreadDegrees: 30, ChildSpeed: 8,
		},
	})

	w.projectiles.Update()
	if n := countEvents(w.events.Drain(), event.ProjectileSplit); n != 0 {
		t.Fatalf("split before countdown finished")
	}

	w.projectiles.Update()
	children := 0
	for _, child := range OwnedProjectiles(w.em, owner) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](w.em, child)
		if proj.Kind != types.ProjectileFragment {
			continue
		}
		children++
		if proj.Damage != 2 {
			t.Errorf("child damage = %d, want 2", proj.Damage)
		}
		if proj.Side != components.SideBoss {
			t.Errorf("child side = %v, want boss", proj.Side)
		}
	}
	if children != 3 {
		t.Fatalf("children = %d, want 3", children)
	}

	for i := 0; i < 50; i++ {
		w.projectiles.Update()
	}
	if n := countEvents(w.events.Drain(), event.ProjectileSplit); n != 1 {
		t.Errorf("ProjectileSplit events = %d, want 1", n)
	}
	splitter, _ := ecs.GetComponent[*components.SplitterComponent](w.em, id)
	if !splitter.HasSplit {
		t.Error("HasSplit should be set")
	}
}

func TestOutOfBoundsDiscardedNextStep(t *testing.T) {
	w := newTestWorld()
	id := spawnProjectile(t, w, entities.ProjectileSpec{X: 5, Y: 100, VX: -20, Damage: 1})

	w.projectiles.Update()
	if w.em.IsMarkedForDestroy(id) {
		t.Fatal("projectile discarded in the step it left the field")
	}
	w.projectiles.Update()
	if !w.em.IsMarkedForDestroy(id) {
		t.Error("projectile outside the field should be discarded")
	}
}

// 左侧和上方允许越界一个自身尺寸，右侧和下方以屏幕边缘为界
func TestOutOfBoundsMargins(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float64
		discarded bool
	}{
		{"左侧越界半个尺寸保留", -4, 100, false},
		{"左侧越界超过尺寸丢弃", -9, 100, true},
		{"上方越界半个尺寸保留", 100, -7, false},
		{"上方越界超过尺寸丢弃", 100, -9, true},
		{"右侧恰在边缘保留", config.GameWindowWidth, 100, false},
		{"右侧越过边缘丢弃", config.GameWindowWidth + 1, 100, true},
		{"下方越过边缘丢弃", 100, config.GameWindowHeight + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			id := spawnProjectile(t, w, entities.ProjectileSpec{X: tt.x, Y: tt.y, Damage: 1})
			w.projectiles.Update()
			if got := w.em.IsMarkedForDestroy(id); got != tt.discarded {
				t.Errorf("discarded = %v, want %v", got, tt.discarded)
			}
		})
	}
}

func TestTrailKeepsLastPositions(t *testing.T) {
	w := newTestWorld()
	id := spawnProjectile(t, w, entities.ProjectileSpec{X: 100, Y: 100, VX: 5, Damage: 1, TrailLength: 3})

	for i := 0; i < 5; i++ {
		w.projectiles.Update()
	}
	trail, _ := ecs.GetComponent[*components.TrailComponent](w.em, id)
	if len(trail.Points) != 3 {
		t.Fatalf("trail length = %d, want 3", len(trail.Points))
	}
	if trail.Points[0].X != 115 || trail.Points[2].X != 125 {
		t.Errorf("trail = %v", trail.Points)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-5 * math.Pi / 2, -math.Pi / 2},
	}
	for _, tt := range tests {
		if got := normalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("normalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func entitiesSpecAt(x, y float64, owner ecs.EntityID) entities.ProjectileSpec {
	return entities.ProjectileSpec{X: x, Y: y, VX: 10, Damage: 1, Side: components.SidePlayer, Owner: owner}
}
