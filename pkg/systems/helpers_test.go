package systems

import (
	"testing"

	"github.com/gonewx/bossrush/pkg/components"
	"github.com/gonewx/bossrush/pkg/config"
	"github.com/gonewx/bossrush/pkg/ecs"
	"github.com/gonewx/bossrush/pkg/entities"
	"github.com/gonewx/bossrush/pkg/event"
	"github.com/gonewx/bossrush/pkg/types"
	"github.com/gonewx/bossrush/pkg/utils"
)

// testWorld 测试用的最小战斗世界
type testWorld struct {
	em          *ecs.EntityManager
	events      *event.Queue
	rng         *utils.PRNGService
	bosses      *BossSystem
	projectiles *ProjectileSystem
	weapons     *WeaponSystem
	players     *PlayerSystem
	combat      *CombatSystem
	difficulty  *DifficultyEngine
}

func newTestWorld() *testWorld {
	em := ecs.NewEntityManager()
	events := event.NewQueue()
	rng := utils.NewPRNGService(42)
	bosses := NewBossSystem(em, events, rng)
	players := NewPlayerSystem(em, events)
	return &testWorld{
		em:          em,
		events:      events,
		rng:         rng,
		bosses:      bosses,
		projectiles: NewProjectileSystem(em, events),
		weapons:     NewWeaponSystem(em, events),
		players:     players,
		combat:      NewCombatSystem(em, events, bosses, players),
		difficulty:  NewDifficultyEngine(nil),
	}
}

// spawnBoss 按默认属性创建一个 bossLevel 0 的 Boss
func (w *testWorld) spawnBoss(t *testing.T, bossType types.BossType, preparation int) ecs.EntityID {
	t.Helper()
	stats, ok := config.DefaultBossStats().Get(bossType)
	if !ok {
		t.Fatalf("no default stats for %s", bossType)
	}
	x, y := entities.BossSpawnPosition(stats.Size)
	id, err := entities.NewBoss(w.em, entities.BossSpec{
		Type:        bossType,
		Stats:       stats,
		Preparation: preparation,
		X:           x,
		Y:           y,
	})
	if err != nil {
		t.Fatalf("NewBoss failed: %v", err)
	}
	return id
}

func (w *testWorld) spawnPlayer(t *testing.T, invulnerable bool) ecs.EntityID {
	t.Helper()
	id, err := entities.NewPlayer(w.em, invulnerable)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	if err := entities.EquipLoadout(w.em, id, config.DefaultWeaponStats()); err != nil {
		t.Fatalf("EquipLoadout failed: %v", err)
	}
	return id
}

func (w *testWorld) boss(t *testing.T, id ecs.EntityID) (*components.BossComponent, *components.HealthComponent, *components.RageComponent) {
	t.Helper()
	boss, ok := ecs.GetComponent[*components.BossComponent](w.em, id)
	if !ok {
		t.Fatalf("entity %d has no BossComponent", id)
	}
	health, _ := ecs.GetComponent[*components.HealthComponent](w.em, id)
	rage, _ := ecs.GetComponent[*components.RageComponent](w.em, id)
	return boss, health, rage
}

func countEvents(events []event.Event, eventType event.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}
