package systems

import (
	"math"
	"testing"

	"github.com/gonewx/bossrush/pkg/components"
	"github.com/gonewx/bossrush/pkg/config"
	"github.com/gonewx/bossrush/pkg/ecs"
	"github.com/gonewx/bossrush/pkg/event"
)

func TestPlayerGravityAndFlap(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer(t, false)
	player, _ := ecs.GetComponent[*components.PlayerComponent](w.em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	startY := pos.Y

	w.players.Update()
	wantVel := config.PlayerInitialVelY + config.PlayerGravity
	if math.Abs(player.VelY-wantVel) > 1e-9 {
		t.Errorf("VelY = %v, want %v", player.VelY, wantVel)
	}
	if math.Abs(pos.Y-(startY+wantVel)) > 1e-9 {
		t.Errorf("Y = %v, want %v", pos.Y, startY+wantVel)
	}

	w.players.Flap(id)
	w.players.Update()
	if player.VelY != config.PlayerFlapVel {
		t.Errorf("VelY after flap = %v, want %v", player.VelY, config.PlayerFlapVel)
	}
	if player.Flapped {
		t.Error("flap intent should be consumed")
	}
}

func TestPlayerFallSpeedIsCapped(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer(t, true)
	player, _ := ecs.GetComponent[*components.PlayerComponent](w.em, id)

	for i := 0; i < 100; i++ {
		w.players.Update()
		if player.VelY > player.MaxVelY {
			t.Fatalf("step %d: VelY %v exceeds %v", i, player.VelY, player.MaxVelY)
		}
	}
}

func TestPlayerCeiling(t *testing.T) {
	tests := []struct {
		name         string
		invulnerable bool
		wantDefeated bool
	}{
		{"普通玩家飞出上沿死亡", false, true},
		{"无敌玩家停在上限", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			id := w.spawnPlayer(t, tt.invulnerable)
			player, _ := ecs.GetComponent[*components.PlayerComponent](w.em, id)
			pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
			player.GraceRemaining = 0

			for i := 0; i < 200; i++ {
				w.players.Flap(id)
				w.players.Update()
			}

			if player.Defeated != tt.wantDefeated {
				t.Errorf("Defeated = %v, want %v", player.Defeated, tt.wantDefeated)
			}
			if pos.Y < player.MinY {
				t.Errorf("Y = %v, below ceiling clamp %v", pos.Y, player.MinY)
			}
			if tt.wantDefeated {
				if n := countEvents(w.events.Drain(), event.PlayerDefeated); n != 1 {
					t.Errorf("PlayerDefeated events = %d, want 1", n)
				}
			} else if pos.Y != player.MinY {
				t.Errorf("Y = %v, want ceiling %v", pos.Y, player.MinY)
			}
		})
	}
}

func TestPlayerCeilingGrace(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer(t, false)
	player, _ := ecs.GetComponent[*components.PlayerComponent](w.em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	player.GraceRemaining = 10
	pos.Y = config.PlayerHeight / 2

	w.players.Flap(id)
	w.players.Update()
	if player.Defeated {
		t.Error("spawn grace should protect against the ceiling")
	}
}

func TestPlayerFloorDefeat(t *testing.T) {
	tests := []struct {
		name         string
		invulnerable bool
		grace        int
		wantDefeated bool
	}{
		{"普通玩家坠地死亡", false, 0, true},
		{"无敌模式不死", true, 0, false},
		{"出生保护期内不死", false, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			id := w.spawnPlayer(t, tt.invulnerable)
			player, _ := ecs.GetComponent[*components.PlayerComponent](w.em, id)
			pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
			player.GraceRemaining = tt.grace
			pos.Y = player.FloorY - 20
			player.VelY = player.MaxVelY

			for i := 0; i < 5; i++ {
				w.players.Update()
			}
			if player.Defeated != tt.wantDefeated {
				t.Errorf("Defeated = %v, want %v", player.Defeated, tt.wantDefeated)
			}
			want := 0
			if tt.wantDefeated {
				want = 1
			}
			if n := countEvents(w.events.Drain(), event.PlayerDefeated); n != want {
				t.Errorf("PlayerDefeated events = %d, want %d", n, want)
			}
			if pos.Y+config.PlayerHeight/2 > player.FloorY {
				t.Errorf("player sank below the floor: %v", pos.Y)
			}
		})
	}
}
