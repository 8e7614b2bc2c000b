package components

import "testing"

func TestCycleComponentDerivedValues(t *testing.T) {
	tests := []struct {
		bossLevel int
		wantIndex int
		wantCycle int
	}{
		{0, 0, 0},
		{3, 3, 0},
		{4, 0, 1},
		{7, 3, 1},
		{130, 2, 32},
	}
	for _, tt := range tests {
		c := &CycleComponent{BossLevel: tt.bossLevel}
		if got := c.ArchetypeIndex(); got != tt.wantIndex {
			t.Errorf("bossLevel %d: ArchetypeIndex = %d, want %d", tt.bossLevel, got, tt.wantIndex)
		}
		if got := c.CycleCount(); got != tt.wantCycle {
			t.Errorf("bossLevel %d: CycleCount = %d, want %d", tt.bossLevel, got, tt.wantCycle)
		}
	}
}

func TestRatios(t *testing.T) {
	h := &HealthComponent{CurrentHealth: 30, MaxHealth: 120}
	if got := h.Ratio(); got != 0.25 {
		t.Errorf("health ratio = %v, want 0.25", got)
	}
	if got := (&HealthComponent{}).Ratio(); got != 0 {
		t.Errorf("zero max health ratio = %v, want 0", got)
	}

	r := &RageComponent{Current: 120, Threshold: 90}
	if got := r.Ratio(); got != 1 {
		t.Errorf("rage ratio should cap at 1, got %v", got)
	}
}

func TestWeaponHasAmmo(t *testing.T) {
	tests := []struct {
		ammo int
		want bool
	}{
		{UnlimitedAmmo, true},
		{0, false},
		{3, true},
	}
	for _, tt := range tests {
		w := &WeaponComponent{Ammo: tt.ammo}
		if got := w.HasAmmo(); got != tt.want {
			t.Errorf("ammo %d: HasAmmo = %v, want %v", tt.ammo, got, tt.want)
		}
	}

	l := &LoadoutComponent{}
	if l.CurrentWeapon() != 0 {
		t.Error("empty loadout should return NoEntity")
	}
}
