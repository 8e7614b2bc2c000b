package types

import "testing"

func TestBossTypeForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  BossType
	}{
		{0, BossStandard},
		{1, BossSwift},
		{2, BossSplitting},
		{3, BossArmored},
		{4, BossStandard},
		{7, BossArmored},
		{401, BossSwift},
		{-3, BossStandard},
	}
	for _, tt := range tests {
		if got := BossTypeForLevel(tt.level); got != tt.want {
			t.Errorf("BossTypeForLevel(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestParseBossTypeRoundTrip(t *testing.T) {
	for _, bt := range AllBossTypes() {
		parsed, err := ParseBossType(bt.String())
		if err != nil {
			t.Fatalf("ParseBossType(%q): %v", bt.String(), err)
		}
		if parsed != bt {
			t.Errorf("round trip %v -> %v", bt, parsed)
		}
	}
	if _, err := ParseBossType("dragon"); err == nil {
		t.Error("expected error for unknown boss type")
	}
	if BossType(9).Valid() {
		t.Error("BossType(9) should be invalid")
	}
}

func TestParseWeaponTypeAliases(t *testing.T) {
	tests := map[string]WeaponType{
		"standard":       WeaponStandard,
		"Triple":         WeaponMulti,
		"laser":          WeaponPiercingTrail,
		"piercing_trail": WeaponPiercingTrail,
		" homing ":       WeaponHoming,
	}
	for in, want := range tests {
		got, err := ParseWeaponType(in)
		if err != nil || got != want {
			t.Errorf("ParseWeaponType(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseWeaponType("rocket"); err == nil {
		t.Error("expected error for unknown weapon")
	}
}
