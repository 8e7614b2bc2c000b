package game

import (
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.WindowScale != 1 {
		t.Errorf("WindowScale: got %d, want 1", settings.WindowScale)
	}
	if settings.ShowHitboxes {
		t.Error("ShowHitboxes: got true, want false")
	}
}

func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil")
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode: %v", err)
	}
}

func TestSettingsLoadSave(t *testing.T) {
	manager := openTestGdata(t)

	sm1 := NewSettingsManager(manager)
	sm1.SetFullscreen(true)
	sm1.SetWindowScale(2)
	sm1.ToggleHitboxes()
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(manager)
	settings := sm2.GetSettings()
	if !settings.Fullscreen || settings.WindowScale != 2 || !settings.ShowHitboxes {
		t.Errorf("loaded settings = %+v", settings)
	}
}

func TestSetWindowScaleClamp(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"正常值", 2, 2},
		{"最小值", 1, 1},
		{"低于最小值", 0, 1},
		{"负数", -3, 1},
		{"高于最大值", 8, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSettingsManager(nil)
			sm.SetWindowScale(tt.input)
			if got := sm.GetSettings().WindowScale; got != tt.expected {
				t.Errorf("SetWindowScale(%d) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToggleHitboxes(t *testing.T) {
	sm := NewSettingsManager(nil)
	if !sm.ToggleHitboxes() {
		t.Error("first toggle should enable hitboxes")
	}
	if sm.ToggleHitboxes() {
		t.Error("second toggle should disable hitboxes")
	}
}
