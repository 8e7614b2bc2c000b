package embedded

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func resetForTest(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
}

func TestReadFileFromEmbedded(t *testing.T) {
	resetForTest(t)
	Init(fstest.MapFS{
		"data/boss_stats.yaml": &fstest.MapFile{Data: []byte("maxRage: 100\n")},
	})

	for _, path := range []string{"data/boss_stats.yaml", "./data/boss_stats.yaml"} {
		data, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%q): %v", path, err)
		}
		if string(data) != "maxRage: 100\n" {
			t.Errorf("ReadFile(%q) = %q", path, data)
		}
	}

	if !Exists("data/boss_stats.yaml") {
		t.Error("embedded file should exist")
	}
	if Exists("data/missing.yaml") {
		t.Error("missing file should not exist")
	}
}

func TestReadFileFallsBackToDisk(t *testing.T) {
	resetForTest(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "weapon_stats.yaml")
	if err := os.WriteFile(path, []byte("weapons: {}\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	// 未初始化时直接读磁盘
	data, err := ReadFile(path)
	if err != nil || string(data) != "weapons: {}\n" {
		t.Fatalf("uninitialized ReadFile = %q, %v", data, err)
	}

	// 初始化后，非 data/ 路径仍然读磁盘
	Init(fstest.MapFS{})
	if !IsInitialized() {
		t.Fatal("Init should mark the package initialized")
	}
	if _, err := ReadFile(path); err != nil {
		t.Errorf("disk fallback after Init: %v", err)
	}

	if _, err := ReadFile(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
