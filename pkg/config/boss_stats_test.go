package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonewx/bossrush/pkg/types"
)

const validBossStatsYAML = `
bosses:
  standard:
    baseHealth: 100
    speed: 2
    fireInterval: 60
    rageGainOnHit: 8
    rageGainPerTick: 0.15
    rageThreshold: 90
    ultimateDuration: 90
    preparationSteps: 60
    size: 100
  swift:
    baseHealth: 80
    speed: 4
    fireInterval: 30
    rageGainOnHit: 5
    rageGainPerTick: 0.25
    rageThreshold: 80
    ultimateDuration: 120
    preparationSteps: 90
    size: 80
  splitting:
    baseHealth: 120
    speed: 1.5
    fireInterval: 90
    rageGainOnHit: 10
    rageGainPerTick: 0.1
    rageThreshold: 95
    ultimateDuration: 60
    preparationSteps: 75
    size: 120
    splitThreshold: 40
  armored:
    baseHealth: 200
    speed: 1
    fireInterval: 120
    rageGainOnHit: 12
    rageGainPerTick: 0.08
    rageThreshold: 100
    ultimateDuration: 150
    preparationSteps: 45
    size: 140
`

func TestLoadBossStats(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("加载有效配置文件", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "boss_stats.yaml")
		if err := os.WriteFile(configPath, []byte(validBossStatsYAML), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		config, err := LoadBossStats(configPath)
		if err != nil {
			t.Fatalf("LoadBossStats failed: %v", err)
		}

		splitting, ok := config.Get(types.BossSplitting)
		if !ok {
			t.Fatal("splitting boss not found")
		}
		if splitting.SplitThreshold != 40 {
			t.Errorf("splitting splitThreshold: expected 40, got %d", splitting.SplitThreshold)
		}
		armored, _ := config.Get(types.BossArmored)
		if armored.BaseHealth != 200 || armored.FireInterval != 120 {
			t.Errorf("armored: got health %d interval %d", armored.BaseHealth, armored.FireInterval)
		}
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadBossStats(filepath.Join(tempDir, "missing.yaml"))
		if err == nil || !strings.Contains(err.Error(), "failed to read boss stats file") {
			t.Errorf("expected read error, got %v", err)
		}
	})
}

func TestDefaultBossStatsMatchFile(t *testing.T) {
	parsed, err := ParseBossStats([]byte(validBossStatsYAML))
	if err != nil {
		t.Fatalf("ParseBossStats: %v", err)
	}
	defaults := DefaultBossStats()
	if err := validateBossStats(defaults); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	for _, bossType := range types.AllBossTypes() {
		want, _ := parsed.Get(bossType)
		got, _ := defaults.Get(bossType)
		if got != want {
			t.Errorf("%s: defaults %+v differ from file %+v", bossType, got, want)
		}
	}
}

func TestValidateBossStats(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *BossStatsConfig)
		wantErr string
	}{
		{
			name:    "缺少原型",
			mutate:  func(c *BossStatsConfig) { delete(c.Bosses, "swift") },
			wantErr: "boss swift: missing",
		},
		{
			name: "未知原型",
			mutate: func(c *BossStatsConfig) {
				c.Bosses["dragon"] = c.Bosses["standard"]
			},
			wantErr: "unknown boss type",
		},
		{
			name: "射击间隔过小",
			mutate: func(c *BossStatsConfig) {
				s := c.Bosses["standard"]
				s.FireInterval = 5
				c.Bosses["standard"] = s
			},
			wantErr: "fireInterval",
		},
		{
			name: "怒气阈值超过上限",
			mutate: func(c *BossStatsConfig) {
				s := c.Bosses["armored"]
				s.RageThreshold = 150
				c.Bosses["armored"] = s
			},
			wantErr: "rageThreshold",
		},
		{
			name: "分裂阈值不小于生命值",
			mutate: func(c *BossStatsConfig) {
				s := c.Bosses["splitting"]
				s.SplitThreshold = 120
				c.Bosses["splitting"] = s
			},
			wantErr: "splitThreshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultBossStats()
			tt.mutate(config)
			err := validateBossStats(config)
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseBossStatsInvalidYAML(t *testing.T) {
	if _, err := ParseBossStats([]byte("bosses: [unclosed")); err == nil {
		t.Error("expected YAML parse error")
	}
}
