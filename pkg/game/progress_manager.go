package game

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// MaxRunHistory 保留的最近对局记录数量
const MaxRunHistory = 10

// RunRecord 一局战斗的记录
type RunRecord struct {
	ID        string    `yaml:"id"`        // 对局 UUID
	Seed      int64     `yaml:"seed"`      // 随机种子，可用于复盘
	Score     int       `yaml:"score"`     // 命中次数
	BossLevel int       `yaml:"bossLevel"` // 阵亡时的 bossLevel
	Cycle     int       `yaml:"cycle"`     // 达到的最高循环
	Steps     int       `yaml:"steps"`     // 存活步数
	EndedAt   time.Time `yaml:"endedAt"`
}

// ProgressData 持久化的玩家进度
type ProgressData struct {
	BestScore     int         `yaml:"bestScore"`
	BestBossLevel int         `yaml:"bestBossLevel"`
	HighestCycle  int         `yaml:"highestCycle"`
	TotalRuns     int         `yaml:"totalRuns"`
	Runs          []RunRecord `yaml:"runs"` // 最近的对局，新的在前
}

// ProgressManager 进度管理器
// 负责最佳成绩和对局历史的加载、保存
type ProgressManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	progress     *ProgressData
}

// 存储路径常量
const (
	progressObject   = "progress"
	progressProperty = "records"
)

// NewProgressManager 创建进度管理器并尝试加载已保存的进度
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存记录）
func NewProgressManager(gdataManager *gdata.Manager) *ProgressManager {
	pm := &ProgressManager{
		gdataManager: gdataManager,
		progress:     &ProgressData{},
	}

	if err := pm.Load(); err != nil {
		log.Printf("[ProgressManager] Warning: Failed to load progress: %v (starting fresh)", err)
	}
	return pm
}

// Load 从 gdata 加载进度
func (pm *ProgressManager) Load() error {
	if pm.gdataManager == nil {
		return nil
	}
	if !pm.gdataManager.ObjectPropExists(progressObject, progressProperty) {
		return nil
	}

	data, err := pm.gdataManager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	var loaded ProgressData
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	pm.progress = &loaded
	log.Printf("[ProgressManager] Progress loaded: best score %d, %d runs", loaded.BestScore, loaded.TotalRuns)
	return nil
}

// Save 保存进度到 gdata，降级模式下直接返回 nil
func (pm *ProgressManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(pm.progress)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if err := pm.gdataManager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// RecordRun 记录一局结束的战斗并保存
//
// 记录会分配新的 UUID，更新最佳成绩，历史只保留最近 MaxRunHistory 局。
// 返回写入的记录；保存失败时记录仍保留在内存中。
func (pm *ProgressManager) RecordRun(run RunRecord) (RunRecord, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.EndedAt.IsZero() {
		run.EndedAt = time.Now()
	}

	p := pm.progress
	p.TotalRuns++
	if run.Score > p.BestScore {
		p.BestScore = run.Score
	}
	if run.BossLevel > p.BestBossLevel {
		p.BestBossLevel = run.BossLevel
	}
	if run.Cycle > p.HighestCycle {
		p.HighestCycle = run.Cycle
	}

	p.Runs = append([]RunRecord{run}, p.Runs...)
	if len(p.Runs) > MaxRunHistory {
		p.Runs = p.Runs[:MaxRunHistory]
	}

	log.Printf("[ProgressManager] 对局 %s 结束: score=%d bossLevel=%d", run.ID, run.Score, run.BossLevel)
	return run, pm.Save()
}

// GetProgress 获取当前进度
func (pm *ProgressManager) GetProgress() *ProgressData {
	return pm.progress
}
