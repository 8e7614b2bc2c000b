package game

import (
	"log"

	"github.com/gonewx/bossrush/pkg/event"
)

// RunTracker 订阅战斗事件，在玩家阵亡时把本局结果写入进度
type RunTracker struct {
	progress *ProgressManager
	seed     int64

	score     int
	bossLevel int
	cycle     int
	steps     int
	recorded  bool
	last      RunRecord
}

// NewRunTracker 创建对局记录器
func NewRunTracker(progress *ProgressManager, seed int64) *RunTracker {
	return &RunTracker{progress: progress, seed: seed}
}

// OnEvent 实现 event.Listener
func (r *RunTracker) OnEvent(e event.Event) {
	if e.Step > r.steps {
		r.steps = e.Step
	}

	switch e.Type {
	case event.ScoreIncrement:
		r.score += e.Amount
	case event.BossSpawned:
		r.bossLevel = e.BossLevel
	case event.BossDefeated:
		if e.BossLevel+1 > r.bossLevel {
			r.bossLevel = e.BossLevel + 1
		}
	case event.CycleReached:
		if e.Cycle > r.cycle {
			r.cycle = e.Cycle
		}
	case event.PlayerDefeated:
		r.Finish()
	}
}

// Finish 把本局结果写入进度，多次调用只写入一次
func (r *RunTracker) Finish() {
	if r.recorded {
		return
	}
	r.recorded = true

	run, err := r.progress.RecordRun(RunRecord{
		Seed:      r.seed,
		Score:     r.score,
		BossLevel: r.bossLevel,
		Cycle:     r.cycle,
		Steps:     r.steps,
	})
	if err != nil {
		log.Printf("[RunTracker] 保存对局记录失败: %v", err)
	}
	r.last = run
}

// Recorded 本局是否已经写入进度
func (r *RunTracker) Recorded() bool {
	return r.recorded
}

// LastRun 返回写入的对局记录
func (r *RunTracker) LastRun() RunRecord {
	return r.last
}
