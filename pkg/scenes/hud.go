package scenes

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gonewx/bossrush/pkg/battle"
	"github.com/gonewx/bossrush/pkg/components"
	"github.com/gonewx/bossrush/pkg/event"
)

// 横幅显示时长（模拟步）
const (
	bannerSteps  = 90
	warningSteps = 12
)

// HUD 根据战斗事件维护需要临时显示的提示
// 只依赖事件和快照，不接触 ebiten，便于测试
type HUD struct {
	banner      string
	bannerLeft  int
	warning     string
	warningLeft int
	flashSteps  int
}

// Observe 处理一步产生的事件
func (h *HUD) Observe(events []event.Event) {
	for _, e := range events {
		switch e.Type {
		case event.BossSpawned:
			h.setBanner(fmt.Sprintf("%s BOSS #%d", strings.ToUpper(e.BossType.String()), e.BossLevel+1))
		case event.CycleReached:
			h.setBanner(fmt.Sprintf("CYCLE %d - HARDER!", e.Cycle+1))
		case event.TransitionBegan:
			h.setBanner(fmt.Sprintf("NEXT: %s", strings.ToUpper(e.BossType.String())))
		case event.UltimateWarning:
			h.warning = fmt.Sprintf("!! ULTIMATE IN %d !!", e.Remaining)
			h.warningLeft = warningSteps
		case event.UltimateStarted:
			h.warning = "!! ULTIMATE !!"
			h.warningLeft = warningSteps
		case event.PlayerHit:
			h.flashSteps = 6
		}
	}
}

func (h *HUD) setBanner(text string) {
	h.banner = text
	h.bannerLeft = bannerSteps
}

// Tick 推进提示计时
func (h *HUD) Tick() {
	if h.bannerLeft > 0 {
		h.bannerLeft--
	}
	if h.warningLeft > 0 {
		h.warningLeft--
	}
	if h.flashSteps > 0 {
		h.flashSteps--
	}
}

// Banner 当前横幅，没有时返回空串
func (h *HUD) Banner() string {
	if h.bannerLeft <= 0 {
		return ""
	}
	return h.banner
}

// Warning 当前大招警告，没有时返回空串
func (h *HUD) Warning() string {
	if h.warningLeft <= 0 {
		return ""
	}
	return h.warning
}

// Flashing 玩家受击闪烁
func (h *HUD) Flashing() bool {
	return h.flashSteps > 0
}

// StatusLines 生成左上角状态文字
func StatusLines(snap battle.Snapshot, best int) []string {
	lines := []string{
		fmt.Sprintf("SCORE %s  BEST %s", humanize.Comma(int64(snap.Score)), humanize.Comma(int64(best))),
	}

	if snap.Boss != nil {
		lines = append(lines, fmt.Sprintf("BOSS #%d %s  CYCLE %d  %s",
			snap.Boss.BossLevel+1,
			strings.ToUpper(snap.Boss.Type.String()),
			snap.Boss.CycleCount+1,
			phaseLabel(snap.Boss.Phase)))
	} else {
		lines = append(lines, fmt.Sprintf("NEXT BOSS IN %d", snap.TransitionRemaining))
	}
	return lines
}

// WeaponLines 生成武器栏文字，当前武器前加 ">"
func WeaponLines(weapons []battle.WeaponView) []string {
	lines := make([]string, 0, len(weapons))
	for _, w := range weapons {
		marker := " "
		if w.Selected {
			marker = ">"
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", marker, strings.ToUpper(w.Type.String()), ammoText(w.Ammo)))
	}
	return lines
}

// WeaponColor 解析武器配置中的 #RRGGBB 颜色，格式不对时返回白色
func WeaponColor(hex string) color.RGBA {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return white
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return white
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// GameOverLines 玩家阵亡后显示的结算文字
func GameOverLines(summary battle.Summary, best int) []string {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("SCORE %s", humanize.Comma(int64(summary.Score))),
		fmt.Sprintf("BOSSES DEFEATED %d", summary.BossesDefeated),
		fmt.Sprintf("SURVIVED %s STEPS", humanize.Comma(int64(summary.Steps))),
	}
	if summary.Score >= best && summary.Score > 0 {
		lines = append(lines, "NEW BEST!")
	}
	return append(lines, "PRESS R TO RETRY")
}

func ammoText(ammo int) string {
	if ammo == components.UnlimitedAmmo {
		return "INF"
	}
	return fmt.Sprintf("x%d", ammo)
}

func phaseLabel(phase components.BossPhase) string {
	switch phase {
	case components.BossPhasePreparing:
		return "READY"
	case components.BossPhasePreUltimate:
		return "WARNING"
	case components.BossPhaseUltimate:
		return "ULTIMATE"
	case components.BossPhaseCooldown:
		return "TIRED"
	case components.BossPhaseDefeated:
		return "DOWN"
	default:
		return ""
	}
}
