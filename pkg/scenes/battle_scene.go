package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/bossrush/pkg/battle"
	"github.com/gonewx/bossrush/pkg/components"
	"github.com/gonewx/bossrush/pkg/config"
	"github.com/gonewx/bossrush/pkg/game"
	"github.com/gonewx/bossrush/pkg/input"
	"github.com/gonewx/bossrush/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BattleOptions 战斗场景的共享配置
// 重新开始时沿用同一份配置，热加载的属性会写回这里
type BattleOptions struct {
	Seed         int64
	BossStats    *config.BossStatsConfig
	WeaponStats  *config.WeaponStatsConfig
	Invulnerable bool

	Progress *game.ProgressManager
	Settings *game.SettingsManager
	Watcher  *config.Watcher // 可为 nil（未开启热加载）
}

// BattleScene 战斗场景
// 每次 Update 推进一个模拟步，Draw 只读取快照
type BattleScene struct {
	sceneManager *game.SceneManager
	opts         *BattleOptions
	session      *battle.BattleSession
	tracker      *game.RunTracker
	hud          HUD
}

// NewBattleScene 创建战斗场景并开始新的一局
func NewBattleScene(sceneManager *game.SceneManager, opts *BattleOptions) (*BattleScene, error) {
	session, err := battle.NewBattleSession(battle.Config{
		Seed:         opts.Seed,
		BossStats:    opts.BossStats,
		WeaponStats:  opts.WeaponStats,
		Invulnerable: opts.Invulnerable,
	})
	if err != nil {
		return nil, fmt.Errorf("start battle: %w", err)
	}

	scene := &BattleScene{
		sceneManager: sceneManager,
		opts:         opts,
		session:      session,
	}
	if opts.Progress != nil {
		scene.tracker = game.NewRunTracker(opts.Progress, session.Seed())
		session.Dispatcher().SubscribeAll(scene.tracker)
	}
	return scene, nil
}

// Update 处理输入和热加载，然后推进一步
func (s *BattleScene) Update(deltaTime float64) {
	s.applyReloads()

	in := input.Poll()
	if in.ToggleHitbox && s.opts.Settings != nil {
		s.opts.Settings.ToggleHitboxes()
		if err := s.opts.Settings.Save(); err != nil {
			log.Printf("[BattleScene] 保存设置失败: %v", err)
		}
	}

	if s.session.Over() {
		if in.Restart {
			s.sceneManager.Restart()
		}
		return
	}

	events := s.session.Step(battle.Intent{
		Flap:         in.Flap,
		Fire:         in.Fire,
		SwitchWeapon: in.WeaponDelta(),
		SelectWeapon: in.SelectSlot,
	})
	s.hud.Tick()
	s.hud.Observe(events)
}

// applyReloads 在两个模拟步之间应用配置热加载
func (s *BattleScene) applyReloads() {
	w := s.opts.Watcher
	if w == nil {
		return
	}
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				s.opts.Watcher = nil
				return
			}
			update, err := config.ReloadChanged(path)
			if err != nil {
				log.Printf("[BattleScene] 热加载失败，保留原配置: %v", err)
				continue
			}
			if update.BossStats != nil {
				s.opts.BossStats = update.BossStats
				s.session.SetBossStats(update.BossStats)
				log.Printf("[BattleScene] Boss 属性已更新，下一个 Boss 生效")
			}
			if update.WeaponStats != nil {
				s.opts.WeaponStats = update.WeaponStats
				log.Printf("[BattleScene] 武器属性已更新，下一局生效")
			}
		case err, ok := <-w.Errors:
			if ok {
				log.Printf("[BattleScene] 配置监听错误: %v", err)
			}
		default:
			return
		}
	}
}

// SaveOnExit 窗口关闭时记录尚未结束的一局
func (s *BattleScene) SaveOnExit() bool {
	if s.tracker == nil || s.session.Steps() == 0 {
		return true
	}
	s.tracker.Finish()
	return true
}

// Draw 绘制战场、实体和 HUD
func (s *BattleScene) Draw(screen *ebiten.Image) {
	snap := s.session.Snapshot()
	showHitboxes := s.opts.Settings != nil && s.opts.Settings.GetSettings().ShowHitboxes

	screen.Fill(skyColor)
	vector.DrawFilledRect(screen, 0, float32(config.ViewportHeight),
		float32(config.GameWindowWidth), float32(config.GameWindowHeight-config.ViewportHeight), groundColor, false)

	if snap.Boss != nil {
		drawBoss(screen, snap.Boss, showHitboxes)
	}
	for _, p := range snap.Projectiles {
		drawProjectile(screen, p, showHitboxes)
	}
	drawPlayer(screen, snap.Player, s.hud.Flashing(), showHitboxes)

	s.drawHUD(screen, snap)
}

func (s *BattleScene) drawHUD(screen *ebiten.Image, snap battle.Snapshot) {
	best := 0
	if s.opts.Progress != nil {
		best = s.opts.Progress.GetProgress().BestScore
	}

	for i, line := range StatusLines(snap, best) {
		ebitenutil.DebugPrintAt(screen, line, 6, 4+i*14)
	}
	for i, line := range WeaponLines(snap.Weapons) {
		y := int(config.ViewportHeight) + 8 + i*14
		vector.DrawFilledRect(screen, 6, float32(y+3), 8, 8, WeaponColor(snap.Weapons[i].Color), false)
		ebitenutil.DebugPrintAt(screen, line, 18, y)
	}

	if snap.Boss != nil {
		drawBar(screen, 180, 40, 160, 6, snap.Boss.HealthRatio, healthColor)
		drawBar(screen, 180, 50, 160, 4, snap.Boss.RageRatio, rageColor)
	}

	if banner := s.hud.Banner(); banner != "" {
		ebitenutil.DebugPrintAt(screen, banner, centeredX(banner), 200)
	}
	if warning := s.hud.Warning(); warning != "" {
		ebitenutil.DebugPrintAt(screen, warning, centeredX(warning), 220)
	}

	if snap.Over {
		vector.DrawFilledRect(screen, 30, 180, config.GameWindowWidth-60, 140, overlayColor, false)
		for i, line := range GameOverLines(s.session.Summary(), best) {
			ebitenutil.DebugPrintAt(screen, line, centeredX(line), 196+i*18)
		}
	}
}

// centeredX 调试字体每个字符宽 6 像素
func centeredX(text string) int {
	return (config.GameWindowWidth - len(text)*6) / 2
}

func drawBar(screen *ebiten.Image, x, y, width, height float32, ratio float64, fill color.Color) {
	vector.DrawFilledRect(screen, x, y, width, height, barBackColor, false)
	vector.DrawFilledRect(screen, x, y, width*float32(ratio), height, fill, false)
}

func drawBoss(screen *ebiten.Image, boss *battle.BossView, showHitbox bool) {
	half := boss.Size / 2
	x, y := float32(boss.X-half), float32(boss.Y-half)
	size := float32(boss.Size)

	fill := bossColors[boss.Type]
	if boss.Flashing {
		fill = color.White
	}
	vector.DrawFilledRect(screen, x, y, size, size, fill, false)

	switch boss.Phase {
	case components.BossPhasePreUltimate, components.BossPhaseUltimate:
		vector.StrokeRect(screen, x-3, y-3, size+6, size+6, 3, warningColor, false)
	case components.BossPhasePreparing:
		vector.StrokeRect(screen, x, y, size, size, 1, color.White, false)
	}
	if showHitbox {
		vector.StrokeRect(screen, x, y, size, size, 1, hitboxColor, false)
	}
}

func drawProjectile(screen *ebiten.Image, p battle.ProjectileView, showHitbox bool) {
	clr := projectileColors[p.Kind]
	if p.Dormant {
		return
	}

	for i := 1; i < len(p.Trail); i++ {
		a, b := p.Trail[i-1], p.Trail[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(p.Height/2), clr, true)
	}
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Width/2), clr, true)

	if showHitbox {
		vector.StrokeRect(screen, float32(p.X-p.Width/2), float32(p.Y-p.Height/2),
			float32(p.Width), float32(p.Height), 1, hitboxColor, false)
	}
}

func drawPlayer(screen *ebiten.Image, player battle.PlayerView, flashing, showHitbox bool) {
	x := float32(player.X - player.Width/2)
	y := float32(player.Y - player.Height/2)

	fill := color.Color(playerColor)
	if player.Defeated {
		fill = defeatedColor
	} else if flashing || player.Invulnerable {
		fill = color.White
	}
	vector.DrawFilledRect(screen, x, y, float32(player.Width), float32(player.Height), fill, false)

	if showHitbox {
		vector.StrokeRect(screen, x, y, float32(player.Width), float32(player.Height), 1, hitboxColor, false)
	}
}

var (
	skyColor      = color.RGBA{R: 24, G: 26, B: 48, A: 255}
	groundColor   = color.RGBA{R: 70, G: 52, B: 36, A: 255}
	playerColor   = color.RGBA{R: 250, G: 210, B: 60, A: 255}
	defeatedColor = color.RGBA{R: 110, G: 110, B: 110, A: 255}
	warningColor  = color.RGBA{R: 255, G: 40, B: 40, A: 255}
	hitboxColor   = color.RGBA{R: 0, G: 255, B: 0, A: 160}
	healthColor   = color.RGBA{R: 220, G: 50, B: 50, A: 255}
	rageColor     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	barBackColor  = color.RGBA{R: 40, G: 40, B: 40, A: 200}
	overlayColor  = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

var bossColors = map[types.BossType]color.Color{
	types.BossStandard:  color.RGBA{R: 170, G: 60, B: 200, A: 255},
	types.BossSwift:     color.RGBA{R: 60, G: 200, B: 230, A: 255},
	types.BossSplitting: color.RGBA{R: 90, G: 200, B: 90, A: 255},
	types.BossArmored:   color.RGBA{R: 140, G: 140, B: 160, A: 255},
}

var projectileColors = map[types.ProjectileKind]color.Color{
	types.ProjectileBullet:      color.RGBA{R: 255, G: 90, B: 90, A: 255},
	types.ProjectileHeavyBullet: color.RGBA{R: 200, G: 60, B: 60, A: 255},
	types.ProjectileSplitter:    color.RGBA{R: 120, G: 255, B: 120, A: 255},
	types.ProjectileFragment:    color.RGBA{R: 180, G: 255, B: 180, A: 255},
	types.ProjectileFireball:    color.RGBA{R: 255, G: 120, B: 0, A: 255},
	types.ProjectileLightning:   color.RGBA{R: 160, G: 200, B: 255, A: 255},
	types.ProjectileShockwave:   color.RGBA{R: 200, G: 200, B: 255, A: 200},
	types.ProjectilePlayerShot:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	types.ProjectileBeam:        color.RGBA{R: 0, G: 255, B: 255, A: 255},
	types.ProjectileMissile:     color.RGBA{R: 255, G: 69, B: 0, A: 255},
}
