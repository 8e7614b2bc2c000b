// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/bossrush/pkg/config"
	"github.com/gonewx/bossrush/pkg/game"
	"github.com/gonewx/bossrush/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，0 表示每局使用基于时间的种子
	Seed int64
	// Watch 监听 data/ 目录，修改属性文件后热加载
	Watch bool
	// Invulnerable 玩家无敌（调试用）
	Invulnerable bool
	// BossStats 和 WeaponStats 为空时使用内置默认值
	BossStats   *config.BossStatsConfig
	WeaponStats *config.WeaponStatsConfig
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	watcher                  *config.Watcher
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	bossStats := cfg.BossStats
	if bossStats == nil {
		bossStats = config.DefaultBossStats()
	}
	weaponStats := cfg.WeaponStats
	if weaponStats == nil {
		weaponStats = config.DefaultWeaponStats()
	}

	// 存储不可用时进度和设置只保存在内存中
	storage := game.OpenStorage(game.AppName)
	settings := game.NewSettingsManager(storage)
	if err := settings.Load(); err != nil {
		log.Printf("[App] 加载设置失败，使用默认设置: %v", err)
	}
	progress := game.NewProgressManager(storage)
	if err := progress.Load(); err != nil {
		log.Printf("[App] 加载进度失败: %v", err)
	}

	var watcher *config.Watcher
	if cfg.Watch {
		w, err := config.NewWatcher("data")
		if err != nil {
			return nil, fmt.Errorf("配置监听启动失败: %w", err)
		}
		watcher = w
		log.Printf("[App] 正在监听 data/ 目录")
	}

	opts := &scenes.BattleOptions{
		Seed:         cfg.Seed,
		BossStats:    bossStats,
		WeaponStats:  weaponStats,
		Invulnerable: cfg.Invulnerable,
		Progress:     progress,
		Settings:     settings,
		Watcher:      watcher,
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() game.Scene {
		scene, err := scenes.NewBattleScene(sceneManager, opts)
		if err != nil {
			log.Printf("[App] 创建战斗场景失败: %v", err)
			return nil
		}
		return scene
	})

	first, err := scenes.NewBattleScene(sceneManager, opts)
	if err != nil {
		if watcher != nil {
			_ = watcher.Close()
		}
		return nil, err
	}
	sceneManager.SwitchTo(first)
	log.Printf("[App] 战斗开始 (seed=%d)", cfg.Seed)

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		watcher:      watcher,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次），对应一个模拟步
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			a.ApplyWindowSize()
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] 保存设置失败: %v", err)
	}
}

// ApplyWindowSize 按设置中的缩放倍数设置窗口大小
func (a *App) ApplyWindowSize() {
	scale := a.settings.GetSettings().WindowScale
	ebiten.SetWindowSize(config.GameWindowWidth*scale, config.GameWindowHeight*scale)
	log.Printf("[App] SetWindowSize(%d, %d)", config.GameWindowWidth*scale, config.GameWindowHeight*scale)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时记录未结束的一局
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Settings 返回设置管理器
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// Close 停止配置监听
func (a *App) Close() error {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Close()
}
