package main

import (
	"flag"
	"log"
	"os"

	"github.com/gonewx/bossrush/pkg/app"
	"github.com/gonewx/bossrush/pkg/config"
	"github.com/gonewx/bossrush/pkg/embedded"
	"github.com/gonewx/bossrush/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "输出详细日志")
	seed := flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
	watch := flag.Bool("watch", false, "监听 data/ 目录并热加载属性配置")
	god := flag.Bool("god", false, "玩家无敌（调试用）")
	flag.Parse()

	// 初始化嵌入数据，必须在加载任何配置之前
	embedded.Init(dataFS)

	bossStats, err := config.LoadBossStats(config.BossStatsPath)
	if err != nil {
		log.Printf("[main] 加载 Boss 属性失败，使用内置默认值: %v", err)
		bossStats = config.DefaultBossStats()
	}
	weaponStats, err := config.LoadWeaponStats(config.WeaponStatsPath)
	if err != nil {
		log.Printf("[main] 加载武器属性失败，使用内置默认值: %v", err)
		weaponStats = config.DefaultWeaponStats()
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		Seed:         *seed,
		Watch:        *watch,
		Invulnerable: *god,
		BossStats:    bossStats,
		WeaponStats:  weaponStats,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Close()

	settings := gameApp.Settings().GetSettings()
	gameApp.ApplyWindowSize()
	ebiten.SetWindowTitle("Boss Rush")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(settings.Fullscreen)

	runErr := ebiten.RunGame(gameApp)

	// 窗口关闭时记录尚未结束的一局
	if saveable, ok := gameApp.GetSceneManager().GetCurrentScene().(game.Saveable); ok {
		saveable.SaveOnExit()
	}

	if runErr != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}
