// simulate 在无窗口环境下运行一局战斗，用于调试数值和验证确定性
//
// 用法：
//
//	go run ./cmd/simulate -seed 42 -steps 20000
//	go run ./cmd/simulate -seed 42 -weapon homing -verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gonewx/bossrush/pkg/battle"
	"github.com/gonewx/bossrush/pkg/config"
	"github.com/gonewx/bossrush/pkg/event"
	"github.com/gonewx/bossrush/pkg/types"
)

var (
	steps        = flag.Int("steps", 36000, "最多模拟的步数")
	seed         = flag.Int64("seed", 1, "随机种子")
	fireEvery    = flag.Int("fire-every", 1, "每隔多少步按一次开火，0 表示不开火")
	weaponName   = flag.String("weapon", "", "开局切换到的武器（standard/multi/piercing_trail/homing）")
	bossStats    = flag.String("boss-stats", config.BossStatsPath, "Boss 属性配置文件")
	weaponStats  = flag.String("weapon-stats", config.WeaponStatsPath, "武器属性配置文件")
	invulnerable = flag.Bool("god", false, "玩家无敌")
	verbose      = flag.Bool("verbose", false, "打印每个事件")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	bosses, err := config.LoadBossStats(*bossStats)
	if err != nil {
		return err
	}
	weapons, err := config.LoadWeaponStats(*weaponStats)
	if err != nil {
		return err
	}

	session, err := battle.NewBattleSession(battle.Config{
		Seed:         *seed,
		BossStats:    bosses,
		WeaponStats:  weapons,
		Invulnerable: *invulnerable,
	})
	if err != nil {
		return err
	}

	if *verbose {
		session.Dispatcher().SubscribeAll(event.ListenerFunc(func(e event.Event) {
			fmt.Printf("[%6d] %s\n", e.Step, e.Type)
		}))
	}

	if *weaponName != "" {
		wanted, err := types.ParseWeaponType(*weaponName)
		if err != nil {
			return err
		}
		if err := selectWeapon(session, wanted); err != nil {
			return err
		}
	}

	for i := 0; i < *steps && !session.Over(); i++ {
		session.Step(autopilot(session, i))
	}

	printSummary(session.Summary())
	return nil
}

// selectWeapon 用第一步直接选中指定武器
func selectWeapon(session *battle.BattleSession, wanted types.WeaponType) error {
	for i, w := range session.Snapshot().Weapons {
		if w.Type == wanted {
			in := autopilot(session, 0)
			in.SelectWeapon = i + 1
			session.Step(in)
			return nil
		}
	}
	return fmt.Errorf("武器 %s 不在装备列表中", wanted)
}

// autopilot 让玩家悬停在可活动区域中部并按固定节奏开火
func autopilot(session *battle.BattleSession, step int) battle.Intent {
	snap := session.Snapshot()
	fire := *fireEvery > 0 && step%*fireEvery == 0
	return battle.Intent{
		Flap: snap.Player.Y > config.ViewportHeight/2,
		Fire: fire,
	}
}

func printSummary(s battle.Summary) {
	status := "存活"
	if s.Over {
		status = "被击败"
	}
	fmt.Printf("seed            %d\n", s.Seed)
	fmt.Printf("steps           %s\n", humanize.Comma(int64(s.Steps)))
	fmt.Printf("score           %s\n", humanize.Comma(int64(s.Score)))
	fmt.Printf("bosses defeated %d\n", s.BossesDefeated)
	fmt.Printf("boss level      %s\n", humanize.Ordinal(s.BossLevel+1))
	fmt.Printf("highest cycle   %d\n", s.HighestCycle)
	fmt.Printf("player          %s\n", status)
}
