package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "bossrush"

// OpenStorage 打开 gdata 跨平台存储
// 存储不可用时返回 nil，调用方进入降级模式（只在内存中保存）
func OpenStorage(appName string) *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Storage] gdata 不可用，设置和进度不会保存: %v", err)
		return nil
	}
	return manager
}
