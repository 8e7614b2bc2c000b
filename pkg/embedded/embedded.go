// Package embedded 提供嵌入数据文件的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的配置。
//
// 未调用 Init()、路径不在 "data/" 下或嵌入文件中不存在时，
// 读取会回退到操作系统文件系统（测试和配置热加载依赖这一点）。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	initialized bool
)

// Init 注册嵌入的数据文件系统
// 必须在 main() 开始时、任何配置加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

func normalize(path string) string {
	// embed.FS 使用正斜杠
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// ReadFile 读取文件内容
// "data/" 前缀的路径优先从嵌入文件系统读取，其余情况读取磁盘文件
func ReadFile(path string) ([]byte, error) {
	normalized := normalize(path)

	if initialized && strings.HasPrefix(normalized, "data/") {
		data, err := fs.ReadFile(dataFS, normalized)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read embedded %s: %w", normalized, err)
		}
	}

	return os.ReadFile(path)
}

// Exists 检查文件是否存在（嵌入文件或磁盘文件）
func Exists(path string) bool {
	normalized := normalize(path)
	if initialized && strings.HasPrefix(normalized, "data/") {
		if _, err := fs.Stat(dataFS, normalized); err == nil {
			return true
		}
	}
	_, err := os.Stat(path)
	return err == nil
}
