package config

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce 文件最后一次变更后等待的静默时间
// 编辑器保存时通常连续触发多个写事件（先截断再写入），只在最后一次之后通知
const reloadDebounce = 100 * time.Millisecond

// Watcher 监听配置目录中 YAML 文件的变化
//
// 事件在后台 goroutine 中产生，通过 Events 通道传递文件路径；
// 调用方应在两个模拟步之间读取通道，再重新加载对应配置。
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

// NewWatcher 创建并启动目录监听
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close 停止监听，可重复调用
// 返回后 Events 和 Errors 已关闭
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.doneCh
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Events)
		close(w.Errors)
		close(w.doneCh)
	}()

	pending := newDebouncer(reloadDebounce)
	var fire <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isConfigFile(event.Name) {
				continue
			}
			now := time.Now()
			pending.touch(event.Name, now)
			fire = time.After(pending.wait(now))
		case <-fire:
			now := time.Now()
			for _, name := range pending.due(now) {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			fire = nil
			if pending.len() > 0 {
				fire = time.After(pending.wait(now))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				// 上一个错误尚未被读取，丢弃
			}
		case <-w.closeCh:
			return
		}
	}
}

func isConfigFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// debouncer 记录每个文件最后一次变更的时间，静默满 delay 后才算到期
type debouncer struct {
	delay    time.Duration
	deadline map[string]time.Time
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay, deadline: make(map[string]time.Time)}
}

// touch 记录一次变更，推迟该文件的到期时间
func (d *debouncer) touch(name string, now time.Time) {
	d.deadline[name] = now.Add(d.delay)
}

// due 取出已到期的文件，按路径排序
func (d *debouncer) due(now time.Time) []string {
	var names []string
	for name, at := range d.deadline {
		if !now.Before(at) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		delete(d.deadline, name)
	}
	return names
}

// wait 距离最早到期还需等待的时间
func (d *debouncer) wait(now time.Time) time.Duration {
	var earliest time.Time
	for _, at := range d.deadline {
		if earliest.IsZero() || at.Before(earliest) {
			earliest = at
		}
	}
	if earliest.IsZero() || !earliest.After(now) {
		return 0
	}
	return earliest.Sub(now)
}

func (d *debouncer) len() int {
	return len(d.deadline)
}
