package clock

import (
	"sync"
	"time"
)

// Clock 时钟接口，为日志管线提供时间点。
// 注入 Clock 可以让节流窗口等时间行为在测试中完全确定。
type Clock interface {
	// Now 获取当前时间
	Now() time.Time
}

// systemClock Clock 的系统时钟实现
type systemClock struct{}

// System 返回基于系统真实时间的时钟。
// 系统时钟只读且天然并发安全，可在多个 Logger 之间共享。
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Manual 手动推进的逻辑时钟，用于确定性测试。
// 仅由测试驱动方推进，不与同一测试内的日志调用并发。
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual 创建逻辑时钟，base 为起始时间点。
func NewManual(base time.Time) *Manual {
	return &Manual{now: base}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance 将逻辑时钟向前推进 d（可为负数）。
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Set 将逻辑时钟直接设置到指定时间点。
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

var (
	_ Clock = systemClock{}
	_ Clock = (*Manual)(nil)
)
