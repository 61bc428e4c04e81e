package throttle

import (
	"errors"
	"time"

	"go.uber.org/atomic"

	"github.com/lk2023060901/consola-go/pkg/record"
)

var (
	// ErrWindowNotPositive 节流窗口必须为正
	ErrWindowNotPositive = errors.New("throttle: window must be positive")
	// ErrMinCountTooSmall 触发次数阈值小于 2 属于退化配置
	ErrMinCountTooSmall = errors.New("throttle: min count must be at least 2")
)

// Config 节流配置
type Config struct {
	// Window 表示相同指纹被合并的时间窗口。
	Window time.Duration
	// MinCount 表示开始抑制重复记录的次数阈值。
	MinCount uint32
}

// DefaultConfig 返回默认配置：500ms 窗口，阈值 2。
func DefaultConfig() Config {
	return Config{
		Window:   500 * time.Millisecond,
		MinCount: 2,
	}
}

// Validate 校验配置。阈值小于 2 会让首次出现也可能被抑制，
// 这里按退化配置拒绝而非悄悄重新解释。
func (c Config) Validate() error {
	if c.Window <= 0 {
		return ErrWindowNotPositive
	}
	if c.MinCount < 2 {
		return ErrMinCountTooSmall
	}
	return nil
}

// EmitFunc 接收一条放行或冲刷的记录。
type EmitFunc func(*record.Record)

// Throttler 基于指纹的去重节流引擎。
// 同一时刻至多保留一个活跃指纹状态，新指纹会先冲刷旧状态。
// 自身不加锁，由持有它的 Logger 以单把互斥锁保证原子性。
type Throttler struct {
	cfg Config

	active      bool
	fp          record.Fingerprint
	windowStart time.Time
	count       uint32
	stored      *record.Record

	suppressed atomic.Uint64
}

// New 创建节流引擎。
func New(cfg Config) (*Throttler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Throttler{cfg: cfg}, nil
}

// Process 处理一条记录，产生放行、抑制或冲刷三种结果之一。
// 窗口判定使用记录自带的时间戳，时间来源由上层注入的时钟决定。
// 状态转移是 (state, record, now) 上的全函数，不会失败。
func (t *Throttler) Process(rec *record.Record, emit EmitFunc) {
	fp := record.FingerprintOf(rec)
	now := rec.Timestamp

	// 窗口过期：先冲刷旧分组再按新状态处理当前记录
	if t.active && now.Sub(t.windowStart) > t.cfg.Window {
		t.flush(emit)
	}

	if t.active && fp == t.fp {
		t.count++
		t.stored.RepetitionCount = t.count
		if t.count >= t.cfg.MinCount {
			// 抑制：只累计计数，冲刷时一次性带后缀放出
			t.suppressed.Inc()
			return
		}
		// 低于阈值的重复仍逐条放行
		rec.RepetitionCount = 1
		emit(rec)
		return
	}

	// 指纹切换：冲刷旧分组
	if t.active {
		t.flush(emit)
	}

	// 新指纹的首次出现永不抑制
	t.active = true
	t.fp = fp
	t.windowStart = now
	t.count = 1
	rec.RepetitionCount = 1
	t.stored = rec.Clone()
	emit(rec)
}

// Flush 立即冲刷当前被抑制的分组，可幂等调用。
// 在手动调用、暂停与 Logger 关闭时触发。
func (t *Throttler) Flush(emit EmitFunc) {
	t.flush(emit)
}

// flush 仅当计数达到阈值时放出累计分组；低于阈值的记录此前已逐条放行。
func (t *Throttler) flush(emit EmitFunc) {
	if t.active && t.count >= t.cfg.MinCount && t.stored != nil {
		t.stored.RepetitionCount = t.count
		emit(t.stored)
	}
	t.active = false
	t.count = 0
	t.stored = nil
	t.windowStart = time.Time{}
}

// SuppressedTotal 返回累计被抑制的记录条数。
func (t *Throttler) SuppressedTotal() uint64 {
	return t.suppressed.Load()
}
