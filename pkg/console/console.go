package console

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/robfig/cron/v3"

	"github.com/lk2023060901/consola-go/pkg/clock"
	"github.com/lk2023060901/consola-go/pkg/format"
	"github.com/lk2023060901/consola-go/pkg/level"
	"github.com/lk2023060901/consola-go/pkg/record"
	"github.com/lk2023060901/consola-go/pkg/reporter"
	"github.com/lk2023060901/consola-go/pkg/throttle"
)

// Config 表示 Logger 配置。
type Config struct {
	// Level 输出等级上限，数值更大（更冗长）的记录被过滤。
	Level level.Level
	// Throttle 节流配置，零值回填默认配置。
	Throttle throttle.Config
	// QueueCapacity 暂停队列容量，0 表示无界。
	QueueCapacity int
	// Format 格式化开关。
	Format format.Options
	// Tag 默认标签。
	Tag string
	// FlushSchedule 周期性冲刷的 cron 表达式（如 "@every 1s"），空串不启用。
	FlushSchedule string
}

// DefaultConfig 返回默认配置：放行全部等级，默认节流与格式化开关。
func DefaultConfig() *Config {
	return &Config{
		Level:    level.Verbose,
		Throttle: throttle.DefaultConfig(),
		Format:   format.DefaultOptions(),
	}
}

// state 同一 Logger 及其派生标签 Logger 共享的管线状态。
// 指纹判定、计数更新、暂停判定与入队均在同一把互斥锁内完成；
// 锁的作用域是单个 Logger 实例，独立实例之间互不竞争。
type state struct {
	mu sync.Mutex

	level     level.Level
	registry  *level.Registry
	clk       clock.Clock
	throttler *throttle.Throttler
	gate      *gate
	reporters []reporter.Reporter
	fmtOpts   format.Options
	flusher   *cron.Cron
	closed    bool
}

// Logger 结构化控制台日志器。
// 一次日志调用在调用线程上同步走完 节流 -> 暂停门 -> 格式化 -> Reporter；
// 暂停态下“完成”即“入队”。
type Logger struct {
	state    *state
	defaults record.Defaults
}

// Option Logger 选项
type Option func(*state)

// WithClock 注入时钟，默认系统时钟。
func WithClock(clk clock.Clock) Option {
	return func(s *state) {
		if clk != nil {
			s.clk = clk
		}
	}
}

// WithRegistry 注入类型注册表，默认新建并预置默认类型表。
func WithRegistry(reg *level.Registry) Option {
	return func(s *state) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// WithReporters 设置输出 Reporter 列表，默认单个控制台 Reporter。
func WithReporters(reporters ...reporter.Reporter) Option {
	return func(s *state) {
		if len(reporters) > 0 {
			s.reporters = reporters
		}
	}
}

// New 创建 Logger。
func New(cfg *Config, opts ...Option) (*Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	throttleCfg := cfg.Throttle
	if throttleCfg == (throttle.Config{}) {
		throttleCfg = throttle.DefaultConfig()
	}
	th, err := throttle.New(throttleCfg)
	if err != nil {
		return nil, err
	}

	fmtOpts := cfg.Format
	if fmtOpts.ErrorChainDepth <= 0 {
		fmtOpts.ErrorChainDepth = format.DefaultOptions().ErrorChainDepth
	}

	s := &state{
		level:     cfg.Level,
		clk:       clock.System(),
		throttler: th,
		gate:      newGate(cfg.QueueCapacity),
		fmtOpts:   fmtOpts,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = level.NewRegistry()
	}
	if len(s.reporters) == 0 {
		s.reporters = []reporter.Reporter{reporter.NewConsole(reporter.ConsoleConfig{
			Colors:  fmtOpts.Colors,
			Columns: fmtOpts.Columns,
		})}
	}

	l := &Logger{state: s, defaults: record.Defaults{Tag: cfg.Tag}}

	if cfg.FlushSchedule != "" {
		c := cron.New()
		if _, err := c.AddFunc(cfg.FlushSchedule, l.Flush); err != nil {
			return nil, errors.Wrapf(err, "console: invalid flush schedule %q", cfg.FlushSchedule)
		}
		c.Start()
		s.flusher = c
	}
	return l, nil
}

// WithTag 返回共享同一管线、携带指定默认标签的派生 Logger。
func (l *Logger) WithTag(tag string) *Logger {
	d := l.defaults
	d.Tag = tag
	return &Logger{state: l.state, defaults: d}
}

// WithDefaults 返回共享同一管线、叠加默认值的派生 Logger。
func (l *Logger) WithDefaults(d record.Defaults) *Logger {
	merged := l.defaults
	if d.Tag != "" {
		merged.Tag = d.Tag
	}
	merged.Additional = append(append([]record.ArgValue(nil), merged.Additional...), d.Additional...)
	merged.Meta = append(append([]record.MetaField(nil), merged.Meta...), d.Meta...)
	return &Logger{state: l.state, defaults: merged}
}

// Log 通用日志入口，按类型名解析等级。
func (l *Logger) Log(typeName string, args ...any) {
	s := l.state
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	rec := record.New(s.clk.Now(), s.registry.Resolve(typeName), typeName, args...)
	rec.MergeDefaults(l.defaults)
	s.dispatch(rec)
}

// Raw 原样输出入口，消息不经过参数拼装，节流规则与普通路径一致。
func (l *Logger) Raw(typeName, message string) {
	s := l.state
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	rec := record.Raw(s.clk.Now(), s.registry.Resolve(typeName), typeName, message)
	rec.MergeDefaults(l.defaults)
	s.dispatch(rec)
}

// Fatal 记录致命错误。
func (l *Logger) Fatal(args ...any) { l.Log("fatal", args...) }

// Error 记录错误。
func (l *Logger) Error(args ...any) { l.Log("error", args...) }

// Warn 记录警告。
func (l *Logger) Warn(args ...any) { l.Log("warn", args...) }

// Info 记录信息。
func (l *Logger) Info(args ...any) { l.Log("info", args...) }

// Success 记录成功。
func (l *Logger) Success(args ...any) { l.Log("success", args...) }

// Debug 记录调试信息。
func (l *Logger) Debug(args ...any) { l.Log("debug", args...) }

// Trace 记录跟踪信息。
func (l *Logger) Trace(args ...any) { l.Log("trace", args...) }

// dispatch 等级过滤后交给暂停门或节流引擎，调用方需持有锁。
func (s *state) dispatch(rec *record.Record) {
	if rec.Level > s.level {
		return
	}
	if s.gate.paused() {
		s.gate.enqueue(rec)
		return
	}
	s.throttler.Process(rec, s.emit)
}

// emit 格式化并按顺序交付给全部 Reporter。
// Reporter 的 I/O 失败不回传调用方，核心自身无可失败操作。
func (s *state) emit(rec *record.Record) {
	segs := format.Format(rec, s.fmtOpts)
	for _, r := range s.reporters {
		_ = r.Report(rec, segs)
	}
}

// Pause 进入暂停态。先冲刷在途节流分组，避免被抑制的重复跨暂停边界丢失。
func (l *Logger) Pause() {
	s := l.state
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.gate.paused() {
		return
	}
	s.throttler.Flush(s.emit)
	s.gate.pause()
}

// Resume 回到活跃态并按 FIFO 顺序重放队列，重放完成前不受理新调用。
func (l *Logger) Resume() {
	s := l.state
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.gate.paused() {
		return
	}
	for _, rec := range s.gate.drain() {
		if rec.Level > s.level {
			continue
		}
		s.throttler.Process(rec, s.emit)
	}
}

// Flush 立即冲刷节流引擎的在途分组，幂等；不影响暂停队列。
func (l *Logger) Flush() {
	s := l.state
	s.mu.Lock()
	defer s.mu.Unlock()
	s.throttler.Flush(s.emit)
}

// Close 冲刷并关闭 Logger，可重复调用。
func (l *Logger) Close() error {
	s := l.state
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.throttler.Flush(s.emit)
	if s.flusher != nil {
		s.flusher.Stop()
	}
	s.closed = true
	return nil
}

// SetLevel 调整输出等级上限。
func (l *Logger) SetLevel(lvl level.Level) {
	s := l.state
	s.mu.Lock()
	s.level = lvl
	s.mu.Unlock()
}

// Level 返回当前输出等级上限。
func (l *Logger) Level() level.Level {
	s := l.state
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// Paused 返回是否处于暂停态。
func (l *Logger) Paused() bool {
	s := l.state
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gate.paused()
}

// Pending 返回暂停队列中的排队条数。
func (l *Logger) Pending() int {
	s := l.state
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gate.pending()
}

// Dropped 返回暂停队列累计按容量丢弃的条数。
func (l *Logger) Dropped() uint64 {
	return l.state.gate.droppedTotal()
}

// Suppressed 返回节流引擎累计抑制的条数。
func (l *Logger) Suppressed() uint64 {
	return l.state.throttler.SuppressedTotal()
}

// Registry 返回类型注册表，供调用方注册自定义类型。
func (l *Logger) Registry() *level.Registry {
	return l.state.registry
}
