package level

import (
	"errors"
	"strconv"
	"sync"
)

var errEmptyTypeName = errors.New("level: type name is empty")

// TypeSpec 表示一种日志类型及其等级。
type TypeSpec struct {
	Name  string
	Level Level
}

// Registry 维护日志类型名到等级的映射。
// 读多写少（约 100:1），采用读写锁；同名注册后写覆盖先写。
// Registry 由调用方构造并注入 Logger，而非进程级隐式单例。
type Registry struct {
	mu    sync.RWMutex
	types map[string]TypeSpec
}

// NewRegistry 创建并返回预置默认类型表的注册表。
func NewRegistry() *Registry {
	r := &Registry{types: make(map[string]TypeSpec)}
	for _, spec := range defaultTypes() {
		r.types[spec.Name] = spec
	}
	return r
}

func defaultTypes() []TypeSpec {
	return []TypeSpec{
		{Name: "silent", Level: Silent},
		{Name: "fatal", Level: Fatal},
		{Name: "error", Level: Error},
		{Name: "warn", Level: Warn},
		{Name: "log", Level: Log},
		{Name: "info", Level: Info},
		{Name: "success", Level: Success},
		{Name: "fail", Level: Success},
		{Name: "ready", Level: Info},
		{Name: "start", Level: Log},
		{Name: "box", Level: Log},
		{Name: "debug", Level: Debug},
		{Name: "trace", Level: Trace},
		{Name: "verbose", Level: Verbose},
	}
}

// Register 注册或覆盖一种日志类型。
func (r *Registry) Register(spec TypeSpec) error {
	if spec.Name == "" {
		return errEmptyTypeName
	}
	r.mu.Lock()
	r.types[spec.Name] = spec
	r.mu.Unlock()
	return nil
}

// Resolve 按类型名查询等级，未注册的类型名回退到 Log。
func (r *Registry) Resolve(name string) Level {
	if lvl, ok := r.Lookup(name); ok {
		return lvl
	}
	return Log
}

// Lookup 按类型名查询等级，返回是否已注册。
func (r *Registry) Lookup(name string) (Level, bool) {
	r.mu.RLock()
	spec, ok := r.types[name]
	r.mu.RUnlock()
	if !ok {
		return Log, false
	}
	return spec.Level, true
}

// Normalize 将等级输入归一化为 Level。
// 接受类型名（"info" 等）或原始整数字符串；整数收敛到合法区间，类型名未注册时回退到 Log。
func (r *Registry) Normalize(input string) Level {
	if n, err := strconv.Atoi(input); err == nil {
		return Clamp(n)
	}
	return r.Resolve(input)
}

// Names 返回已注册的类型名列表。
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	return names
}
