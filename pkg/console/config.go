package console

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/lk2023060901/consola-go/pkg/level"
)

// FileConfig YAML 配置文件结构。
type FileConfig struct {
	Level         string             `yaml:"level"`
	Tag           string             `yaml:"tag"`
	QueueCapacity int                `yaml:"queue_capacity"`
	FlushSchedule string             `yaml:"flush_schedule"`
	Throttle      ThrottleFileConfig `yaml:"throttle"`
	Format        FormatFileConfig   `yaml:"format"`
	Types         []TypeFileConfig   `yaml:"types"`
}

// ThrottleFileConfig 节流段。
type ThrottleFileConfig struct {
	// Window 时间窗口，time.ParseDuration 可解析的字符串（如 "500ms"）。
	Window   string `yaml:"window"`
	MinCount uint32 `yaml:"min_count"`
}

// FormatFileConfig 格式化段，布尔开关用指针区分“未设置”与“显式 false”。
type FormatFileConfig struct {
	ShowDate        *bool `yaml:"show_date"`
	Colors          *bool `yaml:"colors"`
	Compact         *bool `yaml:"compact"`
	Unicode         *bool `yaml:"unicode"`
	Columns         int   `yaml:"columns"`
	ErrorChainDepth int   `yaml:"error_chain_depth"`
}

// TypeFileConfig 自定义日志类型段。
type TypeFileConfig struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
}

// LoadConfig 从 YAML 文件加载配置并把自定义类型注册进 reg。
func LoadConfig(path string, reg *level.Registry) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "console: read config %q", path)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, errors.Wrapf(err, "console: parse config %q", path)
	}
	return ParseConfig(&fc, reg)
}

// ParseConfig 将文件配置转换为运行配置。
// 等级字段同时接受类型名与整数字符串；节流段非法时返回错误而非静默回填。
func ParseConfig(fc *FileConfig, reg *level.Registry) (*Config, error) {
	if reg == nil {
		reg = level.NewRegistry()
	}
	for _, t := range fc.Types {
		if err := reg.Register(level.TypeSpec{Name: t.Name, Level: reg.Normalize(t.Level)}); err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if fc.Level != "" {
		cfg.Level = reg.Normalize(fc.Level)
	}
	cfg.Tag = fc.Tag
	cfg.QueueCapacity = fc.QueueCapacity
	cfg.FlushSchedule = fc.FlushSchedule

	if fc.Throttle.Window != "" {
		window, err := time.ParseDuration(fc.Throttle.Window)
		if err != nil {
			return nil, errors.Wrapf(err, "console: invalid throttle window %q", fc.Throttle.Window)
		}
		cfg.Throttle.Window = window
	}
	if fc.Throttle.MinCount != 0 {
		cfg.Throttle.MinCount = fc.Throttle.MinCount
	}
	if err := cfg.Throttle.Validate(); err != nil {
		return nil, err
	}

	if fc.Format.ShowDate != nil {
		cfg.Format.ShowDate = *fc.Format.ShowDate
	}
	if fc.Format.Colors != nil {
		cfg.Format.Colors = *fc.Format.Colors
	}
	if fc.Format.Compact != nil {
		cfg.Format.Compact = *fc.Format.Compact
	}
	if fc.Format.Unicode != nil {
		cfg.Format.Unicode = *fc.Format.Unicode
	}
	if fc.Format.Columns > 0 {
		cfg.Format.Columns = fc.Format.Columns
	}
	if fc.Format.ErrorChainDepth > 0 {
		cfg.Format.ErrorChainDepth = fc.Format.ErrorChainDepth
	}
	return cfg, nil
}
