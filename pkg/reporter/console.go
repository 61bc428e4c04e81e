package reporter

import (
	"io"
	"os"

	"github.com/lk2023060901/consola-go/pkg/format"
	"github.com/lk2023060901/consola-go/pkg/level"
	"github.com/lk2023060901/consola-go/pkg/record"
)

// ConsoleConfig 控制台输出配置。
type ConsoleConfig struct {
	// Out 普通记录的输出目标，默认 os.Stdout。
	Out io.Writer
	// Err 严重记录（等级不高于 Error）的输出目标，默认 os.Stderr。
	Err io.Writer
	// Colors 是否输出 ANSI 样式码。
	Colors bool
	// Columns 换行列宽，0 表示不换行。
	Columns int
}

// DefaultConsoleConfig 返回默认控制台配置。
func DefaultConsoleConfig() ConsoleConfig {
	return ConsoleConfig{
		Out:    os.Stdout,
		Err:    os.Stderr,
		Colors: true,
	}
}

// Console 控制台 Reporter。
type Console struct {
	cfg ConsoleConfig
}

// NewConsole 创建控制台 Reporter，空的输出目标回填默认值。
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Err == nil {
		cfg.Err = os.Stderr
	}
	return &Console{cfg: cfg}
}

func (c *Console) Report(rec *record.Record, segments []format.Segment) error {
	line := RenderWrapped(segments, c.cfg.Colors, c.cfg.Columns)

	w := c.cfg.Out
	if rec.Level <= level.Error {
		w = c.cfg.Err
	}
	_, err := io.WriteString(w, line+"\n")
	return err
}

var _ Reporter = (*Console)(nil)
