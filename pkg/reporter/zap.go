package reporter

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lk2023060901/consola-go/pkg/format"
	"github.com/lk2023060901/consola-go/pkg/level"
	"github.com/lk2023060901/consola-go/pkg/record"
)

// Zap 将记录转发给 zap.Logger 的桥接 Reporter，
// 便于把控制台日志同时落入既有的 zap 采集链路。
type Zap struct {
	base *zap.Logger
}

// NewZap 创建 zap 桥接 Reporter，base 为空时使用 Nop。
func NewZap(base *zap.Logger) *Zap {
	if base == nil {
		base = zap.NewNop()
	}
	return &Zap{base: base}
}

func (z *Zap) Report(rec *record.Record, _ []format.Segment) error {
	fields := make([]zap.Field, 0, 3+len(rec.Meta))
	fields = append(fields, zap.String("type", rec.Type))
	if rec.Tag != "" {
		fields = append(fields, zap.String("tag", rec.Tag))
	}
	if rec.RepetitionCount > 1 {
		fields = append(fields, zap.Uint32("repetition", rec.RepetitionCount))
	}
	for _, f := range rec.Meta {
		fields = append(fields, zap.String(f.Key, f.Value.String()))
	}
	z.base.Log(toZapLevel(rec.Level), rec.Message, fields...)
	return nil
}

// Sync 刷新底层 zap 缓冲。
func (z *Zap) Sync() error {
	return z.base.Sync()
}

// toZapLevel 将本库等级映射到 zap 等级。
// Fatal 映射为 zap 的 Error 而非 Fatal，避免桥接侧进程退出。
func toZapLevel(lvl level.Level) zapcore.Level {
	switch {
	case lvl <= level.Error:
		return zapcore.ErrorLevel
	case lvl == level.Warn:
		return zapcore.WarnLevel
	case lvl <= level.Success:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

var _ Reporter = (*Zap)(nil)
