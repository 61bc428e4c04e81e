package reporter

import (
	"errors"
	"io"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lk2023060901/consola-go/pkg/format"
	"github.com/lk2023060901/consola-go/pkg/record"
)

var errEmptyLogPath = errors.New("reporter: log file path is empty")

// FileConfig 定义基于 lumberjack 的滚动文件输出配置。
type FileConfig struct {
	// Filepath 表示日志文件路径。
	Filepath string
	// MaxSize 表示单个日志文件的最大大小，单位为 MB。
	MaxSize int
	// MaxBackups 表示保留的旧日志文件数量。
	MaxBackups int
	// MaxAge 表示保留旧日志文件的最大天数。
	MaxAge int
	// Compress 表示是否压缩旧日志文件。
	Compress bool
}

// File 滚动文件 Reporter，输出不带样式码的纯文本行。
type File struct {
	out io.WriteCloser
}

// NewFile 创建滚动文件 Reporter。
func NewFile(cfg FileConfig) (*File, error) {
	if cfg.Filepath == "" {
		return nil, errEmptyLogPath
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = 100
	}
	return &File{
		out: &lumberjack.Logger{
			Filename:   cfg.Filepath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		},
	}, nil
}

func (f *File) Report(_ *record.Record, segments []format.Segment) error {
	_, err := io.WriteString(f.out, Render(segments, false)+"\n")
	return err
}

// Close 关闭底层文件。
func (f *File) Close() error {
	return f.out.Close()
}

var _ Reporter = (*File)(nil)
