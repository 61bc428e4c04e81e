// Package bridge 将第三方日志接口接入本库的 Logger。
package bridge

import (
	"fmt"
	"os"

	"google.golang.org/grpc/grpclog"

	"github.com/lk2023060901/consola-go/pkg/console"
	"github.com/lk2023060901/consola-go/pkg/level"
)

// GRPCLogger 实现 grpclog.LoggerV2，把 gRPC 内部日志转发给 console.Logger。
// 通过 grpclog.SetLoggerV2(bridge.NewGRPCLogger(l)) 安装。
type GRPCLogger struct {
	logger *console.Logger
	// exit 进程退出入口，测试中可替换
	exit func(int)
}

// NewGRPCLogger 创建 gRPC 日志桥接器。
func NewGRPCLogger(l *console.Logger) *GRPCLogger {
	return &GRPCLogger{logger: l.WithTag("grpc"), exit: os.Exit}
}

func (g *GRPCLogger) Info(args ...any) {
	g.logger.Info(args...)
}

func (g *GRPCLogger) Infoln(args ...any) {
	g.logger.Info(args...)
}

func (g *GRPCLogger) Infof(format string, args ...any) {
	g.logger.Info(fmt.Sprintf(format, args...))
}

func (g *GRPCLogger) Warning(args ...any) {
	g.logger.Warn(args...)
}

func (g *GRPCLogger) Warningln(args ...any) {
	g.logger.Warn(args...)
}

func (g *GRPCLogger) Warningf(format string, args ...any) {
	g.logger.Warn(fmt.Sprintf(format, args...))
}

func (g *GRPCLogger) Error(args ...any) {
	g.logger.Error(args...)
}

func (g *GRPCLogger) Errorln(args ...any) {
	g.logger.Error(args...)
}

func (g *GRPCLogger) Errorf(format string, args ...any) {
	g.logger.Error(fmt.Sprintf(format, args...))
}

// Fatal 系列先冲刷再退出，保证被抑制的重复分组不随进程一起丢失。
func (g *GRPCLogger) Fatal(args ...any) {
	g.logger.Fatal(args...)
	g.logger.Flush()
	g.exit(1)
}

func (g *GRPCLogger) Fatalln(args ...any) {
	g.Fatal(args...)
}

func (g *GRPCLogger) Fatalf(format string, args ...any) {
	g.Fatal(fmt.Sprintf(format, args...))
}

// V 报告详细度 l 是否启用。gRPC 的详细度 0..3 映射到 Info..Verbose 区间。
func (g *GRPCLogger) V(l int) bool {
	return level.Level(int(level.Info)+l) <= g.logger.Level()
}

var _ grpclog.LoggerV2 = (*GRPCLogger)(nil)
