package level

import "strconv"

// Level 表示日志等级，数值越小越严重，越大越冗长。
// Silent 与 Verbose 为过滤哨兵值，不作为真实日志类别使用。
type Level int16

const (
	// Silent 抑制全部输出
	Silent Level = -99
	// Fatal 致命错误
	Fatal Level = 0
	// Error 错误
	Error Level = 1
	// Warn 警告
	Warn Level = 2
	// Log 普通日志
	Log Level = 3
	// Info 信息
	Info Level = 4
	// Success 成功
	Success Level = 5
	// Debug 调试
	Debug Level = 6
	// Trace 跟踪
	Trace Level = 7
	// Verbose 放行全部输出
	Verbose Level = 99
)

// String 返回等级的可读名称，未命名等级返回其数值。
func (l Level) String() string {
	switch l {
	case Silent:
		return "silent"
	case Fatal:
		return "fatal"
	case Error:
		return "error"
	case Warn:
		return "warn"
	case Log:
		return "log"
	case Info:
		return "info"
	case Success:
		return "success"
	case Debug:
		return "debug"
	case Trace:
		return "trace"
	case Verbose:
		return "verbose"
	default:
		return strconv.Itoa(int(l))
	}
}

// Clamp 将任意整数收敛到 [Silent, Verbose] 区间内，不产生错误。
func Clamp(n int) Level {
	if n < int(Silent) {
		return Silent
	}
	if n > int(Verbose) {
		return Verbose
	}
	return Level(n)
}
