package format

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/term"
)

// Options 格式化开关集合，仅由格式化器读取，核心不改写。
type Options struct {
	// ShowDate 是否输出时间戳段
	ShowDate bool
	// Colors 是否允许下游上色（格式化器本身不产生 ANSI 码）
	Colors bool
	// Compact 紧凑模式，省略时间戳段
	Compact bool
	// Columns 终端列宽，0 表示未知
	Columns int
	// ErrorChainDepth 错误因果链的最大深度
	ErrorChainDepth int
	// Unicode 是否使用 Unicode 符号（否则回退 ASCII）
	Unicode bool
	// ShowType 是否输出类型段
	ShowType bool
	// ShowTag 是否输出标签段
	ShowTag bool
	// ShowRepetition 是否输出重复计数后缀
	ShowRepetition bool
	// ShowAdditional 是否输出附加参数段
	ShowAdditional bool
	// ShowMeta 是否输出元数据段
	ShowMeta bool
	// ShowStack 是否输出栈行
	ShowStack bool
	// TimeLayout 时间戳格式
	TimeLayout string
}

// DefaultOptions 返回默认格式化开关。
func DefaultOptions() Options {
	return Options{
		ShowDate:        true,
		Colors:          true,
		Compact:         false,
		Columns:         0,
		ErrorChainDepth: 16,
		Unicode:         true,
		ShowType:        true,
		ShowTag:         true,
		ShowRepetition:  true,
		ShowAdditional:  true,
		ShowMeta:        true,
		ShowStack:       false,
		TimeLayout:      time.RFC3339,
	}
}

// AdaptiveOptions 在默认开关上叠加环境探测：
// NO_COLOR / FORCE_COLOR / CONSOLA_COMPACT 环境变量与终端列宽。
func AdaptiveOptions() Options {
	o := DefaultOptions()
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		o.Colors = false
	}
	if force := os.Getenv("FORCE_COLOR"); force != "" && force != "0" {
		o.Colors = true
	}
	if os.Getenv("CONSOLA_COMPACT") == "1" {
		o.Compact = true
	}
	o.Columns = DetectColumns()
	return o
}

// DetectColumns 探测终端列宽：COLUMNS 环境变量优先，其次查询终端。
// 探测不到返回 0。
func DetectColumns() int {
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n
		}
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return 0
}
