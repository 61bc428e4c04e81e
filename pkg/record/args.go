package record

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind 表示参数值的封闭类别。
type Kind uint8

const (
	// KindString 字符串
	KindString Kind = iota
	// KindNumber 数值（统一为 float64）
	KindNumber
	// KindBool 布尔值
	KindBool
	// KindError 错误文本
	KindError
	// KindDebug 其它调试格式化文本
	KindDebug
	// KindJSON 结构化 JSON 文本
	KindJSON
)

// ArgValue 表示一个归一化后的日志参数。
// 任意调用方输入在记录构造时一次性归一化为该封闭集合。
type ArgValue struct {
	Kind Kind
	Str  string
	Num  float64
	Bool bool
}

// StringArg 构造字符串参数。
func StringArg(s string) ArgValue {
	return ArgValue{Kind: KindString, Str: s}
}

// NumberArg 构造数值参数。
func NumberArg(n float64) ArgValue {
	return ArgValue{Kind: KindNumber, Num: n}
}

// BoolArg 构造布尔参数。
func BoolArg(b bool) ArgValue {
	return ArgValue{Kind: KindBool, Bool: b}
}

// ErrorArg 构造错误文本参数。
func ErrorArg(msg string) ArgValue {
	return ArgValue{Kind: KindError, Str: msg}
}

// DebugArg 构造调试文本参数。
func DebugArg(text string) ArgValue {
	return ArgValue{Kind: KindDebug, Str: text}
}

// JSONArg 构造结构化 JSON 参数。
func JSONArg(raw string) ArgValue {
	return ArgValue{Kind: KindJSON, Str: raw}
}

// Normalize 将任意调用方输入归一化为 ArgValue，全映射不失败。
func Normalize(v any) ArgValue {
	switch x := v.(type) {
	case nil:
		return DebugArg("<nil>")
	case ArgValue:
		return x
	case string:
		return StringArg(x)
	case bool:
		return BoolArg(x)
	case int:
		return NumberArg(float64(x))
	case int8:
		return NumberArg(float64(x))
	case int16:
		return NumberArg(float64(x))
	case int32:
		return NumberArg(float64(x))
	case int64:
		return NumberArg(float64(x))
	case uint:
		return NumberArg(float64(x))
	case uint8:
		return NumberArg(float64(x))
	case uint16:
		return NumberArg(float64(x))
	case uint32:
		return NumberArg(float64(x))
	case uint64:
		return NumberArg(float64(x))
	case float32:
		return NumberArg(float64(x))
	case float64:
		return NumberArg(x)
	case []byte:
		return StringArg(string(x))
	case error:
		return ErrorArg(x.Error())
	case fmt.Stringer:
		return StringArg(x.String())
	default:
		if raw, err := json.Marshal(v); err == nil {
			return JSONArg(string(raw))
		}
		return DebugArg(fmt.Sprintf("%+v", v))
	}
}

// NormalizeAll 归一化一组参数。
func NormalizeAll(args []any) []ArgValue {
	if len(args) == 0 {
		return nil
	}
	out := make([]ArgValue, 0, len(args))
	for _, a := range args {
		out = append(out, Normalize(a))
	}
	return out
}

// String 返回参数的文本渲染。
func (a ArgValue) String() string {
	switch a.Kind {
	case KindNumber:
		return strconv.FormatFloat(a.Num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(a.Bool)
	default:
		return a.Str
	}
}
