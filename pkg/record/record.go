package record

import (
	"strings"
	"time"

	"github.com/lk2023060901/consola-go/pkg/level"
)

// MetaField 表示一个有序的元数据键值对。
type MetaField struct {
	Key   string
	Value ArgValue
}

// Record 表示一次日志调用的归一化结果。
// 除 RepetitionCount 仅由节流引擎改写外，其余字段构造后不再变更。
type Record struct {
	Timestamp       time.Time
	Level           level.Level
	Type            string
	Tag             string
	Args            []ArgValue
	Message         string
	RepetitionCount uint32
	Additional      []ArgValue
	Meta            []MetaField
	Stack           []string
	IsRaw           bool
	// Err 保存首个错误参数的原值，供格式化器做因果链提取。
	// 指纹计算不读取该字段。
	Err error
}

// New 构造一条普通日志记录：归一化参数、拼装消息并捕获首个错误参数。
func New(ts time.Time, lvl level.Level, typeName string, args ...any) *Record {
	rec := &Record{
		Timestamp: ts,
		Level:     lvl,
		Type:      typeName,
		Args:      NormalizeAll(args),
	}
	for _, a := range args {
		if err, ok := a.(error); ok {
			rec.Err = err
			break
		}
	}
	rec.Message = buildMessage(rec.Args)
	return rec
}

// Raw 构造一条原样输出的记录，消息不经过参数拼装。
// 原样记录与普通记录共用同一套指纹与节流规则。
func Raw(ts time.Time, lvl level.Level, typeName, message string) *Record {
	return &Record{
		Timestamp: ts,
		Level:     lvl,
		Type:      typeName,
		Message:   message,
		IsRaw:     true,
	}
}

// WithTag 设置标签并返回自身，便于链式构造。
func (r *Record) WithTag(tag string) *Record {
	r.Tag = tag
	return r
}

// WithAdditional 设置附加参数列表。
func (r *Record) WithAdditional(additional ...ArgValue) *Record {
	r.Additional = additional
	return r
}

// WithMeta 设置元数据键值对。
func (r *Record) WithMeta(meta ...MetaField) *Record {
	r.Meta = meta
	return r
}

// WithStack 设置栈行。
func (r *Record) WithStack(lines ...string) *Record {
	r.Stack = lines
	return r
}

// AttachError 追加一个错误参数并重建消息。
func (r *Record) AttachError(err error) *Record {
	if err == nil {
		return r
	}
	r.Args = append(r.Args, ErrorArg(err.Error()))
	if r.Err == nil {
		r.Err = err
	}
	r.Message = buildMessage(r.Args)
	return r
}

// Defaults 表示可合并进记录的默认值。
type Defaults struct {
	Tag        string
	Additional []ArgValue
	Meta       []MetaField
}

// MergeDefaults 将默认值合并进记录，记录中已有的值优先。
func (r *Record) MergeDefaults(d Defaults) *Record {
	if r.Tag == "" {
		r.Tag = d.Tag
	}
	if len(d.Additional) > 0 {
		merged := make([]ArgValue, 0, len(d.Additional)+len(r.Additional))
		merged = append(merged, d.Additional...)
		merged = append(merged, r.Additional...)
		r.Additional = merged
	}
	if len(d.Meta) > 0 {
		r.Meta = mergeMeta(d.Meta, r.Meta)
	}
	return r
}

// mergeMeta 按键合并，记录中的值覆盖默认值，保持先默认后记录的相对顺序。
func mergeMeta(defaults, own []MetaField) []MetaField {
	merged := make([]MetaField, 0, len(defaults)+len(own))
	index := make(map[string]int, len(defaults))
	for _, f := range defaults {
		index[f.Key] = len(merged)
		merged = append(merged, f)
	}
	for _, f := range own {
		if i, ok := index[f.Key]; ok {
			merged[i] = f
			continue
		}
		merged = append(merged, f)
	}
	return merged
}

// Clone 返回记录的副本，切片字段独立复制。
func (r *Record) Clone() *Record {
	dup := *r
	dup.Args = append([]ArgValue(nil), r.Args...)
	dup.Additional = append([]ArgValue(nil), r.Additional...)
	dup.Meta = append([]MetaField(nil), r.Meta...)
	dup.Stack = append([]string(nil), r.Stack...)
	return &dup
}

func buildMessage(args []ArgValue) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, a.String())
	}
	return strings.Join(parts, " ")
}
