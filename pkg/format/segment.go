package format

import "unicode/utf8"

// Style 表示段的样式类别，具体配色由渲染侧决定。
type Style uint8

const (
	// StyleNone 无样式（消息正文）
	StyleNone Style = iota
	// StyleTimestamp 时间戳
	StyleTimestamp
	// StyleType 类型标识
	StyleType
	// StyleTag 标签
	StyleTag
	// StyleRepetition 重复计数后缀
	StyleRepetition
	// StyleAdditional 附加参数
	StyleAdditional
	// StyleMeta 元数据
	StyleMeta
	// StyleStack 栈行
	StyleStack
	// StyleErrorChain 错误因果链行
	StyleErrorChain
	// StyleTruncation 链截断标记
	StyleTruncation
)

// Segment 表示一个原子的带样式文本单元。
// 以 "\n" 开头的段为块级段，渲染时不与前段之间插入空格。
type Segment struct {
	Text  string
	Style Style
}

// Width 返回段序列按单行拼接后的可见宽度（按符文计数，不含样式码）。
func Width(segments []Segment) int {
	width := 0
	for i, seg := range segments {
		if i > 0 && !blockStart(seg.Text) {
			width++
		}
		width += utf8.RuneCountInString(seg.Text)
	}
	return width
}

func blockStart(text string) bool {
	return len(text) > 0 && text[0] == '\n'
}
