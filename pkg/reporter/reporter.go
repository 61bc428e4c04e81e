package reporter

import (
	"strings"

	"github.com/lk2023060901/consola-go/pkg/format"
	"github.com/lk2023060901/consola-go/pkg/record"
)

// Reporter 接收核心放出的 (记录, 段序列) 对并落地输出。
// 核心保证按放出顺序逐对交付；I/O 失败只在 Reporter 层面可见。
type Reporter interface {
	Report(rec *record.Record, segments []format.Segment) error
}

// Render 将段序列拼接为一行文本。
// 段间以单个空格分隔，以 "\n" 开头的块级段不插入分隔符。
func Render(segments []format.Segment, colors bool) string {
	var b strings.Builder
	for i, seg := range segments {
		if i > 0 && !strings.HasPrefix(seg.Text, "\n") {
			b.WriteByte(' ')
		}
		if colors {
			b.WriteString(paint(seg.Text, seg.Style))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// RenderWrapped 按列宽换行渲染：行宽超出 columns 时在段边界断行。
// columns 不为正时退化为单行渲染。
func RenderWrapped(segments []format.Segment, colors bool, columns int) string {
	if columns <= 0 || format.Width(segments) <= columns {
		return Render(segments, colors)
	}
	var b strings.Builder
	width := 0
	for _, seg := range segments {
		text := seg.Text
		runes := runeWidth(text)
		if strings.HasPrefix(text, "\n") {
			// 块级段自带换行，宽度从其最后一行重新起算
			if colors {
				b.WriteString(paint(text, seg.Style))
			} else {
				b.WriteString(text)
			}
			width = tailWidth(text)
			continue
		}
		sep := 0
		if width > 0 {
			sep = 1
		}
		if width > 0 && width+sep+runes > columns {
			b.WriteByte('\n')
			width = 0
			sep = 0
		}
		if sep == 1 {
			b.WriteByte(' ')
			width++
		}
		if colors {
			b.WriteString(paint(text, seg.Style))
		} else {
			b.WriteString(text)
		}
		width += runes
	}
	return b.String()
}

func runeWidth(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

func tailWidth(s string) int {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return runeWidth(s[i+1:])
	}
	return runeWidth(s)
}
