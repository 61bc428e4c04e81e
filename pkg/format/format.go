package format

import (
	"fmt"
	"strings"

	"github.com/lk2023060901/consola-go/pkg/record"
)

// Format 将一条已放行的记录映射为有序的段序列。
// 纯函数，不做 I/O，不会失败；缺失的可选字段直接省略对应段。
// 段顺序：时间戳、类型、标签、消息、重复计数后缀、附加参数、元数据、栈行、错误因果链。
func Format(rec *record.Record, opts Options) []Segment {
	if rec.IsRaw {
		return formatRaw(rec, opts)
	}

	var segs []Segment
	if opts.ShowDate && !opts.Compact {
		segs = append(segs, Segment{
			Text:  rec.Timestamp.Format(timeLayout(opts)),
			Style: StyleTimestamp,
		})
	}
	if opts.ShowType {
		segs = append(segs, Segment{Text: "[" + rec.Type + "]", Style: StyleType})
	}
	if opts.ShowTag && rec.Tag != "" {
		segs = append(segs, Segment{Text: "[" + rec.Tag + "]", Style: StyleTag})
	}

	if rec.Message != "" {
		msg := rec.Message
		if strings.ContainsRune(msg, '\n') {
			msg = indentContinuation(msg, prefixWidth(segs))
		}
		segs = append(segs, Segment{Text: msg, Style: StyleNone})
	}

	if opts.ShowRepetition && rec.RepetitionCount > 1 {
		segs = append(segs, Segment{
			Text:  fmt.Sprintf("(x%d)", rec.RepetitionCount),
			Style: StyleRepetition,
		})
	}

	if opts.ShowAdditional && len(rec.Additional) > 0 {
		parts := make([]string, 0, len(rec.Additional))
		for _, a := range rec.Additional {
			parts = append(parts, a.String())
		}
		segs = append(segs, Segment{
			Text:  "[" + strings.Join(parts, ", ") + "]",
			Style: StyleAdditional,
		})
	}

	if opts.ShowMeta && len(rec.Meta) > 0 {
		parts := make([]string, 0, len(rec.Meta))
		for _, f := range rec.Meta {
			parts = append(parts, f.Key+"="+f.Value.String())
		}
		segs = append(segs, Segment{
			Text:  "{" + strings.Join(parts, ", ") + "}",
			Style: StyleMeta,
		})
	}

	if opts.ShowStack && len(rec.Stack) > 0 {
		for _, line := range rec.Stack {
			segs = append(segs, Segment{Text: "\n  " + line, Style: StyleStack})
		}
	}

	if rec.Err != nil {
		segs = append(segs, chainSegments(CollectChain(rec.Err, opts.ErrorChainDepth), opts)...)
	}
	return segs
}

// formatRaw 原样记录只输出消息本身，必要时追加重复计数后缀。
func formatRaw(rec *record.Record, opts Options) []Segment {
	segs := []Segment{{Text: rec.Message, Style: StyleNone}}
	if opts.ShowRepetition && rec.RepetitionCount > 1 {
		segs = append(segs, Segment{
			Text:  fmt.Sprintf("(x%d)", rec.RepetitionCount),
			Style: StyleRepetition,
		})
	}
	return segs
}

// chainSegments 渲染因果链块：每个节点一行，按深度缩进，
// 截断时追加标记段（深度溢出带精确的省略个数）。
func chainSegments(c Chain, opts Options) []Segment {
	if len(c.Nodes) == 0 && !c.Truncated {
		return nil
	}
	arrow := "⤷"
	if !opts.Unicode {
		arrow = "->"
	}
	segs := make([]Segment, 0, len(c.Nodes)+1)
	for _, node := range c.Nodes {
		segs = append(segs, Segment{
			Text:  "\n" + strings.Repeat("  ", node.Depth) + arrow + " " + node.Message,
			Style: StyleErrorChain,
		})
	}
	if c.Truncated {
		text := fmt.Sprintf("chain truncated: %d more causes omitted", c.Omitted)
		if c.Cyclic {
			text = "chain truncated: cycle detected"
		}
		segs = append(segs, Segment{
			Text:  "\n" + strings.Repeat("  ", len(c.Nodes)) + text,
			Style: StyleTruncation,
		})
	}
	return segs
}

// indentContinuation 给多行消息的续行填充空格，使整块在首行下方对齐。
func indentContinuation(msg string, pad int) string {
	if pad <= 0 {
		return msg
	}
	lines := strings.Split(msg, "\n")
	indent := strings.Repeat(" ", pad)
	for i := 1; i < len(lines); i++ {
		lines[i] = indent + lines[i]
	}
	return strings.Join(lines, "\n")
}

// prefixWidth 返回消息段之前前缀段的渲染宽度（含分隔空格）。
func prefixWidth(segs []Segment) int {
	if len(segs) == 0 {
		return 0
	}
	return Width(segs) + 1
}

func timeLayout(opts Options) string {
	if opts.TimeLayout != "" {
		return opts.TimeLayout
	}
	return DefaultOptions().TimeLayout
}
