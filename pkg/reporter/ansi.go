package reporter

import (
	"regexp"

	"github.com/lk2023060901/consola-go/pkg/format"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI 去除文本中的 ANSI 样式码。
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// sgr 返回样式类别对应的 SGR 参数，空串表示不上色。
func sgr(style format.Style) string {
	switch style {
	case format.StyleTimestamp:
		return "90"
	case format.StyleType:
		return "1;36"
	case format.StyleTag:
		return "3;35"
	case format.StyleRepetition:
		return "2;90"
	case format.StyleAdditional:
		return "2;36"
	case format.StyleMeta:
		return "2;33"
	case format.StyleStack, format.StyleErrorChain:
		return "90"
	case format.StyleTruncation:
		return "31"
	default:
		return ""
	}
}

func paint(text string, style format.Style) string {
	code := sgr(style)
	if code == "" || text == "" {
		return text
	}
	return "\x1b[" + code + "m" + text + "\x1b[0m"
}
