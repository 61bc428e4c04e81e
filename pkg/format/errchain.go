package format

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// omittedWalkCap 限制超出深度后继续清点被省略原因的步数，
// 保证对病态的 Unwrap 实现也有界终止。
const omittedWalkCap = 1024

// ErrorChainNode 表示因果链上的一个节点。
type ErrorChainNode struct {
	Message string
	Depth   int
}

// Chain 表示一次因果链提取的结果。
type Chain struct {
	Nodes []ErrorChainNode
	// Truncated 链因深度上限或环而被截断
	Truncated bool
	// Omitted 因深度上限被省略的原因个数
	Omitted int
	// Cyclic 检测到因果环
	Cyclic bool
}

// CollectChain 自顶向下提取错误因果链。
// 以已访问身份集合做环检测：环上的节点至多出现一次；
// 深度到达 limit 后停止收集，继续清点被省略的原因个数以给出精确截断标记。
// 身份集合仅在本次遍历内存活。
func CollectChain(err error, limit int) Chain {
	var c Chain
	if err == nil {
		return c
	}

	seen := make(map[uintptr]struct{}, limit)
	depth := 0
	for cur := err; cur != nil; cur = errors.UnwrapOnce(cur) {
		if id, ok := identityOf(cur); ok {
			if _, dup := seen[id]; dup {
				c.Cyclic = true
				c.Truncated = true
				break
			}
			seen[id] = struct{}{}
		}
		if limit > 0 && depth >= limit {
			c.Truncated = true
			c.Omitted++
			if c.Omitted >= omittedWalkCap {
				break
			}
			depth++
			continue
		}
		c.Nodes = append(c.Nodes, ErrorChainNode{Message: cur.Error(), Depth: depth})
		depth++
	}
	return c
}

// identityOf 提取错误值的指针身份用于环检测。
// 非指针类错误无法自引用，返回 false 交由深度上限兜底。
func identityOf(err error) (uintptr, bool) {
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return v.Pointer(), true
	default:
		return 0, false
	}
}
