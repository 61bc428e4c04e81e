package format

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainErr 可手工链接的错误，用于构造精确深度与环。
type chainErr struct {
	msg   string
	cause error
}

func (e *chainErr) Error() string { return e.msg }
func (e *chainErr) Unwrap() error { return e.cause }

func linked(depth int) *chainErr {
	var cur *chainErr
	for i := depth - 1; i >= 0; i-- {
		cur = &chainErr{msg: "e" + string(rune('0'+i%10)), cause: errOrNil(cur)}
	}
	return cur
}

func errOrNil(e *chainErr) error {
	if e == nil {
		return nil
	}
	return e
}

func TestCollectChainLinear(t *testing.T) {
	c := CollectChain(linked(3), 16)

	require.Len(t, c.Nodes, 3)
	for i, node := range c.Nodes {
		assert.Equal(t, i, node.Depth)
	}
	assert.False(t, c.Truncated)
	assert.False(t, c.Cyclic)
	assert.Zero(t, c.Omitted)
}

func TestCollectChainNil(t *testing.T) {
	c := CollectChain(nil, 16)
	assert.Empty(t, c.Nodes)
	assert.False(t, c.Truncated)
}

func TestCollectChainSelfCycle(t *testing.T) {
	e := &chainErr{msg: "a"}
	e.cause = e

	c := CollectChain(e, 16)

	// 环上的节点至多出现一次，遍历必然终止
	require.Len(t, c.Nodes, 1)
	assert.Equal(t, "a", c.Nodes[0].Message)
	assert.True(t, c.Cyclic)
	assert.True(t, c.Truncated)
}

func TestCollectChainTwoNodeCycle(t *testing.T) {
	a := &chainErr{msg: "a"}
	b := &chainErr{msg: "b", cause: a}
	a.cause = b

	c := CollectChain(a, 16)

	require.Len(t, c.Nodes, 2)
	assert.Equal(t, "a", c.Nodes[0].Message)
	assert.Equal(t, "b", c.Nodes[1].Message)
	assert.True(t, c.Cyclic)
}

func TestCollectChainDepthLimit(t *testing.T) {
	c := CollectChain(linked(10), 4)

	// 恰好 limit 个节点，省略个数精确
	require.Len(t, c.Nodes, 4)
	assert.True(t, c.Truncated)
	assert.False(t, c.Cyclic)
	assert.Equal(t, 6, c.Omitted)
	assert.Equal(t, 3, c.Nodes[3].Depth)
}

func TestCollectChainWrappedErrors(t *testing.T) {
	root := errors.New("root cause")
	wrapped := errors.Wrap(root, "context")

	c := CollectChain(wrapped, 16)

	require.NotEmpty(t, c.Nodes)
	assert.Equal(t, "context: root cause", c.Nodes[0].Message)
	assert.Equal(t, 0, c.Nodes[0].Depth)
	assert.Equal(t, "root cause", c.Nodes[len(c.Nodes)-1].Message)
	assert.False(t, c.Truncated)
}
