package console

import (
	"go.uber.org/atomic"

	"github.com/lk2023060901/consola-go/pkg/record"
)

// gateState 暂停门状态
type gateState uint8

const (
	// gateActive 默认态，记录直接流向后续管线
	gateActive gateState = iota
	// gatePaused 暂停态，记录进入有序队列等待重放
	gatePaused
)

// gate 显式两态暂停门，持有等待重放的 FIFO 队列。
// 自身不加锁，由 Logger 的互斥锁保证暂停判定与入队的原子性。
type gate struct {
	state    gateState
	queue    []*record.Record
	capacity int

	dropped atomic.Uint64
}

// newGate 创建暂停门，capacity 为 0 表示无界队列。
func newGate(capacity int) *gate {
	return &gate{state: gateActive, capacity: capacity}
}

func (g *gate) paused() bool {
	return g.state == gatePaused
}

func (g *gate) pause() {
	g.state = gatePaused
}

// enqueue 追加一条等待重放的记录。
// 超出容量时按丢弃最旧策略腾位，这是既定的有界缓冲策略而非错误。
func (g *gate) enqueue(rec *record.Record) {
	if g.capacity > 0 && len(g.queue) >= g.capacity {
		g.queue = g.queue[1:]
		g.dropped.Inc()
	}
	g.queue = append(g.queue, rec)
}

// drain 切回 Active 态并取出全部排队记录，保持入队顺序。
func (g *gate) drain() []*record.Record {
	g.state = gateActive
	q := g.queue
	g.queue = nil
	return q
}

// pending 返回当前排队条数。
func (g *gate) pending() int {
	return len(g.queue)
}

// droppedTotal 返回累计因容量上限被丢弃的条数。
func (g *gate) droppedTotal() uint64 {
	return g.dropped.Load()
}
