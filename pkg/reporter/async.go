package reporter

import (
	"errors"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/lk2023060901/consola-go/pkg/format"
	"github.com/lk2023060901/consola-go/pkg/record"
)

var errNilReporter = errors.New("reporter: inner reporter is nil")

// Async 将落地写入移出调用线程的包装 Reporter。
// 协程池固定单个 worker，交付顺序与提交顺序一致；
// 核心管线本身保持同步，异步仅发生在汇出边界。
type Async struct {
	inner Reporter
	pool  *ants.Pool
}

// NewAsync 创建异步包装 Reporter。
func NewAsync(inner Reporter) (*Async, error) {
	if inner == nil {
		return nil, errNilReporter
	}
	pool, err := ants.NewPool(1)
	if err != nil {
		return nil, err
	}
	return &Async{inner: inner, pool: pool}, nil
}

func (a *Async) Report(rec *record.Record, segments []format.Segment) error {
	err := a.pool.Submit(func() {
		_ = a.inner.Report(rec, segments)
	})
	if err != nil {
		// 池不可用时退化为同步写入
		return a.inner.Report(rec, segments)
	}
	return nil
}

// Close 等待在途任务完成并释放协程池。
func (a *Async) Close() error {
	return a.pool.ReleaseTimeout(time.Second)
}

var _ Reporter = (*Async)(nil)
