package xclassify

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchItem 是批量分类中单个地址的结果。
type BatchItem struct {
	Result Result
	Err    error
}

// ClassifyBatch 以最多 workers 个 goroutine 并发分类 ips，
// 返回的结果与输入顺序一一对应。
//
// 单个地址失败只记录在对应的 BatchItem.Err 中，不影响其他地址；
// ctx 取消时停止派发剩余地址并返回 ctx.Err()。
// workers <= 0 时使用 runtime.GOMAXPROCS(0)。
func (c *Classifier) ClassifyBatch(ctx context.Context, ips []string, workers int) ([]BatchItem, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	items := make([]BatchItem, len(ips))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, ip := range ips {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := c.Classify(gctx, ip)
			if err != nil && gctx.Err() != nil {
				return gctx.Err()
			}
			items[i] = BatchItem{Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// 所有 goroutine 都未启动时 Wait 返回 nil，这里补充检查取消
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
