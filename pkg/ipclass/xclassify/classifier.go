package xclassify

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/omeyang/xipclass/pkg/ipclass/xregistry"
)

const (
	instrumentationName = "github.com/omeyang/xipclass/xclassify"

	metricClassifyTotal = "xipclass.classify.total"
	spanClassify        = "xipclass.classify"

	attrOutcome = "outcome"
	attrCache   = "cache"

	outcomeSpecial = "special"
	outcomeGlobal  = "global"
	outcomeError   = "error"

	cacheHit  = "hit"
	cacheMiss = "miss"
)

// Classifier 是面向批量查询的分类服务。
//
// 每次调用 [Classifier.Classify] 都通过一个新的 [Analysis] 完成查找，
// 成功的结果按地址文本缓存在有界 LRU 中；失败不缓存。
// Classifier 可被多个 goroutine 并发使用：注册表只读，LRU 内部加锁。
type Classifier struct {
	reg    *xregistry.Registry
	cache  *lru.Cache[string, Result]
	total  metric.Int64Counter
	tracer trace.Tracer
}

// NewClassifier 创建分类服务。
//
// 未指定注册表时使用 [xregistry.Default]，其构建错误会直接返回，
// 不会退化为空注册表。
func NewClassifier(opts ...ClassifierOption) (*Classifier, error) {
	o := &classifierOptions{
		cacheSize:      DefaultCacheSize,
		meterProvider:  otel.GetMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.cacheSize < 0 || o.cacheSize > maxCacheSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCacheSize, o.cacheSize)
	}

	reg := o.registry
	if reg == nil {
		var err error
		if reg, err = xregistry.Default(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrClassify, err)
		}
	}

	c := &Classifier{
		reg:    reg,
		tracer: o.tracerProvider.Tracer(instrumentationName),
	}
	if o.cacheSize > 0 {
		cache, err := lru.New[string, Result](o.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCacheSize, err)
		}
		c.cache = cache
	}

	total, err := o.meterProvider.Meter(instrumentationName).Int64Counter(
		metricClassifyTotal,
		metric.WithDescription("total address classifications"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xclassify: create counter failed: %w", err)
	}
	c.total = total
	return c, nil
}

// Registry 返回分类使用的注册表。
func (c *Classifier) Registry() *xregistry.Registry {
	return c.reg
}

// Classify 分类单个地址。
//
// 地址无法解析时返回包装了 [ErrClassify] 的错误；ctx 已取消时返回 ctx.Err()。
// 分类本身是纯内存计算，ctx 只用于取消检查与链路追踪。
func (c *Classifier) Classify(ctx context.Context, ip string) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := c.tracer.Start(ctx, spanClassify,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("ip", ip)),
	)
	defer span.End()

	cache := cacheMiss
	res, err := c.classify(ctx, ip, &cache)
	outcome := outcomeOf(res, err)

	span.SetAttributes(
		attribute.String(attrOutcome, outcome),
		attribute.String(attrCache, cache),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		if name := res.BlockName(); name != "" {
			span.SetAttributes(attribute.String("block", name))
		}
		span.SetStatus(codes.Ok, "")
	}

	c.total.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrOutcome, outcome),
		attribute.String(attrCache, cache),
	))
	return res, err
}

func (c *Classifier) classify(ctx context.Context, ip string, cache *string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{IP: ip}, err
	}
	if c.cache != nil {
		if res, ok := c.cache.Get(ip); ok {
			*cache = cacheHit
			return res, nil
		}
	}

	res, err := New(ip, WithRegistry(c.reg)).Result()
	if err != nil {
		return res, err
	}
	if c.cache != nil {
		c.cache.Add(ip, res)
	}
	return res, nil
}

// CacheLen 返回当前缓存的结果数；缓存禁用时返回 0。
func (c *Classifier) CacheLen() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// Purge 清空结果缓存。
func (c *Classifier) Purge() {
	if c.cache != nil {
		c.cache.Purge()
	}
}

func outcomeOf(res Result, err error) string {
	switch {
	case err != nil:
		return outcomeError
	case res.Special:
		return outcomeSpecial
	default:
		return outcomeGlobal
	}
}
