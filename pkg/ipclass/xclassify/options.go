package xclassify

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/omeyang/xipclass/pkg/ipclass/xregistry"
)

const (
	// DefaultCacheSize 默认结果缓存容量。
	DefaultCacheSize = 4096

	// maxCacheSize 结果缓存容量上限。
	maxCacheSize = 1 << 24
)

type classifierOptions struct {
	registry       *xregistry.Registry
	cacheSize      int
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
}

// ClassifierOption 配置 [Classifier]。
type ClassifierOption func(*classifierOptions)

// WithClassifierRegistry 指定注册表。nil 表示使用 [xregistry.Default]。
func WithClassifierRegistry(r *xregistry.Registry) ClassifierOption {
	return func(o *classifierOptions) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithCacheSize 设置结果缓存容量（按地址文本缓存），0 表示禁用缓存。
// 负值或超过 16,777,216 时 [NewClassifier] 返回 [ErrInvalidCacheSize]。
func WithCacheSize(n int) ClassifierOption {
	return func(o *classifierOptions) {
		o.cacheSize = n
	}
}

// WithMeterProvider 设置 MeterProvider。默认使用 otel 全局 MeterProvider。
func WithMeterProvider(p metric.MeterProvider) ClassifierOption {
	return func(o *classifierOptions) {
		if p != nil {
			o.meterProvider = p
		}
	}
}

// WithTracerProvider 设置 TracerProvider。默认使用 otel 全局 TracerProvider。
func WithTracerProvider(p trace.TracerProvider) ClassifierOption {
	return func(o *classifierOptions) {
		if p != nil {
			o.tracerProvider = p
		}
	}
}
