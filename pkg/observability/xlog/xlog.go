package xlog

import (
	"context"
	"log/slog"
)

// Logger 日志接口
//
// 所有方法都接收 context.Context，便于 handler 从中提取请求级信息。
// 只接受 slog.Attr，避免隐式 key-value 转换。
type Logger interface {
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)
	Info(ctx context.Context, msg string, attrs ...slog.Attr)
	Warn(ctx context.Context, msg string, attrs ...slog.Attr)
	Error(ctx context.Context, msg string, attrs ...slog.Attr)

	// With 返回带额外属性的派生 Logger，与父级共享级别。
	With(attrs ...slog.Attr) Logger
}

// Leveler 级别控制接口
type Leveler interface {
	// SetLevel 运行时调整级别，派生 Logger 同步生效
	SetLevel(level Level)

	// GetLevel 返回当前级别
	GetLevel() Level

	// Enabled 报告指定级别是否会被输出
	Enabled(ctx context.Context, level Level) bool
}

// LoggerWithLevel 组合接口，[Builder.Build] 的返回类型。
type LoggerWithLevel interface {
	Logger
	Leveler
}
