package xlog

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

var _ LoggerWithLevel = (*xlogger)(nil)

type xlogger struct {
	handler   slog.Handler
	levelVar  *slog.LevelVar
	addSource bool
}

// log 写入一条记录。Handle 的错误被丢弃：日志失败不影响调用方。
//
//go:noinline
func (l *xlogger) log(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.handler.Enabled(ctx, level) {
		return
	}

	var pc uintptr
	if l.addSource {
		var pcs [1]uintptr
		// Callers → log → Debug/Info/… → 调用方
		runtime.Callers(3, pcs[:])
		pc = pcs[0]
	}

	r := slog.NewRecord(time.Now(), level, msg, pc)
	r.AddAttrs(attrs...)
	_ = l.handler.Handle(ctx, r) //nolint:errcheck // 日志写入失败不向调用方传播
}

func (l *xlogger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelDebug, msg, attrs)
}

func (l *xlogger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelInfo, msg, attrs)
}

func (l *xlogger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelWarn, msg, attrs)
}

func (l *xlogger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelError, msg, attrs)
}

func (l *xlogger) With(attrs ...slog.Attr) Logger {
	if len(attrs) == 0 {
		return l
	}
	return &xlogger{
		handler:   l.handler.WithAttrs(attrs),
		levelVar:  l.levelVar,
		addSource: l.addSource,
	}
}

func (l *xlogger) SetLevel(level Level) {
	l.levelVar.Set(slog.Level(level))
}

func (l *xlogger) GetLevel() Level {
	return Level(l.levelVar.Level())
}

func (l *xlogger) Enabled(ctx context.Context, level Level) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	return l.handler.Enabled(ctx, slog.Level(level))
}
