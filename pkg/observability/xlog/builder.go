package xlog

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Builder 日志配置构建器
//
// 采用 first-error-wins：第一个配置错误之后的 Set 调用被忽略，错误在 Build 时返回。
type Builder struct {
	output    io.Writer
	levelVar  *slog.LevelVar
	format    Format
	addSource bool
	file      io.WriteCloser
	attrs     []slog.Attr
	replace   func(groups []string, a slog.Attr) slog.Attr
	err       error
}

// New 创建构建器，默认 stderr、Info 级别、text 格式。
func New() *Builder {
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)
	return &Builder{
		output:   os.Stderr,
		levelVar: levelVar,
		format:   FormatText,
	}
}

// SetOutput 设置输出目标。nil 会被忽略。
func (b *Builder) SetOutput(w io.Writer) *Builder {
	if b.err == nil && w != nil {
		b.output = w
	}
	return b
}

// SetLevel 设置日志级别
func (b *Builder) SetLevel(level Level) *Builder {
	if b.err == nil {
		b.levelVar.Set(slog.Level(level))
	}
	return b
}

// SetLevelString 通过字符串设置日志级别
func (b *Builder) SetLevelString(s string) *Builder {
	if b.err != nil {
		return b
	}
	level, err := ParseLevel(s)
	if err != nil {
		b.err = err
		return b
	}
	return b.SetLevel(level)
}

// SetFormat 设置输出格式：text 或 json，空字符串为 text。
func (b *Builder) SetFormat(format string) *Builder {
	if b.err != nil {
		return b
	}
	f, err := ParseFormat(format)
	if err != nil {
		b.err = err
		return b
	}
	b.format = f
	return b
}

// SetAddSource 是否输出源码位置
func (b *Builder) SetAddSource(enable bool) *Builder {
	b.addSource = enable
	return b
}

// SetRotation 输出到文件并按大小轮转，替代 SetOutput 设置的目标。
func (b *Builder) SetRotation(r Rotation) *Builder {
	if b.err != nil {
		return b
	}
	w, err := newFileWriter(r)
	if err != nil {
		b.err = err
		return b
	}
	b.file = w
	b.output = w
	return b
}

// SetReplaceAttr 设置输出前的属性替换函数，返回空 Key 的属性会被移除。
//
//	xlog.New().SetReplaceAttr(func(_ []string, a slog.Attr) slog.Attr {
//	    if a.Key == slog.TimeKey {
//	        return slog.Attr{}
//	    }
//	    return a
//	})
func (b *Builder) SetReplaceAttr(fn func(groups []string, a slog.Attr) slog.Attr) *Builder {
	b.replace = fn
	return b
}

// SetAttrs 设置附加到每条日志的固定属性，如服务名、版本。
func (b *Builder) SetAttrs(attrs ...slog.Attr) *Builder {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// Build 构建 Logger
//
// 返回的 cleanup 关闭日志文件（如有），可重复调用。
func (b *Builder) Build() (LoggerWithLevel, func() error, error) {
	if b.err != nil {
		return nil, nil, b.err
	}

	opts := &slog.HandlerOptions{
		Level:     b.levelVar,
		AddSource: b.addSource,
	}
	if b.replace != nil {
		opts.ReplaceAttr = b.replace
	}
	var handler slog.Handler
	switch b.format {
	case FormatJSON:
		handler = slog.NewJSONHandler(b.output, opts)
	default:
		handler = slog.NewTextHandler(b.output, opts)
	}
	if len(b.attrs) > 0 {
		handler = handler.WithAttrs(b.attrs)
	}

	logger := &xlogger{
		handler:   handler,
		levelVar:  b.levelVar,
		addSource: b.addSource,
	}
	return logger, b.cleanup(), nil
}

func (b *Builder) cleanup() func() error {
	var once sync.Once
	file := b.file
	return func() error {
		var err error
		once.Do(func() {
			if file != nil {
				err = file.Close()
			}
		})
		return err
	}
}

// Discard 返回丢弃所有输出的 Logger，用于测试与未配置日志的场景。
func Discard() LoggerWithLevel {
	levelVar := new(slog.LevelVar)
	return &xlogger{
		handler:  slog.DiscardHandler,
		levelVar: levelVar,
	}
}
