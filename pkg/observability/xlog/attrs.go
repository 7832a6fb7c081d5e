package xlog

import (
	"log/slog"
	"time"
)

// 常用属性 key
const (
	KeyError     = "error"
	KeyCount     = "count"
	KeyDuration  = "duration"
	KeyComponent = "component"
	KeyAddr      = "ip"
	KeyBlock     = "block"
	KeyPath      = "path"
)

// Err 创建错误属性，err 为 nil 时返回空属性（slog 会忽略）。
//
//	logger.Error(ctx, "classify failed", xlog.Addr(ip), xlog.Err(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Addr 创建被分类地址属性，原样记录地址文本。
func Addr(ip string) slog.Attr {
	return slog.String(KeyAddr, ip)
}

// BlockName 创建命中地址块名称属性，空名称记录为 "none"。
func BlockName(name string) slog.Attr {
	if name == "" {
		name = "none"
	}
	return slog.String(KeyBlock, name)
}

// Count 创建计数属性
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}

// Duration 创建耗时属性，输出如 "1.5ms"。
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

// Component 创建组件名称属性
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Path 创建文件路径属性
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}
