package xlog

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 轮转默认值
const (
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 7
)

// Rotation 文件输出与轮转配置
type Rotation struct {
	// Filename 日志文件路径，必填
	Filename string

	// MaxSizeMB 单个文件最大大小（MB），0 使用 DefaultMaxSizeMB
	MaxSizeMB int

	// MaxBackups 保留的备份数量，0 使用 DefaultMaxBackups
	MaxBackups int

	// MaxAgeDays 备份保留天数，0 使用 DefaultMaxAgeDays
	MaxAgeDays int

	// Compress 是否 gzip 压缩备份
	Compress bool
}

// newFileWriter 根据配置创建 lumberjack 写入器。
// 文件在首次写入时才创建，这里只做参数校验。
func newFileWriter(r Rotation) (*lumberjack.Logger, error) {
	name := strings.TrimSpace(r.Filename)
	if name == "" {
		return nil, ErrEmptyFilename
	}
	if r.MaxSizeMB < 0 || r.MaxBackups < 0 || r.MaxAgeDays < 0 {
		return nil, fmt.Errorf("%w: negative value in %+v", ErrInvalidRotation, r)
	}
	if r.MaxSizeMB == 0 {
		r.MaxSizeMB = DefaultMaxSizeMB
	}
	if r.MaxBackups == 0 {
		r.MaxBackups = DefaultMaxBackups
	}
	if r.MaxAgeDays == 0 {
		r.MaxAgeDays = DefaultMaxAgeDays
	}
	return &lumberjack.Logger{
		Filename:   filepath.Clean(name),
		MaxSize:    r.MaxSizeMB,
		MaxBackups: r.MaxBackups,
		MaxAge:     r.MaxAgeDays,
		Compress:   r.Compress,
	}, nil
}
