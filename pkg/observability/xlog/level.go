package xlog

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level 日志级别，与 slog.Level 取值一致
type Level slog.Level

const (
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// String 返回 DEBUG/INFO/WARN/ERROR，非标准级别形如 "INFO+2"。
func (l Level) String() string {
	return slog.Level(l).String()
}

// MarshalText 实现 encoding.TextMarshaler，便于写入配置文件。
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler。
func (l *Level) UnmarshalText(data []byte) error {
	parsed, err := ParseLevel(string(data))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel 解析 debug/info/warn/warning/error（忽略大小写与首尾空白）。
// 无法识别时返回 LevelInfo 与 [ErrUnknownLevel]。
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// Format 输出格式
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat 解析输出格式，空字符串视为 [FormatText]。
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON:
		return f, nil
	default:
		return FormatText, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}
