package xregistry

import "errors"

// 注册表构建相关错误。任一错误都会使 [Build] 整体失败，不存在部分可用的注册表。
var (
	// ErrUnknownField 表示源记录包含未知字段名。
	ErrUnknownField = errors.New("xregistry: unknown field")

	// ErrInvalidType 表示 type 字段取值不在 IANA/Other 之内。
	ErrInvalidType = errors.New("xregistry: invalid block type")

	// ErrInvalidBlock 表示 addressBlock 缺失或不是合法的 CIDR。
	ErrInvalidBlock = errors.New("xregistry: invalid address block")

	// ErrInvalidBool 表示布尔字段的非空值无法识别为 true/false。
	ErrInvalidBool = errors.New("xregistry: invalid boolean value")

	// ErrInvalidString 表示字符串字段的值不是字符串。
	ErrInvalidString = errors.New("xregistry: invalid string value")

	// ErrUnsupportedFormat 表示不支持的注册表数据格式。
	ErrUnsupportedFormat = errors.New("xregistry: unsupported data format")

	// ErrParseFailed 表示注册表数据解析失败。
	ErrParseFailed = errors.New("xregistry: failed to parse data")
)
