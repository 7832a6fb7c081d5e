package xclassify

import "errors"

var (
	// ErrClassify 表示单个地址分类失败：地址文本无法解析，或注册表不可用。
	// 具体原因通过 errors.Is 检查，如 [xnet.ErrInvalidAddress]。
	//
	// [xnet.ErrInvalidAddress]: github.com/omeyang/xipclass/pkg/util/xnet.ErrInvalidAddress
	ErrClassify = errors.New("xclassify: classification failed")

	// ErrInvalidCacheSize 表示缓存容量为负或超过上限。
	ErrInvalidCacheSize = errors.New("xclassify: invalid cache size")
)
