package xclassify

import (
	"slices"

	"github.com/omeyang/xipclass/pkg/ipclass/xregistry"
	"github.com/omeyang/xipclass/pkg/util/xnet"
)

// Result 是一个地址的完整分类结果，字段与 [Analysis] 的谓词一一对应。
//
// Result 是值类型，可安全地缓存与跨 goroutine 传递；
// 其中的 Block 与注册表共享，调用方不得修改。
type Result struct {
	// IP 是原始地址文本。
	IP string `json:"ip"`

	// Version 是按文本规则判定的地址族（4 或 6）。
	Version xnet.Version `json:"version"`

	// Block 是命中的注册表条目，无匹配时为 nil。
	Block *xregistry.Block `json:"block"`

	Loopback       bool `json:"loopback"`
	LocalNetwork   bool `json:"localNetwork"`
	PrivateNetwork bool `json:"privateNetwork"`
	Multicast      bool `json:"multicast"`
	Documentation  bool `json:"documentation"`
	Global         bool `json:"global"`
	Special        bool `json:"special"`
}

// BlockName 返回命中条目的名称，无匹配时返回空字符串。
func (r Result) BlockName() string {
	if r.Block == nil {
		return ""
	}
	return r.Block.Name
}

func newResult(ip string, v xnet.Version, b *xregistry.Block) Result {
	r := Result{
		IP:      ip,
		Version: v,
		Block:   b,
		Global:  true,
	}
	if b == nil {
		return r
	}
	r.Loopback = slices.Contains(loopbackNames, b.Name)
	r.LocalNetwork = slices.Contains(localNames, b.Name)
	r.PrivateNetwork = slices.Contains(privateNames, b.Name)
	r.Multicast = slices.Contains(multicastNames, b.Name)
	r.Documentation = isDocumentationName(b.Name)
	r.Global = b.GloballyReachable.IsTrue()
	r.Special = true
	return r
}
