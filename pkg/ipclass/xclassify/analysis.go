package xclassify

import (
	"fmt"
	"net/netip"
	"slices"

	"github.com/omeyang/xipclass/pkg/ipclass/xregistry"
	"github.com/omeyang/xipclass/pkg/util/xnet"
)

// Option 配置 [Analysis]。
type Option func(*Analysis)

// WithRegistry 指定查找使用的注册表。nil 表示使用 [xregistry.Default]。
func WithRegistry(r *xregistry.Registry) Option {
	return func(a *Analysis) {
		if r != nil {
			a.reg = r
		}
	}
}

// Analysis 是针对单个地址的分类会话。
//
// 首次调用任一谓词或 [Analysis.Block] 时执行查找，结果（包括"无匹配"）
// 在会话生命周期内缓存，之后的调用不再扫描注册表。查找失败不会被缓存。
//
// Analysis 持有私有的可变状态，不是并发安全的；
// 多个 goroutine 需要分类时请使用 [Classifier] 或各自创建会话。
type Analysis struct {
	ip      string
	version xnet.Version
	reg     *xregistry.Registry

	processed bool
	block     *xregistry.Block
}

// New 创建地址 ip 的分类会话。
// 地址文本原样保存，构造时不做校验，也不触发注册表构建。
func New(ip string, opts ...Option) *Analysis {
	a := &Analysis{
		ip:      ip,
		version: xnet.TextVersion(ip),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// IP 返回构造时传入的地址文本。
func (a *Analysis) IP() string {
	return a.ip
}

// Version 返回按文本规则判定的地址族（一个以上 ':' 为 IPv6）。
// 空地址返回 [xnet.V0]。
func (a *Analysis) Version() xnet.Version {
	return a.version
}

// Block 返回地址命中的注册表条目；无匹配时返回 (nil, nil)。
//
// 地址无法解析或默认注册表构建失败时返回包装了 [ErrClassify] 的错误。
// 返回的 *Block 与注册表共享，调用方不得修改。
func (a *Analysis) Block() (*xregistry.Block, error) {
	if a.processed {
		return a.block, nil
	}

	addr, err := xnet.ParseAddr(a.ip)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClassify, err)
	}
	reg := a.reg
	if reg == nil {
		if reg, err = xregistry.Default(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrClassify, err)
		}
	}

	a.block = lookup(reg, addr, a.version)
	a.processed = true
	return a.block, nil
}

// IsLoopback 报告地址是否命中环回地址块。
func (a *Analysis) IsLoopback() (bool, error) {
	return a.nameIn(loopbackNames)
}

// IsLocalNetwork 报告地址是否只在本地链路或子网内有效（链路本地、受限广播）。
func (a *Analysis) IsLocalNetwork() (bool, error) {
	return a.nameIn(localNames)
}

// IsPrivateNetwork 报告地址是否属于私有地址块（RFC 1918、ULA）。
func (a *Analysis) IsPrivateNetwork() (bool, error) {
	return a.nameIn(privateNames)
}

// IsMulticast 报告地址是否命中多播地址块。
//
// 设计决策: 判断只依据注册表匹配结果，不额外做多播 CIDR 检查；
// 多播规则作为 Type 为 Other 的条目存在于注册表中。
func (a *Analysis) IsMulticast() (bool, error) {
	return a.nameIn(multicastNames)
}

// IsDocumentation 报告地址是否属于文档示例地址块。
func (a *Analysis) IsDocumentation() (bool, error) {
	b, err := a.Block()
	if err != nil || b == nil {
		return false, err
	}
	return isDocumentationName(b.Name), nil
}

// IsGlobal 报告地址是否全局可达。
// 未命中任何特殊地址块时为 true；命中时取条目的 GloballyReachable，未设置视为 false。
func (a *Analysis) IsGlobal() (bool, error) {
	b, err := a.Block()
	if err != nil {
		return false, err
	}
	if b == nil {
		return true, nil
	}
	return b.GloballyReachable.IsTrue(), nil
}

// IsSpecial 报告地址是否命中任一特殊地址块。
func (a *Analysis) IsSpecial() (bool, error) {
	b, err := a.Block()
	if err != nil {
		return false, err
	}
	return b != nil, nil
}

// Result 一次性计算全部谓词。
func (a *Analysis) Result() (Result, error) {
	b, err := a.Block()
	if err != nil {
		return Result{IP: a.ip, Version: a.version}, err
	}
	return newResult(a.ip, a.version, b), nil
}

func (a *Analysis) nameIn(names []string) (bool, error) {
	b, err := a.Block()
	if err != nil || b == nil {
		return false, err
	}
	return slices.Contains(names, b.Name), nil
}

// lookup 在 v 对应的子集中按声明顺序查找第一个包含 addr 的条目。
// 前缀并集未覆盖的地址直接判定为无匹配。
func lookup(reg *xregistry.Registry, addr netip.Addr, v xnet.Version) *xregistry.Block {
	if !reg.Covers(addr) {
		return nil
	}
	for b := range reg.Blocks(v) {
		if b.Contains(addr) {
			return b
		}
	}
	return nil
}
