package xregistry

import (
	"fmt"
	"iter"
	"net/netip"
	"slices"
	"sync"

	"go4.org/netipx"

	"github.com/omeyang/xipclass/pkg/util/xnet"
)

// Registry 是有序、不可变的特殊地址块集合。
//
// 条目保持声明顺序：查找按顺序取第一个包含目标地址的条目，
// 因此相互重叠时更具体的块必须先于更宽的块声明。
// Registry 构建完成后只读，可被多个 goroutine 无锁并发读取。
type Registry struct {
	all  []*Block
	ipv4 []*Block
	ipv6 []*Block

	// 每个地址族所有前缀的并集，用于快速排除未命中的地址
	set4 *netipx.IPSet
	set6 *netipx.IPSet
}

// Build 从源记录构建注册表。
//
// 任一记录构建失败都会使整体失败（错误中带有记录下标与地址块），
// 不存在部分可用的注册表。按地址族划分的子集在此一次性计算。
func Build(records []Record) (*Registry, error) {
	r := &Registry{
		all: make([]*Block, 0, len(records)),
	}
	var prefix4, prefix6 []netip.Prefix
	for i, rec := range records {
		b, err := NewBlock(rec)
		if err != nil {
			return nil, fmt.Errorf("record [%d] %v: %w", i, rec[FieldAddressBlock], err)
		}
		r.all = append(r.all, b)
		if b.IsIPv6() {
			r.ipv6 = append(r.ipv6, b)
			prefix6 = append(prefix6, b.Prefix)
		} else {
			r.ipv4 = append(r.ipv4, b)
			prefix4 = append(prefix4, b.Prefix)
		}
	}

	var err error
	if r.set4, err = xnet.PrefixSet(prefix4); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBlock, err)
	}
	if r.set6, err = xnet.PrefixSet(prefix6); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBlock, err)
	}
	return r, nil
}

// MustBuild 与 [Build] 相同，但失败时 panic。
// 仅适用于静态表格与测试。
func MustBuild(records []Record) *Registry {
	r, err := Build(records)
	if err != nil {
		panic(err)
	}
	return r
}

// defaultRegistry 进程内唯一的内置注册表，首次使用时构建一次。
var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	return Build(Table())
})

// Default 返回由内置表格构建的注册表。
//
// 构建只发生一次；若内置表格损坏，每次调用都返回同一个构建错误，
// 调用方不应退化为使用其他数据。
func Default() (*Registry, error) {
	return defaultRegistry()
}

// Len 返回条目总数。
func (r *Registry) Len() int {
	return len(r.all)
}

// All 返回全部条目（声明顺序）的副本切片。
func (r *Registry) All() []*Block {
	return slices.Clone(r.all)
}

// IPv4 返回 IPv4 条目（声明顺序）的副本切片。
func (r *Registry) IPv4() []*Block {
	return slices.Clone(r.ipv4)
}

// IPv6 返回 IPv6 条目（声明顺序）的副本切片。
func (r *Registry) IPv6() []*Block {
	return slices.Clone(r.ipv6)
}

// Blocks 按声明顺序遍历指定地址族的条目，不复制切片。
// v 为 [xnet.V0] 时遍历全部条目。
func (r *Registry) Blocks(v xnet.Version) iter.Seq[*Block] {
	var blocks []*Block
	switch v {
	case xnet.V4:
		blocks = r.ipv4
	case xnet.V6:
		blocks = r.ipv6
	default:
		blocks = r.all
	}
	return func(yield func(*Block) bool) {
		for _, b := range blocks {
			if !yield(b) {
				return
			}
		}
	}
}

// Covers 报告是否存在任一条目包含 addr。
//
// 基于前缀并集的 O(log n) 判断，与逐条扫描的结论一致；
// 未命中时可跳过扫描直接得出"无匹配"。
func (r *Registry) Covers(addr netip.Addr) bool {
	addr = addr.WithZone("")
	if addr.Is4() {
		return r.set4.Contains(addr)
	}
	return r.set6.Contains(addr)
}
