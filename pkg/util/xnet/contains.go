package xnet

import (
	"fmt"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

// ParseAddr 严格解析 IP 地址字符串。
//
// 空字符串或无法解析的输入返回 [ErrInvalidAddress]。
// IPv6 zone ID（如 "fe80::1%eth0"）会被去除：zone 不影响前缀包含判断，
// 而 [netip.Prefix.Contains] 对带 zone 的地址总是返回 false。
func ParseAddr(s string) (netip.Addr, error) {
	if s == "" {
		return netip.Addr{}, fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return addr.WithZone(""), nil
}

// ParsePrefix 解析 CIDR 前缀字符串，返回掩码归一后的前缀。
//
// 主机位非零的写法（如 "2001:1::1/128"、"192.0.0.9/32"）是合法的。
// 空字符串、缺少前缀长度或前缀长度越界返回 [ErrInvalidPrefix]。
func ParsePrefix(s string) (netip.Prefix, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return netip.Prefix{}, fmt.Errorf("%w: empty prefix", ErrInvalidPrefix)
	}
	p, err := netip.ParsePrefix(s)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %w", ErrInvalidPrefix, err)
	}
	return p.Masked(), nil
}

// Contains 报告地址 addr 是否位于 CIDR 块 cidr 之内。
//
// 两个参数都会被解析，任一无效时返回错误（[ErrInvalidAddress] 或 [ErrInvalidPrefix]）。
// 地址族必须一致：IPv4 地址不会匹配 IPv6 前缀，反之亦然。
// IPv4-mapped IPv6 地址（"::ffff:a.b.c.d"）属于 IPv6，只会匹配 IPv6 前缀。
// 支持 /32 与 /128 单主机前缀。
//
// 示例：
//
//	ok, _ := xnet.Contains("192.168.1.1", "192.168.0.0/16")  // true
//	ok, _ = xnet.Contains("::1", "::1/128")                  // true
//	ok, _ = xnet.Contains("::ffff:10.0.0.1", "10.0.0.0/8")   // false
func Contains(addr, cidr string) (bool, error) {
	a, err := ParseAddr(addr)
	if err != nil {
		return false, err
	}
	p, err := ParsePrefix(cidr)
	if err != nil {
		return false, err
	}
	return PrefixContains(p, a), nil
}

// PrefixContains 报告 addr 是否位于 p 之内，要求地址族严格一致。
//
// 设计决策: [netip.Prefix.Contains] 本身已拒绝跨族匹配，这里显式检查
// Is4 以便与 [TextVersion] 的文本族规则对齐，不依赖标准库未来行为。
func PrefixContains(p netip.Prefix, addr netip.Addr) bool {
	if !p.IsValid() || !addr.IsValid() {
		return false
	}
	if p.Addr().Is4() != addr.Is4() {
		return false
	}
	return p.Contains(addr.WithZone(""))
}

// PrefixSet 将前缀列表合并为 [*netipx.IPSet]，用于 O(log n) 的快速包含判断。
// 重叠与相邻的前缀会被自动合并。空切片返回空集合（非 nil）。
// 任一前缀无效时返回 [ErrInvalidPrefix]。
func PrefixSet(prefixes []netip.Prefix) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for i, p := range prefixes {
		if !p.IsValid() {
			return nil, fmt.Errorf("%w: prefix [%d] is invalid", ErrInvalidPrefix, i)
		}
		b.AddPrefix(p)
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("build IPSet: %w", err)
	}
	return set, nil
}
