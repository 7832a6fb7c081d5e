// Package xnet 提供 IP 地址与 CIDR 前缀的基础工具。
//
// xnet 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建，
// 是特殊地址分类（xregistry / xclassify）所依赖的包含判断协作方。
//
// # 核心功能
//
//   - version.go: IP 版本类型 [Version]，[AddrVersion] 语义判断与 [TextVersion] 文本判断
//   - contains.go: [ParseAddr]、[ParsePrefix] 严格解析，[Contains] 字符串包含判断，
//     [PrefixSet] 构建 [*netipx.IPSet]
//
// # 快速示例
//
//	ok, err := xnet.Contains("192.168.1.1", "192.168.0.0/16")
//	fmt.Println(ok, err)  // true <nil>
//
//	fmt.Println(xnet.TextVersion("fe80::1"))  // IPv6
//
// # 地址族规则
//
// 包含判断要求地址族严格一致，不做 IPv4-mapped 归一：
//   - "::ffff:10.0.0.1" 不属于 "10.0.0.0/8"
//   - "::ffff:10.0.0.1" 属于 "::ffff:0:0/96"
//
// [TextVersion] 只看文本中 ':' 的个数（多于一个即 IPv6），与按文本选择
// 候选集合的分类流程保持一致；[AddrVersion] 则把 IPv4-mapped 地址视为 V4，
// 用于语义判断。
//
// # IPv6 Zone ID 处理
//
// [ParseAddr] 去除 zone（"fe80::1%eth0" → "fe80::1"），因为 zone 只在链路本地
// 范围内有意义，且 [netip.Prefix.Contains] 对带 zone 的地址总是返回 false。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xnet.Contains("not-an-ip", "10.0.0.0/8")
//	if errors.Is(err, xnet.ErrInvalidAddress) {
//	    // 处理无效地址
//	}
package xnet
