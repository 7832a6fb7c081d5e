// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xnet: IP 地址工具库，基于 net/netip + go4.org/netipx 的地址解析与前缀包含判断
package util
