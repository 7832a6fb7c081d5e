// Package xregistry 提供特殊用途 IP 地址块注册表。
//
// 注册表是有序、不可变的 [Block] 集合，数据主要来自 IANA IPv4/IPv6
// Special-Purpose Address Registries，并补充了注册表未收录的多播规则。
// 内置表格编译进程序，通过 [Default] 在进程内只构建一次。
//
// # 核心功能
//
//   - block.go: [Block] 记录、[Type] 来源枚举、[Record] 源记录与字段白名单 [NewBlock]
//   - bool.go: 三态布尔 [Bool]（未设置 / false / true）
//   - coerce.go: 脚注去除 [StripFootnotes]、null 识别 [IsNullLike]、宽松布尔解析 [ParseBool]
//   - registry.go: [Build]、[Default]、按地址族过滤的 [Registry.IPv4] / [Registry.IPv6]
//   - table.go: 内置源表格 [Table]
//   - load.go: 从 YAML/JSON 读取额外记录 [LoadRecords] / [LoadFile]
//
// # 快速示例
//
//	reg, err := xregistry.Default()
//	if err != nil {
//	    return err
//	}
//	for _, b := range reg.IPv4() {
//	    fmt.Println(b.AddressBlock, b.Name, b.GloballyReachable)
//	}
//
// # 字段转换规则
//
// 每个字段在写入 [Block] 前依次处理：
//   - 去除脚注：删除所有 "空白* [数字+]"，"[RFC4291]" 这类引用保留
//   - null 识别：去除脚注后等于 "null" 或 "n/a"（忽略大小写与首尾空白）视为未设置
//   - 布尔字段：宽松解析 1/true/yes/on 与 0/false/no/off，其余取值是构建错误
//
// # 顺序
//
// 查找按声明顺序取第一个包含目标地址的条目。相互重叠时更具体的块必须先声明，
// 例如 192.0.0.9/32（PCP Anycast）在 192.0.0.0/24（IETF Protocol Assignments）之前，
// 否则它永远不会被命中。按地址族划分的子集保持与全表相同的相对顺序。
//
// # 地址族
//
// 条目的地址族只看 CIDR 文本：包含一个以上 ':' 即为 IPv6。
// 因此 "::ffff:0:0/96" 属于 IPv6 子集。
//
// # 错误处理
//
// 构建期错误（[ErrUnknownField]、[ErrInvalidType]、[ErrInvalidBlock]、[ErrInvalidBool]、
// [ErrInvalidString]）会使 [Build] 整体失败，不存在部分可用的注册表：
//
//	_, err := xregistry.Build(records)
//	if errors.Is(err, xregistry.ErrUnknownField) {
//	    // 源数据包含未知字段
//	}
package xregistry
