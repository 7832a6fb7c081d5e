// Package ipclass 提供特殊用途 IP 地址分类相关的子包。
//
// 子包列表：
//   - xregistry: IANA 特殊用途地址块注册表，源记录的字段校验与构建
//   - xclassify: 基于注册表的地址分类，首个命中块决定所有谓词
//
// 设计原则：
//   - 注册表构建后只读，可在任意 goroutine 间共享
//   - 地址族按文本判定，不做跨地址族匹配
package ipclass
