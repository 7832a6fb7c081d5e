// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展，支持按大小轮转的文件输出
//
// 设计原则：
//   - 库代码不直接记录日志，由调用方（如 cmd/ipclass）注入 Logger
//   - 指标与追踪使用 OpenTelemetry API，由调用方提供 Provider
package observability
