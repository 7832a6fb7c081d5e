// Package xlog 基于 log/slog 的结构化日志。
//
// # 创建 Logger
//
// 使用 Builder 配置输出目标、级别、格式与文件轮转（first-error-wins）：
//
//	logger, cleanup, err := xlog.New().
//	    SetLevelString("debug").
//	    SetFormat("json").
//	    SetRotation(xlog.Rotation{Filename: "/var/log/ipclass.log"}).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	defer cleanup()
//
// 文件输出使用 lumberjack 按大小轮转，默认单文件 100MB、保留 3 个备份、7 天。
//
// # 接口
//
// [Logger] 的方法签名为 (ctx, msg, ...slog.Attr)。[Builder.Build] 返回 [LoggerWithLevel]，
// 可在运行时通过 SetLevel 调整级别，With 派生的 Logger 共享同一级别。
//
// # 便捷属性
//
// [Err]、[Addr]、[BlockName]、[Count]、[Duration]、[Component]、[Path]。
package xlog
