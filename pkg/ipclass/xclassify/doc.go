// Package xclassify 判断 IP 地址属于哪一类特殊用途地址。
//
// 地址按文本判定地址族（一个以上 ':' 为 IPv6），在注册表对应子集中
// 按声明顺序查找第一个包含它的条目，各谓词都由这一次查找结果推导：
//
//	谓词                 为 true 的条件
//	IsLoopback          条目名称为 "Loopback" 或 "Loopback Address"
//	IsLocalNetwork      条目名称为 "Limited Broadcast"、"Link Local" 或 "Link-Local Unicast"
//	IsPrivateNetwork    条目名称为 "Private-Use" 或 "Unique-Local"
//	IsMulticast         条目名称为 "Multicast"
//	IsDocumentation     条目名称以 "Documentation" 开头
//	IsGlobal            无匹配；或条目的 GloballyReachable 为 true（未设置视为 false）
//	IsSpecial           存在匹配
//
// # 会话与服务
//
// [Analysis] 是单个地址的会话：构造时不做任何校验，首次查询时查找并缓存结果，
// 不是并发安全的。[Classifier] 面向批量查询：并发安全，按地址文本在 LRU 中
// 缓存成功的结果，并通过 OpenTelemetry 记录调用次数与链路。
//
//	a := xclassify.New("192.168.1.1")
//	private, err := a.IsPrivateNetwork() // true, nil
//
//	c, err := xclassify.NewClassifier(xclassify.WithCacheSize(1024))
//	res, err := c.Classify(ctx, "2001:db8::1") // res.Documentation == true
//
// [Classifier.ClassifyBatch] 以有限并发分类一组地址，结果保持输入顺序。
//
// # 错误处理
//
// 空地址或无法解析的地址不会被当作"无匹配"，而是返回包装了 [ErrClassify] 与
// [xnet.ErrInvalidAddress] 的错误。失败的查找不会被缓存。
// 本包不输出日志，记录错误由调用方负责。
//
// [xnet.ErrInvalidAddress]: github.com/omeyang/xipclass/pkg/util/xnet.ErrInvalidAddress
package xclassify
