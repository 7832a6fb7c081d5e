// ipclass 判断 IP 地址是否属于特殊用途地址块（IANA Special-Purpose Address Registry）。
//
// 用法:
//
//	ipclass [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config      配置文件（YAML/JSON）
//	-r, --registry    额外的注册表数据文件，可重复指定，优先于内置表格匹配
//	    --log-level   日志级别 debug/info/warn/error (默认: warn)
//	    --log-format  日志格式 text/json (默认: text)
//	    --log-file    日志文件，按大小轮转；未指定时输出到 stderr
//	    --cache-size  分类结果缓存容量，0 表示禁用
//	    --workers     并发分类的 goroutine 数，0 表示按 GOMAXPROCS
//
// 命令:
//
//	classify [ip...]  分类地址；无参数或参数为 "-" 时从 stdin 逐行读取
//	blocks            列出生效的注册表条目
//
// 退出码:
//
//	0: 成功
//	1: 执行失败（含任一地址无法解析）
//	2: 参数错误
//
// 示例:
//
//	ipclass classify 127.0.0.1 2001:db8::1
//	ipclass classify --output json < addrs.txt
//	ipclass -r extra.yaml blocks --family 6
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息，可通过 -ldflags "-X main.Version=..." 注入。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// app 持有命令的输入输出，测试时替换为缓冲区。
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	code := a.run(ctx, os.Args)
	stop()
	os.Exit(code)
}

// createApp 创建 CLI 应用。
func (a *app) createApp() *cli.Command {
	return &cli.Command{
		Name:      "ipclass",
		Usage:     "特殊用途 IP 地址分类工具",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Reader:    a.stdin,
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags:     globalFlags(),
		Commands: []*cli.Command{
			a.classifyCommand(),
			a.blocksCommand(),
		},
		OnUsageError: onUsageError,
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，由 run 统一映射退出码。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(a.stderr, err)
			}
		},
	}
}

func (a *app) run(ctx context.Context, args []string) int {
	err := a.createApp().Run(ctx, args)
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(a.stderr, "参数错误: %v\n", usageErr)
		return 2
	}
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	fmt.Fprintf(a.stderr, "错误: %v\n", err)
	return 1
}

// exitError 表示命令已完成输出，只需设置非零退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 表示参数或配置取值错误，退出码 2。
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// onUsageError 将 flag 解析错误（未知 flag、取值类型错误）统一映射为 usageError。
func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{err: err}
}
