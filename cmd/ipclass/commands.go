package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xipclass/pkg/ipclass/xclassify"
	"github.com/omeyang/xipclass/pkg/ipclass/xregistry"
	"github.com/omeyang/xipclass/pkg/observability/xlog"
	"github.com/omeyang/xipclass/pkg/util/xnet"
)

// session 是一次命令执行所需的已初始化组件。
type session struct {
	cfg        Config
	logger     xlog.LoggerWithLevel
	cleanup    func() error
	classifier *xclassify.Classifier
}

func (rt *session) close() {
	if rt.cleanup != nil {
		_ = rt.cleanup() //nolint:errcheck // 退出前关闭日志文件，失败无处可报
	}
}

// setup 读取配置、叠加 flag、构建日志与分类器。
func (a *app) setup(ctx context.Context, cmd *cli.Command) (*session, error) {
	cfg, err := loadConfig(cmd.String(flagConfig))
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	b := xlog.New().
		SetOutput(a.stderr).
		SetLevelString(cfg.Log.Level).
		SetFormat(cfg.Log.Format).
		SetAttrs(xlog.Component("ipclass"))
	if cfg.Log.File != "" {
		b.SetRotation(xlog.Rotation{
			Filename:   cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
			Compress:   cfg.Log.Compress,
		})
	}
	logger, cleanup, err := b.Build()
	if err != nil {
		return nil, &usageError{err: err}
	}
	rt := &session{cfg: cfg, logger: logger, cleanup: cleanup}

	reg, err := loadRegistry(ctx, logger, cfg.Registry.Files)
	if err != nil {
		rt.close()
		return nil, err
	}
	rt.classifier, err = xclassify.NewClassifier(
		xclassify.WithClassifierRegistry(reg),
		xclassify.WithCacheSize(cfg.Cache.Size),
	)
	if err != nil {
		rt.close()
		return nil, &usageError{err: err}
	}
	return rt, nil
}

// loadRegistry 返回生效的注册表：没有额外文件时使用内置注册表，
// 否则额外记录在前、内置表格在后重新构建。
func loadRegistry(ctx context.Context, logger xlog.Logger, files []string) (*xregistry.Registry, error) {
	if len(files) == 0 {
		return xregistry.Default()
	}

	var extra []xregistry.Record
	for _, f := range files {
		recs, err := xregistry.LoadFile(f)
		if err != nil {
			return nil, err
		}
		logger.Debug(ctx, "registry file loaded", xlog.Path(f), xlog.Count(len(recs)))
		extra = append(extra, recs...)
	}
	reg, err := xregistry.Build(append(extra, xregistry.Table()...))
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}
	logger.Info(ctx, "registry built", xlog.Count(reg.Len()), slog.Int("extra", len(extra)))
	return reg, nil
}

func (a *app) classifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "classify",
		Usage:     "分类 IP 地址",
		ArgsUsage: "[ip...]",
		Description: `无参数或参数为 "-" 时从 stdin 逐行读取地址，空行与 # 开头的行被忽略。
任一地址无法解析时退出码为 1，其余地址照常输出。`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagOutput,
				Aliases: []string{"o"},
				Usage:   "输出格式 text/json（json 为每行一个对象）",
			},
		},
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rt, err := a.setup(ctx, cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			ips := cmd.Args().Slice()
			if len(ips) == 0 || (len(ips) == 1 && ips[0] == "-") {
				if ips, err = readAddrs(a.stdin); err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}
			return a.classify(ctx, rt, ips)
		},
	}
}

func (a *app) classify(ctx context.Context, rt *session, ips []string) error {
	items, err := rt.classifier.ClassifyBatch(ctx, ips, rt.cfg.Workers)
	if err != nil {
		return err
	}

	out := newResultWriter(a.stdout, rt.cfg.Output)
	failed := 0
	for i, it := range items {
		if it.Err != nil {
			failed++
			rt.logger.Warn(ctx, "classify failed", xlog.Addr(ips[i]), xlog.Err(it.Err))
			if err := out.WriteError(ips[i], it.Err); err != nil {
				return err
			}
			continue
		}
		rt.logger.Debug(ctx, "classified", xlog.Addr(ips[i]), xlog.BlockName(it.Result.BlockName()))
		if err := out.WriteResult(it.Result); err != nil {
			return err
		}
	}
	if err := out.Flush(); err != nil {
		return err
	}

	rt.logger.Info(ctx, "classification done", xlog.Count(len(ips)), slog.Int("failed", failed))
	if failed > 0 {
		return &exitError{code: 1}
	}
	return nil
}

func (a *app) blocksCommand() *cli.Command {
	return &cli.Command{
		Name:  "blocks",
		Usage: "列出生效的注册表条目（按匹配顺序）",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagFamily,
				Usage: "地址族 4/6，默认全部",
			},
			&cli.StringFlag{
				Name:    flagOutput,
				Aliases: []string{"o"},
				Usage:   "输出格式 text/json",
			},
		},
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			family, err := parseFamily(cmd.String(flagFamily))
			if err != nil {
				return err
			}
			rt, err := a.setup(ctx, cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			return writeBlocks(a.stdout, rt.cfg.Output, rt.classifier.Registry().Blocks(family))
		},
	}
}

func parseFamily(s string) (xnet.Version, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return xnet.V0, nil
	case "4", "ipv4", "v4":
		return xnet.V4, nil
	case "6", "ipv6", "v6":
		return xnet.V6, nil
	default:
		return xnet.V0, usageErrorf("unknown family %q (want 4 or 6)", s)
	}
}

// readAddrs 逐行读取地址，忽略空行与 # 注释行。
func readAddrs(r io.Reader) ([]string, error) {
	var ips []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ips = append(ips, line)
	}
	return ips, sc.Err()
}
