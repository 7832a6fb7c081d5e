package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v3"

	"github.com/omeyang/xipclass/pkg/ipclass/xclassify"
	"github.com/omeyang/xipclass/pkg/observability/xlog"
)

// 全局 flag 名称
const (
	flagConfig    = "config"
	flagRegistry  = "registry"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagLogFile   = "log-file"
	flagCacheSize = "cache-size"
	flagWorkers   = "workers"
	flagOutput    = "output"
	flagFamily    = "family"
)

// 输出格式
const (
	outputText = "text"
	outputJSON = "json"
)

// Config 是配置文件结构，所有字段都可被同名命令行 flag 覆盖。
//
//	log:
//	  level: info
//	  format: json
//	  file: /var/log/ipclass.log
//	  maxSizeMB: 50
//	registry:
//	  files: [extra.yaml]
//	cache:
//	  size: 10000
//	workers: 8
//	output: json
type Config struct {
	Log      LogConfig      `koanf:"log"`
	Registry RegistryConfig `koanf:"registry"`
	Cache    CacheConfig    `koanf:"cache"`
	Workers  int            `koanf:"workers"`
	Output   string         `koanf:"output"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"maxSizeMB"`
	MaxBackups int    `koanf:"maxBackups"`
	MaxAgeDays int    `koanf:"maxAgeDays"`
	Compress   bool   `koanf:"compress"`
}

// RegistryConfig 注册表配置
type RegistryConfig struct {
	// Files 额外的注册表数据文件，按顺序置于内置表格之前
	Files []string `koanf:"files"`
}

// CacheConfig 分类结果缓存配置
type CacheConfig struct {
	Size int `koanf:"size"`
}

func defaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Cache:  CacheConfig{Size: xclassify.DefaultCacheSize},
		Output: outputText,
	}
}

// loadConfig 读取配置文件并叠加到默认值上，未出现的键保持默认值。
// path 为空时直接返回默认值。
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return cfg, usageErrorf("unsupported config format %q", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// applyFlags 用显式设置的命令行 flag 覆盖配置。
// --registry 追加在配置文件列出的文件之后。
func applyFlags(cmd *cli.Command, cfg *Config) {
	if cmd.IsSet(flagLogLevel) {
		cfg.Log.Level = cmd.String(flagLogLevel)
	}
	if cmd.IsSet(flagLogFormat) {
		cfg.Log.Format = cmd.String(flagLogFormat)
	}
	if cmd.IsSet(flagLogFile) {
		cfg.Log.File = cmd.String(flagLogFile)
	}
	if cmd.IsSet(flagCacheSize) {
		cfg.Cache.Size = cmd.Int(flagCacheSize)
	}
	if cmd.IsSet(flagWorkers) {
		cfg.Workers = cmd.Int(flagWorkers)
	}
	if cmd.IsSet(flagOutput) {
		cfg.Output = cmd.String(flagOutput)
	}
	cfg.Registry.Files = append(cfg.Registry.Files, cmd.StringSlice(flagRegistry)...)
}

// validate 检查取值，错误均为 usageError。
func (c *Config) validate() error {
	if _, err := xlog.ParseLevel(c.Log.Level); err != nil {
		return &usageError{err: err}
	}
	if _, err := xlog.ParseFormat(c.Log.Format); err != nil {
		return &usageError{err: err}
	}
	switch c.Output {
	case outputText, outputJSON:
	default:
		return usageErrorf("unknown output %q (want text or json)", c.Output)
	}
	if c.Cache.Size < 0 {
		return usageErrorf("cache size must be >= 0, got %d", c.Cache.Size)
	}
	if c.Workers < 0 {
		return usageErrorf("workers must be >= 0, got %d", c.Workers)
	}
	return nil
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "配置文件（YAML/JSON）",
		},
		&cli.StringSliceFlag{
			Name:    flagRegistry,
			Aliases: []string{"r"},
			Usage:   "额外的注册表数据文件（可重复）",
		},
		&cli.StringFlag{
			Name:  flagLogLevel,
			Usage: "日志级别 debug/info/warn/error",
		},
		&cli.StringFlag{
			Name:  flagLogFormat,
			Usage: "日志格式 text/json",
		},
		&cli.StringFlag{
			Name:  flagLogFile,
			Usage: "日志文件（按大小轮转）",
		},
		&cli.IntFlag{
			Name:  flagCacheSize,
			Usage: "分类结果缓存容量，0 表示禁用",
		},
		&cli.IntFlag{
			Name:  flagWorkers,
			Usage: "并发分类的 goroutine 数，0 表示按 GOMAXPROCS",
		},
	}
}
