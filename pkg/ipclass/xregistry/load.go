package xregistry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format 定义注册表数据文件格式。
type Format string

// 支持的数据格式。
const (
	// FormatYAML YAML 格式。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// blocksKey 数据文件中记录列表所在的键。
const blocksKey = "blocks"

// LoadRecords 从 YAML/JSON 数据中读取源记录。
//
// 数据格式为顶层 blocks 列表，每项的键与 [Record] 字段名一致：
//
//	blocks:
//	  - addressBlock: 100.100.0.0/16
//	    name: Private-Use
//	    globallyReachable: "False [1]"
//	    type: Other
//
// 这里只做格式解析，不校验字段；返回的记录交给 [Build] 后与内置表格
// 经过同样严格的白名单与取值检查。空数据返回 (nil, nil)。
func LoadRecords(data []byte, format Format) ([]Record, error) {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if len(data) == 0 {
		return nil, nil
	}

	// 设计决策: 使用非 "." 的分隔符，避免字段值中的点号影响 koanf 的键展开；
	// 记录本身通过 Slices 取回原始 map，不经过扁平化。
	k := koanf.New("::")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	if !k.Exists(blocksKey) {
		return nil, fmt.Errorf("%w: missing %q list", ErrParseFailed, blocksKey)
	}

	raw, ok := k.Get(blocksKey).([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q must be a list", ErrParseFailed, blocksKey)
	}
	// Slices 会静默跳过非对象元素，这里要求每个元素都是对象
	items := k.Slices(blocksKey)
	if len(items) != len(raw) {
		return nil, fmt.Errorf("%w: %q must be a list of objects", ErrParseFailed, blocksKey)
	}
	records := make([]Record, 0, len(items))
	for _, item := range items {
		records = append(records, Record(item.Raw()))
	}
	return records, nil
}

// LoadFile 读取注册表数据文件，根据扩展名（.yaml/.yml/.json）识别格式。
func LoadFile(path string) ([]Record, error) {
	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry file: %w", err)
	}
	records, err := LoadRecords(data, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return records, nil
}

// detectFormat 根据文件扩展名检测数据格式。
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, ext)
	}
}
