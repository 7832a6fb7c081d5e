package xregistry

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// footnoteRe 匹配 IANA 表格中的脚注标记，如 " [1]"、"[42]"。
// 只匹配方括号内的纯数字，"[RFC4291]" 之类的引用不受影响。
var footnoteRe = regexp.MustCompile(`\s*\[[0-9]+\]`)

// StripFootnotes 删除 s 中所有形如 "空白* [数字+]" 的脚注标记。
// 替换重复到结果不再变化为止，因此是幂等的（"[1[2]]" 得到 ""）。
//
//	StripFootnotes("True [1]")                // "True"
//	StripFootnotes("[RFC1149] [3]")           // "[RFC1149]"
//	StripFootnotes("[RFC1149][RFC2324][42]")  // "[RFC1149][RFC2324]"
func StripFootnotes(s string) string {
	for {
		out := footnoteRe.ReplaceAllString(s, "")
		if out == s {
			return out
		}
		s = out
	}
}

// IsNullLike 报告 v 是否表示"未设置"：nil，或去除脚注后
// （忽略首尾空白与大小写）等于 "null" / "n/a" 的字符串。
func IsNullLike(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return isNullString(StripFootnotes(x))
	default:
		return false
	}
}

func isNullString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "null", "n/a":
		return true
	default:
		return false
	}
}

// ParseBool 以宽松规则解析布尔值。
//
//   - bool 原样返回
//   - 整数 1 / 0
//   - 字符串 "1"、"true"、"yes"、"on" 与 "0"、"false"、"no"、"off"（忽略大小写与首尾空白）
//
// 其他输入返回 [ErrInvalidBool]。脚注与 null 的处理由调用方负责，见 [coerceBool]。
func ParseBool(v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case int:
		return intBool(int64(x))
	case int64:
		return intBool(x)
	case uint64:
		if x > 1 {
			return false, fmt.Errorf("%w: %d", ErrInvalidBool, x)
		}
		return x == 1, nil
	case float64:
		// JSON/YAML 解析器可能把数字解码为 float64
		if x != 0 && x != 1 {
			return false, fmt.Errorf("%w: %v", ErrInvalidBool, x)
		}
		return x == 1, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "1", "true", "yes", "on":
			return true, nil
		case "0", "false", "no", "off":
			return false, nil
		}
		return false, fmt.Errorf("%w: %q", ErrInvalidBool, x)
	default:
		return false, fmt.Errorf("%w: unsupported type %T", ErrInvalidBool, v)
	}
}

func intBool(n int64) (bool, error) {
	switch n {
	case 1:
		return true, nil
	case 0:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrInvalidBool, strconv.FormatInt(n, 10))
	}
}

// coerceBool 去除脚注、识别 null，再做宽松布尔解析。
func coerceBool(v any) (Bool, error) {
	if s, ok := v.(string); ok {
		v = StripFootnotes(s)
	}
	if IsNullLike(v) {
		return BoolUnset, nil
	}
	b, err := ParseBool(v)
	if err != nil {
		return BoolUnset, err
	}
	return BoolOf(b), nil
}

// coerceString 去除脚注、识别 null。非字符串值返回 [ErrInvalidString]。
// 未设置以空字符串表示。
func coerceString(v any) (string, error) {
	var s string
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		s = x
	case time.Time:
		// YAML 解析器会把 "2006-02-01" 形式的日期解码为 time.Time
		return x.Format(time.DateOnly), nil
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrInvalidString, v)
	}
	s = StripFootnotes(s)
	if isNullString(s) {
		return "", nil
	}
	return s, nil
}
