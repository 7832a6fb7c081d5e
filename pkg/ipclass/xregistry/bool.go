package xregistry

// Bool 是三态布尔值：未设置、false、true。
//
// 未设置（零值）与 false 是不同的状态：注册表中 "N/A" 表示协议未定义该属性，
// 而不是否定它。
type Bool uint8

const (
	// BoolUnset 表示值未知或未设置（源数据为 null / "N/A"）。
	BoolUnset Bool = iota
	// BoolFalse 表示 false。
	BoolFalse
	// BoolTrue 表示 true。
	BoolTrue
)

// BoolOf 将普通布尔值转换为已设置的 [Bool]。
func BoolOf(v bool) Bool {
	if v {
		return BoolTrue
	}
	return BoolFalse
}

// IsSet 报告值是否已设置。
func (b Bool) IsSet() bool {
	return b == BoolTrue || b == BoolFalse
}

// IsTrue 报告值是否为 true。未设置视为 false。
func (b Bool) IsTrue() bool {
	return b == BoolTrue
}

// Value 返回布尔值以及是否已设置。
func (b Bool) Value() (v, ok bool) {
	return b == BoolTrue, b.IsSet()
}

// String 返回 "true"、"false" 或 "n/a"。
func (b Bool) String() string {
	switch b {
	case BoolTrue:
		return "true"
	case BoolFalse:
		return "false"
	default:
		return "n/a"
	}
}

// MarshalJSON 将未设置序列化为 null。
func (b Bool) MarshalJSON() ([]byte, error) {
	switch b {
	case BoolTrue:
		return []byte("true"), nil
	case BoolFalse:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}
