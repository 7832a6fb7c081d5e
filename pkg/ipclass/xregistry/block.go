package xregistry

import (
	"fmt"
	"maps"
	"net/netip"
	"slices"
	"strings"

	"github.com/omeyang/xipclass/pkg/util/xnet"
)

// Type 表示特殊地址块的来源。
//
// 设计决策: 两种来源的字段集完全相同，只在出处上不同，因此用单一记录类型
// 加枚举字段表示，而不是拆成两个类型。
type Type uint8

const (
	// TypeRegistry 表示来自 IANA Special-Purpose Address Registry 的条目（零值）。
	TypeRegistry Type = iota
	// TypeOther 表示来自补充来源的条目，例如注册表未收录的多播规则。
	TypeOther
)

// String 返回 "IANA" 或 "Other"。
func (t Type) String() string {
	switch t {
	case TypeRegistry:
		return "IANA"
	case TypeOther:
		return "Other"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// MarshalText 实现 encoding.TextMarshaler。
func (t Type) MarshalText() ([]byte, error) {
	if t != TypeRegistry && t != TypeOther {
		return nil, fmt.Errorf("%w: %d", ErrInvalidType, uint8(t))
	}
	return []byte(t.String()), nil
}

// ParseType 解析来源类型。接受 "IANA"、"Registry"（均为 [TypeRegistry]）和 "Other"，
// 区分大小写；其他值返回 [ErrInvalidType]。
func ParseType(s string) (Type, error) {
	switch s {
	case "IANA", "Registry":
		return TypeRegistry, nil
	case "Other":
		return TypeOther, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
}

// Block 是特殊地址注册表中的一行。
//
// Block 由 [Build] 创建后不可修改；通过 [Registry] 获取的 *Block 在所有调用方之间共享，
// 调用方不得修改其字段。
type Block struct {
	// AddressBlock 是源数据中的 CIDR 文本（去除脚注后），如 "192.0.0.9/32"。
	AddressBlock string `json:"addressBlock"`

	// Prefix 是 AddressBlock 解析并掩码归一后的前缀。
	Prefix netip.Prefix `json:"-"`

	// Name 是人类可读标签，分类谓词依赖它，如 "Loopback"、"Private-Use"。
	// 名称不唯一。
	Name string `json:"name,omitempty"`

	// ReservedByProtocol 表示该块是否由地址族协议本身保留。
	ReservedByProtocol Bool `json:"reservedByProtocol"`

	// Destination 表示块内地址是否可作为目的地址。
	Destination Bool `json:"destination"`

	// Source 表示块内地址是否可作为源地址。
	Source Bool `json:"source"`

	// Forwardable 表示发往/来自该块的报文是否可被转发出本地网段。
	Forwardable Bool `json:"forwardable"`

	// GloballyReachable 表示该块是否在公网全局可达。未设置不等同于 false。
	GloballyReachable Bool `json:"globallyReachable"`

	// AllocationDate 是分配日期（如 "2006-02"），空表示未知。
	AllocationDate string `json:"allocationDate,omitempty"`

	// TerminationDate 是终止日期，空表示仍然有效。
	TerminationDate string `json:"terminationDate,omitempty"`

	// RFC 是出处引用，如 "[RFC1122], Section 3.2.1.3"。
	RFC string `json:"rfc,omitempty"`

	// Type 是条目来源。
	Type Type `json:"type"`
}

// IsIPv6 报告该块是否属于 IPv6：CIDR 文本包含一个以上 ':'。
func (b *Block) IsIPv6() bool {
	return xnet.TextVersion(b.AddressBlock) == xnet.V6
}

// IsIPv4 报告该块是否属于 IPv4。
func (b *Block) IsIPv4() bool {
	return !b.IsIPv6()
}

// Version 返回该块的地址族。
func (b *Block) Version() xnet.Version {
	if b.IsIPv6() {
		return xnet.V6
	}
	return xnet.V4
}

// Active 报告该块是否仍然有效（未设置终止日期）。
func (b *Block) Active() bool {
	return b.TerminationDate == ""
}

// Contains 报告 addr 是否位于该块之内（地址族必须一致）。
func (b *Block) Contains(addr netip.Addr) bool {
	return xnet.PrefixContains(b.Prefix, addr)
}

// String 返回 "AddressBlock (Name)"。
func (b *Block) String() string {
	if b.Name == "" {
		return b.AddressBlock
	}
	return b.AddressBlock + " (" + b.Name + ")"
}

// 源记录字段名。
const (
	FieldAddressBlock       = "addressBlock"
	FieldAllocationDate     = "allocationDate"
	FieldDestination        = "destination"
	FieldForwardable        = "forwardable"
	FieldGloballyReachable  = "globallyReachable"
	FieldName               = "name"
	FieldReservedByProtocol = "reservedByProtocol"
	FieldRFC                = "rfc"
	FieldSource             = "source"
	FieldTerminationDate    = "terminationDate"
	FieldType               = "type"
)

// Record 是一条原始源记录，键为字段名，值为未经处理的表格取值
// （字符串、布尔、整数或 nil）。
type Record map[string]any

// fieldSetters 是字段白名单，同时定义每个字段如何写入 Block。
//
// 设计决策: 用显式白名单代替反射按名赋值。未知键在构建期即被拒绝，
// 字段与赋值逻辑一一对应，新增字段时编译器能帮助发现遗漏。
var fieldSetters = map[string]func(b *Block, v any) error{
	FieldAddressBlock:       setString(func(b *Block) *string { return &b.AddressBlock }),
	FieldAllocationDate:     setString(func(b *Block) *string { return &b.AllocationDate }),
	FieldName:               setString(func(b *Block) *string { return &b.Name }),
	FieldRFC:                setString(func(b *Block) *string { return &b.RFC }),
	FieldTerminationDate:    setString(func(b *Block) *string { return &b.TerminationDate }),
	FieldDestination:        setBool(func(b *Block) *Bool { return &b.Destination }),
	FieldForwardable:        setBool(func(b *Block) *Bool { return &b.Forwardable }),
	FieldGloballyReachable:  setBool(func(b *Block) *Bool { return &b.GloballyReachable }),
	FieldReservedByProtocol: setBool(func(b *Block) *Bool { return &b.ReservedByProtocol }),
	FieldSource:             setBool(func(b *Block) *Bool { return &b.Source }),
	FieldType:               setType,
}

func setString(field func(*Block) *string) func(*Block, any) error {
	return func(b *Block, v any) error {
		s, err := coerceString(v)
		if err != nil {
			return err
		}
		*field(b) = s
		return nil
	}
}

func setBool(field func(*Block) *Bool) func(*Block, any) error {
	return func(b *Block, v any) error {
		x, err := coerceBool(v)
		if err != nil {
			return err
		}
		*field(b) = x
		return nil
	}
}

// setType 设置来源类型。null 保留零值 [TypeRegistry]。
func setType(b *Block, v any) error {
	if v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidType, v)
	}
	t, err := ParseType(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	b.Type = t
	return nil
}

// NewBlock 从一条源记录构建 [Block]。
//
// 每个字段先去除脚注，再识别 null/"N/A"，布尔字段再经宽松解析。
// 返回的错误：
//   - [ErrUnknownField]: 记录包含白名单之外的键
//   - [ErrInvalidType]: type 不是 IANA/Registry/Other
//   - [ErrInvalidBool] / [ErrInvalidString]: 字段取值无法转换
//   - [ErrInvalidBlock]: addressBlock 缺失或不是合法 CIDR
func NewBlock(rec Record) (*Block, error) {
	b := &Block{}
	// 按键名顺序处理，保证同一记录多处错误时报告结果确定
	for _, key := range slices.Sorted(maps.Keys(rec)) {
		set, ok := fieldSetters[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, key)
		}
		if err := set(b, rec[key]); err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
	}

	b.AddressBlock = strings.TrimSpace(b.AddressBlock)
	if b.AddressBlock == "" {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidBlock, FieldAddressBlock)
	}
	p, err := xnet.ParsePrefix(b.AddressBlock)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBlock, err)
	}
	// 文本族与解析结果必须一致，否则按文本选择候选集合时会漏掉该块
	if p.Addr().Is6() != b.IsIPv6() {
		return nil, fmt.Errorf("%w: %q address family mismatch", ErrInvalidBlock, b.AddressBlock)
	}
	b.Prefix = p
	return b, nil
}
