package xregistry

import "maps"

// Table 返回内置源表格的副本（IPv4 条目在前，IPv6 条目在后）。
//
// 数据主要来自 IANA IPv4/IPv6 Special-Purpose Address Registry，
// 多播条目（Type 为 Other）来自 RFC 4604，注册表本身未收录。
// 每次调用返回新的切片与记录，调用方可以自由修改而不影响 [Default]。
func Table() []Record {
	out := make([]Record, 0, len(ipv4Table)+len(ipv6Table))
	for _, rec := range ipv4Table {
		out = append(out, maps.Clone(rec))
	}
	for _, rec := range ipv6Table {
		out = append(out, maps.Clone(rec))
	}
	return out
}

// ipv4Table 是 IPv4 源表格。
// 重叠的块中更具体的必须在前：192.0.0.0/24 之内的单独分配先于它声明，
// 255.255.255.255/32 先于 240.0.0.0/4 声明。
var ipv4Table = []Record{
	{
		FieldAddressBlock:       "0.0.0.0/8",
		FieldAllocationDate:     "1981-09",
		FieldDestination:        false,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "This host on this network",
		FieldReservedByProtocol: true,
		FieldRFC:                "[RFC1122], Section 3.2.1.3",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "10.0.0.0/8",
		FieldAllocationDate:     "1996-02",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  false,
		FieldName:               "Private-Use",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC1918]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "100.64.0.0/10",
		FieldAllocationDate:     "2012-04",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  false,
		FieldName:               "Shared Address Space",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC6598]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "127.0.0.0/8",
		FieldAllocationDate:     "1981-09",
		FieldDestination:        false,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "Loopback",
		FieldReservedByProtocol: true,
		FieldRFC:                "[RFC1122], Section 3.2.1.3",
		FieldSource:             false,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "169.254.0.0/16",
		FieldAllocationDate:     "2005-05",
		FieldDestination:        true,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "Link Local",
		FieldReservedByProtocol: true,
		FieldRFC:                "[RFC3927]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "172.16.0.0/12",
		FieldAllocationDate:     "1996-02",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  false,
		FieldName:               "Private-Use",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC1918]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "192.0.0.0/29",
		FieldAllocationDate:     "2011-06",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  false,
		FieldName:               "IPv4 Service Continuity Prefix",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC7335]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "192.0.0.8/32",
		FieldAllocationDate:     "2015-03",
		FieldDestination:        false,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "IPv4 dummy address",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC7600]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "192.0.0.9/32",
		FieldAllocationDate:     "2015-10",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  true,
		FieldName:               "Port Control Protocol Anycast",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC7723]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "192.0.0.10/32",
		FieldAllocationDate:     "2017-02",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  true,
		FieldName:               "Traversal Using Relays around NAT Anycast",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC8155]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "192.0.0.170/32",
		FieldAllocationDate:     "2013-02",
		FieldDestination:        false,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "NAT64/DNS64 Discovery",
		FieldReservedByProtocol: true,
		FieldRFC:                "[RFC8880][RFC7050], Section 2.2",
		FieldSource:             false,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "192.0.0.171/32",
		FieldAllocationDate:     "2013-02",
		FieldDestination:        false,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "NAT64/DNS64 Discovery",
		FieldReservedByProtocol: true,
		FieldRFC:                "[RFC8880][RFC7050], Section 2.2",
		FieldSource:             false,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "192.0.0.0/24",
		FieldAllocationDate:     "2010-01",
		FieldDestination:        false,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "IETF Protocol Assignments",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC6890], Section 2.1",
		FieldSource:             false,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "192.0.2.0/24",
		FieldAllocationDate:     "2010-01",
		FieldDestination:        false,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "Documentation (TEST-NET-1)",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC5737]",
		FieldSource:             false,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "192.31.196.0/24",
		FieldAllocationDate:     "2014-12",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  true,
		FieldName:               "AS112-v4",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC7535]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "192.52.193.0/24",
		FieldAllocationDate:     "2014-12",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  true,
		FieldName:               "AMT",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC7450]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "192.88.99.0/24",
		FieldAllocationDate:     "2001-06",
		FieldDestination:        false,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "Deprecated (6to4 Relay Anycast)",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC7526]",
		FieldSource:             false,
		FieldTerminationDate:    "2015-03",
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "192.168.0.0/16",
		FieldAllocationDate:     "1996-02",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  false,
		FieldName:               "Private-Use",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC1918]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "192.175.48.0/24",
		FieldAllocationDate:     "1996-01",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  true,
		FieldName:               "Direct Delegation AS112 Service",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC7534]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "198.18.0.0/15",
		FieldAllocationDate:     "1999-03",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  false,
		FieldName:               "Benchmarking",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC2544]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "198.51.100.0/24",
		FieldAllocationDate:     "2010-01",
		FieldDestination:        false,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "Documentation (TEST-NET-2)",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC5737]",
		FieldSource:             false,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "203.0.113.0/24",
		FieldAllocationDate:     "2010-01",
		FieldDestination:        false,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "Documentation (TEST-NET-3)",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC5737]",
		FieldSource:             false,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "255.255.255.255/32",
		FieldAllocationDate:     "1984-10",
		FieldDestination:        true,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "Limited Broadcast",
		FieldReservedByProtocol: true,
		FieldRFC:                "[RFC8190] [RFC919], Section 7",
		FieldSource:             false,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "240.0.0.0/4",
		FieldAllocationDate:     "1989-08",
		FieldDestination:        false,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "Reserved",
		FieldReservedByProtocol: true,
		FieldRFC:                "[RFC1112], Section 4",
		FieldSource:             false,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "224.0.0.0/4",
		FieldAllocationDate:     nil,
		FieldDestination:        false,
		FieldForwardable:        "N/A",
		FieldGloballyReachable:  false,
		FieldName:               "Multicast",
		FieldReservedByProtocol: "N/A",
		FieldRFC:                "[RFC4604]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "Other",
	},
}

// ipv6Table 是 IPv6 源表格。
// 2001::/23 之内的分配（包括 TEREDO 2001::/32）先于 2001::/23 声明。
var ipv6Table = []Record{
	{
		FieldAddressBlock:       "::1/128",
		FieldAllocationDate:     "2006-02",
		FieldDestination:        false,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "Loopback Address",
		FieldReservedByProtocol: true,
		FieldRFC:                "[RFC4291]",
		FieldSource:             false,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "::/128",
		FieldAllocationDate:     "2006-02",
		FieldDestination:        false,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "Unspecified Address",
		FieldReservedByProtocol: true,
		FieldRFC:                "[RFC4291]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "::ffff:0:0/96",
		FieldAllocationDate:     "2006-02",
		FieldDestination:        false,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "IPv4-mapped Address",
		FieldReservedByProtocol: true,
		FieldRFC:                "[RFC4291]",
		FieldSource:             false,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "64:ff9b::/96",
		FieldAllocationDate:     "2010-10",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  true,
		FieldName:               "IPv4-IPv6 Translat.",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC6052]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "64:ff9b:1::/48",
		FieldAllocationDate:     "2017-06",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  false,
		FieldName:               "IPv4-IPv6 Translat.",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC8215]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "100::/64",
		FieldAllocationDate:     "2012-06",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  false,
		FieldName:               "Discard-Only Address Block",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC6666]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "2001:1::1/128",
		FieldAllocationDate:     "2015-10",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  true,
		FieldName:               "Port Control Protocol Anycast",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC7723]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "2001:1::2/128",
		FieldAllocationDate:     "2017-02",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  true,
		FieldName:               "Traversal Using Relays around NAT Anycast",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC8155]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "2001::/32",
		FieldAllocationDate:     "2006-01",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  "N/A [2]",
		FieldName:               "TEREDO",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC4380] [RFC8190]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "2001:2::/48",
		FieldAllocationDate:     "2008-04",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  false,
		FieldName:               "Benchmarking",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC5180][RFC Errata 1752]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "2001:3::/32",
		FieldAllocationDate:     "2014-12",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  true,
		FieldName:               "AMT",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC7450]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "2001:4:112::/48",
		FieldAllocationDate:     "2014-12",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  true,
		FieldName:               "AS112-v6",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC7535]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "2001:10::/28",
		FieldAllocationDate:     "2007-03",
		FieldDestination:        false,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "Deprecated (previously ORCHID)",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC4843]",
		FieldSource:             false,
		FieldTerminationDate:    "2014-03",
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "2001:20::/28",
		FieldAllocationDate:     "2014-07",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  true,
		FieldName:               "ORCHIDv2",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC7343]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "2001:30::/28",
		FieldAllocationDate:     "2022-12",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  true,
		FieldName:               "Drone Remote ID Protocol Entity Tags (DETs) Prefix",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC9374]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "2001::/23",
		FieldAllocationDate:     "2000-09",
		FieldDestination:        false,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "IETF Protocol Assignments",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC2928]",
		FieldSource:             false,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "2001:db8::/32",
		FieldAllocationDate:     "2004-07",
		FieldDestination:        false,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "Documentation",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC3849]",
		FieldSource:             false,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "2002::/16",
		FieldAllocationDate:     "2001-02",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  "N/A [3]",
		FieldName:               "6to4",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC3056]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "2620:4f:8000::/48",
		FieldAllocationDate:     "2011-05",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  true,
		FieldName:               "Direct Delegation AS112 Service",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC7534]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "3fff::/20",
		FieldAllocationDate:     "2024-07",
		FieldDestination:        false,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "Documentation",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC9637]",
		FieldSource:             false,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "5f00::/16",
		FieldAllocationDate:     "2024-04",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  false,
		FieldName:               "Segment Routing (SRv6) SIDs",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC9602]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "fc00::/7",
		FieldAllocationDate:     "2005-10",
		FieldDestination:        true,
		FieldForwardable:        true,
		FieldGloballyReachable:  false,
		FieldName:               "Unique-Local",
		FieldReservedByProtocol: false,
		FieldRFC:                "[RFC4193] [RFC8190]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "fe80::/10",
		FieldAllocationDate:     "2006-02",
		FieldDestination:        true,
		FieldForwardable:        false,
		FieldGloballyReachable:  false,
		FieldName:               "Link-Local Unicast",
		FieldReservedByProtocol: true,
		FieldRFC:                "[RFC4291]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "IANA",
	},
	{
		FieldAddressBlock:       "ff00::/8",
		FieldAllocationDate:     nil,
		FieldDestination:        false,
		FieldForwardable:        "N/A",
		FieldGloballyReachable:  false,
		FieldName:               "Multicast",
		FieldReservedByProtocol: "N/A",
		FieldRFC:                "[RFC4604]",
		FieldSource:             true,
		FieldTerminationDate:    nil,
		FieldType:               "Other",
	},
}
