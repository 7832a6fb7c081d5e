package xnet

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionString(t *testing.T) {
	assert.Equal(t, "IPv4", V4.String())
	assert.Equal(t, "IPv6", V6.String())
	assert.Equal(t, "unknown", V0.String())
	assert.Equal(t, "unknown", Version(99).String())
}

func TestAddrVersion(t *testing.T) {
	assert.Equal(t, V4, AddrVersion(netip.MustParseAddr("192.168.1.1")))
	assert.Equal(t, V6, AddrVersion(netip.MustParseAddr("::1")))
	assert.Equal(t, V6, AddrVersion(netip.MustParseAddr("2001:db8::1")))

	// IPv4-mapped IPv6 地址视为 V4
	assert.Equal(t, V4, AddrVersion(netip.MustParseAddr("::ffff:192.168.1.1")))

	// 无效地址返回 V0
	assert.Equal(t, V0, AddrVersion(netip.Addr{}))
}

func TestTextVersion(t *testing.T) {
	tests := []struct {
		in   string
		want Version
	}{
		{"", V0},
		{"127.0.0.1", V4},
		{"10.0.0.0/8", V4},
		{"::1", V6},
		{"0:0:0:0:0:0:0:1", V6},
		{"::ffff:192.168.1.1", V6}, // 文本族，不做映射归一
		{"::ffff:0:0/96", V6},
		{"fe80::1%eth0", V6},
		// 单个冒号不足以判为 IPv6
		{"1.2.3.4:80", V4},
		{"not-an-ip", V4},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TextVersion(tt.in))
		})
	}
}
