package xnet

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddr(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		addr, err := ParseAddr("192.168.1.1")
		require.NoError(t, err)
		assert.Equal(t, netip.MustParseAddr("192.168.1.1"), addr)
	})

	t.Run("long form IPv6", func(t *testing.T) {
		addr, err := ParseAddr("0:0:0:0:0:0:0:1")
		require.NoError(t, err)
		assert.Equal(t, netip.IPv6Loopback(), addr)
	})

	t.Run("zone dropped", func(t *testing.T) {
		addr, err := ParseAddr("fe80::1%eth0")
		require.NoError(t, err)
		assert.Empty(t, addr.Zone())
		assert.Equal(t, netip.MustParseAddr("fe80::1"), addr)
	})

	for _, in := range []string{"", " ", "not-an-ip", "256.0.0.1", "1.2.3", "::g", "10.0.0.0/8", "1.2.3.4:80"} {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := ParseAddr(in)
			assert.ErrorIs(t, err, ErrInvalidAddress)
		})
	}
}

func TestParsePrefix(t *testing.T) {
	t.Run("masked", func(t *testing.T) {
		p, err := ParsePrefix("2001:1::1/128")
		require.NoError(t, err)
		assert.Equal(t, "2001:1::1/128", p.String())

		p, err = ParsePrefix("192.0.2.77/24")
		require.NoError(t, err)
		assert.Equal(t, "192.0.2.0/24", p.String())
	})

	t.Run("surrounding space", func(t *testing.T) {
		p, err := ParsePrefix(" 10.0.0.0/8 ")
		require.NoError(t, err)
		assert.Equal(t, "10.0.0.0/8", p.String())
	})

	for _, in := range []string{"", "10.0.0.0", "10.0.0.0/33", "::/129", "bogus/8", "fe80::%eth0/10"} {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := ParsePrefix(in)
			assert.ErrorIs(t, err, ErrInvalidPrefix)
		})
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		addr string
		cidr string
		want bool
	}{
		// IPv4
		{"192.168.1.1", "192.168.0.0/16", true},
		{"192.168.255.255", "192.168.0.0/16", true},
		{"192.169.0.0", "192.168.0.0/16", false},
		{"169.239.202.202", "169.254.0.0/16", false}, // 首段相同但不在块内
		{"172.98.193.42", "172.16.0.0/12", false},

		// 单主机前缀
		{"192.0.0.9", "192.0.0.9/32", true},
		{"192.0.0.10", "192.0.0.9/32", false},
		{"::1", "::1/128", true},
		{"0:0:0:0:0:0:0:1", "::1/128", true},
		{"::2", "::1/128", false},

		// IPv6
		{"2001:db8:1:3::2", "2001:db8::/32", true},
		{"fe80::6450:6a14:93ba:de09", "fe80::/10", true},
		{"fd11:1111:1111::1", "fc00::/7", true},
		{"2001:4860:4860::8888", "2001::/23", false},

		// 跨族永不匹配
		{"10.0.0.1", "::/0", false},
		{"::1", "0.0.0.0/0", false},
		{"::ffff:10.0.0.1", "10.0.0.0/8", false},
		{"::ffff:10.0.0.1", "::ffff:0:0/96", true},

		// zone 不影响包含判断
		{"fe80::1%eth0", "fe80::/10", true},
	}

	for _, tt := range tests {
		t.Run(tt.addr+" in "+tt.cidr, func(t *testing.T) {
			got, err := Contains(tt.addr, tt.cidr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContains_Errors(t *testing.T) {
	_, err := Contains("", "10.0.0.0/8")
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = Contains("10.0.0.300", "10.0.0.0/8")
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = Contains("10.0.0.1", "10.0.0.0")
	assert.ErrorIs(t, err, ErrInvalidPrefix)

	_, err = Contains("10.0.0.1", "")
	assert.ErrorIs(t, err, ErrInvalidPrefix)
}

func TestPrefixContains_Invalid(t *testing.T) {
	p := netip.MustParsePrefix("10.0.0.0/8")
	assert.False(t, PrefixContains(netip.Prefix{}, netip.MustParseAddr("10.0.0.1")))
	assert.False(t, PrefixContains(p, netip.Addr{}))
}

func TestPrefixSet(t *testing.T) {
	set, err := PrefixSet([]netip.Prefix{
		netip.MustParsePrefix("192.0.0.0/24"),
		netip.MustParsePrefix("192.0.0.9/32"), // 已被 /24 覆盖
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("fc00::/7"),
	})
	require.NoError(t, err)

	assert.True(t, set.Contains(netip.MustParseAddr("192.0.0.9")))
	assert.True(t, set.Contains(netip.MustParseAddr("10.1.2.3")))
	assert.True(t, set.Contains(netip.MustParseAddr("fd00::1")))
	assert.False(t, set.Contains(netip.MustParseAddr("8.8.8.8")))
	assert.False(t, set.Contains(netip.MustParseAddr("::ffff:10.1.2.3")))
	assert.Len(t, set.Prefixes(), 3)
}

func TestPrefixSet_Empty(t *testing.T) {
	set, err := PrefixSet(nil)
	require.NoError(t, err)
	require.NotNil(t, set)
	assert.False(t, set.Contains(netip.MustParseAddr("10.0.0.1")))
}

func TestPrefixSet_InvalidPrefix(t *testing.T) {
	_, err := PrefixSet([]netip.Prefix{netip.MustParsePrefix("10.0.0.0/8"), {}})
	assert.ErrorIs(t, err, ErrInvalidPrefix)
}
