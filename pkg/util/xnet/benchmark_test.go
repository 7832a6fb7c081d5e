package xnet

import (
	"net/netip"
	"testing"
)

func BenchmarkContains(b *testing.B) {
	b.Run("string", func(b *testing.B) {
		for b.Loop() {
			_, _ = Contains("192.168.1.1", "192.168.0.0/16")
		}
	})
	b.Run("parsed", func(b *testing.B) {
		p := netip.MustParsePrefix("192.168.0.0/16")
		a := netip.MustParseAddr("192.168.1.1")
		for b.Loop() {
			_ = PrefixContains(p, a)
		}
	})
}

func BenchmarkPrefixSetContains(b *testing.B) {
	set, err := PrefixSet([]netip.Prefix{
		netip.MustParsePrefix("0.0.0.0/8"),
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("100.64.0.0/10"),
		netip.MustParsePrefix("127.0.0.0/8"),
		netip.MustParsePrefix("169.254.0.0/16"),
		netip.MustParsePrefix("172.16.0.0/12"),
		netip.MustParsePrefix("192.168.0.0/16"),
		netip.MustParsePrefix("224.0.0.0/4"),
	})
	if err != nil {
		b.Fatal(err)
	}
	a := netip.MustParseAddr("8.8.8.8")
	for b.Loop() {
		_ = set.Contains(a)
	}
}
