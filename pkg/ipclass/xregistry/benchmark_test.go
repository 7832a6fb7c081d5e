package xregistry

import (
	"net/netip"
	"testing"

	"github.com/omeyang/xipclass/pkg/util/xnet"
)

func BenchmarkBuild(b *testing.B) {
	records := Table()
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Build(records); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCovers(b *testing.B) {
	reg := MustBuild(Table())
	addrs := []netip.Addr{
		netip.MustParseAddr("8.8.8.8"),
		netip.MustParseAddr("192.168.1.1"),
		netip.MustParseAddr("2606:4700::1111"),
		netip.MustParseAddr("fe80::1"),
	}
	b.ReportAllocs()
	for b.Loop() {
		for _, a := range addrs {
			reg.Covers(a)
		}
	}
}

func BenchmarkBlocksScan(b *testing.B) {
	reg := MustBuild(Table())
	addr := netip.MustParseAddr("203.0.113.7")
	b.ReportAllocs()
	for b.Loop() {
		for blk := range reg.Blocks(xnet.V4) {
			if blk.Contains(addr) {
				break
			}
		}
	}
}

func BenchmarkStripFootnotes(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		StripFootnotes("[RFC1149][RFC2324][42]")
	}
}
