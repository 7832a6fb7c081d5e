package xclassify

import (
	"errors"
	"testing"

	"github.com/omeyang/xipclass/pkg/util/xnet"
)

func FuzzAnalysis(f *testing.F) {
	for _, ip := range []string{
		"127.0.0.1", "::1", "0:0:0:0:0:0:0:1", "fe80::1%eth0", "::ffff:10.0.0.1",
		"192.0.0.9", "8.8.8.8", "", "not-an-ip", "1.2.3.4/32",
	} {
		f.Add(ip)
	}

	f.Fuzz(func(t *testing.T, ip string) {
		a := New(ip)
		b, err := a.Block()
		if err != nil {
			if !errors.Is(err, ErrClassify) {
				t.Fatalf("Block(%q) error %v does not wrap ErrClassify", ip, err)
			}
			if a.processed {
				t.Fatalf("failed lookup for %q was cached", ip)
			}
			return
		}

		again, err := a.Block()
		if err != nil || again != b {
			t.Fatalf("Block(%q) not idempotent", ip)
		}

		res, err := a.Result()
		if err != nil {
			t.Fatalf("Result(%q) = %v after successful lookup", ip, err)
		}
		if res.Special != (b != nil) {
			t.Fatalf("Special(%q) = %v, block %v", ip, res.Special, b)
		}
		if b == nil && !res.Global {
			t.Fatalf("unmatched %q must be global", ip)
		}
		if b != nil {
			if b.Version() != xnet.TextVersion(ip) {
				t.Fatalf("%q matched %s from the other family", ip, b)
			}
			if res.Global != b.GloballyReachable.IsTrue() {
				t.Fatalf("Global(%q) = %v, want %v", ip, res.Global, b.GloballyReachable.IsTrue())
			}
		}
	})
}
