package xnet_test

import (
	"errors"
	"fmt"
	"net/netip"

	"github.com/omeyang/xipclass/pkg/util/xnet"
)

func ExampleContains() {
	ok, err := xnet.Contains("192.168.1.1", "192.168.0.0/16")
	fmt.Println(ok, err)

	ok, err = xnet.Contains("::ffff:192.168.1.1", "192.168.0.0/16")
	fmt.Println(ok, err)

	_, err = xnet.Contains("192.168.1", "192.168.0.0/16")
	fmt.Println(errors.Is(err, xnet.ErrInvalidAddress))
	// Output:
	// true <nil>
	// false <nil>
	// true
}

func ExampleTextVersion() {
	fmt.Println(xnet.TextVersion("10.0.0.1"))
	fmt.Println(xnet.TextVersion("::ffff:10.0.0.1"))
	fmt.Println(xnet.AddrVersion(netip.MustParseAddr("::ffff:10.0.0.1")))
	// Output:
	// IPv4
	// IPv6
	// IPv4
}

func ExamplePrefixSet() {
	set, err := xnet.PrefixSet([]netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("10.1.0.0/16"),
		netip.MustParsePrefix("192.168.0.0/16"),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(set.Prefixes()))
	fmt.Println(set.Contains(netip.MustParseAddr("10.1.2.3")))
	// Output:
	// 2
	// true
}
