// Package netutil provides IPv4 subnet math for scenario networks.
//
// All helpers operate on net/netip prefixes. Only IPv4 is supported;
// IPv6 prefixes are rejected by the callers during scenario validation.
package netutil

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// MaxHostPrefixLen is the longest prefix that still leaves room for at
// least two usable host addresses. /31 and /32 subnets carry no usable
// network/broadcast-excluded hosts and are rejected.
const MaxHostPrefixLen = 30

// privateIPv4 covers the reserved private ranges a scenario subnet must
// fall inside: 10.0.0.0/8, 172.16.0.0/12 and 192.168.0.0/16.
var privateIPv4 = mustIPSet(
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("172.16.0.0/12"),
	netip.MustParsePrefix("192.168.0.0/16"),
)

func mustIPSet(prefixes ...netip.Prefix) *netipx.IPSet {
	var b netipx.IPSetBuilder
	for _, p := range prefixes {
		b.AddPrefix(p)
	}
	set, err := b.IPSet()
	if err != nil {
		panic(err)
	}
	return set
}

// IsPrivate reports whether prefix is fully contained in one of the
// reserved private ranges. Containment is strict: a prefix that starts
// inside a private range but extends past its boundary is not private.
func IsPrivate(prefix netip.Prefix) bool {
	return privateIPv4.ContainsPrefix(prefix.Masked())
}

// ParsePrefix parses an IPv4 CIDR string. The address part is kept as
// written; callers mask it where subnet-relative math needs it.
func ParsePrefix(s string) (netip.Prefix, error) {
	prefix, err := netip.ParsePrefix(s)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("invalid CIDR %q: %w", s, err)
	}
	if !prefix.Addr().Is4() {
		return netip.Prefix{}, fmt.Errorf("only IPv4 subnets are supported, got %q", s)
	}
	return prefix, nil
}

// HostAddresses returns the ordered usable host addresses of prefix,
// excluding the network and broadcast addresses. The prefix length must
// not exceed MaxHostPrefixLen; longer prefixes yield no hosts.
func HostAddresses(prefix netip.Prefix) []netip.Addr {
	if prefix.Bits() > MaxHostPrefixLen {
		return nil
	}

	r := netipx.RangeOfPrefix(prefix.Masked())
	first := r.From().Next() // skip network address
	last := r.To()           // broadcast address, excluded below

	hosts := make([]netip.Addr, 0, hostCount(prefix))
	for addr := first; addr.Less(last); addr = addr.Next() {
		hosts = append(hosts, addr)
	}
	return hosts
}

// HostCount returns the number of usable host addresses in prefix.
func HostCount(prefix netip.Prefix) int {
	if prefix.Bits() > MaxHostPrefixLen {
		return 0
	}
	return hostCount(prefix)
}

func hostCount(prefix netip.Prefix) int {
	return 1<<(32-prefix.Bits()) - 2
}
