package scenario

import (
	"fmt"
	"net/netip"

	"github.com/virtlab/labgen/internal/config"
	"github.com/virtlab/labgen/internal/netutil"
)

// NetworkType distinguishes bridged public connectivity from private
// internal segments with a managed address pool.
type NetworkType string

const (
	// Public networks carry no subnet and lease no addresses.
	Public NetworkType = "Public"
	// Internal networks own a private subnet and a finite host pool.
	Internal NetworkType = "Internal"
)

// Network is one network segment of a scenario. Internal networks own
// their subnet and the lease bookkeeping for its usable host addresses.
type Network struct {
	Name   string
	Type   NetworkType
	Subnet netip.Prefix // zero value for Public networks

	pool   []netip.Addr // materialized on first lease
	leased map[netip.Addr]bool
}

// NetworkFromValue builds a validated Network from one entry of the
// configuration's networks array. Checks run in a fixed order so the
// first failure reported is deterministic: name, type, then the
// type-specific subnet rules. An invalid entry never produces a
// partially built Network.
func NetworkFromValue(v config.Value) (*Network, error) {
	nameValue, ok := v.Get("name")
	if !ok {
		return nil, fmt.Errorf("%w: could not read name of network from configuration", ErrMalformedInput)
	}
	name, ok := nameValue.Str()
	if !ok {
		return nil, fmt.Errorf("%w: could not read name of network as a string", ErrMalformedInput)
	}

	typeValue, ok := v.Get("type")
	if !ok {
		return nil, fmt.Errorf("%w: could not read type of network %q from configuration", ErrMalformedInput, name)
	}
	typeName, ok := typeValue.Str()
	if !ok {
		return nil, fmt.Errorf("%w: could not read type of network %q as a string", ErrMalformedInput, name)
	}

	switch NetworkType(typeName) {
	case Internal:
		subnet, err := internalSubnet(v, name)
		if err != nil {
			return nil, err
		}
		return &Network{
			Name:   name,
			Type:   Internal,
			Subnet: subnet,
			leased: make(map[netip.Addr]bool),
		}, nil
	case Public:
		if v.Has("subnet") {
			return nil, fmt.Errorf("%w: network %q is Public and must not define a subnet", ErrInvalidTopology, name)
		}
		return &Network{Name: name, Type: Public}, nil
	default:
		return nil, fmt.Errorf("%w: network %q has unknown type %q (must be %q or %q)",
			ErrMalformedInput, name, typeName, Public, Internal)
	}
}

// internalSubnet reads and validates the subnet of an Internal network:
// present, a string, a parseable IPv4 CIDR, large enough for two usable
// hosts, and fully contained in one of the reserved private ranges.
func internalSubnet(v config.Value, name string) (netip.Prefix, error) {
	subnetValue, ok := v.Get("subnet")
	if !ok {
		return netip.Prefix{}, fmt.Errorf("%w: network %q is Internal but defines no subnet", ErrMalformedInput, name)
	}
	subnetStr, ok := subnetValue.Str()
	if !ok {
		return netip.Prefix{}, fmt.Errorf("%w: could not read subnet of network %q as a string", ErrMalformedInput, name)
	}

	subnet, err := netutil.ParsePrefix(subnetStr)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: network %q: %v", ErrMalformedInput, name, err)
	}

	if subnet.Bits() > netutil.MaxHostPrefixLen {
		return netip.Prefix{}, fmt.Errorf("%w: network %q subnet %s is too small, a subnet must hold at least 2 usable host addresses (/%d or larger)",
			ErrInvalidTopology, name, subnetStr, netutil.MaxHostPrefixLen)
	}

	if !netutil.IsPrivate(subnet) {
		return netip.Prefix{}, fmt.Errorf("%w: network %q subnet %s is not fully contained in a private address range (10.0.0.0/8, 172.16.0.0/12 or 192.168.0.0/16)",
			ErrInvalidTopology, name, subnetStr)
	}

	return subnet, nil
}

// LeaseAddress claims the lowest usable host address not yet leased on
// an Internal network. Requesting a lease on a Public network is a
// no-op and returns an invalid address with no error.
func (n *Network) LeaseAddress() (netip.Addr, error) {
	if n.Type == Public {
		return netip.Addr{}, nil
	}

	for _, addr := range n.hosts() {
		if !n.leased[addr] {
			n.leased[addr] = true
			return addr, nil
		}
	}

	return netip.Addr{}, fmt.Errorf("%w: network %q has no usable addresses left in %s (capacity %d)",
		ErrPoolExhausted, n.Name, n.Subnet, len(n.pool))
}

// Capacity returns the number of leasable host addresses. Public
// networks have no pool and report zero.
func (n *Network) Capacity() int {
	if n.Type == Public {
		return 0
	}
	return netutil.HostCount(n.Subnet)
}

// LeasedCount returns how many addresses have been claimed so far.
func (n *Network) LeasedCount() int {
	return len(n.leased)
}

// Validate re-checks the network's invariants. It never mutates the
// network and never fails on a network built by NetworkFromValue; it
// exists so callers can assert model integrity after wiring.
func (n *Network) Validate() error {
	switch n.Type {
	case Public:
		if n.Subnet.IsValid() {
			return fmt.Errorf("%w: network %q is Public and must not define a subnet", ErrInvalidTopology, n.Name)
		}
	case Internal:
		if !n.Subnet.IsValid() {
			return fmt.Errorf("%w: network %q is Internal but defines no subnet", ErrMalformedInput, n.Name)
		}
		if n.Subnet.Bits() > netutil.MaxHostPrefixLen {
			return fmt.Errorf("%w: network %q subnet %s is too small", ErrInvalidTopology, n.Name, n.Subnet)
		}
		if !netutil.IsPrivate(n.Subnet) {
			return fmt.Errorf("%w: network %q subnet %s is not fully contained in a private address range", ErrInvalidTopology, n.Name, n.Subnet)
		}
		for addr := range n.leased {
			if !n.Subnet.Contains(addr) {
				return fmt.Errorf("%w: network %q leased %s outside its subnet %s", ErrInvalidTopology, n.Name, addr, n.Subnet)
			}
		}
	default:
		return fmt.Errorf("%w: network %q has unknown type %q", ErrMalformedInput, n.Name, n.Type)
	}
	return nil
}

// hosts materializes the ordered usable-host sequence on first use.
func (n *Network) hosts() []netip.Addr {
	if n.pool == nil {
		n.pool = netutil.HostAddresses(n.Subnet)
	}
	return n.pool
}
