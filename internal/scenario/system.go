package scenario

import (
	"fmt"
	"net/netip"

	"github.com/virtlab/labgen/internal/config"
)

// WireState tracks a system's wiring lifecycle. A system is wired
// exactly once; a failed wiring leaves the lease map unusable.
type WireState int

const (
	// Unwired systems hold only declared network names.
	Unwired WireState = iota
	// Wiring is the in-progress state during reference resolution.
	Wiring
	// Wired systems hold resolved networks and their leased addresses.
	Wired
	// WireFailed is terminal: resolution or leasing failed.
	WireFailed
)

// System is one host of a scenario. Before wiring it only carries the
// network names declared in configuration; wiring resolves those names
// against the scenario's networks and leases one address per internal
// reference.
type System struct {
	Name         string
	BaseBox      string
	NetworkNames []string // declared references, order preserved

	// Populated by Wire.
	Networks []*Network
	Leases   map[string][]netip.Addr // network name -> addresses in declared order

	state WireState
}

// SystemFromValue builds a System from one entry of the configuration's
// systems array. Network references are kept as raw names; resolution
// happens later in Wire.
func SystemFromValue(v config.Value) (*System, error) {
	nameValue, ok := v.Get("name")
	if !ok {
		return nil, fmt.Errorf("%w: could not read name of system from configuration", ErrMalformedInput)
	}
	name, ok := nameValue.Str()
	if !ok {
		return nil, fmt.Errorf("%w: could not read name of system as a string", ErrMalformedInput)
	}

	boxValue, ok := v.Get("base_box")
	if !ok {
		return nil, fmt.Errorf("%w: could not read base_box of system %q from configuration", ErrMalformedInput, name)
	}
	baseBox, ok := boxValue.Str()
	if !ok {
		return nil, fmt.Errorf("%w: could not read base_box of system %q as a string", ErrMalformedInput, name)
	}

	networksValue, ok := v.Get("networks")
	if !ok {
		return nil, fmt.Errorf("%w: could not read networks of system %q from configuration", ErrMalformedInput, name)
	}
	entries, ok := networksValue.Array()
	if !ok {
		return nil, fmt.Errorf("%w: could not read networks of system %q as an array", ErrMalformedInput, name)
	}

	names := make([]string, 0, len(entries))
	for i, entry := range entries {
		netName, ok := entry.Str()
		if !ok {
			return nil, fmt.Errorf("%w: could not read network reference %d of system %q as a string", ErrMalformedInput, i, name)
		}
		names = append(names, netName)
	}

	return &System{
		Name:         name,
		BaseBox:      baseBox,
		NetworkNames: names,
	}, nil
}

// State returns the system's wiring state.
func (s *System) State() WireState {
	return s.state
}

// Wire resolves every declared network reference against networks by
// exact name and leases an address for each internal reference, in
// declared order. The Nth reference to a network yields the Nth element
// of that network's lease list. Wire runs at most once; any failure is
// terminal and the partially filled lease map must not be used.
func (s *System) Wire(networks []*Network) error {
	if s.state != Unwired {
		return fmt.Errorf("system %q has already been wired", s.Name)
	}

	s.state = Wiring
	s.Leases = make(map[string][]netip.Addr)

	for _, name := range s.NetworkNames {
		network := findNetwork(networks, name)
		if network == nil {
			s.state = WireFailed
			return fmt.Errorf("%w: system %q is configured to use network %q but no network with that name could be found",
				ErrUnresolvedNetwork, s.Name, name)
		}

		s.Networks = append(s.Networks, network)

		if network.Type != Internal {
			continue
		}

		addr, err := network.LeaseAddress()
		if err != nil {
			s.state = WireFailed
			return fmt.Errorf("system %q: %w", s.Name, err)
		}
		s.Leases[name] = append(s.Leases[name], addr)
	}

	s.state = Wired
	return nil
}

func findNetwork(networks []*Network, name string) *Network {
	for _, n := range networks {
		if n.Name == name {
			return n
		}
	}
	return nil
}
