package scenario

import (
	"fmt"

	"github.com/virtlab/labgen/internal/config"
)

// Scenario is the full declarative topology for one lab environment.
// It exclusively owns its networks and systems; systems hold non-owning
// references into the network collection after wiring.
type Scenario struct {
	Name     string
	Networks []*Network
	Systems  []*System
}

// FromValue builds a Scenario from a decoded configuration document.
// Networks are built first in input order and checked for name
// uniqueness, then systems the same way. Systems are left unwired;
// call Wire to resolve references and lease addresses.
func FromValue(doc config.Value) (*Scenario, error) {
	scenarioValue, ok := doc.Get("scenario")
	if !ok {
		return nil, fmt.Errorf("%w: could not get scenario from configuration", ErrMalformedInput)
	}
	nameValue, ok := scenarioValue.Get("name")
	if !ok {
		return nil, fmt.Errorf("%w: could not read name of scenario from configuration", ErrMalformedInput)
	}
	name, ok := nameValue.Str()
	if !ok {
		return nil, fmt.Errorf("%w: could not read name of scenario as a string", ErrMalformedInput)
	}

	s := &Scenario{Name: name}

	networksValue, ok := doc.Get("networks")
	if !ok {
		return nil, fmt.Errorf("%w: could not read networks from configuration", ErrMalformedInput)
	}
	networkEntries, ok := networksValue.Array()
	if !ok {
		return nil, fmt.Errorf("%w: could not read networks from configuration as an array", ErrMalformedInput)
	}
	for _, entry := range networkEntries {
		network, err := NetworkFromValue(entry)
		if err != nil {
			return nil, err
		}
		s.Networks = append(s.Networks, network)
	}

	if err := s.checkNetworkNamesUnique(); err != nil {
		return nil, err
	}

	systemsValue, ok := doc.Get("systems")
	if !ok {
		return nil, fmt.Errorf("%w: could not get systems from configuration", ErrMalformedInput)
	}
	systemEntries, ok := systemsValue.Array()
	if !ok {
		return nil, fmt.Errorf("%w: could not get systems from configuration as an array", ErrMalformedInput)
	}
	for _, entry := range systemEntries {
		system, err := SystemFromValue(entry)
		if err != nil {
			return nil, err
		}
		s.Systems = append(s.Systems, system)
	}

	if err := s.checkSystemNamesUnique(); err != nil {
		return nil, err
	}

	return s, nil
}

// Wire resolves and leases networking for every system, in scenario
// order. The first failure aborts and is returned as-is; the scenario
// must then be treated as invalid.
func (s *Scenario) Wire() error {
	for _, system := range s.Systems {
		if err := system.Wire(s.Networks); err != nil {
			return err
		}
	}
	return nil
}

// Validate re-checks the scenario's invariants without mutating it:
// name uniqueness on both collections and every network's own rules.
// It never fails on a scenario built by FromValue.
func (s *Scenario) Validate() error {
	if err := s.checkNetworkNamesUnique(); err != nil {
		return err
	}
	if err := s.checkSystemNamesUnique(); err != nil {
		return err
	}
	for _, network := range s.Networks {
		if err := network.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// checkNetworkNamesUnique fails on the first network name, in input
// order, that appears more than once.
func (s *Scenario) checkNetworkNamesUnique() error {
	seen := make(map[string]bool, len(s.Networks))
	for _, network := range s.Networks {
		if seen[network.Name] {
			return fmt.Errorf("%w: multiple networks parsed with name %q, network names must be unique",
				ErrDuplicateName, network.Name)
		}
		seen[network.Name] = true
	}
	return nil
}

func (s *Scenario) checkSystemNamesUnique() error {
	seen := make(map[string]bool, len(s.Systems))
	for _, system := range s.Systems {
		if seen[system.Name] {
			return fmt.Errorf("%w: multiple systems parsed with name %q, system names must be unique",
				ErrDuplicateName, system.Name)
		}
		seen[system.Name] = true
	}
	return nil
}
