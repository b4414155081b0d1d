package render

import (
	"fmt"
	"strings"

	"github.com/virtlab/labgen/internal/scenario"
)

// Vagrantfile renders a wired scenario into Vagrantfile text. Systems
// are emitted in scenario order, each system's network lines in its
// declared NIC order, so the output is fully reproducible.
//
// Systems must already be wired; rendering an unwired or failed system
// is an error rather than silently emitting a host without addresses.
func Vagrantfile(s *scenario.Scenario) (string, error) {
	b := NewBuilder().WithStyle(Spaces).WithWidth(4)

	b.Add(`Vagrant.configure("2") do |config|`)
	b.Indent()

	for _, system := range s.Systems {
		if system.State() != scenario.Wired {
			return "", fmt.Errorf("system %q has not been wired, cannot render networking", system.Name)
		}

		b.Add(fmt.Sprintf("config.vm.define %q do |%s|", system.Name, blockVariable(system.Name)))
		b.Indent()

		b.Add(fmt.Sprintf("%s.vm.box = %q", system.Name, system.BaseBox))

		// Track how many leases of each network this system has
		// consumed so repeated NIC references advance through the
		// system's lease list in declared order.
		nicIndex := make(map[string]int)
		for _, network := range system.Networks {
			switch network.Type {
			case scenario.Internal:
				lease := system.Leases[network.Name][nicIndex[network.Name]]
				nicIndex[network.Name]++
				b.Add(fmt.Sprintf("%s.vm.network \"private_network\", ip: %q, virtualbox__intnet: %q",
					system.Name, lease.String(), network.Name))
			case scenario.Public:
				b.Add(fmt.Sprintf("%s.vm.network \"public_network\"", system.Name))
			}
		}

		b.Outdent()
		b.Add("end")
	}

	b.Outdent()
	b.Add("end")

	return b.String(), nil
}

// blockVariable derives the Ruby block variable for a system's define
// block by case-folding its name.
func blockVariable(name string) string {
	return strings.ToLower(name)
}
