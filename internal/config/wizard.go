package config

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/virtlab/labgen/internal/netutil"
)

// ScenarioDoc is the serializable shape of a scenario file, used when
// writing a starter scenario from the wizard.
type ScenarioDoc struct {
	Scenario ScenarioMeta `yaml:"scenario"`
	Networks []NetworkDoc `yaml:"networks"`
	Systems  []SystemDoc  `yaml:"systems"`
}

// ScenarioMeta names the scenario.
type ScenarioMeta struct {
	Name string `yaml:"name"`
}

// NetworkDoc is one network entry. Subnet is omitted for Public
// networks, which must not carry one.
type NetworkDoc struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Subnet string `yaml:"subnet,omitempty"`
}

// SystemDoc is one system entry.
type SystemDoc struct {
	Name     string   `yaml:"name"`
	BaseBox  string   `yaml:"base_box"`
	Networks []string `yaml:"networks"`
}

// WizardResult holds the user's choices from the wizard.
type WizardResult struct {
	ScenarioName string
	NetworkName  string
	Subnet       string
	SystemCount  int
	BaseBox      string
}

// RunWizard asks for a minimal scenario: a name, one internal network
// and a handful of identical systems attached to it.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		// Defaults
		NetworkName: "LAN",
		Subnet:      "192.168.56.0/24",
		SystemCount: 2,
		BaseBox:     "debian/bookworm64",
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Scenario name").
				Description("A name for this lab environment").
				Placeholder("my-lab").
				Value(&result.ScenarioName).
				Validate(validateRequired("scenario name")),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Network name").
				Description("The internal network your systems share").
				Value(&result.NetworkName).
				Validate(validateRequired("network name")),

			huh.NewInput().
				Title("Subnet").
				Description("Private IPv4 CIDR, /30 or larger (e.g. 192.168.56.0/24)").
				Value(&result.Subnet).
				Validate(validateSubnet),
		),

		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Number of systems").
				Options(
					huh.NewOption("1 system", 1),
					huh.NewOption("2 systems", 2),
					huh.NewOption("3 systems", 3),
					huh.NewOption("4 systems", 4),
					huh.NewOption("5 systems", 5),
				).
				Value(&result.SystemCount),

			huh.NewSelect[string]().
				Title("Base box").
				Description("The Vagrant box every system starts from").
				Options(
					huh.NewOption("Debian 12 (debian/bookworm64)", "debian/bookworm64"),
					huh.NewOption("Ubuntu 22.04 (ubuntu/jammy64)", "ubuntu/jammy64"),
					huh.NewOption("Rocky Linux 9 (generic/rocky9)", "generic/rocky9"),
					huh.NewOption("Alpine (generic/alpine319)", "generic/alpine319"),
				).
				Value(&result.BaseBox),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToDocument converts the wizard result to a scenario document with one
// system entry per requested system, all attached to the one network.
func (r *WizardResult) ToDocument() *ScenarioDoc {
	doc := &ScenarioDoc{
		Scenario: ScenarioMeta{Name: r.ScenarioName},
		Networks: []NetworkDoc{{
			Name:   r.NetworkName,
			Type:   "Internal",
			Subnet: r.Subnet,
		}},
	}

	for i := 1; i <= r.SystemCount; i++ {
		doc.Systems = append(doc.Systems, SystemDoc{
			Name:     fmt.Sprintf("system-%d", i),
			BaseBox:  r.BaseBox,
			Networks: []string{r.NetworkName},
		})
	}

	return doc
}

// SaveScenario writes the scenario document to a YAML file.
func SaveScenario(doc *ScenarioDoc, path string) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write scenario file: %w", err)
	}

	return nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateSubnet enforces the same subnet rules the model applies:
// parseable IPv4 CIDR, room for two usable hosts, fully private.
func validateSubnet(s string) error {
	prefix, err := netutil.ParsePrefix(s)
	if err != nil {
		return err
	}
	if prefix.Bits() > netutil.MaxHostPrefixLen {
		return fmt.Errorf("subnet must be /%d or larger", netutil.MaxHostPrefixLen)
	}
	if !netutil.IsPrivate(prefix) {
		return fmt.Errorf("subnet must be fully inside a private range (10/8, 172.16/12, 192.168/16)")
	}
	return nil
}
