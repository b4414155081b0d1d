package commands

import (
	"github.com/spf13/cobra"

	"github.com/virtlab/labgen/cmd/labgen/handlers"
)

// Build returns the command for generating the provisioning script.
//
// Build validates the scenario, wires every system's networking
// (leasing one private address per internal NIC) and writes the
// resulting Vagrantfile.
//
// Optional flags:
//
//	--config, -c: Path to the scenario YAML file (default: scenario.yaml)
//	--output, -o: Path of the generated script (default: Vagrantfile)
func Build() *cobra.Command {
	var (
		configPath string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the Vagrantfile for a scenario",
		Long: `Generate the provisioning script for a scenario.

The scenario is validated, every system is wired to its networks with
deterministically leased addresses, and the rendered Vagrantfile is
written to the output path.

Examples:
  # Build scenario.yaml into ./Vagrantfile
  labgen build

  # Build a specific scenario to a specific path
  labgen build -c lab.yaml -o environments/lab/Vagrantfile`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Build(configPath, outputPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to scenario file (default: scenario.yaml)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "Vagrantfile", "Path of the generated script")

	return cmd
}
