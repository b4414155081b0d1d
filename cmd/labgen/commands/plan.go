package commands

import (
	"github.com/spf13/cobra"

	"github.com/virtlab/labgen/cmd/labgen/handlers"
)

// Plan returns the command for validating and inspecting a scenario.
//
// Plan parses the scenario file, builds the validated model and prints
// it without leasing any addresses. Use it as a dry run before build.
//
// Optional flags:
//
//	--config, -c: Path to the scenario YAML file (default: scenario.yaml)
func Plan() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Validate a scenario and print the model",
		Long: `Validate a scenario file and print the resulting model.

The scenario is parsed and fully validated (subnet rules, name
uniqueness) but no addresses are leased, so plan never changes what a
later build would produce.

Examples:
  # Validate scenario.yaml in the current directory
  labgen plan

  # Validate a specific scenario file
  labgen plan -c lab.yaml`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Plan(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to scenario file (default: scenario.yaml)")

	return cmd
}
