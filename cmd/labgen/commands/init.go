package commands

import (
	"github.com/spf13/cobra"

	"github.com/virtlab/labgen/cmd/labgen/handlers"
)

// Init returns the command for creating a starter scenario file.
//
// Optional flags:
//
//	--output, -o: Path of the generated scenario file (default: scenario.yaml)
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a scenario file interactively",
		Long: `Create a starter scenario file.

An interactive wizard asks for the scenario name, a first network and
the systems attached to it, then writes a scenario YAML you can edit
and extend.

Examples:
  # Create scenario.yaml in the current directory
  labgen init

  # Create a scenario file at a specific path
  labgen init -o labs/pentest.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "scenario.yaml", "Path of the generated scenario file")

	return cmd
}
