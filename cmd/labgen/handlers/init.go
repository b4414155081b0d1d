package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/virtlab/labgen/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive scenario wizard.
	runWizard = config.RunWizard

	// saveScenario writes the scenario document to a file.
	saveScenario = config.SaveScenario
)

// Init runs the scenario wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return err
	}

	doc := result.ToDocument()

	if err := saveScenario(doc, outputPath); err != nil {
		return fmt.Errorf("failed to write scenario: %w", err)
	}

	printInitSuccess(outputPath, doc)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("labgen - declarative Vagrant lab environments")
	fmt.Println("=============================================")
	fmt.Println()
	fmt.Println("This wizard creates a starter scenario with one internal network.")
	fmt.Println("Edit the generated YAML to add networks, systems and extra NICs.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, doc *config.ScenarioDoc) {
	fmt.Println()
	fmt.Println("Scenario saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Scenario Summary")
	fmt.Println("----------------")
	fmt.Printf("  Name:     %s\n", doc.Scenario.Name)
	for _, network := range doc.Networks {
		fmt.Printf("  Network:  %s (%s %s)\n", network.Name, network.Type, network.Subnet)
	}
	fmt.Printf("  Systems:  %d x %s\n", len(doc.Systems), doc.Systems[0].BaseBox)
	fmt.Println()

	fmt.Println("Next steps:")
	fmt.Printf("  labgen plan -c %s\n", outputPath)
	fmt.Printf("  labgen build -c %s\n", outputPath)
	fmt.Println()
}
