// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"fmt"

	"github.com/virtlab/labgen/internal/config"
	"github.com/virtlab/labgen/internal/scenario"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// findScenarioFile resolves the scenario file path.
	findScenarioFile = config.FindScenarioFile

	// loadScenarioFile reads and decodes the scenario file.
	loadScenarioFile = config.LoadFile
)

// Plan parses and validates a scenario and prints the resulting model.
//
// The model is deliberately left unwired: plan is a dry run that shows
// networks, capacities and declared attachments without leasing any
// addresses, so running it never influences a later build.
func Plan(configPath string) error {
	model, err := loadModel(configPath)
	if err != nil {
		return err
	}

	fmt.Print(renderPlanSummary(model))
	return nil
}

// loadModel resolves, reads and validates the scenario file into an
// unwired model. Shared by the plan and build handlers.
func loadModel(configPath string) (*scenario.Scenario, error) {
	path, err := findScenarioFile(configPath)
	if err != nil {
		return nil, err
	}

	doc, err := loadScenarioFile(path)
	if err != nil {
		return nil, err
	}

	model, err := scenario.FromValue(doc)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return model, nil
}
