package handlers

import (
	"fmt"
	"log"
	"os"

	"github.com/virtlab/labgen/internal/render"
)

// writeFile writes data to a file (for testing injection).
var writeFile = os.WriteFile

// Build validates a scenario, wires every system's networking and
// writes the rendered Vagrantfile to outputPath.
//
// Wiring runs after the whole model is built and validated, so a
// scenario that fails validation never leases a single address. The
// first wiring failure aborts the build; no partial script is written.
func Build(configPath, outputPath string) error {
	model, err := loadModel(configPath)
	if err != nil {
		return err
	}

	log.Printf("Wiring networking for scenario: %s", model.Name)

	if err := model.Wire(); err != nil {
		return fmt.Errorf("failed to wire scenario: %w", err)
	}

	script, err := render.Vagrantfile(model)
	if err != nil {
		return fmt.Errorf("failed to render provisioning script: %w", err)
	}

	if err := writeFile(outputPath, []byte(script+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	log.Printf("Wrote %s (%d systems, %d networks)", outputPath, len(model.Systems), len(model.Networks))
	return nil
}
