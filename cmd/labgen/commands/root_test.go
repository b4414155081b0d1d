package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "labgen", cmd.Use)
	assert.Equal(t, "Generate Vagrant lab environments from declarative scenarios", cmd.Short)
}

func TestRoot_HasSubcommands(t *testing.T) {
	cmd := Root()

	expectedSubcommands := []string{
		"init",
		"plan",
		"build",
		"version",
		"completion",
	}

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}

	for _, expected := range expectedSubcommands {
		assert.True(t, subcommands[expected], "Expected subcommand %s not found", expected)
	}
}

func TestPlan_Flags(t *testing.T) {
	cmd := Plan()

	flag := cmd.Flags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "c", flag.Shorthand)
}

func TestBuild_Flags(t *testing.T) {
	cmd := Build()

	configFlag := cmd.Flags().Lookup("config")
	require.NotNil(t, configFlag)

	outputFlag := cmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "Vagrantfile", outputFlag.DefValue)
}

func TestInit_Flags(t *testing.T) {
	cmd := Init()

	outputFlag := cmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "scenario.yaml", outputFlag.DefValue)
}

func TestVersion_Output(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	cmd := Version()
	assert.Equal(t, "version", cmd.Name())
}
