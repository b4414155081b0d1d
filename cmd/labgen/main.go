// Package main is the entry point for the labgen CLI.
//
// labgen turns a declarative scenario file describing a virtual lab
// (named systems and the networks they attach to) into a validated
// model and a deterministic Vagrantfile provisioning script.
//
// Commands: init, plan, build, version, completion.
//
// For detailed usage information, run:
//
//	labgen --help
package main

import (
	"fmt"
	"os"

	"github.com/virtlab/labgen/cmd/labgen/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
