package handlers

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/virtlab/labgen/internal/scenario"
)

var (
	planColorBlue  = lipgloss.Color("#3b82f6")
	planColorGreen = lipgloss.Color("#22c55e")
	planColorDim   = lipgloss.Color("#6b7280")
	planColorWhite = lipgloss.Color("#f9fafb")
)

var (
	planTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(planColorWhite)

	planSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(planColorBlue)

	planDimStyle = lipgloss.NewStyle().
			Foreground(planColorDim)

	planGreenStyle = lipgloss.NewStyle().
			Foreground(planColorGreen)
)

// stdoutIsTerminal is a test seam; styled output is dropped when
// stdout is piped so plan output stays grep-able.
var stdoutIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// renderPlanSummary produces the plan output for an unwired model.
func renderPlanSummary(model *scenario.Scenario) string {
	styled := stdoutIsTerminal()
	style := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(style(planTitleStyle, fmt.Sprintf("  labgen plan: %s", model.Name)))
	b.WriteString("\n")
	b.WriteString(style(planDimStyle, "  "+strings.Repeat("═", 30)))
	b.WriteString("\n\n")

	b.WriteString(style(planSectionStyle, "  Networks"))
	b.WriteString("\n")
	b.WriteString(style(planDimStyle, "  "+strings.Repeat("─", 50)))
	b.WriteString("\n")
	for _, network := range model.Networks {
		switch network.Type {
		case scenario.Internal:
			fmt.Fprintf(&b, "    %-20s Internal  %-18s %d usable addresses\n",
				network.Name, network.Subnet.String(), network.Capacity())
		case scenario.Public:
			fmt.Fprintf(&b, "    %-20s Public    %-18s bridged\n", network.Name, "-")
		}
	}

	b.WriteString("\n")
	b.WriteString(style(planSectionStyle, "  Systems"))
	b.WriteString("\n")
	b.WriteString(style(planDimStyle, "  "+strings.Repeat("─", 50)))
	b.WriteString("\n")
	for _, system := range model.Systems {
		fmt.Fprintf(&b, "    %-20s box %-24s nics: %s\n",
			system.Name, system.BaseBox, strings.Join(system.NetworkNames, ", "))
	}

	b.WriteString("\n")
	b.WriteString(style(planGreenStyle, fmt.Sprintf("  Scenario is valid: %d network(s), %d system(s).",
		len(model.Networks), len(model.Systems))))
	b.WriteString("\n")
	b.WriteString(style(planDimStyle, "  Run 'labgen build' to lease addresses and write the Vagrantfile."))
	b.WriteString("\n")

	return b.String()
}
