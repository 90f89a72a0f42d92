package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/phanxgames/tutorials/internal/game"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available scenes",
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render("Available scenes:"))
	fmt.Fprintln(out)
	for _, name := range game.Names() {
		fmt.Fprintf(out, "  %-8s %s\n", name, sceneSummaries[name])
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'tutorials <scene>' to start one.")
}
