package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flagrun/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its rule set.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	idW, titleW := len("ID"), len("Title")
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", idW, "ID", titleW, "Title", "Rules")
	fmt.Printf("  %-*s  %-*s  %s\n", idW, "--", titleW, "-----", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", idW, g.ID, titleW, g.Title, rulesOf(g.ID))
	}

	fmt.Println()
	fmt.Println("Run 'flagrun play <id>' to play a game.")
}

// rulesOf names the rule preset a game runs with, if it has one.
func rulesOf(id string) string {
	game, err := registry.Create(id)
	if err != nil {
		return "-"
	}
	if v, ok := game.(variantGame); ok {
		return string(v.Variant())
	}
	return "-"
}
