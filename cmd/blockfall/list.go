package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows every registered blockfall mode and its goal.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	goals := make(map[string]string, len(engine.Modes))
	for _, m := range engine.Modes {
		goals[blockfall.GameID(m)] = modeGoal(m)
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := len("Mode")
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(modeName(g.ID)))
	}

	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "Mode", "Title", "Goal")
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "----", "-----", "----")
	for _, g := range games {
		fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, modeName(g.ID), g.Title, goals[g.ID])
	}

	fmt.Println()
	fmt.Println("Run 'blockfall play <mode>' to play.")
}

// modeName is the CLI name of a game ID.
func modeName(gameID string) string {
	if gameID == blockfall.GameID(engine.ModeClassic) {
		return string(engine.ModeClassic)
	}
	return strings.TrimPrefix(gameID, "blockfall_")
}

// modeGoal describes how a mode ends.
func modeGoal(m engine.Mode) string {
	lines, limit := m.Rules()
	switch {
	case lines > 0:
		return fmt.Sprintf("clear %d lines", lines)
	case limit > 0:
		return fmt.Sprintf("score most in %s", limit)
	default:
		return "endless"
	}
}
