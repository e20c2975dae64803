package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresStats bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top scores for the given mode. Scores marked with * won
the mode (marathon goal reached).

Examples:
  blockfall scores classic
  blockfall scores ultra --limit 25
  blockfall scores marathon --stats
  blockfall scores classic --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", storage.DefaultLimit, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score of the mode")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show aggregate statistics (SQLite only)")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID, err := resolveGameID(args[0])
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}
	title := game.Title()

	board, err := openLeaderboard()
	if err != nil {
		return err
	}
	defer board.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	if flagScoresClear {
		if err := board.ClearScores(ctx, gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", title)
		return nil
	}

	scores, err := board.TopScores(ctx, gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blockfall play %s' to set the first high score!\n", modeName(gameID))
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-9s  %-5s  %-5s  %s\n", "Rank", "Player", "Score", "Level", "Lines", "Date")
	fmt.Printf("  %-4s  %-12s  %-9s  %-5s  %-5s  %s\n", "----", "------", "-----", "-----", "-----", "----")
	for i, e := range scores {
		score := fmt.Sprintf("%d", e.Score)
		if e.Won {
			score += "*"
		}
		fmt.Printf("  %-4d  %-12s  %-9s  %-5d  %-5d  %s\n",
			i+1, e.Player, score, e.Level, e.Lines, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := board.HighScore(ctx, gameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}

	if flagScoresStats {
		return printStats(ctx, board, gameID)
	}
	return nil
}

// printStats shows aggregates, which only the SQLite store keeps.
func printStats(ctx context.Context, board storage.Leaderboard, gameID string) error {
	store, ok := board.(*storage.Store)
	if !ok {
		fmt.Println("Statistics are only available with the SQLite leaderboard.")
		return nil
	}

	stats, err := store.GameStats(ctx, gameID)
	if errors.Is(err, storage.ErrNoScores) {
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Games played: %d\n", stats.GamesCount)
	fmt.Printf("Average:      %.0f\n", stats.AvgScore)
	fmt.Printf("Most lines:   %d\n", stats.MaxLines)
	fmt.Printf("Last played:  %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))

	all, err := store.AllGamesStats(ctx)
	if err != nil {
		return err
	}
	total := 0
	for _, s := range all {
		total += s.GamesCount
	}
	fmt.Printf("All modes:    %d games\n", total)
	return nil
}
