// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall list              - List game modes
//	blockfall play [mode]       - Play a mode (default: classic)
//	blockfall menu              - Pick modes interactively
//	blockfall serve             - Start SSH server for remote play
//	blockfall scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.arcade/scores.db)
//	--redis <url>          - Use a Redis leaderboard instead of SQLite
//	--config <path>        - Load rules from a YAML file
//	--difficulty <preset>  - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagRedisURL   string
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagPlayer     string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle in your terminal",
	Long: `Blockfall is a falling-block puzzle game with a 7-bag randomizer,
SRS rotation with wall kicks, T-spins, hold, combos and four modes.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  blockfall list
  blockfall play
  blockfall play ultra --difficulty hard
  blockfall menu --redis redis://localhost:6379/0
  blockfall serve --ssh :2222
  blockfall scores marathon`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return applyGameFlags()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagRedisURL, "redis", "", "Redis URL for a shared leaderboard (overrides --db)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.IntVar(&flagLevel, "level", 0, "Start level (0 = from config or difficulty)")
	pf.StringVar(&flagPlayer, "player", "", "Name stored with your scores (default: $USER)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
