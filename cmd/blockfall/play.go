package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (classic when omitted).

Modes:
  classic      - Endless, ends when the stack tops out
  marathon     - Clear 150 lines
  ultra        - Score as much as possible in 2 minutes
  time_attack  - Score as much as possible in 3 minutes

Controls:
  Left/Right, A/D  - Move
  Down, S          - Soft drop
  Space            - Hard drop
  Up, W, X         - Rotate clockwise
  Z                - Rotate counter-clockwise
  C                - Hold
  P                - Pause
  R                - Restart (after game over)
  Esc              - Leave (while paused or after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 3
  hard   - Start at level 6
  fixed  - Start at the config's start_level

Examples:
  blockfall play
  blockfall play marathon --difficulty normal
  blockfall play ultra --seed 42
  blockfall play --config ./my-rules.yaml --level 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	gameID, err := resolveGameID(arg)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("blockfall", false)
	if err != nil {
		return err
	}
	defer closeLog()
	blockfall.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	board, err := openLeaderboard()
	if err != nil {
		logger.Warn("scores will not be saved", "err", err)
		board = nil
	}
	if board != nil {
		defer board.Close()
	}

	if err := tui.Run(game, board, runtimeConfig(), playerName()); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	return nil
}
