package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/storage"
	redisstore "github.com/vovakirdan/blockfall/internal/storage/redis"
)

// applyGameFlags validates the game flags and hands them to the game
// package before any game is created.
func applyGameFlags() error {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	if flagLevel < 0 {
		return fmt.Errorf("--level must be positive, got %d", flagLevel)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	blockfall.SetConfigPath(flagConfig)
	blockfall.SetDifficultyPreset(flagDifficulty)
	blockfall.SetStartLevel(flagLevel)
	return nil
}

// newLogger builds the command logger. Terminal games must not write to
// the screen, so they log to --log-file or nowhere.
func newLogger(prefix string, toStderr bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case toStderr:
		w = os.Stderr
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// openLeaderboard opens the Redis leaderboard when --redis is set and the
// SQLite one otherwise.
func openLeaderboard() (storage.Leaderboard, error) {
	if flagRedisURL != "" {
		cfg := redisstore.DefaultConfig()
		cfg.URL = flagRedisURL
		rs, err := redisstore.New(cfg)
		if err != nil {
			return nil, err
		}
		return rs, nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// playerName is the name saved with local scores.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// resolveGameID accepts a mode name ("ultra") or a game ID
// ("blockfall_ultra").
func resolveGameID(arg string) (string, error) {
	name := strings.TrimPrefix(arg, "blockfall_")
	if arg == "blockfall" || name == "" {
		return blockfall.GameID(engine.ModeClassic), nil
	}
	mode, err := engine.ParseMode(name)
	if err != nil {
		return "", fmt.Errorf("unknown mode %q, run 'blockfall list' to see modes", arg)
	}
	return blockfall.GameID(mode), nil
}
