// Package storage persists finished games. The SQLite store is the local
// default; storage/redis offers a shared leaderboard for servers.
package storage

import (
	"context"
	"errors"
	"time"
)

// DefaultLimit is the number of entries shown per leaderboard.
const DefaultLimit = 10

// ErrNoScores is returned when a leaderboard has no entries yet.
var ErrNoScores = errors.New("storage: no scores recorded")

// Entry is one finished game.
type Entry struct {
	ID        int64
	GameID    string // one leaderboard per game mode
	Player    string
	Score     int
	Level     int
	Lines     int
	Won       bool
	CreatedAt time.Time
}

// Leaderboard stores and ranks finished games.
type Leaderboard interface {
	// SaveScore records e and returns its ID.
	SaveScore(ctx context.Context, e Entry) (int64, error)

	// TopScores returns the best entries of gameID, highest first.
	// A limit <= 0 means DefaultLimit.
	TopScores(ctx context.Context, gameID string, limit int) ([]Entry, error)

	// HighScore returns the best score of gameID, or ErrNoScores.
	HighScore(ctx context.Context, gameID string) (int, error)

	// ClearScores removes every entry of gameID.
	ClearScores(ctx context.Context, gameID string) error

	Close() error
}

// GameStats aggregates the entries of one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	MaxLines   int
	LastPlayed time.Time
}
