// Package redis is a leaderboard backed by Redis sorted sets, for servers
// where several processes share one ranking.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vovakirdan/blockfall/internal/storage"
)

// Storage is a Redis-backed leaderboard.
type Storage struct {
	client *redis.Client
	cfg    Config
	now    func() time.Time
}

var _ storage.Leaderboard = (*Storage)(nil)

// New connects to Redis and verifies the connection.
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("storage: invalid redis url: %w", err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: cannot connect to redis: %w", err)
	}
	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a leaderboard with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultConfig().KeyPrefix
	}
	return &Storage{
		client: client,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// SaveScore stores the entry and ranks it.
func (s *Storage) SaveScore(ctx context.Context, e storage.Entry) (int64, error) {
	id, err := s.client.Incr(ctx, s.sequenceKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot allocate entry id: %w", err)
	}
	e.ID = id
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now().UTC()
	}

	data, err := json.Marshal(e)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode entry: %w", err)
	}

	// The ranking score carries a tiebreak so earlier entries win ties:
	// points dominate, a smaller ID adds a larger fraction.
	rank := float64(e.Score) + 1/float64(id+1)

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.entryKey(id), data, 0)
	pipe.ZAdd(ctx, s.rankingKey(e.GameID), redis.Z{Score: rank, Member: id})
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	if err := s.trim(ctx, e.GameID); err != nil {
		return 0, err
	}
	return id, nil
}

// trim drops entries ranked below MaxEntries.
func (s *Storage) trim(ctx context.Context, gameID string) error {
	if s.cfg.MaxEntries <= 0 {
		return nil
	}
	key := s.rankingKey(gameID)
	stale, err := s.client.ZRange(ctx, key, 0, int64(-s.cfg.MaxEntries-1)).Result()
	if err != nil {
		return fmt.Errorf("storage: cannot trim ranking: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}

	pipe := s.client.TxPipeline()
	for _, member := range stale {
		pipe.ZRem(ctx, key, member)
		if id, err := strconv.ParseInt(member, 10, 64); err == nil {
			pipe.Del(ctx, s.entryKey(id))
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("storage: cannot trim ranking: %w", err)
	}
	return nil
}

// TopScores returns the best entries of a game, highest first.
func (s *Storage) TopScores(ctx context.Context, gameID string, limit int) ([]storage.Entry, error) {
	if limit <= 0 {
		limit = storage.DefaultLimit
	}

	members, err := s.client.ZRevRange(ctx, s.rankingKey(gameID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	if len(members) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(members))
	for _, member := range members {
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("storage: bad ranking member %q: %w", member, err)
		}
		keys = append(keys, s.entryKey(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load entries: %w", err)
	}

	entries := make([]storage.Entry, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Entry expired or was removed between the two reads.
			continue
		}
		var e storage.Entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("storage: cannot decode %s: %w", keys[i], err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// HighScore returns the best score of a game, or storage.ErrNoScores.
func (s *Storage) HighScore(ctx context.Context, gameID string) (int, error) {
	top, err := s.TopScores(ctx, gameID, 1)
	if err != nil {
		return 0, err
	}
	if len(top) == 0 {
		return 0, storage.ErrNoScores
	}
	return top[0].Score, nil
}

// ClearScores removes a game's ranking and its entries.
func (s *Storage) ClearScores(ctx context.Context, gameID string) error {
	key := s.rankingKey(gameID)
	members, err := s.client.ZRange(ctx, key, 0, -1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}

	keys := []string{key}
	for _, member := range members {
		if id, err := strconv.ParseInt(member, 10, 64); err == nil {
			keys = append(keys, s.entryKey(id))
		}
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
