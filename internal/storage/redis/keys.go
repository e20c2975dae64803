package redis

import "fmt"

// rankingKey is the sorted set of entry IDs for a game, scored by points.
func (s *Storage) rankingKey(gameID string) string {
	return fmt.Sprintf("%s:ranking:%s", s.cfg.KeyPrefix, gameID)
}

// entryKey holds one JSON-encoded entry.
func (s *Storage) entryKey(id int64) string {
	return fmt.Sprintf("%s:entry:%d", s.cfg.KeyPrefix, id)
}

// sequenceKey is the counter that hands out entry IDs.
func (s *Storage) sequenceKey() string {
	return fmt.Sprintf("%s:seq", s.cfg.KeyPrefix)
}
