package tui

import (
	"cmp"
	"slices"
	"sync"
	"time"
)

// Player is one connected SSH session.
type Player struct {
	ID     string
	User   string
	Remote string
	Since  time.Time
}

// Presence tracks the players connected to the SSH server.
// Safe for concurrent use.
type Presence struct {
	mu      sync.RWMutex
	players map[string]Player
}

// NewPresence creates an empty presence tracker.
func NewPresence() *Presence {
	return &Presence{players: make(map[string]Player)}
}

// Join records a connected player, replacing any entry with the same ID.
func (p *Presence) Join(pl Player) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.players[pl.ID] = pl
}

// Leave removes a player.
func (p *Presence) Leave(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.players, id)
}

// Count returns the number of connected players.
func (p *Presence) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.players)
}

// Players returns the connected players, longest connected first.
func (p *Presence) Players() []Player {
	p.mu.RLock()
	out := make([]Player, 0, len(p.players))
	for _, pl := range p.players {
		out = append(out, pl)
	}
	p.mu.RUnlock()

	slices.SortFunc(out, func(a, b Player) int {
		if c := a.Since.Compare(b.Since); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}
