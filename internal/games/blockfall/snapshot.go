package blockfall

import "github.com/vovakirdan/blockfall/internal/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateClearing GameStateType = "clearing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
	StateWin      GameStateType = "win"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      engine.Mode
	Score     int
	Lines     int
	Level     int
	Combo     int
	Pieces    int
	Active    engine.Piece
	HasActive bool
	Hold      engine.Kind
	Preview   []engine.Kind
	Board     string
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	state := StatePlaying
	switch {
	case s.GameOver() && s.Reason().Won():
		state = StateWin
	case s.GameOver():
		state = StateGameOver
	case s.Paused():
		state = StatePaused
	case s.ClearState().Animating:
		state = StateClearing
	}

	st := s.Stats()
	active, hasActive := s.Active()
	held, _ := s.Held()
	return Snapshot{
		Tick:      g.tick,
		Mode:      g.mode,
		Score:     st.Score,
		Lines:     st.Lines,
		Level:     st.Level,
		Combo:     st.Combo,
		Pieces:    st.Pieces,
		Active:    active,
		HasActive: hasActive,
		Hold:      held,
		Preview:   s.Preview(),
		Board:     s.Board().String(),
		State:     state,
	}
}
