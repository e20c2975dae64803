package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// scriptedGame ends after overAt steps and restarts on ActionRestart.
type scriptedGame struct {
	steps  int
	overAt int
	state  core.GameState
	seen   []core.InputFrame
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.steps = 0
	g.state = core.GameState{Level: 1}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.seen = append(g.seen, in.Clone())
	if g.state.GameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(core.RuntimeConfig{})
		}
		return core.StepResult{State: g.state}
	}
	g.steps++
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if g.steps >= g.overAt {
		g.state = core.GameState{Score: 1200, Level: 3, Lines: 24, GameOver: true, Won: true}
	}
	return core.StepResult{State: g.state}
}

func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "SCRIPTED") }
func (g *scriptedGame) State() core.GameState   { return g.state }

// memBoard is an in-memory leaderboard.
type memBoard struct {
	mu      sync.Mutex
	entries []storage.Entry
	saveErr error
}

func (b *memBoard) SaveScore(_ context.Context, e storage.Entry) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.saveErr != nil {
		return 0, b.saveErr
	}
	e.ID = int64(len(b.entries) + 1)
	b.entries = append(b.entries, e)
	return e.ID, nil
}

func (b *memBoard) TopScores(_ context.Context, gameID string, _ int) ([]storage.Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []storage.Entry
	for _, e := range b.entries {
		if e.GameID == gameID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (b *memBoard) HighScore(ctx context.Context, gameID string) (int, error) {
	entries, _ := b.TopScores(ctx, gameID, 0)
	if len(entries) == 0 {
		return 0, storage.ErrNoScores
	}
	best := 0
	for _, e := range entries {
		best = max(best, e.Score)
	}
	return best, nil
}

func (b *memBoard) ClearScores(context.Context, string) error { return nil }
func (b *memBoard) Close() error                              { return nil }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return gm
}

func tick(t *testing.T, m GameModel, n int) GameModel {
	t.Helper()
	for range n {
		m = update(t, m, TickMsg{})
	}
	return m
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	board := &memBoard{}
	game := &scriptedGame{overAt: 3}
	m := NewGameModel(game, board, testConfig(), "alice")

	m = tick(t, m, 10)
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}
	if len(board.entries) != 1 {
		t.Fatalf("saved %d entries, expected 1", len(board.entries))
	}
	got := board.entries[0]
	want := storage.Entry{ID: 1, GameID: "scripted", Player: "alice", Score: 1200, Level: 3, Lines: 24, Won: true}
	got.CreatedAt = want.CreatedAt
	if got != want {
		t.Errorf("saved %+v, expected %+v", got, want)
	}
	if m.HighScore() != 1200 {
		t.Errorf("HighScore() = %d, expected 1200", m.HighScore())
	}
}

func TestGameModelSavesAgainAfterRestart(t *testing.T) {
	board := &memBoard{}
	m := NewGameModel(&scriptedGame{overAt: 2}, board, testConfig(), "bob")

	m = tick(t, m, 3)
	m = update(t, m, runeKey('r'))
	m = tick(t, m, 1)
	if m.State().GameOver {
		t.Fatal("expected restart to clear game over")
	}
	m = tick(t, m, 3)

	if len(board.entries) != 2 {
		t.Errorf("saved %d entries, expected 2", len(board.entries))
	}
}

func TestGameModelSaveFailureShown(t *testing.T) {
	board := &memBoard{saveErr: errors.New("disk full")}
	m := NewGameModel(&scriptedGame{overAt: 1}, board, testConfig(), "carol")
	m = tick(t, m, 2)

	if !strings.Contains(m.View(), "score not saved") {
		t.Error("View() should report the failed save")
	}
}

func TestGameModelWithoutBoard(t *testing.T) {
	m := NewGameModel(&scriptedGame{overAt: 1}, nil, testConfig(), "")
	m = tick(t, m, 2)
	if !strings.Contains(m.View(), "SCRIPTED") {
		t.Error("View() should render the game")
	}
}

func TestGameModelLoadsHighScore(t *testing.T) {
	board := &memBoard{}
	//nolint:errcheck // memBoard never fails here
	board.SaveScore(context.Background(), storage.Entry{GameID: "scripted", Score: 777})

	m := NewGameModel(&scriptedGame{overAt: 100}, board, testConfig(), "")
	if m.HighScore() != 777 {
		t.Errorf("HighScore() = %d, expected 777", m.HighScore())
	}
	if !strings.Contains(m.View(), "BEST 777") {
		t.Error("footer should show the best score")
	}
}

func TestGameModelForwardsActions(t *testing.T) {
	game := &scriptedGame{overAt: 100}
	m := NewGameModel(game, nil, testConfig(), "")

	m = update(t, m, runeKey('z'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m, 2)

	if len(game.seen) != 2 {
		t.Fatalf("game stepped %d times, expected 2", len(game.seen))
	}
	if !game.seen[0].Has(core.ActionRotateCCW) || !game.seen[0].Has(core.ActionLeft) {
		t.Error("first frame should carry both actions")
	}
	if !game.seen[1].Empty() {
		t.Error("second frame should be empty")
	}
}

func TestGameModelBackOnlyWhenStopped(t *testing.T) {
	game := &scriptedGame{overAt: 100}
	m := NewGameModel(game, nil, testConfig(), "")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	m = update(t, m, runeKey('p'))
	m = tick(t, m, 1)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(&scriptedGame{overAt: 100}, nil, testConfig(), "")
	next, cmd := m.Update(runeKey('q'))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestGameModelResize(t *testing.T) {
	m := NewGameModel(&scriptedGame{overAt: 100}, nil, testConfig(), "")
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 30-footerHeight {
		t.Errorf("screen = %dx%d, expected 100x%d", m.screen.Width(), m.screen.Height(), 30-footerHeight)
	}
}
