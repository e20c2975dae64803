package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/blockfall/internal/games/blockfall"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return mm
}

func TestMenuListsModes(t *testing.T) {
	m := NewMenuModel(testConfig())
	view := m.View()
	for _, title := range []string{"Blockfall", "Blockfall: Marathon", "Blockfall: Ultra", "Blockfall: Time Attack"} {
		if !strings.Contains(view, title) {
			t.Errorf("menu is missing %q", title)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(testConfig())
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp}) // stays at the top
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.Result()
	if res.GameID != "blockfall_marathon" {
		t.Errorf("GameID = %q, expected blockfall_marathon", res.GameID)
	}
	if res.Difficulty != "normal" {
		t.Errorf("Difficulty = %q, expected normal", res.Difficulty)
	}
	if res.Quit || res.WantsScoreboard {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestMenuDifficultyWraps(t *testing.T) {
	m := NewMenuModel(testConfig())
	if m.Difficulty() != "" {
		t.Fatalf("initial difficulty = %q, expected config default", m.Difficulty())
	}
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != "fixed" {
		t.Errorf("Difficulty() = %q, expected fixed", m.Difficulty())
	}
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != "" {
		t.Errorf("Difficulty() = %q, expected config default", m.Difficulty())
	}
	if !strings.Contains(m.View(), "Difficulty: < config >") {
		t.Error("menu should label the configured difficulty")
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuUpdate(t, NewMenuModel(testConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.Result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}

	m = menuUpdate(t, NewMenuModel(testConfig()), runeKey('q'))
	if !m.Result().Quit {
		t.Error("q should quit")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, expected %q", got, "  ab")
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText() = %q, expected unchanged", got)
	}
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return sm
}

func TestSessionFlow(t *testing.T) {
	board := &memBoard{}
	m := NewSessionModel(board, testConfig(), "dave")

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame || m.gameModel == nil {
		t.Fatalf("view = %v, expected game", m.view)
	}
	if !strings.Contains(m.View(), "SCORE") {
		t.Error("game view should show the HUD")
	}

	m = sessionUpdate(t, m, runeKey('p'))
	m = sessionUpdate(t, m, TickMsg{})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Fatalf("view = %v, expected menu after leaving a paused game", m.view)
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScoreboard {
		t.Fatalf("view = %v, expected scoreboard", m.view)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view should have a title")
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Fatalf("view = %v, expected menu", m.view)
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}

func TestSessionAppliesDifficulty(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "erin")
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft}) // fixed
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft}) // hard
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.gameModel == nil {
		t.Fatal("expected a game")
	}
	if lvl := m.gameModel.State().Level; lvl != 6 {
		t.Errorf("Level = %d, expected 6 for hard", lvl)
	}
}

func TestSessionShowsOnlineCount(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "gina")
	if strings.Contains(m.View(), "online") {
		t.Error("local sessions should not show an online count")
	}

	m.presence = NewPresence()
	m.presence.Join(Player{ID: "1", User: "gina"})
	m.presence.Join(Player{ID: "2", User: "hal"})
	if !strings.Contains(m.View(), "2 online") {
		t.Error("menu should show the online count")
	}
}
