package blockfall

import (
	"fmt"
	"slices"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
)

// Each board cell is two characters wide so cells look square.
const (
	cellW       = 2
	holdW       = 4*cellW + 2
	panelW      = 16
	gap         = 1
	blockRunes  = "██"
	ghostRunes  = "░░"
	emptyRunes  = " ·"
	flashRunesA = "▓▓"
	flashRunesB = "░░"
)

// kindColor is the display color of each piece kind.
func kindColor(k engine.Kind) core.Color {
	switch k {
	case engine.KindI:
		return core.ColorCyan
	case engine.KindO:
		return core.ColorYellow
	case engine.KindT:
		return core.ColorMagenta
	case engine.KindS:
		return core.ColorGreen
	case engine.KindZ:
		return core.ColorRed
	case engine.KindJ:
		return core.ColorBlue
	case engine.KindL:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// layout places the hold box, the board and the side panel.
type layout struct {
	hold  core.Rect
	board core.Rect
	panel core.Rect
}

func (g *Game) layout(dst *core.Screen) (layout, bool) {
	cfg := g.session.Config()
	boardW := cfg.Width*cellW + 2
	boardH := cfg.Height + 2
	total := holdW + gap + boardW + gap + panelW
	if dst.Width() < total || dst.Height() < boardH {
		return layout{}, false
	}

	ox := (dst.Width() - total) / 2
	oy := (dst.Height() - boardH) / 2
	return layout{
		hold:  core.NewRect(ox, oy, holdW, 4),
		board: core.NewRect(ox+holdW+gap, oy, boardW, boardH),
		panel: core.NewRect(ox+holdW+gap+boardW+gap, oy, panelW, boardH),
	}, true
}

// Render draws the session into dst.
func (g *Game) Render(dst *core.Screen) {
	lay, ok := g.layout(dst)
	if !ok {
		cfg := g.session.Config()
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		need := fmt.Sprintf("need %dx%d", holdW+gap+cfg.Width*cellW+2+gap+panelW, cfg.Height+2)
		dst.DrawTextCentered(dst.Height()/2+1, need, core.ColorGray)
		return
	}

	g.renderHold(dst, lay.hold)
	g.renderBanners(dst, core.NewRect(lay.hold.X, lay.hold.Bottom()+1, holdW, lay.board.H-lay.hold.H-1))
	g.renderBoard(dst, lay.board)
	g.renderPanel(dst, lay.panel)
	g.renderOverlay(dst, lay.board)
}

func (g *Game) renderHold(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r, core.ColorGray)
	dst.DrawTextColor(r.X+1, r.Y, "HOLD", core.ColorWhite)

	held, used := g.session.Held()
	if held == engine.KindNone {
		return
	}
	c := kindColor(held)
	if used {
		c = core.ColorGray
	}
	drawMini(dst, r.X+1, r.Y+1, held, c)
}

// drawMini draws the spawn orientation of k in a 4x2 cell area.
func drawMini(dst *core.Screen, x, y int, k engine.Kind, c core.Color) {
	for _, p := range engine.ShapeOf(k, engine.Rot0).Cells {
		if p.Y > 1 {
			continue
		}
		dst.DrawTextColor(x+p.X*cellW, y+p.Y, blockRunes, c)
	}
}

func (g *Game) renderBoard(dst *core.Screen, r core.Rect) {
	s := g.session
	dst.DrawBox(r, core.ColorGray)
	inner := r.Inset(1)

	cell := func(x, y int, runes string, c core.Color) {
		if y < 0 || y >= inner.H {
			return
		}
		dst.DrawTextColor(inner.X+x*cellW, inner.Y+y, runes, c)
	}

	cs := s.ClearState()
	flash := flashRunesA
	if int(cs.Progress*6)%2 == 1 {
		flash = flashRunesB
	}

	for y, row := range s.Board().Rows() {
		flashing := cs.Animating && slices.Contains(cs.Rows, y)
		for x, k := range row {
			switch {
			case flashing:
				cell(x, y, flash, core.ColorBrightWhite)
			case k != engine.KindNone:
				cell(x, y, blockRunes, kindColor(k))
			default:
				cell(x, y, emptyRunes, core.ColorGray)
			}
		}
	}

	active, ok := s.Active()
	if !ok || s.GameOver() {
		return
	}
	if ghost, ok := s.Ghost(); ok && ghost != active {
		for _, p := range ghost.Cells() {
			cell(p.X, p.Y, ghostRunes, core.ColorGray)
		}
	}
	for _, p := range active.Cells() {
		cell(p.X, p.Y, blockRunes, kindColor(active.Kind))
	}
}

func (g *Game) renderPanel(dst *core.Screen, r core.Rect) {
	s := g.session
	preview := s.Preview()

	box := core.NewRect(r.X, r.Y, holdW, len(preview)*3+1)
	dst.DrawBox(box, core.ColorGray)
	dst.DrawTextColor(box.X+1, box.Y, "NEXT", core.ColorWhite)
	for i, k := range preview {
		drawMini(dst, box.X+1, box.Y+1+i*3, k, kindColor(k))
	}

	st := s.Stats()
	lines := []struct {
		label string
		value string
	}{
		{"MODE", s.Config().Mode.Title()},
		{"SCORE", fmt.Sprintf("%d", st.Score)},
		{"LEVEL", fmt.Sprintf("%d", st.Level)},
		{"LINES", g.linesText(st)},
		{"TIME", g.timeText(st)},
	}
	if st.Combo > 1 {
		lines = append(lines, struct{ label, value string }{"COMBO", fmt.Sprintf("x%d", st.Combo)})
	}

	y := box.Bottom() + 1
	for _, l := range lines {
		if y >= r.Bottom() {
			break
		}
		dst.DrawTextColor(r.X, y, l.label, core.ColorGray)
		dst.DrawTextColor(r.X+6, y, l.value, core.ColorBrightWhite)
		y++
	}
}

func (g *Game) linesText(st engine.Stats) string {
	if goal := g.session.Config().GoalLines; goal > 0 {
		return fmt.Sprintf("%d/%d", st.Lines, goal)
	}
	return fmt.Sprintf("%d", st.Lines)
}

func (g *Game) timeText(st engine.Stats) string {
	d := st.PlayTime
	if g.session.Config().TimeLimit > 0 {
		d = st.Remaining
	}
	return formatDuration(d)
}

// formatDuration renders m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func (g *Game) renderBanners(dst *core.Screen, r core.Rect) {
	for i, b := range g.hud.banners {
		y := r.Y + i*2
		if y >= r.Bottom() {
			return
		}
		dst.DrawTextColor(r.X, y, b.text, b.color)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, board core.Rect) {
	s := g.session
	center := func(y int, text string, c core.Color) {
		x := board.X + (board.W-len([]rune(text)))/2
		dst.DrawTextColor(x, y, text, c)
	}
	mid := board.Y + board.H/2

	switch {
	case s.GameOver():
		title, c := "GAME OVER", core.ColorRed
		switch s.Reason() {
		case engine.ReasonGoalReached:
			title, c = "YOU WIN", core.ColorGreen
		case engine.ReasonTimeUp:
			title, c = "TIME UP", core.ColorYellow
		}
		center(mid-2, title, c)
		center(mid, fmt.Sprintf("Score %d", s.Score()), core.ColorBrightWhite)
		center(mid+2, "R restart", core.ColorGray)
		center(mid+3, "Q quit", core.ColorGray)
	case s.Paused():
		center(mid, "PAUSED", core.ColorYellow)
		center(mid+2, "P resume", core.ColorGray)
	}
}
