package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColor(0, 0, "SCORE", core.ColorYellow)
	s.DrawText(6, 0, "40")
	s.SetCell(0, 2, '█', core.ColorCyan)
	s.SetCell(1, 2, '█', core.ColorCyan)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderScreen() has %d lines, expected 3", len(lines))
	}

	for y, line := range lines {
		plain := stripANSI(line)
		if plain != s.Row(y) {
			t.Errorf("line %d = %q, expected %q", y, plain, s.Row(y))
		}
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d width = %d, expected 12", y, w)
		}
	}
}

func TestEveryColorHasAStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorBrightYellow; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for %v", c)
		}
	}
	// Unknown colors fall back to the default style.
	if got := styleFor(core.Color(200)).Render("x"); stripANSI(got) != "x" {
		t.Errorf("styleFor(unknown).Render() = %q", got)
	}
}

// stripANSI removes CSI escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
