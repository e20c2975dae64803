package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
)

// bannerTicks is how long a banner stays up (1.5s at 60 ticks/s).
const bannerTicks = 90

type banner struct {
	text  string
	color core.Color
	ttl   int
}

// hud turns session events into short-lived banners.
type hud struct {
	banners []banner
	final   *engine.Stats
}

var _ engine.Notifier = (*hud)(nil)

func newHUD() *hud {
	return &hud{}
}

func (h *hud) push(text string, c core.Color) {
	h.banners = append(h.banners, banner{text: text, color: c, ttl: bannerTicks})
	if len(h.banners) > 3 {
		h.banners = h.banners[len(h.banners)-3:]
	}
}

// step ages the banners by one tick.
func (h *hud) step() {
	kept := h.banners[:0]
	for _, b := range h.banners {
		b.ttl--
		if b.ttl > 0 {
			kept = append(kept, b)
		}
	}
	h.banners = kept
}

func (h *hud) PieceLocked(res engine.LockResult) {
	if res.Spin != engine.SpinNone && len(res.Rows) == 0 {
		h.push(res.Spin.String(), core.ColorMagenta)
	}
}

func (h *hud) LinesCleared(res engine.ClearResult) {
	if res.Status != engine.ClearCompleted {
		return
	}
	switch {
	case res.Spin != engine.SpinNone:
		h.push(fmt.Sprintf("%s %s", res.Spin, lineWord(res.Lines)), core.ColorMagenta)
	case res.Tetris:
		h.push("TETRIS!", core.ColorCyan)
	}
	if res.Combo > 1 {
		h.push(fmt.Sprintf("Combo x%d", res.Combo), core.ColorYellow)
	}
	if res.PerfectClear {
		h.push("PERFECT CLEAR", core.ColorBrightYellow)
	}
}

func (h *hud) LevelUp(level int) {
	h.push(fmt.Sprintf("LEVEL %d", level), core.ColorGreen)
}

func (h *hud) GameOver(st engine.Stats) {
	h.final = &st
}

func lineWord(lines int) string {
	switch lines {
	case 1:
		return "Single"
	case 2:
		return "Double"
	case 3:
		return "Triple"
	default:
		return fmt.Sprintf("x%d", lines)
	}
}
