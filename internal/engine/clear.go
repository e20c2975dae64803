package engine

import (
	"fmt"
	"slices"
	"time"
)

// clearState tracks the one line clear that may be animating.
type clearState struct {
	rows      []int
	start     time.Time
	animating bool
	spin      Spin
	perfect   bool
}

// ClearView is the render-facing view of the clear animation.
type ClearView struct {
	Rows      []int
	Animating bool
	Progress  float64 // 0 at start, 1 when the animation completes
}

// ClearState returns the current clear animation state.
func (s *Session) ClearState() ClearView {
	if !s.clear.animating {
		return ClearView{}
	}
	v := ClearView{Rows: slices.Clone(s.clear.rows), Animating: true}
	dur := s.cfg.ClearDuration(s.level)
	elapsed := s.clock.Now().Sub(s.clear.start)
	if s.paused {
		elapsed = s.pausedAt.Sub(s.clear.start)
	}
	v.Progress = min(max(float64(elapsed)/float64(dur), 0), 1)
	return v
}

// expireCombo drops the combo once the window since the last clear has
// passed and reports whether an active combo ended.
func (s *Session) expireCombo() bool {
	if !s.hasCleared || s.combo == 0 {
		return false
	}
	if s.clock.Now().Sub(s.lastClear) > s.cfg.ComboTimeout {
		s.combo = 0
		return true
	}
	return false
}

// beginClear records the rows to remove and starts the animation.
func (s *Session) beginClear(rows []int, spin Spin) {
	now := s.clock.Now()
	if s.hasCleared && now.Sub(s.lastClear) < s.cfg.ComboTimeout {
		s.combo++
	} else {
		s.combo = 1
	}
	s.lastClear = now
	s.hasCleared = true

	s.clear = clearState{
		rows:      slices.Clone(rows),
		start:     now,
		animating: true,
		spin:      spin,
		perfect:   s.board.EmptyAfterClearing(rows),
	}
}

// advanceClear completes the animation once its duration has elapsed.
// Elapsed times outside [0, ClearCeiling] are clamped and completed.
func (s *Session) advanceClear() {
	now := s.clock.Now()
	dur := s.cfg.ClearDuration(s.level)
	elapsed := now.Sub(s.clear.start)
	if elapsed < 0 || elapsed > s.cfg.ClearCeiling {
		s.logger.Warn("clear animation timing out of range, completing",
			"elapsed", elapsed, "duration", dur, "rows", s.clear.rows)
		s.clear.start = now.Add(-dur)
		elapsed = dur
	}
	if elapsed < dur {
		return
	}
	s.FinishClear()
}

// FinishClear removes the animating rows, scores them at the level before
// any level-up, updates level and speed, and spawns the next piece.
// Inconsistent bookkeeping takes a recovery path that clears the pending
// state and spawns without scoring.
func (s *Session) FinishClear() ClearResult {
	if !s.clear.animating || s.gameOver {
		return ClearResult{Status: ClearIdle}
	}

	rows := s.clear.rows
	if err := s.checkPendingRows(rows); err != nil {
		s.logger.Error("line clear bookkeeping inconsistent, recovering", "err", err, "rows", rows)
		s.clear = clearState{}
		res := ClearResult{Status: ClearRecovered, Level: s.level}
		s.lastClr = res
		s.spawnNext()
		return res
	}

	lines := len(rows)
	points, ok := SpinScore(s.clear.spin, lines, s.level)
	if !ok {
		points = LineClearScore(lines, s.level, s.combo)
	}
	if s.clear.perfect {
		points += s.cfg.PerfectClearBonus
		s.perfectClears++
	}
	if lines == 4 {
		s.tetrises++
	}

	s.board.Compact(rows)
	s.lines += lines
	s.score += points

	level := LevelFor(s.lines, s.cfg.StartLevel)
	levelUp := level > s.level
	s.level = level
	s.speed = SpeedFor(level)

	res := ClearResult{
		Status:       ClearCompleted,
		Rows:         rows,
		Lines:        lines,
		Tetris:       lines == 4,
		Spin:         s.clear.spin,
		Combo:        s.combo,
		PerfectClear: s.clear.perfect,
		Points:       points,
		Level:        level,
		LevelUp:      levelUp,
	}
	s.clear = clearState{}
	s.lastClr = res
	s.notifier.LinesCleared(res)

	if levelUp {
		s.levelUp = true
		s.logger.Debug("level up", "level", level, "speed", s.speed)
		s.notifier.LevelUp(level)
	}

	if s.cfg.GoalLines > 0 && s.lines >= s.cfg.GoalLines {
		s.end(ReasonGoalReached)
		return res
	}
	s.spawnNext()
	return res
}

// checkPendingRows verifies the rows are in range, strictly ascending and
// still full.
func (s *Session) checkPendingRows(rows []int) error {
	if len(rows) == 0 {
		return fmt.Errorf("no rows pending")
	}
	for i, y := range rows {
		if y < 0 || y >= s.board.Height() {
			return fmt.Errorf("row %d out of range", y)
		}
		if i > 0 && y <= rows[i-1] {
			return fmt.Errorf("rows not strictly ascending at %d", y)
		}
		if !s.board.rowFull(y) {
			return fmt.Errorf("row %d is no longer full", y)
		}
	}
	return nil
}
