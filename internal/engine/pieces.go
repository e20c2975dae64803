package engine

// acceptsInput reports whether the active piece may be manipulated.
func (s *Session) acceptsInput() bool {
	return s.hasActive && !s.gameOver && !s.paused && !s.clear.animating
}

// spawnPose places k at rotation 0, horizontally centered on row 0.
func (s *Session) spawnPose(k Kind) Piece {
	size := ShapeOf(k, Rot0).Size
	return Piece{Kind: k, Rot: Rot0, X: s.cfg.Width/2 - size/2, Y: 0}
}

// place makes k the active piece at its spawn pose and ends the session
// if that pose collides.
func (s *Session) place(k Kind) {
	s.active = s.spawnPose(k)
	s.hasActive = true
	s.rotated = false
	s.kick = 0
	s.onGround = false
	s.lastGravity = s.clock.Now()

	if !s.board.Fits(s.active) {
		s.end(ReasonTopOut)
	}
}

// spawnNext pops the preview head as the new active piece.
func (s *Session) spawnNext() {
	s.holdUsed = false
	s.place(s.queue.Pop())
}

func (s *Session) touchGround() {
	if !s.onGround {
		s.onGround = true
		s.groundStart = s.clock.Now()
	}
}

// Move translates the active piece. A successful downward move is a soft
// drop worth SoftDropPoints per row; a blocked downward move starts the
// lock delay.
func (s *Session) Move(dx, dy int) bool {
	if !s.acceptsInput() {
		return false
	}
	next := s.active.Moved(dx, dy)
	if !s.board.Fits(next) {
		if dy > 0 {
			s.touchGround()
		}
		return false
	}
	s.active = next
	s.rotated = false
	if dy > 0 {
		s.onGround = false
		s.score += dy * SoftDropPoints
	}
	return true
}

// MoveLeft shifts the active piece one column left.
func (s *Session) MoveLeft() bool { return s.Move(-1, 0) }

// MoveRight shifts the active piece one column right.
func (s *Session) MoveRight() bool { return s.Move(1, 0) }

// SoftDrop moves the active piece one row down.
func (s *Session) SoftDrop() bool { return s.Move(0, 1) }

// Gravity moves the active piece one row down without scoring. The
// rotation flag survives so a spun T can settle into place.
func (s *Session) Gravity() bool {
	if !s.acceptsInput() {
		return false
	}
	next := s.active.Moved(0, 1)
	if !s.board.Fits(next) {
		s.touchGround()
		return false
	}
	s.active = next
	s.onGround = false
	return true
}

// Rotate turns the active piece using the SRS kick tests. On failure the
// pose and the rotation flag are left untouched.
func (s *Session) Rotate(clockwise bool) bool {
	if !s.acceptsInput() {
		return false
	}
	next, kick, ok := rotate(s.board, s.active, clockwise)
	if !ok {
		return false
	}
	s.active = next
	s.rotated = true
	s.kick = kick
	return true
}

// Hold stores the active kind. With an empty slot the preview head comes
// in; otherwise the held kind swaps in. Allowed once per piece.
func (s *Session) Hold() bool {
	if !s.acceptsInput() || s.holdUsed {
		return false
	}
	current := s.active.Kind
	next := s.hold
	if next == KindNone {
		next = s.queue.Pop()
	}
	s.hold = current
	s.holdUsed = true
	s.place(next)
	return true
}

// HardDrop drops the active piece as far as it goes, awards HardDropPoints
// per row and locks it. It returns the distance dropped.
func (s *Session) HardDrop() (int, bool) {
	if !s.acceptsInput() {
		return 0, false
	}
	dist := s.dropDistance()
	s.active = s.active.Moved(0, dist)
	s.score += dist * HardDropPoints
	s.rotated = false
	s.FixPiece()
	return dist, true
}

func (s *Session) dropDistance() int {
	d := 0
	for s.board.Fits(s.active.Moved(0, d+1)) {
		d++
	}
	return d
}

// Ghost returns where the active piece would land.
func (s *Session) Ghost() (Piece, bool) {
	if !s.hasActive {
		return Piece{}, false
	}
	return s.active.Moved(0, s.dropDistance()), true
}

// OnGround reports whether the lock delay is running.
func (s *Session) OnGround() bool { return s.onGround }

// ShouldLock reports whether the lock delay has expired.
func (s *Session) ShouldLock() bool {
	if !s.onGround || s.paused {
		return false
	}
	return s.clock.Now().Sub(s.groundStart) >= s.cfg.LockDelay
}

// FixPiece locks the active piece, classifies any T-spin, and hands full
// rows to the clear animation. The next piece spawns immediately only when
// nothing is pending.
func (s *Session) FixPiece() LockResult {
	if !s.acceptsInput() {
		return LockResult{}
	}

	p := s.active
	spin := DetectSpin(s.board, p, s.rotated, s.kick)
	s.board.Merge(p)
	s.hasActive = false
	s.onGround = false
	s.rotated = false
	s.pieces++

	res := LockResult{Piece: p, Spin: spin}
	if spin != SpinNone {
		s.tspins++
		s.logger.Debug("t-spin", "kind", spin, "rot", p.Rot, "x", p.X, "y", p.Y)
	}

	rows := s.board.FullRows()
	if len(rows) == 0 {
		res.ComboReset = s.expireCombo()
		if pts, ok := SpinScore(spin, 0, s.level); ok {
			s.score += pts
			res.Points = pts
		}
		s.lastLock = res
		s.notifier.PieceLocked(res)
		s.spawnNext()
		return res
	}

	s.beginClear(rows, spin)
	res.Rows = rows
	res.ClearPending = true
	s.lastLock = res
	s.notifier.PieceLocked(res)
	return res
}
