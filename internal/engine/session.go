package engine

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/clock"
)

// Session is one game: it owns the board, the randomizer, the active piece,
// hold and preview, timers and counters. It is not safe for concurrent use.
type Session struct {
	cfg      Config
	clock    clock.Clock
	logger   *log.Logger
	notifier Notifier

	rng   *rand.Rand
	board *Board
	bag   *Bag
	queue *Queue

	// Active piece
	active    Piece
	hasActive bool
	rotated   bool // last successful action was a rotation
	kick      int  // kick index used by that rotation

	hold     Kind
	holdUsed bool

	// Timers
	onGround    bool
	groundStart time.Time
	lastGravity time.Time
	startedAt   time.Time
	pausedAt    time.Time

	// Counters
	score         int
	lines         int
	level         int
	speed         time.Duration
	combo         int
	lastClear     time.Time
	hasCleared    bool
	pieces        int
	tetrises      int
	tspins        int
	perfectClears int

	clear    clearState
	levelUp  bool
	lastLock LockResult
	lastClr  ClearResult
	paused   bool
	gameOver bool
	reason   GameOverReason
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for timing warnings and recovery errors.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithNotifier sets the event sink.
func WithNotifier(n Notifier) Option {
	return func(s *Session) {
		if n != nil {
			s.notifier = n
		}
	}
}

// NewSession validates cfg and starts a new game at the clock's current time.
func NewSession(cfg Config, clk clock.Clock, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		cfg:      cfg,
		clock:    clk,
		logger:   log.New(io.Discard),
		notifier: NopNotifier{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s, nil
}

// Reset starts over with the configured seed.
func (s *Session) Reset() {
	now := s.clock.Now()

	s.rng = rand.New(rand.NewSource(s.cfg.Seed))
	s.board = NewBoard(s.cfg.Width, s.cfg.Height)
	s.bag = NewBag(s.rng)
	s.queue = NewQueue(s.bag, s.cfg.PreviewSize)

	s.hasActive = false
	s.rotated = false
	s.kick = 0
	s.hold = KindNone
	s.holdUsed = false

	s.onGround = false
	s.lastGravity = now
	s.startedAt = now

	s.score = 0
	s.lines = 0
	s.level = s.cfg.StartLevel
	s.speed = SpeedFor(s.level)
	s.combo = 0
	s.hasCleared = false
	s.pieces = 0
	s.tetrises = 0
	s.tspins = 0
	s.perfectClears = 0

	s.clear = clearState{}
	s.levelUp = false
	s.lastLock = LockResult{}
	s.lastClr = ClearResult{}
	s.paused = false
	s.gameOver = false
	s.reason = ReasonNone

	s.spawnNext()
}

// Update advances timers by one frame: the clear animation, mode time
// limits, lock delay and gravity.
func (s *Session) Update() {
	if s.gameOver || s.paused {
		return
	}
	if s.cfg.TimeLimit > 0 && s.PlayTime() >= s.cfg.TimeLimit {
		s.end(ReasonTimeUp)
		return
	}
	if s.clear.animating {
		s.advanceClear()
		return
	}
	if !s.hasActive {
		return
	}

	if s.onGround {
		if !s.board.Fits(s.active.Moved(0, 1)) {
			if s.ShouldLock() {
				s.FixPiece()
			}
			return
		}
		s.onGround = false
	}

	now := s.clock.Now()
	if now.Sub(s.lastGravity) >= s.speed {
		s.lastGravity = now
		s.Gravity()
	}
}

// TogglePause pauses or resumes play and returns the new paused state.
// Every timer is shifted by the paused span on resume.
func (s *Session) TogglePause() bool {
	if s.gameOver {
		return s.paused
	}
	now := s.clock.Now()
	if !s.paused {
		s.paused = true
		s.pausedAt = now
		return true
	}

	shift := now.Sub(s.pausedAt)
	s.startedAt = s.startedAt.Add(shift)
	s.lastGravity = s.lastGravity.Add(shift)
	if s.onGround {
		s.groundStart = s.groundStart.Add(shift)
	}
	if s.clear.animating {
		s.clear.start = s.clear.start.Add(shift)
	}
	if s.hasCleared {
		s.lastClear = s.lastClear.Add(shift)
	}
	s.paused = false
	return false
}

func (s *Session) end(reason GameOverReason) {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.reason = reason
	s.logger.Debug("game over", "mode", s.cfg.Mode, "reason", reason, "score", s.score, "lines", s.lines)
	s.notifier.GameOver(s.Stats())
}

// PlayTime returns the logical time played, excluding pauses.
func (s *Session) PlayTime() time.Duration {
	now := s.clock.Now()
	if s.paused {
		now = s.pausedAt
	}
	return now.Sub(s.startedAt)
}

// Config returns the rules the session runs with.
func (s *Session) Config() Config { return s.cfg }

// Board returns a copy of the locked cells.
func (s *Session) Board() *Board { return s.board.Clone() }

// Active returns the falling piece. ok is false while a clear animates.
func (s *Session) Active() (Piece, bool) { return s.active, s.hasActive }

// Preview returns the upcoming kinds, next first.
func (s *Session) Preview() []Kind { return s.queue.Peek() }

// Held returns the held kind (KindNone if empty) and whether hold was
// already used by the current piece.
func (s *Session) Held() (Kind, bool) { return s.hold, s.holdUsed }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns the current level.
func (s *Session) Level() int { return s.level }

// Lines returns the total lines cleared.
func (s *Session) Lines() int { return s.lines }

// Speed returns the gravity interval.
func (s *Session) Speed() time.Duration { return s.speed }

// Combo returns the current combo count.
func (s *Session) Combo() int { return s.combo }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool { return s.gameOver }

// Reason returns why the session ended.
func (s *Session) Reason() GameOverReason { return s.reason }

// LastLock returns the most recent lock outcome.
func (s *Session) LastLock() LockResult { return s.lastLock }

// LastClear returns the most recent finished clear.
func (s *Session) LastClear() ClearResult { return s.lastClr }

// TakeLevelUp returns and clears the one-shot level-up flag.
func (s *Session) TakeLevelUp() bool {
	up := s.levelUp
	s.levelUp = false
	return up
}

// Stats returns a snapshot of the counters.
func (s *Session) Stats() Stats {
	st := Stats{
		Mode:          s.cfg.Mode,
		Score:         s.score,
		Lines:         s.lines,
		Level:         s.level,
		Speed:         s.speed,
		Combo:         s.combo,
		Pieces:        s.pieces,
		Tetrises:      s.tetrises,
		TSpins:        s.tspins,
		PerfectClears: s.perfectClears,
		PlayTime:      s.PlayTime(),
		GameOver:      s.gameOver,
		Reason:        s.reason,
	}
	if s.cfg.TimeLimit > 0 {
		st.Remaining = max(0, s.cfg.TimeLimit-st.PlayTime)
	}
	return st
}
