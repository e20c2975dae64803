package engine

import "time"

// LockResult describes a piece being fixed to the board.
type LockResult struct {
	Piece        Piece
	Spin         Spin
	Rows         []int // full rows found at lock, empty when nothing clears
	ClearPending bool  // rows are animating and spawning is deferred
	Points       int   // awarded at lock time (zero-line T-spins)
	ComboReset   bool  // the combo window expired with this lock
}

// ClearStatus is the outcome of finishing a line clear.
type ClearStatus uint8

const (
	ClearIdle      ClearStatus = iota // nothing was animating
	ClearCompleted                    // rows removed and scored
	ClearRecovered                    // bookkeeping was inconsistent; state reset without scoring
)

// String returns a display name.
func (c ClearStatus) String() string {
	switch c {
	case ClearCompleted:
		return "completed"
	case ClearRecovered:
		return "recovered"
	default:
		return "idle"
	}
}

// ClearResult describes a finished line clear.
type ClearResult struct {
	Status       ClearStatus
	Rows         []int
	Lines        int
	Tetris       bool
	Spin         Spin
	Combo        int
	PerfectClear bool
	Points       int
	Level        int // level after the clear
	LevelUp      bool
}

// Stats is a snapshot of the session's counters.
type Stats struct {
	Mode          Mode
	Score         int
	Lines         int
	Level         int
	Speed         time.Duration
	Combo         int
	Pieces        int
	Tetrises      int
	TSpins        int
	PerfectClears int
	PlayTime      time.Duration
	Remaining     time.Duration // time left in timed modes, zero otherwise
	GameOver      bool
	Reason        GameOverReason
}

// Notifier receives session events. Implementations must not call back
// into the Session.
type Notifier interface {
	PieceLocked(LockResult)
	LinesCleared(ClearResult)
	LevelUp(level int)
	GameOver(Stats)
}

// NopNotifier ignores every event.
type NopNotifier struct{}

func (NopNotifier) PieceLocked(LockResult)   {}
func (NopNotifier) LinesCleared(ClearResult) {}
func (NopNotifier) LevelUp(int)              {}
func (NopNotifier) GameOver(Stats)           {}

var _ Notifier = NopNotifier{}
