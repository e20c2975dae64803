package engine

import (
	"fmt"
	"time"
)

// Mode selects the win and end conditions of a session.
type Mode string

const (
	ModeClassic    Mode = "classic"     // endless, ends on top out
	ModeMarathon   Mode = "marathon"    // won at a line goal
	ModeUltra      Mode = "ultra"       // score attack with a short clock
	ModeTimeAttack Mode = "time_attack" // score attack with a longer clock
)

// Modes lists every mode in menu order.
var Modes = []Mode{ModeClassic, ModeMarathon, ModeUltra, ModeTimeAttack}

// Default mode parameters.
const (
	MarathonGoalLines = 150
	UltraTimeLimit    = 120 * time.Second
	TimeAttackLimit   = 180 * time.Second
)

// ParseMode validates a mode name.
func ParseMode(name string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("engine: unknown mode %q", name)
}

// Title returns the display name.
func (m Mode) Title() string {
	switch m {
	case ModeMarathon:
		return "Marathon"
	case ModeUltra:
		return "Ultra"
	case ModeTimeAttack:
		return "Time Attack"
	default:
		return "Classic"
	}
}

// Rules returns the default line goal and time limit for m.
func (m Mode) Rules() (goalLines int, limit time.Duration) {
	switch m {
	case ModeMarathon:
		return MarathonGoalLines, 0
	case ModeUltra:
		return 0, UltraTimeLimit
	case ModeTimeAttack:
		return 0, TimeAttackLimit
	default:
		return 0, 0
	}
}

// GameOverReason says why a session ended.
type GameOverReason uint8

const (
	ReasonNone GameOverReason = iota
	ReasonTopOut
	ReasonGoalReached
	ReasonTimeUp
)

// String returns a display name.
func (r GameOverReason) String() string {
	switch r {
	case ReasonTopOut:
		return "top out"
	case ReasonGoalReached:
		return "goal reached"
	case ReasonTimeUp:
		return "time up"
	default:
		return "playing"
	}
}

// Won reports whether the session ended by meeting its goal.
func (r GameOverReason) Won() bool {
	return r == ReasonGoalReached
}
