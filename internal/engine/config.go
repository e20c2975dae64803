package engine

import (
	"errors"
	"fmt"
	"time"
)

// Config holds the tunable rules of a Session.
type Config struct {
	Width       int
	Height      int
	PreviewSize int

	LockDelay         time.Duration
	ComboTimeout      time.Duration
	PerfectClearBonus int
	StartLevel        int

	// Clear animation: max(min, ClearBase - level*ClearStep), where min
	// drops to ClearMinHigh from level ClearHighLevel on. Elapsed times
	// outside [0, ClearCeiling] are treated as corrupt and clamped.
	ClearBase      time.Duration
	ClearStep      time.Duration
	ClearMin       time.Duration
	ClearMinHigh   time.Duration
	ClearHighLevel int
	ClearCeiling   time.Duration

	Mode      Mode
	GoalLines int           // 0 means no line goal
	TimeLimit time.Duration // 0 means untimed

	Seed int64
}

// DefaultConfig returns the standard classic-mode rules.
func DefaultConfig() Config {
	return Config{
		Width:             10,
		Height:            20,
		PreviewSize:       3,
		LockDelay:         500 * time.Millisecond,
		ComboTimeout:      5 * time.Second,
		PerfectClearBonus: 3000,
		StartLevel:        1,
		ClearBase:         250 * time.Millisecond,
		ClearStep:         15 * time.Millisecond,
		ClearMin:          150 * time.Millisecond,
		ClearMinHigh:      100 * time.Millisecond,
		ClearHighLevel:    10,
		ClearCeiling:      time.Second,
		Mode:              ModeClassic,
	}
}

// ConfigForMode returns DefaultConfig with the goal and time limit of m.
func ConfigForMode(m Mode) Config {
	cfg := DefaultConfig()
	cfg.Mode = m
	cfg.GoalLines, cfg.TimeLimit = m.Rules()
	return cfg
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.Width < 4:
		return fmt.Errorf("engine: width %d is below 4", c.Width)
	case c.Height < 4:
		return fmt.Errorf("engine: height %d is below 4", c.Height)
	case c.PreviewSize < 1 || c.PreviewSize > 6:
		return fmt.Errorf("engine: preview size %d is outside 1..6", c.PreviewSize)
	case c.LockDelay <= 0:
		return errors.New("engine: lock delay must be positive")
	case c.ComboTimeout <= 0:
		return errors.New("engine: combo timeout must be positive")
	case c.PerfectClearBonus < 0:
		return errors.New("engine: perfect clear bonus must not be negative")
	case c.StartLevel < 1:
		return fmt.Errorf("engine: start level %d is below 1", c.StartLevel)
	case c.ClearMin <= 0 || c.ClearMinHigh <= 0:
		return errors.New("engine: clear animation minimums must be positive")
	case c.ClearCeiling < c.ClearBase || c.ClearCeiling < c.ClearMin:
		return errors.New("engine: clear ceiling is shorter than the animation")
	case c.GoalLines < 0 || c.TimeLimit < 0:
		return errors.New("engine: mode goal and time limit must not be negative")
	}
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	return nil
}

// ClearDuration returns how long the line-clear animation lasts at level.
func (c Config) ClearDuration(level int) time.Duration {
	floor := c.ClearMin
	if level >= c.ClearHighLevel {
		floor = c.ClearMinHigh
	}
	d := c.ClearBase - time.Duration(level)*c.ClearStep
	if d < floor {
		return floor
	}
	return d
}
