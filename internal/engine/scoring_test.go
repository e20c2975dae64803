package engine

import (
	"testing"
	"time"
)

func TestLineClearScore(t *testing.T) {
	tests := []struct {
		lines, level, combo, expected int
	}{
		{1, 1, 1, 40},
		{2, 1, 1, 100},
		{3, 1, 1, 300},
		{4, 1, 1, 1200},
		{1, 1, 2, 80},
		{1, 3, 1, 120},
		{4, 2, 5, 12000},
		{4, 2, 9, 12000}, // multiplier capped at 5
		{1, 1, 0, 40},    // combo below 1 counts as 1
		{0, 1, 1, 0},
		{5, 1, 1, 0},
	}

	for _, tc := range tests {
		got := LineClearScore(tc.lines, tc.level, tc.combo)
		if got != tc.expected {
			t.Errorf("LineClearScore(%d, %d, %d) = %d, expected %d", tc.lines, tc.level, tc.combo, got, tc.expected)
		}
	}
}

func TestSpinScore(t *testing.T) {
	tests := []struct {
		spin     Spin
		lines    int
		level    int
		expected int
		ok       bool
	}{
		{SpinFull, 0, 1, 400, true},
		{SpinFull, 1, 1, 800, true},
		{SpinFull, 2, 2, 2400, true},
		{SpinFull, 3, 1, 1600, true},
		{SpinMini, 0, 1, 200, true},
		{SpinMini, 1, 3, 600, true},
		{SpinMini, 2, 1, 400, true},
		{SpinFull, 4, 1, 0, false},
		{SpinNone, 1, 1, 0, false},
	}

	for _, tc := range tests {
		got, ok := SpinScore(tc.spin, tc.lines, tc.level)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("SpinScore(%v, %d, %d) = %d, %v, expected %d, %v", tc.spin, tc.lines, tc.level, got, ok, tc.expected, tc.ok)
		}
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		lines, start, expected int
	}{
		{0, 1, 1},
		{9, 1, 1},
		{10, 1, 2},
		{25, 1, 3},
		{10, 5, 5}, // start level is a floor
		{60, 5, 7},
	}

	for _, tc := range tests {
		if got := LevelFor(tc.lines, tc.start); got != tc.expected {
			t.Errorf("LevelFor(%d, %d) = %d, expected %d", tc.lines, tc.start, got, tc.expected)
		}
	}
}

func TestSpeedFor(t *testing.T) {
	tests := []struct {
		level    int
		expected time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, 465 * time.Millisecond},
		{9, 220 * time.Millisecond},
		{10, 195 * time.Millisecond},
		{15, 170 * time.Millisecond},
		{19, 150 * time.Millisecond},
		{40, 150 * time.Millisecond},
	}

	for _, tc := range tests {
		if got := SpeedFor(tc.level); got != tc.expected {
			t.Errorf("SpeedFor(%d) = %v, expected %v", tc.level, got, tc.expected)
		}
	}
}

func TestClearDuration(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		level    int
		expected time.Duration
	}{
		{1, 235 * time.Millisecond},
		{5, 175 * time.Millisecond},
		{7, 150 * time.Millisecond},
		{9, 150 * time.Millisecond},
		{10, 100 * time.Millisecond},
		{20, 100 * time.Millisecond},
	}

	for _, tc := range tests {
		if got := cfg.ClearDuration(tc.level); got != tc.expected {
			t.Errorf("ClearDuration(%d) = %v, expected %v", tc.level, got, tc.expected)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"narrow", func(c *Config) { c.Width = 3 }, false},
		{"no preview", func(c *Config) { c.PreviewSize = 0 }, false},
		{"long preview", func(c *Config) { c.PreviewSize = 7 }, false},
		{"zero lock delay", func(c *Config) { c.LockDelay = 0 }, false},
		{"level zero", func(c *Config) { c.StartLevel = 0 }, false},
		{"short ceiling", func(c *Config) { c.ClearCeiling = 100 * time.Millisecond }, false},
		{"unknown mode", func(c *Config) { c.Mode = "zen" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() error = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestConfigForMode(t *testing.T) {
	if cfg := ConfigForMode(ModeMarathon); cfg.GoalLines != MarathonGoalLines || cfg.TimeLimit != 0 {
		t.Errorf("marathon config = %d lines / %v, expected %d / 0", cfg.GoalLines, cfg.TimeLimit, MarathonGoalLines)
	}
	if cfg := ConfigForMode(ModeUltra); cfg.TimeLimit != UltraTimeLimit {
		t.Errorf("ultra time limit = %v, expected %v", cfg.TimeLimit, UltraTimeLimit)
	}
	if cfg := ConfigForMode(ModeTimeAttack); cfg.TimeLimit != TimeAttackLimit {
		t.Errorf("time attack limit = %v, expected %v", cfg.TimeLimit, TimeAttackLimit)
	}
	if _, err := ParseMode("zen"); err == nil {
		t.Error("ParseMode(\"zen\") should fail")
	}
}
