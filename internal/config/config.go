// Package config loads the YAML rules for blockfall and turns them into
// engine configurations.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/engine"
)

// BlockfallConfig is the on-disk configuration.
type BlockfallConfig struct {
	Rules      RulesConfig      `yaml:"rules"`
	Animation  AnimationConfig  `yaml:"animation"`
	Modes      ModesConfig      `yaml:"modes"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RulesConfig holds the board size and core timings.
type RulesConfig struct {
	Width             int `yaml:"width"`
	Height            int `yaml:"height"`
	Preview           int `yaml:"preview"`
	LockDelayMS       int `yaml:"lock_delay_ms"`
	ComboTimeoutMS    int `yaml:"combo_timeout_ms"`
	PerfectClearBonus int `yaml:"perfect_clear_bonus"`
	StartLevel        int `yaml:"start_level"`
}

// AnimationConfig shapes the line clear animation length per level.
type AnimationConfig struct {
	BaseMS         int `yaml:"base_ms"`
	StepMS         int `yaml:"step_ms"`
	MinMS          int `yaml:"min_ms"`
	MinHighLevelMS int `yaml:"min_high_level_ms"`
	HighLevel      int `yaml:"high_level"`
	CeilingMS      int `yaml:"ceiling_ms"`
}

// ModesConfig overrides the mode goals.
type ModesConfig struct {
	MarathonLines     int `yaml:"marathon_lines"`
	UltraSeconds      int `yaml:"ultra_seconds"`
	TimeAttackSeconds int `yaml:"time_attack_seconds"`
}

// DifficultyConfig selects the starting level through a preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// DefaultBlockfallConfig returns the built-in configuration.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Rules: RulesConfig{
			Width:             10,
			Height:            20,
			Preview:           3,
			LockDelayMS:       500,
			ComboTimeoutMS:    5000,
			PerfectClearBonus: 3000,
			StartLevel:        1,
		},
		Animation: AnimationConfig{
			BaseMS:         250,
			StepMS:         15,
			MinMS:          150,
			MinHighLevelMS: 100,
			HighLevel:      10,
			CeilingMS:      1000,
		},
		Modes: ModesConfig{
			MarathonLines:     engine.MarathonGoalLines,
			UltraSeconds:      int(engine.UltraTimeLimit / time.Second),
			TimeAttackSeconds: int(engine.TimeAttackLimit / time.Second),
		},
		Difficulty: DifficultyConfig{Preset: DifficultyFixed},
	}
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Engine builds the engine configuration for mode m.
func (c BlockfallConfig) Engine(m engine.Mode) engine.Config {
	cfg := engine.Config{
		Width:             c.Rules.Width,
		Height:            c.Rules.Height,
		PreviewSize:       c.Rules.Preview,
		LockDelay:         ms(c.Rules.LockDelayMS),
		ComboTimeout:      ms(c.Rules.ComboTimeoutMS),
		PerfectClearBonus: c.Rules.PerfectClearBonus,
		StartLevel:        c.StartLevel(),
		ClearBase:         ms(c.Animation.BaseMS),
		ClearStep:         ms(c.Animation.StepMS),
		ClearMin:          ms(c.Animation.MinMS),
		ClearMinHigh:      ms(c.Animation.MinHighLevelMS),
		ClearHighLevel:    c.Animation.HighLevel,
		ClearCeiling:      ms(c.Animation.CeilingMS),
		Mode:              m,
	}
	switch m {
	case engine.ModeMarathon:
		cfg.GoalLines = c.Modes.MarathonLines
	case engine.ModeUltra:
		cfg.TimeLimit = time.Duration(c.Modes.UltraSeconds) * time.Second
	case engine.ModeTimeAttack:
		cfg.TimeLimit = time.Duration(c.Modes.TimeAttackSeconds) * time.Second
	}
	return cfg
}

// StartLevel returns the level a new game begins at, after the preset.
func (c BlockfallConfig) StartLevel() int {
	if level, ok := StartLevelForPreset(c.Difficulty.Preset); ok {
		return level
	}
	return c.Rules.StartLevel
}

// Validate checks the configuration for every mode.
func (c BlockfallConfig) Validate() error {
	if c.Difficulty.Preset != "" {
		if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
			return err
		}
	}
	if c.Modes.MarathonLines < 1 || c.Modes.UltraSeconds < 1 || c.Modes.TimeAttackSeconds < 1 {
		return errors.New("config: mode goals must be positive")
	}
	for _, m := range engine.Modes {
		if err := c.Engine(m).Validate(); err != nil {
			return fmt.Errorf("config: %s: %w", m, err)
		}
	}
	return nil
}
