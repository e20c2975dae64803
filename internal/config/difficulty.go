package config

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned for a difficulty name that is not defined.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // use rules.start_level
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name.
func ParsePreset(name string) (DifficultyPreset, error) {
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownPreset, name)
}

// StartLevelForPreset returns the start level a preset implies. ok is
// false for the fixed preset and for unknown names.
func StartLevelForPreset(preset DifficultyPreset) (level int, ok bool) {
	switch preset {
	case DifficultyEasy:
		return 1, true
	case DifficultyNormal:
		return 3, true
	case DifficultyHard:
		return 6, true
	default:
		return 0, false
	}
}

// ApplyPreset sets the difficulty preset on cfg. An empty name keeps the
// configured one.
func ApplyPreset(cfg *BlockfallConfig, name string) error {
	if name == "" {
		return nil
	}
	p, err := ParsePreset(name)
	if err != nil {
		return err
	}
	cfg.Difficulty.Preset = p
	return nil
}
