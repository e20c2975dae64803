package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/blockfall/internal/engine"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := ParseBlockfall(defaultBlockfallYAML)
	if err != nil {
		t.Fatalf("ParseBlockfall(embedded) error = %v", err)
	}
	if diff := cmp.Diff(DefaultBlockfallConfig(), cfg); diff != "" {
		t.Errorf("embedded default mismatch (-builtin +embedded):\n%s", diff)
	}
}

func TestDefaultEngineConfigMatchesEngineDefaults(t *testing.T) {
	for _, m := range engine.Modes {
		got := DefaultBlockfallConfig().Engine(m)
		want := engine.ConfigForMode(m)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Engine(%s) mismatch (-want +got):\n%s", m, diff)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
rules:
  width: 12
  lock_delay_ms: 800
modes:
  ultra_seconds: 60
difficulty:
  preset: hard
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlockfall(path)
	if err != nil {
		t.Fatalf("LoadBlockfall() error = %v", err)
	}

	ultra := cfg.Engine(engine.ModeUltra)
	if ultra.Width != 12 {
		t.Errorf("width = %d, expected 12", ultra.Width)
	}
	if ultra.Height != 20 {
		t.Errorf("height = %d, expected default 20", ultra.Height)
	}
	if ultra.LockDelay != 800*time.Millisecond {
		t.Errorf("lock delay = %v, expected 800ms", ultra.LockDelay)
	}
	if ultra.TimeLimit != time.Minute {
		t.Errorf("ultra limit = %v, expected 1m", ultra.TimeLimit)
	}
	if ultra.StartLevel != 6 {
		t.Errorf("start level = %d, expected 6 for hard", ultra.StartLevel)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("rules: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("rules:\n  preview: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "nope.yaml")},
		{"malformed", bad},
		{"out of range", invalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadBlockfall(tc.path); err == nil {
				t.Errorf("LoadBlockfall(%s) should fail", tc.name)
			}
		})
	}
}

func TestStartLevelForPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected int
	}{
		{DifficultyEasy, 1},
		{DifficultyNormal, 3},
		{DifficultyHard, 6},
		{DifficultyFixed, 4}, // falls back to rules.start_level
	}

	for _, tc := range tests {
		cfg := DefaultBlockfallConfig()
		cfg.Rules.StartLevel = 4
		cfg.Difficulty.Preset = tc.preset
		if got := cfg.StartLevel(); got != tc.expected {
			t.Errorf("StartLevel() with %s = %d, expected %d", tc.preset, got, tc.expected)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultBlockfallConfig()
	if err := ApplyPreset(&cfg, ""); err != nil || cfg.Difficulty.Preset != DifficultyFixed {
		t.Errorf("ApplyPreset(\"\") = %v, preset %s, expected no change", err, cfg.Difficulty.Preset)
	}
	if err := ApplyPreset(&cfg, "normal"); err != nil || cfg.Difficulty.Preset != DifficultyNormal {
		t.Errorf("ApplyPreset(normal) = %v, preset %s", err, cfg.Difficulty.Preset)
	}
	err := ApplyPreset(&cfg, "insane")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ApplyPreset(insane) error = %v, expected ErrUnknownPreset", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlockfallConfig)
		ok     bool
	}{
		{"default", func(*BlockfallConfig) {}, true},
		{"tiny board", func(c *BlockfallConfig) { c.Rules.Width = 2 }, false},
		{"no marathon goal", func(c *BlockfallConfig) { c.Modes.MarathonLines = 0 }, false},
		{"ceiling below base", func(c *BlockfallConfig) { c.Animation.CeilingMS = 100 }, false},
		{"unknown preset", func(c *BlockfallConfig) { c.Difficulty.Preset = "insane" }, false},
		{"empty preset", func(c *BlockfallConfig) { c.Difficulty.Preset = "" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBlockfallConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() error = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}
