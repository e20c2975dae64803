// Package blockfall adapts the engine to the arcade platform: it maps
// input actions to engine calls, drives the engine's logical clock one tick
// per Step and renders the session into a core.Screen.
package blockfall

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/clock"
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Package-level settings applied on Reset, set once by the CLI.
var (
	configPath       string
	difficultyPreset string
	startLevel       int
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the YAML file to load instead of the search path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset overrides the configured difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel overrides the starting level. 0 keeps the configured one.
func SetStartLevel(level int) {
	startLevel = level
}

// SetLogger sets the logger handed to every new session.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// GameID returns the registry ID of a mode.
func GameID(m engine.Mode) string {
	if m == engine.ModeClassic {
		return "blockfall"
	}
	return "blockfall_" + string(m)
}

func init() {
	for _, m := range engine.Modes {
		registry.Register(GameID(m), func() registry.Game {
			return New(m)
		})
	}
}

// Game is one blockfall session behind the registry.Game interface.
type Game struct {
	mode    engine.Mode
	clock   *clock.Manual
	session *engine.Session
	hud     *hud
	rng     *rand.Rand // restart seeds
	preset  string     // overrides difficultyPreset when set

	runtime core.RuntimeConfig
	tickDur time.Duration
	tick    uint64
}

// New creates a game for mode m. Call Reset before stepping it.
func New(m engine.Mode) *Game {
	return &Game{mode: m}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == engine.ModeClassic {
		return "Blockfall"
	}
	return "Blockfall: " + g.mode.Title()
}

// Mode returns the game mode.
func (g *Game) Mode() engine.Mode {
	return g.mode
}

// SetDifficulty overrides the difficulty preset for this game only. It
// takes effect on the next Reset.
func (g *Game) SetDifficulty(preset string) error {
	if _, err := config.ParsePreset(preset); err != nil {
		return err
	}
	g.preset = preset
	return nil
}

// Reset loads the configuration and starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = cfg
	g.tickDur = time.Second / time.Duration(cfg.TickRate)
	g.tick = 0
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.clock = clock.NewManual()
	g.hud = newHUD()

	ecfg := g.engineConfig()
	ecfg.Seed = cfg.Seed

	session, err := engine.NewSession(ecfg, g.clock, engine.WithLogger(logger), engine.WithNotifier(g.hud))
	if err != nil {
		logger.Error("invalid rules, falling back to defaults", "mode", g.mode, "err", err)
		ecfg = engine.ConfigForMode(g.mode)
		ecfg.Seed = cfg.Seed
		session, _ = engine.NewSession(ecfg, g.clock, engine.WithLogger(logger), engine.WithNotifier(g.hud))
	}
	g.session = session
}

// engineConfig resolves the YAML configuration and overrides for this mode.
func (g *Game) engineConfig() engine.Config {
	bc, err := config.LoadBlockfall(configPath)
	if err != nil {
		logger.Warn("config not loaded, using defaults", "path", configPath, "err", err)
		bc = config.DefaultBlockfallConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if err := config.ApplyPreset(&bc, preset); err != nil {
		logger.Warn("ignoring difficulty preset", "err", err)
	}

	ecfg := bc.Engine(g.mode)
	if startLevel > 0 {
		ecfg.StartLevel = startLevel
	}
	return ecfg
}

// Step advances the logical clock by one tick, applies the input and lets
// the session update its timers.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.session.GameOver() {
		cfg := g.runtime
		cfg.Seed = g.rng.Int63()
		g.Reset(cfg)
		return core.StepResult{State: g.State()}
	}

	g.clock.Advance(g.tickDur)

	if in.Has(core.ActionPause) {
		g.session.TogglePause()
	}
	g.applyInput(in)
	g.session.Update()
	g.hud.step()

	return core.StepResult{State: g.State()}
}

// applyInput runs the frame's actions in a fixed order so a replayed
// script yields the same game.
func (g *Game) applyInput(in core.InputFrame) {
	s := g.session
	if in.Has(core.ActionHold) {
		s.Hold()
	}
	if in.Has(core.ActionRotateCW) {
		s.Rotate(true)
	}
	if in.Has(core.ActionRotateCCW) {
		s.Rotate(false)
	}
	if in.Has(core.ActionLeft) {
		s.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		s.MoveRight()
	}
	if in.Has(core.ActionSoftDrop) {
		s.SoftDrop()
	}
	if in.Has(core.ActionHardDrop) {
		s.HardDrop()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:    s.Score(),
		Level:    s.Level(),
		Lines:    s.Lines(),
		GameOver: s.GameOver(),
		Paused:   s.Paused(),
		Won:      s.Reason().Won(),
	}
}

// Stats returns the session counters.
func (g *Game) Stats() engine.Stats {
	return g.session.Stats()
}
