// Package emojidrop provides the EmojiDrop falling-block match-3 game for the arcade.
package emojidrop

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/emojidrop/internal/config"
	platformcore "github.com/vovakirdan/emojidrop/internal/core"
	"github.com/vovakirdan/emojidrop/internal/games/emojidrop/core"
	"github.com/vovakirdan/emojidrop/internal/registry"
)

// GameID is the registry identifier of EmojiDrop.
const GameID = "emojidrop"

// Game adapts the EmojiDrop engine to the arcade platform.
type Game struct {
	rng    *rand.Rand
	engine *core.Engine
	cfg    config.EmojiDropConfig

	// Timing
	tick      uint64
	tickMs    float64 // Duration of one platform tick
	elapsedMs float64 // Time since the last Advance
	flashMs   float64 // Remaining combo flash time

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int

	// Status
	paused   bool
	tooSmall bool
	last     core.AdvanceResult // Most recent landing or game over
}

// Package-level variables for configuration
var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets a custom YAML config path. Empty uses the search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used for landing and game-over events.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// New creates a new EmojiDrop game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "EmojiDrop"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	g.tickMs = cfg.TickMs()
	g.tick = 0
	g.elapsedMs = 0
	g.flashMs = 0
	g.paused = false
	g.last = core.AdvanceResult{}

	gameCfg, err := config.LoadEmojiDrop(configPath)
	if err != nil {
		logger.Warn("falling back to default config", "path", configPath, "err", err)
		gameCfg = config.DefaultEmojiDropConfig()
	}
	g.cfg = gameCfg

	g.engine = core.NewEngine(engineConfig(gameCfg), g.rng)
	g.engine.StartGame()

	g.checkSize()

	logger.Debug("run started", "seed", cfg.Seed, "rows", gameCfg.Board.Rows, "cols", gameCfg.Board.Cols)
}

// Resize follows a terminal resize, pausing while the well does not fit.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkSize()
}

func (g *Game) checkSize() {
	g.tooSmall = g.screenW < g.requiredWidth() || g.screenH < g.requiredHeight()
}

// engineConfig maps the YAML config onto engine parameters.
func engineConfig(c config.EmojiDropConfig) core.Config {
	return core.Config{
		Rows:               c.Board.Rows,
		Cols:               c.Board.Cols,
		SeedRows:           c.Board.SeedRows,
		BaseDropIntervalMs: c.Speed.BaseDropIntervalMs,
		SpeedUpFactor:      c.Speed.SpeedUpFactor,
		MinDropIntervalMs:  c.Speed.MinDropIntervalMs,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	// Handle restart
	if in.Has(platformcore.ActionRestart) && g.engine.Over() {
		g.Reset(platformcore.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(platformcore.ActionPause) && !g.engine.Over() {
		g.paused = !g.paused
	}

	if g.engine.Over() || g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if dir := in.Direction(); dir != 0 {
		g.engine.MoveHorizontal(dir)
	}

	if g.flashMs > 0 {
		g.flashMs = max(g.flashMs-g.tickMs, 0)
	}

	// Drop on the engine's cadence; the interval is re-read every tick
	// because landings shorten it.
	g.elapsedMs += g.tickMs
	if g.elapsedMs >= g.engine.Run().DropIntervalMs {
		g.elapsedMs = 0
		g.handleAdvance(g.engine.Advance())
	}

	return platformcore.StepResult{State: g.State()}
}

// handleAdvance reacts to landings and game over.
func (g *Game) handleAdvance(res core.AdvanceResult) {
	switch res.Kind {
	case core.AdvanceLanded:
		g.last = res
		if len(res.Rounds) > 0 {
			g.flashMs = float64(g.cfg.Display.ComboFlashMs)
		}
		logger.Debug("block landed",
			"symbol", res.Block.Symbol,
			"row", res.Block.Row,
			"col", res.Block.Col,
			"rounds", len(res.Rounds),
			"cleared", res.Outcome.Cleared,
			"points", res.Outcome.Points,
			"combo", res.Outcome.Combo,
		)
		if len(res.Rounds) > 1 {
			logger.Debug("cascade", "rounds", len(res.Rounds), "interval", g.engine.DropInterval())
		}
	case core.AdvanceGameOver:
		g.last = res
		g.flashMs = 0
		most, _ := g.engine.MostCleared()
		logger.Debug("game over",
			"score", g.engine.Score(),
			"col", res.Block.Col,
			"most_cleared", most,
			"ticks", g.tick,
		)
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.Over(),
		Paused:   g.paused,
	}
}

// Summary reports the run's score and per-symbol clear tallies.
func (g *Game) Summary() platformcore.RunSummary {
	cleared := g.engine.Cleared()
	summary := platformcore.RunSummary{
		Score:   g.engine.Score(),
		Cleared: cleared.Map(),
	}
	if most, ok := cleared.MostCleared(); ok {
		summary.MostCleared = most.String()
	}
	return summary
}

// Engine exposes the underlying engine for inspection.
func (g *Game) Engine() *core.Engine {
	return g.engine
}

// Controls returns the key binding hint shown under the well.
func (g *Game) Controls() string {
	return "←/→ move  P pause  R restart  Q quit"
}

var (
	_ registry.Game       = (*Game)(nil)
	_ registry.Summarizer = (*Game)(nil)
	_ registry.Controller = (*Game)(nil)
	_ registry.Resizer    = (*Game)(nil)
)
