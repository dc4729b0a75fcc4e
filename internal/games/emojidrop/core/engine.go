package core

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// Default engine parameters.
const (
	DefaultRows               = 10
	DefaultCols               = 6
	DefaultSeedRows           = 3
	DefaultBaseDropIntervalMs = 400.0
	DefaultSpeedUpFactor      = 1.05
	DefaultMinDropIntervalMs  = 100.0
)

// MaxBoardSize bounds both board dimensions.
const MaxBoardSize = 64

// Rand is the random source used for symbol draws.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Config holds the engine parameters fixed at construction.
type Config struct {
	Rows               int
	Cols               int
	SeedRows           int     // Bottom rows filled with random symbols at start
	BaseDropIntervalMs float64 // Drop interval at the start of a run
	SpeedUpFactor      float64 // Divisor applied after a clearing landing
	MinDropIntervalMs  float64 // Floor for the drop interval
}

// DefaultConfig returns the classic 10x6 well.
func DefaultConfig() Config {
	return Config{
		Rows:               DefaultRows,
		Cols:               DefaultCols,
		SeedRows:           DefaultSeedRows,
		BaseDropIntervalMs: DefaultBaseDropIntervalMs,
		SpeedUpFactor:      DefaultSpeedUpFactor,
		MinDropIntervalMs:  DefaultMinDropIntervalMs,
	}
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("board size must be positive, got %dx%d", c.Rows, c.Cols)
	}
	if c.Rows > MaxBoardSize || c.Cols > MaxBoardSize {
		return fmt.Errorf("board size must be at most %dx%d, got %dx%d", MaxBoardSize, MaxBoardSize, c.Rows, c.Cols)
	}
	if c.SeedRows < 0 || c.SeedRows > c.Rows {
		return fmt.Errorf("seed rows must be in [0, %d], got %d", c.Rows, c.SeedRows)
	}
	if !finite(c.BaseDropIntervalMs) || c.BaseDropIntervalMs <= 0 {
		return fmt.Errorf("base drop interval must be positive, got %v", c.BaseDropIntervalMs)
	}
	if !finite(c.MinDropIntervalMs) || c.MinDropIntervalMs <= 0 {
		return fmt.Errorf("min drop interval must be positive, got %v", c.MinDropIntervalMs)
	}
	if !finite(c.SpeedUpFactor) || c.SpeedUpFactor < 1 {
		return fmt.Errorf("speed-up factor must be >= 1, got %v", c.SpeedUpFactor)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SpawnCol returns the column new blocks appear in.
// Even widths lean left of center: column 2 of 6.
func (c Config) SpawnCol() int {
	return (c.Cols - 1) / 2
}

// Block is the falling block under player control.
type Block struct {
	Symbol Symbol
	Row    int
	Col    int
}

// Pos returns the block's board coordinate.
func (b Block) Pos() Coord {
	return At(b.Row, b.Col)
}

// RunState is the per-run scoring record. It is replaced as a whole on
// every mutating operation.
type RunState struct {
	Score          int
	Combo          int
	DropIntervalMs float64
	Cleared        SymbolCounts
	Over           bool
}

func newRunState(cfg Config) RunState {
	return RunState{
		Combo:          1,
		DropIntervalMs: cfg.BaseDropIntervalMs,
	}
}

// AdvanceKind describes what a call to Advance did.
type AdvanceKind int

const (
	AdvanceIdle      AdvanceKind = iota // No block or run over
	AdvanceDescended                    // Block moved down one row
	AdvanceLanded                       // Block landed and was resolved
	AdvanceGameOver                     // Block could not leave row 0
)

// String returns a string representation of the kind.
func (k AdvanceKind) String() string {
	switch k {
	case AdvanceIdle:
		return "idle"
	case AdvanceDescended:
		return "descended"
	case AdvanceLanded:
		return "landed"
	case AdvanceGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// AdvanceResult reports the effect of one Advance call.
type AdvanceResult struct {
	Kind    AdvanceKind
	Block   Block   // Block position before the step
	Rounds  []Round // Resolution log of a landing
	Outcome Outcome // Scoring fold of Rounds
}

// Engine owns the board, the falling block and the run state.
// All methods are safe for concurrent use.
type Engine struct {
	mu      sync.Mutex
	cfg     Config
	rng     Rand
	board   *Board
	block   Block
	active  bool
	run     RunState
	started bool
}

// NewEngine creates an engine with an empty board and no active block.
// Panics if cfg is invalid or rng is nil.
func NewEngine(cfg Config, rng Rand) *Engine {
	if err := cfg.Validate(); err != nil {
		panic("emojidrop: " + err.Error())
	}
	if rng == nil {
		panic("emojidrop: nil random source")
	}
	return &Engine{
		cfg:   cfg,
		rng:   rng,
		board: NewBoard(cfg.Rows, cfg.Cols),
		run:   newRunState(cfg),
	}
}

func (e *Engine) randomSymbol() Symbol {
	return Symbol(e.rng.Intn(int(SymbolCount)))
}

// StartGame resets the board, seeds the bottom rows and spawns a block.
func (e *Engine) StartGame() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.board.Clear()
	for row := e.cfg.Rows - e.cfg.SeedRows; row < e.cfg.Rows; row++ {
		for col := range e.cfg.Cols {
			e.board.SetSymbol(At(row, col), e.randomSymbol())
		}
	}
	e.run = newRunState(e.cfg)
	e.active = false
	e.started = true
	e.spawn()
}

// Spawn places a new block at the top of the spawn column.
// Does nothing once the run is over.
func (e *Engine) Spawn() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spawn()
}

func (e *Engine) spawn() {
	if e.run.Over {
		return
	}
	e.block = Block{Symbol: e.randomSymbol(), Row: 0, Col: e.cfg.SpawnCol()}
	e.active = true
}

// MoveHorizontal shifts the block one column left (dir=-1) or right (dir=+1).
// Returns true if the block moved.
func (e *Engine) MoveHorizontal(dir int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if dir != -1 && dir != 1 {
		return false
	}
	if !e.active || e.run.Over {
		return false
	}
	dest := At(e.block.Row, e.block.Col+dir)
	if !e.board.InBounds(dest) || e.board.Occupied(dest) {
		return false
	}
	e.block.Col = dest.Col
	return true
}

// Advance moves the block down one row, or lands it when it cannot descend.
func (e *Engine) Advance() AdvanceResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.active || e.run.Over {
		return AdvanceResult{Kind: AdvanceIdle}
	}

	before := e.block
	next := before.Pos().Below()
	if e.board.InBounds(next) && !e.board.Occupied(next) {
		e.block.Row = next.Row
		return AdvanceResult{Kind: AdvanceDescended, Block: before}
	}

	if before.Row == 0 {
		if !e.board.Occupied(before.Pos()) {
			e.board.SetSymbol(before.Pos(), before.Symbol)
		}
		run := e.run
		run.Over = true
		e.run = run
		e.active = false
		return AdvanceResult{Kind: AdvanceGameOver, Block: before, Outcome: Outcome{Combo: e.run.Combo}}
	}

	e.board.SetSymbol(before.Pos(), before.Symbol)
	res := Resolve(e.board)
	e.board = res.Board
	outcome := Tally(res.Rounds)
	e.run = e.applyOutcome(e.run, outcome)

	e.active = false
	e.spawn()

	return AdvanceResult{
		Kind:    AdvanceLanded,
		Block:   before,
		Rounds:  res.Rounds,
		Outcome: outcome,
	}
}

// applyOutcome returns the run state after a landing.
func (e *Engine) applyOutcome(run RunState, out Outcome) RunState {
	run.Score += out.Points
	run.Combo = out.Combo
	run.Cleared.Merge(out.Counts)
	if out.SpeedUp {
		run.DropIntervalMs /= e.cfg.SpeedUpFactor
		if run.DropIntervalMs < e.cfg.MinDropIntervalMs {
			run.DropIntervalMs = e.cfg.MinDropIntervalMs
		}
	}
	return run
}

// LoadBoard replaces the board contents with a copy of b.
// Panics if the dimensions differ from the engine's.
func (e *Engine) LoadBoard(b *Board) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if b.Rows() != e.cfg.Rows || b.Cols() != e.cfg.Cols {
		panic(fmt.Sprintf("emojidrop: board is %dx%d, engine expects %dx%d",
			b.Rows(), b.Cols(), e.cfg.Rows, e.cfg.Cols))
	}
	e.board = b.Clone()
}

// PlaceBlock sets the active block, replacing any current one.
func (e *Engine) PlaceBlock(blk Block) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.block = blk
	e.active = true
}

// Board returns a deep copy of the board.
func (e *Engine) Board() *Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.Clone()
}

// Block returns the falling block and whether one is active.
func (e *Engine) Block() (Block, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.block, e.active
}

// Run returns a copy of the run state.
func (e *Engine) Run() RunState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.run
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.Run().Score
}

// Combo returns the current combo multiplier.
func (e *Engine) Combo() int {
	return e.Run().Combo
}

// Over returns true once the run has ended.
func (e *Engine) Over() bool {
	return e.Run().Over
}

// Started returns true once StartGame has been called.
func (e *Engine) Started() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.started
}

// DropInterval returns the current drop interval as a duration.
func (e *Engine) DropInterval() time.Duration {
	return time.Duration(e.Run().DropIntervalMs * float64(time.Millisecond))
}

// Cleared returns the per-symbol clear tallies of the run.
func (e *Engine) Cleared() SymbolCounts {
	return e.Run().Cleared
}

// MostCleared returns the symbol cleared most often in the run.
func (e *Engine) MostCleared() (Symbol, bool) {
	return e.Run().Cleared.MostCleared()
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}
