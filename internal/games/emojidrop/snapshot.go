package emojidrop

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	Score          int
	Combo          int
	DropIntervalMs float64
	HasBlock       bool
	BlockSymbol    string
	BlockRow       int
	BlockCol       int
	Board          []string // ASCII rows, top first
	Cleared        int      // Cells cleared this run
	State          GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.engine.Over():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	run := g.engine.Run()
	blk, active := g.engine.Block()

	snap := Snapshot{
		Tick:           g.tick,
		Score:          run.Score,
		Combo:          run.Combo,
		DropIntervalMs: run.DropIntervalMs,
		HasBlock:       active,
		Board:          g.engine.Board().Lines(),
		Cleared:        run.Cleared.Total(),
		State:          state,
	}
	if active {
		snap.BlockSymbol = blk.Symbol.String()
		snap.BlockRow = blk.Row
		snap.BlockCol = blk.Col
	}
	return snap
}
