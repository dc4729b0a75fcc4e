package core

// PointsPerRun is awarded for every full group of MinRun cleared cells.
const PointsPerRun = 10

// Outcome is the scoring fold of one landing's rounds.
type Outcome struct {
	Points  int          // Points earned across all rounds
	Combo   int          // Multiplier of the final round, 1 with no rounds
	Cleared int          // Distinct cells cleared across all rounds
	Counts  SymbolCounts // Cleared cells per symbol
	SpeedUp bool         // Whether the drop interval should shrink
}

// maxMultiplierShift caps the combo multiplier at 2^30.
const maxMultiplierShift = 30

// RoundMultiplier returns 2^(k-1) for a 1-based round index k,
// saturating at 2^30.
func RoundMultiplier(k int) int {
	if k < 1 {
		return 1
	}
	return 1 << min(k-1, maxMultiplierShift)
}

// RoundPoints returns the points a single round is worth.
func RoundPoints(r Round) int {
	return (r.Size() / MinRun) * PointsPerRun * RoundMultiplier(r.Index)
}

// Tally folds a round log into an Outcome.
// Rounds with a zero Index are numbered by their position in the log.
func Tally(rounds []Round) Outcome {
	out := Outcome{Combo: 1}
	for i, r := range rounds {
		if r.Index == 0 {
			r.Index = i + 1
		}
		out.Points += RoundPoints(r)
		out.Cleared += r.Size()
		out.Counts.Merge(r.Counts)
		out.Combo = RoundMultiplier(r.Index)
	}
	out.SpeedUp = len(rounds) > 0
	return out
}
