package game

// runScores maps the length of a run inside a segment to its score. Runs of
// WinLength or more are decisive and score Win.
var runScores = [WinLength]float64{0, 1, 2, 4}

var (
	// DefaultEvaluator is the segment heuristic used when a player is built
	// without an explicit evaluator.
	DefaultEvaluator Evaluator = EvaluatorFunc(EvaluateSegments)
	CenterEvaluator  Evaluator = EvaluatorFunc(EvaluateCenterWeighted)
)

// EvaluateSegments scores a state for perspective. Terminal states score
// Win, Loss or 0. Otherwise every segment owned by a single player adds (for
// perspective) or subtracts (for the opponent) the score of its longest run,
// and any immediate winning reply for the opponent forces Loss.
func EvaluateSegments(state *State, perspective Player) float64 {
	if score, ok := terminalScore(state, perspective); ok {
		return score
	}
	return guard(state, perspective, segmentScore(state, perspective))
}

// EvaluateCenterWeighted adds a preference for pieces in the center column
// to the segment score.
func EvaluateCenterWeighted(state *State, perspective Player) float64 {
	if score, ok := terminalScore(state, perspective); ok {
		return score
	}
	score := segmentScore(state, perspective)
	center := state.Columns() / 2
	for r := 0; r < state.Rows(); r++ {
		switch state.Cell(r, center) {
		case perspective:
			score += 3
		case perspective.Opponent():
			score -= 3
		}
	}
	return guard(state, perspective, score)
}

func terminalScore(state *State, perspective Player) (float64, bool) {
	outcome := state.CheckWin()
	switch {
	case !outcome.Ended:
		return 0, false
	case outcome.Winner == None:
		return 0, true
	case outcome.Winner == perspective:
		return Win, true
	default:
		return Loss, true
	}
}

func guard(state *State, perspective Player, score float64) float64 {
	if CanWinNext(state, perspective.Opponent()) {
		return Loss
	}
	return score
}

func segmentScore(state *State, perspective Player) float64 {
	opponent := perspective.Opponent()
	score := 0.0
	for _, segment := range state.Segments() {
		owner, run := segmentRun(state, segment)
		switch owner {
		case perspective:
			score += runScore(run)
		case opponent:
			score -= runScore(run)
		}
	}
	return score
}

// segmentRun returns the only player with pieces in the segment and the
// length of its longest run. Empty and contested segments return None.
func segmentRun(state *State, segment Segment) (Player, int) {
	owner := None
	run, longest := 0, 0
	for _, i := range segment.Cells {
		cell := state.At(i)
		if cell == None {
			run = 0
			continue
		}
		if owner != None && cell != owner {
			return None, 0
		}
		owner = cell
		run++
		longest = max(longest, run)
	}
	return owner, longest
}

func runScore(run int) float64 {
	if run >= WinLength {
		return Win
	}
	return runScores[run]
}

// CanWinNext reports whether player would win by dropping a piece into some
// column right now, regardless of whose turn it is.
func CanWinNext(state *State, player Player) bool {
	for _, column := range state.ValidMoves() {
		next := state.Copy()
		next.CurrentPlayer = player
		next.PlayMove(column)
		if next.CheckWin().Winner == player {
			return true
		}
	}
	return false
}
