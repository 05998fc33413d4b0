package searcher

import "math"

// CSquared is the square of the exploration constant C = sqrt(2).
const CSquared = 2.0

// uct scores the children of one parent. The log of the parent's visits is
// shared by every child, so it is computed once.
type uct struct {
	exploration float64 // C^2 * ln(parent visits)
}

func newUCT(cSquared float64, parentVisits int) uct {
	if parentVisits == 0 {
		panic("parent has no visits")
	}
	return uct{exploration: cSquared * math.Log(float64(parentVisits))}
}

// evaluate returns wins/visits + sqrt(C^2 ln(N) / visits).
func (u uct) evaluate(wins, visits int) float64 {
	if visits == 0 {
		panic("child has no visits")
	}
	n := float64(visits)
	return float64(wins)/n + math.Sqrt(u.exploration/n)
}
