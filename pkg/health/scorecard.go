package health

// StartingScore is the value every run begins from.
const StartingScore = 100

// Penalty is one recorded threshold breach.
type Penalty struct {
	Points int
	Reason string
}

// Scorecard accumulates penalties over one report run. Deductions are
// recorded with their reason and the score is derived from them, never
// assigned, so the final value always reconciles with the warnings that
// were printed.
type Scorecard struct {
	penalties []Penalty
}

// NewScorecard returns an empty scorecard at the starting score.
func NewScorecard() *Scorecard {
	return &Scorecard{}
}

// Penalize records a deduction of points for the given reason.
func (s *Scorecard) Penalize(points int, reason string) {
	s.penalties = append(s.penalties, Penalty{Points: points, Reason: reason})
}

// TotalPenalty returns the sum of all recorded deductions.
func (s *Scorecard) TotalPenalty() int {
	total := 0
	for _, p := range s.penalties {
		total += p.Points
	}
	return total
}

// Score returns StartingScore minus every recorded penalty. There is no
// floor: a host with enough breaches (many full partitions, say) scores
// below zero rather than hiding deductions behind a clamp.
func (s *Scorecard) Score() int {
	return StartingScore - s.TotalPenalty()
}

// Penalties returns the recorded deductions in the order they occurred.
func (s *Scorecard) Penalties() []Penalty {
	return s.penalties
}
