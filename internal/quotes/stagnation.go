package quotes

// Stagnation decides when a scroll loop should give up: after a run of
// consecutive cycles that collected nothing new, or after a hard cap
// of cycles regardless of progress.
type Stagnation struct {
	// Limit is how many consecutive quiet cycles are tolerated.
	Limit int
	// Cap is the hard ceiling on total cycles.
	Cap int

	cycles int
	quiet  int
}

// Next records the outcome of one scroll cycle (how many new entries it
// produced) and reports whether the loop should run another cycle.
func (s *Stagnation) Next(added int) bool {
	s.cycles++
	if added == 0 {
		s.quiet++
	} else {
		s.quiet = 0
	}
	if s.quiet >= s.Limit {
		return false
	}
	return s.cycles < s.Cap
}

// Cycles returns how many cycles have been recorded.
func (s *Stagnation) Cycles() int {
	return s.cycles
}
