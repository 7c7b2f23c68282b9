package gamemath

// Stroke tracks one hand's flap strokes. A stroke is a run of downward (or
// level) samples ended by the first upward sample.
type Stroke struct {
	LastY    float64
	HasLast  bool
	Distance float64 // downward travel of the stroke in progress
	Flaps    int     // consecutive strokes that reached the flap distance
}

// Observe feeds a height sample and reports whether it finished a stroke
// that counted as a flap. A finished stroke shorter than flapDistance but
// longer than cancelDistance resets the flap count.
func (s *Stroke) Observe(y, flapDistance, cancelDistance float64) bool {
	counted := false
	if s.HasLast {
		if y <= s.LastY {
			s.Distance += s.LastY - y
		} else {
			if s.Distance >= flapDistance {
				s.Flaps++
				counted = true
			} else if s.Distance > cancelDistance {
				s.Flaps = 0
			}
			s.Distance = 0
		}
	}
	s.LastY = y
	s.HasLast = true
	return counted
}

// Reset forgets the last sample, the stroke in progress and the flap count.
func (s *Stroke) Reset() {
	*s = Stroke{}
}
