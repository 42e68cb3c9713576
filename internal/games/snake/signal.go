package snake

// signal is a one-shot event raised by one stage and consumed by the next
// stage of the same frame. Raising it several times in one frame still lets
// it be taken only once; the frame end clears it.
type signal struct {
	raised int
	taken  bool
}

func (s *signal) raise() {
	s.raised++
}

// take reports whether the signal is pending and marks it consumed.
func (s *signal) take() bool {
	if s.raised == 0 || s.taken {
		return false
	}
	s.taken = true
	return true
}

func (s *signal) clear() {
	*s = signal{}
}
