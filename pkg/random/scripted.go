package random

import "sync"

// Scripted replays fixed sequences of draws. When a sequence runs out it
// keeps returning zero, which selects the first corpus entry and makes every
// Chance with p > 0 succeed.
type Scripted struct {
	mu     sync.Mutex
	ints   []int
	floats []float64
}

// NewScripted returns a Scripted source that yields ints for Intn and floats
// for Float64, in order.
func NewScripted(ints []int, floats []float64) *Scripted {
	return &Scripted{ints: ints, floats: floats}
}

// Intn returns the next scripted int, reduced modulo n.
func (s *Scripted) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < 0 {
		v = -v
	}
	return v % n
}

// Float64 returns the next scripted float.
func (s *Scripted) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// PushInts appends further Intn results.
func (s *Scripted) PushInts(v ...int) {
	s.mu.Lock()
	s.ints = append(s.ints, v...)
	s.mu.Unlock()
}

// PushFloats appends further Float64 results.
func (s *Scripted) PushFloats(v ...float64) {
	s.mu.Lock()
	s.floats = append(s.floats, v...)
	s.mu.Unlock()
}
