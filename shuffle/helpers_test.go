// Package shuffle_test contains test helpers shared by the model tests.
package shuffle_test

import (
	"fmt"
	"testing"
)

// scripted is a Source that replays fixed draws in order.
// Intn returns the next scripted int and fails the test when it is out of
// [0,n); Float64 returns the next scripted float.
type scripted struct {
	t      *testing.T
	ints   []int
	floats []float64
}

func (s *scripted) Intn(n int) int {
	s.t.Helper()
	if len(s.ints) == 0 {
		s.t.Fatalf("scripted: Intn(%d) called with no draws left", n)
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < 0 || v >= n {
		s.t.Fatalf("scripted: draw %d outside [0,%d)", v, n)
	}
	return v
}

func (s *scripted) Float64() float64 {
	s.t.Helper()
	if len(s.floats) == 0 {
		s.t.Fatalf("scripted: Float64 called with no draws left")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// exhausted fails when scripted draws were left unused.
func (s *scripted) exhausted() error {
	if len(s.ints) != 0 || len(s.floats) != 0 {
		return fmt.Errorf("unused draws: ints=%v floats=%v", s.ints, s.floats)
	}
	return nil
}
