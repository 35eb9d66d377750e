package battledomain

// scriptedSource replays a fixed sequence of Float64 values, cycling when
// exhausted. IntN and Shuffle are deterministic no-ops; combat code only
// consumes Float64.
type scriptedSource struct {
	floats []float64
	next   int
}

func newScriptedSource(floats ...float64) *scriptedSource {
	return &scriptedSource{floats: floats}
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[s.next%len(s.floats)]
	s.next++
	return v
}

func (s *scriptedSource) IntN(n int) int { return 0 }

func (s *scriptedSource) Shuffle(n int, swap func(i, j int)) {}
