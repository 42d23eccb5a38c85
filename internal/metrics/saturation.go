package metrics

import (
	"github.com/san-kum/popgrowth/internal/dynamo"
)

// Saturation reports how close the population got to the carrying
// capacity: the last observed N divided by K.
type Saturation struct {
	name     string
	capacity float64
	last     float64
	samples  int
}

func NewSaturation(capacity float64) *Saturation {
	return &Saturation{
		name:     "saturation",
		capacity: capacity,
	}
}

func (s *Saturation) Name() string {
	return s.name
}

func (s *Saturation) Observe(x dynamo.State, u dynamo.Control, t float64) {
	s.samples++
	s.last = x[0]
}

func (s *Saturation) Value() float64 {
	if s.samples == 0 || s.capacity == 0 {
		return 0
	}
	return s.last / s.capacity
}

func (s *Saturation) Reset() {
	s.last = 0
	s.samples = 0
}
