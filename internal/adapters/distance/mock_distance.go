package distance

import (
	"bike-route-service/internal/domain"
	"fmt"
	"math"
)

// MockPair fixes the distance between two coordinates. Pairs are symmetric:
// registering A->B also answers B->A.
type MockPair struct {
	From, To domain.Coordinates
	Km       float64
}

// MockMetric is a table-backed DistanceFunc source for tests that need
// exact, hand-picked distances (e.g. ties).
type MockMetric struct {
	m map[[2]domain.Coordinates]float64
}

func NewMockMetric(pairs []MockPair) *MockMetric {
	m := make(map[[2]domain.Coordinates]float64, 2*len(pairs))
	for _, p := range pairs {
		m[[2]domain.Coordinates{p.From, p.To}] = p.Km
		m[[2]domain.Coordinates{p.To, p.From}] = p.Km
	}
	return &MockMetric{m: m}
}

// Distance looks up the pair; identical coordinates are always 0.
// Unknown pairs panic so a test cannot silently route over a missing leg.
func (p *MockMetric) Distance(a, b domain.Coordinates) float64 {
	if a == b {
		return 0
	}
	d, ok := p.m[[2]domain.Coordinates{a, b}]
	if !ok {
		panic(fmt.Sprintf("missing pair %v -> %v", a, b))
	}
	if math.IsNaN(d) {
		panic(fmt.Sprintf("NaN distance for %v -> %v", a, b))
	}
	return d
}
