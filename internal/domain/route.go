package domain

// Represents a planned rebalancing tour for a single vehicle.
// Route[0] and Route[len-1] are the depot; every interior element is a
// station and each input station appears exactly once. A RouteResult is
// immutable planning data and contains no side effects.
type RouteResult struct {
	Route         []Point
	TotalDistance float64
	StationCount  int
}
