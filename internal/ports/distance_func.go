package ports

import "bike-route-service/internal/domain"

// Contract for computing the travel distance in kilometers between two
// locations. Implementations must be pure and symmetric.
type DistanceFunc func(a, b domain.Coordinates) float64
