package ports

import (
	"bike-route-service/internal/domain"
	"context"
)

// Port: a boundary for retrieving depot and station points from a data source.
type StationRepository interface {
	// Retrieve every point (depot and stations) in source order.
	ListPoints(ctx context.Context) ([]domain.Point, error)
}
