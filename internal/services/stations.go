package services

import (
	"bike-route-service/internal/domain"
	"bike-route-service/internal/metrics"
	"bike-route-service/internal/platform/obs"
	"bike-route-service/internal/ports"
	"context"
	"errors"
	"fmt"
)

// ListStations returns every point from the data source verbatim.
func ListStations(ctx context.Context, repo ports.StationRepository) (_ []domain.Point, err error) {
	defer obs.Time(ctx, "stations.List")(&err)

	if repo == nil {
		return nil, errors.New("list stations: repository is nil")
	}

	points, err := repo.ListPoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stations: %w", err)
	}

	return points, nil
}

// PlanOptimalRoute loads the current station set and builds a single
// depot-to-depot tour over all of it.
//
// Data is read fresh on every call; nothing is cached between requests.
func PlanOptimalRoute(
	ctx context.Context,
	repo ports.StationRepository,
	dist ports.DistanceFunc,
) (_ *domain.RouteResult, err error) {
	defer obs.Time(ctx, "route.PlanOptimal")(&err)
	defer func() { metrics.ObserveRouteBuild(outcome(err)) }()

	points, err := ListStations(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("plan optimal route: %w", err)
	}

	result, err := BuildRoute(points, dist)
	if err != nil {
		return nil, fmt.Errorf("plan optimal route: %w", err)
	}

	metrics.ObserveRoute(result.TotalDistance, result.StationCount)
	return result, nil
}

func outcome(err error) string {
	var invalid *domain.InvalidInputError
	var dsErr *domain.DataSourceError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &invalid):
		return "invalid_input"
	case errors.As(err, &dsErr):
		return "data_source_error"
	default:
		return "error"
	}
}
