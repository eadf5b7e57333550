package services

import (
	"bike-route-service/internal/adapters/distance"
	"bike-route-service/internal/domain"
	"bike-route-service/internal/ports"
	"fmt"
	"math"
)

// Plan a rebalancing tour using a greedy nearest-neighbor algorithm.
//
// Starting at the depot, the vehicle repeatedly moves to the closest
// unvisited station and finally returns to the depot. The algorithm
// minimizes the immediate leg at each step and does not attempt global
// optimization. On equal distances the station that comes first in
// stations wins, so identical input always yields an identical route.
//
// stations is read-only; the builder owns only its visited flags and the
// returned route.
func NearestNeighborRoute(
	depot domain.Point,
	stations []domain.Point,
	dist ports.DistanceFunc,
) (*domain.RouteResult, error) {
	if !depot.IsDepot() {
		return nil, &domain.InvalidInputError{
			Reason: fmt.Sprintf("point id=%d is not a depot (type=%q)", depot.ID, depot.Kind),
		}
	}
	if err := validateStations(stations); err != nil {
		return nil, err
	}
	if dist == nil {
		dist = distance.Haversine
	}

	route := make([]domain.Point, 0, len(stations)+2)
	route = append(route, depot)

	visited := make([]bool, len(stations))
	current := depot.Coordinates()
	totalDistance := 0.0

	for step := 0; step < len(stations); step++ {
		best := -1
		minDistance := math.Inf(1)

		// Strict comparison keeps the earliest station on ties.
		for i, s := range stations {
			if visited[i] {
				continue
			}
			d := dist(current, s.Coordinates())
			if best == -1 || d < minDistance {
				best = i
				minDistance = d
			}
		}

		visited[best] = true
		route = append(route, stations[best])
		totalDistance += minDistance
		current = stations[best].Coordinates()
	}

	totalDistance += dist(current, depot.Coordinates())
	route = append(route, depot)

	return &domain.RouteResult{
		Route:         route,
		TotalDistance: totalDistance,
		StationCount:  len(route) - 2,
	}, nil
}

// BuildRoute plans a tour over a mixed point list as loaded from a data
// source. Exactly one depot is required; stations keep their input order.
func BuildRoute(points []domain.Point, dist ports.DistanceFunc) (*domain.RouteResult, error) {
	var depots []domain.Point
	stations := make([]domain.Point, 0, len(points))
	for _, p := range points {
		if p.IsDepot() {
			depots = append(depots, p)
			continue
		}
		stations = append(stations, p)
	}

	switch len(depots) {
	case 0:
		return nil, &domain.InvalidInputError{Reason: "no depot found in station data"}
	case 1:
	default:
		ids := make([]int, 0, len(depots))
		for _, d := range depots {
			ids = append(ids, d.ID)
		}
		return nil, &domain.InvalidInputError{
			Reason: fmt.Sprintf("expected exactly one depot, found %d (ids=%v)", len(depots), ids),
		}
	}

	return NearestNeighborRoute(depots[0], stations, dist)
}

func validateStations(stations []domain.Point) error {
	seen := make(map[int]struct{}, len(stations))
	for _, s := range stations {
		if s.Kind != domain.KindStation {
			return &domain.InvalidInputError{
				Reason: fmt.Sprintf("point id=%d has type %q, want %q", s.ID, s.Kind, domain.KindStation),
			}
		}
		if _, ok := seen[s.ID]; ok {
			return &domain.InvalidInputError{
				Reason: fmt.Sprintf("duplicate station id=%d", s.ID),
			}
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}
