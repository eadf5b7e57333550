package dto

import (
	"bike-route-service/internal/domain"
	"math"
)

type RouteResponse struct {
	Success       bool            `json:"success"`
	Route         []PointResponse `json:"route"`
	TotalDistance float64         `json:"total_distance"`
	TotalStations int             `json:"total_stations"`
}

// NewRouteResponse converts a planned route; total_distance is rounded to
// two decimals (km) and total_stations excludes both depot endpoints.
func NewRouteResponse(r *domain.RouteResult) RouteResponse {
	return RouteResponse{
		Success:       true,
		Route:         NewPointResponses(r.Route),
		TotalDistance: math.Round(r.TotalDistance*100) / 100,
		TotalStations: r.StationCount,
	}
}
