package dto

import "bike-route-service/internal/domain"

type PointResponse struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Type string  `json:"type"`
}

type ListStationsResponse struct {
	Success  bool            `json:"success"`
	Stations []PointResponse `json:"stations"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func NewPointResponse(p domain.Point) PointResponse {
	return PointResponse{
		ID:   p.ID,
		Name: p.Name,
		Lat:  p.Lat,
		Lon:  p.Lon,
		Type: string(p.Kind),
	}
}

func NewPointResponses(points []domain.Point) []PointResponse {
	out := make([]PointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, NewPointResponse(p))
	}
	return out
}
