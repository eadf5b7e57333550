package handlers

import (
	"bike-route-service/internal/api/dto"
	"bike-route-service/internal/ports"
	"bike-route-service/internal/services"
	"net/http"
)

// StationHandler exposes read-only station retrieval endpoints.
type StationHandler struct {
	Repo ports.StationRepository
}

func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	points, err := services.ListStations(r.Context(), h.Repo)
	if err != nil {
		writeServiceError(w, r, "list stations", err)
		return
	}

	res := dto.ListStationsResponse{
		Success:  true,
		Stations: dto.NewPointResponses(points),
	}

	writeJSON(w, r, http.StatusOK, res)
}
