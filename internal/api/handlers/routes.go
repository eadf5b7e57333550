package handlers

import (
	"bike-route-service/internal/api/dto"
	"bike-route-service/internal/ports"
	"bike-route-service/internal/services"
	"net/http"
)

// RouteHandler serves the planned rebalancing tour.
type RouteHandler struct {
	Repo     ports.StationRepository
	Distance ports.DistanceFunc
}

// Optimal loads the current station set and returns a depot-to-depot
// nearest-neighbor tour over all of it.
func (h *RouteHandler) Optimal(w http.ResponseWriter, r *http.Request) {
	result, err := services.PlanOptimalRoute(r.Context(), h.Repo, h.Distance)
	if err != nil {
		writeServiceError(w, r, "plan optimal route", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewRouteResponse(result))
}
