package handlers

import (
	"bike-route-service/internal/api/dto"
	"bike-route-service/internal/domain"
	"bike-route-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// writeJSON encodes v before touching the response so an encoding failure
// still produces the structured error body.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Printf("encode failed: req_id=%s method=%s path=%s err=%v", obs.RequestID(r.Context()), r.Method, r.URL.Path, err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(dto.ErrorResponse{Success: false, Error: "encode response: " + err.Error()})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.Printf("write failed: req_id=%s method=%s path=%s err=%v", obs.RequestID(r.Context()), r.Method, r.URL.Path, err)
	}
}

// WriteError writes the structured failure body shared by every endpoint.
func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, dto.ErrorResponse{Success: false, Error: msg})
}

// writeServiceError maps a service failure onto a status code. The message
// is the underlying failure description so callers can fix their data.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := http.StatusInternalServerError
	var invalid *domain.InvalidInputError
	if errors.As(err, &invalid) {
		status = http.StatusUnprocessableEntity
	}

	log.Printf("%s failed: req_id=%s status=%d err=%v", op, obs.RequestID(r.Context()), status, err)
	WriteError(w, r, status, err.Error())
}
