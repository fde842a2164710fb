package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avolkoff/calendar-api/internal/logger"
)

// UsernameChecker defines the interface for username availability checks.
type UsernameChecker interface {
	CheckUsername(ctx context.Context, username string) (bool, error)
}

// AvailabilityResponse reports whether a username or email is free
// swagger:model AvailabilityResponse
type AvailabilityResponse struct {
	// Whether the value is available
	// default: true
	Available bool `json:"available"`
}

// NewUsernameCheckHandler returns an HTTP handler for username availability.
// @Summary Check username availability
// @Description Unauthenticated check whether a username is free
// @Tags user
// @Produce json
// @Param username query string true "Username to check"
// @Success 200 {object} handlers.AvailabilityResponse
// @Router /user/username/check [get]
func NewUsernameCheckHandler(svc UsernameChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")
		if username == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "username is required"})
			return
		}

		available, err := svc.CheckUsername(r.Context(), username)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AvailabilityResponse{Available: available})
	}
}
