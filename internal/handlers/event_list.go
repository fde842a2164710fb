package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/avolkoff/calendar-api/internal/logger"
	"github.com/avolkoff/calendar-api/internal/middlewares"
	"github.com/avolkoff/calendar-api/internal/models"
)

// EventLister defines the interface for listing a user's events.
type EventLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.EventView, error)
}

// EventErrorResponse represents an error response for event endpoints
// swagger:model EventErrorResponse
type EventErrorResponse struct {
	// Error message
	// default: Event does not exist
	Error string `json:"error"`
}

// NewEventListHandler returns an HTTP handler listing the caller's events.
// @Summary List events
// @Description Returns the union of events the caller owns and attends, with owner and attendees expanded to id+username.
// @Tags event
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.EventView
// @Failure 401 {object} handlers.LoginErrorResponse "Could not validate credentials"
// @Router /event [get]
func NewEventListHandler(svc EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		events, err := svc.List(r.Context(), user.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(events)
	}
}
