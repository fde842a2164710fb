package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/avolkoff/calendar-api/internal/logger"
	"github.com/avolkoff/calendar-api/internal/middlewares"
)

// EventCreator defines the interface for creating events.
type EventCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, title, description string, start, end int64) (uuid.UUID, error)
}

// EventCreateRequest is the JSON body for event creation
// swagger:model EventCreateRequest
type EventCreateRequest struct {
	// Event title
	// required: true
	// default: Standup
	Title string `json:"title"`

	// Event description
	// required: true
	Description string `json:"description"`

	// Start, Unix seconds
	// required: true
	Start int64 `json:"start"`

	// End, Unix seconds
	// required: true
	End int64 `json:"end"`
}

// EventCreateResponse carries the id of the created event
// swagger:model EventCreateResponse
type EventCreateResponse struct {
	// Created event id
	ID uuid.UUID `json:"id"`

	// Status marker
	// default: OK
	Status string `json:"status"`
}

// NewEventCreateHandler returns an HTTP handler for event creation.
// @Summary Create event
// @Description Creates an event owned by the caller with an empty attendee set.
// @Tags event
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventCreateRequest body handlers.EventCreateRequest true "New event"
// @Success 201 {object} handlers.EventCreateResponse
// @Failure 401 {object} handlers.LoginErrorResponse "Could not validate credentials"
// @Router /event/new [post]
func NewEventCreateHandler(svc EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req EventCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "invalid request body"})
			return
		}

		eventID, err := svc.Create(r.Context(), user.UserID, req.Title, req.Description, req.Start, req.End)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(EventCreateResponse{
			ID:     eventID,
			Status: "OK",
		})
	}
}
