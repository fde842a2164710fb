package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/avolkoff/calendar-api/internal/middlewares"
)

// EventDeleter defines the interface for event deletion.
type EventDeleter interface {
	Delete(ctx context.Context, callerID, eventID uuid.UUID) error
}

// EventDeleteRequest identifies the event to delete
// swagger:model EventDeleteRequest
type EventDeleteRequest struct {
	// Target event id
	// required: true
	EventID uuid.UUID `json:"event_id"`
}

// NewEventDeleteHandler returns an HTTP handler for event deletion.
// @Summary Delete event
// @Description Deletes an event and its attendance rows. Owner only.
// @Tags event
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventDeleteRequest body handlers.EventDeleteRequest true "Event to delete"
// @Success 200 {object} handlers.StatusResponse
// @Failure 403 {object} handlers.EventErrorResponse "Caller does not own the event"
// @Failure 404 {object} handlers.EventErrorResponse "Event does not exist"
// @Router /event/delete [post]
func NewEventDeleteHandler(svc EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req EventDeleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.EventID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.Delete(r.Context(), user.UserID, req.EventID); err != nil {
			writeEventError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatusResponse{Status: "OK"})
	}
}
