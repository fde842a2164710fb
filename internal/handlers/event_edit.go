package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/avolkoff/calendar-api/internal/logger"
	"github.com/avolkoff/calendar-api/internal/middlewares"
	"github.com/avolkoff/calendar-api/internal/models"
	"github.com/avolkoff/calendar-api/internal/services"
)

// EventEditor defines the interface for sparse event updates.
type EventEditor interface {
	Update(ctx context.Context, callerID, eventID uuid.UUID, upd models.EventUpdate) error
}

// EventEditRequest is the JSON body for a partial event update. Omitted
// fields keep their current values.
// swagger:model EventEditRequest
type EventEditRequest struct {
	// Target event id
	// required: true
	EventID uuid.UUID `json:"event_id"`

	// New title
	Title *string `json:"title"`

	// New description
	Description *string `json:"description"`

	// New start, Unix seconds
	Start *int64 `json:"start"`

	// New end, Unix seconds
	End *int64 `json:"end"`
}

// NewEventEditHandler returns an HTTP handler for partial event updates.
// @Summary Edit event
// @Description Applies a sparse update to an event. Owner only.
// @Tags event
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventEditRequest body handlers.EventEditRequest true "Fields to update"
// @Success 200 {object} handlers.StatusResponse
// @Failure 403 {object} handlers.EventErrorResponse "Caller does not own the event"
// @Failure 404 {object} handlers.EventErrorResponse "Event does not exist"
// @Router /event/edit [post]
func NewEventEditHandler(svc EventEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req EventEditRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.EventID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "invalid request body"})
			return
		}

		upd := models.EventUpdate{
			Title:       req.Title,
			Description: req.Description,
			Start:       req.Start,
			End:         req.End,
		}

		if err := svc.Update(r.Context(), user.UserID, req.EventID, upd); err != nil {
			writeEventError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatusResponse{Status: "OK"})
	}
}

// writeEventError maps event-service sentinel errors to HTTP responses.
func writeEventError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrEventNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(EventErrorResponse{Error: "Event does not exist"})
	case errors.Is(err, services.ErrUserDoesNotExist):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(EventErrorResponse{Error: "User does not exist"})
	case errors.Is(err, services.ErrEventNotOwned):
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(EventErrorResponse{Error: "User does not own the target event"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(EventErrorResponse{Error: "Internal server error"})
	}
}
