package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/avolkoff/calendar-api/internal/middlewares"
)

// AttendeeAdder defines the interface for inviting attendees.
type AttendeeAdder interface {
	AddAttendee(ctx context.Context, callerID, eventID, userID uuid.UUID) error
}

// AttendeeRequest identifies an event and a target user
// swagger:model AttendeeRequest
type AttendeeRequest struct {
	// Target event id
	// required: true
	EventID uuid.UUID `json:"event_id"`

	// Target user id
	// required: true
	UserID uuid.UUID `json:"user_id"`
}

// NewAttendeeAddHandler returns an HTTP handler for adding an attendee.
// @Summary Add attendee
// @Description Invites a user to an event. Owner only; adding an existing attendee is a no-op.
// @Tags event
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attendeeRequest body handlers.AttendeeRequest true "Event and user"
// @Success 200 {object} handlers.StatusResponse
// @Failure 403 {object} handlers.EventErrorResponse "Caller does not own the event"
// @Failure 404 {object} handlers.EventErrorResponse "Event or user does not exist"
// @Router /event/attendees/add [post]
func NewAttendeeAddHandler(svc AttendeeAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req AttendeeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.EventID == uuid.Nil || req.UserID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.AddAttendee(r.Context(), user.UserID, req.EventID, req.UserID); err != nil {
			writeEventError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatusResponse{Status: "OK"})
	}
}
