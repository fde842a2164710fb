package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/avolkoff/calendar-api/internal/middlewares"
)

// AttendeeRemover defines the interface for removing attendees.
type AttendeeRemover interface {
	RemoveAttendee(ctx context.Context, callerID, eventID, userID uuid.UUID) error
}

// NewAttendeeRemoveHandler returns an HTTP handler for removing an attendee.
// @Summary Remove attendee
// @Description Removes a user from an event. Allowed for the owner and for an attendee removing themself; removing a non-attendee is a no-op.
// @Tags event
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attendeeRequest body handlers.AttendeeRequest true "Event and user"
// @Success 200 {object} handlers.StatusResponse
// @Failure 403 {object} handlers.EventErrorResponse "Caller is neither owner nor the removed attendee"
// @Failure 404 {object} handlers.EventErrorResponse "Event does not exist"
// @Router /event/attendees/remove [post]
func NewAttendeeRemoveHandler(svc AttendeeRemover) http.HandlerFunc {
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

		if err := svc.RemoveAttendee(r.Context(), user.UserID, req.EventID, req.UserID); err != nil {
			writeEventError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatusResponse{Status: "OK"})
	}
}
