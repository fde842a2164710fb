package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/avolkoff/calendar-api/internal/logger"
	"github.com/avolkoff/calendar-api/internal/middlewares"
	"github.com/avolkoff/calendar-api/internal/services"
)

// UsernameChanger defines the interface for username edits.
type UsernameChanger interface {
	ChangeUsername(ctx context.Context, userID uuid.UUID, newUsername string) error
}

// UsernameEditRequest is the JSON body for a username change
// swagger:model UsernameEditRequest
type UsernameEditRequest struct {
	// New username
	// required: true
	// default: john_doe2
	NewUsername string `json:"new_username"`
}

// NewUsernameEditHandler returns an HTTP handler for changing the caller's username.
// @Summary Change username
// @Description Updates the caller's username. Fails when the new username is taken.
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param usernameEditRequest body handlers.UsernameEditRequest true "New username"
// @Success 200 {object} handlers.StatusResponse
// @Failure 409 {object} handlers.RegisterErrorResponse "Username taken"
// @Router /user/username/edit [post]
func NewUsernameEditHandler(svc UsernameChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req UsernameEditRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.NewUsername == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request body"})
			return
		}

		if err := svc.ChangeUsername(r.Context(), user.UserID, req.NewUsername); err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(map[string]string{"error": "Username taken"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatusResponse{Status: "OK"})
	}
}
