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

// PasswordChanger defines the interface for password edits.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error
}

// PasswordEditRequest is the JSON body for a password change
// swagger:model PasswordEditRequest
type PasswordEditRequest struct {
	// Current password
	// required: true
	OldPassword string `json:"old_password"`

	// New password
	// required: true
	NewPassword string `json:"new_password"`
}

// NewPasswordEditHandler returns an HTTP handler for changing the caller's password.
// @Summary Change password
// @Description Re-authenticates with the old password before storing the new one.
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param passwordEditRequest body handlers.PasswordEditRequest true "Old and new password"
// @Success 200 {object} handlers.StatusResponse
// @Failure 401 {object} handlers.LoginErrorResponse "Incorrect old password"
// @Router /user/password/edit [post]
func NewPasswordEditHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req PasswordEditRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.NewPassword == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request body"})
			return
		}

		if err := svc.ChangePassword(r.Context(), user.UserID, req.OldPassword, req.NewPassword); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrUserDoesNotExist):
				w.Header().Set("WWW-Authenticate", "Bearer")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Username or password is incorrect",
				})
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
