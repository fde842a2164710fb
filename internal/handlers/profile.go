package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/avolkoff/calendar-api/internal/middlewares"
)

// ProfileResponse is the caller's own profile
// swagger:model ProfileResponse
type ProfileResponse struct {
	// User id
	ID uuid.UUID `json:"id"`

	// Username
	// default: john_doe
	Username string `json:"username"`

	// Email
	// default: john@example.com
	Email string `json:"email"`
}

// NewProfileHandler returns an HTTP handler serving the caller's profile.
// @Summary Get own profile
// @Description Returns the authenticated caller's id, username and email
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.ProfileResponse
// @Failure 401 {object} handlers.LoginErrorResponse "Could not validate credentials"
// @Router /user/me [get]
func NewProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProfileResponse{
			ID:       user.UserID,
			Username: user.Username,
			Email:    user.Email,
		})
	}
}
