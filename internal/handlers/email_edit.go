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

// EmailChanger defines the interface for email edits.
type EmailChanger interface {
	ChangeEmail(ctx context.Context, userID uuid.UUID, newEmail string) error
}

// EmailEditRequest is the JSON body for an email change
// swagger:model EmailEditRequest
type EmailEditRequest struct {
	// New email
	// required: true
	// default: john2@example.com
	NewEmail string `json:"new_email"`
}

// NewEmailEditHandler returns an HTTP handler for changing the caller's email.
// @Summary Change email
// @Description Updates the caller's email. Fails when the new email is in use.
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param emailEditRequest body handlers.EmailEditRequest true "New email"
// @Success 200 {object} handlers.StatusResponse
// @Failure 409 {object} handlers.RegisterErrorResponse "Email already in use"
// @Router /user/email/edit [post]
func NewEmailEditHandler(svc EmailChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req EmailEditRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.NewEmail == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request body"})
			return
		}

		if err := svc.ChangeEmail(r.Context(), user.UserID, req.NewEmail); err != nil {
			switch {
			case errors.Is(err, services.ErrEmailTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(map[string]string{"error": "Email already in use"})
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
