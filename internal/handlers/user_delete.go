package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/avolkoff/calendar-api/internal/logger"
	"github.com/avolkoff/calendar-api/internal/middlewares"
)

// UserDeleter defines the interface for account deletion.
type UserDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID) error
}

// NewUserDeleteHandler returns an HTTP handler deleting the caller's account.
// @Summary Delete own account
// @Description Deletes the authenticated caller. Owned events and attendance rows are cascade-deleted.
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.StatusResponse
// @Failure 401 {object} handlers.LoginErrorResponse "Could not validate credentials"
// @Router /user/delete [post]
func NewUserDeleteHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), user.UserID); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatusResponse{Status: "OK"})
	}
}
