package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avolkoff/calendar-api/internal/logger"
)

// EmailChecker defines the interface for email availability checks.
type EmailChecker interface {
	CheckEmail(ctx context.Context, email string) (bool, error)
}

// NewEmailCheckHandler returns an HTTP handler for email availability.
// @Summary Check email availability
// @Description Unauthenticated check whether an email is free
// @Tags user
// @Produce json
// @Param email query string true "Email to check"
// @Success 200 {object} handlers.AvailabilityResponse
// @Router /user/email/check [get]
func NewEmailCheckHandler(svc EmailChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		if email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "email is required"})
			return
		}

		available, err := svc.CheckEmail(r.Context(), email)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AvailabilityResponse{Available: available})
	}
}
