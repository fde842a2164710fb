package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkoff/calendar-api/internal/middlewares"
	"github.com/avolkoff/calendar-api/internal/models"
)

func newAuthenticatedRequest(method, target string, user *models.UserDB) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(middlewares.SetUserToContext(req.Context(), user))
}

func TestEventListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "john"}

	events := []models.EventView{
		{
			ID:          uuid.New(),
			Title:       "standup",
			Description: "daily sync",
			Start:       1700000000,
			End:         1700003600,
			Owner:       models.UserInfo{ID: userID, Username: "john"},
			Attendees:   []models.UserInfo{},
		},
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockEventLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), userID).
			Return(events, nil)

		handler := NewEventListHandler(mockSvc)

		rr := httptest.NewRecorder()
		handler(rr, newAuthenticatedRequest(http.MethodGet, "/event", user))

		require.Equal(t, http.StatusOK, rr.Code)

		var resp []models.EventView
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, events, resp)
	})

	t.Run("empty list", func(t *testing.T) {
		mockSvc := NewMockEventLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), userID).
			Return([]models.EventView{}, nil)

		handler := NewEventListHandler(mockSvc)

		rr := httptest.NewRecorder()
		handler(rr, newAuthenticatedRequest(http.MethodGet, "/event", user))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := NewMockEventLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), userID).
			Return(nil, errors.New("database failure"))

		handler := NewEventListHandler(mockSvc)

		rr := httptest.NewRecorder()
		handler(rr, newAuthenticatedRequest(http.MethodGet, "/event", user))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("no user in context", func(t *testing.T) {
		handler := NewEventListHandler(NewMockEventLister(ctrl))

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/event", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
