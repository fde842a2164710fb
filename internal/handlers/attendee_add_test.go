package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avolkoff/calendar-api/internal/middlewares"
	"github.com/avolkoff/calendar-api/internal/models"
	"github.com/avolkoff/calendar-api/internal/services"
)

func TestAttendeeAddHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	caller := &models.UserDB{UserID: callerID, Username: "owner"}
	eventID := uuid.New()
	targetID := uuid.New()

	tests := []struct {
		name         string
		body         interface{}
		mockSetup    func(m *MockAttendeeAdder)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: AttendeeRequest{EventID: eventID, UserID: targetID},
			mockSetup: func(m *MockAttendeeAdder) {
				m.EXPECT().
					AddAttendee(gomock.Any(), callerID, eventID, targetID).
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"status": "OK"},
		},
		{
			name: "event does not exist",
			body: AttendeeRequest{EventID: eventID, UserID: targetID},
			mockSetup: func(m *MockAttendeeAdder) {
				m.EXPECT().
					AddAttendee(gomock.Any(), callerID, eventID, targetID).
					Return(services.ErrEventNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]string{"error": "Event does not exist"},
		},
		{
			name: "target user does not exist",
			body: AttendeeRequest{EventID: eventID, UserID: targetID},
			mockSetup: func(m *MockAttendeeAdder) {
				m.EXPECT().
					AddAttendee(gomock.Any(), callerID, eventID, targetID).
					Return(services.ErrUserDoesNotExist)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]string{"error": "User does not exist"},
		},
		{
			name: "caller is not the owner",
			body: AttendeeRequest{EventID: eventID, UserID: targetID},
			mockSetup: func(m *MockAttendeeAdder) {
				m.EXPECT().
					AddAttendee(gomock.Any(), callerID, eventID, targetID).
					Return(services.ErrEventNotOwned)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: map[string]string{"error": "User does not own the target event"},
		},
		{
			name:         "missing event id",
			body:         AttendeeRequest{UserID: targetID},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
		{
			name:         "invalid json",
			body:         "{not json}",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAttendeeAdder(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewAttendeeAddHandler(mockSvc)

			var bodyBytes []byte
			if raw, ok := tt.body.(string); ok {
				bodyBytes = []byte(raw)
			} else {
				bodyBytes, _ = json.Marshal(tt.body)
			}

			req := httptest.NewRequest(http.MethodPost, "/event/attendees/add", bytes.NewBuffer(bodyBytes))
			req = req.WithContext(middlewares.SetUserToContext(req.Context(), caller))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}

	t.Run("no user in context", func(t *testing.T) {
		handler := NewAttendeeAddHandler(NewMockAttendeeAdder(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/event/attendees/add", bytes.NewBufferString("{}"))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
