package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
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

func TestPasswordEditHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "john"}

	tests := []struct {
		name         string
		body         interface{}
		mockSetup    func(m *MockPasswordChanger)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: PasswordEditRequest{OldPassword: "old-secret", NewPassword: "new-secret"},
			mockSetup: func(m *MockPasswordChanger) {
				m.EXPECT().
					ChangePassword(gomock.Any(), userID, "old-secret", "new-secret").
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"status": "OK"},
		},
		{
			name: "wrong old password",
			body: PasswordEditRequest{OldPassword: "wrong", NewPassword: "new-secret"},
			mockSetup: func(m *MockPasswordChanger) {
				m.EXPECT().
					ChangePassword(gomock.Any(), userID, "wrong", "new-secret").
					Return(services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: map[string]string{"error": "Username or password is incorrect"},
		},
		{
			name: "internal server error",
			body: PasswordEditRequest{OldPassword: "old-secret", NewPassword: "new-secret"},
			mockSetup: func(m *MockPasswordChanger) {
				m.EXPECT().
					ChangePassword(gomock.Any(), userID, "old-secret", "new-secret").
					Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "empty new password",
			body:         PasswordEditRequest{OldPassword: "old-secret"},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPasswordChanger(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewPasswordEditHandler(mockSvc)

			bodyBytes, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/user/password/edit", bytes.NewBuffer(bodyBytes))
			req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
