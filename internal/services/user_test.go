package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/avolkoff/calendar-api/internal/models"
	"github.com/avolkoff/calendar-api/internal/services"
)

func TestUserService_CheckUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockProfileReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)
	svc := services.NewUserService(mockReader, mockWriter)

	t.Run("available", func(t *testing.T) {
		username := "free_name"
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &username, (*string)(nil)).
			Return(nil, nil)

		available, err := svc.CheckUsername(context.Background(), username)
		assert.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("taken", func(t *testing.T) {
		username := "alice"
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &username, (*string)(nil)).
			Return(&models.UserDB{UserID: uuid.New(), Username: username}, nil)

		available, err := svc.CheckUsername(context.Background(), username)
		assert.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("reader error", func(t *testing.T) {
		username := "any"
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &username, (*string)(nil)).
			Return(nil, errors.New("db error"))

		_, err := svc.CheckUsername(context.Background(), username)
		assert.Error(t, err)
	})
}

func TestUserService_ChangeUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockProfileReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)
	svc := services.NewUserService(mockReader, mockWriter)

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		newName := "alice2"
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &newName, (*string)(nil)).
			Return(nil, nil)
		mockWriter.EXPECT().
			UpdateUsername(gomock.Any(), userID, newName).
			Return(nil)

		err := svc.ChangeUsername(context.Background(), userID, newName)
		assert.NoError(t, err)
	})

	t.Run("taken by another user", func(t *testing.T) {
		newName := "bob"
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &newName, (*string)(nil)).
			Return(&models.UserDB{UserID: uuid.New(), Username: newName}, nil)

		err := svc.ChangeUsername(context.Background(), userID, newName)
		assert.ErrorIs(t, err, services.ErrUsernameTaken)
	})

	t.Run("renaming to own current name is allowed", func(t *testing.T) {
		newName := "alice"
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &newName, (*string)(nil)).
			Return(&models.UserDB{UserID: userID, Username: newName}, nil)
		mockWriter.EXPECT().
			UpdateUsername(gomock.Any(), userID, newName).
			Return(nil)

		err := svc.ChangeUsername(context.Background(), userID, newName)
		assert.NoError(t, err)
	})
}

func TestUserService_ChangeEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockProfileReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)
	svc := services.NewUserService(mockReader, mockWriter)

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		newEmail := "new@example.com"
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), (*string)(nil), &newEmail).
			Return(nil, nil)
		mockWriter.EXPECT().
			UpdateEmail(gomock.Any(), userID, newEmail).
			Return(nil)

		err := svc.ChangeEmail(context.Background(), userID, newEmail)
		assert.NoError(t, err)
	})

	t.Run("taken", func(t *testing.T) {
		newEmail := "bob@example.com"
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), (*string)(nil), &newEmail).
			Return(&models.UserDB{UserID: uuid.New()}, nil)

		err := svc.ChangeEmail(context.Background(), userID, newEmail)
		assert.ErrorIs(t, err, services.ErrEmailTaken)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockProfileReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)
	svc := services.NewUserService(mockReader, mockWriter)

	userID := uuid.New()
	oldPassword := "old-secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(oldPassword), bcrypt.DefaultCost)
	user := &models.UserDB{UserID: userID, Username: "alice", PasswordHash: string(hashed)}

	t.Run("success", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)

		var storedHash string
		mockWriter.EXPECT().
			UpdatePassword(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
				storedHash = hash
				return nil
			})

		err := svc.ChangePassword(context.Background(), userID, oldPassword, "new-secret")
		assert.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("new-secret")))
	})

	t.Run("wrong old password", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)

		err := svc.ChangePassword(context.Background(), userID, "wrong", "new-secret")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("user gone", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

		err := svc.ChangePassword(context.Background(), userID, oldPassword, "new-secret")
		assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockProfileReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)
	svc := services.NewUserService(mockReader, mockWriter)

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), userID).Return(nil)
		assert.NoError(t, svc.Delete(context.Background(), userID))
	})

	t.Run("writer error", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), userID).Return(errors.New("db error"))
		assert.Error(t, svc.Delete(context.Background(), userID))
	})
}
