package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/avolkoff/calendar-api/internal/logger"
	"github.com/avolkoff/calendar-api/internal/models"
)

var (
	ErrUsernameTaken = errors.New("username taken")
	ErrEmailTaken    = errors.New("email already in use")
)

// ProfileReader defines the reads needed for profile management.
type ProfileReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// ProfileWriter defines the writes needed for profile management.
type ProfileWriter interface {
	UpdateUsername(ctx context.Context, userID uuid.UUID, username string) error
	UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// UserService handles profile edits, availability checks and account deletion.
type UserService struct {
	reader ProfileReader
	writer ProfileWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader ProfileReader, writer ProfileWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// CheckUsername reports whether a username is still available.
func (svc *UserService) CheckUsername(ctx context.Context, username string) (bool, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return false, err
	}
	return user == nil, nil
}

// CheckEmail reports whether an email is still available.
func (svc *UserService) CheckEmail(ctx context.Context, email string) (bool, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, nil, &email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return false, err
	}
	return user == nil, nil
}

// ChangeUsername updates the caller's username unless it is taken.
func (svc *UserService) ChangeUsername(ctx context.Context, userID uuid.UUID, newUsername string) error {
	existing, err := svc.reader.GetByUsernameOrEmail(ctx, &newUsername, nil)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return err
	}
	if existing != nil && existing.UserID != userID {
		return ErrUsernameTaken
	}

	return svc.writer.UpdateUsername(ctx, userID, newUsername)
}

// ChangeEmail updates the caller's email unless it is taken.
func (svc *UserService) ChangeEmail(ctx context.Context, userID uuid.UUID, newEmail string) error {
	existing, err := svc.reader.GetByUsernameOrEmail(ctx, nil, &newEmail)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return err
	}
	if existing != nil && existing.UserID != userID {
		return ErrEmailTaken
	}

	return svc.writer.UpdateEmail(ctx, userID, newEmail)
}

// ChangePassword re-authenticates with the old password before storing
// the new one. A wrong old password fails exactly like a bad login.
func (svc *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		logger.Log.Infow("invalid old password", "user_id", userID)
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	return svc.writer.UpdatePassword(ctx, userID, string(hashedPassword))
}

// Delete removes the caller's account. Owned events and attendance rows
// are cascade-deleted by the schema.
func (svc *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := svc.writer.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", userID, "err", err)
		return err
	}
	return nil
}
