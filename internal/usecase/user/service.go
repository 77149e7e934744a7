// Package user validates the account settings forms. Nothing is persisted:
// accepted input is echoed back to the caller.
package user

import (
	"context"
	"errors"
	"strings"

	"careeriq/internal/domain/career"
	"careeriq/internal/usecase/auth"
)

var (
	ErrNewPasswordMismatch = errors.New("New passwords do not match.")
	ErrNewPasswordTooShort = errors.New("New password must be at least 8 characters long.")
	ErrFullNameRequired    = errors.New("Full Name is required.")
	ErrInvalidEmail        = errors.New("Please enter a valid company email.")
)

type ChangePasswordInput struct {
	Current string
	New     string
	Confirm string
}

type UpdateProfileInput struct {
	FullName *string
	Email    *string
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) ChangePassword(_ context.Context, in ChangePasswordInput) error {
	if in.New != in.Confirm {
		return ErrNewPasswordMismatch
	}
	if len(in.New) < auth.MinPasswordLength {
		return ErrNewPasswordTooShort
	}
	return nil
}

// UpdateProfile applies the non-nil fields of in on top of current.
func (s *Service) UpdateProfile(_ context.Context, current career.User, in UpdateProfileInput) (career.User, error) {
	out := current
	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if name == "" {
			return career.User{}, ErrFullNameRequired
		}
		out.FullName = name
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if !auth.ValidEmail(email) {
			return career.User{}, ErrInvalidEmail
		}
		out.Email = email
	}
	return out, nil
}

func (s *Service) UpdateNotifications(_ context.Context, prefs career.NotificationPreferences) (career.NotificationPreferences, error) {
	return prefs, nil
}

// DefaultNotificationPreferences is what a fresh account starts with.
func DefaultNotificationPreferences() career.NotificationPreferences {
	return career.NotificationPreferences{JobMatches: true, PeerSessions: true, WeeklySummary: false}
}
