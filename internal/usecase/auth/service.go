// Package auth is the sign-in gate in front of the dashboard. It validates
// the form fields and issues a token; there is no account store behind it.
package auth

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"careeriq/internal/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrFullNameRequired = errors.New("Full Name is required.")
	ErrInvalidEmail     = errors.New("Please enter a valid company email.")
	ErrPasswordTooShort = errors.New("Password must be at least 8 characters long.")
	ErrPasswordMismatch = errors.New("Passwords do not match.")
	ErrInternal         = errors.New("internal error")
)

const MinPasswordLength = 8

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// userNamespace derives stable user ids from emails.
var userNamespace = uuid.MustParse("6f1c2a9e-8d4b-4c1e-9a57-3b2d7e0f5c11")

type LoginInput struct {
	Email    string
	Password string
}

type SignupInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
}

type Session struct {
	UserID      uuid.UUID
	Email       string
	FullName    string
	AccessToken string
	ExpiresAt   time.Time
}

type AuthUsecase interface {
	Login(ctx context.Context, in LoginInput) (Session, error)
	Signup(ctx context.Context, in SignupInput) (Session, error)
}

type Service struct {
	tokens jwt.Service
}

func NewService(tokens jwt.Service) *Service {
	return &Service{tokens: tokens}
}

func (s *Service) Login(_ context.Context, in LoginInput) (Session, error) {
	email := strings.TrimSpace(in.Email)
	if !ValidEmail(email) {
		return Session{}, ErrInvalidEmail
	}
	if len(in.Password) < MinPasswordLength {
		return Session{}, ErrPasswordTooShort
	}
	return s.issue(email, "")
}

func (s *Service) Signup(_ context.Context, in SignupInput) (Session, error) {
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return Session{}, ErrFullNameRequired
	}
	email := strings.TrimSpace(in.Email)
	if !ValidEmail(email) {
		return Session{}, ErrInvalidEmail
	}
	if len(in.Password) < MinPasswordLength {
		return Session{}, ErrPasswordTooShort
	}
	if in.Password != in.ConfirmPassword {
		return Session{}, ErrPasswordMismatch
	}
	return s.issue(email, fullName)
}

func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func (s *Service) issue(email, fullName string) (Session, error) {
	id := uuid.NewSHA1(userNamespace, []byte(strings.ToLower(email)))
	tok, exp, err := s.tokens.GenerateAccessToken(id, email, fullName)
	if err != nil {
		return Session{}, ErrInternal
	}
	return Session{
		UserID:      id,
		Email:       email,
		FullName:    fullName,
		AccessToken: tok,
		ExpiresAt:   exp,
	}, nil
}
