package handler

import (
	"errors"

	"careeriq/internal/delivery/http/middleware"
	"careeriq/internal/domain/career"
	"careeriq/internal/pkg/response"
	"careeriq/internal/repository"
	useruc "careeriq/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

type SettingsHandler struct {
	uc      *useruc.Service
	catalog repository.Catalog
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type updateProfileRequest struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
}

func NewSettingsHandler(uc *useruc.Service, catalog repository.Catalog) *SettingsHandler {
	return &SettingsHandler{uc: uc, catalog: catalog}
}

func (h *SettingsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/password", h.ChangePassword)
	r.Put("/profile", h.UpdateProfile)
	r.Put("/notifications", h.UpdateNotifications)
}

func (h *SettingsHandler) ChangePassword(c fiber.Ctx) error {
	var req changePasswordRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err := h.uc.ChangePassword(c.Context(), useruc.ChangePasswordInput{
		Current: req.CurrentPassword,
		New:     req.NewPassword,
		Confirm: req.ConfirmPassword,
	})
	if err != nil {
		return mapSettingsUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Password changed successfully!", nil)
}

func (h *SettingsHandler) UpdateProfile(c fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	current, err := currentUser(c, h.catalog)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	updated, err := h.uc.UpdateProfile(c.Context(), current, useruc.UpdateProfileInput{
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return mapSettingsUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated successfully!", updated)
}

func (h *SettingsHandler) UpdateNotifications(c fiber.Ctx) error {
	// Fields left out of the body keep their defaults.
	prefs := useruc.DefaultNotificationPreferences()
	if err := c.Bind().Body(&prefs); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.uc.UpdateNotifications(c.Context(), prefs)
	if err != nil {
		return mapSettingsUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Notification preferences updated successfully!", out)
}

// currentUser overlays the signed-in identity on the catalog profile.
func currentUser(c fiber.Ctx, catalog repository.Catalog) (career.User, error) {
	profile, err := catalog.Profile(c.Context())
	if err != nil {
		return career.User{}, err
	}
	if email, ok := c.Locals(middleware.CtxEmailKey).(string); ok && email != "" {
		profile.Email = email
	}
	if name, ok := c.Locals(middleware.CtxFullNameKey).(string); ok && name != "" {
		profile.FullName = name
	}
	return profile, nil
}

func mapSettingsUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, useruc.ErrNewPasswordMismatch),
		errors.Is(err, useruc.ErrNewPasswordTooShort),
		errors.Is(err, useruc.ErrFullNameRequired),
		errors.Is(err, useruc.ErrInvalidEmail):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
