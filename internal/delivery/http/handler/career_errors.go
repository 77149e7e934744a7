package handler

import (
	"context"
	"errors"

	"careeriq/internal/delivery/http/middleware"
	"careeriq/internal/pkg/response"
	"careeriq/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func mapCareerUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrRolesRequired),
		errors.Is(err, usecase.ErrSkillsRequired),
		errors.Is(err, usecase.ErrInvalidExperience),
		errors.Is(err, usecase.ErrGoalsRequired),
		errors.Is(err, usecase.ErrRoleDescRequired):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrAIUnavailable):
		return middleware.NewPublicError(fiber.StatusServiceUnavailable, err.Error(), err)
	case errors.Is(err, usecase.ErrJobMatchFailed),
		errors.Is(err, usecase.ErrSessionsFailed),
		errors.Is(err, usecase.ErrRoadmapFailed),
		errors.Is(err, usecase.ErrTrainingFailed),
		errors.Is(err, usecase.ErrSkillGapFailed):
		return middleware.NewPublicError(fiber.StatusBadGateway, err.Error(), err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

// skillsOrDefault falls back to the profile's skill names when the caller
// sends none.
func skillsOrDefault(ctx context.Context, uc *usecase.CareerUsecase, skills []string) ([]string, error) {
	if len(skills) > 0 {
		return skills, nil
	}
	return uc.DefaultSkills(ctx)
}
