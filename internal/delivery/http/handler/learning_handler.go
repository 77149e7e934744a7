package handler

import (
	"careeriq/internal/delivery/http/middleware"
	"careeriq/internal/pkg/response"
	"careeriq/internal/repository"
	"careeriq/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// LearningHandler serves peer learning sessions and the training catalog.
type LearningHandler struct {
	uc      *usecase.CareerUsecase
	catalog repository.Catalog
}

type sessionRecommendationsRequest struct {
	Skills []string `json:"skills"`
	// OnlyRecommended returns just the picked sessions instead of the full
	// list with picks first.
	OnlyRecommended bool `json:"onlyRecommended"`
}

type trainingRecommendationsRequest struct {
	Skills      []string `json:"skills"`
	CareerGoals string   `json:"careerGoals"`
}

func NewLearningHandler(uc *usecase.CareerUsecase, catalog repository.Catalog) *LearningHandler {
	return &LearningHandler{uc: uc, catalog: catalog}
}

func (h *LearningHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/sessions", h.HandleListSessions)
	r.Post("/sessions/recommendations", h.HandleRecommendSessions)
	r.Get("/training", h.HandleListTraining)
	r.Post("/training/recommendations", h.HandleRecommendTraining)
}

func (h *LearningHandler) HandleListSessions(c fiber.Ctx) error {
	sessions, err := h.catalog.Sessions(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, sessions)
}

func (h *LearningHandler) HandleRecommendSessions(c fiber.Ctx) error {
	var req sessionRecommendationsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	skills, err := skillsOrDefault(c.Context(), h.uc, req.Skills)
	if err != nil {
		return mapCareerUsecaseError(err)
	}

	recommend := h.uc.RankLearningSessions
	if req.OnlyRecommended {
		recommend = h.uc.SuggestLearningSessions
	}
	sessions, err := recommend(c.Context(), skills)
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, sessions)
}

func (h *LearningHandler) HandleListTraining(c fiber.Ctx) error {
	resources, err := h.catalog.TrainingResources(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, resources)
}

func (h *LearningHandler) HandleRecommendTraining(c fiber.Ctx) error {
	var req trainingRecommendationsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	skills, err := skillsOrDefault(c.Context(), h.uc, req.Skills)
	if err != nil {
		return mapCareerUsecaseError(err)
	}

	resources, err := h.uc.RecommendTraining(c.Context(), skills, req.CareerGoals)
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, resources)
}
