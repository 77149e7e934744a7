package handler

import (
	"careeriq/internal/delivery/http/middleware"
	"careeriq/internal/pkg/response"
	"careeriq/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// PlanningHandler serves the roadmap and skill gap tools.
type PlanningHandler struct {
	uc *usecase.CareerUsecase
}

type roadmapRequest struct {
	CurrentRole string `json:"currentRole"`
	TargetRole  string `json:"targetRole"`
}

type skillGapRequest struct {
	Skills                []string `json:"skills"`
	TargetRoleDescription string   `json:"targetRoleDescription"`
}

func NewPlanningHandler(uc *usecase.CareerUsecase) *PlanningHandler {
	return &PlanningHandler{uc: uc}
}

func (h *PlanningHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/roadmap", h.HandleRoadmap)
	r.Post("/skill-gap", h.HandleSkillGap)
}

func (h *PlanningHandler) HandleRoadmap(c fiber.Ctx) error {
	var req roadmapRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	steps, err := h.uc.GenerateRoadmap(c.Context(), req.CurrentRole, req.TargetRole)
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, steps)
}

func (h *PlanningHandler) HandleSkillGap(c fiber.Ctx) error {
	var req skillGapRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	skills, err := skillsOrDefault(c.Context(), h.uc, req.Skills)
	if err != nil {
		return mapCareerUsecaseError(err)
	}

	analysis, err := h.uc.AnalyzeSkillGap(c.Context(), skills, req.TargetRoleDescription)
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, analysis)
}
